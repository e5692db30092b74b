package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/unitconv/internal/adapters/driving/cli/styles"
	"github.com/custodia-labs/unitconv/internal/core/domain"
	"github.com/custodia-labs/unitconv/internal/logger"
)

// outputPrecision returns the configured number of significant digits.
func outputPrecision() int {
	if settingsService == nil {
		return domain.DefaultPrecision
	}
	settings, err := settingsService.Get()
	if err != nil {
		logger.Warn("reading settings: %v", err)
		return domain.DefaultPrecision
	}
	return settings.Output.Precision
}

// formatNumber renders f with the configured precision, e.g. "0.45359237"
// or "3.937007874e-05".
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'g', outputPrecision(), 64)
}

// outputJSON writes v as indented JSON.
func outputJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

// outputStyles picks styled or plain rendering for the command's writer.
func outputStyles(cmd *cobra.Command) *styles.Styles {
	return styles.ForWriter(cmd.OutOrStdout())
}
