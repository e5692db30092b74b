package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/unitconv/internal/core/domain"
	"github.com/custodia-labs/unitconv/internal/logger"
)

var convertJSON bool

var convertCmd = &cobra.Command{
	Use:   "convert <value> <source> <target>",
	Short: "Convert a value between units",
	Long: `Converts a value expressed in source units into target units.

Examples:
  unitconv convert 10 lb kg
  unitconv convert 88 ft/s km/h
  unitconv convert -- -3.5 m ft     # use -- before negative values`,
	Args: cobra.ExactArgs(3),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().BoolVar(&convertJSON, "json", false, "output result as JSON")
	rootCmd.AddCommand(convertCmd)
}

type convertOutput struct {
	Value  float64 `json:"value"`
	Source string  `json:"source"`
	Target string  `json:"target"`
	Result float64 `json:"result"`
}

func runConvert(cmd *cobra.Command, args []string) error {
	if conversionService == nil {
		return errors.New("conversion service not configured")
	}

	value, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("%w: %q is not a number", domain.ErrInvalidInput, args[0])
	}
	source, target := args[1], args[2]

	defer logger.Timed("convert")()

	result, err := conversionService.Convert(value, source, target)
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}

	if convertJSON {
		return outputJSON(cmd, convertOutput{Value: value, Source: source, Target: target, Result: result})
	}

	st := outputStyles(cmd)
	cmd.Printf("%s %s = %s %s\n", formatNumber(value), source, st.Value.Render(formatNumber(result)), target)
	return nil
}
