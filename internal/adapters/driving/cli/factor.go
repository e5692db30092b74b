package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var factorJSON bool

var factorCmd = &cobra.Command{
	Use:   "factor <source> <target>",
	Short: "Print the factor converting source units to target units",
	Long: `Prints the number that multiplies a quantity in source units to give
the same quantity in target units. Both expressions must reduce to the
same dimension.

Examples:
  unitconv factor lb kg            # 0.45359237
  unitconv factor m/s^2 in/ms^2    # 3.937007874e-05`,
	Args: cobra.ExactArgs(2),
	RunE: runFactor,
}

func init() {
	factorCmd.Flags().BoolVar(&factorJSON, "json", false, "output result as JSON")
	rootCmd.AddCommand(factorCmd)
}

type factorOutput struct {
	Source string  `json:"source"`
	Target string  `json:"target"`
	Factor float64 `json:"factor"`
}

func runFactor(cmd *cobra.Command, args []string) error {
	if conversionService == nil {
		return errors.New("conversion service not configured")
	}

	factor, err := conversionService.ConversionFactor(args[0], args[1])
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}

	if factorJSON {
		return outputJSON(cmd, factorOutput{Source: args[0], Target: args[1], Factor: factor})
	}

	cmd.Println(outputStyles(cmd).Value.Render(formatNumber(factor)))
	return nil
}
