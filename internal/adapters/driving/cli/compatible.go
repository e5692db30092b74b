package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var compatibleJSON bool

var compatibleCmd = &cobra.Command{
	Use:   "compatible <a> <b>",
	Short: "Check whether two unit expressions share a dimension",
	Long: `Prints true when both expressions reduce to the same dimension and
false otherwise. Malformed expressions and unknown symbols are errors.`,
	Args: cobra.ExactArgs(2),
	RunE: runCompatible,
}

func init() {
	compatibleCmd.Flags().BoolVar(&compatibleJSON, "json", false, "output result as JSON")
	rootCmd.AddCommand(compatibleCmd)
}

type compatibleOutput struct {
	A          string `json:"a"`
	B          string `json:"b"`
	Compatible bool   `json:"compatible"`
}

func runCompatible(cmd *cobra.Command, args []string) error {
	if conversionService == nil {
		return errors.New("conversion service not configured")
	}

	ok, err := conversionService.AreCompatible(args[0], args[1])
	if err != nil {
		return fmt.Errorf("compatibility check failed: %w", err)
	}

	if compatibleJSON {
		return outputJSON(cmd, compatibleOutput{A: args[0], B: args[1], Compatible: ok})
	}

	st := outputStyles(cmd)
	answer := st.Error.Render(strconv.FormatBool(ok))
	if ok {
		answer = st.Success.Render(strconv.FormatBool(ok))
	}
	cmd.Println(answer)
	return nil
}
