package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/unitconv/internal/core/domain"
)

var explainJSON bool

var explainCmd = &cobra.Command{
	Use:   "explain <expression>",
	Short: "Show how an expression reduces to SI base units",
	Long: `Parses the expression, resolves every symbol and prints each term
with its exponent, followed by the combined dimension and SI scale.`,
	Args: cobra.ExactArgs(1),
	RunE: runExplain,
}

func init() {
	explainCmd.Flags().BoolVar(&explainJSON, "json", false, "output result as JSON")
	rootCmd.AddCommand(explainCmd)
}

type explainTerm struct {
	Symbol    string         `json:"symbol"`
	Exponent  int            `json:"exponent"`
	Name      string         `json:"name,omitempty"`
	Scale     float64        `json:"scale"`
	Dimension map[string]int `json:"dimension"`
}

type explainOutput struct {
	Expression string         `json:"expression"`
	Terms      []explainTerm  `json:"terms"`
	Dimension  map[string]int `json:"dimension"`
	Base       string         `json:"base"`
	Scale      float64        `json:"scale"`
}

func runExplain(cmd *cobra.Command, args []string) error {
	if conversionService == nil {
		return errors.New("conversion service not configured")
	}
	expression := args[0]

	unit, err := conversionService.Parse(expression)
	if err != nil {
		return fmt.Errorf("explain failed: %w", err)
	}
	reduced, err := conversionService.Reduce(expression)
	if err != nil {
		return fmt.Errorf("explain failed: %w", err)
	}

	out := explainOutput{
		Expression: expression,
		Terms:      make([]explainTerm, 0, len(unit)),
		Dimension:  reduced.Dimension.Map(),
		Base:       reduced.Dimension.String(),
		Scale:      reduced.Scale,
	}
	for _, term := range unit {
		et := explainTerm{Symbol: term.Symbol, Exponent: term.Exponent}
		if unitService != nil {
			def, err := unitService.Describe(cmd.Context(), term.Symbol)
			if err != nil {
				return fmt.Errorf("explain failed: %w", err)
			}
			et.Name = def.Name
			et.Scale = def.Scale
			et.Dimension = def.Dimension.Map()
		}
		out.Terms = append(out.Terms, et)
	}

	if explainJSON {
		return outputJSON(cmd, out)
	}

	return outputExplainTable(cmd, out, unit)
}

func outputExplainTable(cmd *cobra.Command, out explainOutput, unit domain.CompoundUnit) error {
	st := outputStyles(cmd)

	rows := make([][]string, 0, len(out.Terms))
	for i, term := range out.Terms {
		name, scale := term.Name, ""
		if name != "" {
			scale = formatNumber(term.Scale)
		}
		rows = append(rows, []string{
			term.Symbol,
			strconv.Itoa(term.Exponent),
			name,
			scale,
			unit[i].String(),
		})
	}

	cmd.Println(st.Title.Render("Expression: " + out.Expression))
	cmd.Println(st.Table([]string{"SYMBOL", "EXPONENT", "NAME", "SCALE", "TERM"}, rows))
	cmd.Printf("Dimension: %s\n", out.Base)
	cmd.Printf("Scale:     %s\n", st.Value.Render(formatNumber(out.Scale)))
	return nil
}
