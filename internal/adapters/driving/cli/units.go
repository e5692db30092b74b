package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/unitconv/internal/core/domain"
)

var (
	unitsListCustom bool
	unitsListJSON   bool
	unitsShowJSON   bool
	unitsDefineName string
)

var unitsCmd = &cobra.Command{
	Use:   "units",
	Short: "Inspect and manage units",
	Long: `List the unit registry, look up single symbols and manage custom units.

Custom units are stored in the data directory and are available from the
next run.`,
}

var unitsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered units",
	Long: `Lists every registered unit with its dimension and SI scale.
Prefixed forms such as "km" are resolved on lookup and are not listed.`,
	Args: cobra.NoArgs,
	RunE: runUnitsList,
}

var unitsShowCmd = &cobra.Command{
	Use:   "show <symbol>",
	Short: "Show a single unit",
	Args:  cobra.ExactArgs(1),
	RunE:  runUnitsShow,
}

var unitsDefineCmd = &cobra.Command{
	Use:   "define <symbol> <scale> <base>",
	Short: "Define a custom unit",
	Long: `Defines a custom unit equal to scale times the base expression.

Examples:
  unitconv units define furlong 660 ft
  unitconv units define knot 1852 m/h --name "nautical mile per hour"`,
	Args: cobra.ExactArgs(3),
	RunE: runUnitsDefine,
}

var unitsRemoveCmd = &cobra.Command{
	Use:   "remove <symbol>",
	Short: "Remove a custom unit",
	Args:  cobra.ExactArgs(1),
	RunE:  runUnitsRemove,
}

func init() {
	unitsListCmd.Flags().BoolVar(&unitsListCustom, "custom", false, "list only custom units")
	unitsListCmd.Flags().BoolVar(&unitsListJSON, "json", false, "output units as JSON")
	unitsShowCmd.Flags().BoolVar(&unitsShowJSON, "json", false, "output unit as JSON")
	unitsDefineCmd.Flags().StringVar(&unitsDefineName, "name", "", "descriptive name (defaults to the symbol)")

	unitsCmd.AddCommand(unitsListCmd)
	unitsCmd.AddCommand(unitsShowCmd)
	unitsCmd.AddCommand(unitsDefineCmd)
	unitsCmd.AddCommand(unitsRemoveCmd)
	rootCmd.AddCommand(unitsCmd)
}

func runUnitsList(cmd *cobra.Command, _ []string) error {
	if unitService == nil {
		return errors.New("unit service not configured")
	}

	var (
		units []domain.UnitDef
		err   error
	)
	if unitsListCustom {
		units, err = unitService.Custom(cmd.Context())
	} else {
		units, err = unitService.List(cmd.Context())
	}
	if err != nil {
		return fmt.Errorf("failed to list units: %w", err)
	}

	if unitsListJSON {
		if units == nil {
			units = []domain.UnitDef{}
		}
		return outputJSON(cmd, units)
	}

	if len(units) == 0 {
		cmd.Println("No units found.")
		return nil
	}

	rows := make([][]string, 0, len(units))
	for _, u := range units {
		rows = append(rows, []string{u.Symbol, u.Name, u.Dimension.String(), formatNumber(u.Scale)})
	}
	cmd.Println(outputStyles(cmd).Table([]string{"SYMBOL", "NAME", "DIMENSION", "SCALE"}, rows))
	cmd.Printf("%d units\n", len(units))
	return nil
}

func runUnitsShow(cmd *cobra.Command, args []string) error {
	if unitService == nil {
		return errors.New("unit service not configured")
	}

	def, err := unitService.Describe(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to show unit: %w", err)
	}

	if unitsShowJSON {
		return outputJSON(cmd, def)
	}

	printUnit(cmd, def)
	return nil
}

func runUnitsDefine(cmd *cobra.Command, args []string) error {
	if unitService == nil {
		return errors.New("unit service not configured")
	}

	symbol, base := args[0], args[2]
	scale, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("%w: scale %q is not a number", domain.ErrInvalidInput, args[1])
	}
	name := unitsDefineName
	if name == "" {
		name = symbol
	}

	def, err := unitService.Define(cmd.Context(), symbol, name, scale, base)
	if err != nil {
		return fmt.Errorf("failed to define unit: %w", err)
	}

	cmd.Printf("Defined %s = %s %s\n", def.Symbol, formatNumber(scale), base)
	printUnit(cmd, def)
	cmd.Println("The unit is available from the next run.")
	return nil
}

func runUnitsRemove(cmd *cobra.Command, args []string) error {
	if unitService == nil {
		return errors.New("unit service not configured")
	}

	if err := unitService.Remove(cmd.Context(), args[0]); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("custom unit %q not found", args[0])
		}
		return fmt.Errorf("failed to remove unit: %w", err)
	}

	cmd.Printf("Removed %s\n", args[0])
	return nil
}

func printUnit(cmd *cobra.Command, def domain.UnitDef) {
	cmd.Printf("  Symbol:    %s\n", def.Symbol)
	cmd.Printf("  Name:      %s\n", def.Name)
	cmd.Printf("  Dimension: %s\n", def.Dimension)
	cmd.Printf("  Scale:     %s\n", formatNumber(def.Scale))
}
