// Package styles renders tables and highlighted text for the CLI.
//
// Output written to a terminal is coloured and bordered. Output written
// anywhere else (pipes, files, test buffers) is plain aligned text.
package styles

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"golang.org/x/term"
)

// Theme defines the colour palette for terminal output.
type Theme struct {
	// Primary is the main accent colour.
	Primary lipgloss.Color

	// Secondary is used for values such as factors and scales.
	Secondary lipgloss.Color

	// Muted is for less important text.
	Muted lipgloss.Color

	// Success indicates positive outcomes.
	Success lipgloss.Color

	// Error indicates problems.
	Error lipgloss.Color

	// Border is the table border colour.
	Border lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:   lipgloss.Color("#7C3AED"), // Purple
		Secondary: lipgloss.Color("#06B6D4"), // Cyan
		Muted:     lipgloss.Color("#6C7086"), // Medium gray
		Success:   lipgloss.Color("#A6E3A1"), // Green
		Error:     lipgloss.Color("#F38BA8"), // Red
		Border:    lipgloss.Color("#45475A"), // Border gray
	}
}

// Styles contains pre-configured lipgloss styles.
type Styles struct {
	theme  *Theme
	styled bool

	// Title style for headings.
	Title lipgloss.Style

	// Header style for table header cells.
	Header lipgloss.Style

	// Cell style for table body cells.
	Cell lipgloss.Style

	// Value style for numeric results.
	Value lipgloss.Style

	// Muted style for less important text.
	Muted lipgloss.Style

	// Success style for positive answers.
	Success lipgloss.Style

	// Error style for negative answers.
	Error lipgloss.Style
}

// NewStyles creates styles from a theme. When styled is false every style
// renders its input unchanged and tables have no visible borders.
func NewStyles(theme *Theme, styled bool) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	if !styled {
		plain := lipgloss.NewStyle()
		return &Styles{
			theme:   theme,
			Title:   plain,
			Header:  plain.PaddingRight(2),
			Cell:    plain.PaddingRight(2),
			Value:   plain,
			Muted:   plain,
			Success: plain,
			Error:   plain,
		}
	}

	return &Styles{
		theme:  theme,
		styled: true,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary).
			Padding(0, 1),

		Cell: lipgloss.NewStyle().
			Padding(0, 1),

		Value: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Secondary),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Success: lipgloss.NewStyle().
			Foreground(theme.Success),

		Error: lipgloss.NewStyle().
			Foreground(theme.Error),
	}
}

// ForWriter returns styled output when w is a terminal and plain output otherwise.
func ForWriter(w io.Writer) *Styles {
	return NewStyles(DefaultTheme(), IsTerminal(w))
}

// IsTerminal reports whether w is a file attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// Styled reports whether colours and borders are enabled.
func (s *Styles) Styled() bool {
	return s.styled
}

// Theme returns the theme used by these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}

// Table renders rows under headers.
func (s *Styles) Table(headers []string, rows [][]string) string {
	t := table.New().
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return s.Header
			}
			return s.Cell
		})

	if s.styled {
		t = t.Border(lipgloss.RoundedBorder()).
			BorderStyle(lipgloss.NewStyle().Foreground(s.theme.Border))
	} else {
		t = t.Border(lipgloss.HiddenBorder()).
			BorderTop(false).
			BorderBottom(false).
			BorderLeft(false).
			BorderRight(false).
			BorderHeader(false).
			BorderColumn(false)
	}

	return t.String()
}
