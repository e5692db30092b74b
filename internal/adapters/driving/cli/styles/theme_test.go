package styles

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTheme(t *testing.T) {
	theme := DefaultTheme()

	require.NotNil(t, theme)
	assert.NotEmpty(t, string(theme.Primary))
	assert.NotEmpty(t, string(theme.Secondary))
	assert.NotEmpty(t, string(theme.Muted))
	assert.NotEmpty(t, string(theme.Success))
	assert.NotEmpty(t, string(theme.Error))
	assert.NotEmpty(t, string(theme.Border))
}

func TestDefaultTheme_AccentsAreDistinct(t *testing.T) {
	theme := DefaultTheme()

	accents := []lipgloss.Color{theme.Primary, theme.Secondary, theme.Success, theme.Error}

	seen := make(map[string]bool)
	for _, c := range accents {
		assert.False(t, seen[string(c)], "duplicate accent: %s", c)
		seen[string(c)] = true
	}
}

func TestNewStyles_NilThemeUsesDefault(t *testing.T) {
	s := NewStyles(nil, true)

	require.NotNil(t, s)
	assert.Equal(t, DefaultTheme(), s.Theme())
	assert.True(t, s.Styled())
}

func TestForWriter_BufferIsPlain(t *testing.T) {
	var buf bytes.Buffer

	s := ForWriter(&buf)

	assert.False(t, s.Styled())
	assert.False(t, IsTerminal(&buf))
	assert.Equal(t, "0.45359237", s.Value.Render("0.45359237"))
}

func TestTable_Plain(t *testing.T) {
	s := NewStyles(nil, false)

	out := s.Table(
		[]string{"SYMBOL", "NAME"},
		[][]string{{"kg", "kilogram"}, {"lb", "pound"}},
	)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "SYMBOL"))
	assert.Contains(t, lines[1], "kilogram")
	assert.Contains(t, lines[2], "pound")
	assert.NotContains(t, out, "│")
}

func TestTable_Styled(t *testing.T) {
	s := NewStyles(nil, true)

	out := s.Table([]string{"SYMBOL"}, [][]string{{"kg"}})

	assert.Contains(t, out, "SYMBOL")
	assert.Contains(t, out, "kg")
	assert.Contains(t, out, "╭")
}
