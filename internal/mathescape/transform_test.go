package mathescape

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscape_Scenarios(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "nothing to escape outside math",
			input:    `don't escape → \\, _, \$ \\ \$`,
			expected: `don't escape → \\, _, \$ \\ \$`,
		},
		{
			name:     "line breaks are doubled",
			input:    `$\begin{align} f &= \sigma (x + 1) \\ \end{align}$`,
			expected: `$\begin{align} f &= \sigma (x + 1) \\\\ \end{align}$`,
		},
		{
			name:     "underscores are escaped",
			input:    `$t_n=max(t_{rap})$`,
			expected: `$t\_n=max(t\_{rap})$`,
		},
		{
			name:     "escaped delimiter stays literal",
			input:    `\$literal$x_1$`,
			expected: `\$literal$x\_1$`,
		},
		{
			name:     "unterminated trailing region is still rewritten",
			input:    "foo$bar_baz",
			expected: `foo$bar\_baz`,
		},
		{
			name:     "display block",
			input:    "before\n$$\na_1 \\\\\nb_2\n$$\nafter_x",
			expected: "before\n$$\na\\_1 \\\\\\\\\nb\\_2\n$$\nafter_x",
		},
		{
			name:     "display and inline together",
			input:    `$$x_1 \\ y$$ then $z_2$ and snake_case`,
			expected: `$$x\_1 \\\\ y$$ then $z\_2$ and snake_case`,
		},
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Escape(tt.input))
		})
	}
}

func TestTransform_RuleOrder(t *testing.T) {
	// `\\_` must become `\\\\\_`: the pair is doubled first, then the
	// underscore gets its own backslash.
	assert.Equal(t, `$\\\\\_$`, Transform(`$\\_$`, InlineDelimiter))
	assert.Equal(t, `$a\_\\\\b$`, Transform(`$a_\\b$`, InlineDelimiter))
}

func TestTransform_OddBackslashRuns(t *testing.T) {
	// Three backslashes hold one pair and a lone backslash.
	assert.Equal(t, `$\\\\\x$`, Transform(`$\\\x$`, InlineDelimiter))
	assert.Equal(t, `$\\\\\\\\$x`, Transform(`$\\\\$x`, InlineDelimiter))
}

func TestTransform_OutsideUntouched(t *testing.T) {
	in := `a_b \\ $c_d$ e_f \\ $g$ h_i`
	assert.Equal(t, `a_b \\ $c\_d$ e_f \\ $g$ h_i`, Transform(in, InlineDelimiter))
}

func TestTransform_InlinePassAfterDisplayPass(t *testing.T) {
	in := `$$a_b$$`
	once := Transform(in, DisplayDelimiter)
	assert.Equal(t, `$$a\_b$$`, once)
	// The display content lands on an even index in the inline pass.
	assert.Equal(t, once, Transform(once, InlineDelimiter))
}

func TestRegions(t *testing.T) {
	assert.Equal(t, 0, Regions("no math", InlineDelimiter))
	assert.Equal(t, 1, Regions("$a$", InlineDelimiter))
	assert.Equal(t, 2, Regions("$a$ and $b$", InlineDelimiter))
	assert.Equal(t, 1, Regions("foo$bar", InlineDelimiter))
	assert.Equal(t, 0, Regions(`\$5`, InlineDelimiter))
}

func TestEscapeStats(t *testing.T) {
	out, st := EscapeStats(`$$x_1$$ and $y_2$`)
	assert.Equal(t, Escape(`$$x_1$$ and $y_2$`), out)
	assert.Equal(t, 1, st.Display)
	// The display block shows up as two empty inline regions plus the real one.
	assert.Equal(t, 3, st.Inline)
	assert.Equal(t, 4, st.Total())

	var sum Stats
	sum.Add(st)
	sum.Add(Stats{Display: 2, Inline: 1})
	assert.Equal(t, Stats{Display: 3, Inline: 4}, sum)
}
