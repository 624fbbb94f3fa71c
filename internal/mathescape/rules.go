package mathescape

import "strings"

type rule struct {
	old, new string
}

// mathRules run top to bottom. Doubling backslash pairs must happen before
// underscores are escaped, otherwise the backslashes added for `\_` could be
// picked up again.
var mathRules = []rule{
	{old: `\\`, new: `\\\\`},
	{old: `_`, new: `\_`},
}

func applyRules(s string) string {
	for _, r := range mathRules {
		s = strings.ReplaceAll(s, r.old, r.new)
	}
	return s
}
