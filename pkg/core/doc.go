// Package core provides a small, stable facade over the preprocessor's
// internal packages for programs that want the math escaping without the
// CLI.
//
// Example:
//
//	out := core.Escape(`$t_n \\ x$`)
//	// out == `$t\_n \\\\ x$`
package core
