// Package flavord provides the command-line interface of the
// mdbook-sinotca-flavord preprocessor. Without a subcommand it speaks the
// mdBook preprocessor protocol on stdin/stdout; "supports" answers the
// renderer capability query, and "escape" runs the rewrite on plain files
// for debugging.
//
// Typical usage from a main package:
//
//	package main
//	import "github.com/sinotca/mdbook-sinotca-flavord/cmd/flavord"
//	func main() { flavord.Execute() }
package flavord
