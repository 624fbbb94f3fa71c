// Package logging builds the zap logger used by the CLI.
package logging
