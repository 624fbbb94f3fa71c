// Package config loads preprocessor settings from local and global YAML
// files and from the book.toml table the host forwards. CLI code merges the
// sources with flags taking precedence.
package config
