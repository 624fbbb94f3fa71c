package flavord

import (
	"errors"

	"github.com/sinotca/mdbook-sinotca-flavord/internal/book"
	"github.com/sinotca/mdbook-sinotca-flavord/internal/config"
	"github.com/sinotca/mdbook-sinotca-flavord/internal/preprocessor"
)

// resolveConfig merges flags, the book.toml table (when hctx is set), the
// local config in root and the global config, in that order of precedence.
func resolveConfig(root string, hctx *book.Context) (config.FileConfig, error) {
	var sources []config.FileConfig
	if hctx != nil {
		if raw, ok := hctx.PreprocessorTable(preprocessor.TableNames...); ok {
			tbl, err := config.FromBookTable(raw)
			if err != nil {
				return config.FileConfig{}, err
			}
			sources = append(sources, tbl)
		}
	}
	if root != "" {
		local, err := config.LoadLocal(root)
		if err != nil && !errors.Is(err, config.ErrNoConfig) {
			return config.FileConfig{}, err
		}
		sources = append(sources, local)
	}
	global, err := config.LoadGlobal()
	if err != nil && !errors.Is(err, config.ErrNoConfig) {
		return config.FileConfig{}, err
	}
	sources = append(sources, global)

	threads, strict, level := make([]*int, 0, len(sources)), make([]*bool, 0, len(sources)), make([]*string, 0, len(sources))
	for _, s := range sources {
		threads = append(threads, s.Threads)
		strict = append(strict, s.StrictVersion)
		level = append(level, s.LogLevel)
	}
	t := pickInt(flagThreads, threads...)
	sv := pickBool(changedBool("strict-version", flagStrictVersion), strict...)
	lv := pickString(flagLogLevel, level...)
	return config.FileConfig{Threads: &t, StrictVersion: &sv, LogLevel: &lv}, nil
}

func pickString(cli string, sources ...*string) string {
	if cli != "" {
		return cli
	}
	for _, s := range sources {
		if s != nil && *s != "" {
			return *s
		}
	}
	return ""
}

func pickInt(cli int, sources ...*int) int {
	if cli != 0 {
		return cli
	}
	for _, s := range sources {
		if s != nil && *s != 0 {
			return *s
		}
	}
	return 0
}

// changedBool returns v only when the persistent flag was set on the
// command line, so an explicit false can override a config file.
func changedBool(name string, v bool) *bool {
	if f := rootCmd.PersistentFlags().Lookup(name); f == nil || !f.Changed {
		return nil
	}
	return &v
}

func pickBool(cli *bool, sources ...*bool) bool {
	if cli != nil {
		return *cli
	}
	for _, s := range sources {
		if s != nil {
			return *s
		}
	}
	return false
}
