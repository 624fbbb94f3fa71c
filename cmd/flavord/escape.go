package flavord

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	doublestar "github.com/bmatcuk/doublestar/v4"
	"github.com/sinotca/mdbook-sinotca-flavord/internal/cache"
	"github.com/sinotca/mdbook-sinotca-flavord/internal/logging"
	"github.com/sinotca/mdbook-sinotca-flavord/internal/mathescape"
	"github.com/sinotca/mdbook-sinotca-flavord/internal/report"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"
)

var (
	escOut     string
	escStats   bool
	escNoCache bool
)

func init() {
	cmd := &cobra.Command{
		Use:   "escape [file or glob ...]",
		Short: "Escape math in Markdown files outside of mdbook",
		Long:  "Reads the given files (doublestar globs allowed, e.g. src/**/*.md) or stdin, and prints the escaped text. With --out, writes escaped copies into a directory instead.",
		RunE:  runEscape,
		Example: `
# Preview one chapter
mdbook-sinotca-flavord escape src/chapter_1.md

# Escape a whole book into build/escaped and show region counts
mdbook-sinotca-flavord escape --out build/escaped --stats 'src/**/*.md'
`,
	}
	cmd.Flags().StringVarP(&escOut, "out", "o", "", "write escaped copies under this directory")
	cmd.Flags().BoolVar(&escStats, "stats", false, "print a table of rewritten regions to stderr")
	cmd.Flags().BoolVar(&escNoCache, "no-cache", false, "rewrite outputs even when their source is unchanged")
	rootCmd.AddCommand(cmd)
}

func runEscape(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(".", nil)
	if err != nil {
		return err
	}
	log, err := logging.New(rootCmd.Name(), cfg.GetLogLevel(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	start := time.Now()
	var rows []report.FileStats
	if len(args) == 0 {
		in, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		out, st := mathescape.EscapeStats(string(in))
		fmt.Fprint(cmd.OutOrStdout(), out)
		rows = append(rows, report.FileStats{Path: "<stdin>", Stats: st, Changed: out != string(in)})
	} else {
		inputs, err := expandArgs(args)
		if err != nil {
			return err
		}
		rows, err = escapeFiles(cmd.OutOrStdout(), inputs, log)
		if err != nil {
			return err
		}
	}

	if !escStats {
		return nil
	}
	return report.PrintTable(cmd.ErrOrStderr(), rows, report.PrintOptions{
		NoColor:  flagNoColor || !isTerminal(cmd.ErrOrStderr()),
		Duration: time.Since(start),
	})
}

// input is one file to escape. Rel is where its copy goes under --out.
type input struct {
	Path string
	Rel  string
}

// expandArgs resolves globs in order, keeping plain paths as given and
// dropping duplicates. Glob matches are placed relative to the static
// prefix of their pattern, so src/**/*.md mirrors the tree below src.
func expandArgs(args []string) ([]input, error) {
	seen := map[string]bool{}
	var out []input
	for _, a := range args {
		if doublestar.ValidatePattern(filepath.ToSlash(a)) && hasMeta(a) {
			m, err := doublestar.FilepathGlob(a, doublestar.WithFilesOnly())
			if err != nil {
				return nil, fmt.Errorf("expand %s: %w", a, err)
			}
			if len(m) == 0 {
				return nil, fmt.Errorf("no files match %s", a)
			}
			base, _ := doublestar.SplitPattern(filepath.ToSlash(a))
			base = filepath.FromSlash(base)
			for _, p := range m {
				p = filepath.Clean(p)
				if seen[p] {
					continue
				}
				seen[p] = true
				rel, err := filepath.Rel(base, p)
				if err != nil {
					return nil, fmt.Errorf("place %s under %s: %w", p, base, err)
				}
				out = append(out, input{Path: p, Rel: rel})
			}
			continue
		}
		p := filepath.Clean(a)
		if !seen[p] {
			seen[p] = true
			out = append(out, input{Path: p, Rel: plainRel(p)})
		}
	}
	return out, nil
}

// plainRel mirrors relative inputs as given; inputs outside the working
// directory keep only their base name.
func plainRel(p string) string {
	if filepath.IsAbs(p) || p == ".." || strings.HasPrefix(p, ".."+string(filepath.Separator)) {
		return filepath.Base(p)
	}
	return p
}

// destinations maps every input to its path under dir and fails when two
// inputs would be written to the same file.
func destinations(dir string, inputs []input) ([]string, error) {
	owner := make(map[string]string, len(inputs))
	dests := make([]string, len(inputs))
	for i, in := range inputs {
		d := filepath.Join(dir, in.Rel)
		if prev, ok := owner[d]; ok {
			return nil, fmt.Errorf("%s and %s would both be written to %s", prev, in.Path, d)
		}
		owner[d] = in.Path
		dests[i] = d
	}
	return dests, nil
}

func escapeFiles(stdout io.Writer, inputs []input, log *zap.Logger) ([]report.FileStats, error) {
	rows := make([]report.FileStats, 0, len(inputs))
	if escOut == "" {
		for _, in := range inputs {
			src, err := os.ReadFile(in.Path)
			if err != nil {
				return nil, err
			}
			out, st := mathescape.EscapeStats(string(src))
			fmt.Fprint(stdout, out)
			rows = append(rows, report.FileStats{Path: in.Path, Stats: st, Changed: out != string(src)})
		}
		return rows, nil
	}

	dests, err := destinations(escOut, inputs)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(escOut, 0755); err != nil {
		return nil, err
	}
	db := cache.DB{Entries: map[string]cache.Entry{}}
	if !escNoCache {
		db, _ = cache.Load(escOut)
	}

	for i, in := range inputs {
		src, err := os.ReadFile(in.Path)
		if err != nil {
			return nil, err
		}
		dest := dests[i]
		sum := cache.Sum(src)
		if e, ok := db.Fresh(in.Path, sum, dest); ok {
			if _, err := os.Stat(dest); err == nil {
				log.Debug("output is current", zap.String("path", in.Path))
				rows = append(rows, report.FileStats{Path: in.Path, Stats: e.Stats, Changed: e.Changed, Cached: true})
				continue
			}
		}
		out, st := mathescape.EscapeStats(string(src))
		if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
			return nil, err
		}
		if err := os.WriteFile(dest, []byte(out), 0644); err != nil {
			return nil, err
		}
		changed := out != string(src)
		db.Entries[in.Path] = cache.Entry{Sum: sum, Dest: dest, Stats: st, Changed: changed}
		log.Info("escaped", zap.String("path", in.Path), zap.String("dest", dest), zap.Int("regions", st.Total()))
		rows = append(rows, report.FileStats{Path: in.Path, Stats: st, Changed: changed})
	}

	if err := cache.Save(escOut, db); err != nil {
		log.Warn("could not save cache", zap.Error(err))
	}
	return rows, nil
}

func hasMeta(p string) bool {
	for i := 0; i < len(p); i++ {
		switch p[i] {
		case '*', '?', '[', '{':
			return true
		}
	}
	return false
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
