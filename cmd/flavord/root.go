package flavord

import (
	"errors"
	"fmt"
	"os"

	"github.com/sinotca/mdbook-sinotca-flavord/internal/book"
	"github.com/sinotca/mdbook-sinotca-flavord/internal/logging"
	"github.com/sinotca/mdbook-sinotca-flavord/internal/preprocessor"
	"github.com/spf13/cobra"
)

var (
	flagThreads       int
	flagStrictVersion bool
	flagLogLevel      string
	flagNoColor       bool

	version = "0.1.0"
)

// rootCmd is the base Cobra command. Run bare, it preprocesses the book
// mdBook pipes in.
var rootCmd = &cobra.Command{
	Use:           preprocessor.Name,
	Short:         "mdBook preprocessor that escapes math for MathJax",
	Long:          "Doubles backslash pairs and escapes underscores inside $$...$$ and $...$ regions so the Markdown renderer passes math through to MathJax intact.",
	Version:       version,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI. It should be called by the main package.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errUnsupported) {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		os.Exit(1)
	}
}

func init() {
	// Assigned here rather than in the literal to break the
	// rootCmd -> runPreprocess -> changedBool -> rootCmd initialization cycle.
	rootCmd.RunE = runPreprocess
	rootCmd.PersistentFlags().IntVar(&flagThreads, "threads", 0, "chapters escaped in parallel (0 = GOMAXPROCS)")
	rootCmd.PersistentFlags().BoolVar(&flagStrictVersion, "strict-version", false, "fail instead of warn when the mdbook version does not match (=false overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "debug|info|warn|error (default warn)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colorized output")
}

func runPreprocess(cmd *cobra.Command, _ []string) error {
	hctx, b, err := book.ParseInput(cmd.InOrStdin())
	if err != nil {
		return err
	}
	cfg, err := resolveConfig(hctx.Root, hctx)
	if err != nil {
		return err
	}
	log, err := logging.New(preprocessor.Name, cfg.GetLogLevel(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()
	log.Debug("invoked")

	pre := preprocessor.New(preprocessor.Options{
		Threads:       cfg.GetThreads(),
		StrictVersion: cfg.IsStrictVersion(),
		Logger:        log,
	})
	if err := pre.CheckHost(hctx); err != nil {
		return err
	}
	if _, err := pre.Run(cmd.Context(), b); err != nil {
		return err
	}
	return book.WriteBook(cmd.OutOrStdout(), b)
}
