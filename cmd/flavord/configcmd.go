package flavord

import (
	"fmt"
	"os"
	"strings"

	"github.com/sinotca/mdbook-sinotca-flavord/internal/config"
	"github.com/sinotca/mdbook-sinotca-flavord/internal/logging"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	cfgOutput        string
	cfgThreads       int
	cfgStrictVersion bool
	cfgLogLevel      string
)

func init() {
	cfgCmd := &cobra.Command{Use: "config", Short: "Configuration helpers"}
	rootCmd.AddCommand(cfgCmd)

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a .flavord.yml next to book.toml",
		RunE:  runConfigInit,
	}
	cfgCmd.AddCommand(initCmd)

	initCmd.Flags().StringVar(&cfgOutput, "output", ".flavord.yml", "output file path")
	initCmd.Flags().IntVar(&cfgThreads, "threads", 0, "worker threads (0=GOMAXPROCS)")
	initCmd.Flags().BoolVar(&cfgStrictVersion, "strict-version", false, "fail on mdbook version mismatch")
	initCmd.Flags().StringVar(&cfgLogLevel, "log-level", logging.DefaultLevel, "debug|info|warn|error")
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	level := strings.ToLower(strings.TrimSpace(cfgLogLevel))
	if _, err := logging.ParseLevel(level); err != nil {
		return err
	}
	fc := config.FileConfig{
		Threads:       intPtr(cfgThreads),
		StrictVersion: boolPtr(cfgStrictVersion),
		LogLevel:      strPtr(level),
	}

	b, err := yaml.Marshal(&fc)
	if err != nil {
		return err
	}
	if err := os.WriteFile(cfgOutput, b, 0644); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Wrote", cfgOutput)
	return nil
}

func strPtr(s string) *string { return &s }
func intPtr(v int) *int {
	if v == 0 {
		return nil
	}
	return &v
}
func boolPtr(v bool) *bool { return &v }
