package report

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/sinotca/mdbook-sinotca-flavord/internal/mathescape"
)

// FileStats is one row of the region report.
type FileStats struct {
	Path    string
	Stats   mathescape.Stats
	Changed bool
	// Cached is set when the file was skipped because its output is current.
	Cached bool
}

type PrintOptions struct {
	NoColor  bool
	Duration time.Duration
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	totalStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

func status(f FileStats) string {
	switch {
	case f.Cached:
		return "cached"
	case f.Changed:
		return "escaped"
	default:
		return "unchanged"
	}
}

// PrintTable writes a per-file table of rewritten regions followed by a
// summary line.
func PrintTable(w io.Writer, files []FileStats, opts PrintOptions) error {
	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })

	title := "Math regions"
	if !opts.NoColor {
		title = titleStyle.Render(title)
	}
	fmt.Fprintln(w, title)

	if len(files) == 0 {
		fmt.Fprintln(w, "No files processed")
		return nil
	}

	table := tablewriter.NewWriter(w)
	table.Header("File", "Display", "Inline", "Status")
	var total mathescape.Stats
	changed := 0
	for _, f := range files {
		total.Add(f.Stats)
		if f.Changed {
			changed++
		}
		row := []string{
			f.Path,
			strconv.Itoa(f.Stats.Display),
			strconv.Itoa(f.Stats.Inline),
			status(f),
		}
		if err := table.Append(row); err != nil {
			return err
		}
	}
	if err := table.Render(); err != nil {
		return err
	}

	summary := fmt.Sprintf("Files: %d (escaped: %d), regions: %d (display: %d, inline: %d)",
		len(files), changed, total.Total(), total.Display, total.Inline)
	if !opts.NoColor {
		summary = totalStyle.Render(summary)
	}
	fmt.Fprintln(w, summary)
	if opts.Duration > 0 {
		fmt.Fprintf(w, "Duration: %.2fs\n", opts.Duration.Seconds())
	}
	return nil
}
