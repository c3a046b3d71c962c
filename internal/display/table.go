package display

import (
	"fmt"
	"os"

	"renomeia/internal/term"
)

// PreviewRow is one line of the preview table.
type PreviewRow struct {
	Original string
	New      string
	Note     string // non-empty for files without a reference match
	Size     int64
}

// PrintPreview writes the aligned original → new listing to stdout. Rows
// with a note keep their original name and show the note in red instead of
// a new name.
func PrintPreview(rows []PreviewRow) {
	if len(rows) == 0 {
		return
	}

	width := 0
	for _, r := range rows {
		if len(r.Original) > width {
			width = len(r.Original)
		}
	}

	fmt.Fprintln(os.Stdout)
	for _, r := range rows {
		padding := width - len(r.Original) + 1
		if r.Note != "" {
			fmt.Fprintf(os.Stdout, "  %s%*s%s!%s %s  (%s)\n",
				r.Original, padding, "", term.Red, term.NC, r.Note, FormatBytes(r.Size))
			continue
		}
		fmt.Fprintf(os.Stdout, "  %s%*s%s->%s %s  (%s)\n",
			r.Original, padding, "", term.Green, term.NC, r.New, FormatBytes(r.Size))
	}
	fmt.Fprintln(os.Stdout)
}
