package display

import (
	"fmt"
	"os"

	"renomeia/internal/term"
)

// PrintBanner prints the ASCII art banner; uses Magenta if colors are enabled.
func PrintBanner() {
	if term.Enabled() {
		fmt.Fprint(os.Stdout, term.Magenta)
	}
	fmt.Fprint(os.Stdout, ` ____                                      _
|  _ \ ___ _ __   ___  _ __ ___   ___ (_) __ _
| |_) / _ \ '_ \ / _ \| '_ ` + "`" + ` _ \ / _ \| |/ _` + "`" + ` |
|  _ <  __/ | | | (_) | | | | | |  __/| | (_| |
|_| \_\___|_| |_|\___/|_| |_| |_|\___||_|\__,_|
`)
	if term.Enabled() {
		fmt.Fprintln(os.Stdout, term.NC)
	}
}
