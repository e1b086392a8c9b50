package display

import (
	"fmt"
	"os"

	"github.com/mirrorsmith/platup/internal/logging"
)

// PrintBanner prints the ASCII art banner; uses Magenta if colors are enabled.
func PrintBanner() {
	if logging.Magenta != "" {
		fmt.Fprint(os.Stdout, "\033[1;95m")
	}
	fmt.Fprint(os.Stdout, `       _       _
 _ __ | | __ _| |_ _   _ _ __
| '_ \| |/ _`+"`"+` | __| | | | '_ \
| |_) | | (_| | |_| |_| | |_) |
| .__/|_|\__,_|\__|\__,_| .__/
|_|                     |_|
`)
	if logging.Magenta != "" {
		fmt.Fprintln(os.Stdout, logging.NC)
	}
}
