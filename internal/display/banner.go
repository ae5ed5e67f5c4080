package display

import (
	"fmt"
	"os"
)

// PrintBanner prints the ASCII art banner.
func PrintBanner() {
	fmt.Fprint(os.Stdout, ` _   _     _       _           _       _
| |_(_) __| |_   _| |__   __ _| |_ ___| |__
| __| |/ _`+"`"+` | | | | '_ \ / _`+"`"+` | __/ __| '_ \
| |_| | (_| | |_| | |_) | (_| | || (__| | | |
 \__|_|\__,_|\__, |_.__/ \__,_|\__\___|_| |_|
             |___/
`)
}
