package display

import (
	"fmt"
	"io"

	"github.com/backmassage/webpix/internal/term"
)

const banner = `              _           _
__      _____| |__  _ __ (_)_  __
\ \ /\ / / _ \ '_ \| '_ \| \ \/ /
 \ V  V /  __/ |_) | |_) | |>  <
  \_/\_/ \___|_.__/| .__/|_/_/\_\
                   |_|
`

// PrintBanner writes the ASCII art banner, in magenta when colors are enabled.
func PrintBanner(w io.Writer) {
	fmt.Fprint(w, term.Magenta.Sprint(banner))
}
