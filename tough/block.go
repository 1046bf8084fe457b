package tough

import (
	"fmt"
	"io"
)

// blockRuler is the 72-character column ruler following every block
// keyword, a reading aid for the fixed-column format.
const blockRuler = "----1----*----2----*----3----*----4----*----5----*----6----*----7----*----8"

// WriteBlock frames a block body with its keyword/ruler header line
// and the blank line that terminates the block.
func WriteBlock(w io.Writer, keyword string, body func(io.Writer) error) error {
	if _, err := fmt.Fprintf(w, "%-5s%s\n", keyword, blockRuler); err != nil {
		return err
	}
	if err := body(w); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}
