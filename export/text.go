// Package export writes a rendered character grid out as plain text or as
// a PNG image of its glyphs.
package export

import (
	"bufio"
	"io"
)

// WriteText writes each row followed by a newline.
func WriteText(w io.Writer, lines []string) error {
	bw := bufio.NewWriter(w)
	for _, line := range lines {
		if _, err := bw.WriteString(line); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
