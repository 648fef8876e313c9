package style

import (
	"bufio"
	"bytes"
	"io"
	"strings"
)

// WriteTo writes the document as rc text, one "key: value" line per setting
// in document order. Reading the output back with [Parse] yields an equal
// document.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var n int64
	for _, s := range d.Settings() {
		m, err := bw.WriteString(s.String() + "\n")
		n += int64(m)
		if err != nil {
			return n, err
		}
	}
	return n, bw.Flush()
}

// String returns the rc text of the document.
func (d *Document) String() string {
	return string(Marshal(d))
}

// Marshal returns the rc text of d.
func Marshal(d *Document) []byte {
	var buf bytes.Buffer
	_, _ = d.WriteTo(&buf)
	return buf.Bytes()
}

// MarshalWithHeader is like [Marshal] but starts with header written as
// comment lines followed by a blank line.
func MarshalWithHeader(d *Document, header string) []byte {
	var buf bytes.Buffer
	if header = strings.TrimRight(header, "\n"); header != "" {
		for _, line := range strings.Split(header, "\n") {
			if line == "" {
				buf.WriteString("#\n")
				continue
			}
			buf.WriteString("# " + line + "\n")
		}
		buf.WriteString("\n")
	}
	_, _ = d.WriteTo(&buf)
	return buf.Bytes()
}

// HeaderComment returns the comment block at the top of rc text, before the
// first blank or setting line, with the "#" markers removed. Feeding the
// result to [MarshalWithHeader] reproduces the block.
func HeaderComment(b []byte) string {
	text := strings.TrimPrefix(string(b), utf8BOM)
	text = strings.TrimLeft(text, "\r\n")

	var lines []string
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(strings.TrimRight(raw, "\r"))
		if !strings.HasPrefix(line, "#") {
			break
		}
		line = strings.TrimPrefix(line, "#")
		lines = append(lines, strings.TrimPrefix(line, " "))
	}
	return strings.Join(lines, "\n")
}
