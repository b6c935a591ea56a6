// Package draw renders the scene to an ANSI terminal using half-block cells.
package draw

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// maxChunkSize is the maximum bytes written at once; it keeps frames
// flowing smoothly over SSH.
const maxChunkSize = 1400

// TermSizeFunc returns the terminal dimensions in cells.
type TermSizeFunc func() (width, height int, err error)

// DefaultTermSizeFunc returns terminal size from os.Stdout.
var DefaultTermSizeFunc TermSizeFunc = func() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// ClearScreen clears the terminal and moves cursor to top-left.
func ClearScreen(w io.Writer) {
	fmt.Fprint(w, "\033[H\033[2J")
}

// HideCursor hides the terminal cursor.
func HideCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25l")
}

// ShowCursor shows the terminal cursor.
func ShowCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25h")
}

// FrameWriter accumulates one frame of terminal output and writes it in
// chunks on Flush.
type FrameWriter struct {
	buf    strings.Builder
	bufw   *bufio.Writer
	numBuf [20]byte
}

// NewFrameWriter creates a FrameWriter that writes to w.
func NewFrameWriter(w io.Writer) *FrameWriter {
	return &FrameWriter{
		bufw: bufio.NewWriterSize(w, 8192),
	}
}

// Write implements io.Writer.
func (fw *FrameWriter) Write(p []byte) (int, error) {
	return fw.buf.Write(p)
}

// WriteString appends a string to the frame.
func (fw *FrameWriter) WriteString(s string) {
	fw.buf.WriteString(s)
}

// MoveCursor appends a cursor position sequence. col and row are 1-based.
func (fw *FrameWriter) MoveCursor(col, row int) {
	fw.buf.WriteString("\033[")
	fw.buf.Write(strconv.AppendInt(fw.numBuf[:0], int64(row), 10))
	fw.buf.WriteByte(';')
	fw.buf.Write(strconv.AppendInt(fw.numBuf[:0], int64(col), 10))
	fw.buf.WriteByte('H')
}

// WriteAt writes s starting at the given 1-based cell.
// Text starting left of the first column is shifted right.
func (fw *FrameWriter) WriteAt(col, row int, s string) {
	fw.MoveCursor(max(col, 1), max(row, 1))
	fw.buf.WriteString(s)
}

// WriteCentered writes s centered on the given column.
func (fw *FrameWriter) WriteCentered(centerCol, row int, s string) {
	fw.WriteAt(centerCol-len([]rune(s))/2, row, s)
}

// Flush writes the accumulated frame to the underlying writer and resets it.
func (fw *FrameWriter) Flush() error {
	data := fw.buf.String()
	fw.buf.Reset()
	for len(data) > 0 {
		chunk := data
		if len(chunk) > maxChunkSize {
			chunk = data[:maxChunkSize]
		}
		if _, err := fw.bufw.WriteString(chunk); err != nil {
			return err
		}
		data = data[len(chunk):]
	}
	return fw.bufw.Flush()
}

var _ io.Writer = (*FrameWriter)(nil)
