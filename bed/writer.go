package bed

import (
	"bufio"
	"io"
)

// Writer writes BED records to an underlying writer.
type Writer struct {
	w       *bufio.Writer
	columns Columns
	n       int
}

// NewWriter returns a Writer emitting records with the given layout.
func NewWriter(w io.Writer, c Columns) *Writer {
	return &Writer{w: bufio.NewWriter(w), columns: c}
}

// Write writes a single record followed by a newline.
func (w *Writer) Write(r *Record) error {
	if _, err := w.w.WriteString(r.Format(w.columns)); err != nil {
		return err
	}
	if err := w.w.WriteByte('\n'); err != nil {
		return err
	}
	w.n++
	return nil
}

// Count returns the number of records written.
func (w *Writer) Count() int {
	return w.n
}

// Flush writes any buffered data to the underlying writer.
func (w *Writer) Flush() error {
	return w.w.Flush()
}
