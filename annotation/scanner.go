package annotation

import (
	"bufio"
	"io"
	"strings"
)

// Scanner reads an annotation stream line by line.
type Scanner struct {
	r    *bufio.Reader
	text string
	line int
	err  error
}

// NewScanner returns a new instance of a Scanner
func NewScanner(r io.Reader) *Scanner {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &Scanner{r: br}
}

// Next advances to the next line. It returns false at the end of the stream
// or on a read error.
func (s *Scanner) Next() bool {
	if s.err != nil {
		return false
	}
	var text string
	text, s.err = s.r.ReadString('\n')
	if s.err != nil && (s.err != io.EOF || text == "") {
		return false
	}
	s.line++
	s.text = strings.TrimRight(text, "\r\n")
	return true
}

// Text returns the current line without its line terminator.
func (s *Scanner) Text() string {
	return s.text
}

// Line returns the 1-based number of the current line.
func (s *Scanner) Line() int {
	return s.line
}

// Error returns the first non-EOF error that was encountered by the Scanner.
func (s *Scanner) Error() error {
	if s.err == io.EOF {
		return nil
	}
	return s.err
}
