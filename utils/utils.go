package utils

import (
	"bufio"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
)

// Check logs err and exits if it is not nil.
func Check(err error) {
	if err != nil {
		log.Fatal(err)
	}
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

type bufferedFile struct {
	*bufio.Writer
	f *os.File
}

func (b *bufferedFile) Close() error {
	if err := b.Flush(); err != nil {
		b.f.Close()
		return err
	}
	return b.f.Close()
}

// NewOutput return a new io.WriteCloser given an output file name. If the file name is '-' os.Stdout is returned
// and closing it is a no-op. Existing files are truncated.
func NewOutput(output string) (io.WriteCloser, error) {
	switch output {
	case "-", "":
		return nopCloser{os.Stdout}, nil
	default:
		f, err := os.Create(output)
		if err != nil {
			return nil, err
		}
		return &bufferedFile{bufio.NewWriter(f), f}, nil
	}
}

// NewInput returns a new io.ReadCloser given an input file name. If the file name is '-' os.Stdin is returned.
func NewInput(input string) (io.ReadCloser, error) {
	switch input {
	case "-":
		return io.NopCloser(os.Stdin), nil
	default:
		return os.Open(input)
	}
}
