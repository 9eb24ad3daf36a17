package annotation

import (
	"bufio"
	"compress/bzip2"
	"compress/gzip"
	"io"

	"github.com/biogo/hts/bgzf"
	log "github.com/sirupsen/logrus"
)

// Reader is a buffered reader over a possibly compressed annotation stream.
type Reader struct {
	*bufio.Reader
	closer io.Closer
	format Format
}

// NewReader returns a Reader for r. Gzip, BGZF and bzip2 compressed streams are
// detected from their magic bytes and decompressed transparently.
func NewReader(r io.Reader) (*Reader, error) {
	br := bufio.NewReader(r)
	format, err := scanFormat(br)
	if err != nil {
		return nil, err
	}
	log.WithField("compression", format).Debug("Detected annotation compression")
	switch format {
	case BGZF:
		bz, err := bgzf.NewReader(br, 1)
		if err != nil {
			return nil, err
		}
		return &Reader{bufio.NewReader(bz), bz, format}, nil
	case GZIP:
		gz, err := gzip.NewReader(br)
		if err != nil {
			return nil, err
		}
		return &Reader{bufio.NewReader(gz), gz, format}, nil
	case BZIP2:
		return &Reader{bufio.NewReader(bzip2.NewReader(br)), nil, format}, nil
	}
	return &Reader{br, nil, format}, nil
}

// Format returns the compression format detected for the underlying stream.
func (r *Reader) Format() Format {
	return r.format
}

// Close releases the decompressor, if any. It does not close the underlying reader.
func (r *Reader) Close() error {
	if r.closer == nil {
		return nil
	}
	return r.closer.Close()
}

// CheckBytes peeks at a buffered stream and checks if the first read bytes match.
func CheckBytes(b *bufio.Reader, buf []byte) (bool, error) {
	m, err := b.Peek(len(buf))
	if err != nil {
		if err == io.EOF || err == bufio.ErrBufferFull {
			return false, nil
		}
		return false, err
	}
	for i := range buf {
		if m[i] != buf[i] {
			return false, nil
		}
	}
	return true, nil
}

func isGzip(b *bufio.Reader) (bool, error) {
	return CheckBytes(b, []byte{0x1f, 0x8b})
}

func isBzip2(b *bufio.Reader) (bool, error) {
	return CheckBytes(b, []byte{0x42, 0x5a, 0x68})
}

// isBgzf reports whether the gzip member starting the stream carries the
// BGZF 'BC' extra subfield.
func isBgzf(b *bufio.Reader) (bool, error) {
	m, err := b.Peek(14)
	if err != nil {
		if err == io.EOF {
			return false, nil
		}
		return false, err
	}
	return m[3]&0x04 != 0 && m[12] == 'B' && m[13] == 'C', nil
}

func scanFormat(br *bufio.Reader) (Format, error) {
	if gz, err := isGzip(br); err != nil {
		return UNDEF, err
	} else if gz {
		bgz, err := isBgzf(br)
		if err != nil {
			return UNDEF, err
		}
		if bgz {
			return BGZF, nil
		}
		return GZIP, nil
	}
	if bz, err := isBzip2(br); err != nil {
		return UNDEF, err
	} else if bz {
		return BZIP2, nil
	}
	return PLAIN, nil
}
