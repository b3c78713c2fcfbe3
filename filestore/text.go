// (c) 2021 Jacek Olszak
// This code is licensed under MIT license (see LICENSE for details)

package filestore

import (
	"bufio"
	"io"

	"golang.org/x/text/encoding/unicode"
)

type textReader struct {
	*bufio.Reader
	io.Closer
}

// newTextReader decodes UTF-8 lazily. Leading BOM is dropped and ill-formed bytes become U+FFFD.
func newTextReader(r io.ReadCloser) *textReader {
	decoded := unicode.UTF8BOM.NewDecoder().Reader(r)
	return &textReader{
		Reader: bufio.NewReader(decoded),
		Closer: r,
	}
}
