// (c) 2021 Jacek Olszak
// This code is licensed under MIT license (see LICENSE for details)

package filestore

import (
	"errors"
	"fmt"
	"io"
	"math"
)

const DefaultChunkSize = 2048

// readChunks reads exactly size bytes, passing at most chunkSize bytes to a single r.Read call.
// A Read returning no data before size bytes were read ends with io.ErrUnexpectedEOF. Partial data
// is never returned.
func readChunks(r io.Reader, size int64, chunkSize int) ([]byte, error) {
	if size < 0 || size > math.MaxInt {
		return nil, fmt.Errorf("invalid file size %d", size)
	}

	data := make([]byte, size)
	offset := 0
	remaining := len(data)

	for remaining > 0 {
		n, err := r.Read(data[offset : offset+min(remaining, chunkSize)])
		if n == 0 {
			if err != nil && !errors.Is(err, io.EOF) {
				return nil, err
			}
			return nil, io.ErrUnexpectedEOF
		}
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
		offset += n
		remaining -= n
	}

	return data, nil
}

type syncWriter interface {
	io.Writer
	Sync() error
}

// writeChunks writes data in chunks of chunkSize bytes. When sync is true, w is synced after each chunk.
func writeChunks(w syncWriter, data []byte, chunkSize int, sync bool) (chunks int, err error) {
	for offset := 0; offset < len(data); offset += chunkSize {
		end := min(offset+chunkSize, len(data))
		if _, err = w.Write(data[offset:end]); err != nil {
			return chunks, err
		}
		if sync {
			if err = w.Sync(); err != nil {
				return chunks, fmt.Errorf("sync failed: %w", err)
			}
		}
		chunks++
	}
	return chunks, nil
}
