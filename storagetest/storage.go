// (c) 2021 Jacek Olszak
// This code is licensed under MIT license (see LICENSE for details)

// Package storagetest provides reusable tests useful for testing new storage.Storage implementations
package storagetest

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/elgopher/filestorage/storage"
	"github.com/stretchr/testify/require"
)

const (
	fileName = "test"
	// Text is 56 bytes long
	Text = "Lorem ipsum dolor sit amet, consectetur adipiscing elit."
)

type Fixture struct {
	Storage storage.Storage
	// Dir is an existing, empty directory
	Dir string
	// Mkdir creates a directory. Storage itself does not manage directories.
	Mkdir func(t *testing.T, path string)
}

// Path returns path of name inside fixture Dir
func (f Fixture) Path(name string) string {
	return filepath.Join(f.Dir, name)
}

type NewFixture func(t *testing.T) Fixture

type Fixtures map[string]NewFixture

// WriteFile writes data using Storage.Create, so it does not depend on WriteAllBytes
func WriteFile(t *testing.T, s storage.Storage, path string, data []byte) {
	file, err := s.Create(path)
	require.NoError(t, err)

	_, err = file.Write(data)
	require.NoError(t, err)

	err = file.Close()
	require.NoError(t, err)
}

// ReadFile reads data using Storage.OpenRead, so it does not depend on ReadAllBytes
func ReadFile(t *testing.T, s storage.Storage, path string) []byte {
	reader, err := s.OpenRead(path)
	require.NoError(t, err)
	data, err := io.ReadAll(reader)
	require.NoError(t, err)
	err = reader.Close()
	require.NoError(t, err)
	return data
}

// Payload returns size bytes of non-repeating pattern
func Payload(size int) []byte {
	data := make([]byte, size)
	for i := range data {
		data[i] = byte(i*31 + i/251)
	}
	return data
}

// Sizes are interesting file sizes for round trip tests
var Sizes = []int{0, 1, 57, 1023, 1024, 1025, 2047, 2048, 2049, 4096, 8191, 8192, 8193, 3*8192 + 1}
