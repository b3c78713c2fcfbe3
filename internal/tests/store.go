// (c) 2021 Jacek Olszak
// This code is licensed under MIT license (see LICENSE for details)

package tests

import (
	"errors"
	"io"
	"testing"

	"github.com/elgopher/filestorage/filestore"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// OpenStore returns Store backed by a fresh in-memory file system
func OpenStore(t *testing.T) *filestore.Store {
	s, err := filestore.New(filestore.Fs(afero.NewMemMapFs()))
	require.NoError(t, err)
	return s
}

type StorageMock struct {
	ReturnReader      io.ReadCloser
	ReturnReaderError error
	ReturnWriteError  error
	WrittenPath       string
	WrittenData       []byte
}

func (s *StorageMock) OpenRead(string) (io.ReadCloser, error) {
	return s.ReturnReader, s.ReturnReaderError
}

func (s *StorageMock) WriteAllBytes(path string, data []byte) error {
	s.WrittenPath = path
	s.WrittenData = data
	return s.ReturnWriteError
}

type ReaderMock struct {
	closed bool
}

func (r *ReaderMock) Read([]byte) (n int, err error) {
	return 0, io.EOF
}

func (r *ReaderMock) Close() error {
	r.closed = true
	return nil
}

func (r *ReaderMock) IsClosed() bool {
	return r.closed
}

type ReaderFailingOnRead struct {
	ReaderMock
}

func (r *ReaderFailingOnRead) Read([]byte) (n int, err error) {
	return 0, errors.New("error")
}

type ReaderFailingOnClose struct {
	ReaderMock
}

func (r *ReaderFailingOnClose) Close() error {
	return errors.New("error")
}
