// (c) 2021 Jacek Olszak
// This code is licensed under MIT license (see LICENSE for details)

// Package filestore implements storage.Storage on top of afero.Fs. By default the operating system
// file system is used.
//
// Store does not keep any state besides configuration, so a single instance can be created at startup
// and passed to all code which needs it.
package filestore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/elgopher/filestorage/storage"
	"github.com/spf13/afero"
)

const filePerm = 0664

var _ storage.Storage = (*Store)(nil)

func New(options ...Option) (*Store, error) {
	s := &Store{
		fs:        afero.NewOsFs(),
		chunkSize: DefaultChunkSize,
	}
	for _, apply := range options {
		if apply == nil {
			continue
		}
		if err := apply(s); err != nil {
			return nil, fmt.Errorf("error applying option: %w", err)
		}
	}

	if s.root != "" {
		stat, err := s.fs.Stat(s.root)
		switch {
		case errors.Is(err, os.ErrNotExist):
			return nil, fmt.Errorf("root directory %s does not exist", s.root)
		case err != nil:
			return nil, fmt.Errorf("stat failed for root directory %s: %w", s.root, err)
		case !stat.IsDir():
			return nil, fmt.Errorf("%s is not a directory", s.root)
		}
		s.fs = afero.NewBasePathFs(s.fs, s.root)
	}

	if s.readOnly {
		s.fs = afero.NewReadOnlyFs(s.fs)
	}

	return s, nil
}

type Option func(s *Store) error

// Fs sets the file system used by Store. Useful for tests (afero.NewMemMapFs()) or for decorating the
// default file system.
func Fs(fs afero.Fs) Option {
	return func(s *Store) error {
		if fs == nil {
			return errors.New("nil fs")
		}
		s.fs = fs
		return nil
	}
}

// Root confines all paths to dir, which must be an existing directory. Paths escaping dir are reported
// as not found.
func Root(dir string) Option {
	return func(s *Store) error {
		if dir == "" {
			return errors.New("root dir is empty: must be a valid directory path")
		}
		s.root = dir
		return nil
	}
}

// ReadOnly makes every write operation fail.
var ReadOnly Option = func(s *Store) error {
	s.readOnly = true
	return nil
}

// ChunkSize limits the number of bytes passed to a single Read or Write call of the underlying file
// when a whole file is read or written.
func ChunkSize(n int) Option {
	return func(s *Store) error {
		if n <= 0 {
			return fmt.Errorf("chunk size must be positive, got %d", n)
		}
		s.chunkSize = n
		return nil
	}
}

// NoSync disables syncing the file after each chunk written by WriteAllBytes and WriteAllText.
var NoSync Option = func(s *Store) error {
	s.noSync = true
	return nil
}

type Store struct {
	fs        afero.Fs
	root      string
	readOnly  bool
	chunkSize int
	noSync    bool
}

// checkPath rejects empty paths and paths which would escape the root directory. afero.BasePathFs only
// compares string prefixes, so "../cardx" passes it when root is "/sd/card".
func (s *Store) checkPath(path string) error {
	if path == "" {
		return storage.NewArgumentError("empty path")
	}
	if s.root == "" {
		return nil
	}
	rel, err := filepath.Rel(s.root, filepath.Join(s.root, path))
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return fmt.Errorf("path %s is outside root directory: %w", path, os.ErrNotExist)
	}
	return nil
}
