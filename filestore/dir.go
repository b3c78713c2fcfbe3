// (c) 2021 Jacek Olszak
// This code is licensed under MIT license (see LICENSE for details)

package filestore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// Exists returns false for directories, empty paths and paths outside root. Errors other than
// "not exist" are returned, for example when permission was denied.
func (s *Store) Exists(path string) (bool, error) {
	if err := s.checkPath(path); err != nil {
		return false, nil
	}
	stat, err := s.fs.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("stat failed for file %s: %w", path, err)
	}
	return !stat.IsDir(), nil
}

func (s *Store) ListDirectories(path string) ([]string, error) {
	return s.list(path, true)
}

func (s *Store) ListFiles(path string) ([]string, error) {
	return s.list(path, false)
}

func (s *Store) list(path string, dirs bool) ([]string, error) {
	if err := s.checkPath(path); err != nil {
		return nil, err
	}
	fileInfos, err := afero.ReadDir(s.fs, path)
	if err != nil {
		return nil, fmt.Errorf("error reading directory %s: %w", path, err)
	}
	var entries []string
	for _, f := range fileInfos {
		if f.IsDir() == dirs {
			entries = append(entries, filepath.Join(path, f.Name()))
		}
	}
	return entries, nil
}
