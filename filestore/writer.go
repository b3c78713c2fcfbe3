// (c) 2021 Jacek Olszak
// This code is licensed under MIT license (see LICENSE for details)

package filestore

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/elgopher/filestorage/storage"
)

// WriteAllBytes creates or truncates the file and writes data in chunks. Each chunk is synced to disk
// before the next one is written, unless NoSync option was used.
func (s *Store) WriteAllBytes(path string, data []byte) error {
	if path == "" {
		return storage.NewArgumentError("empty path")
	}
	if data == nil {
		return storage.NewArgumentError("nil data: use empty slice to create an empty file")
	}

	file, err := s.openWrite(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC)
	if err != nil {
		return err
	}

	chunks, err := writeChunks(file, data, s.chunkSize, !s.noSync)
	if err != nil {
		_ = file.Close()
		return fmt.Errorf("error writing file %s after %d chunks: %w", path, chunks, err)
	}

	if err = file.Close(); err != nil {
		Logger.WithError(context.Background(), err).Error("closing written file " + path + " failed")
		return fmt.Errorf("error closing file %s: %w", path, err)
	}

	Logger.With(context.Background(), "path", path).
		Debug(fmt.Sprintf("%d bytes written in %d chunks", len(data), chunks))
	return nil
}

func (s *Store) WriteAllText(path string, contents string) error {
	return s.WriteAllBytes(path, []byte(contents))
}

func (s *Store) Create(path string) (storage.FileWriter, error) {
	return s.openWrite(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC)
}

func (s *Store) OpenWrite(path string) (storage.FileWriter, error) {
	return s.openWrite(path, os.O_WRONLY|os.O_CREATE)
}

func (s *Store) openWrite(path string, flag int) (storage.FileWriter, error) {
	if err := s.checkPath(path); err != nil {
		return nil, err
	}
	file, err := s.fs.OpenFile(path, flag, filePerm)
	if err != nil {
		return nil, fmt.Errorf("error opening the file %s for writing: %w", path, err)
	}
	return file, nil
}

func (s *Store) Delete(path string) error {
	if err := s.checkPath(path); err != nil {
		return err
	}

	stat, err := s.fs.Stat(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return nil
	case err != nil:
		return fmt.Errorf("stat failed for file %s: %w", path, err)
	case stat.IsDir():
		return fmt.Errorf("%s is a directory", path)
	}

	err = s.fs.Remove(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("error removing file %s: %w", path, err)
	}
	return nil
}
