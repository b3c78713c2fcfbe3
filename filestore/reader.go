// (c) 2021 Jacek Olszak
// This code is licensed under MIT license (see LICENSE for details)

package filestore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/elgopher/filestorage/storage"
	"github.com/spf13/afero"
)

// OpenRead opens the file for read. The caller must close the returned stream.
func (s *Store) OpenRead(path string) (io.ReadCloser, error) {
	file, _, err := s.openRead(path)
	if err != nil {
		return nil, err
	}
	return file, nil
}

// OpenText opens the file and decodes its content as UTF-8, dropping a leading byte order mark.
func (s *Store) OpenText(path string) (storage.TextReader, error) {
	file, _, err := s.openRead(path)
	if err != nil {
		return nil, err
	}
	return newTextReader(file), nil
}

// ReadAllBytes reads the whole file in chunks. io.ErrUnexpectedEOF is returned when the file turns out
// to be shorter than its size.
func (s *Store) ReadAllBytes(path string) (data []byte, err error) {
	file, info, err := s.openRead(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			data, err = nil, fmt.Errorf("error closing file %s: %w", path, closeErr)
		}
	}()

	data, err = readChunks(file, info.Size(), s.chunkSize)
	if errors.Is(err, io.ErrUnexpectedEOF) {
		Logger.WithError(context.Background(), err).Warn("file " + path + " is shorter than its reported size")
	}
	if err != nil {
		return nil, fmt.Errorf("error reading file %s: %w", path, err)
	}

	Logger.With(context.Background(), "path", path).Debug(fmt.Sprintf("%d bytes read", len(data)))
	return data, nil
}

// ReadAllText reads the whole file as UTF-8 text.
func (s *Store) ReadAllText(path string) (text string, err error) {
	reader, err := s.OpenText(path)
	if err != nil {
		return "", err
	}
	defer func() {
		if closeErr := reader.Close(); closeErr != nil && err == nil {
			text, err = "", fmt.Errorf("error closing file %s: %w", path, closeErr)
		}
	}()

	data, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("error reading file %s: %w", path, err)
	}
	return string(data), nil
}

func (s *Store) openRead(path string) (afero.File, os.FileInfo, error) {
	if err := s.checkPath(path); err != nil {
		return nil, nil, err
	}

	file, err := s.fs.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("error opening file %s for reading: %w", path, err)
	}

	info, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, nil, fmt.Errorf("stat failed for file %s: %w", path, err)
	}
	if info.IsDir() {
		_ = file.Close()
		return nil, nil, fmt.Errorf("%s is a directory", path)
	}

	return file, info, nil
}
