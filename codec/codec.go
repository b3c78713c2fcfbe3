// (c) 2021 Jacek Olszak
// This code is licensed under MIT license (see LICENSE for details)

// Package codec reads and writes whole files using custom decoders and encoders.
package codec

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

// Read opens the file, runs decoder and closes the file, even when decoder failed.
func Read(s ReadOnlyStorage, path string, decoder Decoder) error {
	if s == nil {
		return errors.New("nil storage")
	}
	if decoder == nil {
		return errors.New("nil decoder")
	}
	reader, err := s.OpenRead(path)
	if err != nil {
		return err
	}
	err = decoder(reader)
	if err != nil {
		_ = reader.Close()
		return err
	}
	return reader.Close()
}

type Decoder func(reader io.Reader) error

// Write encodes into memory first and then writes the whole file at once. When encoder fails,
// the file is not touched.
func Write(s WriteOnlyStorage, path string, encoder Encoder) error {
	if s == nil {
		return errors.New("nil storage")
	}
	if encoder == nil {
		return errors.New("nil encoder")
	}
	var buffer bytes.Buffer
	if err := encoder(&buffer); err != nil {
		return err
	}
	data := buffer.Bytes()
	if data == nil {
		data = []byte{}
	}
	return s.WriteAllBytes(path, data)
}

type Encoder func(writer io.Writer) error

// ReadFirst reads the first file from paths which can be decoded, for example a file and its backup.
// Returns path of the decoded file.
func ReadFirst(s ReadOnlyStorage, decoder Decoder, paths ...string) (string, error) {
	if s == nil {
		return "", errors.New("nil storage")
	}
	if decoder == nil {
		return "", errors.New("nil decoder")
	}
	if len(paths) == 0 {
		return "", errors.New("no paths given")
	}
	var lastErr error
	for _, path := range paths {
		lastErr = Read(s, path, decoder)
		if lastErr == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("no file can be decoded: %w", lastErr)
}

type ReadOnlyStorage interface {
	OpenRead(path string) (io.ReadCloser, error)
}

type WriteOnlyStorage interface {
	WriteAllBytes(path string, data []byte) error
}
