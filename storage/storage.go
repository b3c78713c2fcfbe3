// (c) 2021 Jacek Olszak
// This code is licensed under MIT license (see LICENSE for details)

// Package storage defines a file system abstraction useful for unit testing and decoupling the code
// from a concrete file system.
package storage

import "io"

// Storage provides whole-file and stream access to a file system.
//
// All methods are synchronous. Streams returned by Open*, Create and OpenWrite must be closed by the caller.
type Storage interface {
	// Exists returns true when a regular file exists at path. Returns false without error when nothing is there.
	Exists(path string) (bool, error)
	// ListDirectories returns subdirectories of path. Each entry includes path.
	ListDirectories(path string) ([]string, error)
	// ListFiles returns files of path, excluding directories. Each entry includes path.
	ListFiles(path string) ([]string, error)
	// OpenRead opens an existing file for read. Must return error when file does not exist
	OpenRead(path string) (io.ReadCloser, error)
	// OpenText opens an existing UTF-8 encoded file for read.
	OpenText(path string) (TextReader, error)
	// ReadAllBytes returns the whole content of a file
	ReadAllBytes(path string) ([]byte, error)
	// ReadAllText returns the whole content of a UTF-8 encoded file
	ReadAllText(path string) (string, error)
	// WriteAllBytes creates or overwrites the file with data. data must not be nil.
	WriteAllBytes(path string, data []byte) error
	// WriteAllText creates or overwrites the file with UTF-8 encoded contents.
	WriteAllText(path string, contents string) error
	// Create creates or truncates the file and opens it for write.
	Create(path string) (FileWriter, error)
	// OpenWrite opens the file for write without truncating it. File is created when missing.
	OpenWrite(path string) (FileWriter, error)
	// Delete does not return error when file does not exist
	Delete(path string) error
}

// FileWriter is a writable file stream. Sync flushes written data to the storage medium.
type FileWriter interface {
	io.WriteCloser
	Sync() error
}

// TextReader reads decoded UTF-8 text. A leading byte order mark is never returned.
type TextReader interface {
	io.ReadCloser
	io.RuneReader
	ReadString(delim byte) (string, error)
}
