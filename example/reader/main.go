package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/elgopher/filestorage/filestore"
)

// This example shows how to list and read files written by example/writer
func main() {
	dir := filepath.Join(os.TempDir(), "filestorage")

	s, err := filestore.New()
	if err != nil {
		panic(err)
	}

	files, err := s.ListFiles(dir)
	if err != nil {
		panic(err)
	}
	fmt.Println("Files:", files)

	text, err := s.ReadAllText(filepath.Join(dir, "hello.txt"))
	if err != nil {
		panic(err)
	}
	fmt.Println("Text read:", text)

	reader, err := s.OpenRead(filepath.Join(dir, "zeros.bin"))
	if err != nil {
		panic(err)
	}
	defer reader.Close()

	n, err := io.Copy(io.Discard, reader)
	if err != nil {
		panic(err)
	}
	fmt.Println("Bytes streamed:", n)
}
