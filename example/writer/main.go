package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/elgopher/filestorage/filestore"
)

// This example shows how to write whole files. Data is written in chunks of 512 bytes and each chunk is
// synced before next one is written.
func main() {
	dir := filepath.Join(os.TempDir(), "filestorage")
	if err := os.MkdirAll(dir, 0775); err != nil {
		panic(err)
	}

	s, err := filestore.New(filestore.ChunkSize(512))
	if err != nil {
		panic(err)
	}

	err = s.WriteAllText(filepath.Join(dir, "hello.txt"), "Hello, world")
	if err != nil {
		panic(err)
	}

	err = s.WriteAllBytes(filepath.Join(dir, "zeros.bin"), make([]byte, 4096))
	if err != nil {
		panic(err)
	}

	fmt.Println("Files saved in", dir)
}
