package main

import (
	"github.com/elgopher/filestorage/filestore"
	"github.com/elgopher/yala/adapter/printer"
)

// This example shows how to enable logging in filestore package
func main() {
	filestore.Logger.SetAdapter(printer.StdoutAdapter())

	s, err := filestore.New(filestore.ChunkSize(8))
	if err != nil {
		panic(err)
	}

	err = s.WriteAllText("/tmp/logging.txt", "Lorem ipsum dolor sit amet")
	if err != nil {
		panic(err)
	}

	_, err = s.ReadAllBytes("/tmp/logging.txt")
	if err != nil {
		panic(err)
	}
}
