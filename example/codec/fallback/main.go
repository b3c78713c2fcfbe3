package main

import (
	"fmt"

	"github.com/elgopher/filestorage/codec"
	"github.com/elgopher/filestorage/filestore"
	"github.com/elgopher/filestorage/json"
)

// This example shows how to read a file which can be decoded, and fail-over to its backup if not
func main() {
	s, err := filestore.New()
	if err != nil {
		panic(err)
	}

	err = json.Write(s, "/tmp/state.json.bak", &State{Name: "backup"})
	if err != nil {
		panic(err)
	}
	err = s.WriteAllText("/tmp/state.json", "{corrupted")
	if err != nil {
		panic(err)
	}

	out := &State{}
	path, err := codec.ReadFirst(s, json.Decoder(out), "/tmp/state.json", "/tmp/state.json.bak")
	if err != nil {
		panic(err)
	}

	fmt.Printf("State read: %+v\n", out)
	fmt.Println("From file:", path)
}

type State struct {
	Name string
}
