package main

import (
	"fmt"

	"github.com/elgopher/filestorage/filestore"
	"github.com/elgopher/filestorage/json"
)

// This example shows how to write and read JSON file.
func main() {
	s, err := filestore.New()
	if err != nil {
		panic(err)
	}

	in := State{
		Name: "name",
		Age:  1,
	}
	err = json.Write(s, "/tmp/state.json", &in)
	if err != nil {
		panic(err)
	}

	out := State{}
	err = json.Read(s, "/tmp/state.json", &out)
	if err != nil {
		panic(err)
	}
	fmt.Println("State read:", out)
}

type State struct {
	Name string
	Age  int
}
