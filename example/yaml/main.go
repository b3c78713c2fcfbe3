package main

import (
	"fmt"

	"github.com/elgopher/filestorage/filestore"
	"github.com/elgopher/filestorage/yaml"
)

// This example shows how to keep device settings in YAML file.
func main() {
	s, err := filestore.New()
	if err != nil {
		panic(err)
	}

	err = yaml.Write(s, "/tmp/settings.yaml", Settings{Wifi: "home", Interval: 5})
	if err != nil {
		panic(err)
	}

	out := Settings{}
	err = yaml.Read(s, "/tmp/settings.yaml", &out)
	if err != nil {
		panic(err)
	}
	fmt.Printf("Settings read: %+v\n", out)
}

type Settings struct {
	Wifi     string `yaml:"wifi"`
	Interval int    `yaml:"interval"`
}
