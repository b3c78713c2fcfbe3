// (c) 2021 Jacek Olszak
// This code is licensed under MIT license (see LICENSE for details)

package yaml

import (
	"io"

	"github.com/elgopher/filestorage/codec"
	"gopkg.in/yaml.v3"
)

func Read(s codec.ReadOnlyStorage, path string, out interface{}) error {
	return codec.Read(s, path, Decoder(out))
}

func Decoder(out interface{}) codec.Decoder {
	return func(reader io.Reader) error {
		return yaml.NewDecoder(reader).Decode(out)
	}
}

func Write(s codec.WriteOnlyStorage, path string, in interface{}) error {
	return codec.Write(s, path, Encoder(in))
}

func Encoder(in interface{}) codec.Encoder {
	return func(writer io.Writer) error {
		encoder := yaml.NewEncoder(writer)
		encoder.SetIndent(2)
		if err := encoder.Encode(in); err != nil {
			return err
		}
		return encoder.Close()
	}
}
