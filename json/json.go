// (c) 2021 Jacek Olszak
// This code is licensed under MIT license (see LICENSE for details)

package json

import (
	"encoding/json"
	"io"

	"github.com/elgopher/filestorage/codec"
)

func Read(s codec.ReadOnlyStorage, path string, out interface{}) error {
	return codec.Read(s, path, Decoder(out))
}

func Decoder(out interface{}) codec.Decoder {
	return func(reader io.Reader) error {
		return json.NewDecoder(reader).Decode(out)
	}
}

func Write(s codec.WriteOnlyStorage, path string, in interface{}) error {
	return codec.Write(s, path, Encoder(in))
}

func Encoder(in interface{}) codec.Encoder {
	return func(writer io.Writer) error {
		return json.NewEncoder(writer).Encode(in)
	}
}
