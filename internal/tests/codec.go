// (c) 2021 Jacek Olszak
// This code is licensed under MIT license (see LICENSE for details)

package tests

import (
	"io"
)

type FakeDecoder struct {
	dataRead []byte
	calls    int
}

func (f *FakeDecoder) Decode(reader io.Reader) error {
	f.calls++
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	f.dataRead = data
	return nil
}

func (f *FakeDecoder) DataRead() []byte {
	return f.dataRead
}

func (f *FakeDecoder) Calls() int {
	return f.calls
}
