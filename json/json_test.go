// (c) 2021 Jacek Olszak
// This code is licensed under MIT license (see LICENSE for details)

package json_test

import (
	"bytes"
	"testing"

	"github.com/elgopher/filestorage/internal/tests"
	"github.com/elgopher/filestorage/json"
	"github.com/elgopher/filestorage/storagetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const path = "/state.json"

func TestWrite(t *testing.T) {
	t.Run("should write json", func(t *testing.T) {
		s := tests.OpenStore(t)
		v := State{Field: "value"}
		// when
		err := json.Write(s, path, v)
		// then
		require.NoError(t, err)
		data := storagetest.ReadFile(t, s, path)
		assert.JSONEq(t, `{"Field":"value"}`, string(data))
	})

	t.Run("should not write json on marshaling error", func(t *testing.T) {
		s := tests.OpenStore(t)
		v := InvalidState{}
		// when
		err := json.Write(s, path, v)
		// then
		assert.Error(t, err)
		// and
		exists, err := s.Exists(path)
		require.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestRead(t *testing.T) {
	t.Run("should read json", func(t *testing.T) {
		s := tests.OpenStore(t)
		storagetest.WriteFile(t, s, path, []byte(`{"Field":"value"}`))
		out := State{}
		// when
		err := json.Read(s, path, &out)
		// then
		require.NoError(t, err)
		assert.Equal(t, State{Field: "value"}, out)
	})

	t.Run("should return error on unmarshalling error", func(t *testing.T) {
		s := tests.OpenStore(t)
		storagetest.WriteFile(t, s, path, []byte(`{}`))
		// when
		err := json.Read(s, path, nil)
		// then
		assert.Error(t, err)
	})

	t.Run("should read what was written", func(t *testing.T) {
		s := tests.OpenStore(t)
		in := State{Field: storagetest.Text}
		require.NoError(t, json.Write(s, path, in))
		out := State{}
		// when
		err := json.Read(s, path, &out)
		// then
		require.NoError(t, err)
		assert.Equal(t, in, out)
	})
}

func TestEncoder(t *testing.T) {
	t.Run("should encode", func(t *testing.T) {
		var buffer bytes.Buffer
		// when
		err := json.Encoder(&State{Field: "Value"})(&buffer)
		// then
		require.NoError(t, err)
		assert.JSONEq(t, `{"Field":"Value"}`, buffer.String())
	})
}

func TestDecoder(t *testing.T) {
	t.Run("should decode", func(t *testing.T) {
		output := State{}
		// when
		err := json.Decoder(&output)(bytes.NewBufferString(`{"Field":"Value"}`))
		// then
		require.NoError(t, err)
		assert.Equal(t, State{Field: "Value"}, output)
	})
}

type State struct {
	Field string
}

type InvalidState struct {
	Filed chan string
}
