// (c) 2021 Jacek Olszak
// This code is licensed under MIT license (see LICENSE for details)

package yaml_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/elgopher/filestorage/internal/tests"
	"github.com/elgopher/filestorage/storagetest"
	"github.com/elgopher/filestorage/yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const path = "/settings.yaml"

func TestWrite(t *testing.T) {
	t.Run("should write yaml", func(t *testing.T) {
		s := tests.OpenStore(t)
		v := Settings{Wifi: "home", Interval: 5}
		// when
		err := yaml.Write(s, path, v)
		// then
		require.NoError(t, err)
		data := storagetest.ReadFile(t, s, path)
		assert.YAMLEq(t, "wifi: home\ninterval: 5\n", string(data))
	})

	t.Run("should not write yaml on marshaling error", func(t *testing.T) {
		s := tests.OpenStore(t)
		// when
		err := yaml.Write(s, path, InvalidSettings{})
		// then
		assert.Error(t, err)
		// and
		exists, err := s.Exists(path)
		require.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestRead(t *testing.T) {
	t.Run("should read yaml", func(t *testing.T) {
		s := tests.OpenStore(t)
		storagetest.WriteFile(t, s, path, []byte("wifi: home\ninterval: 5\n"))
		out := Settings{}
		// when
		err := yaml.Read(s, path, &out)
		// then
		require.NoError(t, err)
		assert.Equal(t, Settings{Wifi: "home", Interval: 5}, out)
	})

	t.Run("should return error on unmarshalling error", func(t *testing.T) {
		s := tests.OpenStore(t)
		storagetest.WriteFile(t, s, path, []byte("wifi: [unclosed"))
		out := Settings{}
		// when
		err := yaml.Read(s, path, &out)
		// then
		assert.Error(t, err)
	})

	t.Run("should read what was written", func(t *testing.T) {
		s := tests.OpenStore(t)
		in := Settings{Wifi: storagetest.Text, Interval: 10}
		require.NoError(t, yaml.Write(s, path, in))
		out := Settings{}
		// when
		err := yaml.Read(s, path, &out)
		// then
		require.NoError(t, err)
		assert.Equal(t, in, out)
	})
}

func TestEncoder(t *testing.T) {
	t.Run("should encode", func(t *testing.T) {
		var buffer bytes.Buffer
		// when
		err := yaml.Encoder(&Settings{Wifi: "office"})(&buffer)
		// then
		require.NoError(t, err)
		assert.YAMLEq(t, "wifi: office\ninterval: 0\n", buffer.String())
	})
}

type Settings struct {
	Wifi     string `yaml:"wifi"`
	Interval int    `yaml:"interval"`
}

type InvalidSettings struct{}

func (InvalidSettings) MarshalYAML() (interface{}, error) {
	return nil, errors.New("marshal failed")
}
