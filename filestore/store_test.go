// (c) 2021 Jacek Olszak
// This code is licensed under MIT license (see LICENSE for details)

package filestore_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/elgopher/filestorage/filestore"
	"github.com/elgopher/filestorage/storagetest"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixtures = storagetest.Fixtures{
	"os":           osFixture,
	"memory":       memoryFixture,
	"root":         rootFixture,
	"small chunks": smallChunksFixture,
	"no sync":      noSyncFixture,
}

func osFixture(t *testing.T) storagetest.Fixture {
	return storagetest.Fixture{
		Storage: newStore(t),
		Dir:     t.TempDir(),
		Mkdir:   osMkdir,
	}
}

func memoryFixture(t *testing.T) storagetest.Fixture {
	fs := afero.NewMemMapFs()
	err := fs.MkdirAll("/data", 0775)
	require.NoError(t, err)
	return storagetest.Fixture{
		Storage: newStore(t, filestore.Fs(fs)),
		Dir:     "/data",
		Mkdir: func(t *testing.T, path string) {
			require.NoError(t, fs.Mkdir(path, 0775))
		},
	}
}

func rootFixture(t *testing.T) storagetest.Fixture {
	root := t.TempDir()
	return storagetest.Fixture{
		Storage: newStore(t, filestore.Root(root)),
		Dir:     string(filepath.Separator),
		Mkdir: func(t *testing.T, path string) {
			osMkdir(t, filepath.Join(root, path))
		},
	}
}

func smallChunksFixture(t *testing.T) storagetest.Fixture {
	f := osFixture(t)
	f.Storage = newStore(t, filestore.ChunkSize(7))
	return f
}

func noSyncFixture(t *testing.T) storagetest.Fixture {
	f := osFixture(t)
	f.Storage = newStore(t, filestore.NoSync)
	return f
}

func osMkdir(t *testing.T, path string) {
	err := os.Mkdir(path, 0775)
	require.NoError(t, err)
}

func newStore(t *testing.T, options ...filestore.Option) *filestore.Store {
	s, err := filestore.New(options...)
	require.NoError(t, err)
	return s
}

func TestStore(t *testing.T) {
	storagetest.TestStorage(t, fixtures)
}

func TestNew(t *testing.T) {
	t.Run("should create store with no options", func(t *testing.T) {
		s, err := filestore.New()
		require.NoError(t, err)
		assert.NotNil(t, s)
	})

	t.Run("should skip nil option", func(t *testing.T) {
		s, err := filestore.New(nil)
		require.NoError(t, err)
		assert.NotNil(t, s)
	})

	t.Run("should return error when option returned error", func(t *testing.T) {
		expectedError := &testError{}
		option := func(s *filestore.Store) error {
			return expectedError
		}
		// when
		s, err := filestore.New(option)
		// then
		assert.True(t, errors.Is(err, expectedError))
		assert.Nil(t, s)
	})

	t.Run("should return error for invalid options", func(t *testing.T) {
		options := map[string]filestore.Option{
			"zero chunk size":     filestore.ChunkSize(0),
			"negative chunk size": filestore.ChunkSize(-1),
			"nil fs":              filestore.Fs(nil),
			"empty root":          filestore.Root(""),
		}
		for name, option := range options {
			t.Run(name, func(t *testing.T) {
				s, err := filestore.New(option)
				assert.Error(t, err)
				assert.Nil(t, s)
			})
		}
	})

	t.Run("should return error when root does not exist", func(t *testing.T) {
		missing := filepath.Join(t.TempDir(), "missing")
		// when
		s, err := filestore.New(filestore.Root(missing))
		// then
		assert.Error(t, err)
		assert.Nil(t, s)
		_, err = os.Stat(missing)
		assert.True(t, os.IsNotExist(err), "root dir should not be created")
	})

	t.Run("should return error when root is a file", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "file")
		require.NoError(t, os.WriteFile(file, []byte{}, 0664))
		// when
		s, err := filestore.New(filestore.Root(file))
		// then
		assert.Error(t, err)
		assert.Nil(t, s)
	})

	t.Run("should use root of given fs", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, fs.MkdirAll("/sd/card", 0775))
		s := newStore(t, filestore.Fs(fs), filestore.Root("/sd/card"))
		// when
		err := s.WriteAllText("/file.txt", "text")
		// then
		require.NoError(t, err)
		data, err := afero.ReadFile(fs, "/sd/card/file.txt")
		require.NoError(t, err)
		assert.Equal(t, "text", string(data))
	})
}

type testError struct{}

func (e testError) Error() string {
	return "test-error"
}
