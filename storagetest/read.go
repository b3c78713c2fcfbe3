// (c) 2021 Jacek Olszak
// This code is licensed under MIT license (see LICENSE for details)

package storagetest

import (
	"fmt"
	"io"
	"testing"

	"github.com/elgopher/filestorage/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorage_OpenRead(t *testing.T, fixtures Fixtures) {
	for name, newFixture := range fixtures {
		t.Run(name, func(t *testing.T) {

			t.Run("should return argument error for empty path", func(t *testing.T) {
				reader, err := newFixture(t).Storage.OpenRead("")
				assert.True(t, storage.IsArgumentError(err))
				assert.Nil(t, reader)
			})

			t.Run("should return error when file does not exist", func(t *testing.T) {
				f := newFixture(t)
				reader, err := f.Storage.OpenRead(f.Path(fileName))
				assert.True(t, storage.IsNotFound(err))
				assert.Nil(t, reader)
			})

			t.Run("should return error for directory", func(t *testing.T) {
				f := newFixture(t)
				f.Mkdir(t, f.Path("dir"))
				reader, err := f.Storage.OpenRead(f.Path("dir"))
				assert.Error(t, err)
				assert.Nil(t, reader)
			})

			t.Run("should open existing file", func(t *testing.T) {
				f := newFixture(t)
				WriteFile(t, f.Storage, f.Path(fileName), []byte(Text))
				// when
				reader, err := f.Storage.OpenRead(f.Path(fileName))
				// then
				require.NoError(t, err)
				defer reader.Close()
				actual, err := io.ReadAll(reader)
				require.NoError(t, err)
				assert.Equal(t, []byte(Text), actual)
			})
		})
	}
}

func TestStorage_OpenText(t *testing.T, fixtures Fixtures) {
	for name, newFixture := range fixtures {
		t.Run(name, func(t *testing.T) {

			t.Run("should return argument error for empty path", func(t *testing.T) {
				reader, err := newFixture(t).Storage.OpenText("")
				assert.True(t, storage.IsArgumentError(err))
				assert.Nil(t, reader)
			})

			t.Run("should return error when file does not exist", func(t *testing.T) {
				f := newFixture(t)
				reader, err := f.Storage.OpenText(f.Path(fileName))
				assert.True(t, storage.IsNotFound(err))
				assert.Nil(t, reader)
			})

			t.Run("should read lines", func(t *testing.T) {
				f := newFixture(t)
				WriteFile(t, f.Storage, f.Path(fileName), []byte("first\nsecond"))
				reader, err := f.Storage.OpenText(f.Path(fileName))
				require.NoError(t, err)
				defer reader.Close()
				// when
				first, err := reader.ReadString('\n')
				// then
				require.NoError(t, err)
				assert.Equal(t, "first\n", first)
				// when
				second, err := reader.ReadString('\n')
				// then
				assert.ErrorIs(t, err, io.EOF)
				assert.Equal(t, "second", second)
			})

			t.Run("should read runes", func(t *testing.T) {
				f := newFixture(t)
				WriteFile(t, f.Storage, f.Path(fileName), []byte("żółw"))
				reader, err := f.Storage.OpenText(f.Path(fileName))
				require.NoError(t, err)
				defer reader.Close()
				// when
				r, size, err := reader.ReadRune()
				// then
				require.NoError(t, err)
				assert.Equal(t, 'ż', r)
				assert.Equal(t, 2, size)
			})

			t.Run("should skip byte order mark", func(t *testing.T) {
				f := newFixture(t)
				WriteFile(t, f.Storage, f.Path(fileName), append([]byte{0xEF, 0xBB, 0xBF}, Text...))
				reader, err := f.Storage.OpenText(f.Path(fileName))
				require.NoError(t, err)
				defer reader.Close()
				// when
				actual, err := io.ReadAll(reader)
				// then
				require.NoError(t, err)
				assert.Equal(t, Text, string(actual))
			})
		})
	}
}

func TestStorage_ReadAllBytes(t *testing.T, fixtures Fixtures) {
	for name, newFixture := range fixtures {
		t.Run(name, func(t *testing.T) {

			t.Run("should return argument error for empty path", func(t *testing.T) {
				data, err := newFixture(t).Storage.ReadAllBytes("")
				assert.True(t, storage.IsArgumentError(err))
				assert.Nil(t, data)
			})

			t.Run("should return error when file does not exist", func(t *testing.T) {
				f := newFixture(t)
				data, err := f.Storage.ReadAllBytes(f.Path(fileName))
				assert.True(t, storage.IsNotFound(err))
				assert.Nil(t, data)
			})

			t.Run("should return error for directory", func(t *testing.T) {
				f := newFixture(t)
				f.Mkdir(t, f.Path("dir"))
				data, err := f.Storage.ReadAllBytes(f.Path("dir"))
				assert.Error(t, err)
				assert.Nil(t, data)
			})

			t.Run("should read all content from file", func(t *testing.T) {
				f := newFixture(t)
				WriteFile(t, f.Storage, f.Path(fileName), []byte(Text))
				// when
				data, err := f.Storage.ReadAllBytes(f.Path(fileName))
				// then
				require.NoError(t, err)
				assert.Equal(t, []byte(Text), data)
			})

			for _, size := range Sizes {
				t.Run(fmt.Sprintf("should read file of %d bytes", size), func(t *testing.T) {
					f := newFixture(t)
					expected := Payload(size)
					WriteFile(t, f.Storage, f.Path(fileName), expected)
					// when
					data, err := f.Storage.ReadAllBytes(f.Path(fileName))
					// then
					require.NoError(t, err)
					require.Len(t, data, size)
					assert.Equal(t, expected, data)
				})
			}
		})
	}
}

func TestStorage_ReadAllText(t *testing.T, fixtures Fixtures) {
	for name, newFixture := range fixtures {
		t.Run(name, func(t *testing.T) {

			t.Run("should return argument error for empty path", func(t *testing.T) {
				text, err := newFixture(t).Storage.ReadAllText("")
				assert.True(t, storage.IsArgumentError(err))
				assert.Empty(t, text)
			})

			t.Run("should return error when file does not exist", func(t *testing.T) {
				f := newFixture(t)
				text, err := f.Storage.ReadAllText(f.Path(fileName))
				assert.True(t, storage.IsNotFound(err))
				assert.Empty(t, text)
			})

			t.Run("should read all content from file", func(t *testing.T) {
				f := newFixture(t)
				WriteFile(t, f.Storage, f.Path(fileName), []byte(Text))
				// when
				text, err := f.Storage.ReadAllText(f.Path(fileName))
				// then
				require.NoError(t, err)
				assert.Equal(t, Text, text)
			})

			t.Run("should read empty file", func(t *testing.T) {
				f := newFixture(t)
				WriteFile(t, f.Storage, f.Path(fileName), []byte{})
				// when
				text, err := f.Storage.ReadAllText(f.Path(fileName))
				// then
				require.NoError(t, err)
				assert.Equal(t, "", text)
			})

			t.Run("should replace invalid UTF-8 sequence", func(t *testing.T) {
				f := newFixture(t)
				WriteFile(t, f.Storage, f.Path(fileName), []byte("a\xffb"))
				// when
				text, err := f.Storage.ReadAllText(f.Path(fileName))
				// then
				require.NoError(t, err)
				assert.Equal(t, "a�b", text)
			})
		})
	}
}
