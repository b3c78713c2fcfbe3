// (c) 2021 Jacek Olszak
// This code is licensed under MIT license (see LICENSE for details)

package storagetest

import (
	"fmt"
	"testing"

	"github.com/elgopher/filestorage/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorage_WriteAllBytes(t *testing.T, fixtures Fixtures) {
	for name, newFixture := range fixtures {
		t.Run(name, func(t *testing.T) {

			t.Run("should return argument error for empty path", func(t *testing.T) {
				f := newFixture(t)
				err := f.Storage.WriteAllBytes("", []byte(Text))
				assert.True(t, storage.IsArgumentError(err))
				assertNoFiles(t, f)
			})

			t.Run("should return argument error for nil data", func(t *testing.T) {
				f := newFixture(t)
				err := f.Storage.WriteAllBytes(f.Path(fileName), nil)
				assert.True(t, storage.IsArgumentError(err))
				assertNoFiles(t, f)
			})

			t.Run("should create empty file", func(t *testing.T) {
				f := newFixture(t)
				// when
				err := f.Storage.WriteAllBytes(f.Path(fileName), []byte{})
				// then
				require.NoError(t, err)
				exists, err := f.Storage.Exists(f.Path(fileName))
				require.NoError(t, err)
				assert.True(t, exists)
				assert.Empty(t, ReadFile(t, f.Storage, f.Path(fileName)))
			})

			t.Run("should overwrite longer file", func(t *testing.T) {
				f := newFixture(t)
				WriteFile(t, f.Storage, f.Path(fileName), make([]byte, 100))
				// when
				err := f.Storage.WriteAllBytes(f.Path(fileName), []byte(Text))
				// then
				require.NoError(t, err)
				assert.Equal(t, []byte(Text), ReadFile(t, f.Storage, f.Path(fileName)))
			})

			t.Run("should leave exactly the same content when written twice", func(t *testing.T) {
				f := newFixture(t)
				data := Payload(5000)
				// when
				err := f.Storage.WriteAllBytes(f.Path(fileName), data)
				require.NoError(t, err)
				err = f.Storage.WriteAllBytes(f.Path(fileName), data)
				// then
				require.NoError(t, err)
				assert.Equal(t, data, ReadFile(t, f.Storage, f.Path(fileName)))
			})

			for _, size := range Sizes {
				t.Run(fmt.Sprintf("should write %d bytes", size), func(t *testing.T) {
					f := newFixture(t)
					expected := Payload(size)
					// when
					err := f.Storage.WriteAllBytes(f.Path(fileName), expected)
					// then
					require.NoError(t, err)
					actual, err := f.Storage.ReadAllBytes(f.Path(fileName))
					require.NoError(t, err)
					assert.Equal(t, expected, actual)
				})
			}
		})
	}
}

func TestStorage_WriteAllText(t *testing.T, fixtures Fixtures) {
	for name, newFixture := range fixtures {
		t.Run(name, func(t *testing.T) {

			t.Run("should return argument error for empty path", func(t *testing.T) {
				f := newFixture(t)
				err := f.Storage.WriteAllText("", Text)
				assert.True(t, storage.IsArgumentError(err))
				assertNoFiles(t, f)
			})

			t.Run("should create empty file for empty text", func(t *testing.T) {
				f := newFixture(t)
				// when
				err := f.Storage.WriteAllText(f.Path(fileName), "")
				// then
				require.NoError(t, err)
				exists, err := f.Storage.Exists(f.Path(fileName))
				require.NoError(t, err)
				assert.True(t, exists)
				text, err := f.Storage.ReadAllText(f.Path(fileName))
				require.NoError(t, err)
				assert.Equal(t, "", text)
			})

			t.Run("should write text which can be read back", func(t *testing.T) {
				f := newFixture(t)
				// when
				err := f.Storage.WriteAllText(f.Path(fileName), Text)
				// then
				require.NoError(t, err)
				exists, err := f.Storage.Exists(f.Path(fileName))
				require.NoError(t, err)
				assert.True(t, exists)
				text, err := f.Storage.ReadAllText(f.Path(fileName))
				require.NoError(t, err)
				assert.Equal(t, Text, text)
				data, err := f.Storage.ReadAllBytes(f.Path(fileName))
				require.NoError(t, err)
				assert.Len(t, data, len(Text))
			})

			t.Run("should encode text as UTF-8", func(t *testing.T) {
				f := newFixture(t)
				text := "Zażółć gęślą jaźń"
				// when
				err := f.Storage.WriteAllText(f.Path(fileName), text)
				// then
				require.NoError(t, err)
				assert.Equal(t, []byte(text), ReadFile(t, f.Storage, f.Path(fileName)))
			})

			t.Run("should overwrite existing file", func(t *testing.T) {
				f := newFixture(t)
				WriteFile(t, f.Storage, f.Path(fileName), []byte(Text))
				// when
				err := f.Storage.WriteAllText(f.Path(fileName), "short")
				// then
				require.NoError(t, err)
				text, err := f.Storage.ReadAllText(f.Path(fileName))
				require.NoError(t, err)
				assert.Equal(t, "short", text)
			})
		})
	}
}

func TestStorage_Create(t *testing.T, fixtures Fixtures) {
	for name, newFixture := range fixtures {
		t.Run(name, func(t *testing.T) {

			t.Run("should return argument error for empty path", func(t *testing.T) {
				f := newFixture(t)
				file, err := f.Storage.Create("")
				assert.True(t, storage.IsArgumentError(err))
				assert.Nil(t, file)
			})

			t.Run("should create empty file", func(t *testing.T) {
				f := newFixture(t)
				// when
				file, err := f.Storage.Create(f.Path(fileName))
				// then
				require.NoError(t, err)
				require.NoError(t, file.Close())
				assert.Empty(t, ReadFile(t, f.Storage, f.Path(fileName)))
			})

			t.Run("should truncate existing file", func(t *testing.T) {
				f := newFixture(t)
				WriteFile(t, f.Storage, f.Path(fileName), make([]byte, 100))
				// when
				file, err := f.Storage.Create(f.Path(fileName))
				// then
				require.NoError(t, err)
				require.NoError(t, file.Close())
				assert.Empty(t, ReadFile(t, f.Storage, f.Path(fileName)))
			})

			t.Run("should write and sync data", func(t *testing.T) {
				f := newFixture(t)
				file, err := f.Storage.Create(f.Path(fileName))
				require.NoError(t, err)
				// when
				_, err = file.Write([]byte(Text))
				require.NoError(t, err)
				err = file.Sync()
				require.NoError(t, err)
				err = file.Close()
				// then
				require.NoError(t, err)
				assert.Equal(t, []byte(Text), ReadFile(t, f.Storage, f.Path(fileName)))
			})
		})
	}
}

func TestStorage_OpenWrite(t *testing.T, fixtures Fixtures) {
	for name, newFixture := range fixtures {
		t.Run(name, func(t *testing.T) {

			t.Run("should return argument error for empty path", func(t *testing.T) {
				f := newFixture(t)
				file, err := f.Storage.OpenWrite("")
				assert.True(t, storage.IsArgumentError(err))
				assert.Nil(t, file)
			})

			t.Run("should create missing file", func(t *testing.T) {
				f := newFixture(t)
				// when
				file, err := f.Storage.OpenWrite(f.Path(fileName))
				// then
				require.NoError(t, err)
				require.NoError(t, file.Close())
				exists, err := f.Storage.Exists(f.Path(fileName))
				require.NoError(t, err)
				assert.True(t, exists)
			})

			t.Run("should overwrite beginning of existing file", func(t *testing.T) {
				f := newFixture(t)
				WriteFile(t, f.Storage, f.Path(fileName), []byte("0123456789"))
				file, err := f.Storage.OpenWrite(f.Path(fileName))
				require.NoError(t, err)
				// when
				_, err = file.Write([]byte("ab"))
				require.NoError(t, err)
				err = file.Close()
				// then
				require.NoError(t, err)
				assert.Equal(t, []byte("ab23456789"), ReadFile(t, f.Storage, f.Path(fileName)))
			})
		})
	}
}

func TestStorage_Delete(t *testing.T, fixtures Fixtures) {
	for name, newFixture := range fixtures {
		t.Run(name, func(t *testing.T) {

			t.Run("should return argument error for empty path", func(t *testing.T) {
				err := newFixture(t).Storage.Delete("")
				assert.True(t, storage.IsArgumentError(err))
			})

			t.Run("should not return error when file does not exist", func(t *testing.T) {
				f := newFixture(t)
				err := f.Storage.Delete(f.Path(fileName))
				assert.NoError(t, err)
			})

			t.Run("should delete file", func(t *testing.T) {
				f := newFixture(t)
				WriteFile(t, f.Storage, f.Path(fileName), []byte(Text))
				// when
				err := f.Storage.Delete(f.Path(fileName))
				// then
				require.NoError(t, err)
				_, err = f.Storage.ReadAllBytes(f.Path(fileName))
				assert.True(t, storage.IsNotFound(err))
			})

			t.Run("should not delete directory", func(t *testing.T) {
				f := newFixture(t)
				f.Mkdir(t, f.Path("dir"))
				// when
				err := f.Storage.Delete(f.Path("dir"))
				// then
				assert.Error(t, err)
				dirs, err := f.Storage.ListDirectories(f.Dir)
				require.NoError(t, err)
				assert.Equal(t, []string{f.Path("dir")}, dirs)
			})
		})
	}
}

// TestStorage runs all tests from this package
func TestStorage(t *testing.T, fixtures Fixtures) {
	t.Run("Exists", func(t *testing.T) { TestStorage_Exists(t, fixtures) })
	t.Run("ListFiles", func(t *testing.T) { TestStorage_ListFiles(t, fixtures) })
	t.Run("ListDirectories", func(t *testing.T) { TestStorage_ListDirectories(t, fixtures) })
	t.Run("OpenRead", func(t *testing.T) { TestStorage_OpenRead(t, fixtures) })
	t.Run("OpenText", func(t *testing.T) { TestStorage_OpenText(t, fixtures) })
	t.Run("ReadAllBytes", func(t *testing.T) { TestStorage_ReadAllBytes(t, fixtures) })
	t.Run("ReadAllText", func(t *testing.T) { TestStorage_ReadAllText(t, fixtures) })
	t.Run("WriteAllBytes", func(t *testing.T) { TestStorage_WriteAllBytes(t, fixtures) })
	t.Run("WriteAllText", func(t *testing.T) { TestStorage_WriteAllText(t, fixtures) })
	t.Run("Create", func(t *testing.T) { TestStorage_Create(t, fixtures) })
	t.Run("OpenWrite", func(t *testing.T) { TestStorage_OpenWrite(t, fixtures) })
	t.Run("Delete", func(t *testing.T) { TestStorage_Delete(t, fixtures) })
}

func assertNoFiles(t *testing.T, f Fixture) {
	files, err := f.Storage.ListFiles(f.Dir)
	require.NoError(t, err)
	assert.Empty(t, files)
}
