// (c) 2021 Jacek Olszak
// This code is licensed under MIT license (see LICENSE for details)

package storagetest

import (
	"testing"

	"github.com/elgopher/filestorage/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorage_Exists(t *testing.T, fixtures Fixtures) {
	for name, newFixture := range fixtures {
		t.Run(name, func(t *testing.T) {

			t.Run("should return false when file does not exist", func(t *testing.T) {
				f := newFixture(t)
				exists, err := f.Storage.Exists(f.Path(fileName))
				require.NoError(t, err)
				assert.False(t, exists)
			})

			t.Run("should return false for empty path", func(t *testing.T) {
				f := newFixture(t)
				exists, err := f.Storage.Exists("")
				require.NoError(t, err)
				assert.False(t, exists)
			})

			t.Run("should return true when file exists", func(t *testing.T) {
				f := newFixture(t)
				WriteFile(t, f.Storage, f.Path(fileName), []byte(Text))
				// when
				exists, err := f.Storage.Exists(f.Path(fileName))
				// then
				require.NoError(t, err)
				assert.True(t, exists)
			})

			t.Run("should return true for empty file", func(t *testing.T) {
				f := newFixture(t)
				WriteFile(t, f.Storage, f.Path(fileName), []byte{})
				// when
				exists, err := f.Storage.Exists(f.Path(fileName))
				// then
				require.NoError(t, err)
				assert.True(t, exists)
			})

			t.Run("should return false for directory", func(t *testing.T) {
				f := newFixture(t)
				f.Mkdir(t, f.Path("dir"))
				// when
				exists, err := f.Storage.Exists(f.Path("dir"))
				// then
				require.NoError(t, err)
				assert.False(t, exists)
			})

			t.Run("should return false after file was deleted", func(t *testing.T) {
				f := newFixture(t)
				WriteFile(t, f.Storage, f.Path(fileName), []byte(Text))
				err := f.Storage.Delete(f.Path(fileName))
				require.NoError(t, err)
				// when
				exists, err := f.Storage.Exists(f.Path(fileName))
				// then
				require.NoError(t, err)
				assert.False(t, exists)
			})
		})
	}
}

func TestStorage_ListFiles(t *testing.T, fixtures Fixtures) {
	for name, newFixture := range fixtures {
		t.Run(name, func(t *testing.T) {

			t.Run("should return argument error for empty path", func(t *testing.T) {
				files, err := newFixture(t).Storage.ListFiles("")
				assert.True(t, storage.IsArgumentError(err))
				assert.Nil(t, files)
			})

			t.Run("should return error when directory does not exist", func(t *testing.T) {
				f := newFixture(t)
				files, err := f.Storage.ListFiles(f.Path("missing"))
				assert.True(t, storage.IsNotFound(err))
				assert.Nil(t, files)
			})

			t.Run("should return empty list for empty directory", func(t *testing.T) {
				f := newFixture(t)
				files, err := f.Storage.ListFiles(f.Dir)
				require.NoError(t, err)
				assert.Empty(t, files)
			})

			t.Run("should list files with their paths excluding directories", func(t *testing.T) {
				f := newFixture(t)
				WriteFile(t, f.Storage, f.Path("a"), []byte("a"))
				WriteFile(t, f.Storage, f.Path("b"), []byte{})
				f.Mkdir(t, f.Path("dir"))
				WriteFile(t, f.Storage, f.Path("dir/nested"), []byte("nested"))
				// when
				files, err := f.Storage.ListFiles(f.Dir)
				// then
				require.NoError(t, err)
				assert.ElementsMatch(t, []string{f.Path("a"), f.Path("b")}, files)
			})
		})
	}
}

func TestStorage_ListDirectories(t *testing.T, fixtures Fixtures) {
	for name, newFixture := range fixtures {
		t.Run(name, func(t *testing.T) {

			t.Run("should return argument error for empty path", func(t *testing.T) {
				dirs, err := newFixture(t).Storage.ListDirectories("")
				assert.True(t, storage.IsArgumentError(err))
				assert.Nil(t, dirs)
			})

			t.Run("should return error when directory does not exist", func(t *testing.T) {
				f := newFixture(t)
				dirs, err := f.Storage.ListDirectories(f.Path("missing"))
				assert.True(t, storage.IsNotFound(err))
				assert.Nil(t, dirs)
			})

			t.Run("should return empty list for empty directory", func(t *testing.T) {
				f := newFixture(t)
				dirs, err := f.Storage.ListDirectories(f.Dir)
				require.NoError(t, err)
				assert.Empty(t, dirs)
			})

			t.Run("should list directories with their paths excluding files", func(t *testing.T) {
				f := newFixture(t)
				f.Mkdir(t, f.Path("dir1"))
				f.Mkdir(t, f.Path("dir2"))
				f.Mkdir(t, f.Path("dir2/nested"))
				WriteFile(t, f.Storage, f.Path("file"), []byte("file"))
				// when
				dirs, err := f.Storage.ListDirectories(f.Dir)
				// then
				require.NoError(t, err)
				assert.ElementsMatch(t, []string{f.Path("dir1"), f.Path("dir2")}, dirs)
			})
		})
	}
}
