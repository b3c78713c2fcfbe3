package filestore_test

import (
	"context"
	"testing"

	"github.com/elgopher/filestorage/failing"
	"github.com/elgopher/filestorage/filestore"
	"github.com/elgopher/filestorage/storagetest"
	"github.com/elgopher/yala/logger"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	t.Run("should log written file", func(t *testing.T) {
		adapter := captureLogs(t)
		s := newStore(t, filestore.Fs(afero.NewMemMapFs()), filestore.ChunkSize(16))
		// when
		err := s.WriteAllBytes(file, storagetest.Payload(40))
		// then
		require.NoError(t, err)
		require.Len(t, adapter.entries, 1)
		assert.Equal(t, logger.DebugLevel, adapter.entries[0].Level)
		assert.Equal(t, "40 bytes written in 3 chunks", adapter.entries[0].Message)
	})

	t.Run("should log read file", func(t *testing.T) {
		adapter := captureLogs(t)
		s := newStore(t, filestore.Fs(memFsWithFile(t, storagetest.Payload(40))))
		// when
		_, err := s.ReadAllBytes(file)
		// then
		require.NoError(t, err)
		require.Len(t, adapter.entries, 1)
		assert.Equal(t, logger.DebugLevel, adapter.entries[0].Level)
		assert.Equal(t, "40 bytes read", adapter.entries[0].Message)
	})

	t.Run("should warn about truncated file", func(t *testing.T) {
		adapter := captureLogs(t)
		fs := failing.Truncated(memFsWithFile(t, storagetest.Payload(40)), 10)
		s := newStore(t, filestore.Fs(fs))
		// when
		_, err := s.ReadAllBytes(file)
		// then
		require.Error(t, err)
		require.Len(t, adapter.entries, 1)
		assert.Equal(t, logger.WarnLevel, adapter.entries[0].Level)
		assert.Error(t, adapter.entries[0].Error)
	})

	t.Run("should log error when written file could not be closed", func(t *testing.T) {
		adapter := captureLogs(t)
		s := newStore(t, filestore.Fs(failing.Close(afero.NewMemMapFs())))
		// when
		err := s.WriteAllText(file, "text")
		// then
		require.Error(t, err)
		require.Len(t, adapter.entries, 1, "nothing but the error should be logged")
		assert.Equal(t, logger.ErrorLevel, adapter.entries[0].Level)
		assert.Error(t, adapter.entries[0].Error)
	})
}

func captureLogs(t *testing.T) *capturingAdapter {
	adapter := &capturingAdapter{}
	filestore.Logger.SetAdapter(adapter)
	t.Cleanup(func() {
		filestore.Logger.SetAdapter(discardAdapter{})
	})
	return adapter
}

type capturingAdapter struct {
	entries []logger.Entry
}

func (c *capturingAdapter) Log(_ context.Context, entry logger.Entry) {
	c.entries = append(c.entries, entry)
}

type discardAdapter struct{}

func (discardAdapter) Log(context.Context, logger.Entry) {}
