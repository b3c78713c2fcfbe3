// (c) 2021 Jacek Olszak
// This code is licensed under MIT license (see LICENSE for details)

package failing

import (
	"errors"
	"io"
	"os"

	"github.com/spf13/afero"
)

// Truncated returns files which end after n bytes, even though their Stat still reports the real size.
// Mimics a device which lost part of a file.
func Truncated(decoratedFs afero.Fs, n int64) *Fs {
	return decorateFiles(decoratedFs, func(f *file) {
		remaining := n
		f.read = func(p []byte) (int, error) {
			if remaining <= 0 {
				return 0, io.EOF
			}
			if int64(len(p)) > remaining {
				p = p[:remaining]
			}
			read, err := f.File.Read(p)
			remaining -= int64(read)
			return read, err
		}
	})
}

func Read(decoratedFs afero.Fs) *Fs {
	return decorateFiles(decoratedFs, func(f *file) {
		f.read = func(p []byte) (int, error) {
			return 0, errors.New("read failed")
		}
	})
}

func Write(decoratedFs afero.Fs) *Fs {
	return decorateFiles(decoratedFs, func(f *file) {
		f.write = func(p []byte) (int, error) {
			return 0, errors.New("write failed")
		}
	})
}

// WriteOnce fails only the first Write call of each file.
func WriteOnce(decoratedFs afero.Fs) *Fs {
	return decorateFiles(decoratedFs, func(f *file) {
		failed := false
		f.write = func(p []byte) (int, error) {
			if !failed {
				failed = true
				return 0, errors.New("write failed")
			}
			return f.File.Write(p)
		}
	})
}

func Sync(decoratedFs afero.Fs) *Fs {
	return decorateFiles(decoratedFs, func(f *file) {
		f.sync = func() error {
			return errors.New("sync failed")
		}
	})
}

// Close closes the decorated file but returns error anyway.
func Close(decoratedFs afero.Fs) *Fs {
	return decorateFiles(decoratedFs, func(f *file) {
		f.close = func() error {
			_ = f.File.Close()
			return errors.New("close failed")
		}
	})
}

func decorateFiles(decoratedFs afero.Fs, decorate func(*file)) *Fs {
	fs := DecorateFs(decoratedFs)
	fs.open = func(name string) (afero.File, error) {
		f, err := decoratedFs.Open(name)
		if err != nil {
			return nil, err
		}
		return newFile(f, decorate), nil
	}
	fs.openFile = func(name string, flag int, perm os.FileMode) (afero.File, error) {
		f, err := decoratedFs.OpenFile(name, flag, perm)
		if err != nil {
			return nil, err
		}
		return newFile(f, decorate), nil
	}
	return fs
}

func newFile(decorated afero.File, decorate func(*file)) *file {
	f := &file{
		File:  decorated,
		read:  decorated.Read,
		write: decorated.Write,
		sync:  decorated.Sync,
		close: decorated.Close,
	}
	decorate(f)
	return f
}

type file struct {
	afero.File
	read  func(p []byte) (int, error)
	write func(p []byte) (int, error)
	sync  func() error
	close func() error
}

func (f *file) Read(p []byte) (int, error) {
	return f.read(p)
}

func (f *file) Write(p []byte) (int, error) {
	return f.write(p)
}

func (f *file) Sync() error {
	return f.sync()
}

func (f *file) Close() error {
	return f.close()
}
