// (c) 2021 Jacek Olszak
// This code is licensed under MIT license (see LICENSE for details)

// Package failing provides functions decorating afero.Fs with errors
package failing

import (
	"errors"
	"os"

	"github.com/spf13/afero"
)

func Open(decoratedFs afero.Fs) *Fs {
	fs := DecorateFs(decoratedFs)
	fs.open = func(name string) (afero.File, error) {
		return nil, errors.New("open failed")
	}
	return fs
}

func OpenFile(decoratedFs afero.Fs) *Fs {
	fs := DecorateFs(decoratedFs)
	fs.openFile = func(name string, flag int, perm os.FileMode) (afero.File, error) {
		return nil, errors.New("openFile failed")
	}
	return fs
}

func Stat(decoratedFs afero.Fs) *Fs {
	fs := DecorateFs(decoratedFs)
	fs.stat = func(name string) (os.FileInfo, error) {
		return nil, errors.New("stat failed")
	}
	return fs
}

func Remove(decoratedFs afero.Fs) *Fs {
	fs := DecorateFs(decoratedFs)
	fs.remove = func(name string) error {
		return errors.New("remove failed")
	}
	return fs
}

func DecorateFs(fs afero.Fs) *Fs {
	return &Fs{
		Fs:       fs,
		open:     fs.Open,
		openFile: fs.OpenFile,
		stat:     fs.Stat,
		remove:   fs.Remove,
	}
}

// Fs delegates all methods to decorated afero.Fs, except the ones replaced by functions of this package.
type Fs struct {
	afero.Fs
	open     func(name string) (afero.File, error)
	openFile func(name string, flag int, perm os.FileMode) (afero.File, error)
	stat     func(name string) (os.FileInfo, error)
	remove   func(name string) error
}

func (f *Fs) Open(name string) (afero.File, error) {
	return f.open(name)
}

func (f *Fs) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	return f.openFile(name, flag, perm)
}

func (f *Fs) Stat(name string) (os.FileInfo, error) {
	return f.stat(name)
}

func (f *Fs) Remove(name string) error {
	return f.remove(name)
}
