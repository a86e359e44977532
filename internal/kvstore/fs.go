package kvstore

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/finboard/finboard-cli/internal/model"
	"github.com/rogpeppe/go-internal/lockedfile"
)

// ErrInvalidKey indicates that a key cannot be mapped to a file name.
var ErrInvalidKey = errors.New("invalid key")

// FS is a file-system based KVStore. Each key is a file inside the
// base directory and reads and writes hold a file lock, so that two
// finboard processes sharing the same home do not see torn values.
type FS struct {
	basedir string
}

var _ model.KeyValueStore = &FS{}

// NewFS creates a new kvstore.FS rooted at basedir.
func NewFS(basedir string) (kvs *FS, err error) {
	return newFileSystem(basedir, os.MkdirAll)
}

// osMkdirAll is the type of os.MkdirAll.
type osMkdirAll func(path string, perm fs.FileMode) error

// newFileSystem is like NewFS with a customizable
// osMkdirAll function for creating the kvstore dir.
func newFileSystem(basedir string, mkdir osMkdirAll) (*FS, error) {
	if err := mkdir(basedir, 0700); err != nil {
		return nil, err
	}
	return &FS{basedir: basedir}, nil
}

// filename returns the filename for a given key.
func (kvs *FS) filename(key string) (string, error) {
	if key == "" || key == "." || key == ".." || strings.ContainsAny(key, `/\`) {
		return "", fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return filepath.Join(kvs.basedir, key), nil
}

// Get returns the specified key's value. When the key does not
// exist, the error is such that errors.Is(err, ErrNoSuchKey).
func (kvs *FS) Get(key string) ([]byte, error) {
	filename, err := kvs.filename(key)
	if err != nil {
		return nil, err
	}
	data, err := lockedfile.Read(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNoSuchKey, err.Error())
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Set sets the value of a specific key.
func (kvs *FS) Set(key string, value []byte) error {
	filename, err := kvs.filename(key)
	if err != nil {
		return err
	}
	return lockedfile.Write(filename, bytes.NewReader(value), 0600)
}
