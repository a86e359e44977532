package kvstore

import (
	"bytes"
	"errors"
	"io/fs"
	"path/filepath"
	"testing"
)

func TestFileSystemGood(t *testing.T) {
	kvstore, err := NewFS(filepath.Join(t.TempDir(), "kvstore"))
	if err != nil {
		t.Fatal(err)
	}
	value := []byte("foobar")
	if err := kvstore.Set("API_TOKEN", value); err != nil {
		t.Fatal(err)
	}
	ovalue, err := kvstore.Get("API_TOKEN")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(ovalue, value) {
		t.Fatal("invalid value")
	}
}

func TestFileSystemOverwrite(t *testing.T) {
	kvstore, err := NewFS(filepath.Join(t.TempDir(), "kvstore"))
	if err != nil {
		t.Fatal(err)
	}
	if err := kvstore.Set("API_TOKEN", []byte("a-much-longer-value")); err != nil {
		t.Fatal(err)
	}
	if err := kvstore.Set("API_TOKEN", []byte("short")); err != nil {
		t.Fatal(err)
	}
	ovalue, err := kvstore.Get("API_TOKEN")
	if err != nil {
		t.Fatal(err)
	}
	if string(ovalue) != "short" {
		t.Fatal("invalid value", string(ovalue))
	}
}

func TestFileSystemNoSuchKey(t *testing.T) {
	kvstore, err := NewFS(filepath.Join(t.TempDir(), "kvstore"))
	if err != nil {
		t.Fatal(err)
	}
	value, err := kvstore.Get("API_TOKEN")
	if !errors.Is(err, ErrNoSuchKey) {
		t.Fatal("not the error we expected", err)
	}
	if value != nil {
		t.Fatal("expected nil value")
	}
}

func TestFileSystemInvalidKey(t *testing.T) {
	kvstore, err := NewFS(filepath.Join(t.TempDir(), "kvstore"))
	if err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"", ".", "..", "../escape", `a\b`} {
		t.Run(key, func(t *testing.T) {
			if _, err := kvstore.Get(key); !errors.Is(err, ErrInvalidKey) {
				t.Fatal("unexpected Get error", err)
			}
			if err := kvstore.Set(key, []byte("x")); !errors.Is(err, ErrInvalidKey) {
				t.Fatal("unexpected Set error", err)
			}
		})
	}
}

func TestFileSystemWithFailure(t *testing.T) {
	expect := errors.New("mocked error")
	mkdir := func(path string, perm fs.FileMode) error {
		return expect
	}
	kvstore, err := newFileSystem(filepath.Join(t.TempDir(), "kvstore"), mkdir)
	if !errors.Is(err, expect) {
		t.Fatal("not the error we expected", err)
	}
	if kvstore != nil {
		t.Fatal("expected nil here")
	}
}
