package kvstore

import (
	"errors"
	"testing"
)

func TestMemory(t *testing.T) {
	t.Run("missing key", func(t *testing.T) {
		kvs := &Memory{}
		value, err := kvs.Get("API_TOKEN")
		if !errors.Is(err, ErrNoSuchKey) {
			t.Fatal("not the error we expected", err)
		}
		if value != nil {
			t.Fatal("expected nil value")
		}
	})

	t.Run("set and get", func(t *testing.T) {
		kvs := &Memory{}
		if err := kvs.Set("API_TOKEN", []byte("abc")); err != nil {
			t.Fatal(err)
		}
		value, err := kvs.Get("API_TOKEN")
		if err != nil {
			t.Fatal(err)
		}
		if string(value) != "abc" {
			t.Fatal("unexpected value", string(value))
		}
	})

	t.Run("the stored value does not alias the caller buffer", func(t *testing.T) {
		kvs := &Memory{}
		buf := []byte("abc")
		if err := kvs.Set("API_TOKEN", buf); err != nil {
			t.Fatal(err)
		}
		buf[0] = 'x'
		value, _ := kvs.Get("API_TOKEN")
		if string(value) != "abc" {
			t.Fatal("unexpected value", string(value))
		}
	})
}
