package utils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/finboard/finboard-cli/config"
	"github.com/google/go-cmp/cmp"
)

func TestGetFinboardHome(t *testing.T) {
	t.Run("from the environment", func(t *testing.T) {
		t.Setenv(config.EnvHome, "/tmp/finboard-test")
		home, err := GetFinboardHome()
		if err != nil {
			t.Fatal(err)
		}
		if home != "/tmp/finboard-test" {
			t.Fatal("unexpected home", home)
		}
	})

	t.Run("from the user home", func(t *testing.T) {
		t.Setenv(config.EnvHome, "")
		home, err := GetFinboardHome()
		if err != nil {
			t.Fatal(err)
		}
		if !strings.HasSuffix(home, string(filepath.Separator)+".finboard") {
			t.Fatal("unexpected home", home)
		}
	})
}

func TestRequiredDirs(t *testing.T) {
	expect := []string{filepath.Join("home", "kvstore")}
	if diff := cmp.Diff(expect, RequiredDirs("home")); diff != "" {
		t.Fatal(diff)
	}
}

func TestConfigPath(t *testing.T) {
	home := t.TempDir()
	if got := ConfigPath(home); got != filepath.Join(home, "config.json") {
		t.Fatal("unexpected path", got)
	}
	yml := filepath.Join(home, "config.yml")
	if err := os.WriteFile(yml, []byte("contract: result\n"), 0600); err != nil {
		t.Fatal(err)
	}
	if got := ConfigPath(home); got != yml {
		t.Fatal("unexpected path", got)
	}
}
