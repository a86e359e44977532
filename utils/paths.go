package utils

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/finboard/finboard-cli/config"
	homedir "github.com/mitchellh/go-homedir"
)

// GetFinboardHome returns the path to the finboard home: FINBOARD_HOME
// when set and ~/.finboard otherwise.
func GetFinboardHome() (string, error) {
	if home := strings.TrimSpace(os.Getenv(config.EnvHome)); home != "" {
		return home, nil
	}
	home, err := homedir.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".finboard"), nil
}

// RequiredDirs returns the required finboard home directories
func RequiredDirs(home string) []string {
	return []string{KVStoreDir(home)}
}

// KVStoreDir returns the key-value store dir for the given home
func KVStoreDir(home string) string {
	return filepath.Join(home, "kvstore")
}

// ConfigCandidates returns the default config file paths, in lookup order.
func ConfigCandidates(home string) []string {
	return []string{
		filepath.Join(home, "config.yaml"),
		filepath.Join(home, "config.yml"),
		filepath.Join(home, "config.json"),
	}
}

// ConfigPath returns the first existing default config file or, when
// none exists, the path of config.json inside home.
func ConfigPath(home string) string {
	candidates := ConfigCandidates(home)
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return candidates[len(candidates)-1]
}
