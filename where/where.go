// Package where resolves the directories and files kipdayo keeps on disk.
package where

import (
	"os"
	"path/filepath"

	"github.com/kipdayo/kipdayo/constant"
	"github.com/kipdayo/kipdayo/filesystem"
	"github.com/samber/lo"
)

// EnvConfigPath overrides the config directory.
const EnvConfigPath = "KIPDAYO_CONFIG_PATH"

func mkdir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config returns the config directory, creating it if needed.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok && custom != "" {
		return mkdir(custom)
	}

	return mkdir(filepath.Join(lo.Must(os.UserConfigDir()), constant.App))
}

// Cache returns the cache directory, falling back to ./cache when the
// platform provides none.
func Cache() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = filepath.Join(".", "cache")
	}
	return mkdir(filepath.Join(base, constant.App))
}

// Logs returns the directory daily log files are written to.
func Logs() string {
	return mkdir(filepath.Join(Config(), "logs"))
}

// Queries is the file remembered video identifiers are stored in.
func Queries() string {
	return filepath.Join(Cache(), "queries.json")
}

// VersionCache is the file the latest released version is cached in.
func VersionCache() string {
	return filepath.Join(Cache(), "version.json")
}
