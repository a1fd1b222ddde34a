package config

import (
	"os"
	"path/filepath"
)

const (
	// DirName is the project-level opsdash directory
	DirName = ".opsdash"
	// ConfigFileName is the config file inside DirName
	ConfigFileName = "config.yaml"
)

// Dir returns the opsdash directory of a project (<root>/.opsdash)
func Dir(projectRoot string) string {
	return filepath.Join(projectRoot, DirName)
}

// ConfigPath returns the config file path (<root>/.opsdash/config.yaml)
func ConfigPath(projectRoot string) string {
	return filepath.Join(Dir(projectRoot), ConfigFileName)
}

// DefaultCatalogPath returns the catalog file path (<root>/.opsdash/catalog.yaml)
func DefaultCatalogPath(projectRoot string) string {
	return filepath.Join(Dir(projectRoot), "catalog.yaml")
}

// DefaultDBPath returns the catalog database path (<root>/.opsdash/catalog.db)
func DefaultDBPath(projectRoot string) string {
	return filepath.Join(Dir(projectRoot), "catalog.db")
}

// FindProjectRoot finds the project root by looking for a .opsdash directory
func FindProjectRoot() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}
	return findRootFrom(cwd)
}

func findRootFrom(start string) string {
	dir := start
	for {
		if info, err := os.Stat(filepath.Join(dir, DirName)); err == nil && info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return start // fallback to the start directory
}

// EnsureDir creates the project opsdash directory
func EnsureDir(projectRoot string) error {
	return os.MkdirAll(Dir(projectRoot), 0755)
}
