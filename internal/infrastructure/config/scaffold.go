package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/tftio/prompter/internal/domain"
)

// ScaffoldResult lists the files init created and the ones it left alone.
type ScaffoldResult struct {
	Created []string `json:"created" yaml:"created"`
	Skipped []string `json:"skipped" yaml:"skipped"`
}

// Scaffold writes configData to configPath and copies every file of library
// into libraryDir. Existing files are never overwritten.
func Scaffold(configPath string, configData []byte, libraryDir string, library fs.FS) (ScaffoldResult, error) {
	var result ScaffoldResult
	record := func(path string, created bool) {
		if created {
			result.Created = append(result.Created, path)
		} else {
			result.Skipped = append(result.Skipped, path)
		}
	}

	created, err := writeNew(configPath, configData)
	if err != nil {
		return result, err
	}
	record(configPath, created)

	if err := os.MkdirAll(libraryDir, domain.DirectoryPermissions); err != nil {
		return result, fmt.Errorf("create library directory: %w", err)
	}
	err = fs.WalkDir(library, ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := fs.ReadFile(library, name)
		if err != nil {
			return err
		}
		target := filepath.Join(libraryDir, filepath.FromSlash(name))
		created, err := writeNew(target, data)
		if err != nil {
			return err
		}
		record(target, created)
		return nil
	})
	return result, err
}

// writeNew creates path with data unless it already exists.
func writeNew(path string, data []byte) (bool, error) {
	if err := os.MkdirAll(filepath.Dir(path), domain.DirectoryPermissions); err != nil {
		return false, fmt.Errorf("create directory for %s: %w", path, err)
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, domain.FilePermissions)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return false, nil
		}
		return false, err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return false, fmt.Errorf("write %s: %w", path, err)
	}
	return true, f.Close()
}
