package workspace

import (
	"os"
	"path/filepath"
)

// walkDirs calls fn for root and every directory beneath it, skipping
// .markhor subdirectories entirely (they hold config, not content).
func walkDirs(root string, fn func(dir string) error) error {
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if d.Name() == configDirName && path != root {
			return filepath.SkipDir
		}
		return fn(path)
	})
}

func statIsDir(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}
