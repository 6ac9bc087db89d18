package output

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

const fileMode = 0o644

// Write creates or replaces dir/name with data. The content goes to a
// temporary file in the same directory first and is renamed into place,
// so a failed write leaves any previous file untouched.
func Write(dir, name string, data []byte) (string, error) {
	path := filepath.Join(dir, name)

	tmp, err := os.CreateTemp(dir, "."+name+".*.tmp")
	if err != nil {
		return "", errors.Wrapf(err, "failed to create temporary file for %s", path)
	}
	tmpName := tmp.Name()

	cleanup := func() {
		tmp.Close()
		os.Remove(tmpName)
	}

	if _, err := tmp.Write(data); err != nil {
		cleanup()
		return "", errors.Wrapf(err, "failed to write %s", path)
	}
	if err := tmp.Sync(); err != nil {
		cleanup()
		return "", errors.Wrapf(err, "failed to sync %s", path)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return "", errors.Wrapf(err, "failed to close %s", path)
	}
	if err := os.Chmod(tmpName, fileMode); err != nil {
		os.Remove(tmpName)
		return "", errors.Wrapf(err, "failed to set permissions on %s", path)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return "", errors.Wrapf(err, "failed to move policy into place at %s", path)
	}

	return path, nil
}
