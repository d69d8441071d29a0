package nrpa

import (
	"io"
	"os"

	"github.com/pkg/errors"
)

// backupName and temporaryName and renameToFinal implement a
// write-to-temp-then-rename idiom, shared by WriteDat and CompareAndSwap: write
// the new content to filename+".tmp", then atomically swap it into place,
// keeping the previous version at filename+"~" rather than overwriting it
// in-place with a partial write.
func backupName(filename string) string {
	return filename + "~"
}

func temporaryName(filename string) string {
	return filename + ".tmp"
}

func createTemporary(filename string) (io.WriteCloser, error) {
	file, err := os.Create(temporaryName(filename))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create temporary file %q", temporaryName(filename))
	}
	return file, nil
}

func renameToFinal(filename string) error {
	if _, err := os.Stat(filename); err == nil {
		if err := os.Rename(filename, backupName(filename)); err != nil {
			return errors.Wrapf(err, "failed backing up, while renaming %q to %q", filename, backupName(filename))
		}
	}
	if err := os.Rename(temporaryName(filename), filename); err != nil {
		return errors.Wrapf(err, "failed renaming temporary file to final name, while renaming %q to %q", temporaryName(filename), filename)
	}
	return nil
}
