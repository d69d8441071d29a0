package nrpa

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
)

// Encode writes a rollout record as the persisted format: length, level,
// score, then length move codes, all whitespace-separated.
func Encode(w io.Writer, length, level int, score float64, moves []int) error {
	if _, err := fmt.Fprintf(w, "%d %d %.17g", length, level, score); err != nil {
		return errors.Wrap(err, "failed writing rollout record header")
	}
	for _, m := range moves {
		if _, err := fmt.Fprintf(w, " %d", m); err != nil {
			return errors.Wrap(err, "failed writing rollout record move")
		}
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return errors.Wrap(err, "failed writing rollout record terminator")
	}
	return nil
}

// Decode reads a rollout record written by Encode.
func Decode(r io.Reader) (length, level int, score float64, moves []int, err error) {
	if _, err = fmt.Fscan(r, &length, &level, &score); err != nil {
		return 0, 0, 0, nil, errors.Wrap(err, "failed reading rollout record header")
	}
	moves = make([]int, length)
	for i := range moves {
		if _, err = fmt.Fscan(r, &moves[i]); err != nil {
			return 0, 0, 0, nil, errors.Wrapf(err, "failed reading move %d of rollout record", i)
		}
	}
	return length, level, score, moves, nil
}

// CompareAndSwap persists a rollout record at path only if score improves on
// whatever is already recorded there (or nothing is recorded yet). It holds
// an exclusive lock for the duration of the check-and-write by creating
// lockPath with O_CREATE|O_EXCL -- no third-party lockfile library appears
// anywhere in the reference examples, so this one piece falls back to a
// direct os call (see DESIGN.md).
func CompareAndSwap(path, lockPath string, length, level int, score float64, moves []int) error {
	lock, err := os.OpenFile(lockPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return errors.Wrapf(err, "failed acquiring lock %q", lockPath)
	}
	defer func() {
		lock.Close()
		os.Remove(lockPath)
	}()

	if existing, err := os.Open(path); err == nil {
		_, _, existingScore, _, decodeErr := Decode(existing)
		existing.Close()
		if decodeErr == nil && existingScore >= score {
			return nil
		}
	} else if !os.IsNotExist(err) {
		return errors.Wrapf(err, "failed opening existing rollout record %q", path)
	}

	w, err := createTemporary(path)
	if err != nil {
		return err
	}
	if err := Encode(w, length, level, score, moves); err != nil {
		w.Close()
		return err
	}
	if err := w.Close(); err != nil {
		return errors.Wrapf(err, "failed closing temporary rollout record %q", temporaryName(path))
	}
	return renameToFinal(path)
}
