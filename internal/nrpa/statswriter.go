package nrpa

import (
	"fmt"
	"io"
)

// WriteDat renders a series of samples as a whitespace-separated
// text table -- a commented header line followed by "index date bestScore"
// rows -- and writes it through the atomic write-then-rename idiom. A write
// failure is logged by the caller, not treated as fatal (see error handling
// design): stats are a diagnostic, not a search result.
func WriteDat(path string, series []Sample) error {
	w, err := createTemporary(path)
	if err != nil {
		return err
	}

	if ferr := writeDatTo(w, series); ferr != nil {
		w.Close()
		return ferr
	}
	if cerr := w.Close(); cerr != nil {
		return cerr
	}
	return renameToFinal(path)
}

func writeDatTo(w io.Writer, series []Sample) error {
	if _, err := fmt.Fprintf(w, "# index date(s) bestScore\n"); err != nil {
		return err
	}
	for _, s := range series {
		if _, err := fmt.Fprintf(w, "%d %f %g\n", s.Index, s.Date.Seconds(), s.BestScore); err != nil {
			return err
		}
	}
	return nil
}
