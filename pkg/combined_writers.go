package pkg

import (
	"io"

	"go.uber.org/multierr"
)

// CombinedWriter fans every write out to all of its writers, e.g. stdout and
// the rotated log file. A failing writer does not stop the others.
type CombinedWriter struct {
	writers []io.Writer
}

func NewCombinedWriter(writers ...io.Writer) *CombinedWriter {
	cw := &CombinedWriter{}
	for _, w := range writers {
		if w != nil {
			cw.writers = append(cw.writers, w)
		}
	}
	return cw
}

// Write reports len(p) when at least one writer took the whole message, so
// the logger does not treat a partially failing sink as a short write.
func (cw *CombinedWriter) Write(p []byte) (int, error) {
	var (
		errs      error
		delivered bool
	)
	for _, w := range cw.writers {
		written, err := w.Write(p)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		if written == len(p) {
			delivered = true
		}
	}
	if delivered || len(cw.writers) == 0 {
		return len(p), errs
	}
	return 0, errs
}

func (cw *CombinedWriter) Len() int {
	return len(cw.writers)
}
