package logs

import (
	"io"
	"os"
)

// Writer receives terminal log output. Program output never goes here.
type Writer io.Writer

func (Module) Writer() Writer {
	return os.Stderr
}
