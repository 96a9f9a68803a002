package trove

import (
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

type Option func(*Engine)

func WithStdout(stdout io.Writer) Option {
	return func(e *Engine) {
		e.stdout = stdout
	}
}

func WithStderr(stderr io.Writer) Option {
	return func(e *Engine) {
		e.stderr = stderr
	}
}

// WithFs sets the file system EvalFile reads from.
func WithFs(fs afero.Fs) Option {
	return func(e *Engine) {
		e.fs = fs
	}
}

func WithWorkingDirectory(dir string) Option {
	return func(e *Engine) {
		e.workingDir = dir
	}
}

// WithLogger replaces the default logger, which writes warnings and
// errors to stderr.
func WithLogger(log logrus.FieldLogger) Option {
	return func(e *Engine) {
		e.log = log
	}
}
