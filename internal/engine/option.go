package engine

import (
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

type Option func(*Engine)

func WithFs(fs afero.Fs) Option {
	return func(e *Engine) {
		e.fs = fs
	}
}

// WithWorkingDirectory sets the directory that relative paths passed to
// EvalFile are resolved against.
func WithWorkingDirectory(dir string) Option {
	return func(e *Engine) {
		e.workingDir = dir
	}
}

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

func WithLogger(log logrus.FieldLogger) Option {
	return func(e *Engine) {
		e.log = log
	}
}
