package trove

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/tsatke/trove/internal/engine"
)

type Engine struct {
	engine *engine.Engine

	stdout io.Writer
	stderr io.Writer

	fs         afero.Fs
	workingDir string
	log        logrus.FieldLogger
}

func NewEngine(opts ...Option) Engine {
	e := Engine{
		stdout: os.Stdout,
		stderr: os.Stderr,
		fs:     afero.NewOsFs(),
	}

	for _, opt := range opts {
		opt(&e)
	}

	engineOpts := []engine.Option{
		engine.WithStdout(e.stdout),
		engine.WithStderr(e.stderr),
		engine.WithFs(e.fs),
		engine.WithWorkingDirectory(e.workingDir),
	}
	if e.log != nil {
		engineOpts = append(engineOpts, engine.WithLogger(e.log))
	}
	e.engine = engine.New(engineOpts...)

	return e
}

func (e Engine) EvalString(source string) (Value, error) {
	return e.Eval(strings.NewReader(source))
}

// Eval evaluates the program in the given reader, one expression per line.
// If the program does not parse, an error is returned and nothing is
// evaluated. If a line fails to evaluate, the error is of type Error.
//
// The value of the last line is returned.
func (e Engine) Eval(source io.Reader) (Value, error) {
	return convertResult(e.engine.Eval(source))
}

// EvalFile evaluates the named file, which is resolved against the working
// directory if it is relative.
func (e Engine) EvalFile(name string) (Value, error) {
	return convertResult(e.engine.EvalFile(name))
}

// Print writes the stringified value and a line break to stdout, and
// returns the value.
func (e Engine) Print(v Value) Value {
	return e.engine.Print(v)
}

// Display writes the repr of the value and a line break to stdout, and
// returns the value.
func (e Engine) Display(v Value) Value {
	return e.engine.Display(v)
}

func convertResult(result Value, err error) (Value, error) {
	if err != nil {
		var evalErr engine.Error
		if errors.As(err, &evalErr) {
			return nil, errorFromInternal(evalErr)
		}
		return nil, err
	}
	return result, nil
}
