package engine

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/tsatke/trove/internal/engine/value"
	"github.com/tsatke/trove/internal/parser"
)

type Namer interface {
	Name() string
}

// Engine evaluates programs made of one expression per line, and owns the
// output the presentation builtins write to.
// The engine keeps its globals between calls to Eval, but evaluation never
// changes them, so separate programs do not influence each other.
//
//	engine.Eval(strings.NewReader(`print(1.5e21)`)) // prints '1500000000000000000000'
//	engine.Eval(strings.NewReader(`display(~2 + 1)`)) // prints '~3'
//
// If an error occurs during parsing, no line of the program is evaluated.
type Engine struct {
	fs         afero.Fs
	workingDir string

	// stdout is the output sink of print and display. It is only ever
	// appended to.
	stdout io.Writer
	// stderr is where the default logger writes to.
	stderr io.Writer

	log logrus.FieldLogger

	globals map[string]value.Value
	stack   *callStack
}

// New creates a new, ready to use Engine, already applying all given options.
// By default, the engine uses os.Stdout as stdout and os.Stderr as stderr, and
// logs warnings and errors to stderr.
func New(opts ...Option) *Engine {
	e := &Engine{
		fs: afero.NewOsFs(),

		stdout: os.Stdout,
		stderr: os.Stderr,

		globals: make(map[string]value.Value),
		stack:   newCallStack(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.log == nil {
		log := logrus.New()
		log.SetOutput(e.stderr)
		log.SetLevel(logrus.WarnLevel)
		e.log = log
	}
	e.initStdlib()
	return e
}

// Eval parses and evaluates the program in source, and returns the value of
// its last line, or value.Nothing for an empty program.
func (e *Engine) Eval(source io.Reader) (value.Value, error) {
	p, err := parser.New(source)
	if err != nil {
		return nil, fmt.Errorf("create parser: %w", err)
	}
	program, ok := p.Parse()
	if !ok {
		var errString bytes.Buffer
		errString.WriteString("errors occurred while parsing")
		if namer, ok := source.(Namer); ok {
			errString.WriteString(" " + namer.Name())
		}
		for _, err := range p.Errors() {
			errString.WriteString("\n\t" + err.Error())
		}
		return nil, fmt.Errorf("%s", errString.String())
	}

	return e.evaluateProgram(program)
}

// EvalFile evaluates the file with the given name. Relative names are
// resolved against the working directory of the engine.
func (e *Engine) EvalFile(name string) (value.Value, error) {
	path := name
	if !filepath.IsAbs(path) && e.workingDir != "" {
		path = filepath.Join(e.workingDir, path)
	}

	file, err := e.fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	defer func() { _ = file.Close() }()

	e.log.WithField("file", path).Debug("evaluate file")
	return e.Eval(file)
}

// Global returns the global value with the given name.
func (e *Engine) Global(name string) (value.Value, bool) {
	val, ok := e.globals[name]
	return val, ok
}

func (e *Engine) assign(name string, val value.Value) {
	e.globals[name] = val
}

func (e *Engine) writeLine(s string) {
	_, _ = io.WriteString(e.stdout, s+"\n")
}
