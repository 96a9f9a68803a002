package parser

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/tsatke/trove/internal/ast"
	"github.com/tsatke/trove/internal/token"
)

// Parser describes a parser that can parse input into an ast.Program.
type Parser interface {
	Parse() (ast.Program, bool)
	Errors() []error
}

type namer interface {
	Name() string
}

type parser struct {
	scanner

	input  io.Reader
	errors []error

	tkstash []token.Token
}

// New creates a new single-use parser.
func New(input io.Reader) (Parser, error) {
	sc, err := newInMemoryScanner(input)
	if err != nil {
		return nil, fmt.Errorf("in memory scanner: %w", err)
	}
	return &parser{
		scanner: sc,
		input:   input,
	}, nil
}

// Parse parses the input of this parser. If the parsing was successful, true will be returned.
// Otherwise, a potentially incomplete, partial Program together with false will be returned.
// If this method returns false, obtain the parse errors with Parser.Errors.
func (p *parser) Parse() (ast.Program, bool) {
	name := "<unknown input>"
	if n, ok := p.input.(namer); ok {
		name = filepath.Base(n.Name())
	}

	program := ast.Program{
		Name: name,
	}
	for {
		tk, ok := p.next()
		if !ok {
			break
		}
		if tk.Is(token.EOL) {
			continue
		}
		p.stash(tk)

		exp := p.exp()
		if exp == nil {
			p.skipLine()
			continue
		}
		program.Lines = append(program.Lines, ast.Line{
			Number: tk.Pos().Line,
			Exp:    exp,
		})
		p.endOfLine()
	}

	return program, len(p.errors) == 0
}

// Errors returns all the parse errors that may have occurred during the parsing.
func (p *parser) Errors() []error {
	return p.errors
}

func (p *parser) collectError(err error) {
	if err != nil {
		p.errors = append(p.errors, err)
	}
}

func (p *parser) stash(tokens ...token.Token) {
	p.tkstash = append(tokens, p.tkstash...)
}

func (p *parser) next() (token.Token, bool) {
	if len(p.tkstash) > 0 {
		tk := p.tkstash[0]
		p.tkstash = p.tkstash[1:]
		return tk, true
	}
	for {
		next, ok := p.scanner.next()
		if !ok {
			return nil, false
		}
		if next.Is(token.Error) {
			p.collectError(fmt.Errorf("error at %s: %s", next.Pos(), next.Value()))
			continue
		}
		return next, true
	}
}

// endOfLine expects the end of the current line. Anything left on the line
// is reported once and skipped.
func (p *parser) endOfLine() {
	tk, ok := p.next()
	if !ok || tk.Is(token.EOL) {
		return
	}
	p.collectError(fmt.Errorf("%s: %w", tk.Pos(), ErrUnexpectedThing("end of line", describe(tk))))
	p.skipLine()
}

func (p *parser) skipLine() {
	for {
		tk, ok := p.next()
		if !ok || tk.Is(token.EOL) {
			return
		}
	}
}

// exp parses
//
//	exp ::= term {'+' term}
func (p *parser) exp() ast.Exp {
	left := p.term()
	if left == nil {
		return nil
	}
	for {
		op, ok := p.next()
		if !ok {
			return left
		}
		if !op.Is(token.Plus) {
			p.stash(op)
			return left
		}
		right := p.term()
		if right == nil {
			return nil
		}
		left = ast.BinopExp{
			Left:  left,
			Binop: op,
			Right: right,
		}
	}
}

// term parses
//
//	term ::= Number | String | true | false | nothing | Name | call | '(' exp ')'
func (p *parser) term() ast.Exp {
	tk, ok := p.next()
	if !ok {
		p.collectError(ErrUnexpectedEof("an expression"))
		return nil
	}

	switch {
	case tk.Is(token.Number):
		return ast.SimpleExp{Number: tk}
	case tk.Is(token.String):
		return ast.SimpleExp{String: tk}
	case tk.Is(token.True):
		return ast.SimpleExp{True: tk}
	case tk.Is(token.False):
		return ast.SimpleExp{False: tk}
	case tk.Is(token.Nothing):
		return ast.SimpleExp{Nothing: tk}
	case tk.Is(token.Name):
		next, ok := p.next()
		if ok && next.Is(token.ParLeft) {
			return p.call(tk)
		}
		if ok {
			p.stash(next)
		}
		return ast.NameExp{Name: tk}
	case tk.Is(token.ParLeft):
		exp := p.exp()
		if exp == nil {
			return nil
		}
		if !p.expect(token.ParRight, "')'") {
			return nil
		}
		return exp
	}

	p.stash(tk)
	p.collectError(fmt.Errorf("%s: %w", tk.Pos(), ErrUnexpectedThing("an expression", describe(tk))))
	return nil
}

// call parses the argument list of a call to name. The opening
// parenthesis has already been consumed.
//
//	args ::= '(' [exp {',' exp}] ')'
func (p *parser) call(name token.Token) ast.Exp {
	call := ast.CallExp{
		Name: name,
	}

	next, ok := p.next()
	if !ok {
		p.collectError(ErrUnexpectedEof("')'"))
		return nil
	}
	if next.Is(token.ParRight) {
		return call
	}
	p.stash(next)

	for {
		arg := p.exp()
		if arg == nil {
			return nil
		}
		call.Args = append(call.Args, arg)

		next, ok := p.next()
		if !ok {
			p.collectError(ErrUnexpectedEof("')'"))
			return nil
		}
		switch {
		case next.Is(token.ParRight):
			return call
		case next.Is(token.Comma):
			continue
		}
		p.stash(next)
		p.collectError(fmt.Errorf("%s: %w", next.Pos(), ErrUnexpectedThing("',' or ')'", describe(next))))
		return nil
	}
}

func (p *parser) expect(typ token.Type, what string) bool {
	next, ok := p.next()
	if !ok {
		p.collectError(ErrUnexpectedEof(what))
		return false
	}
	if !next.Is(typ) {
		p.stash(next)
		p.collectError(fmt.Errorf("%s: %w", next.Pos(), ErrUnexpectedThing(what, describe(next))))
		return false
	}
	return true
}
