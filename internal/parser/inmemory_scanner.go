package parser

import (
	"fmt"
	"io"
	"io/ioutil"
	"unicode"

	"github.com/tsatke/trove/internal/token"
)

type inMemoryScanner struct {
	input []rune

	state
}

type state struct {
	start     int
	startLine int
	startCol  int

	pos  int
	line int
	col  int
}

func newInMemoryScanner(source io.Reader) (*inMemoryScanner, error) {
	data, err := ioutil.ReadAll(source)
	if err != nil {
		return nil, fmt.Errorf("read all: %w", err)
	}

	return &inMemoryScanner{
		input: []rune(string(data)),
		state: state{
			startLine: 1,
			startCol:  1,
			line:      1,
			col:       1,
		},
	}, nil
}

func (s *inMemoryScanner) next() (token.Token, bool) {
	return s.computeNext()
}

func (s *inMemoryScanner) updateStartPositions() {
	s.start = s.pos
	s.startLine = s.line
	s.startCol = s.col
}

func (s *inMemoryScanner) token(typ ...token.Type) token.Token {
	tok := token.New(s.candidate(), s.tkpos(), typ...)
	s.updateStartPositions()
	return tok
}

func (s *inMemoryScanner) error(err error) token.Token {
	tok := token.New(err.Error(), s.tkpos(), token.Error)
	s.updateStartPositions()
	return tok
}

func (s *inMemoryScanner) tkpos() token.Position {
	return token.Position{
		Line:   s.startLine,
		Col:    s.startCol,
		Offset: s.start,
	}
}

func (s *inMemoryScanner) candidate() string {
	return string(s.input[s.start:s.pos])
}

func (s *inMemoryScanner) done() bool {
	return s.pos >= len(s.input)
}

func (s *inMemoryScanner) lookahead() (rune, bool) {
	if !s.done() {
		return s.input[s.pos], true
	}
	return 0, false
}

func (s *inMemoryScanner) lookaheadIs(pred func(rune) bool) bool {
	r, ok := s.lookahead()
	return ok && pred(r)
}

func (s *inMemoryScanner) consume() {
	if s.input[s.pos] == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}
	s.pos++
}

func (s *inMemoryScanner) consumeWhile(pred func(rune) bool) int {
	n := 0
	for s.lookaheadIs(pred) {
		s.consume()
		n++
	}
	return n
}

// drainWhitespace skips blanks and comments. Line breaks are significant
// and are left in place.
func (s *inMemoryScanner) drainWhitespace() {
	for {
		s.consumeWhile(isBlank)
		if !s.lookaheadIs(func(r rune) bool { return r == '#' }) {
			break
		}
		s.consumeWhile(func(r rune) bool { return r != '\n' })
	}
	_ = s.token() // ignore whitespaces
}

func (s *inMemoryScanner) computeNext() (token.Token, bool) {
	s.drainWhitespace()
	r, ok := s.lookahead()
	if !ok {
		return nil, false
	}

	switch {
	case r == '\n':
		s.consume()
		return s.token(token.EOL), true
	case r == '+':
		s.consume()
		return s.token(token.Plus), true
	case r == ',':
		s.consume()
		return s.token(token.Comma), true
	case r == '(':
		s.consume()
		return s.token(token.ParLeft), true
	case r == ')':
		s.consume()
		return s.token(token.ParRight), true
	case r == '"':
		return s.quotedString()
	case r == '~':
		s.consume()
		if !s.checkNumber() {
			return s.error(fmt.Errorf("expected a number after '~'")), true
		}
		return s.token(token.Number, token.Rough), true
	case r == '-' || r == '.' || unicode.IsDigit(r):
		if !s.checkNumber() {
			s.consume()
			return s.error(fmt.Errorf("malformed number")), true
		}
		return s.token(token.Number), true
	case isNameStart(r):
		s.consumeWhile(isNamePart)
		switch s.candidate() {
		case "true":
			return s.token(token.True), true
		case "false":
			return s.token(token.False), true
		case "nothing":
			return s.token(token.Nothing), true
		}
		return s.token(token.Name), true
	}

	s.consume()
	return s.error(fmt.Errorf("unexpected character %q", r)), true
}

// checkNumber consumes a decimal literal with an optional sign, fraction
// and exponent. It reports false and consumes nothing if there is no
// well-formed literal at the current position. A '/' directly after the
// literal is rejected, since rationals are not supported.
func (s *inMemoryScanner) checkNumber() bool {
	i := 0
	hasMore := func() bool {
		return len(s.input) > s.pos+i
	}
	get := func() rune {
		return s.input[s.pos+i]
	}
	digits := func() int {
		n := 0
		for hasMore() && isDigit(get()) {
			i++
			n++
		}
		return n
	}

	if hasMore() && get() == '-' {
		i++
	}
	mantissa := digits()
	if hasMore() && get() == '.' {
		i++
		fraction := digits()
		if fraction == 0 {
			return false
		}
		mantissa += fraction
	}
	if mantissa == 0 {
		return false
	}
	if hasMore() && (get() == 'e' || get() == 'E') {
		i++
		if hasMore() && (get() == '+' || get() == '-') {
			i++
		}
		if digits() == 0 {
			return false
		}
	}
	if hasMore() && (get() == '/' || isNamePart(get())) {
		return false
	}

	for ; i > 0; i-- {
		s.consume()
	}
	return true
}

// quotedString consumes a double-quoted string literal. The token value
// keeps the quotes and escape sequences; use Unquote to decode it.
func (s *inMemoryScanner) quotedString() (token.Token, bool) {
	s.consume() // opening quote
	var escape bool
	for {
		r, ok := s.lookahead()
		if !ok || r == '\n' {
			return s.error(fmt.Errorf("unterminated string literal")), true
		}
		s.consume()
		switch {
		case escape:
			escape = false
		case r == '\\':
			escape = true
		case r == '"':
			return s.token(token.String), true
		}
	}
}

func isBlank(r rune) bool {
	return r != '\n' && unicode.IsSpace(r)
}

// isDigit reports whether r is an ASCII decimal digit. Other Unicode digits
// start a number token but never form a valid one.
func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func isNameStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isNamePart(r rune) bool {
	return r == '_' || r == '-' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
