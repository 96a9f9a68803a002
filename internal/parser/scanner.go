package parser

import "github.com/tsatke/trove/internal/token"

type scanner interface {
	next() (token.Token, bool)
}
