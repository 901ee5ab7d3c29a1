package parser

import "github.com/pingcap/errors"

// all errors returned by this package have one of these as cause.
// check with errors.Cause(err) == ErrXXX
var (
	// wrong clause count, or no relation, no predicate/filter or no selection
	ErrMalformedQuery = errors.New("malformed query")
	// a token of some clause matches no grammar shape
	ErrUnparseableToken = errors.New("unparseable token")
)
