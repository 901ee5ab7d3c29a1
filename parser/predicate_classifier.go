package parser

import (
	"strconv"
	"strings"

	"github.com/pingcap/errors"
	"github.com/ryogrid/SamehadaQP/common"
)

const comparisonChars = "=<>"

// parseColumnRef parses "L.C"
func parseColumnRef(token string) (SelectInfo, error) {
	relStr, colStr, found := strings.Cut(strings.TrimSpace(token), string(common.ColumnRefSeparator))
	if !found {
		return SelectInfo{}, errors.Annotatef(ErrUnparseableToken, "%q is not a column reference", token)
	}
	relId, err := strconv.ParseUint(relStr, 10, 32)
	if err != nil {
		return SelectInfo{}, errors.Annotatef(ErrUnparseableToken, "%q has invalid relation index", token)
	}
	colId, err := strconv.ParseUint(colStr, 10, 32)
	if err != nil {
		return SelectInfo{}, errors.Annotatef(ErrUnparseableToken, "%q has invalid column index", token)
	}

	return SelectInfo{uint32(relId), uint32(colId)}, nil
}

func parseRelationId(token string) (uint32, error) {
	relId, err := strconv.ParseUint(token, 10, 32)
	if err != nil {
		return 0, errors.Annotatef(ErrUnparseableToken, "%q is not a relation id", token)
	}
	return uint32(relId), nil
}

// ClassifyPredicate parses one token of predicates clause.
//
//	"L.C=L.C"   -> *PredicateInfo (join or column equality)
//	"L.C<op>V"  -> *FilterInfo    (op is one of '<', '=', '>')
//
// the right hand side is regarded as a column reference when it contains '.'.
// filter constants are plain unsigned integers, so they never contain it.
func ClassifyPredicate(token string) (ClassifiedPredicate, error) {
	opIdx := strings.IndexAny(token, comparisonChars)
	if opIdx < 0 {
		return nil, errors.Annotatef(ErrUnparseableToken, "%q has no comparison operator", token)
	}
	lhs, op, rhs := token[:opIdx], Comparison(token[opIdx]), strings.TrimSpace(token[opIdx+1:])

	left, err := parseColumnRef(lhs)
	if err != nil {
		return nil, err
	}

	if strings.ContainsRune(rhs, common.ColumnRefSeparator) {
		if op != Equal {
			return nil, errors.Annotatef(ErrUnparseableToken, "%q compares columns with %q", token, op.String())
		}
		right, err := parseColumnRef(rhs)
		if err != nil {
			return nil, err
		}
		return &PredicateInfo{left, right}, nil
	}

	constant, err := strconv.ParseUint(rhs, 10, 64)
	if err != nil {
		return nil, errors.Annotatef(ErrUnparseableToken, "%q has invalid constant", token)
	}
	return &FilterInfo{left, op, constant}, nil
}
