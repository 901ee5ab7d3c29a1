package parser

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pingcap/errors"
	"github.com/ryogrid/SamehadaQP/common"
)

// SplitRawQuery splits "relations|predicates|selections" into its clauses.
// each clause must contain something other than white spaces.
func SplitRawQuery(rawQuery string) (relations string, predicates string, selections string, err error) {
	line := strings.TrimRight(rawQuery, "\r\n")
	clauses := strings.Split(line, string(common.ClauseSeparator))
	if len(clauses) != common.ClauseNum {
		return "", "", "", errors.Annotatef(ErrMalformedQuery, "query %q does not consist of %d parts", line, common.ClauseNum)
	}

	names := [common.ClauseNum]string{"relations", "predicates", "selections"}
	for i, clause := range clauses {
		if strings.TrimSpace(clause) == "" {
			return "", "", "", errors.Annotatef(ErrMalformedQuery, "zero %s were found in query %q", names[i], line)
		}
	}

	return clauses[0], clauses[1], clauses[2], nil
}

// Tokenizer yields delimited tokens of a clause one by one.
// white spaces around tokens are dropped and empty tokens are skipped.
// sep == ' ' means any run of white spaces separates tokens.
type Tokenizer struct {
	clause string
	sep    rune
	pos    int
}

func NewTokenizer(clause string, sep rune) *Tokenizer {
	return &Tokenizer{clause, sep, 0}
}

func (t *Tokenizer) isSeparator(r rune) bool {
	if t.sep == ' ' {
		return unicode.IsSpace(r)
	}
	return r == t.sep
}

// Next returns next token. second return value is false when tokens are exhausted.
func (t *Tokenizer) Next() (string, bool) {
	for t.pos < len(t.clause) {
		rest := t.clause[t.pos:]
		end := strings.IndexFunc(rest, t.isSeparator)
		if end < 0 {
			end = len(rest)
			t.pos = len(t.clause)
		} else {
			_, size := utf8.DecodeRuneInString(rest[end:])
			t.pos += end + size
		}

		token := strings.TrimSpace(rest[:end])
		if token != "" {
			return token, true
		}
	}
	return "", false
}

// Reset rewinds t to the first token
func (t *Tokenizer) Reset() {
	t.pos = 0
}

// Count returns number of tokens without moving t
func (t *Tokenizer) Count() int {
	counter := NewTokenizer(t.clause, t.sep)
	cnt := 0
	for _, ok := counter.Next(); ok; _, ok = counter.Next() {
		cnt++
	}
	return cnt
}

// Tokens returns all remaining tokens
func (t *Tokenizer) Tokens() []string {
	ret := make([]string, 0)
	for token, ok := t.Next(); ok; token, ok = t.Next() {
		ret = append(ret, token)
	}
	return ret
}
