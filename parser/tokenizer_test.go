package parser

import (
	"testing"

	"github.com/pingcap/errors"
	testingpkg "github.com/ryogrid/SamehadaQP/testing/testing_assert"
)

func TestSplitRawQuery(t *testing.T) {
	relations, predicates, selections, err := SplitRawQuery("4 0 2|0.1=1.2&0.2<500|0.1 2.3\n")
	testingpkg.Ok(t, err)
	testingpkg.Equals(t, "4 0 2", relations)
	testingpkg.Equals(t, "0.1=1.2&0.2<500", predicates)
	testingpkg.Equals(t, "0.1 2.3", selections)

	malformed := []string{
		"4 0 2|0.1=1.2",
		"4 0 2|0.1=1.2|0.1|0.2",
		"|0.1=1.2|0.1",
		"4 0|  |0.1",
		"4 0|0.1=1.2|",
		"",
	}
	for _, rawQuery := range malformed {
		_, _, _, err = SplitRawQuery(rawQuery)
		testingpkg.Assert(t, errors.Cause(err) == ErrMalformedQuery, "%q must be malformed", rawQuery)
	}
}

func TestTokenizerWhiteSpace(t *testing.T) {
	tokenizer := NewTokenizer("  4 \t0   2 ", ' ')
	testingpkg.Equals(t, 3, tokenizer.Count())

	token, ok := tokenizer.Next()
	testingpkg.SimpleAssert(t, ok)
	testingpkg.Equals(t, "4", token)
	// Count does not consume tokens
	testingpkg.Equals(t, 3, tokenizer.Count())
	testingpkg.Equals(t, []string{"0", "2"}, tokenizer.Tokens())

	_, ok = tokenizer.Next()
	testingpkg.AssertFalse(t, ok, "tokens must be exhausted")

	tokenizer.Reset()
	testingpkg.Equals(t, []string{"4", "0", "2"}, tokenizer.Tokens())
}

func TestTokenizerPredicateSeparator(t *testing.T) {
	tokenizer := NewTokenizer("0.1=1.2&&0.2<500 & 1.0>3&", '&')
	testingpkg.Equals(t, []string{"0.1=1.2", "0.2<500", "1.0>3"}, tokenizer.Tokens())

	single := NewTokenizer("0.1=1.2", '&')
	testingpkg.Equals(t, 1, single.Count())
	testingpkg.Equals(t, []string{"0.1=1.2"}, single.Tokens())

	empty := NewTokenizer("", '&')
	testingpkg.Equals(t, 0, empty.Count())
	_, ok := empty.Next()
	testingpkg.AssertFalse(t, ok, "empty clause has no token")
}
