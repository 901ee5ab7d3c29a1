package parser

import (
	"github.com/pingcap/errors"
	"github.com/ryogrid/SamehadaQP/catalog"
	"github.com/ryogrid/SamehadaQP/common"
	"github.com/ryogrid/SamehadaQP/types"
)

// ProcessQueryStr parses "relations|predicates|selections" into QueryInfo.
// returned QueryInfo has no estimations. use CreateQueryInfo when the query goes to optimizer.
func ProcessQueryStr(rawQuery string) (*QueryInfo, error) {
	rawRelations, rawPredicates, rawSelections, err := SplitRawQuery(rawQuery)
	if err != nil {
		common.ShPrintf(common.DEBUG_INFO, "ProcessQueryStr: %v\n", err)
		return nil, err
	}

	qi := new(QueryInfo)
	if err = qi.parseRelationIds(rawRelations); err == nil {
		if err = qi.parsePredicates(rawPredicates); err == nil {
			if err = qi.parseSelections(rawSelections); err == nil {
				err = qi.checkLocalRelIds()
			}
		}
	}
	if err != nil {
		common.ShPrintf(common.DEBUG_INFO, "ProcessQueryStr: %v\n", err)
		return nil, errors.Annotatef(err, "query %q", rawQuery)
	}

	return qi, nil
}

// CreateQueryInfo parses rawQuery and attaches statistics snapshot taken from corpus
func CreateQueryInfo(rawQuery string, corpus *catalog.RelationCorpus) (*QueryInfo, error) {
	qi, err := ProcessQueryStr(rawQuery)
	if err != nil {
		return nil, err
	}
	if err = CreateQueryEstimations(qi, corpus); err != nil {
		return nil, err
	}
	return qi, nil
}

func (qi *QueryInfo) parseRelationIds(rawRelations string) error {
	tokenizer := NewTokenizer(rawRelations, ' ')
	qi.RelationIds_ = make([]types.RelationID, 0, tokenizer.Count())
	for token, ok := tokenizer.Next(); ok; token, ok = tokenizer.Next() {
		relId, err := parseRelationId(token)
		if err != nil {
			return err
		}
		qi.RelationIds_ = append(qi.RelationIds_, types.RelationID(relId))
	}

	if len(qi.RelationIds_) == 0 {
		return errors.Annotate(ErrMalformedQuery, "zero join relations were found in the query")
	}
	return nil
}

func (qi *QueryInfo) parsePredicates(rawPredicates string) error {
	qi.Predicates_ = make([]PredicateInfo, 0)
	qi.Filters_ = make([]FilterInfo, 0)

	tokenizer := NewTokenizer(rawPredicates, common.PredicateSeparator)
	for token, ok := tokenizer.Next(); ok; token, ok = tokenizer.Next() {
		classified, err := ClassifyPredicate(token)
		if err != nil {
			common.ShPrintf(common.PARSER_INTERNAL, "parsePredicates: %q rejected: %v\n", token, err)
			return err
		}
		switch pred := classified.(type) {
		case *PredicateInfo:
			common.ShPrintf(common.PARSER_INTERNAL, "parsePredicates: %q -> predicate %s\n", token, pred.String())
			qi.Predicates_ = append(qi.Predicates_, *pred)
		case *FilterInfo:
			common.ShPrintf(common.PARSER_INTERNAL, "parsePredicates: %q -> filter %s\n", token, pred.String())
			qi.Filters_ = append(qi.Filters_, *pred)
		default:
			panic("unknown predicate kind")
		}
	}

	if len(qi.Predicates_)+len(qi.Filters_) == 0 {
		return errors.Annotate(ErrMalformedQuery, "zero predicates were found in the query")
	}
	return nil
}

func (qi *QueryInfo) parseSelections(rawSelections string) error {
	tokenizer := NewTokenizer(rawSelections, ' ')
	qi.Selections_ = make([]SelectInfo, 0, tokenizer.Count())
	for token, ok := tokenizer.Next(); ok; token, ok = tokenizer.Next() {
		sInfo, err := parseColumnRef(token)
		if err != nil {
			return err
		}
		qi.Selections_ = append(qi.Selections_, sInfo)
	}

	if len(qi.Selections_) == 0 {
		return errors.Annotate(ErrMalformedQuery, "zero selections were found in the query")
	}
	return nil
}

// every local relation index must point an element of RelationIds_
func (qi *QueryInfo) checkLocalRelIds() error {
	relNum := qi.GetNumOfRelations()
	check := func(sInfo SelectInfo) error {
		if sInfo.RelId_ >= relNum {
			return errors.Annotatef(ErrMalformedQuery, "%s refers relation %d but query has %d relations",
				sInfo.String(), sInfo.RelId_, relNum)
		}
		return nil
	}

	for i := range qi.Predicates_ {
		if err := check(qi.Predicates_[i].Left_); err != nil {
			return err
		}
		if err := check(qi.Predicates_[i].Right_); err != nil {
			return err
		}
	}
	for i := range qi.Filters_ {
		if err := check(qi.Filters_[i].FilterLhs_); err != nil {
			return err
		}
	}
	for _, sInfo := range qi.Selections_ {
		if err := check(sInfo); err != nil {
			return err
		}
	}
	return nil
}
