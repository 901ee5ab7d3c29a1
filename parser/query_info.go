package parser

import (
	"strconv"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	pair "github.com/notEpsilon/go-pair"
	"github.com/ryogrid/SamehadaQP/catalog"
	"github.com/ryogrid/SamehadaQP/common"
	"github.com/ryogrid/SamehadaQP/types"
)

type Comparison byte

const (
	Less    Comparison = '<'
	Equal   Comparison = '='
	Greater Comparison = '>'
)

func (c Comparison) String() string {
	return string(rune(c))
}

// SelectInfo refers a column. RelId_ is local index, position in QueryInfo.RelationIds_,
// not a global relation id.
type SelectInfo struct {
	RelId_ uint32
	ColId_ uint32
}

func (s SelectInfo) GetRelId() uint32 {
	return s.RelId_
}

func (s SelectInfo) GetColId() uint32 {
	return s.ColId_
}

func (s SelectInfo) String() string {
	return strconv.FormatUint(uint64(s.RelId_), 10) + string(common.ColumnRefSeparator) + strconv.FormatUint(uint64(s.ColId_), 10)
}

// ClassifiedPredicate is one token of predicates clause: *PredicateInfo or *FilterInfo
type ClassifiedPredicate interface {
	String() string
	isClassifiedPredicate()
}

// PredicateInfo is "Left_ = Right_". when both sides are on same relation, it is
// a column equality, not a join.
type PredicateInfo struct {
	Left_  SelectInfo
	Right_ SelectInfo
}

func (p *PredicateInfo) isClassifiedPredicate() {}

func (p *PredicateInfo) IsColEquality() bool {
	return p.Left_.RelId_ == p.Right_.RelId_
}

func (p *PredicateInfo) String() string {
	return p.Left_.String() + Equal.String() + p.Right_.String()
}

type FilterInfo struct {
	FilterLhs_  SelectInfo
	Comparison_ Comparison
	Constant_   uint64
}

func (f *FilterInfo) isClassifiedPredicate() {}

func (f *FilterInfo) GetComparison() Comparison {
	return f.Comparison_
}

func (f *FilterInfo) GetConstant() uint64 {
	return f.Constant_
}

func (f *FilterInfo) String() string {
	return f.FilterLhs_.String() + f.Comparison_.String() + strconv.FormatUint(f.Constant_, 10)
}

type QueryInfo struct {
	RelationIds_ []types.RelationID // index is local relation index
	Predicates_  []PredicateInfo
	Filters_     []FilterInfo
	Selections_  []SelectInfo
	// deep copied statistics of each relation. index is local relation index.
	// nil until CreateQueryEstimations is called
	Estimations_ []*catalog.TableStatistics
}

func (qi *QueryInfo) GetNumOfRelations() uint32 {
	return uint32(len(qi.RelationIds_))
}

func (qi *QueryInfo) GetNumOfPredicates() uint32 {
	return uint32(len(qi.Predicates_))
}

func (qi *QueryInfo) GetNumOfFilters() uint32 {
	return uint32(len(qi.Filters_))
}

func (qi *QueryInfo) GetNumOfSelections() uint32 {
	return uint32(len(qi.Selections_))
}

func (qi *QueryInfo) GetPredicate(idx uint32) *PredicateInfo {
	return &qi.Predicates_[idx]
}

func (qi *QueryInfo) GetFilter(idx uint32) *FilterInfo {
	return &qi.Filters_[idx]
}

func (qi *QueryInfo) GetSelection(idx uint32) SelectInfo {
	return qi.Selections_[idx]
}

// GetOriginalRelId translates local relation index of sInfo to global relation id.
// out of range index never comes from ProcessQueryStr, so it is treated as a bug.
func (qi *QueryInfo) GetOriginalRelId(sInfo SelectInfo) types.RelationID {
	common.SH_Assert(sInfo.RelId_ < qi.GetNumOfRelations(), "local relation index is out of range")
	return qi.RelationIds_[sInfo.RelId_]
}

func (qi *QueryInfo) countPredicates() (joins uint32, colEqualities uint32) {
	for i := range qi.Predicates_ {
		if qi.Predicates_[i].IsColEquality() {
			colEqualities++
		} else {
			joins++
		}
	}
	return joins, colEqualities
}

func (qi *QueryInfo) GetNumOfJoins() uint32 {
	joins, _ := qi.countPredicates()
	return joins
}

func (qi *QueryInfo) GetNumOfColEqualities() uint32 {
	_, colEqualities := qi.countPredicates()
	return colEqualities
}

// GetJoinEdges returns (left, right) local relation index pairs of predicates which are not
// column equalities, in order of Predicates_
func (qi *QueryInfo) GetJoinEdges() []pair.Pair[uint32, uint32] {
	ret := make([]pair.Pair[uint32, uint32], 0, len(qi.Predicates_))
	for i := range qi.Predicates_ {
		p := &qi.Predicates_[i]
		if !p.IsColEquality() {
			ret = append(ret, pair.Pair[uint32, uint32]{First: p.Left_.RelId_, Second: p.Right_.RelId_})
		}
	}
	return ret
}

// GetReferencedRelations returns set of local relation indexes which appear in
// predicates, filters or selections
func (qi *QueryInfo) GetReferencedRelations() mapset.Set[uint32] {
	ret := mapset.NewThreadUnsafeSet[uint32]()
	for _, p := range qi.Predicates_ {
		ret.Add(p.Left_.RelId_)
		ret.Add(p.Right_.RelId_)
	}
	for _, f := range qi.Filters_ {
		ret.Add(f.FilterLhs_.RelId_)
	}
	for _, s := range qi.Selections_ {
		ret.Add(s.RelId_)
	}
	return ret
}

func (qi *QueryInfo) HasEstimations() bool {
	return qi.Estimations_ != nil
}

// GetEstimation returns statistics snapshot of local relation localRelId
func (qi *QueryInfo) GetEstimation(localRelId uint32) *catalog.TableStatistics {
	common.SH_Assert(qi.HasEstimations(), "estimations are not created")
	common.SH_Assert(localRelId < qi.GetNumOfRelations(), "local relation index is out of range")
	return qi.Estimations_[localRelId]
}

func (qi *QueryInfo) serialize(markColEquality bool) string {
	var sb strings.Builder

	for i, id := range qi.RelationIds_ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(id.String())
	}
	sb.WriteRune(common.ClauseSeparator)

	isFirst := true
	writePredicate := func(str string) {
		if !isFirst {
			sb.WriteRune(common.PredicateSeparator)
		}
		isFirst = false
		sb.WriteString(str)
	}
	for i := range qi.Predicates_ {
		p := &qi.Predicates_[i]
		if markColEquality && p.IsColEquality() {
			writePredicate("[" + p.String() + "]")
		} else {
			writePredicate(p.String())
		}
	}
	for i := range qi.Filters_ {
		writePredicate(qi.Filters_[i].String())
	}
	sb.WriteRune(common.ClauseSeparator)

	for i, s := range qi.Selections_ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(s.String())
	}

	return sb.String()
}

// String returns query string in the grammar ProcessQueryStr accepts.
// predicates are placed before filters.
func (qi *QueryInfo) String() string {
	return qi.serialize(false)
}

// DebugString is same as String except that column equalities are enclosed with "[ ]"
func (qi *QueryInfo) DebugString() string {
	return qi.serialize(true)
}
