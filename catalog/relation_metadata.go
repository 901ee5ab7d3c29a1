package catalog

import (
	"github.com/ryogrid/SamehadaQP/types"
)

type RelationMetadata struct {
	id         types.RelationID
	numOfTuple uint64
	statistics *TableStatistics
}

func NewRelationMetadata(id types.RelationID, numOfTuple uint64, statistics *TableStatistics) *RelationMetadata {
	return &RelationMetadata{id, numOfTuple, statistics}
}

func (rm *RelationMetadata) ID() types.RelationID {
	return rm.id
}

func (rm *RelationMetadata) GetColumnNum() uint32 {
	return rm.statistics.GetColumnNum()
}

func (rm *RelationMetadata) GetTupleNum() uint64 {
	return rm.numOfTuple
}

// returned statistics is owned by the corpus. callers which keep it
// beyond the query must use GetDeepCopy.
func (rm *RelationMetadata) GetStatistics() *TableStatistics {
	return rm.statistics
}
