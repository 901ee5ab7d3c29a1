package catalog

import (
	"github.com/pingcap/errors"
	"github.com/ryogrid/SamehadaQP/common"
	"github.com/ryogrid/SamehadaQP/types"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

var ErrUnknownRelation = errors.New("unknown relation")
var ErrDuplicateRelation = errors.New("relation is already registered")

// RelationCorpus is the set of all relations known to the system, keyed by global relation id.
// Relations are registered while loading. After Seal is called, the corpus is read only
// and queries may take statistics from it.
type RelationCorpus struct {
	relations map[types.RelationID]*RelationMetadata
	isSealed  bool
	latch     common.ReaderWriterLatch
}

func NewRelationCorpus() *RelationCorpus {
	return &RelationCorpus{make(map[types.RelationID]*RelationMetadata), false, common.NewRWLatch()}
}

// AddRelation registers rm. calling this after Seal is a bug of the loading code.
func (c *RelationCorpus) AddRelation(rm *RelationMetadata) error {
	c.latch.WLock()
	defer c.latch.WUnlock()

	common.SH_Assert(!c.isSealed, "relation corpus is already sealed")
	if _, ok := c.relations[rm.ID()]; ok {
		return errors.Annotatef(ErrDuplicateRelation, "relation %d", rm.ID())
	}
	c.relations[rm.ID()] = rm

	common.ShPrintf(common.DEBUG_INFO, "RelationCorpus: relation %d added (%d columns, %d tuples)\n",
		rm.ID(), rm.GetColumnNum(), rm.GetTupleNum())
	return nil
}

// Seal marks the end of loading
func (c *RelationCorpus) Seal() {
	c.latch.WLock()
	defer c.latch.WUnlock()
	c.isSealed = true
}

func (c *RelationCorpus) IsSealed() bool {
	c.latch.RLock()
	defer c.latch.RUnlock()
	return c.isSealed
}

func (c *RelationCorpus) GetRelationByID(id types.RelationID) (*RelationMetadata, error) {
	c.latch.RLock()
	defer c.latch.RUnlock()

	if rm, ok := c.relations[id]; ok {
		return rm, nil
	}
	return nil, errors.Annotatef(ErrUnknownRelation, "relation %d", id)
}

func (c *RelationCorpus) GetRelationNum() uint32 {
	c.latch.RLock()
	defer c.latch.RUnlock()
	return uint32(len(c.relations))
}

// GetAllRelationIDs returns registered ids in ascending order
func (c *RelationCorpus) GetAllRelationIDs() []types.RelationID {
	c.latch.RLock()
	ids := maps.Keys(c.relations)
	c.latch.RUnlock()

	slices.Sort(ids)
	return ids
}
