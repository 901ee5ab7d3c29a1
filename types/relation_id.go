package types

import "strconv"

// RelationID is the global identifier of a relation in the relation corpus.
// Queries refer to relations by their position in the query instead (local index).
type RelationID uint32

func (id RelationID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}
