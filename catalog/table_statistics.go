package catalog

import (
	"encoding/binary"

	"github.com/ryogrid/SamehadaQP/common"
	"github.com/spaolacci/murmur3"
	"golang.org/x/exp/slices"
)

// TableStatistics holds ColumnStatistics of each column of a relation.
// index of colStats is column index.
type TableStatistics struct {
	colStats []ColumnStatistics
}

func NewTableStatistics(colNum uint32) *TableStatistics {
	return &TableStatistics{make([]ColumnStatistics, colNum)}
}

func (ts *TableStatistics) GetColumnNum() uint32 {
	return uint32(len(ts.colStats))
}

func (ts *TableStatistics) GetColumnStats(colIdx uint32) ColumnStatistics {
	common.SH_Assert(colIdx < ts.GetColumnNum(), "column index is out of range of statistics")
	return ts.colStats[colIdx]
}

func (ts *TableStatistics) SetColumnStats(colIdx uint32, stats ColumnStatistics) {
	common.SH_Assert(colIdx < ts.GetColumnNum(), "column index is out of range of statistics")
	ts.colStats[colIdx] = stats
}

// Rows returns tuple count of the relation. all columns have same count.
func (ts *TableStatistics) Rows() uint64 {
	if len(ts.colStats) == 0 {
		return 0
	}
	return ts.colStats[0].Count
}

// GetDeepCopy returns copy which shares no memory with ts
func (ts *TableStatistics) GetDeepCopy() *TableStatistics {
	return &TableStatistics{slices.Clone(ts.colStats)}
}

// Serialize returns little endian image of all column statistics in column order
func (ts *TableStatistics) Serialize() []byte {
	buf := make([]byte, 0, len(ts.colStats)*4*8)
	for _, cs := range ts.colStats {
		buf = binary.LittleEndian.AppendUint64(buf, cs.Min)
		buf = binary.LittleEndian.AppendUint64(buf, cs.Max)
		buf = binary.LittleEndian.AppendUint64(buf, cs.Distinct)
		buf = binary.LittleEndian.AppendUint64(buf, cs.Count)
	}
	return buf
}

// Fingerprint is hash of Serialize() result. equal fingerprints mean byte identical statistics
// with very high probability.
func (ts *TableStatistics) Fingerprint() uint64 {
	h := murmur3.New128()
	h.Write(ts.Serialize())
	hash := h.Sum(nil)

	return binary.LittleEndian.Uint64(hash)
}
