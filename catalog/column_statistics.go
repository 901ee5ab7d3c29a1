package catalog

import (
	mapset "github.com/deckarep/golang-set/v2"
)

// ColumnStatistics is the estimation data of one column.
// it is a plain value, so copying it copies the whole estimation.
type ColumnStatistics struct {
	Min      uint64
	Max      uint64
	Distinct uint64
	Count    uint64
}

func ComputeColumnStatistics(values []uint64) ColumnStatistics {
	if len(values) == 0 {
		return ColumnStatistics{}
	}

	distinct := mapset.NewThreadUnsafeSet[uint64]()
	ret := ColumnStatistics{Min: values[0], Max: values[0], Count: uint64(len(values))}
	for _, val := range values {
		if val < ret.Min {
			ret.Min = val
		}
		if val > ret.Max {
			ret.Max = val
		}
		distinct.Add(val)
	}
	ret.Distinct = uint64(distinct.Cardinality())

	return ret
}
