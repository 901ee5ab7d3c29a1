package catalog

import (
	"bufio"
	"encoding/binary"
	"io"
	"math"
	"os"

	"github.com/dsnet/golib/memfile"
	"github.com/pingcap/errors"
	"github.com/ryogrid/SamehadaQP/types"
)

var ErrMalformedRelation = errors.New("malformed relation image")

// values are read at most this many at a time. a column buffer grows only as far as
// the image actually has data.
const loadChunkValueNum = 4096

// image layout (little endian):
//
//	uint64 numOfTuple
//	uint64 numOfColumn
//	uint64 values[numOfColumn][numOfTuple] (column major)
//
// tuple values are not kept. only ColumnStatistics of each column survive loading.
func LoadRelation(id types.RelationID, r io.Reader) (*RelationMetadata, error) {
	var header [2]uint64
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, errors.Annotatef(ErrMalformedRelation, "relation %d: header: %v", id, err)
	}
	numOfTuple, numOfColumn := header[0], header[1]
	if numOfColumn == 0 {
		return nil, errors.Annotatef(ErrMalformedRelation, "relation %d has no column", id)
	}
	if numOfColumn > math.MaxUint32 {
		return nil, errors.Annotatef(ErrMalformedRelation, "relation %d: too many columns (%d)", id, numOfColumn)
	}
	if numOfTuple > math.MaxInt/8 {
		return nil, errors.Annotatef(ErrMalformedRelation, "relation %d: too many tuples (%d)", id, numOfTuple)
	}

	stats := NewTableStatistics(uint32(numOfColumn))
	for colIdx := uint32(0); colIdx < uint32(numOfColumn); colIdx++ {
		col, err := readColumn(r, numOfTuple)
		if err != nil {
			return nil, errors.Annotatef(ErrMalformedRelation, "relation %d: column %d: %v", id, colIdx, err)
		}
		stats.SetColumnStats(colIdx, ComputeColumnStatistics(col))
	}

	return NewRelationMetadata(id, numOfTuple, stats), nil
}

func readColumn(r io.Reader, numOfTuple uint64) ([]uint64, error) {
	chunk := make([]uint64, min(numOfTuple, loadChunkValueNum))
	col := make([]uint64, 0, len(chunk))
	for remaining := numOfTuple; remaining > 0; {
		n := min(remaining, loadChunkValueNum)
		if err := binary.Read(r, binary.LittleEndian, chunk[:n]); err != nil {
			return nil, err
		}
		col = append(col, chunk[:n]...)
		remaining -= n
	}
	return col, nil
}

func LoadRelationFromBytes(id types.RelationID, image []byte) (*RelationMetadata, error) {
	return LoadRelation(id, memfile.New(image))
}

func LoadRelationFromFile(id types.RelationID, path string) (*RelationMetadata, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Trace(err)
	}
	defer f.Close()

	return LoadRelation(id, bufio.NewReader(f))
}

// LoadCorpusFromFiles loads relations in order of paths. i-th path gets global relation id i.
// returned corpus is sealed.
func LoadCorpusFromFiles(paths []string) (*RelationCorpus, error) {
	corpus := NewRelationCorpus()
	for i, path := range paths {
		rm, err := LoadRelationFromFile(types.RelationID(i), path)
		if err != nil {
			return nil, errors.Annotatef(err, "loading %s", path)
		}
		if err = corpus.AddRelation(rm); err != nil {
			return nil, err
		}
	}
	corpus.Seal()

	return corpus, nil
}
