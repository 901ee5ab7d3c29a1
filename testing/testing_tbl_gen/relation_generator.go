package testing_tbl_gen

import (
	"encoding/binary"
	"io"
	"math/rand"

	"github.com/dsnet/golib/memfile"
	"github.com/ryogrid/SamehadaQP/catalog"
	"github.com/ryogrid/SamehadaQP/types"
)

type ColumnInsertMeta struct {
	/**
	 * Distribution of values
	 */
	Dist_ int32
	/**
	 * min value of the column
	 */
	Min_ uint64
	/**
	 * max value of the column (exclusive on DistUniform)
	 */
	Max_ uint64
	/**
	 * Counter to generate serial data
	 */
	Serial_counter_ uint64
}

type RelationInsertMeta struct {
	/**
	 * Global id of the relation
	 */
	Id_ types.RelationID
	/**
	 * Number of tuples
	 */
	Num_rows_ uint64
	/**
	 * Columns
	 */
	Col_meta_ []*ColumnInsertMeta
}

const DistSerial int32 = 0
const DistUniform int32 = 1

const TEST1_SIZE uint64 = 1000
const TEST2_SIZE uint64 = 100

func GenNumericValues(col_meta *ColumnInsertMeta, count uint64, rnd *rand.Rand) []uint64 {
	values := make([]uint64, 0, count)
	if col_meta.Dist_ == DistSerial {
		for i := uint64(0); i < count; i++ {
			values = append(values, col_meta.Min_+col_meta.Serial_counter_)
			col_meta.Serial_counter_ += 1
		}
		return values
	}

	width := col_meta.Max_ - col_meta.Min_
	for i := uint64(0); i < count; i++ {
		if width == 0 {
			values = append(values, col_meta.Min_)
			continue
		}
		values = append(values, col_meta.Min_+uint64(rnd.Int63n(int64(width))))
	}
	return values
}

func writeOrPanic(w io.Writer, data interface{}) {
	if err := binary.Write(w, binary.LittleEndian, data); err != nil {
		panic(err)
	}
}

// MakeRelationImage returns binary image of relation which catalog.LoadRelation accepts
// and generated column values
func MakeRelationImage(rel_meta *RelationInsertMeta, seed int64) ([]byte, [][]uint64) {
	rnd := rand.New(rand.NewSource(seed))
	file := memfile.New(make([]byte, 0))

	writeOrPanic(file, rel_meta.Num_rows_)
	writeOrPanic(file, uint64(len(rel_meta.Col_meta_)))
	columns := make([][]uint64, 0, len(rel_meta.Col_meta_))
	for _, col_meta := range rel_meta.Col_meta_ {
		col := GenNumericValues(col_meta, rel_meta.Num_rows_, rnd)
		writeOrPanic(file, col)
		columns = append(columns, col)
	}

	return file.Bytes(), columns
}

func uniformColumns(num int, max uint64) []*ColumnInsertMeta {
	ret := []*ColumnInsertMeta{{DistSerial, 0, 0, 0}}
	for i := 1; i < num; i++ {
		ret = append(ret, &ColumnInsertMeta{DistUniform, 0, max, 0})
	}
	return ret
}

// TestRelationMetas returns relations 0..4. relation i has i+1 columns,
// so relation 4 has 5 columns.
func TestRelationMetas() []*RelationInsertMeta {
	metas := make([]*RelationInsertMeta, 0)
	for i := 0; i < 5; i++ {
		size := TEST1_SIZE
		if i%2 == 1 {
			size = TEST2_SIZE
		}
		metas = append(metas, &RelationInsertMeta{types.RelationID(i), size, uniformColumns(i+1, uint64(10*(i+1)))})
	}
	return metas
}

// GenerateTestCorpus loads relations of metas into a sealed corpus
func GenerateTestCorpus(metas []*RelationInsertMeta) *catalog.RelationCorpus {
	corpus := catalog.NewRelationCorpus()
	for _, rel_meta := range metas {
		image, _ := MakeRelationImage(rel_meta, int64(rel_meta.Id_))
		rm, err := catalog.LoadRelationFromBytes(rel_meta.Id_, image)
		if err != nil {
			panic(err)
		}
		if err = corpus.AddRelation(rm); err != nil {
			panic(err)
		}
	}
	corpus.Seal()

	return corpus
}
