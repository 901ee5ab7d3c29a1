package catalog_test

import (
	"encoding/binary"
	"testing"

	"github.com/pingcap/errors"
	"github.com/ryogrid/SamehadaQP/catalog"
	testingpkg "github.com/ryogrid/SamehadaQP/testing/testing_assert"
	"github.com/ryogrid/SamehadaQP/testing/testing_tbl_gen"
	"github.com/ryogrid/SamehadaQP/types"
)

func TestComputeColumnStatistics(t *testing.T) {
	stats := catalog.ComputeColumnStatistics([]uint64{5, 3, 9, 3, 5, 7})
	testingpkg.Equals(t, catalog.ColumnStatistics{Min: 3, Max: 9, Distinct: 4, Count: 6}, stats)

	testingpkg.Equals(t, catalog.ColumnStatistics{}, catalog.ComputeColumnStatistics(nil))
}

func TestLoadRelationFromBytes(t *testing.T) {
	relMeta := &testing_tbl_gen.RelationInsertMeta{Id_: 7, Num_rows_: testing_tbl_gen.TEST2_SIZE,
		Col_meta_: []*testing_tbl_gen.ColumnInsertMeta{
			{Dist_: testing_tbl_gen.DistSerial, Min_: 10, Max_: 0, Serial_counter_: 0},
			{Dist_: testing_tbl_gen.DistUniform, Min_: 0, Max_: 4, Serial_counter_: 0},
		}}
	image, columns := testing_tbl_gen.MakeRelationImage(relMeta, 1)

	rm, err := catalog.LoadRelationFromBytes(7, image)
	testingpkg.Ok(t, err)
	testingpkg.Equals(t, types.RelationID(7), rm.ID())
	testingpkg.Equals(t, uint32(2), rm.GetColumnNum())
	testingpkg.Equals(t, testing_tbl_gen.TEST2_SIZE, rm.GetTupleNum())

	serial := rm.GetStatistics().GetColumnStats(0)
	testingpkg.Equals(t, catalog.ColumnStatistics{Min: 10, Max: 109, Distinct: 100, Count: 100}, serial)
	testingpkg.Equals(t, catalog.ComputeColumnStatistics(columns[1]), rm.GetStatistics().GetColumnStats(1))
	testingpkg.Assert(t, rm.GetStatistics().GetColumnStats(1).Max < 4, "uniform column exceeds its max")
	testingpkg.Equals(t, uint64(100), rm.GetStatistics().Rows())
}

func TestLoadRelationRejectsTruncatedImage(t *testing.T) {
	image := binary.LittleEndian.AppendUint64(nil, 3)
	image = binary.LittleEndian.AppendUint64(image, 2)
	image = binary.LittleEndian.AppendUint64(image, 1)

	_, err := catalog.LoadRelationFromBytes(0, image)
	testingpkg.Nok(t, err)
	testingpkg.SimpleAssert(t, errors.Cause(err) == catalog.ErrMalformedRelation)

	_, err = catalog.LoadRelationFromBytes(0, []byte{1, 2})
	testingpkg.SimpleAssert(t, errors.Cause(err) == catalog.ErrMalformedRelation)

	noColumn := binary.LittleEndian.AppendUint64(nil, 3)
	noColumn = binary.LittleEndian.AppendUint64(noColumn, 0)
	_, err = catalog.LoadRelationFromBytes(0, noColumn)
	testingpkg.SimpleAssert(t, errors.Cause(err) == catalog.ErrMalformedRelation)

	// huge tuple counts must fail without allocating for the whole column
	for _, numOfTuple := range []uint64{1 << 62, 1 << 40, 1 << 20} {
		hugeImage := binary.LittleEndian.AppendUint64(nil, numOfTuple)
		hugeImage = binary.LittleEndian.AppendUint64(hugeImage, 1)
		hugeImage = binary.LittleEndian.AppendUint64(hugeImage, 42)
		_, err = catalog.LoadRelationFromBytes(0, hugeImage)
		testingpkg.Assert(t, errors.Cause(err) == catalog.ErrMalformedRelation, "%d tuples: %v", numOfTuple, err)
	}
}

func TestLoadRelationRejectsColumnNumOverflow(t *testing.T) {
	for _, numOfColumn := range []uint64{1 << 32, 1<<32 + 1, 1 << 63} {
		image := binary.LittleEndian.AppendUint64(nil, 1)
		image = binary.LittleEndian.AppendUint64(image, numOfColumn)
		image = binary.LittleEndian.AppendUint64(image, 7)

		rm, err := catalog.LoadRelationFromBytes(0, image)
		testingpkg.Assert(t, rm == nil, "%d columns must not be accepted", numOfColumn)
		testingpkg.Assert(t, errors.Cause(err) == catalog.ErrMalformedRelation, "%d columns: %v", numOfColumn, err)
	}
}

func TestRelationCorpus(t *testing.T) {
	corpus := testing_tbl_gen.GenerateTestCorpus(testing_tbl_gen.TestRelationMetas())

	testingpkg.Assert(t, corpus.IsSealed(), "generated corpus must be sealed")
	testingpkg.Equals(t, uint32(5), corpus.GetRelationNum())
	testingpkg.Equals(t, []types.RelationID{0, 1, 2, 3, 4}, corpus.GetAllRelationIDs())

	rm, err := corpus.GetRelationByID(4)
	testingpkg.Ok(t, err)
	testingpkg.Equals(t, uint32(5), rm.GetColumnNum())

	_, err = corpus.GetRelationByID(42)
	testingpkg.Nok(t, err)
	testingpkg.SimpleAssert(t, errors.Cause(err) == catalog.ErrUnknownRelation)
}

func TestRelationCorpusAddRelation(t *testing.T) {
	corpus := catalog.NewRelationCorpus()
	rm := catalog.NewRelationMetadata(3, 0, catalog.NewTableStatistics(2))

	testingpkg.Ok(t, corpus.AddRelation(rm))
	err := corpus.AddRelation(rm)
	testingpkg.SimpleAssert(t, errors.Cause(err) == catalog.ErrDuplicateRelation)

	corpus.Seal()
	defer func() {
		testingpkg.Assert(t, recover() != nil, "AddRelation after Seal must panic")
	}()
	corpus.AddRelation(catalog.NewRelationMetadata(4, 0, catalog.NewTableStatistics(1)))
}

func TestTableStatisticsDeepCopy(t *testing.T) {
	stats := catalog.NewTableStatistics(3)
	for i := uint32(0); i < 3; i++ {
		stats.SetColumnStats(i, catalog.ColumnStatistics{Min: uint64(i), Max: uint64(i * 10), Distinct: 2, Count: 50})
	}
	before := stats.Fingerprint()

	copied := stats.GetDeepCopy()
	testingpkg.Equals(t, stats.Serialize(), copied.Serialize())
	testingpkg.Equals(t, before, copied.Fingerprint())

	stats.SetColumnStats(1, catalog.ColumnStatistics{Min: 100, Max: 200, Distinct: 1, Count: 1})
	testingpkg.Equals(t, before, copied.Fingerprint())
	testingpkg.AssertFalse(t, before == stats.Fingerprint(), "fingerprint must follow modification")
	testingpkg.Equals(t, uint64(10), copied.GetColumnStats(1).Max)
}
