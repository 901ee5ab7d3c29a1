package testing_tbl_gen

import (
	"testing"

	"github.com/pingcap/errors"
	testingpkg "github.com/ryogrid/SamehadaQP/testing/testing_assert"
)

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("write failed")
}

func TestWriteOrPanic(t *testing.T) {
	defer func() {
		testingpkg.Assert(t, recover() != nil, "write error must panic")
	}()
	writeOrPanic(failingWriter{}, uint64(1))
}

func TestMakeRelationImage(t *testing.T) {
	meta := TestRelationMetas()[2]
	image, columns := MakeRelationImage(meta, 2)
	testingpkg.Equals(t, 3, len(columns))
	testingpkg.Equals(t, int(8*(2+3*meta.Num_rows_)), len(image))

	corpus := GenerateTestCorpus([]*RelationInsertMeta{meta})
	rm, err := corpus.GetRelationByID(meta.Id_)
	testingpkg.Ok(t, err)
	testingpkg.Equals(t, meta.Num_rows_, rm.GetTupleNum())
}
