package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	testingpkg "github.com/ryogrid/SamehadaQP/testing/testing_assert"
	"github.com/ryogrid/SamehadaQP/testing/testing_tbl_gen"
)

func writeRelationFiles(t *testing.T) []string {
	dir := t.TempDir()
	paths := make([]string, 0)
	for _, relMeta := range testing_tbl_gen.TestRelationMetas() {
		image, _ := testing_tbl_gen.MakeRelationImage(relMeta, int64(relMeta.Id_))
		path := filepath.Join(dir, "r"+relMeta.Id_.String())
		testingpkg.Ok(t, os.WriteFile(path, image, 0644))
		paths = append(paths, path)
	}
	return paths
}

func TestRootCommand(t *testing.T) {
	paths := writeRelationFiles(t)
	in := strings.NewReader("4 0 2|0.1=1.2&0.2<500|0.1 2.3\n3 3|0.1=0.2&0.1=1.1|0.0\nF\n4 0|0.1=2.2|0.1\nF\n")
	out := new(bytes.Buffer)

	cmd := newRootCommand(in, out)
	cmd.SetArgs(paths)
	testingpkg.Ok(t, cmd.Execute())

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	testingpkg.Equals(t, []string{
		"4 0 2|0.1=1.2&0.2<500|0.1 2.3 joins=1 equalities=0 filters=1",
		"3 3|[0.1=0.2]&0.1=1.1|0.0 joins=1 equalities=1 filters=0",
		"ERROR",
	}, lines)
}

func TestRootCommandNeedsRelations(t *testing.T) {
	cmd := newRootCommand(strings.NewReader(""), new(bytes.Buffer))
	cmd.SetArgs([]string{})
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	testingpkg.Nok(t, cmd.Execute())
}
