package main

import (
	"fmt"
	"io"
	"os"

	"github.com/ryogrid/SamehadaQP/catalog"
	"github.com/ryogrid/SamehadaQP/common"
	"github.com/ryogrid/SamehadaQP/samehada"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	verbose bool
	debug   bool
}

// reads relation files given as arguments (i-th file is relation i), then parses
// query batches from stdin and prints each query with its join/equality/filter counts
func newRootCommand(in io.Reader, out io.Writer) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "samehadaqp [relation files...]",
		Short: "parse join queries and snapshot relation statistics",
		Args:  cobra.MinimumNArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.verbose {
				common.LogLevelSetting |= common.DEBUG_INFO | common.DEBUGGING
			}
			common.EnableDebug = opts.debug
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			corpus, err := catalog.LoadCorpusFromFiles(args)
			if err != nil {
				return err
			}
			common.ShPrintf(common.INFO, "%d relations loaded\n", corpus.GetRelationNum())

			return processQueries(corpus, in, out)
		},
	}

	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "deadlock detection and stack dump on assertion failure")

	return cmd
}

func processQueries(corpus *catalog.RelationCorpus, in io.Reader, out io.Writer) error {
	reqManager := samehada.NewRequestManager(corpus)
	reqManager.StartTh()
	defer reqManager.StopTh()

	return samehada.ReadBatches(in, func(batch []string) error {
		for _, res := range reqManager.ParseBatch(batch) {
			if res.Err != nil {
				common.ShPrintf(common.ERROR, "query rejected: %v\n", res.Err)
				fmt.Fprintln(out, "ERROR")
				continue
			}
			qi := res.QueryInfo
			fmt.Fprintf(out, "%s joins=%d equalities=%d filters=%d\n",
				qi.DebugString(), qi.GetNumOfJoins(), qi.GetNumOfColEqualities(), qi.GetNumOfFilters())
		}
		return nil
	})
}

func main() {
	if err := newRootCommand(os.Stdin, os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}
