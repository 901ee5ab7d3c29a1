package samehada

import (
	"bufio"
	"io"
	"strings"

	"github.com/pingcap/errors"
	"github.com/ryogrid/SamehadaQP/common"
)

// ReadBatches reads query lines from r and calls handle with each batch.
// a line which is common.BatchTerminator closes the current batch. lines after the
// last terminator form a final batch. empty lines are ignored.
func ReadBatches(r io.Reader, handle func(batch []string) error) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	batch := make([]string, 0)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			continue
		case common.BatchTerminator:
			if err := handle(batch); err != nil {
				return err
			}
			batch = make([]string, 0)
		default:
			batch = append(batch, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return errors.Trace(err)
	}

	if len(batch) > 0 {
		return handle(batch)
	}
	return nil
}
