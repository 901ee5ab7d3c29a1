package common

import (
	"fmt"
	"io"
	"os"
)

type LogLevel int32

const (
	DEBUG_INFO_DETAIL LogLevel = 1
	DEBUG_INFO        LogLevel = 2
	PARSER_INTERNAL   LogLevel = 4
	DEBUGGING         LogLevel = 8
	INFO              LogLevel = 16
	WARN              LogLevel = 32
	ERROR             LogLevel = 64
	FATAL             LogLevel = 128
)

// LogLevelSetting is the mask of levels ShPrintf emits
var LogLevelSetting = INFO | WARN | ERROR | FATAL

// LogOutput is where ShPrintf writes. stdout is left to query results.
var LogOutput io.Writer = os.Stderr

func ShPrintf(logLevel LogLevel, fmtStl string, a ...interface{}) {
	if logLevel&LogLevelSetting > 0 {
		fmt.Fprintf(LogOutput, fmtStl, a...)
	}
}
