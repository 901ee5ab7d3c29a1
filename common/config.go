package common

// EnableDebug switches latches to deadlock detecting ones and makes
// SH_Assert dump all goroutine stacks before panicking
var EnableDebug = false

// wire grammar of a query line: "relations|predicates|selections"
// ex: "4 0 2|0.1=1.2&0.2<500|0.1 2.3"
const (
	ClauseSeparator    = '|'
	PredicateSeparator = '&'
	ColumnRefSeparator = '.'
	// number of clauses a query line consists of
	ClauseNum = 3
	// a line consisting of this string closes a batch of queries
	BatchTerminator = "F"
)

const (
	KernelThreadNum = 24
	// max number of goroutines which parse queries concurrently
	MaxParserThreadNum = KernelThreadNum * 1
	// capacity of channel which RequestManager receives results through
	RequestResultChanSize = 100
)
