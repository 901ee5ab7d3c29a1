package samehada

import (
	"sync"

	"github.com/golang-collections/collections/queue"
	"github.com/ryogrid/SamehadaQP/catalog"
	"github.com/ryogrid/SamehadaQP/common"
	"github.com/ryogrid/SamehadaQP/parser"
)

type queryRequest struct {
	reqId    uint64
	queryStr string
	callerCh chan *ReqResult
}

type ReqResult struct {
	ReqId     uint64
	Query     string
	QueryInfo *parser.QueryInfo
	Err       error
}

// RequestManager parses query strings on up to common.MaxParserThreadNum goroutines.
// each request gets its own QueryInfo. corpus must be sealed before StartTh.
type RequestManager struct {
	corpus            *catalog.RelationCorpus
	nextReqId         uint64
	execQue           *queue.Queue
	queMutex          *sync.Mutex
	curExectingReqNum uint64
	inCh              chan *resultWithCaller
	isExecutionActive bool
}

type resultWithCaller struct {
	result   *ReqResult
	callerCh chan *ReqResult
}

func NewRequestManager(corpus *catalog.RelationCorpus) *RequestManager {
	common.SH_Assert(corpus.IsSealed(), "relation corpus must be sealed before parsing queries")
	ch := make(chan *resultWithCaller, common.RequestResultChanSize)
	return &RequestManager{corpus, 0, queue.New(), new(sync.Mutex), 0, ch, true}
}

// AppendRequest queues queryStr. result comes through returned channel exactly once.
func (reqManager *RequestManager) AppendRequest(queryStr string) <-chan *ReqResult {
	reqManager.queMutex.Lock()

	qr := &queryRequest{reqManager.nextReqId, queryStr, make(chan *ReqResult, 1)}
	reqManager.nextReqId++
	reqManager.execQue.Enqueue(qr)
	reqManager.queMutex.Unlock()

	// wake up execution thread
	reqManager.inCh <- nil

	return qr.callerCh
}

// ParseBatch parses all queries concurrently and returns results in order of queries
func (reqManager *RequestManager) ParseBatch(queries []string) []*ReqResult {
	chans := make([]<-chan *ReqResult, 0, len(queries))
	for _, query := range queries {
		chans = append(chans, reqManager.AppendRequest(query))
	}

	results := make([]*ReqResult, 0, len(queries))
	for _, ch := range chans {
		results = append(results, <-ch)
	}
	return results
}

// caller must having lock of queMutex
func (reqManager *RequestManager) retrieveRequest() *queryRequest {
	return reqManager.execQue.Dequeue().(*queryRequest)
}

func (reqManager *RequestManager) StartTh() {
	go reqManager.Run()
}

func (reqManager *RequestManager) StopTh() {
	reqManager.queMutex.Lock()
	reqManager.isExecutionActive = false
	reqManager.queMutex.Unlock()
	reqManager.inCh <- nil
}

func (reqManager *RequestManager) parseQueryTh(qr *queryRequest) {
	qi, err := parser.CreateQueryInfo(qr.queryStr, reqManager.corpus)
	reqManager.inCh <- &resultWithCaller{&ReqResult{qr.reqId, qr.queryStr, qi, err}, qr.callerCh}
}

// caller must having lock of queMutex
func (reqManager *RequestManager) executeQuedReqs() {
	for reqManager.execQue.Len() > 0 && reqManager.curExectingReqNum < common.MaxParserThreadNum {
		qr := reqManager.retrieveRequest()
		go reqManager.parseQueryTh(qr)
		reqManager.curExectingReqNum++
	}
}

func (reqManager *RequestManager) Run() {
	for {
		recvVal := <-reqManager.inCh
		reqManager.queMutex.Lock()
		if recvVal != nil { // receive result
			reqManager.curExectingReqNum--
			if recvVal.result.Err != nil {
				common.ShPrintf(common.DEBUGGING, "RequestManager: request %d failed: %v\n", recvVal.result.ReqId, recvVal.result.Err)
			}
			recvVal.callerCh <- recvVal.result
		}

		// check stop signal or new request
		if !reqManager.isExecutionActive {
			reqManager.queMutex.Unlock()
			break
		}
		reqManager.executeQuedReqs()
		reqManager.queMutex.Unlock()
	}
}
