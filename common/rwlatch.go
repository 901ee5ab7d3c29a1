// this code is from https://github.com/pzhzqt/goostub
// there is license and copyright notice in licenses/goostub dir

package common

import (
	"sync"

	"github.com/sasha-s/go-deadlock"
)

type ReaderWriterLatch interface {
	WLock()
	WUnlock()
	RLock()
	RUnlock()
}

type readerWriterLatch struct {
	mutex *sync.RWMutex
}

// NewRWLatch returns deadlock detecting latch when EnableDebug is true
func NewRWLatch() ReaderWriterLatch {
	if EnableDebug {
		return NewRWLatchDebug()
	}
	latch := readerWriterLatch{}
	latch.mutex = new(sync.RWMutex)

	return &latch
}

func (l *readerWriterLatch) WLock() {
	l.mutex.Lock()
}

func (l *readerWriterLatch) WUnlock() {
	l.mutex.Unlock()
}

func (l *readerWriterLatch) RLock() {
	l.mutex.RLock()
}

func (l *readerWriterLatch) RUnlock() {
	l.mutex.RUnlock()
}

// reports lock order violations and too long waits on stderr
type readerWriterLatchDebug struct {
	mutex *deadlock.RWMutex
}

func NewRWLatchDebug() ReaderWriterLatch {
	return &readerWriterLatchDebug{new(deadlock.RWMutex)}
}

func (l *readerWriterLatchDebug) WLock() {
	l.mutex.Lock()
}

func (l *readerWriterLatchDebug) WUnlock() {
	l.mutex.Unlock()
}

func (l *readerWriterLatchDebug) RLock() {
	l.mutex.RLock()
}

func (l *readerWriterLatchDebug) RUnlock() {
	l.mutex.RUnlock()
}
