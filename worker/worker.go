package worker

import (
	"runtime"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/oomph-ac/traverse/oerror"
)

var workerQueue = make(chan func(), runtime.NumCPU())

func init() {
	for i := 0; i < runtime.NumCPU(); i++ {
		go worker()
	}
}

func worker() {
	defer sentry.Recover()

	for {
		f, ok := <-workerQueue
		if !ok {
			return
		}

		run(f)
	}
}

// run executes a single job. A panicking job is reported to sentry and does not take the worker down.
func run(f func()) {
	defer func() {
		if err := recover(); err != nil {
			hub := sentry.CurrentHub().Clone()
			hub.Recover(oerror.New("worker job panicked: %v", err))
			hub.Flush(time.Second * 5)
		}
	}()

	f()
}

// Submit queues f on the worker pool, blocking while every worker is busy and the queue is full.
// To be used by a function that may be CPU intensive.
func Submit(f func()) {
	workerQueue <- f
}
