package worker

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSubmit(t *testing.T) {
	var (
		wg    sync.WaitGroup
		count atomic.Int32
	)
	for range 100 {
		wg.Add(1)
		Submit(func() {
			defer wg.Done()
			count.Add(1)
		})
	}
	wg.Wait()
	require.EqualValues(t, 100, count.Load())
}

func TestSubmitSurvivesPanic(t *testing.T) {
	var wg sync.WaitGroup
	for range 2 * cap(workerQueue) {
		wg.Add(1)
		Submit(func() {
			defer wg.Done()
			panic("job failed")
		})
	}
	wg.Wait()

	done := make(chan struct{})
	Submit(func() { close(done) })
	<-done
}
