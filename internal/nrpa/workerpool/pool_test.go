package workerpool_test

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nrpa-go/nrpa/internal/nrpa/workerpool"
)

func TestPoolReportsConfiguredCapacity(t *testing.T) {
	p := workerpool.New(4)
	assert.Equal(t, 4, p.NbThreads())
}

func TestPoolRunsMoreTasksThanCapacityWithoutDeadlock(t *testing.T) {
	p := workerpool.New(3)
	var completed int64
	const tasks = 50
	for i := 0; i < tasks; i++ {
		p.Submit(func() error {
			atomic.AddInt64(&completed, 1)
			return nil
		})
	}
	require.NoError(t, p.Wait())
	assert.EqualValues(t, tasks, completed)
}
