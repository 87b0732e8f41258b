package krakenspot

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeNonce_StrictlyIncreasing(t *testing.T) {
	n := NewNonceGenerator()
	prev := n.Next()
	for i := 0; i < 1000; i++ {
		next := n.Next()
		require.Greater(t, next, prev)
		prev = next
	}
}

func TestTimeNonce_StuckAndBackwardsClock(t *testing.T) {
	clock := time.UnixMilli(1616492376594)
	n := &TimeNonce{now: func() time.Time { return clock }}

	assert.Equal(t, uint64(1616492376594), n.Next())
	assert.Equal(t, uint64(1616492376595), n.Next())

	clock = clock.Add(-time.Hour)
	assert.Equal(t, uint64(1616492376596), n.Next())

	clock = time.UnixMilli(1616492380000)
	assert.Equal(t, uint64(1616492380000), n.Next())
}

func TestTimeNonce_Concurrent(t *testing.T) {
	n := NewNonceGenerator()
	const goroutines, perGoroutine = 100, 50

	var mu sync.Mutex
	seen := make(map[uint64]struct{}, goroutines*perGoroutine)
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			local := make([]uint64, 0, perGoroutine)
			for j := 0; j < perGoroutine; j++ {
				local = append(local, n.Next())
			}
			mu.Lock()
			for _, v := range local {
				seen[v] = struct{}{}
			}
			mu.Unlock()
		}()
	}
	wg.Wait()
	assert.Len(t, seen, goroutines*perGoroutine)
}
