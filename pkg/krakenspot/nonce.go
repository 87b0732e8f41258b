package krakenspot

import (
	"sync"
	"time"
)

// NonceGenerator hands out the nonce attached to every private request. Each
// call must return a value strictly greater than every value it returned
// before, including under concurrent use.
type NonceGenerator interface {
	Next() uint64
}

// TimeNonce issues unix-millisecond nonces. When the clock has not advanced
// past the last issued value (same millisecond, clock stepped backwards) the
// previous nonce plus one is issued instead.
type TimeNonce struct {
	now   func() time.Time
	last  uint64
	mutex sync.Mutex
}

func NewNonceGenerator() *TimeNonce {
	return &TimeNonce{now: time.Now}
}

func (n *TimeNonce) Next() uint64 {
	n.mutex.Lock()
	defer n.mutex.Unlock()
	next := uint64(n.now().UnixMilli())
	if next <= n.last {
		next = n.last + 1
	}
	n.last = next
	return next
}
