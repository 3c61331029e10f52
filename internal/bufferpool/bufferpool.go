package bufferpool

import (
	"math/bits"
	"sync"
)

const poolCnt = 20

// pools contains pools for byte slices of various capacities.
//
//	pools[0] is for capacities from 0 upto 256
//	pools[1] is for capacities from 257 upto 512
//	pools[2] is for capacities from 513 upto 1024
//	...
//	pools[n] is for capacities from 2^(n+7)+1 to 2^(n+8)
var pools [poolCnt]sync.Pool

// Get returns a zero-length slice with capacity of at least dataLen bytes.
// Requests larger than the biggest pool class are served by a plain
// allocation that Put will later drop.
func Get(dataLen int) []byte {
	id, poolCap := poolIDAndCapacity(dataLen)
	if id >= poolCnt {
		return make([]byte, 0, dataLen)
	}
	if b := pools[id].Get(); b != nil {
		return b.([]byte)
	}

	// the pool is empty, allocate new poolCap bytes
	return make([]byte, 0, poolCap)
}

// Put recycles a buffer previously handed out by Get. Buffers whose capacity
// is not one this package hands out are dropped, which keeps every pooled
// buffer at exactly its class capacity.
func Put(buf []byte) {
	id, poolCap := poolIDAndCapacity(cap(buf))
	if id >= poolCnt || cap(buf) != poolCap {
		return
	}
	pools[id].Put(buf[:0])
}

// poolIDAndCapacity predicts the pool id for the given data size and returns
// the capacity of that pool class.
func poolIDAndCapacity(size int) (int, int) {
	size--
	size = max(size, 0)
	size >>= 8
	id := bits.Len(uint(size))
	if id >= poolCnt {
		return id, 0
	}
	return id, 1 << (id + 8)
}
