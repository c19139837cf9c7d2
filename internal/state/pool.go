package state

import (
	"sync"

	"github.com/san-kum/qsim/internal/quantum"
)

// SnapshotPool recycles the read-before-write buffers a dispatcher
// takes on every gate application. Buffers are zeroed on return;
// buffers of a stale dimension are dropped.
type SnapshotPool struct {
	pool sync.Pool
	size int
}

func NewSnapshotPool(size int) *SnapshotPool {
	return &SnapshotPool{
		size: size,
		pool: sync.Pool{
			New: func() interface{} {
				return make(quantum.Vector, size)
			},
		},
	}
}

func (p *SnapshotPool) Get() quantum.Vector {
	return p.pool.Get().(quantum.Vector)
}

func (p *SnapshotPool) Put(v quantum.Vector) {
	if len(v) == p.size {
		for i := range v {
			v[i] = 0
		}
		p.pool.Put(v)
	}
}

func (p *SnapshotPool) GetAndCopy(src quantum.Vector) quantum.Vector {
	dst := p.Get()
	copy(dst, src)
	return dst
}
