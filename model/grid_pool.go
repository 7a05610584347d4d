package model

import "sync"

// GridPool recycles stability snapshots. Pooled grids carry only the current
// buffer: they are copied into and compared, never advanced.
type GridPool struct {
	pool sync.Pool
}

func NewGridPool() *GridPool {
	return &GridPool{
		pool: sync.Pool{
			New: func() interface{} {
				return &Grid{}
			},
		},
	}
}

// Get returns an all-dead snapshot grid of the given size without a scratch buffer
func (p *GridPool) Get(width, height int) *Grid {
	g := p.pool.Get().(*Grid)
	g.resize(width, height)
	return g
}

// Put hands a snapshot back for reuse. Nil pools and grids are ignored.
func (p *GridPool) Put(g *Grid) {
	if p == nil || g == nil {
		return
	}
	p.pool.Put(g)
}
