package listing

import "sync/atomic"

// Generation tags requests so that only the latest one may commit its result
type Generation struct {
	current atomic.Uint64
}

// Next starts a new request and supersedes all earlier ones
func (g *Generation) Next() uint64 {
	return g.current.Add(1)
}

func (g *Generation) IsCurrent(token uint64) bool {
	return g.current.Load() == token
}
