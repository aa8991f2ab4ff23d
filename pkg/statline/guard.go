package statline

import "sync"

// Guard keeps a status entry alive. Hold it for as long as the entry
// should be drawn; Close removes the entry from the drawer. Close is
// safe to call more than once and from any goroutine; only the first
// call has an effect, so a released id being reused by a later entry
// can never be removed by a stale guard.
type Guard struct {
	drawer *Drawer
	id     uint16
	once   sync.Once
}

// Close removes the entry from the drawer. It implements io.Closer so
// a guard can ride a defer like any other scoped resource.
func (g *Guard) Close() error {
	g.once.Do(func() {
		g.drawer.finishEntry(g.id)
	})
	return nil
}
