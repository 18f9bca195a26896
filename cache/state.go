// Package cache implements the watched-file cache handle contract: a
// per-file state machine tracking whether a module's symbols are
// fresh, plus an fsnotify-backed watcher that marks
// a handle Dirty when its backing file changes outside editor control.
package cache

// State is one handle's position in the Unloaded/Loaded/Dirty/Closed
// state machine.
type State int

const (
	Unloaded State = iota
	Loaded
	Dirty
	Closed
)

func (s State) String() string {
	switch s {
	case Unloaded:
		return "unloaded"
	case Loaded:
		return "loaded"
	case Dirty:
		return "dirty"
	case Closed:
		return "closed"
	default:
		return "unknown"
	}
}
