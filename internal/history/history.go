// Package history keeps the undo and redo stacks of committed canvas states.
package history

import (
	"image/color"

	"github.com/example/easel/internal/raster"
)

// Manager holds snapshots of committed surface states, most recent last.
//
// The top of the undo stack always mirrors the surface as of the latest
// commit, so undoing restores the entry beneath it.
type Manager struct {
	undo  []raster.Snapshot
	redo  []raster.Snapshot
	limit int
	bg    color.Color
}

// Option configures a Manager.
type Option func(*Manager)

// WithLimit caps the undo stack at n entries, evicting the oldest first.
// Zero or a negative n means unbounded.
func WithLimit(n int) Option {
	return func(m *Manager) { m.limit = n }
}

// WithBackground sets the colour the surface is filled with when undo empties
// the stack.
func WithBackground(c color.Color) Option {
	return func(m *Manager) { m.bg = c }
}

// New returns an empty manager.
func New(opts ...Option) *Manager {
	m := &Manager{bg: color.White}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Commit records s as the newest state and discards the redo stack.
func (m *Manager) Commit(s raster.Snapshot) {
	if s.IsZero() {
		return
	}
	m.undo = append(m.undo, s)
	m.redo = m.redo[:0]
	if m.limit > 0 && len(m.undo) > m.limit {
		drop := len(m.undo) - m.limit
		copy(m.undo, m.undo[drop:])
		for i := len(m.undo) - drop; i < len(m.undo); i++ {
			m.undo[i] = raster.Snapshot{}
		}
		m.undo = m.undo[:m.limit]
	}
}

// Undo steps back one state. It saves the current pixels for Redo, pops the
// newest entry and restores the one beneath it, or fills the surface with the
// background colour when none is left. It reports false and changes nothing
// when the undo stack is empty.
func (m *Manager) Undo(s raster.Surface) bool {
	if s == nil || len(m.undo) == 0 {
		return false
	}
	m.redo = append(m.redo, s.Snapshot())
	m.undo[len(m.undo)-1] = raster.Snapshot{}
	m.undo = m.undo[:len(m.undo)-1]
	if n := len(m.undo); n > 0 {
		s.Restore(m.undo[n-1])
	} else {
		s.FillBackground(m.bg)
	}
	return true
}

// Redo reapplies the most recently undone state. It reports false and
// changes nothing when the redo stack is empty.
func (m *Manager) Redo(s raster.Surface) bool {
	if s == nil || len(m.redo) == 0 {
		return false
	}
	top := m.redo[len(m.redo)-1]
	m.redo[len(m.redo)-1] = raster.Snapshot{}
	m.redo = m.redo[:len(m.redo)-1]
	m.undo = append(m.undo, s.Snapshot())
	s.Restore(top)
	return true
}

// Len returns the depths of the undo and redo stacks.
func (m *Manager) Len() (undo, redo int) { return len(m.undo), len(m.redo) }

// Top returns the newest undo entry.
func (m *Manager) Top() (raster.Snapshot, bool) {
	if len(m.undo) == 0 {
		return raster.Snapshot{}, false
	}
	return m.undo[len(m.undo)-1], true
}

// CanUndo reports whether Undo would do anything.
func (m *Manager) CanUndo() bool { return len(m.undo) > 0 }

// CanRedo reports whether Redo would do anything.
func (m *Manager) CanRedo() bool { return len(m.redo) > 0 }

// Reset empties both stacks.
func (m *Manager) Reset() {
	m.undo = nil
	m.redo = nil
}
