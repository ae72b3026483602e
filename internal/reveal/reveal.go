// Package reveal tracks which page elements have scrolled into view.
//
// An element becomes visible the first time it intersects the viewport by
// at least Threshold and stays visible for the rest of the page's life.
package reveal

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// Threshold is the fraction of an element that must be inside the viewport.
const Threshold = 0.1

// VisibleClass is the CSS class applied to revealed elements.
const VisibleClass = "animate-fade-in"

var (
	ErrUnknownTarget = errors.New("reveal: unknown target")
	ErrDisconnected  = errors.New("reveal: tracker disconnected")
)

type Tracker struct {
	mu           sync.RWMutex
	targets      map[string]bool
	disconnected bool
}

// New observes the given element ids. None of them is visible yet.
func New(targets ...string) *Tracker {
	t := &Tracker{targets: make(map[string]bool, len(targets))}
	for _, id := range targets {
		t.targets[id] = false
	}
	return t
}

// Observe records an intersection ratio for id and reports whether this
// call revealed it.
func (t *Tracker) Observe(id string, ratio float64) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.disconnected {
		return false, ErrDisconnected
	}
	visible, ok := t.targets[id]
	if !ok {
		return false, fmt.Errorf("%w: %q", ErrUnknownTarget, id)
	}
	if visible || ratio < Threshold {
		return false, nil
	}
	t.targets[id] = true
	return true, nil
}

func (t *Tracker) Visible(id string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.targets[id]
}

// Snapshot returns the visibility of every observed element.
func (t *Tracker) Snapshot() map[string]bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make(map[string]bool, len(t.targets))
	for id, v := range t.targets {
		out[id] = v
	}
	return out
}

// Revealed returns the visible ids in sorted order.
func (t *Tracker) Revealed() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	var ids []string
	for id, v := range t.targets {
		if v {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

// Disconnect stops observation. Visibility already recorded is kept.
func (t *Tracker) Disconnect() {
	t.mu.Lock()
	t.disconnected = true
	t.mu.Unlock()
}
