package list

import (
	"errors"

	"github.com/victorozoterio/friendly-snout-console/internal/common"
)

// Gate tracks in-flight write operations per target (row uuid, or a
// well-known token for create). Pending state is scoped to the target,
// so a delete running on one row leaves every other row's actions
// interactive.
type Gate struct {
	pending map[string]struct{}
}

// NewGate returns an empty gate.
func NewGate() *Gate {
	return &Gate{pending: make(map[string]struct{})}
}

// Start marks target pending. It refuses (returns false) when the target
// already has an operation in flight, making double-submits no-ops.
func (g *Gate) Start(target string) bool {
	if _, ok := g.pending[target]; ok {
		return false
	}
	g.pending[target] = struct{}{}
	return true
}

// Finish clears the pending mark once the operation's completion has
// been delivered.
func (g *Gate) Finish(target string) {
	delete(g.pending, target)
}

// Pending reports whether the given target has an operation in flight.
func (g *Gate) Pending(target string) bool {
	_, ok := g.pending[target]
	return ok
}

// Busy reports whether any operation is in flight.
func (g *Gate) Busy() bool {
	return len(g.pending) > 0
}

// Dialog is a confirm dialog bound to one target row. Closing is
// suppressed while the target's operation is pending, so the user cannot
// dismiss a confirmation mid-flight.
type Dialog struct {
	open   bool
	target string
}

// Open binds the dialog to target and shows it.
func (d *Dialog) Open(target string) {
	d.open = true
	d.target = target
}

// Close hides the dialog and clears the selection. While gate reports
// the bound target pending, Close is a no-op and returns false.
func (d *Dialog) Close(gate *Gate) bool {
	if gate != nil && gate.Pending(d.target) {
		return false
	}
	d.open = false
	d.target = ""
	return true
}

// ForceClose hides the dialog unconditionally (used after a successful
// mutation, when the pending mark has already been cleared).
func (d *Dialog) ForceClose() {
	d.open = false
	d.target = ""
}

func (d *Dialog) IsOpen() bool   { return d.open }
func (d *Dialog) Target() string { return d.target }

// IsConflict reports whether a failed mutation was blocked by dependent
// records server-side (HTTP 409). Pages translate this into the
// entity-specific explanation instead of the generic failure toast.
func IsConflict(err error) bool {
	return errors.Is(err, common.ErrConflict)
}
