// ABOUTME: Reversible undo records: Toggle (place/remove) and MoveUp (combine)
// ABOUTME: Sealed interface so Undo handles every variant explicitly

package engine

import "fmt"

// Action is one recorded mutation. Implemented only by Toggle and MoveUp.
type Action interface {
	isAction()
	String() string
}

// Toggle records a placement (WasPebbled false) or a removal (WasPebbled true).
type Toggle struct {
	ID         int
	WasPebbled bool
}

// MoveUp records a combine from child From into parent To.
type MoveUp struct {
	From int
	To   int
}

func (Toggle) isAction() {}
func (MoveUp) isAction() {}

func (t Toggle) String() string {
	if t.WasPebbled {
		return fmt.Sprintf("remove %d", t.ID)
	}
	return fmt.Sprintf("place %d", t.ID)
}

func (m MoveUp) String() string {
	return fmt.Sprintf("combine %d->%d", m.From, m.To)
}
