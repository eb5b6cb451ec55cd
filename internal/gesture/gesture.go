// ABOUTME: Press/release state machine that resolves pointer input into tap or long-press
// ABOUTME: Idle -> Pressed -> {released: Tap, held past threshold: LongPress}; no timers of its own

package gesture

import "time"

// DefaultThreshold is the hold time after which a press becomes a long-press.
const DefaultThreshold = 500 * time.Millisecond

// State is the machine's current phase.
type State int

const (
	Idle State = iota
	Pressed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Pressed:
		return "pressed"
	default:
		return "unknown"
	}
}

// Kind is the resolved gesture.
type Kind int

const (
	None Kind = iota
	Tap
	LongPress
)

func (k Kind) String() string {
	switch k {
	case None:
		return "none"
	case Tap:
		return "tap"
	case LongPress:
		return "long-press"
	default:
		return "unknown"
	}
}

// Gesture is a fully resolved input on one node.
type Gesture struct {
	Kind Kind
	Node int
}

// Machine tracks a single pointer. The host drives time: it calls Tick when
// its own timer fires, so the machine never schedules anything.
type Machine struct {
	threshold time.Duration
	state     State
	node      int
	pressedAt time.Time
	fired     bool
}

// New creates a Machine. A non-positive threshold selects DefaultThreshold.
func New(threshold time.Duration) *Machine {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Machine{threshold: threshold}
}

// Threshold returns the long-press hold time.
func (m *Machine) Threshold() time.Duration { return m.threshold }

// State returns the current phase.
func (m *Machine) State() State { return m.state }

// Press starts tracking a press on node. A press while already pressed
// restarts tracking on the new node.
func (m *Machine) Press(node int, at time.Time) {
	m.state = Pressed
	m.node = node
	m.pressedAt = at
	m.fired = false
}

// Tick resolves a long-press once the hold passes the threshold. It returns
// it at most once per press.
func (m *Machine) Tick(now time.Time) Gesture {
	if m.state != Pressed || m.fired {
		return Gesture{}
	}
	if now.Sub(m.pressedAt) < m.threshold {
		return Gesture{}
	}
	m.fired = true
	return Gesture{Kind: LongPress, Node: m.node}
}

// Release ends the press. Releasing over a different node cancels it.
func (m *Machine) Release(node int, at time.Time) Gesture {
	if m.state != Pressed {
		return Gesture{}
	}
	pressed, fired := m.node, m.fired
	held := at.Sub(m.pressedAt)
	m.Cancel()

	switch {
	case fired, node != pressed:
		return Gesture{}
	case held >= m.threshold:
		return Gesture{Kind: LongPress, Node: pressed}
	default:
		return Gesture{Kind: Tap, Node: pressed}
	}
}

// Cancel drops any press in progress.
func (m *Machine) Cancel() {
	m.state = Idle
	m.fired = false
}
