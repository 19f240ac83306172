package sim

import "colorca/internal/core"

// ActionKind enumerates control panel interactions.
type ActionKind uint8

const (
	ActionToggle ActionKind = iota
	ActionStart
	ActionPause
	ActionStep
	ActionRestart
	ActionRandomFill
	ActionSelect
	ActionSetColor
)

var actionNames = [...]string{
	ActionToggle:     "toggle",
	ActionStart:      "start",
	ActionPause:      "pause",
	ActionStep:       "step",
	ActionRestart:    "restart",
	ActionRandomFill: "random",
	ActionSelect:     "select",
	ActionSetColor:   "set-color",
}

func (k ActionKind) String() string {
	if int(k) < len(actionNames) {
		return actionNames[k]
	}
	return "unknown"
}

// Action is one discrete panel interaction. Category applies to select and
// set-color, Color to set-color.
type Action struct {
	Kind     ActionKind
	Category core.Category
	Color    core.RGB
}

// Dispatch applies a to the loop. It reports whether the action took effect.
func (l *Loop) Dispatch(a Action) bool {
	switch a.Kind {
	case ActionToggle:
		l.Toggle()
	case ActionStart:
		l.Start()
	case ActionPause:
		l.Pause()
	case ActionStep:
		return l.Step()
	case ActionRestart:
		l.Restart()
	case ActionRandomFill:
		return l.RandomFill()
	case ActionSelect:
		if !a.Category.Valid() {
			return false
		}
		l.Select(a.Category)
	case ActionSetColor:
		if !a.Category.Valid() {
			return false
		}
		l.SetColor(a.Category, a.Color)
	default:
		return false
	}
	return true
}

// Queue collects actions during a frame so they can be applied in order.
type Queue struct {
	pending []Action
}

// Push appends an action.
func (q *Queue) Push(a Action) { q.pending = append(q.pending, a) }

// Len returns the number of pending actions.
func (q *Queue) Len() int { return len(q.pending) }

// Drain dispatches every pending action to l and empties the queue.
func (q *Queue) Drain(l *Loop) {
	for _, a := range q.pending {
		l.Dispatch(a)
	}
	q.pending = q.pending[:0]
}
