package aria

// State identifies an accessibility state: a dynamic condition of an
// element, such as being busy or selected.
type State int

// StateNone is the reserved sentinel for "no state". It has no descriptor
// and must never be passed to the collection or default lookup functions.
const StateNone State = -1

const (
	// StateBusy indicates an element is being modified and assistive
	// technologies may want to wait until the changes are complete.
	// Value type: boolean.
	StateBusy State = iota
	// StateChecked indicates the current state of a checkable element.
	// Value type: Checked token.
	StateChecked
	// StateDisabled indicates an element is perceivable but disabled.
	// Value type: boolean.
	StateDisabled
	// StateExpanded indicates whether a grouping element is expanded.
	// Value type: tristate.
	StateExpanded
	// StateGrabbed indicates an element's grabbed state in drag and drop.
	// Value type: tristate.
	StateGrabbed
	// StateHidden indicates an element is not visible or perceivable.
	// Value type: boolean.
	StateHidden
	// StateInvalid indicates the entered value does not conform to the
	// format expected by the application.
	// Value type: Invalid token.
	StateInvalid
	// StatePressed indicates the current pressed state of a toggle button.
	// Value type: Pressed token.
	StatePressed
	// StateSelected indicates the selected state of a selectable element.
	// Value type: tristate.
	StateSelected
)

// numStates is the number of valid non-sentinel states.
const numStates = int(StateSelected) + 1

func (s State) String() string {
	if s == StateNone {
		return "none"
	}
	if int(s) < 0 || int(s) >= numStates {
		return "unknown"
	}
	return collectStates[s].name
}

// AllStates returns the valid non-sentinel states in table order.
func AllStates() []State {
	states := make([]State, numStates)
	for i := range states {
		states[i] = State(i)
	}
	return states
}
