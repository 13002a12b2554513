package aria

import (
	"fmt"

	"github.com/go-drift/aria/pkg/errors"
)

// CollectType describes the argument type a state or property expects when
// its value is collected.
type CollectType int

const (
	// CollectInvalid marks a malformed descriptor row.
	CollectInvalid CollectType = iota
	// CollectBoolean collects a boolean argument.
	CollectBoolean
	// CollectInt collects an integer argument.
	CollectInt
	// CollectTristate collects a tristate argument.
	CollectTristate
	// CollectEnum collects an enumerated token argument.
	CollectEnum
	// CollectNumber collects a floating point argument.
	CollectNumber
	// CollectString collects a string argument.
	CollectString
	// CollectReference collects an accessible object argument.
	CollectReference
)

func (t CollectType) String() string {
	switch t {
	case CollectBoolean:
		return "boolean"
	case CollectInt:
		return "integer"
	case CollectTristate:
		return "tristate"
	case CollectEnum:
		return "enum"
	case CollectNumber:
		return "number"
	case CollectString:
		return "string"
	case CollectReference:
		return "reference"
	default:
		return "invalid"
	}
}

// collectEntry is one row of a descriptor table. The ctor field holds the
// constructor matching the collect type; enum rows wrap their typed token
// constructor into a func(int) Value.
//
// Constructor signatures by collect type:
//
//	CollectBoolean   func(bool) Value
//	CollectInt       func(int) Value
//	CollectTristate  func(Tristate) Value
//	CollectEnum      func(int) Value
//	CollectNumber    func(float64) Value
//	CollectString    func(string) Value
//	CollectReference func(Accessible) Value
type collectEntry struct {
	value int
	ctype CollectType
	name  string
	ctor  any
}

var collectStates = [numStates]collectEntry{
	StateBusy:     {value: int(StateBusy), ctype: CollectBoolean, name: "busy", ctor: NewBoolValue},
	StateChecked:  {value: int(StateChecked), ctype: CollectEnum, name: "checked", ctor: func(v int) Value { return NewCheckedValue(Checked(v)) }},
	StateDisabled: {value: int(StateDisabled), ctype: CollectBoolean, name: "disabled", ctor: NewBoolValue},
	StateExpanded: {value: int(StateExpanded), ctype: CollectTristate, name: "expanded", ctor: NewTristateValue},
	StateGrabbed:  {value: int(StateGrabbed), ctype: CollectTristate, name: "grabbed", ctor: NewTristateValue},
	StateHidden:   {value: int(StateHidden), ctype: CollectBoolean, name: "hidden", ctor: NewBoolValue},
	StateInvalid:  {value: int(StateInvalid), ctype: CollectEnum, name: "invalid", ctor: func(v int) Value { return NewInvalidValue(Invalid(v)) }},
	StatePressed:  {value: int(StatePressed), ctype: CollectEnum, name: "pressed", ctor: func(v int) Value { return NewPressedValue(Pressed(v)) }},
	StateSelected: {value: int(StateSelected), ctype: CollectTristate, name: "selected", ctor: NewTristateValue},
}

var collectProps = [numProperties]collectEntry{
	PropertyActiveDescendant: {value: int(PropertyActiveDescendant), ctype: CollectReference, name: "activedescendant", ctor: NewReferenceValue},
	PropertyAutocomplete:     {value: int(PropertyAutocomplete), ctype: CollectEnum, name: "autocomplete", ctor: func(v int) Value { return NewAutocompleteValue(Autocomplete(v)) }},
	PropertyControls:         {value: int(PropertyControls), ctype: CollectReference, name: "controls", ctor: NewReferenceValue},
	PropertyDescribedBy:      {value: int(PropertyDescribedBy), ctype: CollectReference, name: "describedby", ctor: NewReferenceValue},
	PropertyFlowTo:           {value: int(PropertyFlowTo), ctype: CollectReference, name: "flowto", ctor: NewReferenceValue},
	PropertyHasPopup:         {value: int(PropertyHasPopup), ctype: CollectBoolean, name: "haspopup", ctor: NewBoolValue},
	PropertyLabel:            {value: int(PropertyLabel), ctype: CollectString, name: "label", ctor: NewStringValue},
	PropertyLabelledBy:       {value: int(PropertyLabelledBy), ctype: CollectReference, name: "labelledby", ctor: NewReferenceValue},
	PropertyLevel:            {value: int(PropertyLevel), ctype: CollectInt, name: "level", ctor: NewIntValue},
	PropertyMultiLine:        {value: int(PropertyMultiLine), ctype: CollectBoolean, name: "multiline", ctor: NewBoolValue},
	PropertyMultiSelectable:  {value: int(PropertyMultiSelectable), ctype: CollectBoolean, name: "multiselectable", ctor: NewBoolValue},
	PropertyOrientation:      {value: int(PropertyOrientation), ctype: CollectEnum, name: "orientation", ctor: func(v int) Value { return NewOrientationValue(Orientation(v)) }},
	PropertyOwns:             {value: int(PropertyOwns), ctype: CollectReference, name: "owns", ctor: NewReferenceValue},
	PropertyPosInSet:         {value: int(PropertyPosInSet), ctype: CollectInt, name: "posinset", ctor: NewIntValue},
	PropertyReadOnly:         {value: int(PropertyReadOnly), ctype: CollectBoolean, name: "readonly", ctor: NewBoolValue},
	PropertyRelevant:         {value: int(PropertyRelevant), ctype: CollectString, name: "relevant", ctor: NewStringValue},
	PropertyRequired:         {value: int(PropertyRequired), ctype: CollectBoolean, name: "required", ctor: NewBoolValue},
	PropertySetSize:          {value: int(PropertySetSize), ctype: CollectInt, name: "setsize", ctor: NewIntValue},
	PropertySort:             {value: int(PropertySort), ctype: CollectEnum, name: "sort", ctor: func(v int) Value { return NewSortValue(Sort(v)) }},
	PropertyValueMax:         {value: int(PropertyValueMax), ctype: CollectNumber, name: "valuemax", ctor: NewNumberValue},
	PropertyValueMin:         {value: int(PropertyValueMin), ctype: CollectNumber, name: "valuemin", ctor: NewNumberValue},
	PropertyValueNow:         {value: int(PropertyValueNow), ctype: CollectNumber, name: "valuenow", ctor: NewNumberValue},
	PropertyValueText:        {value: int(PropertyValueText), ctype: CollectString, name: "valuetext", ctor: NewStringValue},
}

// Descriptor is the public view of one descriptor table row, used by
// tooling and diagnostics.
type Descriptor struct {
	// Name is the attribute name, e.g. "labelledby".
	Name string
	// Type is the argument type the attribute expects.
	Type CollectType
}

// DescribeState returns the descriptor for state.
func DescribeState(state State) (Descriptor, bool) {
	if int(state) < 0 || int(state) >= numStates {
		return Descriptor{}, false
	}
	entry := &collectStates[state]
	return Descriptor{Name: entry.name, Type: entry.ctype}, true
}

// DescribeProperty returns the descriptor for property.
func DescribeProperty(property Property) (Descriptor, bool) {
	if int(property) < 0 || int(property) >= numProperties {
		return Descriptor{}, false
	}
	entry := &collectProps[property]
	return Descriptor{Name: entry.name, Type: entry.ctype}, true
}

// stateEntry resolves the descriptor row for state, reporting a contract
// violation for the sentinel and out-of-range identifiers.
func stateEntry(op string, state State) (*collectEntry, bool) {
	if int(state) < 0 || int(state) >= numStates {
		reportContract(op, "a valid state", state.String())
		return nil, false
	}
	return &collectStates[state], true
}

// propertyEntry resolves the descriptor row for property, reporting a
// contract violation for the sentinel and out-of-range identifiers.
func propertyEntry(op string, property Property) (*collectEntry, bool) {
	if int(property) < 0 || int(property) >= numProperties {
		reportContract(op, "a valid property", property.String())
		return nil, false
	}
	return &collectProps[property], true
}

// reportConfig reports a descriptor table row that is out of sync with the
// identifier enumeration. This is a configuration error to fix at the
// source, not a runtime condition to recover from.
func reportConfig(op, attr, detail string) {
	errors.Report(&errors.AriaError{
		Op:   op,
		Kind: errors.KindConfig,
		Err:  &errors.ConfigError{Attr: attr, Detail: detail},
		Attr: attr,
	})
}

// DefaultForState returns a value holding the default for state, for use
// when the state has not been set explicitly.
func DefaultForState(state State) Value {
	const op = "aria.DefaultForState"

	entry, ok := stateEntry(op, state)
	if !ok {
		return nil
	}

	switch State(entry.value) {
	case StateBusy, StateDisabled, StateHidden:
		return NewBoolValue(false)

	case StateChecked:
		return NewCheckedValue(CheckedUndefined)

	case StateExpanded, StateGrabbed, StateSelected:
		return NewTristateValue(TristateUndefined)

	case StateInvalid:
		return NewInvalidValue(InvalidFalse)

	case StatePressed:
		return NewPressedValue(PressedUndefined)

	default:
		reportConfig(op, entry.name, "no default defined")
		return nil
	}
}

// DefaultForProperty returns a value holding the default for property, or
// nil for relationship properties, which have no meaningful default.
// Callers must treat a nil result as "unset", not as a value to store.
func DefaultForProperty(property Property) Value {
	const op = "aria.DefaultForProperty"

	entry, ok := propertyEntry(op, property)
	if !ok {
		return nil
	}

	switch Property(entry.value) {
	// Relationship properties have no default.
	case PropertyActiveDescendant,
		PropertyControls,
		PropertyDescribedBy,
		PropertyFlowTo,
		PropertyLabelledBy,
		PropertyOwns,
		PropertyRelevant:
		return nil

	// Boolean properties.
	case PropertyHasPopup,
		PropertyMultiLine,
		PropertyMultiSelectable,
		PropertyReadOnly,
		PropertyRequired:
		return NewBoolValue(false)

	// Integer properties.
	case PropertyLevel, PropertyPosInSet, PropertySetSize:
		return NewIntValue(0)

	// Number properties.
	case PropertyValueMax, PropertyValueMin, PropertyValueNow:
		return NewNumberValue(0)

	// String properties.
	case PropertyLabel, PropertyValueText:
		return NewStringValue("")

	// Token properties.
	case PropertyAutocomplete:
		return NewAutocompleteValue(AutocompleteNone)

	case PropertyOrientation:
		return NewOrientationValue(OrientationHorizontal)

	case PropertySort:
		return NewSortValue(SortNone)

	default:
		reportConfig(op, entry.name, "no default defined")
		return nil
	}
}

// CollectForState consumes the next argument from args and returns a value
// of the type state expects.
func CollectForState(state State, args *Args) Value {
	const op = "aria.CollectForState"

	entry, ok := stateEntry(op, state)
	if !ok {
		return nil
	}
	return collectFromArgs(op, entry, args)
}

// CollectForStateValue extracts the value stored in box and returns a value
// of the type state expects. The box must hold a value assignable to that
// type: bool, int, Tristate, an enumerated token, float64, string, or
// Accessible.
func CollectForStateValue(state State, box any) Value {
	const op = "aria.CollectForStateValue"

	entry, ok := stateEntry(op, state)
	if !ok {
		return nil
	}
	return collectFromBox(op, entry, box)
}

// CollectForProperty consumes the next argument from args and returns a
// value of the type property expects.
func CollectForProperty(property Property, args *Args) Value {
	const op = "aria.CollectForProperty"

	entry, ok := propertyEntry(op, property)
	if !ok {
		return nil
	}
	return collectFromArgs(op, entry, args)
}

// CollectForPropertyValue extracts the value stored in box and returns a
// value of the type property expects.
func CollectForPropertyValue(property Property, box any) Value {
	const op = "aria.CollectForPropertyValue"

	entry, ok := propertyEntry(op, property)
	if !ok {
		return nil
	}
	return collectFromBox(op, entry, box)
}

// collectFromArgs consumes one tagged argument and invokes the row's
// constructor with it.
func collectFromArgs(op string, entry *collectEntry, args *Args) Value {
	if args == nil {
		reportContract(op, "a non-nil argument cursor", "nil")
		return nil
	}

	arg, ok := args.next()
	if !ok {
		reportContract(op, "one more argument for "+entry.name, "an exhausted cursor")
		return nil
	}

	switch entry.ctype {
	case CollectBoolean:
		if arg.kind != ArgBool {
			return reportArgMismatch(op, entry, arg)
		}
		return entry.ctor.(func(bool) Value)(arg.b)

	case CollectInt:
		if arg.kind != ArgInt {
			return reportArgMismatch(op, entry, arg)
		}
		return entry.ctor.(func(int) Value)(arg.i)

	case CollectTristate:
		if arg.kind != ArgTristate {
			return reportArgMismatch(op, entry, arg)
		}
		return entry.ctor.(func(Tristate) Value)(arg.t)

	case CollectEnum:
		if arg.kind != ArgEnum && arg.kind != ArgInt {
			return reportArgMismatch(op, entry, arg)
		}
		return entry.ctor.(func(int) Value)(arg.i)

	case CollectNumber:
		if arg.kind != ArgNumber {
			return reportArgMismatch(op, entry, arg)
		}
		return entry.ctor.(func(float64) Value)(arg.f)

	case CollectString:
		if arg.kind != ArgString {
			return reportArgMismatch(op, entry, arg)
		}
		return entry.ctor.(func(string) Value)(arg.s)

	case CollectReference:
		if arg.kind != ArgReference {
			return reportArgMismatch(op, entry, arg)
		}
		return entry.ctor.(func(Accessible) Value)(arg.ref)

	default:
		reportConfig(op, entry.name, "unknown collect type")
		return nil
	}
}

// collectFromBox extracts a dynamically typed value and invokes the row's
// constructor with it.
func collectFromBox(op string, entry *collectEntry, box any) Value {
	switch entry.ctype {
	case CollectBoolean:
		v, ok := box.(bool)
		if !ok {
			return reportBoxMismatch(op, entry, box)
		}
		return entry.ctor.(func(bool) Value)(v)

	case CollectInt:
		v, ok := box.(int)
		if !ok {
			return reportBoxMismatch(op, entry, box)
		}
		return entry.ctor.(func(int) Value)(v)

	case CollectTristate:
		v, ok := tristateFromBox(box)
		if !ok {
			return reportBoxMismatch(op, entry, box)
		}
		return entry.ctor.(func(Tristate) Value)(v)

	case CollectEnum:
		v, ok := enumFromBox(box)
		if !ok {
			return reportBoxMismatch(op, entry, box)
		}
		return entry.ctor.(func(int) Value)(v)

	case CollectNumber:
		v, ok := numberFromBox(box)
		if !ok {
			return reportBoxMismatch(op, entry, box)
		}
		return entry.ctor.(func(float64) Value)(v)

	case CollectString:
		v, ok := box.(string)
		if !ok {
			return reportBoxMismatch(op, entry, box)
		}
		return entry.ctor.(func(string) Value)(v)

	case CollectReference:
		v, ok := box.(Accessible)
		if !ok {
			return reportBoxMismatch(op, entry, box)
		}
		return entry.ctor.(func(Accessible) Value)(v)

	default:
		reportConfig(op, entry.name, "unknown collect type")
		return nil
	}
}

// tristateFromBox accepts a Tristate or a plain int.
func tristateFromBox(box any) (Tristate, bool) {
	switch v := box.(type) {
	case Tristate:
		return v, true
	case int:
		return Tristate(v), true
	default:
		return TristateUndefined, false
	}
}

// enumFromBox accepts any of the enumerated token types or a plain int.
func enumFromBox(box any) (int, bool) {
	switch v := box.(type) {
	case int:
		return v, true
	case Checked:
		return int(v), true
	case Invalid:
		return int(v), true
	case Pressed:
		return int(v), true
	case Autocomplete:
		return int(v), true
	case Orientation:
		return int(v), true
	case Sort:
		return int(v), true
	default:
		return 0, false
	}
}

// numberFromBox accepts a float64 or a plain int.
func numberFromBox(box any) (float64, bool) {
	switch v := box.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	default:
		return 0, false
	}
}

func reportArgMismatch(op string, entry *collectEntry, arg Arg) Value {
	reportContract(op,
		fmt.Sprintf("a %s argument for %s", entry.ctype, entry.name),
		"a "+arg.kind.String()+" argument")
	return nil
}

func reportBoxMismatch(op string, entry *collectEntry, box any) Value {
	reportContract(op,
		fmt.Sprintf("a %s value for %s", entry.ctype, entry.name),
		fmt.Sprintf("%T", box))
	return nil
}
