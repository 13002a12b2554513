package aria

import (
	"testing"

	"github.com/go-drift/aria/pkg/errors"
)

// expectedStateKinds maps each state to the kind of value its descriptor
// must produce.
var expectedStateKinds = map[State]Kind{
	StateBusy:     KindBool,
	StateChecked:  KindChecked,
	StateDisabled: KindBool,
	StateExpanded: KindTristate,
	StateGrabbed:  KindTristate,
	StateHidden:   KindBool,
	StateInvalid:  KindInvalid,
	StatePressed:  KindPressed,
	StateSelected: KindTristate,
}

// expectedPropertyKinds maps each property to the kind of value its
// descriptor must produce.
var expectedPropertyKinds = map[Property]Kind{
	PropertyActiveDescendant: KindReference,
	PropertyAutocomplete:     KindAutocomplete,
	PropertyControls:         KindReference,
	PropertyDescribedBy:      KindReference,
	PropertyFlowTo:           KindReference,
	PropertyHasPopup:         KindBool,
	PropertyLabel:            KindString,
	PropertyLabelledBy:       KindReference,
	PropertyLevel:            KindInt,
	PropertyMultiLine:        KindBool,
	PropertyMultiSelectable:  KindBool,
	PropertyOrientation:      KindOrientation,
	PropertyOwns:             KindReference,
	PropertyPosInSet:         KindInt,
	PropertyReadOnly:         KindBool,
	PropertyRelevant:         KindString,
	PropertyRequired:         KindBool,
	PropertySetSize:          KindInt,
	PropertySort:             KindSort,
	PropertyValueMax:         KindNumber,
	PropertyValueMin:         KindNumber,
	PropertyValueNow:         KindNumber,
	PropertyValueText:        KindString,
}

// sampleArg returns a well-typed argument for a collect type.
func sampleArg(t CollectType) Arg {
	switch t {
	case CollectBoolean:
		return BoolArg(true)
	case CollectInt:
		return IntArg(3)
	case CollectTristate:
		return TristateArg(TristateTrue)
	case CollectEnum:
		return EnumArg(1)
	case CollectNumber:
		return NumberArg(1.5)
	case CollectString:
		return StringArg("sample")
	case CollectReference:
		return RefArg(&testObject{})
	default:
		return Arg{}
	}
}

// sampleBox returns a well-typed boxed value for a collect type.
func sampleBox(t CollectType) any {
	switch t {
	case CollectBoolean:
		return true
	case CollectInt:
		return 3
	case CollectTristate:
		return TristateTrue
	case CollectEnum:
		return 1
	case CollectNumber:
		return 1.5
	case CollectString:
		return "sample"
	case CollectReference:
		return &testObject{}
	default:
		return nil
	}
}

func TestCollectForStateTableCoverage(t *testing.T) {
	for _, state := range AllStates() {
		desc, ok := DescribeState(state)
		if !ok {
			t.Fatalf("state %v has no descriptor", state)
		}

		v := CollectForState(state, NewArgs(sampleArg(desc.Type)))
		if v == nil {
			t.Errorf("%s: CollectForState returned nil", desc.Name)
			continue
		}
		if got, want := v.Kind(), expectedStateKinds[state]; got != want {
			t.Errorf("%s: collected kind %v, want %v", desc.Name, got, want)
		}

		v = CollectForStateValue(state, sampleBox(desc.Type))
		if v == nil {
			t.Errorf("%s: CollectForStateValue returned nil", desc.Name)
			continue
		}
		if got, want := v.Kind(), expectedStateKinds[state]; got != want {
			t.Errorf("%s: boxed collected kind %v, want %v", desc.Name, got, want)
		}
	}
}

func TestCollectForPropertyTableCoverage(t *testing.T) {
	for _, prop := range AllProperties() {
		desc, ok := DescribeProperty(prop)
		if !ok {
			t.Fatalf("property %v has no descriptor", prop)
		}

		v := CollectForProperty(prop, NewArgs(sampleArg(desc.Type)))
		if v == nil {
			t.Errorf("%s: CollectForProperty returned nil", desc.Name)
			continue
		}
		if got, want := v.Kind(), expectedPropertyKinds[prop]; got != want {
			t.Errorf("%s: collected kind %v, want %v", desc.Name, got, want)
		}

		v = CollectForPropertyValue(prop, sampleBox(desc.Type))
		if v == nil {
			t.Errorf("%s: CollectForPropertyValue returned nil", desc.Name)
			continue
		}
		if got, want := v.Kind(), expectedPropertyKinds[prop]; got != want {
			t.Errorf("%s: boxed collected kind %v, want %v", desc.Name, got, want)
		}
	}
}

func TestCollectedPayloads(t *testing.T) {
	if got := AsBool(CollectForState(StateBusy, NewArgs(BoolArg(true)))); !got {
		t.Error("collected busy = false, want true")
	}
	if got := AsChecked(CollectForState(StateChecked, NewArgs(EnumArg(CheckedMixed)))); got != CheckedMixed {
		t.Errorf("collected checked = %v, want mixed", got)
	}
	if got := AsTristate(CollectForState(StateSelected, NewArgs(TristateArg(TristateFalse)))); got != TristateFalse {
		t.Errorf("collected selected = %v, want false", got)
	}
	if got := AsInt(CollectForProperty(PropertyLevel, NewArgs(IntArg(4)))); got != 4 {
		t.Errorf("collected level = %d, want 4", got)
	}
	if got := AsNumber(CollectForProperty(PropertyValueNow, NewArgs(NumberArg(0.5)))); got != 0.5 {
		t.Errorf("collected valuenow = %v, want 0.5", got)
	}
	if got := AsString(CollectForProperty(PropertyLabel, NewArgs(StringArg("Save")))); got != "Save" {
		t.Errorf("collected label = %q, want %q", got, "Save")
	}

	obj := &testObject{}
	if got := AsReference(CollectForProperty(PropertyLabelledBy, NewArgs(RefArg(obj)))); got != Accessible(obj) {
		t.Error("collected labelledby does not point at the supplied object")
	}
	if got := AsReference(CollectForPropertyValue(PropertyDescribedBy, obj)); got != Accessible(obj) {
		t.Error("boxed describedby does not point at the supplied object")
	}
}

func TestCollectConsumesOneArgument(t *testing.T) {
	args := NewArgs(BoolArg(true), IntArg(2))

	CollectForState(StateBusy, args)
	if got := args.Remaining(); got != 1 {
		t.Errorf("Remaining after one collection = %d, want 1", got)
	}

	CollectForProperty(PropertyLevel, args)
	if got := args.Remaining(); got != 0 {
		t.Errorf("Remaining after two collections = %d, want 0", got)
	}
}

func TestCollectExhaustedCursor(t *testing.T) {
	h := capture(t)
	if v := CollectForState(StateBusy, NewArgs()); v != nil {
		t.Errorf("collection from empty cursor = %v, want nil", v)
	}
	if len(h.errs) != 1 || h.errs[0].Kind != errors.KindContract {
		t.Errorf("reported %v, want one contract error", h.kinds())
	}
}

func TestCollectArgTagMismatch(t *testing.T) {
	h := capture(t)
	if v := CollectForState(StateBusy, NewArgs(StringArg("yes"))); v != nil {
		t.Errorf("mismatched collection = %v, want nil", v)
	}
	if len(h.errs) != 1 || h.errs[0].Kind != errors.KindContract {
		t.Errorf("reported %v, want one contract error", h.kinds())
	}
}

func TestCollectBoxTypeMismatch(t *testing.T) {
	h := capture(t)
	if v := CollectForPropertyValue(PropertyLevel, "three"); v != nil {
		t.Errorf("mismatched boxed collection = %v, want nil", v)
	}
	if len(h.errs) != 1 || h.errs[0].Kind != errors.KindContract {
		t.Errorf("reported %v, want one contract error", h.kinds())
	}
}

func TestCollectSentinelIdentifiers(t *testing.T) {
	h := capture(t)
	if v := CollectForState(StateNone, NewArgs(BoolArg(true))); v != nil {
		t.Errorf("CollectForState(StateNone) = %v, want nil", v)
	}
	if v := CollectForProperty(PropertyNone, NewArgs(BoolArg(true))); v != nil {
		t.Errorf("CollectForProperty(PropertyNone) = %v, want nil", v)
	}
	if v := DefaultForState(StateNone); v != nil {
		t.Errorf("DefaultForState(StateNone) = %v, want nil", v)
	}
	if v := DefaultForProperty(PropertyNone); v != nil {
		t.Errorf("DefaultForProperty(PropertyNone) = %v, want nil", v)
	}
	if len(h.errs) != 4 {
		t.Errorf("reported %d errors, want 4", len(h.errs))
	}
}

func TestCollectUnknownTypeReportsConfig(t *testing.T) {
	// A row with an unrecognized collect type means the table is out of
	// sync with the identifier enumeration. Collection must not crash; it
	// reports the configuration error and yields nothing.
	h := capture(t)
	entry := &collectEntry{ctype: CollectInvalid, name: "bogus"}

	if v := collectFromArgs("aria.test", entry, NewArgs(BoolArg(true))); v != nil {
		t.Errorf("collectFromArgs on invalid row = %v, want nil", v)
	}
	if v := collectFromBox("aria.test", entry, true); v != nil {
		t.Errorf("collectFromBox on invalid row = %v, want nil", v)
	}

	if len(h.errs) != 2 {
		t.Fatalf("reported %d errors, want 2", len(h.errs))
	}
	for _, e := range h.errs {
		if e.Kind != errors.KindConfig {
			t.Errorf("reported kind %v, want config", e.Kind)
		}
		if e.Attr != "bogus" {
			t.Errorf("reported attr %q, want %q", e.Attr, "bogus")
		}
	}
}

func TestDefaultForState(t *testing.T) {
	if !Equal(DefaultForState(StateBusy), NewBoolValue(false)) {
		t.Error("default for busy != boolean(false)")
	}
	if !Equal(DefaultForState(StateChecked), NewCheckedValue(CheckedUndefined)) {
		t.Error("default for checked != checked(undefined)")
	}
	if !Equal(DefaultForState(StateInvalid), NewInvalidValue(InvalidFalse)) {
		t.Error("default for invalid != invalid(false)")
	}
	if !Equal(DefaultForState(StatePressed), NewPressedValue(PressedUndefined)) {
		t.Error("default for pressed != pressed(undefined)")
	}

	for _, state := range AllStates() {
		v := DefaultForState(state)
		if v == nil {
			t.Errorf("%v: default is nil", state)
			continue
		}
		if got, want := v.Kind(), expectedStateKinds[state]; got != want {
			t.Errorf("%v: default kind %v, want %v", state, got, want)
		}
	}
}

func TestDefaultForProperty(t *testing.T) {
	// Relationship properties have no default: an explicit "unset" outcome,
	// not an empty value.
	relationship := map[Property]bool{
		PropertyActiveDescendant: true,
		PropertyControls:         true,
		PropertyDescribedBy:      true,
		PropertyFlowTo:           true,
		PropertyLabelledBy:       true,
		PropertyOwns:             true,
		PropertyRelevant:         true,
	}

	for _, prop := range AllProperties() {
		v := DefaultForProperty(prop)
		if relationship[prop] {
			if v != nil {
				t.Errorf("%v: default = %v, want nil", prop, v)
			}
			continue
		}
		if v == nil {
			t.Errorf("%v: default is nil", prop)
			continue
		}
		if got, want := v.Kind(), expectedPropertyKinds[prop]; got != want {
			t.Errorf("%v: default kind %v, want %v", prop, got, want)
		}
	}

	if !Equal(DefaultForProperty(PropertyHasPopup), NewBoolValue(false)) {
		t.Error("default for haspopup != boolean(false)")
	}
	if !Equal(DefaultForProperty(PropertyLevel), NewIntValue(0)) {
		t.Error("default for level != integer(0)")
	}
	if !Equal(DefaultForProperty(PropertyValueNow), NewNumberValue(0)) {
		t.Error("default for valuenow != number(0)")
	}
	if !Equal(DefaultForProperty(PropertyLabel), NewStringValue("")) {
		t.Error(`default for label != string("")`)
	}
	if !Equal(DefaultForProperty(PropertyOrientation), NewOrientationValue(OrientationHorizontal)) {
		t.Error("default for orientation != orientation(horizontal)")
	}
	if !Equal(DefaultForProperty(PropertySort), NewSortValue(SortNone)) {
		t.Error("default for sort != sort(none)")
	}
}

func TestStateString(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{StateNone, "none"},
		{StateBusy, "busy"},
		{StateSelected, "selected"},
		{State(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, want %q", tt.state, got, tt.want)
		}
	}
}

func TestPropertyString(t *testing.T) {
	tests := []struct {
		prop Property
		want string
	}{
		{PropertyNone, "none"},
		{PropertyActiveDescendant, "activedescendant"},
		{PropertyValueText, "valuetext"},
		{Property(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.prop.String(); got != tt.want {
			t.Errorf("Property(%d).String() = %q, want %q", tt.prop, got, tt.want)
		}
	}
}

func TestDescribeOutOfRange(t *testing.T) {
	if _, ok := DescribeState(StateNone); ok {
		t.Error("DescribeState(StateNone) reported ok")
	}
	if _, ok := DescribeProperty(Property(numProperties)); ok {
		t.Error("DescribeProperty out of range reported ok")
	}
}
