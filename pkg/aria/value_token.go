package aria

import "strings"

// Boolean, tristate and token values are static singletons: only a handful
// of instances can exist per kind, so the library owns one of each for the
// lifetime of the process and constructors hand out the shared instance.

// BoolValue holds a plain boolean state or property value.
type BoolValue struct {
	static
	value bool
}

var (
	boolFalseValue = &BoolValue{value: false}
	boolTrueValue  = &BoolValue{value: true}
)

// NewBoolValue returns the boolean value for value.
func NewBoolValue(value bool) Value {
	if value {
		return boolTrueValue
	}
	return boolFalseValue
}

// Kind reports KindBool.
func (v *BoolValue) Kind() Kind { return KindBool }

func (v *BoolValue) equal(other Value) bool {
	o := other.(*BoolValue)
	return v.value == o.value
}

func (v *BoolValue) print(buf *strings.Builder) {
	if v.value {
		buf.WriteString("true")
	} else {
		buf.WriteString("false")
	}
}

// AsBool returns the boolean held by v.
// v must be a boolean value.
func AsBool(v Value) bool {
	bv, ok := v.(*BoolValue)
	if !ok {
		reportKindMismatch("aria.AsBool", KindBool, v)
		return false
	}
	return bv.value
}

// TristateValue holds a three-valued logical state.
type TristateValue struct {
	static
	value Tristate
}

var (
	tristateUndefinedValue = &TristateValue{value: TristateUndefined}
	tristateFalseValue     = &TristateValue{value: TristateFalse}
	tristateTrueValue      = &TristateValue{value: TristateTrue}
)

// NewTristateValue returns the tristate value for value.
func NewTristateValue(value Tristate) Value {
	switch value {
	case TristateFalse:
		return tristateFalseValue
	case TristateTrue:
		return tristateTrueValue
	case TristateUndefined:
		return tristateUndefinedValue
	default:
		reportContract("aria.NewTristateValue", "a valid tristate", "an out-of-range value")
		return tristateUndefinedValue
	}
}

// Kind reports KindTristate.
func (v *TristateValue) Kind() Kind { return KindTristate }

func (v *TristateValue) equal(other Value) bool {
	o := other.(*TristateValue)
	return v.value == o.value
}

func (v *TristateValue) print(buf *strings.Builder) {
	buf.WriteString(v.value.String())
}

// AsTristate returns the tristate held by v.
// v must be a tristate value.
func AsTristate(v Value) Tristate {
	tv, ok := v.(*TristateValue)
	if !ok {
		reportKindMismatch("aria.AsTristate", KindTristate, v)
		return TristateUndefined
	}
	return tv.value
}

// tokenValue is the shared representation of the enumerated token kinds.
// Each token set has one static instance per token, indexed below.
type tokenValue struct {
	static
	kind  Kind
	name  string
	value int
}

func (v *tokenValue) Kind() Kind { return v.kind }

func (v *tokenValue) equal(other Value) bool {
	o := other.(*tokenValue)
	return v.value == o.value
}

func (v *tokenValue) print(buf *strings.Builder) {
	buf.WriteString(v.name)
}

var (
	checkedValues = []*tokenValue{
		{kind: KindChecked, name: "undefined", value: int(CheckedUndefined)},
		{kind: KindChecked, name: "false", value: int(CheckedFalse)},
		{kind: KindChecked, name: "true", value: int(CheckedTrue)},
		{kind: KindChecked, name: "mixed", value: int(CheckedMixed)},
	}
	invalidValues = []*tokenValue{
		{kind: KindInvalid, name: "false", value: int(InvalidFalse)},
		{kind: KindInvalid, name: "true", value: int(InvalidTrue)},
		{kind: KindInvalid, name: "grammar", value: int(InvalidGrammar)},
		{kind: KindInvalid, name: "spelling", value: int(InvalidSpelling)},
	}
	pressedValues = []*tokenValue{
		{kind: KindPressed, name: "undefined", value: int(PressedUndefined)},
		{kind: KindPressed, name: "false", value: int(PressedFalse)},
		{kind: KindPressed, name: "true", value: int(PressedTrue)},
		{kind: KindPressed, name: "mixed", value: int(PressedMixed)},
	}
	autocompleteValues = []*tokenValue{
		{kind: KindAutocomplete, name: "none", value: int(AutocompleteNone)},
		{kind: KindAutocomplete, name: "inline", value: int(AutocompleteInline)},
		{kind: KindAutocomplete, name: "list", value: int(AutocompleteList)},
		{kind: KindAutocomplete, name: "both", value: int(AutocompleteBoth)},
	}
	orientationValues = []*tokenValue{
		{kind: KindOrientation, name: "undefined", value: int(OrientationUndefined)},
		{kind: KindOrientation, name: "horizontal", value: int(OrientationHorizontal)},
		{kind: KindOrientation, name: "vertical", value: int(OrientationVertical)},
	}
	sortValues = []*tokenValue{
		{kind: KindSort, name: "none", value: int(SortNone)},
		{kind: KindSort, name: "ascending", value: int(SortAscending)},
		{kind: KindSort, name: "descending", value: int(SortDescending)},
		{kind: KindSort, name: "other", value: int(SortOther)},
	}
)

// tokenLookup returns the static instance for value in set, where first is
// the numeric value of the first token in the set.
func tokenLookup(op string, set []*tokenValue, first, value int) Value {
	idx := value - first
	if idx < 0 || idx >= len(set) {
		reportContract(op, "a valid token", "an out-of-range value")
		return set[0]
	}
	return set[idx]
}

// NewCheckedValue returns the checked token value for value.
func NewCheckedValue(value Checked) Value {
	return tokenLookup("aria.NewCheckedValue", checkedValues, int(CheckedUndefined), int(value))
}

// NewInvalidValue returns the invalid token value for value.
func NewInvalidValue(value Invalid) Value {
	return tokenLookup("aria.NewInvalidValue", invalidValues, int(InvalidFalse), int(value))
}

// NewPressedValue returns the pressed token value for value.
func NewPressedValue(value Pressed) Value {
	return tokenLookup("aria.NewPressedValue", pressedValues, int(PressedUndefined), int(value))
}

// NewAutocompleteValue returns the autocomplete token value for value.
func NewAutocompleteValue(value Autocomplete) Value {
	return tokenLookup("aria.NewAutocompleteValue", autocompleteValues, int(AutocompleteNone), int(value))
}

// NewOrientationValue returns the orientation token value for value.
func NewOrientationValue(value Orientation) Value {
	return tokenLookup("aria.NewOrientationValue", orientationValues, int(OrientationUndefined), int(value))
}

// NewSortValue returns the sort token value for value.
func NewSortValue(value Sort) Value {
	return tokenLookup("aria.NewSortValue", sortValues, int(SortNone), int(value))
}

// asToken extracts the numeric token from v, which must be a token value of
// kind want.
func asToken(op string, want Kind, v Value, fallback int) int {
	tv, ok := v.(*tokenValue)
	if !ok || tv.kind != want {
		reportKindMismatch(op, want, v)
		return fallback
	}
	return tv.value
}

// AsChecked returns the checked token held by v.
// v must be a checked token value.
func AsChecked(v Value) Checked {
	return Checked(asToken("aria.AsChecked", KindChecked, v, int(CheckedUndefined)))
}

// AsInvalid returns the invalid token held by v.
// v must be an invalid token value.
func AsInvalid(v Value) Invalid {
	return Invalid(asToken("aria.AsInvalid", KindInvalid, v, int(InvalidFalse)))
}

// AsPressed returns the pressed token held by v.
// v must be a pressed token value.
func AsPressed(v Value) Pressed {
	return Pressed(asToken("aria.AsPressed", KindPressed, v, int(PressedUndefined)))
}

// AsAutocomplete returns the autocomplete token held by v.
// v must be an autocomplete token value.
func AsAutocomplete(v Value) Autocomplete {
	return Autocomplete(asToken("aria.AsAutocomplete", KindAutocomplete, v, int(AutocompleteNone)))
}

// AsOrientation returns the orientation token held by v.
// v must be an orientation token value.
func AsOrientation(v Value) Orientation {
	return Orientation(asToken("aria.AsOrientation", KindOrientation, v, int(OrientationUndefined)))
}

// AsSort returns the sort token held by v.
// v must be a sort token value.
func AsSort(v Value) Sort {
	return Sort(asToken("aria.AsSort", KindSort, v, int(SortNone)))
}
