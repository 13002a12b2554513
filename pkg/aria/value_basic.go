package aria

import (
	"math"
	"strconv"
	"strings"
)

// IntValue holds an integer state or property value, such as a heading
// level or a position in a set.
type IntValue struct {
	counted
	value int
}

// NewIntValue returns a new integer value.
func NewIntValue(value int) Value {
	return &IntValue{counted: counted{refs: 1}, value: value}
}

// Kind reports KindInt.
func (v *IntValue) Kind() Kind { return KindInt }

func (v *IntValue) equal(other Value) bool {
	o := other.(*IntValue)
	return v.value == o.value
}

func (v *IntValue) print(buf *strings.Builder) {
	buf.WriteString(strconv.Itoa(v.value))
}

// AsInt returns the integer held by v.
// v must be an integer value.
func AsInt(v Value) int {
	iv, ok := v.(*IntValue)
	if !ok {
		reportKindMismatch("aria.AsInt", KindInt, v)
		return 0
	}
	return iv.value
}

// numberTolerance is the absolute tolerance for number equality. Values
// arrive via repeated float round-tripping, so bit equality is too strict.
const numberTolerance = 0.001

// NumberValue holds a floating point state or property value, such as the
// current value of a range widget.
type NumberValue struct {
	counted
	value float64
}

// NewNumberValue returns a new number value.
func NewNumberValue(value float64) Value {
	return &NumberValue{counted: counted{refs: 1}, value: value}
}

// Kind reports KindNumber.
func (v *NumberValue) Kind() Kind { return KindNumber }

func (v *NumberValue) equal(other Value) bool {
	o := other.(*NumberValue)
	return math.Abs(v.value-o.value) < numberTolerance
}

func (v *NumberValue) print(buf *strings.Builder) {
	buf.WriteString(strconv.FormatFloat(v.value, 'g', -1, 64))
}

// AsNumber returns the float held by v.
// v must be a number value.
func AsNumber(v Value) float64 {
	nv, ok := v.(*NumberValue)
	if !ok {
		reportKindMismatch("aria.AsNumber", KindNumber, v)
		return 0
	}
	return nv.value
}

// StringValue holds a string state or property value, such as a label.
type StringValue struct {
	counted
	value  string
	length int
}

// NewStringValue returns a new string value.
func NewStringValue(str string) Value {
	return &StringValue{counted: counted{refs: 1}, value: str, length: len(str)}
}

// Kind reports KindString.
func (v *StringValue) Kind() Kind { return KindString }

func (v *StringValue) equal(other Value) bool {
	o := other.(*StringValue)
	if v.length != o.length {
		return false
	}
	return v.value == o.value
}

func (v *StringValue) print(buf *strings.Builder) {
	buf.WriteString(v.value)
}

// AsString returns the string held by v.
// v must be a string value.
func AsString(v Value) string {
	sv, ok := v.(*StringValue)
	if !ok {
		reportKindMismatch("aria.AsString", KindString, v)
		return ""
	}
	return sv.value
}
