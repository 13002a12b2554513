package aria

import (
	"strings"

	"github.com/go-drift/aria/pkg/errors"
)

// Kind identifies the concrete representation of a Value.
type Kind int

const (
	// KindBool is a plain boolean value.
	KindBool Kind = iota
	// KindTristate is a three-valued logical value (true/false/undefined).
	KindTristate
	// KindInt is an integer value.
	KindInt
	// KindNumber is a floating point value.
	KindNumber
	// KindString is a string value.
	KindString
	// KindReference is a weak reference to another accessible object.
	KindReference
	// KindChecked is the aria-checked token value.
	KindChecked
	// KindInvalid is the aria-invalid token value.
	KindInvalid
	// KindPressed is the aria-pressed token value.
	KindPressed
	// KindAutocomplete is the aria-autocomplete token value.
	KindAutocomplete
	// KindOrientation is the aria-orientation token value.
	KindOrientation
	// KindSort is the aria-sort token value.
	KindSort
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "boolean"
	case KindTristate:
		return "tristate"
	case KindInt:
		return "integer"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindReference:
		return "reference"
	case KindChecked:
		return "checked"
	case KindInvalid:
		return "invalid"
	case KindPressed:
		return "pressed"
	case KindAutocomplete:
		return "autocomplete"
	case KindOrientation:
		return "orientation"
	case KindSort:
		return "sort"
	default:
		return "unknown"
	}
}

// Value is an immutable accessibility state or property value.
//
// The set of implementations is closed: one concrete type exists per Kind,
// all defined in this package. Use Equal, Print and ToString to compare and
// render values, and Ref/Unref to share and release them.
type Value interface {
	// Kind reports the concrete kind of the value.
	Kind() Kind

	// ref and release manage the reference count. release reports whether
	// the last reference was just dropped. Static values ignore both.
	ref()
	release() bool

	// equal compares against another value of the same kind. Callers must
	// go through Equal, which guards identity, nil and kind mismatches.
	equal(other Value) bool

	// print appends a human-readable rendering to buf.
	print(buf *strings.Builder)
}

// counted is embedded by dynamically allocated values. The count is plain
// non-atomic arithmetic: values are manipulated by one goroutine at a time.
type counted struct {
	refs int
}

func (c *counted) ref() {
	c.refs++
}

func (c *counted) release() bool {
	c.refs--
	return c.refs == 0
}

// static is embedded by process-lifetime singleton values, which are never
// counted and never destroyed.
type static struct{}

func (static) ref() {}

func (static) release() bool { return false }

// finalizer is implemented by value types that need teardown when the last
// reference is dropped.
type finalizer interface {
	finalize()
}

// Ref acquires a reference on v and returns it.
// v must be non-nil.
func Ref(v Value) Value {
	if v == nil {
		reportContract("aria.Ref", "a non-nil value", "nil")
		return nil
	}
	v.ref()
	return v
}

// Unref releases a reference on v. When the last reference is dropped the
// value's resources are released; using v afterwards is a caller error.
// v must be non-nil.
func Unref(v Value) {
	if v == nil {
		reportContract("aria.Unref", "a non-nil value", "nil")
		return
	}
	if v.release() {
		if f, ok := v.(finalizer); ok {
			f.finalize()
		}
	}
}

// Equal reports whether a and b hold the same value.
//
// Equal is nil-safe: two nil values are equal, a nil and a non-nil value are
// not. Values of different kinds are never equal.
func Equal(a, b Value) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Kind() != b.Kind() {
		return false
	}
	return a.equal(b)
}

// Print appends a human-readable rendering of v to buf.
func Print(v Value, buf *strings.Builder) {
	if v == nil {
		reportContract("aria.Print", "a non-nil value", "nil")
		return
	}
	if buf == nil {
		reportContract("aria.Print", "a non-nil buffer", "nil")
		return
	}
	v.print(buf)
}

// ToString returns a human-readable rendering of v.
func ToString(v Value) string {
	if v == nil {
		reportContract("aria.ToString", "a non-nil value", "nil")
		return ""
	}
	var buf strings.Builder
	v.print(&buf)
	return buf.String()
}

// reportContract reports a violated caller contract through the global
// error handler.
func reportContract(op, want, got string) {
	errors.Report(&errors.AriaError{
		Op:         op,
		Kind:       errors.KindContract,
		Err:        &errors.ContractError{Op: op, Want: want, Got: got},
		StackTrace: errors.CaptureStack(),
	})
}

// reportKindMismatch reports a typed accessor invoked on a value of the
// wrong kind.
func reportKindMismatch(op string, want Kind, got Value) {
	gotDesc := "nil"
	if got != nil {
		gotDesc = "a " + got.Kind().String() + " value"
	}
	reportContract(op, "a "+want.String()+" value", gotDesc)
}
