package aria

import (
	"fmt"
	"strings"
)

// ReferenceValue holds a weak reference to another accessible object, used
// by relationship properties such as labelled-by or controls.
//
// The reference is non-owning: the referent's own lifecycle is the
// authority. The value registers a destroy observer on the referent, and
// when the referent is destroyed first the payload is cleared; a cleared
// reference compares and prints as the canonical empty reference. When the
// value is released first, its finalizer cancels the registration.
type ReferenceValue struct {
	counted
	referent Accessible
	cancel func()
}

// NewReferenceValue returns a new reference value pointing at ref.
// ref must be non-nil.
func NewReferenceValue(ref Accessible) Value {
	if ref == nil {
		reportContract("aria.NewReferenceValue", "a non-nil accessible", "nil")
		return nil
	}

	v := &ReferenceValue{counted: counted{refs: 1}, referent: ref}
	v.cancel = ref.OnDestroy(func() {
		v.referent = nil
		v.cancel = nil
	})
	return v
}

// Kind reports KindReference.
func (v *ReferenceValue) Kind() Kind { return KindReference }

func (v *ReferenceValue) finalize() {
	if v.cancel != nil {
		v.cancel()
		v.cancel = nil
	}
	v.referent = nil
}

func (v *ReferenceValue) equal(other Value) bool {
	o := other.(*ReferenceValue)
	return v.referent == o.referent
}

func (v *ReferenceValue) print(buf *strings.Builder) {
	if v.referent != nil {
		fmt.Fprintf(buf, "%T<%p>", v.referent, v.referent)
	} else {
		buf.WriteString("<null>")
	}
}

// AsReference returns the accessible object v points at, or nil if the
// referent has been destroyed.
// v must be a reference value.
func AsReference(v Value) Accessible {
	rv, ok := v.(*ReferenceValue)
	if !ok {
		reportKindMismatch("aria.AsReference", KindReference, v)
		return nil
	}
	return rv.referent
}
