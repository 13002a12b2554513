// Package errors provides structured error reporting for the aria library.
//
// The library distinguishes programmer contract violations (nil values where
// non-nil is required, kind mismatches on typed accessors) from configuration
// errors (a descriptor table row that is out of sync with the identifier
// enumeration). Neither category is end-user-triggered, so errors are routed
// through a global handler rather than returned from every call site.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindContract indicates a violated caller contract (programmer error).
	KindContract
	// KindConfig indicates a descriptor table configuration error.
	KindConfig
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindContract:
		return "contract"
	case KindConfig:
		return "config"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// AriaError represents a structured error in the aria library.
type AriaError struct {
	// Op is the operation that failed (e.g., "aria.AsInt").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Attr is the state or property attribute name, if applicable.
	Attr string
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *AriaError) Error() string {
	if e.Attr != "" {
		return fmt.Sprintf("%s [%s] attr=%s: %v", e.Op, e.Kind, e.Attr, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *AriaError) Unwrap() error {
	return e.Err
}

// ContractError describes a violated caller contract.
type ContractError struct {
	// Op is the operation whose contract was violated.
	Op string
	// Want describes what the contract requires.
	Want string
	// Got describes what the caller supplied.
	Got string
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("%s requires %s, got %s", e.Op, e.Want, e.Got)
}

// ConfigError describes a descriptor table entry that does not match the
// identifier enumeration it is indexed by.
type ConfigError struct {
	// Attr is the attribute name of the offending table row.
	Attr string
	// Detail describes what is wrong with the row.
	Detail string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("descriptor for %q: %s", e.Attr, e.Detail)
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked.
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ErrorHandler receives errors reported by the aria library.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *AriaError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
