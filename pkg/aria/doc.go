// Package aria provides the typed, immutable values used to describe the
// accessibility states and properties of UI elements.
//
// The package is built around Value, a polymorphic container for the closed
// set of value kinds the WAI-ARIA states-and-properties model needs: booleans,
// tristates, enumerated tokens, integers, floating point numbers, strings,
// and weak references to other accessible objects. Values are immutable once
// constructed and are shared between owners through explicit Ref and Unref
// calls.
//
// There are two storage categories of values:
//
//   - static values (booleans, tristates, token values): the library owns
//     them, they exist for the lifetime of the process, and Ref/Unref are
//     no-ops for them
//   - dynamic values (integers, numbers, strings, references): the caller
//     owns them, and the last Unref releases their resources
//
// # States and Properties
//
// State and Property are two disjoint identifier spaces for accessibility
// attributes. Each identifier has a descriptor naming the argument type it
// expects; CollectForState, CollectForStateValue and their property
// counterparts construct the correctly typed Value from loosely typed input,
// and DefaultForState / DefaultForProperty supply the declared default for
// attributes that have not been set explicitly.
//
// A typical embedding stores values keyed by identifier:
//
//	v := aria.CollectForState(aria.StateBusy, aria.NewArgs(aria.BoolArg(true)))
//	if !aria.Equal(v, prev) {
//	    // state changed, notify the platform layer
//	}
//	aria.Unref(prev)
//
// # Error Reporting
//
// Violated caller contracts (nil values, kind mismatches on typed accessors)
// and descriptor table configuration errors are reported through the
// pkg/errors handler rather than returned; see that package for how to
// install a handler and for DebugMode, which turns contract violations into
// panics during development.
//
// For the meaning of the individual states and properties, see the WAI-ARIA
// states and properties reference:
// https://www.w3.org/TR/wai-aria/#states_and_properties
package aria
