package aria

// Accessible is the contract between a reference value and the external
// accessible object it points at. The value never owns the object; it only
// needs to learn when the object goes away so it can clear its payload.
//
// The object model living on top of this package (the accessible tree,
// widget bindings, platform bridges) implements this interface, typically
// by embedding DestroyNotifier.
type Accessible interface {
	// OnDestroy registers fn to run when the object is destroyed.
	// The returned cancel function removes the registration; calling it
	// after the object has been destroyed is a no-op.
	OnDestroy(fn func()) (cancel func())
}

// DestroyNotifier is a ready-made OnDestroy implementation for Accessible
// implementers. The zero value is ready to use:
//
//	type node struct {
//	    aria.DestroyNotifier
//	    // ...
//	}
//
//	func (n *node) dispose() {
//	    n.NotifyDestroyed()
//	}
type DestroyNotifier struct {
	observers      map[int]func()
	nextObserverID int
	destroyed      bool
}

// OnDestroy registers fn to run once when NotifyDestroyed is called.
// Returns a cancel function that removes the registration.
func (n *DestroyNotifier) OnDestroy(fn func()) func() {
	if fn == nil || n.destroyed {
		return func() {}
	}
	if n.observers == nil {
		n.observers = make(map[int]func())
	}
	id := n.nextObserverID
	n.nextObserverID++
	n.observers[id] = fn
	return func() {
		delete(n.observers, id)
	}
}

// NotifyDestroyed runs all registered observers and clears them.
// The notifier is considered destroyed afterwards: further OnDestroy
// registrations are inert, and calling NotifyDestroyed again is a no-op.
func (n *DestroyNotifier) NotifyDestroyed() {
	if n.destroyed {
		return
	}
	n.destroyed = true
	observers := n.observers
	n.observers = nil
	for _, fn := range observers {
		fn()
	}
}

// Destroyed reports whether NotifyDestroyed has been called.
func (n *DestroyNotifier) Destroyed() bool {
	return n.destroyed
}
