package aria

import "testing"

func TestDestroyNotifierObservers(t *testing.T) {
	var n DestroyNotifier

	calls := 0
	n.OnDestroy(func() { calls++ })
	n.OnDestroy(func() { calls++ })

	n.NotifyDestroyed()
	if calls != 2 {
		t.Errorf("observer calls = %d, want 2", calls)
	}
	if !n.Destroyed() {
		t.Error("Destroyed() = false after NotifyDestroyed")
	}
}

func TestDestroyNotifierCancel(t *testing.T) {
	var n DestroyNotifier

	called := false
	cancel := n.OnDestroy(func() { called = true })
	cancel()

	n.NotifyDestroyed()
	if called {
		t.Error("canceled observer still ran")
	}
}

func TestDestroyNotifierIdempotent(t *testing.T) {
	var n DestroyNotifier

	calls := 0
	n.OnDestroy(func() { calls++ })

	n.NotifyDestroyed()
	n.NotifyDestroyed()
	if calls != 1 {
		t.Errorf("observer calls after double notify = %d, want 1", calls)
	}
}

func TestDestroyNotifierAfterDestroy(t *testing.T) {
	var n DestroyNotifier
	n.NotifyDestroyed()

	called := false
	cancel := n.OnDestroy(func() { called = true })
	cancel() // must be a no-op, not a panic

	if called {
		t.Error("observer registered after destruction ran")
	}
}

func TestDestroyNotifierNilObserver(t *testing.T) {
	var n DestroyNotifier
	cancel := n.OnDestroy(nil)
	cancel()
	n.NotifyDestroyed()
}
