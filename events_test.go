package skillfield

import "testing"

func TestHandlerRemovesItselfWhileFiring(t *testing.T) {
	e, _ := newTestEngine(t, false, Vec2{500, 500}, Vec2{800, 500})

	once, other := 0, 0
	var h CallbackHandle
	h = e.OnFocus(func(FocusContext) {
		once++
		h.Remove()
	})
	e.OnFocus(func(FocusContext) { other++ })

	e.PointerMove(500, 500)
	e.PointerMove(800, 500)

	if once != 1 {
		t.Errorf("self-removing handler fired %d times, want 1", once)
	}
	if other != 2 {
		t.Errorf("second handler fired %d times, want 2", other)
	}
}

func TestHandlerRemovesLaterHandlerWhileFiring(t *testing.T) {
	e, _ := newTestEngine(t, false, Vec2{500, 500}, Vec2{800, 500})

	calls := 0
	var later CallbackHandle
	e.OnBlur(func(FocusContext) { later.Remove() })
	later = e.OnBlur(func(FocusContext) { calls++ })

	e.PointerMove(500, 500)
	e.PointerMove(800, 500) // blur s0: removal takes effect after this dispatch
	e.PointerMove(500, 500) // blur s1

	if calls != 1 {
		t.Errorf("removed handler fired %d times, want 1", calls)
	}
}
