package skillfield

import "slices"

// EntityStore is the interface for optional ECS integration.
// When set on an Engine, interaction events are forwarded to the ECS.
type EntityStore interface {
	EmitEvent(event InteractionEvent)
}

// InteractionEvent carries interaction data for the ECS bridge.
type InteractionEvent struct {
	Type     EventType
	ItemID   string
	Index    int
	X, Y     float64 // pointer position
	PlayMode bool
}

// FocusContext is passed to focus, blur, and click callbacks.
type FocusContext struct {
	Item     *Item
	X, Y     float64 // pointer position
	PlayMode bool
}

type focusHandler struct {
	id uint32
	fn func(FocusContext)
}

type handlerRegistry struct {
	focus  []focusHandler
	blur   []focusHandler
	click  []focusHandler
	nextID uint32
}

// CallbackHandle allows removing a registered engine callback.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.event {
	case EventFocus:
		h.reg.focus = removeFocusHandler(h.reg.focus, h.id)
	case EventBlur:
		h.reg.blur = removeFocusHandler(h.reg.blur, h.id)
	case EventClick:
		h.reg.click = removeFocusHandler(h.reg.click, h.id)
	}
}

func removeFocusHandler(s []focusHandler, id uint32) []focusHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = focusHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

func (r *handlerRegistry) add(event EventType, fn func(FocusContext)) CallbackHandle {
	r.nextID++
	h := focusHandler{id: r.nextID, fn: fn}
	switch event {
	case EventFocus:
		r.focus = append(r.focus, h)
	case EventBlur:
		r.blur = append(r.blur, h)
	case EventClick:
		r.click = append(r.click, h)
	}
	return CallbackHandle{id: h.id, reg: r, event: event}
}

// OnFocus registers a callback fired when an item becomes focused.
func (e *Engine) OnFocus(fn func(FocusContext)) CallbackHandle {
	return e.handlers.add(EventFocus, fn)
}

// OnBlur registers a callback fired when the focused item loses focus,
// whether to another item, to empty space, or to pointer leave.
func (e *Engine) OnBlur(fn func(FocusContext)) CallbackHandle {
	return e.handlers.add(EventBlur, fn)
}

// OnClick registers a callback fired by Click while an item is focused.
func (e *Engine) OnClick(fn func(FocusContext)) CallbackHandle {
	return e.handlers.add(EventClick, fn)
}

// SetEntityStore sets the optional ECS bridge.
func (e *Engine) SetEntityStore(store EntityStore) {
	e.store = store
}

func (e *Engine) fire(event EventType, it *Item) {
	ctx := FocusContext{Item: it, X: e.pointer.X, Y: e.pointer.Y, PlayMode: e.playMode}
	var hs []focusHandler
	switch event {
	case EventFocus:
		hs = e.handlers.focus
	case EventBlur:
		hs = e.handlers.blur
	case EventClick:
		hs = e.handlers.click
	}
	// Handlers may remove themselves or others while firing.
	hs = slices.Clone(hs)
	for _, h := range hs {
		h.fn(ctx)
	}
	if e.store != nil {
		e.store.EmitEvent(InteractionEvent{
			Type:     event,
			ItemID:   it.ID,
			Index:    it.Index,
			X:        e.pointer.X,
			Y:        e.pointer.Y,
			PlayMode: e.playMode,
		})
	}
}
