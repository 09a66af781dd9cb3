package ecs

import (
	"testing"

	"github.com/phanxgames/skillfield"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiStore(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)
	if store == nil {
		t.Fatal("NewDonburiStore returned nil")
	}
}

func TestDonburiStore_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var received []skillfield.InteractionEvent
	InteractionEventType.Subscribe(world, func(w donburi.World, e skillfield.InteractionEvent) {
		received = append(received, e)
	})

	store.EmitEvent(skillfield.InteractionEvent{
		Type:   skillfield.EventFocus,
		ItemID: "go",
		Index:  3,
		X:      100,
		Y:      200,
	})
	store.EmitEvent(skillfield.InteractionEvent{Type: skillfield.EventClick, ItemID: "go", PlayMode: true})

	// Events are queued until processed.
	if len(received) != 0 {
		t.Fatal("events delivered before ProcessEvents")
	}
	InteractionEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	e0 := received[0]
	if e0.Type != skillfield.EventFocus || e0.ItemID != "go" || e0.Index != 3 {
		t.Errorf("event 0: %+v", e0)
	}
	if e0.X != 100 || e0.Y != 200 {
		t.Errorf("event 0 position: (%v,%v)", e0.X, e0.Y)
	}
	if e1 := received[1]; e1.Type != skillfield.EventClick || !e1.PlayMode {
		t.Errorf("event 1: %+v", e1)
	}
}

func TestDonburiStore_DropsEventsWithoutItem(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	n := 0
	InteractionEventType.Subscribe(world, func(donburi.World, skillfield.InteractionEvent) { n++ })
	store.EmitEvent(skillfield.InteractionEvent{Type: skillfield.EventFocus})
	InteractionEventType.ProcessEvents(world)

	if n != 0 {
		t.Errorf("delivered %d events without an item id, want 0", n)
	}
}

func TestDonburiStore_ImplementsEntityStore(t *testing.T) {
	var _ skillfield.EntityStore = NewDonburiStore(donburi.NewWorld())
}

func TestDonburiStore_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var count1, count2 int
	InteractionEventType.Subscribe(world, func(w donburi.World, e skillfield.InteractionEvent) {
		count1++
	})
	InteractionEventType.Subscribe(world, func(w donburi.World, e skillfield.InteractionEvent) {
		count2++
	})

	store.EmitEvent(skillfield.InteractionEvent{Type: skillfield.EventBlur, ItemID: "sql"})
	events.ProcessAllEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}

func TestEngineEventsReachWorld(t *testing.T) {
	cfg := skillfield.DefaultConfig()
	cfg.Seed = 5
	engine, err := skillfield.NewEngine([]skillfield.Skill{{ID: "a"}, {ID: "b"}}, cfg, skillfield.Options{})
	if err != nil {
		t.Fatal(err)
	}
	engine.Resize(800, 800, 1)
	items := engine.Items()
	items[0].X, items[0].Y = 200, 200
	items[1].X, items[1].Y = 600, 600

	world := donburi.NewWorld()
	tracker := NewTracker(world)
	engine.SetEntityStore(NewDonburiStore(world))

	engine.PointerMove(200, 200)
	engine.Click()
	engine.PointerMove(600, 600)
	engine.PointerMove(200, 200)
	engine.PointerLeave()
	InteractionEventType.ProcessEvents(world)

	a, ok := tracker.Stats("a")
	if !ok || a.Focuses != 2 || a.Clicks != 1 {
		t.Errorf("stats a = %+v, %v", a, ok)
	}
	b, ok := tracker.Stats("b")
	if !ok || b.Focuses != 1 || b.Clicks != 0 || b.Index != 1 {
		t.Errorf("stats b = %+v, %v", b, ok)
	}
	if _, ok := tracker.Stats("zzz"); ok {
		t.Error("untracked item reported stats")
	}

	all := tracker.All()
	if len(all) != 2 || all[0].ItemID != "a" {
		t.Errorf("All() = %+v", all)
	}
}
