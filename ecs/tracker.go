package ecs

import (
	"sort"

	"github.com/phanxgames/skillfield"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// InteractionEventType carries the engine's focus, blur, and click events
// into a world. Events published by the store are queued until the world's
// owner calls ProcessEvents or ProcessAllEvents.
var InteractionEventType = events.NewEventType[skillfield.InteractionEvent]()

// worldStore forwards engine events onto InteractionEventType.
type worldStore struct {
	world donburi.World
}

// NewDonburiStore returns a skillfield.EntityStore that publishes every
// engine event on world. Pass it to Engine.SetEntityStore.
func NewDonburiStore(world donburi.World) skillfield.EntityStore {
	return worldStore{world: world}
}

func (s worldStore) EmitEvent(ev skillfield.InteractionEvent) {
	if ev.ItemID == "" {
		return
	}
	InteractionEventType.Publish(s.world, ev)
}

// ItemStatsData counts the interactions one item has received.
type ItemStatsData struct {
	ItemID  string
	Index   int
	Focuses int
	Clicks  int
	Play    int // focuses while play mode was on
}

// ItemStats is the component holding an item's ItemStatsData. Query it to
// walk every item the tracker has seen.
var ItemStats = donburi.NewComponentType[ItemStatsData]()

// Tracker keeps one ItemStats entity per item that has seen an event.
type Tracker struct {
	world    donburi.World
	entities map[string]donburi.Entity
}

// NewTracker subscribes a tracker to InteractionEventType on world.
func NewTracker(world donburi.World) *Tracker {
	t := &Tracker{world: world, entities: make(map[string]donburi.Entity)}
	InteractionEventType.Subscribe(world, t.handle)
	return t
}

func (t *Tracker) handle(w donburi.World, ev skillfield.InteractionEvent) {
	e, ok := t.entities[ev.ItemID]
	if !ok {
		e = w.Create(ItemStats)
		ItemStats.SetValue(w.Entry(e), ItemStatsData{ItemID: ev.ItemID, Index: ev.Index})
		t.entities[ev.ItemID] = e
	}
	s := ItemStats.Get(w.Entry(e))
	switch ev.Type {
	case skillfield.EventFocus:
		s.Focuses++
		if ev.PlayMode {
			s.Play++
		}
	case skillfield.EventClick:
		s.Clicks++
	}
}

// Stats returns the counters for itemID.
func (t *Tracker) Stats(itemID string) (ItemStatsData, bool) {
	e, ok := t.entities[itemID]
	if !ok {
		return ItemStatsData{}, false
	}
	return *ItemStats.Get(t.world.Entry(e)), true
}

// All returns every tracked item's counters, most focused first.
func (t *Tracker) All() []ItemStatsData {
	out := make([]ItemStatsData, 0, len(t.entities))
	for _, e := range t.entities {
		out = append(out, *ItemStats.Get(t.world.Entry(e)))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Focuses != out[j].Focuses {
			return out[i].Focuses > out[j].Focuses
		}
		return out[i].Index < out[j].Index
	})
	return out
}
