package systems

import (
	"time"

	"github.com/automoto/sushi-knight/components"
	"github.com/automoto/sushi-knight/nav"
	"github.com/yohamta/donburi"
)

// Accessors for the per-scene singletons. The session entity is created
// before any system runs, so these only miss in a half-built world.

func clockOf(w donburi.World) *components.ClockData {
	if entry, ok := components.Clock.First(w); ok {
		return components.Clock.Get(entry)
	}
	return &components.ClockData{}
}

func now(w donburi.World) time.Duration {
	return clockOf(w).Now
}

func timersOf(w donburi.World) (*components.TimerQueueData, bool) {
	entry, ok := components.TimerQueue.First(w)
	if !ok {
		return nil, false
	}
	return components.TimerQueue.Get(entry), true
}

func statsOf(w donburi.World) (*components.StatsData, bool) {
	entry, ok := components.Stats.First(w)
	if !ok {
		return nil, false
	}
	return components.Stats.Get(entry), true
}

func gameOverOf(w donburi.World) (*components.GameOverData, bool) {
	entry, ok := components.GameOver.First(w)
	if !ok {
		return nil, false
	}
	return components.GameOver.Get(entry), true
}

func randomOf(w donburi.World) *components.RandomData {
	entry, ok := components.Random.First(w)
	if !ok {
		panic("session has no RNG")
	}
	return components.Random.Get(entry)
}

func navGrid(w donburi.World) *nav.Grid {
	entry, ok := components.Level.First(w)
	if !ok {
		return nil
	}
	return components.Level.Get(entry).Nav
}

// playerEntry returns the live player, if any.
func playerEntry(w donburi.World) (*donburi.Entry, bool) {
	return components.Player.First(w)
}

// liveEntry resolves an ID to an entry only while it is still alive and
// still carries the component the caller expects.
func liveEntry(w donburi.World, id donburi.Entity, c donburi.IComponentType) (*donburi.Entry, bool) {
	if !w.Valid(id) {
		return nil, false
	}
	entry := w.Entry(id)
	if !entry.HasComponent(c) {
		return nil, false
	}
	return entry, true
}

// destroyEntity removes the body from the space and the entity from the world.
func destroyEntity(w donburi.World, entry *donburi.Entry) {
	if !entry.Valid() {
		return
	}
	if entry.HasComponent(components.Object) {
		if obj := components.Object.Get(entry); obj.Object != nil {
			if spaceEntry, ok := components.Space.First(w); ok {
				components.Space.Get(spaceEntry).Remove(obj.Object)
			}
		}
	}
	w.Remove(entry.Entity())
}
