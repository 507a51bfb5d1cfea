package components

import (
	"container/heap"
	"time"

	"github.com/yohamta/donburi"
)

// TimerEffect names a deferred one-shot effect.
type TimerEffect int

const (
	EffectNone TimerEffect = iota
	EffectPlayerSlash
	EffectEnemyHitOpen
	EffectEnemyHitClose
	EffectEnemyRecover
	EffectProjectileLand
	EffectHazardExpire
)

var timerEffectNames = map[TimerEffect]string{
	EffectNone:           "None",
	EffectPlayerSlash:    "PlayerSlash",
	EffectEnemyHitOpen:   "EnemyHitOpen",
	EffectEnemyHitClose:  "EnemyHitClose",
	EffectEnemyRecover:   "EnemyRecover",
	EffectProjectileLand: "ProjectileLand",
	EffectHazardExpire:   "HazardExpire",
}

func (e TimerEffect) String() string {
	if name, ok := timerEffectNames[e]; ok {
		return name
	}
	return "Unknown"
}

// ScheduledEvent is a deferred effect against Owner. Token must match the
// owner's current attack sequence for attack-bound effects.
type ScheduledEvent struct {
	FireAt    time.Duration
	ArmedTick uint64
	Owner     donburi.Entity
	Effect    TimerEffect
	Token     uint64

	seq uint64 // insertion order for equal FireAt
}

type timerHeap []ScheduledEvent

func (h timerHeap) Len() int { return len(h) }
func (h timerHeap) Less(i, j int) bool {
	if h[i].FireAt != h[j].FireAt {
		return h[i].FireAt < h[j].FireAt
	}
	return h[i].seq < h[j].seq
}
func (h timerHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *timerHeap) Push(x any) { *h = append(*h, x.(ScheduledEvent)) }
func (h *timerHeap) Pop() any {
	old := *h
	n := len(old)
	ev := old[n-1]
	*h = old[:n-1]
	return ev
}

// TimerQueueData orders pending events by FireAt, then by arming order.
type TimerQueueData struct {
	events  timerHeap
	nextSeq uint64
}

func (q *TimerQueueData) Push(ev ScheduledEvent) {
	ev.seq = q.nextSeq
	q.nextSeq++
	heap.Push(&q.events, ev)
}

// PopDue removes and returns the earliest event that is due at now and was
// armed before tick. Events armed during the current tick wait for the next.
func (q *TimerQueueData) PopDue(now time.Duration, tick uint64) (ScheduledEvent, bool) {
	if len(q.events) == 0 {
		return ScheduledEvent{}, false
	}
	next := q.events[0]
	if next.FireAt > now || next.ArmedTick >= tick {
		return ScheduledEvent{}, false
	}
	return heap.Pop(&q.events).(ScheduledEvent), true
}

func (q *TimerQueueData) Len() int {
	return len(q.events)
}

// Clear drops every pending event.
func (q *TimerQueueData) Clear() {
	q.events = nil
}

var TimerQueue = donburi.NewComponentType[TimerQueueData]()
