package systems

import (
	"fmt"
	"log"

	"github.com/automoto/sushi-knight/components"
	cfg "github.com/automoto/sushi-knight/config"
	"github.com/automoto/sushi-knight/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

var enemyQuery = donburi.NewQuery(filter.Contains(tags.Enemy))

// Snapshot derives the host-facing stats from the world.
func Snapshot(w donburi.World) components.Snapshot {
	var s components.Snapshot
	if player, ok := playerEntry(w); ok {
		health := components.Health.Get(player)
		s.HP = health.Current
		s.MaxHP = health.Max
		s.Atk = components.Player.Get(player).Atk
	}
	s.Enemies = enemyQuery.Count(w)
	return s
}

// HUDText formats a snapshot the way the in-scene HUD shows it.
func HUDText(s components.Snapshot) string {
	return fmt.Sprintf(cfg.HUD.Format, s.HP, s.MaxHP, s.Atk, s.Enemies)
}

// ReportStats recomputes the snapshot, mirrors it into the HUD and hands it
// to the host callback, if any. A panicking callback is logged and
// swallowed so the simulation keeps running.
func ReportStats(w donburi.World) {
	stats, ok := statsOf(w)
	if !ok {
		return
	}

	snapshot := Snapshot(w)
	stats.Last = snapshot
	stats.HUDText = HUDText(snapshot)
	stats.Reports++

	if stats.OnStats == nil {
		return
	}
	invokeStatsCallback(stats.OnStats, snapshot)
}

func invokeStatsCallback(fn func(components.Snapshot), snapshot components.Snapshot) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Warning: stats callback panicked: %v", r)
		}
	}()
	fn(snapshot)
}

// UpdateStats catches any change the event-driven reports missed. It runs
// even after GameOver so the host sees the final state.
func UpdateStats(ecs *ecs.ECS) {
	stats, ok := statsOf(ecs.World)
	if !ok {
		return
	}
	if Snapshot(ecs.World) != stats.Last {
		ReportStats(ecs.World)
	}
}
