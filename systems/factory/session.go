package factory

import (
	"math/rand"
	"time"

	"github.com/automoto/sushi-knight/archetypes"
	"github.com/automoto/sushi-knight/components"
	"github.com/automoto/sushi-knight/input"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSession spawns the singleton holding the clock, timer queue, input
// source, stats reporter, game-over flag and RNG.
func CreateSession(ecs *ecs.ECS, source input.Source, onStats func(components.Snapshot), seed int64) *donburi.Entry {
	session := archetypes.Session.Spawn(ecs)

	components.Clock.SetValue(session, components.ClockData{})
	components.TimerQueue.SetValue(session, components.TimerQueueData{})
	components.Input.SetValue(session, components.InputData{Source: source})
	components.Stats.SetValue(session, components.StatsData{OnStats: onStats})
	components.GameOver.SetValue(session, components.GameOverData{})
	components.Random.SetValue(session, components.RandomData{
		Rand: rand.New(rand.NewSource(seed)),
	})

	return session
}

func clockNow(ecs *ecs.ECS) time.Duration {
	if entry, ok := components.Clock.First(ecs.World); ok {
		return components.Clock.Get(entry).Now
	}
	return 0
}
