package scenes

import (
	"testing"
	"time"

	"github.com/automoto/sushi-knight/assets"
	"github.com/automoto/sushi-knight/components"
	"github.com/automoto/sushi-knight/config"
	"github.com/automoto/sushi-knight/input"
	"github.com/automoto/sushi-knight/systems"
	"github.com/automoto/sushi-knight/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/filter"
)

const dt = 10 * time.Millisecond

// scriptedSource replays a fixed movement and one-shot attack requests.
type scriptedSource struct {
	move   math.Vec2
	attack bool
}

func (s *scriptedSource) Poll(time.Duration) input.Intent {
	in := input.Intent{Move: s.move, Attack: s.attack}
	s.attack = false
	return in
}

type harness struct {
	t       *testing.T
	scene   *PlayScene
	src     *scriptedSource
	reports []components.Snapshot

	spawnGuard time.Duration // InvulnerableUntil as the factory set it
}

// openArena is a walled 2000x1200 room with the player at (500, 500).
func openArena(enemies, items []config.Spawn) *assets.Level {
	return &assets.Level{
		Name:    "test",
		Width:   2000,
		Height:  1200,
		PlayerX: 500,
		PlayerY: 500,
		Walls: []config.Rect{
			{X: 0, Y: 0, W: 2000, H: 40},
			{X: 0, Y: 1160, W: 2000, H: 40},
			{X: 0, Y: 0, W: 40, H: 1200},
			{X: 1960, Y: 0, W: 40, H: 1200},
		},
		Enemies: enemies,
		Items:   items,
	}
}

func newHarness(t *testing.T, level *assets.Level) *harness {
	h := &harness{t: t, src: &scriptedSource{}}
	h.scene = NewPlayScene(Options{
		OnStats: func(s components.Snapshot) { h.reports = append(h.reports, s) },
		Source:  h.src,
		Level:   level,
		Seed:    42,
	})
	// Build the world now and drop spawn protection so damage can be observed
	h.spawnGuard = h.player().InvulnerableUntil
	h.player().InvulnerableUntil = 0
	t.Cleanup(h.scene.Close)
	return h
}

func (h *harness) world() donburi.World { return h.scene.World() }

func (h *harness) playerEntry() *donburi.Entry {
	entry, ok := components.Player.First(h.world())
	require.True(h.t, ok)
	return entry
}

func (h *harness) player() *components.PlayerData {
	return components.Player.Get(h.playerEntry())
}

func (h *harness) health() *components.HealthData {
	return components.Health.Get(h.playerEntry())
}

func (h *harness) playerCenter() math.Vec2 {
	return components.Object.Get(h.playerEntry()).Center()
}

func (h *harness) firstEnemy() *donburi.Entry {
	entry, ok := tags.Enemy.First(h.world())
	require.True(h.t, ok)
	return entry
}

func (h *harness) step(n int) {
	for range n {
		h.scene.Step(dt)
	}
}

func (h *harness) attack() {
	h.src.attack = true
	h.scene.Step(dt)
}

// holdFire stops a ranged enemy from spitting during the test.
func holdFire(enemy *donburi.Entry) {
	components.Enemy.Get(enemy).AttackCooldown = time.Hour
}

func place(entry *donburi.Entry, x, y float64) {
	components.Object.Get(entry).SetCenter(math.NewVec2(x, y))
	physics := components.Physics.Get(entry)
	physics.Knockback = 0
	physics.Stop()
}

func TestInitialSnapshotIsReported(t *testing.T) {
	h := newHarness(t, openArena([]config.Spawn{
		{Type: config.EnemyMaguro, X: 1500, Y: 500},
		{Type: config.EnemyTamago, X: 1500, Y: 900},
	}, nil))

	require.NotEmpty(t, h.reports)
	assert.Equal(t, components.Snapshot{HP: 100, MaxHP: 100, Atk: 20, Enemies: 2}, h.reports[0])

	stats, ok := components.Stats.First(h.world())
	require.True(t, ok)
	assert.Equal(t, "HP: 100/100   ATK: 20   Enemies: 2", components.Stats.Get(stats).HUDText)
}

func TestAttackCooldownGatesRequests(t *testing.T) {
	h := newHarness(t, openArena(nil, nil))

	h.attack()
	require.True(t, h.player().IsAttacking)
	require.Equal(t, uint64(1), h.player().AttackSeq)
	assert.Equal(t, config.Combat.AttackCooldown, h.player().AttackCooldown)

	// 540ms after windup entry: still cooling down, the request is dropped
	h.step(53)
	h.attack()
	assert.Equal(t, uint64(1), h.player().AttackSeq)
	assert.Greater(t, h.player().AttackCooldown, time.Duration(0))

	// 550ms: the cooldown expires in the same tick the request arrives
	h.attack()
	assert.Equal(t, uint64(2), h.player().AttackSeq)
	assert.True(t, h.player().IsAttacking)
}

func TestAttackWhileAttackingIsIgnored(t *testing.T) {
	h := newHarness(t, openArena(nil, nil))

	h.attack()
	h.step(5)
	h.player().AttackCooldown = 0 // only the in-progress swing blocks now
	h.attack()

	assert.Equal(t, uint64(1), h.player().AttackSeq)
}

func TestAttackFreezesMovement(t *testing.T) {
	h := newHarness(t, openArena(nil, nil))

	h.src.move = math.NewVec2(1, 0)
	h.step(5)
	moving := h.playerCenter()
	assert.Greater(t, moving.X, 500.0, "player walks before attacking")

	h.attack()
	start := h.playerCenter()
	ticks := 0
	for h.player().IsAttacking {
		h.step(1)
		ticks++
		require.Less(t, ticks, 100, "attack never finished")
		assert.Equal(t, start, h.playerCenter())
		assert.Equal(t, 0.0, components.Physics.Get(h.playerEntry()).Velocity.Magnitude())
	}

	// The swing lasts as long as the attack animation
	anim := config.Animations[config.Combat.AttackAnim]
	duration := time.Duration(float64(anim.Frames) / anim.FPS * float64(time.Second))
	assert.InDelta(t, duration.Seconds(), float64(ticks+1)*dt.Seconds(), dt.Seconds()*1.5)

	h.step(1)
	assert.Greater(t, h.playerCenter().X, start.X, "movement unlocks after the swing")
}

func TestMeleeHitWindowDamagesOnce(t *testing.T) {
	h := newHarness(t, openArena([]config.Spawn{
		{Type: config.EnemyMaguro, X: 540, Y: 500},
	}, nil))
	maguro := h.firstEnemy()

	// Body overlap before the hit window opens never hurts
	h.step(14)
	assert.Equal(t, 100, h.health().Current)
	assert.True(t, components.Enemy.Get(maguro).IsAttacking)
	assert.False(t, components.Enemy.Get(maguro).HitActive)

	h.step(1)
	require.True(t, components.Enemy.Get(maguro).HitActive)
	assert.Equal(t, 90, h.health().Current)
	assert.True(t, h.player().Invulnerable(h.now()))
	assert.Greater(t, components.Physics.Get(h.playerEntry()).Knockback, time.Duration(0))

	// Overlap again inside the invulnerability window
	place(h.playerEntry(), 500, 500)
	components.Enemy.Get(maguro).HitActive = true
	h.step(1)
	assert.Equal(t, 90, h.health().Current)
}

func TestMeleeRecoversWithoutAnimation(t *testing.T) {
	h := newHarness(t, openArena([]config.Spawn{
		{Type: config.EnemyMaguro, X: 540, Y: 500},
	}, nil))
	maguro := h.firstEnemy()

	h.step(1)
	data := components.Enemy.Get(maguro)
	require.True(t, data.IsAttacking)

	// Lose the animation so only the timeout can end the attack
	components.Animation.Get(maguro).Stop()
	h.step(31)
	assert.True(t, data.IsAttacking, "still inside the recover timeout")
	h.step(2)
	assert.False(t, data.IsAttacking)
	assert.False(t, data.HitActive)
	assert.Equal(t, config.StateChase, components.State.Get(maguro).CurrentState)
}

func TestRangedEnemyNeverDealsContactDamage(t *testing.T) {
	h := newHarness(t, openArena([]config.Spawn{
		{Type: config.EnemyTamago, X: 500, Y: 500},
	}, nil))
	holdFire(h.firstEnemy())

	for range 120 {
		h.step(1)
		require.Equal(t, 100, h.health().Current)
	}
}

func TestSlashKillsOnThirdHit(t *testing.T) {
	h := newHarness(t, openArena([]config.Spawn{
		{Type: config.EnemyTamago, X: 560, Y: 500},
	}, nil))
	enemy := h.firstEnemy()
	holdFire(enemy)
	id := enemy.Entity()
	hp := components.Health.Get(enemy)
	require.Equal(t, 50, hp.Current)

	swing := func() {
		h.attack()
		h.step(60)
	}

	swing()
	assert.Equal(t, 30, hp.Current)
	place(enemy, 560, 500)

	swing()
	assert.Equal(t, 10, hp.Current)
	assert.True(t, h.world().Valid(id), "alive after two hits")
	place(enemy, 560, 500)

	swing()
	assert.False(t, h.world().Valid(id), "destroyed on the third hit")
	assert.Equal(t, 0, h.scene.Snapshot().Enemies)
	assert.Equal(t, 0, h.reports[len(h.reports)-1].Enemies)
}

func TestSlashMissesOutsideRadius(t *testing.T) {
	h := newHarness(t, openArena([]config.Spawn{
		{Type: config.EnemyTamago, X: 500 + config.Combat.SlashRadius + 20, Y: 500},
	}, nil))
	enemy := h.firstEnemy()
	holdFire(enemy)

	h.attack()
	h.step(30)
	assert.Equal(t, 50, components.Health.Get(enemy).Current)
}

func TestSpitLandsAndPuddleHurtsOncePerWindow(t *testing.T) {
	spread := config.Ranged.Spread
	config.Ranged.Spread = 0
	t.Cleanup(func() { config.Ranged.Spread = spread })

	h := newHarness(t, openArena([]config.Spawn{
		{Type: config.EnemyTamago, X: 800, Y: 500},
	}, nil))
	tamago := h.firstEnemy()
	puddleDamage := config.Enemy.Types[config.EnemyTamago].Damage

	assert.Greater(t, 300.0/config.Ranged.Speed, config.Ranged.MaxFlight.Seconds())
	assert.Equal(t, config.Ranged.MaxFlight, systems.FlightTime(300))

	// Spit on the next tick
	components.Enemy.Get(tamago).AttackCooldown = dt
	h.step(1)
	require.Equal(t, 1, countTagged(h.world(), tags.Projectile))

	var hazard *donburi.Entry
	for i := 0; i < 100 && hazard == nil; i++ {
		h.step(1)
		if entry, ok := tags.Hazard.First(h.world()); ok {
			hazard = entry
		}
	}
	require.NotNil(t, hazard)
	assert.Equal(t, 0, countTagged(h.world(), tags.Projectile))

	landed := components.Object.Get(hazard).Center()
	assert.InDelta(t, 500, landed.X, 1)
	assert.InDelta(t, 500, landed.Y, 1)

	// First contact hurts, the rest of the invulnerability window does not
	assert.Equal(t, 100-puddleDamage, h.health().Current)
	h.step(40)
	assert.Equal(t, 100-puddleDamage, h.health().Current)

	// Once the window is over the same puddle hurts again
	h.step(10)
	assert.Equal(t, 100-2*puddleDamage, h.health().Current)

	// The puddle expires on its own
	id := hazard.Entity()
	h.step(int(config.Hazard.Lifespan/dt) - 50 + 1)
	assert.False(t, h.world().Valid(id))
}

func TestFlightTimeClamp(t *testing.T) {
	assert.Equal(t, config.Ranged.MinFlight, systems.FlightTime(0))
	assert.Equal(t, config.Ranged.MaxFlight, systems.FlightTime(10_000))

	mid := systems.FlightTime(100)
	assert.InDelta(t, 100/config.Ranged.Speed, mid.Seconds(), 1e-6)
}

func TestGameOverFreezesEverything(t *testing.T) {
	h := newHarness(t, openArena([]config.Spawn{
		{Type: config.EnemyMaguro, X: 1500, Y: 500},
	}, nil))

	h.step(1)
	require.True(t, systems.DamagePlayer(h.world(), 1000, math.NewVec2(0, 0), time.Second, 0))
	require.True(t, h.scene.IsGameOver())
	assert.Equal(t, 0, h.health().Current)
	assert.Equal(t, 0, h.reports[len(h.reports)-1].HP)

	pos := h.playerCenter()
	enemyPos := components.Object.Get(h.firstEnemy()).Center()
	snap := h.scene.Snapshot()
	seq := h.player().AttackSeq

	h.src.move = math.NewVec2(1, 1)
	for range 30 {
		h.src.attack = true
		h.step(1)
	}

	assert.Equal(t, pos, h.playerCenter())
	assert.Equal(t, enemyPos, components.Object.Get(h.firstEnemy()).Center())
	assert.Equal(t, snap, h.scene.Snapshot())
	assert.Equal(t, seq, h.player().AttackSeq)

	// Further damage is refused once the run is over
	assert.False(t, systems.DamagePlayer(h.world(), 10, math.NewVec2(0, 0), time.Second, 0))
}

func TestRestartBuildsFreshRun(t *testing.T) {
	h := newHarness(t, openArena(nil, nil))

	systems.DamagePlayer(h.world(), 1000, math.NewVec2(0, 0), time.Second, 0)
	require.True(t, h.scene.IsGameOver())

	h.scene.Restart()
	assert.False(t, h.scene.IsGameOver())
	assert.Equal(t, 100, h.health().Current)
	assert.True(t, h.player().Invulnerable(h.now()), "spawn protection again")
	assert.Equal(t, 100, h.reports[len(h.reports)-1].HP)
}

func TestTouchTapAttacks(t *testing.T) {
	var points []input.TouchPoint
	touch := input.NewTouchSource(func() []input.TouchPoint { return points }, nil)

	h := newHarness(t, openArena(nil, nil))
	entry, ok := components.Input.First(h.world())
	require.True(t, ok)
	components.Input.Get(entry).Source = touch

	start := h.playerCenter()

	points = []input.TouchPoint{{ID: 1, X: 300, Y: 300}}
	h.step(1)
	points = []input.TouchPoint{{ID: 1, X: 302, Y: 301}}
	h.step(5)
	assert.False(t, h.player().IsAttacking)
	assert.Equal(t, start, h.playerCenter())

	points = nil
	h.step(1)
	assert.True(t, h.player().IsAttacking)
	assert.Equal(t, start, h.playerCenter())
}

func TestPickupAppliesOnce(t *testing.T) {
	h := newHarness(t, openArena(nil, []config.Spawn{
		{Type: config.ItemHeart, X: 500, Y: 500},
		{Type: config.ItemSword, X: 800, Y: 500},
	}))
	h.health().Current = 50

	heart, ok := tags.Item.First(h.world())
	require.True(t, ok)
	heartID := heart.Entity()

	h.step(1)
	assert.Equal(t, 75, h.health().Current)
	assert.False(t, h.world().Valid(heartID))

	h.step(10)
	assert.Equal(t, 75, h.health().Current, "a consumed item cannot be picked up again")

	// Walk onto the sword
	h.src.move = math.NewVec2(1, 0)
	for i := 0; i < 200 && h.player().Atk == config.Player.Attack; i++ {
		h.step(1)
	}
	assert.Equal(t, config.Player.Attack+5, h.player().Atk)
	assert.Equal(t, 0, countTagged(h.world(), tags.Item))
	assert.Equal(t, 25, h.reports[len(h.reports)-1].Atk)
}

func TestPickupNeedsTrueProximity(t *testing.T) {
	// Bodies overlap at this offset, but the centres are too far apart
	offset := config.Player.CollisionWidth/2 + config.Items.Size/2 - 2
	require.Greater(t, offset, config.Items.PickupRadius)

	h := newHarness(t, openArena(nil, []config.Spawn{
		{Type: config.ItemHeart, X: 500 + offset, Y: 500},
	}))
	h.health().Current = 50

	h.step(5)
	assert.Equal(t, 50, h.health().Current)
	assert.Equal(t, 1, countTagged(h.world(), tags.Item))
}

func TestHealNeverExceedsMax(t *testing.T) {
	h := newHarness(t, openArena(nil, []config.Spawn{
		{Type: config.ItemHeart, X: 500, Y: 500},
	}))
	h.health().Current = 90

	h.step(1)
	assert.Equal(t, 100, h.health().Current)
}

func TestPanickingCallbackDoesNotStallSimulation(t *testing.T) {
	calls := 0
	scene := NewPlayScene(Options{
		OnStats: func(components.Snapshot) {
			calls++
			panic("ui broke")
		},
		Source: &scriptedSource{},
		Level: openArena(nil, []config.Spawn{
			{Type: config.ItemSword, X: 500, Y: 500},
		}),
	})
	t.Cleanup(scene.Close)

	assert.NotPanics(t, func() {
		for range 10 {
			scene.Step(dt)
		}
	})
	assert.GreaterOrEqual(t, calls, 2, "initial report and the pickup")
	assert.Equal(t, config.Player.Attack+5, scene.Snapshot().Atk)
}

func TestNilCallbackIsFine(t *testing.T) {
	scene := NewPlayScene(Options{Source: &scriptedSource{}, Level: openArena(nil, nil)})
	t.Cleanup(scene.Close)

	assert.NotPanics(t, func() { scene.Step(dt) })
}

func TestDestroyedOwnerTurnsTimersIntoNoOps(t *testing.T) {
	h := newHarness(t, openArena([]config.Spawn{
		{Type: config.EnemyMaguro, X: 540, Y: 500},
	}, nil))
	maguro := h.firstEnemy()

	h.step(1)
	require.True(t, components.Enemy.Get(maguro).IsAttacking)

	// Kill it while its hit-window timers are pending
	systems.DamageEnemy(h.world(), maguro, 1000, h.playerCenter())
	assert.NotPanics(t, func() { h.step(50) })
	assert.Equal(t, 100, h.health().Current)
	assert.Equal(t, 0, h.pendingTimers())
}

func TestCloseReleasesTimersAndCallback(t *testing.T) {
	h := newHarness(t, openArena([]config.Spawn{
		{Type: config.EnemyMaguro, X: 540, Y: 500},
	}, nil))

	h.step(1)
	require.Greater(t, h.pendingTimers(), 0)

	h.scene.Close()
	assert.Equal(t, 0, h.pendingTimers())

	reports := len(h.reports)
	clock := h.now()
	h.step(50)
	assert.Equal(t, reports, len(h.reports))
	assert.Equal(t, clock, h.now())
}

func TestLongRunStaysConsistent(t *testing.T) {
	h := newHarness(t, assets.DefaultLevel())

	for i := range 3000 {
		// Chase the nearest enemy and swing constantly
		if enemy, ok := tags.Enemy.First(h.world()); ok {
			dir := components.Object.Get(enemy).Center().Sub(h.playerCenter())
			if dir.Magnitude() > 0 {
				h.src.move = dir.Normalized()
			}
		}
		h.src.attack = i%3 == 0
		h.step(1)

		hp := h.health()
		require.GreaterOrEqual(t, hp.Current, 0)
		require.LessOrEqual(t, hp.Current, hp.Max)
		require.GreaterOrEqual(t, h.player().AttackCooldown, time.Duration(0))
		tags.Enemy.Each(h.world(), func(e *donburi.Entry) {
			require.Greater(t, components.Health.Get(e).Current, 0, "dead enemies must not linger")
			require.GreaterOrEqual(t, components.Enemy.Get(e).AttackCooldown, time.Duration(0))
		})
		if h.scene.IsGameOver() {
			break
		}
	}
}

func countTagged(w donburi.World, tag donburi.IComponentType) int {
	return donburi.NewQuery(filter.Contains(tag)).Count(w)
}

func (h *harness) now() time.Duration {
	entry, ok := components.Clock.First(h.world())
	require.True(h.t, ok)
	return components.Clock.Get(entry).Now
}

func (h *harness) pendingTimers() int {
	entry, ok := components.TimerQueue.First(h.world())
	require.True(h.t, ok)
	return components.TimerQueue.Get(entry).Len()
}

func TestPauseFreezesClockAndTimers(t *testing.T) {
	h := newHarness(t, openArena([]config.Spawn{
		{Type: config.EnemyMaguro, X: 540, Y: 500},
	}, nil))

	h.step(1)
	require.True(t, h.scene.TogglePause())
	clock := h.now()

	h.step(100)
	assert.Equal(t, clock, h.now())
	assert.Equal(t, 100, h.health().Current, "the hit window never opened")

	assert.False(t, h.scene.TogglePause())
	h.step(14)
	assert.Equal(t, 90, h.health().Current)
}

func TestCannotPauseAfterGameOver(t *testing.T) {
	h := newHarness(t, openArena(nil, nil))

	systems.DamagePlayer(h.world(), 1000, math.NewVec2(0, 0), time.Second, 0)
	assert.False(t, h.scene.TogglePause())
	assert.False(t, systems.IsPaused(h.world()))
}

func TestSpawnProtection(t *testing.T) {
	h := newHarness(t, openArena([]config.Spawn{
		{Type: config.EnemyMaguro, X: 540, Y: 500},
	}, nil))
	require.Equal(t, config.Player.SpawnInvulnerability, h.spawnGuard)
	h.player().InvulnerableUntil = h.spawnGuard

	// The first swing's hit window closes well inside the first second
	h.step(100)
	assert.Equal(t, 100, h.health().Current)
	assert.False(t, h.player().Invulnerable(h.now()))

	// The second swing starts at 1.2s and its window opens 140ms later
	h.step(40)
	assert.Equal(t, 90, h.health().Current)
}

func TestLethalHitBlocksSameTickPickup(t *testing.T) {
	h := newHarness(t, openArena([]config.Spawn{
		{Type: config.EnemyMaguro, X: 540, Y: 500},
	}, []config.Spawn{
		{Type: config.ItemHeart, X: 1500, Y: 900},
	}))
	h.health().Current = 10
	heart, ok := tags.Item.First(h.world())
	require.True(t, ok)
	heartID := heart.Entity()

	// Slide the heart under the player just before the hit window opens
	h.step(14)
	require.Equal(t, 10, h.health().Current)
	components.Object.Get(heart).SetCenter(h.playerCenter())

	h.step(1)
	require.True(t, h.scene.IsGameOver())
	assert.Equal(t, 0, h.health().Current)
	assert.True(t, h.world().Valid(heartID), "a dead player picks nothing up")

	final, over := systems.FinalSnapshot(h.world())
	require.True(t, over)
	assert.Equal(t, 0, final.HP)
	assert.Equal(t, 0, h.reports[len(h.reports)-1].HP)

	h.step(20)
	assert.Equal(t, 0, h.health().Current)
	assert.Equal(t, 0, h.reports[len(h.reports)-1].HP)
}

func TestKnockbackLosesSpeedToDrag(t *testing.T) {
	h := newHarness(t, openArena([]config.Spawn{
		{Type: config.EnemyTamago, X: 1500, Y: 500},
	}, nil))
	enemy := h.firstEnemy()
	holdFire(enemy)

	systems.DamageEnemy(h.world(), enemy, 1, math.NewVec2(1400, 500))
	physics := components.Physics.Get(enemy)
	require.InDelta(t, config.Combat.EnemyKnockbackSpeed, physics.Velocity.Magnitude(), 1e-9)

	h.step(1)
	drag := config.Enemy.Types[config.EnemyTamago].Drag
	want := config.Combat.EnemyKnockbackSpeed - drag*dt.Seconds()
	assert.InDelta(t, want, physics.Velocity.Magnitude(), 1e-6)
	assert.Greater(t, physics.Velocity.X, 0.0, "still pushed away from the source")

	// The knockback still runs its full duration
	h.step(int(config.Combat.EnemyKnockbackDuration / dt))
	assert.Equal(t, time.Duration(0), physics.Knockback)
}
