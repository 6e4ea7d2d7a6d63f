package simulation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YanNazzim/bullethell/internal/application/state"
	"github.com/YanNazzim/bullethell/internal/application/system"
	"github.com/YanNazzim/bullethell/internal/domain/entity"
	"github.com/YanNazzim/bullethell/internal/infrastructure/config"
)

const (
	testSeed = 12345
	frame    = 1.0 / 60
)

func newTestSim(mode state.Mode) *Simulation {
	return New(config.Default().Balance, mode, testSeed)
}

func eventsOf[T system.Event](events []system.Event) []T {
	var out []T
	for _, e := range events {
		if v, ok := e.(T); ok {
			out = append(out, v)
		}
	}
	return out
}

// liveEnemies returns the handles of every live enemy in slot order
func liveEnemies(s *Simulation) []entity.Handle {
	var hs []entity.Handle
	s.ctx.Enemies.Each(func(h entity.Handle, e *entity.Enemy) {
		if e.Alive {
			hs = append(hs, h)
		}
	})
	return hs
}

func killAll(s *Simulation) {
	for _, h := range liveEnemies(s) {
		s.ctx.ApplyDamage(h, 1e9, false)
	}
}

// chooseFirst applies the first offered upgrade
func chooseFirst(t *testing.T, s *Simulation) {
	t.Helper()
	offer := s.Offer()
	require.NotEmpty(t, offer)
	require.NoError(t, s.ApplyUpgrade(offer[0].Key))
}

func TestNew_Wave(t *testing.T) {
	s := newTestSim(state.ModeWave)

	assert.Equal(t, state.StateActive, s.State())
	assert.Equal(t, state.ModeWave, s.Mode())
	assert.Equal(t, 1, s.Unit())
	assert.Equal(t, 1, s.Player().Level)
	assert.Equal(t, 5, s.ctx.Enemies.Len())

	announced := eventsOf[system.UnitAnnounced](s.Drain())
	require.Len(t, announced, 1)
	assert.Equal(t, system.UnitAnnounced{Mode: "wave", Unit: 1, Boss: false}, announced[0])
}

func TestNew_Chaos(t *testing.T) {
	s := newTestSim(state.ModeChaos)

	assert.Equal(t, state.ModeChaos, s.Mode())
	assert.Equal(t, 1, s.Unit())
	assert.Zero(t, s.ctx.Enemies.Len(), "chaos spawns on its timer")

	for i := 0; i < 60; i++ {
		s.Tick(frame)
	}
	assert.Equal(t, 1, s.ctx.Enemies.Len())
}

func TestWave_CompletionOffersUpgradeOnce(t *testing.T) {
	s := newTestSim(state.ModeWave)
	s.Drain()

	handles := liveEnemies(s)
	require.Len(t, handles, 5)
	for _, h := range handles {
		e, _ := s.ctx.Enemies.Get(h)
		assert.Equal(t, entity.KindRegular, e.Kind)
	}

	for i, h := range handles {
		s.ctx.ApplyDamage(h, 1e9, false)
		if i < len(handles)-1 {
			assert.Equal(t, state.StateActive, s.State())
		}
	}

	events := s.Drain()
	offers := eventsOf[system.UpgradeOffered](events)
	require.Len(t, offers, 1)
	assert.LessOrEqual(t, len(offers[0].Choices), 3)
	assert.NotEmpty(t, offers[0].Choices)
	assert.Equal(t, 5, s.Player().Score)
	assert.Len(t, eventsOf[system.ScoreChanged](events), 5)

	assert.Equal(t, state.StateUpgradeSelection, s.State())
	assert.True(t, s.Player().Invulnerable)
}

func TestWave_ApplyUpgradeStartsNextWave(t *testing.T) {
	s := newTestSim(state.ModeWave)
	killAll(s)
	s.Drain()

	chooseFirst(t, s)

	assert.Equal(t, state.StateActive, s.State())
	assert.False(t, s.Player().Invulnerable)
	assert.Equal(t, 2, s.Unit())
	assert.Equal(t, 7, s.ctx.Enemies.Len())
	assert.Nil(t, s.Offer())

	announced := eventsOf[system.UnitAnnounced](s.Drain())
	require.Len(t, announced, 1)
	assert.Equal(t, 2, announced[0].Unit)
}

func TestApplyUpgrade_UnknownKeyResumesRun(t *testing.T) {
	s := newTestSim(state.ModeWave)
	killAll(s)
	require.Equal(t, state.StateUpgradeSelection, s.State())
	speed := s.Player().MoveSpeed

	err := s.ApplyUpgrade("laserSword")

	assert.ErrorIs(t, err, system.ErrUnknownUpgrade)
	assert.Equal(t, state.StateActive, s.State())
	assert.Nil(t, s.Offer())
	assert.False(t, s.Player().Invulnerable)
	assert.Equal(t, 2, s.Unit())
	assert.Equal(t, speed, s.Player().MoveSpeed, "nothing was applied")

	assert.NoError(t, s.ApplyUpgrade("laserSword"), "no offer left to reject")
}

func TestApplyUpgrade_IgnoredWhenNotSelecting(t *testing.T) {
	s := newTestSim(state.ModeWave)

	assert.NoError(t, s.ApplyUpgrade(string(entity.StatMoveSpeed)))
	assert.Equal(t, 200.0, s.Player().MoveSpeed)
	assert.Equal(t, state.StateActive, s.State())
}

func TestTick_SuspendedDuringUpgradeSelection(t *testing.T) {
	s := newTestSim(state.ModeWave)
	killAll(s)
	s.Drain()
	x, y := s.Player().X, s.Player().Y

	s.SetMovementIntent(1, 0)
	for i := 0; i < 10; i++ {
		s.Tick(frame)
	}

	assert.Equal(t, x, s.Player().X)
	assert.Equal(t, y, s.Player().Y)
	assert.Empty(t, s.Drain())
	assert.Zero(t, s.Elapsed())
}

func TestChaos_LevelUp(t *testing.T) {
	s := newTestSim(state.ModeChaos)
	cm := s.mode.(*chaosMode)
	before := cm.spawn.Interval

	for i := 0; i < 5; i++ {
		h, ok := s.ctx.SpawnEnemy(entity.KindRegular, 100, 100, 1)
		require.True(t, ok)
		s.ctx.ApplyDamage(h, 1e9, false)
	}

	events := s.Drain()
	require.Len(t, eventsOf[system.UpgradeOffered](events), 1)
	assert.Equal(t, state.StateUpgradeSelection, s.State())
	assert.Equal(t, 5, s.Player().Score, "level 1 scores 1 per kill")

	chooseFirst(t, s)

	assert.Equal(t, 2, s.Unit())
	assert.Equal(t, 2, s.Player().Level)
	assert.Zero(t, cm.kills)
	assert.Less(t, cm.spawn.Interval, before)
	assert.True(t, cm.spawn.Running())

	// Level 2 scores 2 per kill
	h, ok := s.ctx.SpawnEnemy(entity.KindRegular, 100, 100, 2)
	require.True(t, ok)
	s.ctx.ApplyDamage(h, 1e9, false)
	assert.Equal(t, 7, s.Player().Score)
}

func TestChaos_LevelUpMidTickStopsFurtherKills(t *testing.T) {
	s := newTestSim(state.ModeChaos)
	cm := s.mode.(*chaosMode)
	cm.kills = 4
	require.NoError(t, s.ctx.AcquireWeapon(entity.WeaponElectricBolt))

	px, py := s.Player().X, s.Player().Y
	for i := 0; i < 3; i++ {
		h, ok := s.ctx.SpawnEnemy(entity.KindRegular, px+300, py+40*float64(i), 1)
		require.True(t, ok)
		e, _ := s.ctx.Enemies.Get(h)
		e.Health, e.MaxHealth = 1, 1
	}
	s.ctx.WeaponTimers[entity.WeaponElectricBolt].Advance(1 - frame/2)
	s.Drain()
	score := s.Player().Score

	s.Tick(frame)

	assert.Equal(t, state.StateUpgradeSelection, s.State())
	assert.Equal(t, score+1, s.Player().Score)
	assert.Equal(t, 5, cm.kills)
	assert.Len(t, liveEnemies(s), 2)

	events := s.Drain()
	assert.Len(t, eventsOf[system.ChainZapped](events), 1)
	assert.Len(t, eventsOf[system.UpgradeOffered](events), 1)
}

func TestChaos_SpawnIntervalFloor(t *testing.T) {
	s := newTestSim(state.ModeChaos)
	cm := s.mode.(*chaosMode)

	cm.level = 100
	assert.InDelta(t, 0.2, cm.spawnInterval(s), 1e-9)

	cm.level = 1
	assert.InDelta(t, 0.98, cm.spawnInterval(s), 1e-9)
}

func TestChaos_EnemyCap(t *testing.T) {
	cfg := config.Default().Balance
	cfg.Chaos.EnemyCap = 3
	cfg.Chaos.BaseInterval = 0.1
	cfg.Chaos.MinInterval = 0.1
	s := New(cfg, state.ModeChaos, testSeed)

	// Nothing is on-screen, so nothing gets shot
	s.SetViewport(1, 1)
	for i := 0; i < 120; i++ {
		s.Tick(frame)
	}

	assert.Equal(t, 3, s.ctx.Enemies.Len())
}

func TestGameOver_EmitsSummaryOnce(t *testing.T) {
	s := newTestSim(state.ModeWave)
	killAll(s)
	chooseFirst(t, s)
	s.Drain()

	p := s.Player()
	p.Health = 1
	_, ok := s.ctx.SpawnEnemy(entity.KindRegular, p.X, p.Y, 2)
	require.True(t, ok)

	s.Tick(frame)
	s.Tick(frame)

	events := s.Drain()
	assert.Len(t, eventsOf[system.GameOverEvent](events), 1)
	ended := eventsOf[system.RunEnded](events)
	require.Len(t, ended, 1)

	sum := ended[0].Summary
	assert.Equal(t, "wave", sum.Mode)
	assert.Equal(t, 1, sum.UnitReached, "last completed wave")
	assert.Equal(t, 2, sum.CurrentUnit)
	assert.Equal(t, 5, sum.Score)
	assert.Greater(t, sum.TotalDamageDealt, 0.0)
	assert.NotEqual(t, [16]byte{}, [16]byte(sum.RunID))

	assert.Equal(t, state.StateGameOver, s.State())
	assert.Equal(t, 0.0, p.Health)
}

func TestGameOver_IsTerminal(t *testing.T) {
	s := newTestSim(state.ModeWave)
	s.gameOver()
	s.Drain()

	s.SetPaused(true)
	s.TogglePause()
	s.gameOver()
	s.Tick(frame)

	assert.Equal(t, state.StateGameOver, s.State())
	assert.Empty(t, s.Drain())
}

func TestPause_Idempotent(t *testing.T) {
	s := newTestSim(state.ModeWave)
	s.Drain()

	s.SetPaused(true)
	s.SetPaused(true)

	assert.Equal(t, state.StatePaused, s.State())
	assert.Equal(t, []system.Event{system.PauseChanged{Paused: true}}, s.Drain())

	s.SetPaused(false)
	s.SetPaused(false)
	assert.Equal(t, state.StateActive, s.State())
	assert.Equal(t, []system.Event{system.PauseChanged{Paused: false}}, s.Drain())
}

func TestPause_ResumeRestoresExactState(t *testing.T) {
	paused := newTestSim(state.ModeWave)
	straight := newTestSim(state.ModeWave)

	for _, s := range []*Simulation{paused, straight} {
		s.SetMovementIntent(0.6, -0.8)
	}

	for i := 0; i < 90; i++ {
		paused.Tick(frame)
		straight.Tick(frame)
	}

	paused.TogglePause()
	for i := 0; i < 45; i++ {
		paused.Tick(frame)
	}
	paused.TogglePause()

	for i := 0; i < 90; i++ {
		paused.Tick(frame)
		straight.Tick(frame)
	}

	assert.Equal(t, straight.Player().X, paused.Player().X)
	assert.Equal(t, straight.Player().Y, paused.Player().Y)
	assert.Equal(t, straight.Player().Health, paused.Player().Health)
	assert.Equal(t, straight.ctx.TotalDamage, paused.ctx.TotalDamage)
	assert.Equal(t, straight.ctx.Bullets.Len(), paused.ctx.Bullets.Len())
	assert.Equal(t, straight.Elapsed(), paused.Elapsed())
}

func TestPause_BlockedDuringUpgradeSelection(t *testing.T) {
	s := newTestSim(state.ModeWave)
	killAll(s)
	s.Drain()

	s.TogglePause()
	s.SetPaused(true)

	assert.Equal(t, state.StateUpgradeSelection, s.State())
	assert.Empty(t, eventsOf[system.PauseChanged](s.Drain()))
}

func TestBossRound(t *testing.T) {
	s := newTestSim(state.ModeWave)
	wm := s.mode.(*waveMode)
	s.ctx.Enemies.Clear()
	wm.wave = 29
	wm.startNext(s)

	assert.Equal(t, 30, s.Unit())
	assert.Zero(t, s.Unit()%s.ctx.Config.Boss.Interval)
	assert.True(t, s.ctx.BossActive)
	assert.Equal(t, 1, s.ctx.CountKind(entity.KindBoss))
	assert.Equal(t, 1, s.ctx.Enemies.Len(), "normal spawning suspended")

	announced := eventsOf[system.UnitAnnounced](s.Drain())
	require.NotEmpty(t, announced)
	assert.True(t, announced[len(announced)-1].Boss)

	s.Player().SetInvulnerable(-1)
	for i := 0; i < 300; i++ {
		s.Tick(frame)
		require.LessOrEqual(t, s.ctx.CountKind(entity.KindBoss), 1)
	}
	assert.Positive(t, s.ctx.BossBullets.Len(), "boss fires at the player")

	score := s.Player().Score
	killAll(s)
	assert.Equal(t, score, s.Player().Score, "boss kills do not score")
	assert.Equal(t, state.StateUpgradeSelection, s.State())
	assert.False(t, s.ctx.BossActive)

	chooseFirst(t, s)
	assert.Equal(t, 31, s.Unit())
	assert.False(t, s.ctx.BossActive)
	assert.Equal(t, 5+30*2, s.ctx.Enemies.Len())
}

func TestTick_PushesSnapshot(t *testing.T) {
	s := newTestSim(state.ModeWave)
	s.Drain()

	s.Tick(frame)

	snaps := eventsOf[system.StatsSnapshot](s.Drain())
	require.Len(t, snaps, 1)
	assert.Equal(t, 1, snaps[0].Unit)
	assert.Equal(t, 10.0, snaps[0].Health)
	assert.Positive(t, snaps[0].Elapsed)
}

func TestHandle(t *testing.T) {
	s := newTestSim(state.ModeWave)

	s.Handle(system.MoveIntent{X: 1, Y: 0})
	s.Tick(frame)
	assert.InDelta(t, 1500+200*frame, s.Player().X, 1e-9)

	s.Handle(system.PauseIntent{})
	assert.Equal(t, state.StatePaused, s.State())
	s.Handle(system.PauseIntent{Set: true, Paused: false})
	assert.Equal(t, state.StateActive, s.State())

	killAll(s)
	key := s.Offer()[0].Key
	s.Handle(system.UpgradeIntent{Key: key})
	assert.Equal(t, 2, s.Unit())
}

func TestDeterministicReplay(t *testing.T) {
	a := newTestSim(state.ModeChaos)
	b := newTestSim(state.ModeChaos)

	for i := 0; i < 600; i++ {
		x := float64(i%7) - 3
		for _, s := range []*Simulation{a, b} {
			s.SetMovementIntent(x, 1)
			s.Tick(frame)
			if s.State() == state.StateUpgradeSelection {
				chooseFirst(t, s)
			}
		}
	}

	assert.Equal(t, a.Player().X, b.Player().X)
	assert.Equal(t, a.Player().Score, b.Player().Score)
	assert.Equal(t, a.Unit(), b.Unit())
	assert.Equal(t, a.ctx.Enemies.Len(), b.ctx.Enemies.Len())
	assert.Equal(t, a.ctx.TotalDamage, b.ctx.TotalDamage)
}

func TestTeardown(t *testing.T) {
	s := newTestSim(state.ModeChaos)
	for i := 0; i < 120; i++ {
		s.Tick(frame)
	}

	s.Teardown()

	assert.Zero(t, s.ctx.Enemies.Len())
	assert.Zero(t, s.ctx.Bullets.Len())
	assert.False(t, s.mode.(*chaosMode).spawn.Running())
}
