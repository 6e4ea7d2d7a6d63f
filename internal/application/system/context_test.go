package system

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YanNazzim/bullethell/internal/domain/entity"
	"github.com/YanNazzim/bullethell/internal/infrastructure/config"
)

// testRNG returns a seeded RNG for deterministic tests
func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(12345))
}

func newTestContext() *Context {
	return NewContext(config.Default().Balance, testRNG())
}

// placeEnemy spawns an enemy of kind at (x, y) with fixed health and armor
func placeEnemy(t *testing.T, c *Context, kind entity.EnemyKind, x, y, health, armor float64) entity.Handle {
	t.Helper()
	h, e, ok := c.Enemies.Acquire()
	require.True(t, ok)
	e.Spawn(c.NextID(), kind, x, y, entity.EnemyStats{
		Health:        health,
		Armor:         armor,
		ContactDamage: 1,
		Radius:        20,
	})
	return h
}

func countEvents[T Event](events []Event) int {
	n := 0
	for _, e := range events {
		if _, ok := e.(T); ok {
			n++
		}
	}
	return n
}

func TestNewContext(t *testing.T) {
	c := newTestContext()

	assert.Equal(t, 1500.0, c.Player.X)
	assert.Equal(t, 1500.0, c.Player.Y)
	assert.Equal(t, 10.0, c.Player.Health)
	assert.Equal(t, []entity.WeaponKey{entity.WeaponAutoBullet}, c.Player.Owned)
	assert.Equal(t, 2.0, c.Player.WeaponDamage)
	assert.Equal(t, 150, c.Enemies.Cap())
	assert.Equal(t, 30, c.Bullets.Cap())
	assert.Equal(t, 10, c.BossBullets.Cap())
	assert.False(t, c.BossActive)
	assert.False(t, c.BossFire.Running())

	timer, ok := c.WeaponTimers[entity.WeaponAutoBullet]
	require.True(t, ok)
	assert.InDelta(t, 0.5, timer.Interval, 1e-9)
}

func TestContext_NextIDNeverRepeats(t *testing.T) {
	c := newTestContext()

	seen := make(map[entity.EntityID]bool)
	for i := 0; i < 10; i++ {
		h := placeEnemy(t, c, entity.KindRegular, 0, 0, 3, 0)
		e, _ := c.Enemies.Get(h)
		assert.False(t, seen[e.ID])
		seen[e.ID] = true
		c.Enemies.Release(h)
	}
}

func TestContext_SetViewport(t *testing.T) {
	c := newTestContext()

	c.SetViewport(800, 600)
	assert.Equal(t, entity.Rect{X: 1100, Y: 1200, W: 800, H: 600}, c.VisibleRect())

	// Non-positive sizes are ignored
	c.SetViewport(0, -1)
	assert.Equal(t, 800.0, c.ViewW)
	assert.Equal(t, 600.0, c.ViewH)
}

func TestContext_PauseTimers(t *testing.T) {
	c := newTestContext()
	require.NoError(t, c.AcquireWeapon(entity.WeaponElectricBolt))

	c.PauseTimers()
	for key, timer := range c.WeaponTimers {
		assert.False(t, timer.Running(), "timer %s", key)
		assert.Zero(t, timer.Advance(10))
	}

	c.ResumeTimers()
	for key, timer := range c.WeaponTimers {
		assert.True(t, timer.Running(), "timer %s", key)
	}
}

func TestContext_Teardown(t *testing.T) {
	c := newTestContext()
	placeEnemy(t, c, entity.KindRegular, 1600, 1500, 3, 0)
	_, ok := c.SpawnBoss(30)
	require.True(t, ok)
	c.FireBullet()
	c.DropPickup(10, 10)

	c.Teardown()

	assert.Zero(t, c.Enemies.Len())
	assert.Zero(t, c.Bullets.Len())
	assert.Zero(t, c.Pickups.Len())
	assert.False(t, c.BossActive)
	assert.True(t, c.Boss.IsNil())
	for _, timer := range c.WeaponTimers {
		assert.Zero(t, timer.Advance(10))
	}
}

func TestContext_Snapshot(t *testing.T) {
	c := newTestContext()
	require.NoError(t, c.AcquireWeapon(entity.WeaponShield))
	c.Player.Score = 7
	c.WeaponTimers[entity.WeaponAutoBullet].Advance(0.25)

	snap := c.Snapshot(0)

	assert.Equal(t, 1, snap.Unit)
	assert.Equal(t, 7, snap.Score)
	require.Len(t, snap.Weapons, 2)
	assert.Equal(t, entity.WeaponAutoBullet, snap.Weapons[0].Key)
	assert.Equal(t, "Auto-Bullet", snap.Weapons[0].Name)
	assert.Equal(t, 2.0, snap.Weapons[0].AttackSpeed)
	assert.InDelta(t, 0.5, snap.Weapons[0].Charge, 1e-9)
	assert.Equal(t, entity.WeaponShield, snap.Weapons[1].Key)
	assert.Equal(t, 1, snap.Weapons[1].Count)
	assert.Zero(t, snap.Weapons[1].Charge)
	assert.False(t, snap.BossActive)
	assert.Nil(t, snap.BossDirection)
}
