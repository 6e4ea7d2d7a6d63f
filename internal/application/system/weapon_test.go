package system

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YanNazzim/bullethell/internal/domain/entity"
	"github.com/YanNazzim/bullethell/internal/infrastructure/config"
)

func TestAutoBullet_UpgradeAlternates(t *testing.T) {
	c := newTestContext()
	w, ok := c.Player.Weapon(entity.WeaponAutoBullet)
	require.True(t, ok)

	// Level 2: fire rate
	require.NoError(t, c.UpgradeWeapon(entity.WeaponAutoBullet))
	assert.Equal(t, 2, w.Level)
	assert.InDelta(t, 2.2, w.AttackSpeed, 1e-9)
	assert.InDelta(t, 1/2.2, c.WeaponTimers[entity.WeaponAutoBullet].Interval, 1e-9)
	assert.Equal(t, 2.0, c.Player.WeaponDamage)

	// Level 3: damage, synced into the player
	require.NoError(t, c.UpgradeWeapon(entity.WeaponAutoBullet))
	assert.Equal(t, 3, w.Level)
	assert.Equal(t, 2.5, w.Damage)
	assert.Equal(t, 2.5, c.Player.WeaponDamage)
}

func TestUpgradeWeapon_Cap(t *testing.T) {
	c := newTestContext()

	for i := 0; i < 9; i++ {
		require.NoError(t, c.UpgradeWeapon(entity.WeaponAutoBullet))
	}
	w, _ := c.Player.Weapon(entity.WeaponAutoBullet)
	assert.Equal(t, 10, w.Level)

	err := c.UpgradeWeapon(entity.WeaponAutoBullet)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrStaleUpgrade))
	assert.Equal(t, 10, w.Level)
}

func TestAcquireWeapon_Errors(t *testing.T) {
	c := newTestContext()

	err := c.AcquireWeapon(entity.WeaponAutoBullet)
	assert.ErrorIs(t, err, ErrStaleUpgrade)

	err = c.AcquireWeapon("laserSword")
	assert.ErrorIs(t, err, ErrUnknownUpgrade)

	err = c.UpgradeWeapon(entity.WeaponShield)
	assert.ErrorIs(t, err, ErrStaleUpgrade, "upgrading an unowned weapon")

	assert.Equal(t, []entity.WeaponKey{entity.WeaponAutoBullet}, c.Player.Owned)
}

func TestElectricBolt_IntervalFloor(t *testing.T) {
	cfg := config.Default().Balance
	bolt := cfg.Weapons["electricBolt"]
	bolt.IntervalStep = 0.5
	cfg.Weapons["electricBolt"] = bolt
	c := NewContext(cfg, testRNG())

	require.NoError(t, c.AcquireWeapon(entity.WeaponElectricBolt))
	w, _ := c.Player.Weapon(entity.WeaponElectricBolt)
	assert.Equal(t, 1.0, w.Interval)

	require.NoError(t, c.UpgradeWeapon(entity.WeaponElectricBolt))
	assert.InDelta(t, 0.5, w.Interval, 1e-9)

	require.NoError(t, c.UpgradeWeapon(entity.WeaponElectricBolt))
	assert.InDelta(t, 0.2, w.Interval, 1e-9)
	assert.InDelta(t, 0.2, c.WeaponTimers[entity.WeaponElectricBolt].Interval, 1e-9)
}

func TestElectricBolt_DefaultProgression(t *testing.T) {
	c := newTestContext()
	require.NoError(t, c.AcquireWeapon(entity.WeaponElectricBolt))
	w, _ := c.Player.Weapon(entity.WeaponElectricBolt)

	for i := 0; i < 7; i++ {
		require.NoError(t, c.UpgradeWeapon(entity.WeaponElectricBolt))
	}

	assert.Equal(t, 8, w.Level)
	assert.InDelta(t, 0.65, w.Interval, 1e-9)
	assert.ErrorIs(t, c.UpgradeWeapon(entity.WeaponElectricBolt), ErrStaleUpgrade)
}

func TestShield_Upgrades(t *testing.T) {
	c := newTestContext()
	require.NoError(t, c.AcquireWeapon(entity.WeaponShield))
	w, _ := c.Player.Weapon(entity.WeaponShield)

	assert.Equal(t, 3.0, w.Damage)
	assert.Equal(t, 1, w.Count)
	assert.Equal(t, 215.0, w.Radius)

	expected := []struct {
		level  int
		count  int
		damage float64
	}{
		{2, 2, 3},
		{3, 2, 5},
		{4, 3, 5},
		{5, 3, 7},
		{6, 3, 9},
	}
	for _, want := range expected {
		require.NoError(t, c.UpgradeWeapon(entity.WeaponShield))
		assert.Equal(t, want.level, w.Level)
		assert.Equal(t, want.count, w.Count, "level %d", want.level)
		assert.Equal(t, want.damage, w.Damage, "level %d", want.level)
	}
	assert.InDelta(t, 2.7, w.AngularSpeed, 1e-9)
}

func TestZap_ChainSkipsBoss(t *testing.T) {
	c := newTestContext()
	require.NoError(t, c.AcquireWeapon(entity.WeaponElectricBolt))

	placeEnemy(t, c, entity.KindRegular, 1550, 1500, 100, 0)
	placeEnemy(t, c, entity.KindRegular, 1600, 1500, 100, 0)
	placeEnemy(t, c, entity.KindRegular, 1650, 1500, 100, 0)
	placeEnemy(t, c, entity.KindRegular, 1700, 1500, 100, 0)
	boss := placeEnemy(t, c, entity.KindBoss, 1560, 1500, 100, 0)

	c.Zap(3, 0.75)

	events := c.Events.Drain()
	assert.Equal(t, 3, countEvents[ChainZapped](events))
	assert.Equal(t, 3, countEvents[EnemyHit](events))

	b, _ := c.Enemies.Get(boss)
	assert.Equal(t, 100.0, b.Health)
	// (2 weapon damage + 0 base) * 0.75 per strike
	assert.InDelta(t, 4.5, c.TotalDamage, 1e-9)

	var untouched int
	c.Enemies.Each(func(_ entity.Handle, e *entity.Enemy) {
		if e.Health == 100 && e.Kind != entity.KindBoss {
			untouched++
		}
	})
	assert.Equal(t, 1, untouched)
}

func TestZap_ContinuesPastKills(t *testing.T) {
	c := newTestContext()
	kills := 0
	c.OnKill = func(entity.EnemyKind) { kills++ }

	placeEnemy(t, c, entity.KindRegular, 1550, 1500, 1, 0)
	placeEnemy(t, c, entity.KindRegular, 1600, 1500, 1, 0)

	c.Zap(3, 0.75)

	assert.Equal(t, 2, kills)
	assert.Zero(t, c.Enemies.Len())
}

func TestZap_StopsOnceSuspended(t *testing.T) {
	c := newTestContext()
	kills := 0
	c.OnKill = func(entity.EnemyKind) { kills++ }
	c.Suspended = func() bool { return kills > 0 }

	placeEnemy(t, c, entity.KindRegular, 1550, 1500, 1, 0)
	placeEnemy(t, c, entity.KindRegular, 1600, 1500, 1, 0)
	placeEnemy(t, c, entity.KindRegular, 1650, 1500, 1, 0)

	c.Zap(3, 0.75)

	assert.Equal(t, 1, kills)
	assert.Equal(t, 2, c.Enemies.Len())
	assert.Equal(t, 1, countEvents[ChainZapped](c.Events.Drain()))
}

func TestShield_HitCooldown(t *testing.T) {
	c := newTestContext()
	require.NoError(t, c.AcquireWeapon(entity.WeaponShield))
	w, _ := c.Player.Weapon(entity.WeaponShield)
	cfg := c.Config.Weapons["shield"]

	h := placeEnemy(t, c, entity.KindRegular, 1715, 1500, 100, 0)
	e, _ := c.Enemies.Get(h)

	c.SpinShield(cfg, w, 0.01)
	require.Len(t, c.ShieldOrbs, 1)
	assert.Equal(t, 97.0, e.Health)
	assert.InDelta(t, 0.25, e.ShieldCooldown, 1e-9)

	// Still immune
	c.SpinShield(cfg, w, 0.01)
	assert.Equal(t, 97.0, e.Health)

	e.Tick(0.3)
	c.SpinShield(cfg, w, 0.01)
	assert.Equal(t, 94.0, e.Health)
}

func TestShield_OrbsEvenlySpaced(t *testing.T) {
	c := newTestContext()
	require.NoError(t, c.AcquireWeapon(entity.WeaponShield))
	w, _ := c.Player.Weapon(entity.WeaponShield)
	w.Count = 4

	c.SpinShield(c.Config.Weapons["shield"], w, 0)

	require.Len(t, c.ShieldOrbs, 4)
	for _, orb := range c.ShieldOrbs {
		assert.InDelta(t, 215.0, entity.Distance(c.Player.X, c.Player.Y, orb.X, orb.Y), 1e-9)
	}
	assert.InDelta(t, 1715.0, c.ShieldOrbs[0].X, 1e-9)
	assert.InDelta(t, 1715.0, c.ShieldOrbs[1].Y, 1e-9)
}

func TestUpdateWeapons_AutoFireCadence(t *testing.T) {
	c := newTestContext()
	placeEnemy(t, c, entity.KindRegular, 1900, 1500, 1000, 0)

	// 2 shots per second
	for i := 0; i < 61; i++ {
		c.UpdateWeapons(1.0 / 60)
	}

	assert.Equal(t, 2, c.Bullets.Len())
}

func TestWeaponKeys(t *testing.T) {
	keys := WeaponKeys()
	keys[0] = "mutated"

	assert.Equal(t, entity.WeaponAutoBullet, WeaponKeys()[0])
	assert.Len(t, keys, 3)
}
