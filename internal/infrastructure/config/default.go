package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned by Validate for out-of-range values
var ErrInvalidConfig = errors.New("invalid config")

// Default returns the built-in balance. It matches the shipped
// cmd/bullethell/configs/balance.json.
func Default() *GameConfig {
	return &GameConfig{Balance: &BalanceConfig{
		Display: DisplayConfig{ScreenWidth: 1100, ScreenHeight: 1450, WindowScale: 0.5, Framerate: 60},
		World:   WorldConfig{Width: 3000, Height: 3000},
		Player: PlayerConfig{
			MaxHealth:     10,
			MoveSpeed:     200,
			CritDamage:    1.5,
			Radius:        25,
			InvulnSeconds: 1,
		},
		Pools: PoolConfig{Enemies: 150, Bullets: 30, BossBullets: 10, Pickups: 150},
		Projectiles: map[string]ProjectileConfig{
			ProjectileBullet:     {Speed: 600, TTL: 4, Radius: 6},
			ProjectileBossBullet: {Speed: 500, TTL: 4, Radius: 10},
		},
		Enemies: map[string]EnemyConfig{
			EnemyRegular: {
				Health: 3, HealthScale: 0.15,
				Speed: 150, SpeedPerUnit: 3,
				ContactDamage: 1, Radius: 20,
			},
			EnemyBoomerang: {
				Health: 12, HealthScale: 0.15,
				Speed: 160, SpeedPerUnit: 4, SpeedCap: 250,
				ContactDamage: 2, Radius: 22,
			},
			EnemyElite: {
				Health: 25, HealthScale: 0.25,
				Speed: 140, SpeedPerUnit: 3, SpeedCap: 100,
				ContactDamage: 3, ArmorRatio: 0.5, Radius: 28,
			},
		},
		Boss: BossConfig{
			Interval:        30,
			BaseHealth:      150,
			HealthScale:     0.2,
			ArmorBase:       0.5,
			ArmorPerTier:    0.1,
			ContactDamage:   5,
			ContactPerUnit:  0.5,
			Radius:          60,
			FireInterval:    1.5,
			SpawnDistance:   1500,
			OffscreenMargin: 50,
		},
		Spawn: SpawnConfig{
			MinDistance:   500,
			Attempts:      32,
			Boomerang:     ChanceConfig{FromUnit: 2, Base: 0.1, PerUnit: 0.002, Max: 0.25},
			MaxBoomerangs: 3,
			WaveElite:     ChanceConfig{FromUnit: 6, Base: 0.05, PerUnit: 0.005, Max: 0.35},
			ChaosElite:    ChanceConfig{FromUnit: 5, Base: 0.05, PerUnit: 0.005, Max: 0.35},
		},
		Wave:  WaveConfig{BaseSize: 5, SizePerWave: 2},
		Chaos: ChaosConfig{BaseInterval: 1.0, IntervalStep: 0.02, MinInterval: 0.2, EnemyCap: 150, KillsBase: 4},
		Weapons: map[string]WeaponConfig{
			"autoBullet": {
				Name:            "Auto-Bullet",
				Description:     "Fires projectiles at the nearest enemy.",
				Image:           "laser.png",
				MaxLevel:        10,
				Damage:          2,
				DamageStep:      0.5,
				AttackSpeed:     2,
				AttackSpeedStep: 0.2,
			},
			"electricBolt": {
				Name:         "Electric Bolt",
				Description:  "Zaps nearby enemies. Upgrades reduce cooldown.",
				Image:        "icon_bolt.png",
				MaxLevel:     8,
				Interval:     1.0,
				IntervalStep: 0.05,
				MinInterval:  0.2,
				Chain:        3,
				DamageRatio:  0.75,
			},
			"shield": {
				Name:             "Spinning Orbs",
				Description:      "Orbs circle the player, damaging enemies. Upgrades add orbs or damage.",
				Image:            "icon_shield.png",
				MaxLevel:         6,
				Damage:           3,
				DamageStep:       2,
				Count:            1,
				OrbLevels:        []int{2, 4},
				Radius:           215,
				OrbRadius:        25,
				AngularSpeed:     1.2,
				AngularSpeedStep: 0.3,
				HitCooldown:      0.25,
			},
		},
		Stats: StatConfig{
			MaxHealthStep:      1,
			MoveSpeedStep:      10,
			DamageStep:         1,
			CritChanceStep:     0.05,
			CritChanceMaxPicks: 20,
			CritDamageStep:     0.5,
			BounceStep:         1,
		},
		Pickup:   PickupConfig{Value: 1, TTL: 5, HomingSpeed: 350, Radius: 8},
		Feedback: FeedbackConfig{HitFlash: 0.05},
	}}
}

// Validate rejects configurations the simulation cannot run with
func (c *GameConfig) Validate() error {
	if c == nil || c.Balance == nil {
		return fmt.Errorf("missing balance: %w", ErrInvalidConfig)
	}
	b := c.Balance

	if b.World.Width <= 0 || b.World.Height <= 0 {
		return fmt.Errorf("world size %vx%v: %w", b.World.Width, b.World.Height, ErrInvalidConfig)
	}
	if b.Pools.Enemies <= 0 || b.Pools.Bullets <= 0 || b.Pools.BossBullets <= 0 || b.Pools.Pickups <= 0 {
		return fmt.Errorf("pool capacities must be positive: %w", ErrInvalidConfig)
	}
	if b.Player.MaxHealth <= 0 {
		return fmt.Errorf("player maxHealth %v: %w", b.Player.MaxHealth, ErrInvalidConfig)
	}
	for _, key := range []string{ProjectileBullet, ProjectileBossBullet} {
		p, ok := b.Projectiles[key]
		if !ok || p.Speed <= 0 || p.TTL <= 0 {
			return fmt.Errorf("projectile %q: %w", key, ErrInvalidConfig)
		}
	}
	for _, key := range []string{EnemyRegular, EnemyBoomerang, EnemyElite} {
		e, ok := b.Enemies[key]
		if !ok || e.Health <= 0 {
			return fmt.Errorf("enemy %q: %w", key, ErrInvalidConfig)
		}
	}
	if b.Boss.Interval <= 0 || b.Boss.FireInterval <= 0 {
		return fmt.Errorf("boss intervals must be positive: %w", ErrInvalidConfig)
	}
	if b.Chaos.MinInterval <= 0 || b.Chaos.BaseInterval < b.Chaos.MinInterval {
		return fmt.Errorf("chaos interval %v (min %v): %w", b.Chaos.BaseInterval, b.Chaos.MinInterval, ErrInvalidConfig)
	}
	if b.Spawn.Attempts <= 0 {
		return fmt.Errorf("spawn attempts %d: %w", b.Spawn.Attempts, ErrInvalidConfig)
	}
	// Every weapon can be offered, so each needs an entry
	for _, key := range []string{WeaponAutoBullet, WeaponElectricBolt, WeaponShield} {
		w, ok := b.Weapons[key]
		if !ok || w.MaxLevel <= 0 {
			return fmt.Errorf("weapon %q: %w", key, ErrInvalidConfig)
		}
	}
	if w := b.Weapons[WeaponAutoBullet]; w.AttackSpeed <= 0 {
		return fmt.Errorf("weapon %q attackSpeed %v: %w", WeaponAutoBullet, w.AttackSpeed, ErrInvalidConfig)
	}
	if w := b.Weapons[WeaponElectricBolt]; w.Interval <= 0 || w.MinInterval <= 0 {
		return fmt.Errorf("weapon %q interval %v (min %v): %w", WeaponElectricBolt, w.Interval, w.MinInterval, ErrInvalidConfig)
	}
	return nil
}
