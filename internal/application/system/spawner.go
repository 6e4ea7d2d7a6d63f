package system

import (
	"math"

	"github.com/YanNazzim/bullethell/internal/domain/entity"
	"github.com/YanNazzim/bullethell/internal/infrastructure/config"
)

// SpawnChance evaluates min(Max, Base + PerUnit*unit), or 0 before FromUnit
func SpawnChance(cc config.ChanceConfig, unit int) float64 {
	if unit < cc.FromUnit {
		return 0
	}
	return math.Min(cc.Max, cc.Base+cc.PerUnit*float64(unit))
}

// RandomSpawnPoint samples a map position at least minDist from the player.
// Sampling is bounded; when every attempt lands too close the map corner
// farthest from the player is used.
func (c *Context) RandomSpawnPoint(minDist float64) (x, y float64) {
	w, h := c.Config.World.Width, c.Config.World.Height
	px, py := c.Player.X, c.Player.Y

	for i := 0; i < c.Config.Spawn.Attempts; i++ {
		x = c.RNG.Float64() * w
		y = c.RNG.Float64() * h
		if entity.Distance(x, y, px, py) >= minDist {
			return x, y
		}
	}

	x, y = 0, 0
	best := -1.0
	for _, corner := range [][2]float64{{0, 0}, {w, 0}, {0, h}, {w, h}} {
		if d := entity.Distance(corner[0], corner[1], px, py); d > best {
			best = d
			x, y = corner[0], corner[1]
		}
	}
	return x, y
}

// CountKind returns the number of live enemies of the given kind
func (c *Context) CountKind(kind entity.EnemyKind) int {
	n := 0
	c.Enemies.Each(func(_ entity.Handle, e *entity.Enemy) {
		if e.Alive && e.Kind == kind {
			n++
		}
	})
	return n
}

// ClassifyEnemy picks boomerang, elite or regular for one spawn.
// Boomerangs are limited to MaxBoomerangs alive at once.
func (c *Context) ClassifyEnemy(unit int, elite config.ChanceConfig) entity.EnemyKind {
	sc := c.Config.Spawn

	if unit >= sc.Boomerang.FromUnit {
		if c.RNG.Float64() < SpawnChance(sc.Boomerang, unit) && c.CountKind(entity.KindBoomerang) < sc.MaxBoomerangs {
			return entity.KindBoomerang
		}
	}
	if unit >= elite.FromUnit {
		if c.RNG.Float64() < SpawnChance(elite, unit) {
			return entity.KindElite
		}
	}
	return entity.KindRegular
}

// EnemyStatsFor scales a non-boss kind's base stats to the unit
func (c *Context) EnemyStatsFor(kind entity.EnemyKind, unit int) entity.EnemyStats {
	if kind == entity.KindBoss {
		return c.BossStatsFor(unit)
	}

	ec := c.Config.Enemies[kind.String()]
	bonus := float64(max(unit-1, 0))

	health := math.Max(ec.Health, math.Floor(ec.Health*(1+bonus*ec.HealthScale)))

	speedCap := ec.SpeedCap
	if speedCap == 0 {
		speedCap = c.Player.MoveSpeed
	}
	speed := math.Min(speedCap, ec.Speed+bonus*ec.SpeedPerUnit)

	return entity.EnemyStats{
		Health:        health,
		Armor:         math.Floor(health * ec.ArmorRatio),
		MoveSpeed:     speed,
		ContactDamage: ec.ContactDamage,
		Radius:        ec.Radius,
	}
}

// BossStatsFor scales the boss to the wave. The tier multiplier is
// floor(wave / interval), never below 1.
func (c *Context) BossStatsFor(unit int) entity.EnemyStats {
	bc := c.Config.Boss
	tier := float64(max(unit/bc.Interval, 1))
	bonus := float64(max(unit-1, 0))

	base := bc.BaseHealth * tier
	health := math.Max(base, math.Floor(base*(1+bonus*bc.HealthScale)))

	return entity.EnemyStats{
		Health:        health,
		Armor:         math.Floor(health * (bc.ArmorBase + bc.ArmorPerTier*tier)),
		MoveSpeed:     0,
		ContactDamage: bc.ContactDamage + bonus*bc.ContactPerUnit,
		Radius:        bc.Radius,
	}
}

// SpawnEnemy places one enemy of the given kind scaled to unit.
// Returns ok=false when the enemy pool is full.
func (c *Context) SpawnEnemy(kind entity.EnemyKind, x, y float64, unit int) (entity.Handle, bool) {
	h, e, ok := c.Enemies.Acquire()
	if !ok {
		return entity.NilHandle, false
	}
	e.Spawn(c.NextID(), kind, x, y, c.EnemyStatsFor(kind, unit))
	return h, true
}

// SpawnRandom classifies and spawns one enemy at a valid spawn point
func (c *Context) SpawnRandom(unit int, elite config.ChanceConfig) (entity.Handle, bool) {
	x, y := c.RandomSpawnPoint(c.Config.Spawn.MinDistance)
	kind := c.ClassifyEnemy(unit, elite)
	return c.SpawnEnemy(kind, x, y, unit)
}

// SpawnBoss places the single boss far from the player and starts its fire
// timer. Refused while a boss is alive.
func (c *Context) SpawnBoss(unit int) (entity.Handle, bool) {
	if c.BossActive {
		return entity.NilHandle, false
	}

	x, y := c.RandomSpawnPoint(c.Config.Boss.SpawnDistance)
	h, ok := c.SpawnEnemy(entity.KindBoss, x, y, unit)
	if !ok {
		return entity.NilHandle, false
	}

	c.Boss = h
	c.BossActive = true
	c.BossFire.Reset(c.Config.Boss.FireInterval)
	return h, true
}
