package system

import (
	"fmt"
	"math"
	"slices"

	"github.com/YanNazzim/bullethell/internal/domain/entity"
	"github.com/YanNazzim/bullethell/internal/infrastructure/config"
)

// WeaponDef is the strategy for one weapon kind
type WeaponDef struct {
	Key     entity.WeaponKey
	Acquire func(c *Context, cfg config.WeaponConfig, w *entity.WeaponState)
	Upgrade func(c *Context, cfg config.WeaponConfig, w *entity.WeaponState)
	Sync    func(c *Context, w *entity.WeaponState)
	Update  func(c *Context, cfg config.WeaponConfig, w *entity.WeaponState, dt float64)
}

// weaponOrder fixes iteration order over the weapon table
var weaponOrder = []entity.WeaponKey{
	entity.WeaponAutoBullet,
	entity.WeaponElectricBolt,
	entity.WeaponShield,
}

var weaponDefs = map[entity.WeaponKey]WeaponDef{
	entity.WeaponAutoBullet: {
		Key: entity.WeaponAutoBullet,
		Acquire: func(c *Context, cfg config.WeaponConfig, w *entity.WeaponState) {
			w.Damage = cfg.Damage
			w.AttackSpeed = cfg.AttackSpeed
			w.Interval = 1 / w.AttackSpeed
			c.WeaponTimers[entity.WeaponAutoBullet] = NewTimer(w.Interval)
		},
		// Even levels raise fire rate, odd levels raise damage
		Upgrade: func(_ *Context, cfg config.WeaponConfig, w *entity.WeaponState) {
			if w.Level%2 == 0 {
				w.AttackSpeed += cfg.AttackSpeedStep
				w.Interval = 1 / w.AttackSpeed
			} else {
				w.Damage += cfg.DamageStep
			}
		},
		Sync: func(c *Context, w *entity.WeaponState) {
			c.Player.WeaponDamage = w.Damage
			c.WeaponTimers[entity.WeaponAutoBullet].SetInterval(w.Interval)
		},
		Update: func(c *Context, _ config.WeaponConfig, _ *entity.WeaponState, dt float64) {
			for range c.WeaponTimers[entity.WeaponAutoBullet].Advance(dt) {
				if c.suspended() {
					return
				}
				c.FireBullet()
			}
		},
	},
	entity.WeaponElectricBolt: {
		Key: entity.WeaponElectricBolt,
		Acquire: func(c *Context, cfg config.WeaponConfig, w *entity.WeaponState) {
			w.Interval = cfg.Interval
			w.AttackSpeed = 1 / w.Interval
			c.WeaponTimers[entity.WeaponElectricBolt] = NewTimer(w.Interval)
		},
		Upgrade: func(_ *Context, cfg config.WeaponConfig, w *entity.WeaponState) {
			w.Interval = math.Max(cfg.MinInterval, w.Interval-cfg.IntervalStep)
			w.AttackSpeed = 1 / w.Interval
		},
		Sync: func(c *Context, w *entity.WeaponState) {
			c.WeaponTimers[entity.WeaponElectricBolt].SetInterval(w.Interval)
		},
		Update: func(c *Context, cfg config.WeaponConfig, _ *entity.WeaponState, dt float64) {
			for range c.WeaponTimers[entity.WeaponElectricBolt].Advance(dt) {
				if c.suspended() {
					return
				}
				c.Zap(cfg.Chain, cfg.DamageRatio)
			}
		},
	},
	entity.WeaponShield: {
		Key: entity.WeaponShield,
		Acquire: func(_ *Context, cfg config.WeaponConfig, w *entity.WeaponState) {
			w.Damage = cfg.Damage
			w.Count = cfg.Count
			w.Radius = cfg.Radius
			w.AngularSpeed = cfg.AngularSpeed
			w.Angle = 0
		},
		Upgrade: func(_ *Context, cfg config.WeaponConfig, w *entity.WeaponState) {
			if slices.Contains(cfg.OrbLevels, w.Level) {
				w.Count++
			} else {
				w.Damage += cfg.DamageStep
			}
			w.AngularSpeed += cfg.AngularSpeedStep
		},
		Sync: func(*Context, *entity.WeaponState) {},
		Update: func(c *Context, cfg config.WeaponConfig, w *entity.WeaponState, dt float64) {
			c.SpinShield(cfg, w, dt)
		},
	},
}

// WeaponKeys returns the weapon keys in table order
func WeaponKeys() []entity.WeaponKey {
	return slices.Clone(weaponOrder)
}

// AcquireWeapon adds a weapon at level 1. Unknown keys and weapons already
// owned are rejected.
func (c *Context) AcquireWeapon(key entity.WeaponKey) error {
	def, ok := weaponDefs[key]
	if !ok {
		return fmt.Errorf("weapon %q: %w", key, ErrUnknownUpgrade)
	}
	if c.Player.Owns(key) {
		return fmt.Errorf("weapon %q already owned: %w", key, ErrStaleUpgrade)
	}

	cfg := c.Config.Weapons[string(key)]
	w := &entity.WeaponState{Level: 1}
	def.Acquire(c, cfg, w)
	c.Player.AddWeapon(key, w)
	def.Sync(c, w)
	return nil
}

// UpgradeWeapon raises an owned weapon by one level up to its cap
func (c *Context) UpgradeWeapon(key entity.WeaponKey) error {
	def, ok := weaponDefs[key]
	if !ok {
		return fmt.Errorf("weapon %q: %w", key, ErrUnknownUpgrade)
	}
	w, ok := c.Player.Weapon(key)
	if !ok {
		return fmt.Errorf("weapon %q not owned: %w", key, ErrStaleUpgrade)
	}

	cfg := c.Config.Weapons[string(key)]
	if w.Level >= cfg.MaxLevel {
		return fmt.Errorf("weapon %q at max level %d: %w", key, cfg.MaxLevel, ErrStaleUpgrade)
	}

	w.Level++
	def.Upgrade(c, cfg, w)
	def.Sync(c, w)
	return nil
}

// UpdateWeapons runs every owned weapon in acquisition order
func (c *Context) UpdateWeapons(dt float64) {
	for _, key := range c.Player.Owned {
		if c.suspended() {
			return
		}
		def := weaponDefs[key]
		def.Update(c, c.Config.Weapons[string(key)], c.Player.Weapons[key], dt)
	}
}

// Zap fires one chain-lightning pulse: the nearest visible enemy, then the
// nearest not-yet-struck enemy from there, up to chain strikes in total.
// Each strike rolls its own crit. The chain stops early if the run is
// suspended by one of its kills.
func (c *Context) Zap(chain int, ratio float64) {
	p := c.Player
	h, e, ok := c.FindNearest(p.X, p.Y, nil)
	if !ok {
		return
	}

	base := (p.WeaponDamage + p.BaseDamage) * ratio
	zapped := make([]entity.Handle, 0, chain)
	fromX, fromY := p.X, p.Y

	for i := 0; i < chain && ok && !c.suspended(); i++ {
		x, y := e.X, e.Y
		zapped = append(zapped, h)

		isCrit := c.RollCrit()
		c.Events.Push(ChainZapped{FromX: fromX, FromY: fromY, ToX: x, ToY: y, Crit: isCrit})
		c.ApplyDamage(h, base, isCrit)

		fromX, fromY = x, y
		h, e, ok = c.FindNearestAnywhere(x, y, zapped)
	}
}

// SpinShield advances the orbit and damages every enemy an orb touches.
// A struck enemy is immune to orbs for the configured cooldown.
func (c *Context) SpinShield(cfg config.WeaponConfig, w *entity.WeaponState, dt float64) {
	p := c.Player
	w.Angle = math.Mod(w.Angle+w.AngularSpeed*dt, 2*math.Pi)

	c.ShieldOrbs = c.ShieldOrbs[:0]
	for i := 0; i < w.Count; i++ {
		a := w.Angle + 2*math.Pi*float64(i)/float64(w.Count)
		c.ShieldOrbs = append(c.ShieldOrbs, OrbPosition{
			X: p.X + math.Cos(a)*w.Radius,
			Y: p.Y + math.Sin(a)*w.Radius,
		})
	}

	for _, orb := range c.ShieldOrbs {
		c.Enemies.Each(func(h entity.Handle, e *entity.Enemy) {
			if !e.Alive || e.ShieldCooldown > 0 || c.suspended() {
				return
			}
			if !entity.CirclesOverlap(orb.X, orb.Y, cfg.OrbRadius, e.X, e.Y, e.Radius) {
				return
			}
			e.ShieldCooldown = cfg.HitCooldown
			isCrit := c.RollCrit()
			c.ApplyDamage(h, w.Damage+p.BaseDamage, isCrit)
		})
	}
}
