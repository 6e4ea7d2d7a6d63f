package system

import (
	"math/rand"
	"time"

	"github.com/YanNazzim/bullethell/internal/domain/entity"
	"github.com/YanNazzim/bullethell/internal/infrastructure/config"
)

// OrbPosition is the world position of one shield orb
type OrbPosition struct {
	X, Y float64
}

// Context is the shared simulation state every system operates on.
// It is owned by a single run and touched only from the tick goroutine.
type Context struct {
	Config *config.BalanceConfig
	RNG    *rand.Rand
	Events *EventQueue

	Player      *entity.Player
	Enemies     *entity.Pool[entity.Enemy]
	Bullets     *entity.Pool[entity.Projectile]
	BossBullets *entity.Pool[entity.Projectile]
	Pickups     *entity.Pool[entity.Pickup]

	// Visible area around the player (world units)
	ViewW, ViewH float64

	TotalDamage float64

	// Boss bookkeeping (at most one boss alive)
	Boss       entity.Handle
	BossActive bool
	BossFire   *Timer

	WeaponTimers map[entity.WeaponKey]*Timer
	ShieldOrbs   []OrbPosition

	// Progression hooks
	OnKill        func(kind entity.EnemyKind)
	OnPlayerDeath func()
	// Suspended reports that the run left the active state mid-tick; no
	// further damage may land once it returns true
	Suspended func() bool

	nextID entity.EntityID
}

// NewContext creates a fresh run: player at the map centre holding the
// auto-fire weapon, empty pools sized from config.
func NewContext(cfg *config.BalanceConfig, rng *rand.Rand) *Context {
	p := cfg.Player
	c := &Context{
		Config: cfg,
		RNG:    rng,
		Events: NewEventQueue(),
		Player: entity.NewPlayer(cfg.World.Width/2, cfg.World.Height/2, entity.PlayerStats{
			MaxHealth:  p.MaxHealth,
			MoveSpeed:  p.MoveSpeed,
			BaseDamage: p.BaseDamage,
			CritChance: p.CritChance,
			CritDamage: p.CritDamage,
			Radius:     p.Radius,
		}),
		Enemies:      entity.NewPool[entity.Enemy](cfg.Pools.Enemies),
		Bullets:      entity.NewPool[entity.Projectile](cfg.Pools.Bullets),
		BossBullets:  entity.NewPool[entity.Projectile](cfg.Pools.BossBullets),
		Pickups:      entity.NewPool[entity.Pickup](cfg.Pools.Pickups),
		ViewW:        float64(cfg.Display.ScreenWidth),
		ViewH:        float64(cfg.Display.ScreenHeight),
		Boss:         entity.NilHandle,
		BossFire:     NewTimer(cfg.Boss.FireInterval),
		WeaponTimers: make(map[entity.WeaponKey]*Timer),
	}
	c.BossFire.Stop()

	if err := c.AcquireWeapon(entity.WeaponAutoBullet); err != nil {
		panic("auto-fire weapon missing from weapon table: " + err.Error())
	}
	return c
}

// NextID returns a fresh entity id; ids are never reused within a run
func (c *Context) NextID() entity.EntityID {
	c.nextID++
	return c.nextID
}

func (c *Context) suspended() bool {
	return c.Suspended != nil && c.Suspended()
}

// SetViewport changes the visible area used for targeting
func (c *Context) SetViewport(w, h float64) {
	if w > 0 {
		c.ViewW = w
	}
	if h > 0 {
		c.ViewH = h
	}
}

// VisibleRect returns the on-screen area centred on the player
func (c *Context) VisibleRect() entity.Rect {
	return entity.RectAround(c.Player.X, c.Player.Y, c.ViewW, c.ViewH)
}

// PauseTimers suspends every simulation timer
func (c *Context) PauseTimers() {
	for _, t := range c.WeaponTimers {
		t.Pause()
	}
	c.BossFire.Pause()
}

// ResumeTimers resumes every simulation timer
func (c *Context) ResumeTimers() {
	for _, t := range c.WeaponTimers {
		t.Resume()
	}
	c.BossFire.Resume()
}

// Teardown stops all timers and releases every pooled entity
func (c *Context) Teardown() {
	for _, t := range c.WeaponTimers {
		t.Stop()
	}
	c.BossFire.Stop()
	c.Enemies.Clear()
	c.Bullets.Clear()
	c.BossBullets.Clear()
	c.Pickups.Clear()
	c.ShieldOrbs = c.ShieldOrbs[:0]
	c.Boss = entity.NilHandle
	c.BossActive = false
}

// Snapshot builds the full player-facing state
func (c *Context) Snapshot(elapsed time.Duration) StatsSnapshot {
	p := c.Player
	weapons := make([]WeaponSnapshot, 0, len(p.Owned))
	for _, key := range p.Owned {
		w := p.Weapons[key]
		ws := WeaponSnapshot{
			Key:   key,
			Name:  c.Config.Weapons[string(key)].Name,
			Level: w.Level,
		}
		if t, ok := c.WeaponTimers[key]; ok {
			ws.Charge = t.Progress()
		}
		switch key {
		case entity.WeaponAutoBullet:
			ws.Damage = w.Damage
			ws.AttackSpeed = w.AttackSpeed
		case entity.WeaponElectricBolt:
			ws.AttackSpeed = w.AttackSpeed
		case entity.WeaponShield:
			ws.Damage = w.Damage
			ws.Count = w.Count
		}
		weapons = append(weapons, ws)
	}

	return StatsSnapshot{
		Unit:          p.Level,
		Health:        p.Health,
		MaxHealth:     p.MaxHealth,
		MoveSpeed:     p.MoveSpeed,
		Weapons:       weapons,
		BaseDamage:    p.BaseDamage,
		CritChance:    p.CritChance,
		CritDamage:    p.CritDamage,
		BulletBounces: p.BulletBounces,
		Score:         p.Score,
		Elapsed:       elapsed,
		BossActive:    c.BossActive,
		BossDirection: c.BossDirection(),
	}
}
