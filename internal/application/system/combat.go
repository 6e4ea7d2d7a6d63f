package system

import (
	"github.com/YanNazzim/bullethell/internal/domain/entity"
	"github.com/YanNazzim/bullethell/internal/infrastructure/config"
)

// RollCrit performs one crit roll for a damage-causing action
func (c *Context) RollCrit() bool {
	return c.RNG.Float64() < c.Player.CritChance
}

// CritScale applies the crit multiplier to pre-armor damage
func (c *Context) CritScale(base float64, isCrit bool) float64 {
	if isCrit {
		return base * c.Player.CritDamage
	}
	return base
}

// ApplyDamage resolves raw damage against the enemy behind h.
// Armor absorbs first, then health. On death the enemy drops an orb, its
// slot is released and progression is notified, exactly once.
func (c *Context) ApplyDamage(h entity.Handle, raw float64, isCrit bool) (died bool, dealt float64) {
	e, ok := c.Enemies.Get(h)
	if !ok || !e.Alive {
		return false, 0
	}

	died, dealt = e.TakeDamage(c.CritScale(raw, isCrit))
	c.TotalDamage += dealt

	if died {
		c.killEnemy(h, e)
		return true, dealt
	}

	e.HitFlash = c.Config.Feedback.HitFlash
	e.HitCrit = isCrit
	c.Events.Push(EnemyHit{ID: e.ID, Crit: isCrit})
	return false, dealt
}

func (c *Context) killEnemy(h entity.Handle, e *entity.Enemy) {
	kind := e.Kind
	x, y := e.X, e.Y

	if c.BossActive && h == c.Boss {
		c.BossActive = false
		c.Boss = entity.NilHandle
		c.BossFire.Stop()
	}

	c.Enemies.Release(h)
	c.DropPickup(x, y)

	if c.OnKill != nil {
		c.OnKill(kind)
	}
}

// DropPickup spawns an experience orb; dropped silently when the pool is full
func (c *Context) DropPickup(x, y float64) {
	_, pk, ok := c.Pickups.Acquire()
	if !ok {
		return
	}
	cfg := c.Config.Pickup
	pk.Drop(x, y, cfg.Value, cfg.TTL)
}

// DamagePlayer applies damage to the player unless invulnerable.
// Reaching zero health triggers the death hook once; surviving grants a
// short invulnerability window.
func (c *Context) DamagePlayer(amount float64) {
	p := c.Player
	if p.Invulnerable || !p.IsAlive() || amount <= 0 {
		return
	}

	p.Health = max(0, p.Health-amount)
	c.Events.Push(HealthChanged{Health: p.Health, Max: p.MaxHealth})

	if p.Health <= 0 {
		if c.OnPlayerDeath != nil {
			c.OnPlayerDeath()
		}
		return
	}
	p.SetInvulnerable(c.Config.Player.InvulnSeconds)
}

// FireBullet shoots one auto-fire bullet at the nearest visible target
func (c *Context) FireBullet() {
	p := c.Player
	_, target, ok := c.FindNearest(p.X, p.Y, nil)
	if !ok {
		return
	}

	_, b, ok := c.Bullets.Acquire()
	if !ok {
		return
	}

	cfg := c.Config.Projectiles[config.ProjectileBullet]
	b.Fire(entity.OwnerPlayer, p.X, p.Y, entity.Angle(p.X, p.Y, target.X, target.Y), cfg.Speed, cfg.TTL, cfg.Radius)
	b.BouncesLeft = p.BulletBounces
}

// UpdateBullets moves player bullets and resolves their hits.
// Each bullet lands at most one hit per tick; after a hit it either bounces
// to the nearest target not yet hit or retires.
func (c *Context) UpdateBullets(dt float64) {
	c.Bullets.Each(func(bh entity.Handle, b *entity.Projectile) {
		if c.suspended() {
			return
		}
		if b.Advance(dt) {
			c.Bullets.Release(bh)
			return
		}

		eh, _, ok := c.firstOverlap(b)
		if !ok {
			return
		}

		b.MarkHit(eh)
		isCrit := c.RollCrit()
		c.ApplyDamage(eh, c.Player.WeaponDamage+c.Player.BaseDamage, isCrit)

		if b.BouncesLeft <= 0 {
			c.Bullets.Release(bh)
			return
		}
		b.BouncesLeft--
		_, next, found := c.FindNearest(b.X, b.Y, b.Hit)
		if !found {
			c.Bullets.Release(bh)
			return
		}
		b.Redirect(next.X, next.Y)
	})
}

// firstOverlap returns the first live enemy (slot order) touching the
// bullet that the bullet has not already hit
func (c *Context) firstOverlap(b *entity.Projectile) (entity.Handle, *entity.Enemy, bool) {
	hit := entity.NilHandle
	var found *entity.Enemy
	c.Enemies.Each(func(h entity.Handle, e *entity.Enemy) {
		if found != nil || !e.Alive || b.HasHit(h) {
			return
		}
		if entity.CirclesOverlap(b.X, b.Y, b.Radius, e.X, e.Y, e.Radius) {
			hit = h
			found = e
		}
	})
	return hit, found, found != nil
}

// FireBossBullets advances the boss fire timer and shoots at the player
func (c *Context) FireBossBullets(dt float64) {
	if !c.BossActive {
		return
	}
	boss, ok := c.Enemies.Get(c.Boss)
	if !ok {
		return
	}

	cfg := c.Config.Projectiles[config.ProjectileBossBullet]
	p := c.Player
	for range c.BossFire.Advance(dt) {
		if c.suspended() {
			return
		}
		_, b, ok := c.BossBullets.Acquire()
		if !ok {
			return
		}
		b.Fire(entity.OwnerBoss, boss.X, boss.Y, entity.Angle(boss.X, boss.Y, p.X, p.Y), cfg.Speed, cfg.TTL, cfg.Radius)
		b.Damage = boss.ContactDamage
	}
}

// UpdateBossBullets moves boss bullets; a bullet touching a vulnerable
// player deals its damage and retires
func (c *Context) UpdateBossBullets(dt float64) {
	p := c.Player
	c.BossBullets.Each(func(h entity.Handle, b *entity.Projectile) {
		if c.suspended() {
			return
		}
		if b.Advance(dt) {
			c.BossBullets.Release(h)
			return
		}
		if p.Invulnerable || !p.IsAlive() {
			return
		}
		if entity.CirclesOverlap(b.X, b.Y, b.Radius, p.X, p.Y, p.Radius) {
			c.DamagePlayer(b.Damage)
			c.BossBullets.Release(h)
		}
	})
}

// ApplyContactDamage hurts the player for every enemy touching it.
// The invulnerability window after the first hit absorbs the rest.
func (c *Context) ApplyContactDamage() {
	p := c.Player
	c.Enemies.Each(func(_ entity.Handle, e *entity.Enemy) {
		if !e.Alive || p.Invulnerable || !p.IsAlive() || c.suspended() {
			return
		}
		if entity.CirclesOverlap(p.X, p.Y, p.Radius, e.X, e.Y, e.Radius) {
			c.DamagePlayer(e.ContactDamage)
		}
	})
}
