package system

import "github.com/YanNazzim/bullethell/internal/domain/entity"

// MovePlayer applies the movement intent and counts down invulnerability
func (c *Context) MovePlayer(ix, iy, dt float64) {
	p := c.Player
	p.Move(ix, iy, dt, c.Config.World.Width, c.Config.World.Height)
	p.TickInvulnerability(dt)
}

// UpdateEnemies steers every live enemy toward the player and decays their
// per-slot timers. The boss holds position.
func (c *Context) UpdateEnemies(dt float64) {
	p := c.Player
	c.Enemies.Each(func(_ entity.Handle, e *entity.Enemy) {
		if !e.Alive {
			return
		}
		e.Tick(dt)
		if e.Kind == entity.KindBoss {
			e.VX, e.VY = 0, 0
			return
		}
		e.Chase(p.X, p.Y)
		e.Move(dt)
	})
}

// UpdatePickups homes orbs toward the player, collecting those that reach
// it and dropping those that expire
func (c *Context) UpdatePickups(dt float64) {
	p := c.Player
	cfg := c.Config.Pickup
	c.Pickups.Each(func(h entity.Handle, pk *entity.Pickup) {
		expired := pk.Home(p.X, p.Y, cfg.HomingSpeed, dt)
		if entity.CirclesOverlap(pk.X, pk.Y, cfg.Radius, p.X, p.Y, p.Radius) {
			p.Pickups += pk.Value
			c.Events.Push(PickupCollected{Value: pk.Value, Total: p.Pickups})
			c.Pickups.Release(h)
			return
		}
		if expired {
			c.Pickups.Release(h)
		}
	})
}
