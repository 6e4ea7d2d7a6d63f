package entity

import "math"

// Owner identifies who fired a projectile
type Owner int

const (
	OwnerPlayer Owner = iota
	OwnerBoss
)

// Projectile represents a bullet in flight (player or boss)
type Projectile struct {
	Owner  Owner
	X, Y   float64
	VX, VY float64
	Speed  float64
	Radius float64
	TTL    float64 // Seconds left before expiry
	Active bool

	// Boss bullets carry their own damage; player bullets use the player's stats
	Damage float64

	// Bounce state (player bullets only)
	BouncesLeft int
	Hit         []Handle
}

// Fire resets the projectile for a new shot from (x, y) toward angle (radians).
// The hit-set is cleared so a recycled bullet never remembers prior targets.
func (p *Projectile) Fire(owner Owner, x, y, angle, speed, ttl, radius float64) {
	p.Owner = owner
	p.X = x
	p.Y = y
	p.Speed = speed
	p.VX = math.Cos(angle) * speed
	p.VY = math.Sin(angle) * speed
	p.TTL = ttl
	p.Radius = radius
	p.Active = true
	p.Damage = 0
	p.BouncesLeft = 0
	p.Hit = p.Hit[:0]
}

// HasHit reports whether the enemy is already in the hit-set
func (p *Projectile) HasHit(h Handle) bool {
	for _, seen := range p.Hit {
		if seen == h {
			return true
		}
	}
	return false
}

// MarkHit records the enemy in the hit-set (once)
func (p *Projectile) MarkHit(h Handle) {
	if p.HasHit(h) {
		return
	}
	p.Hit = append(p.Hit, h)
}

// Redirect points the projectile at (tx, ty) keeping its speed
func (p *Projectile) Redirect(tx, ty float64) {
	angle := Angle(p.X, p.Y, tx, ty)
	p.VX = math.Cos(angle) * p.Speed
	p.VY = math.Sin(angle) * p.Speed
}

// Advance moves the projectile and reports whether its lifetime ran out
func (p *Projectile) Advance(dt float64) (expired bool) {
	if !p.Active {
		return false
	}
	p.X += p.VX * dt
	p.Y += p.VY * dt
	p.TTL -= dt
	if p.TTL <= 0 {
		p.Active = false
		return true
	}
	return false
}

// Rotation returns the heading angle in radians (for rendering)
func (p *Projectile) Rotation() float64 {
	return math.Atan2(p.VY, p.VX)
}
