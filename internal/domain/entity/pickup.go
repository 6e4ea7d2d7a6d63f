package entity

// Pickup is an experience orb dropped by a dead enemy
type Pickup struct {
	X, Y  float64
	Value int
	TTL   float64
}

// Drop places the orb at (x, y) with the given lifetime
func (p *Pickup) Drop(x, y float64, value int, ttl float64) {
	p.X = x
	p.Y = y
	p.Value = value
	p.TTL = ttl
}

// Home moves the orb toward (tx, ty) by speed*dt without overshooting
// and decrements its lifetime. Returns true once the orb has expired.
func (p *Pickup) Home(tx, ty, speed, dt float64) (expired bool) {
	dist := Distance(p.X, p.Y, tx, ty)
	step := speed * dt
	if dist <= step || dist < 1e-9 {
		p.X, p.Y = tx, ty
	} else {
		p.X += (tx - p.X) / dist * step
		p.Y += (ty - p.Y) / dist * step
	}
	p.TTL -= dt
	return p.TTL <= 0
}
