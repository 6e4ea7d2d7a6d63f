package entity

// EnemyKind is the closed set of hostile entity variants
type EnemyKind int

const (
	KindRegular EnemyKind = iota
	KindElite
	KindBoomerang
	KindBoss
)

// String returns the string representation of the enemy kind
func (k EnemyKind) String() string {
	switch k {
	case KindRegular:
		return "regular"
	case KindElite:
		return "elite"
	case KindBoomerang:
		return "boomerang"
	case KindBoss:
		return "boss"
	default:
		return "unknown"
	}
}

// HasArmor returns true for kinds that carry a depletable armor pool
func (k EnemyKind) HasArmor() bool {
	return k == KindElite || k == KindBoss
}

// EnemyStats holds the strength an enemy is spawned with
type EnemyStats struct {
	Health        float64
	Armor         float64
	MoveSpeed     float64
	ContactDamage float64
	Radius        float64
}

// Enemy represents a hostile entity occupying a pool slot
type Enemy struct {
	ID     EntityID
	Kind   EnemyKind
	X, Y   float64
	VX, VY float64
	Alive  bool

	// Properties
	MaxHealth     float64
	Health        float64
	MaxArmor      float64
	Armor         float64
	MoveSpeed     float64
	ContactDamage float64
	Radius        float64

	// Timers (seconds)
	HitFlash       float64
	HitCrit        bool
	ShieldCooldown float64
}

// Spawn initializes every field of a (possibly recycled) enemy slot
func (e *Enemy) Spawn(id EntityID, kind EnemyKind, x, y float64, stats EnemyStats) {
	armor := 0.0
	if kind.HasArmor() {
		armor = stats.Armor
	}
	*e = Enemy{
		ID:            id,
		Kind:          kind,
		X:             x,
		Y:             y,
		Alive:         true,
		MaxHealth:     stats.Health,
		Health:        stats.Health,
		MaxArmor:      armor,
		Armor:         armor,
		MoveSpeed:     stats.MoveSpeed,
		ContactDamage: stats.ContactDamage,
		Radius:        stats.Radius,
	}
}

// TakeDamage absorbs amount into armor first, then health.
// died is true only on the call that takes health to zero; dealt is the
// total removed from both pools.
func (e *Enemy) TakeDamage(amount float64) (died bool, dealt float64) {
	if !e.Alive || amount <= 0 {
		return false, 0
	}

	remaining := amount
	if e.Kind.HasArmor() && e.Armor > 0 {
		toArmor := min(remaining, e.Armor)
		e.Armor -= toArmor
		remaining -= toArmor
		dealt += toArmor
	}

	if remaining > 0 {
		toHealth := min(remaining, e.Health)
		e.Health -= toHealth
		dealt += toHealth
	}

	if e.Health <= 0 {
		e.Health = 0
		e.Alive = false
		return true, dealt
	}
	return false, dealt
}

// IsAlive returns true if enemy is still alive
func (e *Enemy) IsAlive() bool {
	return e.Alive && e.Health > 0
}

// Chase sets the velocity intent toward (tx, ty) at MoveSpeed
func (e *Enemy) Chase(tx, ty float64) {
	dx := tx - e.X
	dy := ty - e.Y
	dist := Distance(e.X, e.Y, tx, ty)
	if dist < 1e-9 || e.MoveSpeed <= 0 {
		e.VX, e.VY = 0, 0
		return
	}
	e.VX = dx / dist * e.MoveSpeed
	e.VY = dy / dist * e.MoveSpeed
}

// Move applies the velocity intent for dt seconds
func (e *Enemy) Move(dt float64) {
	e.X += e.VX * dt
	e.Y += e.VY * dt
}

// Tick decays the per-enemy timers
func (e *Enemy) Tick(dt float64) {
	if e.HitFlash > 0 {
		e.HitFlash -= dt
		if e.HitFlash < 0 {
			e.HitFlash = 0
			e.HitCrit = false
		}
	}
	if e.ShieldCooldown > 0 {
		e.ShieldCooldown -= dt
		if e.ShieldCooldown < 0 {
			e.ShieldCooldown = 0
		}
	}
}
