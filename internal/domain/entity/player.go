package entity

// WeaponKey identifies a weapon in the weapon table
type WeaponKey string

const (
	WeaponAutoBullet   WeaponKey = "autoBullet"
	WeaponElectricBolt WeaponKey = "electricBolt"
	WeaponShield       WeaponKey = "shield"
)

// StatKey identifies a stat upgrade
type StatKey string

const (
	StatMaxHealth     StatKey = "max_health"
	StatRestoreHealth StatKey = "restore_health"
	StatMoveSpeed     StatKey = "moveSpeed"
	StatPlayerDamage  StatKey = "playerDamage"
	StatCritChance    StatKey = "critChance"
	StatCritDamage    StatKey = "critDamage"
	StatBulletBounce  StatKey = "bulletBounce"
)

// WeaponState holds the per-weapon stats of an owned weapon.
// Not every field is meaningful for every weapon.
type WeaponState struct {
	Level        int
	Damage       float64
	AttackSpeed  float64 // Shots per second (autoBullet)
	Interval     float64 // Seconds between activations
	Count        int     // Orb count (shield)
	Radius       float64 // Orbit radius (shield)
	AngularSpeed float64 // Radians per second (shield)
	Angle        float64 // Current orbit phase (shield)
}

// PlayerStats holds the starting values of a run
type PlayerStats struct {
	MaxHealth  float64
	MoveSpeed  float64
	BaseDamage float64
	CritChance float64
	CritDamage float64
	Radius     float64
}

// Player is the player-controlled entity and its persistent run inventory
type Player struct {
	X, Y   float64
	Radius float64

	Health    float64
	MaxHealth float64
	MoveSpeed float64

	// Damage
	BaseDamage    float64
	WeaponDamage  float64 // Mirrors the auto-fire weapon's damage
	CritChance    float64 // 0..1
	CritDamage    float64 // Multiplier
	BulletBounces int

	// Progression
	Level   int // Current wave or chaos level
	Score   int
	Pickups int

	// Inventory
	Weapons    map[WeaponKey]*WeaponState
	Owned      []WeaponKey // Acquisition order
	StatLevels map[StatKey]int

	// Invulnerability
	Invulnerable bool
	InvulnTimer  float64 // Negative means until explicitly cleared
}

// NewPlayer creates a player at (x, y) with the given starting stats and
// an empty inventory.
func NewPlayer(x, y float64, stats PlayerStats) *Player {
	return &Player{
		X:          x,
		Y:          y,
		Radius:     stats.Radius,
		Health:     stats.MaxHealth,
		MaxHealth:  stats.MaxHealth,
		MoveSpeed:  stats.MoveSpeed,
		BaseDamage: stats.BaseDamage,
		CritChance: stats.CritChance,
		CritDamage: stats.CritDamage,
		Level:      1,
		Weapons:    make(map[WeaponKey]*WeaponState),
		StatLevels: make(map[StatKey]int),
	}
}

// Owns reports whether the weapon has been acquired
func (p *Player) Owns(key WeaponKey) bool {
	_, ok := p.Weapons[key]
	return ok
}

// Weapon returns the state of an owned weapon
func (p *Player) Weapon(key WeaponKey) (*WeaponState, bool) {
	w, ok := p.Weapons[key]
	return w, ok
}

// AddWeapon records a newly acquired weapon. Returns false if already owned.
func (p *Player) AddWeapon(key WeaponKey, w *WeaponState) bool {
	if p.Owns(key) {
		return false
	}
	p.Weapons[key] = w
	p.Owned = append(p.Owned, key)
	return true
}

// IsAlive returns true while health remains
func (p *Player) IsAlive() bool {
	return p.Health > 0
}

// SetInvulnerable grants invulnerability for seconds (negative = indefinitely)
func (p *Player) SetInvulnerable(seconds float64) {
	p.Invulnerable = true
	p.InvulnTimer = seconds
}

// ClearInvulnerable removes any invulnerability
func (p *Player) ClearInvulnerable() {
	p.Invulnerable = false
	p.InvulnTimer = 0
}

// TickInvulnerability counts down a timed invulnerability window
func (p *Player) TickInvulnerability(dt float64) {
	if !p.Invulnerable || p.InvulnTimer < 0 {
		return
	}
	p.InvulnTimer -= dt
	if p.InvulnTimer <= 0 {
		p.ClearInvulnerable()
	}
}

// Move applies a direction intent for dt seconds. The intent is clamped to
// unit length and the position is kept inside [0, mapW] x [0, mapH].
func (p *Player) Move(ix, iy, dt, mapW, mapH float64) {
	length := Distance(0, 0, ix, iy)
	if length > 1 {
		ix /= length
		iy /= length
	}
	p.X = Clamp(p.X+ix*p.MoveSpeed*dt, 0, mapW)
	p.Y = Clamp(p.Y+iy*p.MoveSpeed*dt, 0, mapH)
}
