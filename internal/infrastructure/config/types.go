package config

// BalanceConfig is the root config for balance.json
type BalanceConfig struct {
	Display     DisplayConfig               `json:"display"`
	World       WorldConfig                 `json:"world"`
	Player      PlayerConfig                `json:"player"`
	Pools       PoolConfig                  `json:"pools"`
	Projectiles map[string]ProjectileConfig `json:"projectiles"`
	Enemies     map[string]EnemyConfig      `json:"enemies"`
	Boss        BossConfig                  `json:"boss"`
	Spawn       SpawnConfig                 `json:"spawn"`
	Wave        WaveConfig                  `json:"wave"`
	Chaos       ChaosConfig                 `json:"chaos"`
	Weapons     map[string]WeaponConfig     `json:"weapons"`
	Stats       StatConfig                  `json:"stats"`
	Pickup      PickupConfig                `json:"pickup"`
	Feedback    FeedbackConfig              `json:"feedback"`
}

// Projectile, enemy and weapon keys used in balance.json
const (
	ProjectileBullet     = "bullet"
	ProjectileBossBullet = "bossBullet"

	EnemyRegular   = "regular"
	EnemyBoomerang = "boomerang"
	EnemyElite     = "elite"

	WeaponAutoBullet   = "autoBullet"
	WeaponElectricBolt = "electricBolt"
	WeaponShield       = "shield"
)

type DisplayConfig struct {
	ScreenWidth  int     `json:"screenWidth"`
	ScreenHeight int     `json:"screenHeight"`
	WindowScale  float64 `json:"windowScale"`
	Framerate    int     `json:"framerate"`
}

type WorldConfig struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type PlayerConfig struct {
	MaxHealth     float64 `json:"maxHealth"`
	MoveSpeed     float64 `json:"moveSpeed"`
	BaseDamage    float64 `json:"baseDamage"`
	CritChance    float64 `json:"critChance"`
	CritDamage    float64 `json:"critDamage"`
	Radius        float64 `json:"radius"`
	InvulnSeconds float64 `json:"invulnSeconds"`
}

type PoolConfig struct {
	Enemies     int `json:"enemies"`
	Bullets     int `json:"bullets"`
	BossBullets int `json:"bossBullets"`
	Pickups     int `json:"pickups"`
}

type ProjectileConfig struct {
	Speed  float64 `json:"speed"`
	TTL    float64 `json:"ttl"`
	Radius float64 `json:"radius"`
}

// EnemyConfig describes a non-boss enemy and how it scales with the unit
// (wave or level). A SpeedCap of 0 means "capped at the player's speed".
type EnemyConfig struct {
	Health        float64 `json:"health"`
	HealthScale   float64 `json:"healthScale"`
	Speed         float64 `json:"speed"`
	SpeedPerUnit  float64 `json:"speedPerUnit"`
	SpeedCap      float64 `json:"speedCap"`
	ContactDamage float64 `json:"contactDamage"`
	ArmorRatio    float64 `json:"armorRatio"`
	Radius        float64 `json:"radius"`
}

type BossConfig struct {
	Interval        int     `json:"interval"`
	BaseHealth      float64 `json:"baseHealth"`
	HealthScale     float64 `json:"healthScale"`
	ArmorBase       float64 `json:"armorBase"`
	ArmorPerTier    float64 `json:"armorPerTier"`
	ContactDamage   float64 `json:"contactDamage"`
	ContactPerUnit  float64 `json:"contactPerUnit"`
	Radius          float64 `json:"radius"`
	FireInterval    float64 `json:"fireInterval"`
	SpawnDistance   float64 `json:"spawnDistance"`
	OffscreenMargin float64 `json:"offscreenMargin"`
}

// ChanceConfig is a spawn probability min(Max, Base + PerUnit*unit),
// enabled from FromUnit onward.
type ChanceConfig struct {
	FromUnit int     `json:"fromUnit"`
	Base     float64 `json:"base"`
	PerUnit  float64 `json:"perUnit"`
	Max      float64 `json:"max"`
}

type SpawnConfig struct {
	MinDistance   float64      `json:"minDistance"`
	Attempts      int          `json:"attempts"`
	Boomerang     ChanceConfig `json:"boomerang"`
	MaxBoomerangs int          `json:"maxBoomerangs"`
	WaveElite     ChanceConfig `json:"waveElite"`
	ChaosElite    ChanceConfig `json:"chaosElite"`
}

type WaveConfig struct {
	BaseSize    int `json:"baseSize"`
	SizePerWave int `json:"sizePerWave"`
}

type ChaosConfig struct {
	BaseInterval float64 `json:"baseInterval"`
	IntervalStep float64 `json:"intervalStep"`
	MinInterval  float64 `json:"minInterval"`
	EnemyCap     int     `json:"enemyCap"`
	KillsBase    int     `json:"killsBase"`
}

// WeaponConfig holds the tuning of one weapon. Fields a weapon does not use
// stay zero.
type WeaponConfig struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
	MaxLevel    int    `json:"maxLevel"`

	Damage          float64 `json:"damage"`
	DamageStep      float64 `json:"damageStep"`
	AttackSpeed     float64 `json:"attackSpeed"`
	AttackSpeedStep float64 `json:"attackSpeedStep"`

	Interval     float64 `json:"interval"`
	IntervalStep float64 `json:"intervalStep"`
	MinInterval  float64 `json:"minInterval"`
	Chain        int     `json:"chain"`
	DamageRatio  float64 `json:"damageRatio"`

	Count            int     `json:"count"`
	OrbLevels        []int   `json:"orbLevels"`
	Radius           float64 `json:"radius"`
	OrbRadius        float64 `json:"orbRadius"`
	AngularSpeed     float64 `json:"angularSpeed"`
	AngularSpeedStep float64 `json:"angularSpeedStep"`
	HitCooldown      float64 `json:"hitCooldown"`
}

// StatConfig holds the step of each stat upgrade
type StatConfig struct {
	MaxHealthStep      float64 `json:"maxHealthStep"`
	MoveSpeedStep      float64 `json:"moveSpeedStep"`
	DamageStep         float64 `json:"damageStep"`
	CritChanceStep     float64 `json:"critChanceStep"`
	CritChanceMaxPicks int     `json:"critChanceMaxPicks"`
	CritDamageStep     float64 `json:"critDamageStep"`
	BounceStep         int     `json:"bounceStep"`
}

type PickupConfig struct {
	Value       int     `json:"value"`
	TTL         float64 `json:"ttl"`
	HomingSpeed float64 `json:"homingSpeed"`
	Radius      float64 `json:"radius"`
}

type FeedbackConfig struct {
	HitFlash float64 `json:"hitFlash"`
}
