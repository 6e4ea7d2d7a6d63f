package system

import (
	"errors"
	"fmt"

	"github.com/YanNazzim/bullethell/internal/domain/entity"
)

var (
	// ErrUnknownUpgrade is returned for a key no definition exists for
	ErrUnknownUpgrade = errors.New("unknown upgrade")
	// ErrStaleUpgrade is returned for a valid key that no longer applies
	// (weapon already owned, level or stat cap reached)
	ErrStaleUpgrade = errors.New("stale upgrade")
)

// MaxChoices is the size of a full upgrade offer
const MaxChoices = 3

// ChoiceType tags which definition table an UpgradeChoice dispatches to
type ChoiceType string

const (
	ChoiceWeaponNew     ChoiceType = "weapon_new"
	ChoiceStat          ChoiceType = "stat"
	ChoiceWeaponUpgrade ChoiceType = "weapon_upgrade"
)

// UpgradeChoice is one entry of an upgrade offer
type UpgradeChoice struct {
	Type        ChoiceType
	Key         string
	Name        string
	Description string
	Image       string
	Level       int // Resulting weapon level; 0 for stats
}

// StatDef describes one stat upgrade
type StatDef struct {
	Key         entity.StatKey
	Name        string
	Description string
	Image       string
	Available   func(c *Context) bool
	Apply       func(c *Context)
}

var statOrder = []entity.StatKey{
	entity.StatMaxHealth,
	entity.StatRestoreHealth,
	entity.StatMoveSpeed,
	entity.StatPlayerDamage,
	entity.StatCritChance,
	entity.StatCritDamage,
	entity.StatBulletBounce,
}

func always(*Context) bool { return true }

var statDefs = map[entity.StatKey]StatDef{
	entity.StatMaxHealth: {
		Key:         entity.StatMaxHealth,
		Name:        "Increase Max Health",
		Description: "Increases maximum health by 1.",
		Image:       "icon_max_health.png",
		Available:   always,
		Apply: func(c *Context) {
			c.Player.MaxHealth += c.Config.Stats.MaxHealthStep
			c.Events.Push(HealthChanged{Health: c.Player.Health, Max: c.Player.MaxHealth})
		},
	},
	entity.StatRestoreHealth: {
		Key:         entity.StatRestoreHealth,
		Name:        "Restore Health",
		Description: "Fills the health bar.",
		Image:       "icon_restore_health.png",
		Available:   always,
		Apply: func(c *Context) {
			c.Player.Health = c.Player.MaxHealth
			c.Events.Push(HealthChanged{Health: c.Player.Health, Max: c.Player.MaxHealth})
		},
	},
	entity.StatMoveSpeed: {
		Key:         entity.StatMoveSpeed,
		Name:        "Movement Speed",
		Description: "Increases movement speed by 10.",
		Image:       "icon_move_speed.png",
		Available:   always,
		Apply: func(c *Context) {
			c.Player.MoveSpeed += c.Config.Stats.MoveSpeedStep
		},
	},
	entity.StatPlayerDamage: {
		Key:         entity.StatPlayerDamage,
		Name:        "Base Damage",
		Description: "Increases all damage dealt by 1.",
		Image:       "base_dmg.png",
		Available:   always,
		Apply: func(c *Context) {
			c.Player.BaseDamage += c.Config.Stats.DamageStep
		},
	},
	entity.StatCritChance: {
		Key:         entity.StatCritChance,
		Name:        "Crit Chance",
		Description: "Gain 5% chance to deal critical damage.",
		Image:       "icon_crit_chance.png",
		Available: func(c *Context) bool {
			return c.Player.StatLevels[entity.StatCritChance] < c.Config.Stats.CritChanceMaxPicks &&
				c.Player.CritChance < 1
		},
		Apply: func(c *Context) {
			c.Player.CritChance = min(1, c.Player.CritChance+c.Config.Stats.CritChanceStep)
		},
	},
	entity.StatCritDamage: {
		Key:         entity.StatCritDamage,
		Name:        "Crit Damage",
		Description: "Increases the critical damage multiplier by 50%.",
		Image:       "icon_crit_dmg.png",
		Available: func(c *Context) bool {
			return c.Player.CritChance > 0
		},
		Apply: func(c *Context) {
			c.Player.CritDamage += c.Config.Stats.CritDamageStep
		},
	},
	entity.StatBulletBounce: {
		Key:         entity.StatBulletBounce,
		Name:        "Bullet Bounce",
		Description: "Your bullets bounce to 1 additional enemy.",
		Image:       "icon_bullet_bounce.png",
		Available:   always,
		Apply: func(c *Context) {
			c.Player.BulletBounces += c.Config.Stats.BounceStep
		},
	},
}

// GenerateChoices builds an upgrade offer of at most MaxChoices entries:
// one unowned weapon, one stat and one weapon upgrade when available,
// backfilled from the stat pool without duplicate keys, then shuffled.
func (c *Context) GenerateChoices() []UpgradeChoice {
	p := c.Player

	var newWeapons, upgradable []entity.WeaponKey
	for _, key := range weaponOrder {
		if key != entity.WeaponAutoBullet && !p.Owns(key) {
			newWeapons = append(newWeapons, key)
		}
	}
	for _, key := range p.Owned {
		if p.Weapons[key].Level < c.Config.Weapons[string(key)].MaxLevel {
			upgradable = append(upgradable, key)
		}
	}

	var stats []entity.StatKey
	for _, key := range statOrder {
		if statDefs[key].Available(c) {
			stats = append(stats, key)
		}
	}

	choices := make([]UpgradeChoice, 0, MaxChoices)

	if len(newWeapons) > 0 {
		key := newWeapons[c.RNG.Intn(len(newWeapons))]
		choices = append(choices, c.weaponChoice(ChoiceWeaponNew, key, 1))
	}
	if len(stats) > 0 {
		i := c.RNG.Intn(len(stats))
		choices = append(choices, statChoice(stats[i]))
		stats = append(stats[:i], stats[i+1:]...)
	}
	if len(upgradable) > 0 {
		key := upgradable[c.RNG.Intn(len(upgradable))]
		choices = append(choices, c.weaponChoice(ChoiceWeaponUpgrade, key, p.Weapons[key].Level+1))
	}

	for len(choices) < MaxChoices && len(stats) > 0 {
		i := c.RNG.Intn(len(stats))
		choices = append(choices, statChoice(stats[i]))
		stats = append(stats[:i], stats[i+1:]...)
	}

	c.RNG.Shuffle(len(choices), func(i, j int) {
		choices[i], choices[j] = choices[j], choices[i]
	})
	return choices
}

func (c *Context) weaponChoice(t ChoiceType, key entity.WeaponKey, level int) UpgradeChoice {
	cfg := c.Config.Weapons[string(key)]
	choice := UpgradeChoice{
		Type:        t,
		Key:         string(key),
		Name:        cfg.Name,
		Description: cfg.Description,
		Image:       cfg.Image,
		Level:       level,
	}
	if t == ChoiceWeaponUpgrade {
		choice.Name = "Upgrade " + cfg.Name
		choice.Description = fmt.Sprintf("Increases %s to Level %d.", cfg.Name, level)
	}
	return choice
}

func statChoice(key entity.StatKey) UpgradeChoice {
	def := statDefs[key]
	return UpgradeChoice{
		Type:        ChoiceStat,
		Key:         string(key),
		Name:        def.Name,
		Description: def.Description,
		Image:       def.Image,
	}
}

// ApplyChoice dispatches the choice to its stat or weapon definition.
// Unknown keys wrap ErrUnknownUpgrade, keys that no longer apply wrap
// ErrStaleUpgrade; either way nothing is changed.
func (c *Context) ApplyChoice(choice UpgradeChoice) error {
	switch choice.Type {
	case ChoiceStat:
		return c.ApplyStat(entity.StatKey(choice.Key))
	case ChoiceWeaponNew:
		return c.AcquireWeapon(entity.WeaponKey(choice.Key))
	case ChoiceWeaponUpgrade:
		return c.UpgradeWeapon(entity.WeaponKey(choice.Key))
	default:
		return fmt.Errorf("choice type %q: %w", choice.Type, ErrUnknownUpgrade)
	}
}

// ApplyStat applies one stat upgrade and counts it
func (c *Context) ApplyStat(key entity.StatKey) error {
	def, ok := statDefs[key]
	if !ok {
		return fmt.Errorf("stat %q: %w", key, ErrUnknownUpgrade)
	}
	if !def.Available(c) {
		return fmt.Errorf("stat %q unavailable: %w", key, ErrStaleUpgrade)
	}
	def.Apply(c)
	c.Player.StatLevels[key]++
	return nil
}
