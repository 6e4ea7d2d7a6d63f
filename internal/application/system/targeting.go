package system

import (
	"math"

	"github.com/YanNazzim/bullethell/internal/domain/entity"
)

// FindNearest returns the closest live, on-screen, non-boss enemy to
// (x, y) that is not in exclude. Exact distance ties go to the lower
// EntityID so replays stay deterministic.
func (c *Context) FindNearest(x, y float64, exclude []entity.Handle) (entity.Handle, *entity.Enemy, bool) {
	return c.nearest(x, y, exclude, true)
}

// FindNearestAnywhere is FindNearest without the on-screen restriction.
// Chain lightning uses it to hop from one struck enemy to the next.
func (c *Context) FindNearestAnywhere(x, y float64, exclude []entity.Handle) (entity.Handle, *entity.Enemy, bool) {
	return c.nearest(x, y, exclude, false)
}

func (c *Context) nearest(x, y float64, exclude []entity.Handle, onScreen bool) (entity.Handle, *entity.Enemy, bool) {
	view := c.VisibleRect()
	best := entity.NilHandle
	var bestEnemy *entity.Enemy
	bestDist := math.Inf(1)

	c.Enemies.Each(func(h entity.Handle, e *entity.Enemy) {
		if !e.Alive || e.Kind == entity.KindBoss {
			return
		}
		if onScreen && !view.Contains(e.X, e.Y) {
			return
		}
		if excluded(exclude, h) {
			return
		}

		d := entity.Distance(x, y, e.X, e.Y)
		if d < bestDist || (d == bestDist && bestEnemy != nil && e.ID < bestEnemy.ID) {
			best = h
			bestEnemy = e
			bestDist = d
		}
	})

	return best, bestEnemy, bestEnemy != nil
}

func excluded(set []entity.Handle, h entity.Handle) bool {
	for _, x := range set {
		if x == h {
			return true
		}
	}
	return false
}

// BossDirection returns the player-to-boss angle in degrees while the boss
// is more than the configured margin outside the visible area, else nil
func (c *Context) BossDirection() *float64 {
	if !c.BossActive {
		return nil
	}
	boss, ok := c.Enemies.Get(c.Boss)
	if !ok {
		return nil
	}

	margin := c.Config.Boss.OffscreenMargin
	if c.VisibleRect().Expand(margin).Contains(boss.X, boss.Y) {
		return nil
	}

	deg := entity.Angle(c.Player.X, c.Player.Y, boss.X, boss.Y) * 180 / math.Pi
	return &deg
}
