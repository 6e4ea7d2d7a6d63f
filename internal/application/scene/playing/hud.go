package playing

import "github.com/YanNazzim/bullethell/internal/application/system"

const (
	bannerTTL = 2.0
	zapTTL    = 0.15
)

// hud is the player-facing state rebuilt from drained events
type hud struct {
	score     int
	health    float64
	maxHealth float64
	pickups   int
	stats     system.StatsSnapshot

	banner    string
	bannerTTL float64

	zaps    []zap
	summary *system.RunSummary
}

// zap is a chain-lightning segment kept on screen for a few frames
type zap struct {
	system.ChainZapped
	ttl float64
}

func (h *hud) announce(e system.UnitAnnounced) {
	h.banner = unitLabel(e.Mode, e.Unit)
	if e.Boss {
		h.banner = "BOSS " + h.banner
	}
	h.bannerTTL = bannerTTL
}

// decay ages the cosmetic effects by dt seconds
func (h *hud) decay(dt float64) {
	h.bannerTTL = max(h.bannerTTL-dt, 0)

	live := h.zaps[:0]
	for _, z := range h.zaps {
		z.ttl -= dt
		if z.ttl > 0 {
			live = append(live, z)
		}
	}
	h.zaps = live
}
