package playing

import (
	"fmt"
	"image/color"
	"math"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/YanNazzim/bullethell/internal/application/system"
	"github.com/YanNazzim/bullethell/internal/domain/entity"
)

// Colors for rendering
var (
	colorBG         = color.RGBA{18, 18, 30, 255}
	colorGrid       = color.RGBA{40, 40, 60, 255}
	colorBorder     = color.RGBA{120, 120, 160, 255}
	colorPlayer     = color.RGBA{100, 200, 100, 255}
	colorInvuln     = color.RGBA{255, 255, 255, 200}
	colorRegular    = color.RGBA{200, 100, 100, 255}
	colorElite      = color.RGBA{200, 120, 220, 255}
	colorBoomerang  = color.RGBA{240, 160, 60, 255}
	colorBoss       = color.RGBA{220, 40, 40, 255}
	colorFlash      = color.RGBA{255, 255, 255, 255}
	colorCritFlash  = color.RGBA{255, 230, 80, 255}
	colorBullet     = color.RGBA{255, 240, 150, 255}
	colorBossBullet = color.RGBA{255, 80, 80, 255}
	colorOrb        = color.RGBA{90, 200, 255, 255}
	colorShield     = color.RGBA{120, 220, 255, 200}
	colorZap        = color.RGBA{180, 220, 255, 255}
	colorArmor      = color.RGBA{160, 160, 200, 255}
	colorHealthBG   = color.RGBA{60, 60, 60, 255}
	colorHealthFG   = color.RGBA{100, 200, 100, 255}
)

const gridStep = 150.0

// camera maps world coordinates to screen coordinates
type camera struct {
	x, y float64
}

func (c camera) screen(wx, wy float64) (float32, float32) {
	return float32(wx - c.x), float32(wy - c.y)
}

func (p *Playing) drawArena(screen *ebiten.Image, cam camera) {
	w := p.opts.Config.World.Width
	h := p.opts.Config.World.Height

	startX := math.Max(0, math.Floor(cam.x/gridStep)*gridStep)
	for x := startX; x <= w && x <= cam.x+float64(p.screenW); x += gridStep {
		ebitenutil.DrawLine(screen, x-cam.x, -cam.y, x-cam.x, h-cam.y, colorGrid)
	}
	startY := math.Max(0, math.Floor(cam.y/gridStep)*gridStep)
	for y := startY; y <= h && y <= cam.y+float64(p.screenH); y += gridStep {
		ebitenutil.DrawLine(screen, -cam.x, y-cam.y, w-cam.x, y-cam.y, colorGrid)
	}

	x0, y0 := cam.screen(0, 0)
	vector.StrokeRect(screen, x0, y0, float32(w), float32(h), 4, colorBorder, false)
}

func (p *Playing) drawPickups(screen *ebiten.Image, cam camera) {
	r := float32(p.opts.Config.Pickup.Radius)
	p.sim.Context().Pickups.Each(func(_ entity.Handle, o *entity.Pickup) {
		x, y := cam.screen(o.X, o.Y)
		vector.DrawFilledCircle(screen, x, y, r, colorOrb, false)
	})
}

func (p *Playing) drawEnemies(screen *ebiten.Image, cam camera) {
	p.sim.Context().Enemies.Each(func(_ entity.Handle, e *entity.Enemy) {
		x, y := cam.screen(e.X, e.Y)
		r := float32(e.Radius)

		var c color.Color
		switch {
		case e.HitFlash > 0 && e.HitCrit:
			c = colorCritFlash
		case e.HitFlash > 0:
			c = colorFlash
		default:
			c = enemyColor(e.Kind)
		}
		vector.DrawFilledCircle(screen, x, y, r, c, false)

		if e.Kind.HasArmor() {
			barW := float64(2 * r)
			bx, by := float64(x)-barW/2, float64(y-r)-12
			ebitenutil.DrawRect(screen, bx, by, barW, 4, colorHealthBG)
			ebitenutil.DrawRect(screen, bx, by, barW*ratio(e.Health, e.MaxHealth), 4, colorHealthFG)
			if e.MaxArmor > 0 {
				ebitenutil.DrawRect(screen, bx, by-6, barW*ratio(e.Armor, e.MaxArmor), 4, colorArmor)
			}
		}
	})
}

func enemyColor(k entity.EnemyKind) color.Color {
	switch k {
	case entity.KindElite:
		return colorElite
	case entity.KindBoomerang:
		return colorBoomerang
	case entity.KindBoss:
		return colorBoss
	default:
		return colorRegular
	}
}

func (p *Playing) drawProjectiles(screen *ebiten.Image, cam camera) {
	c := p.sim.Context()
	c.Bullets.Each(func(_ entity.Handle, b *entity.Projectile) {
		x, y := cam.screen(b.X, b.Y)
		vector.DrawFilledCircle(screen, x, y, float32(b.Radius), colorBullet, false)
	})
	c.BossBullets.Each(func(_ entity.Handle, b *entity.Projectile) {
		x, y := cam.screen(b.X, b.Y)
		vector.DrawFilledCircle(screen, x, y, float32(b.Radius), colorBossBullet, false)
	})
}

func (p *Playing) drawShield(screen *ebiten.Image, cam camera) {
	r := float32(p.opts.Config.Weapons[string(entity.WeaponShield)].OrbRadius)
	for _, orb := range p.sim.Context().ShieldOrbs {
		x, y := cam.screen(orb.X, orb.Y)
		vector.DrawFilledCircle(screen, x, y, r, colorShield, false)
	}
}

func (p *Playing) drawZaps(screen *ebiten.Image, cam camera) {
	for _, z := range p.hud.zaps {
		x0, y0 := cam.screen(z.FromX, z.FromY)
		x1, y1 := cam.screen(z.ToX, z.ToY)
		c := colorZap
		width := float32(3)
		if z.Crit {
			c = colorCritFlash
			width = 5
		}
		vector.StrokeLine(screen, x0, y0, x1, y1, width, c, false)
	}
}

func (p *Playing) drawPlayer(screen *ebiten.Image, cam camera) {
	pl := p.sim.Player()
	x, y := cam.screen(pl.X, pl.Y)

	c := color.Color(colorPlayer)
	if pl.Invulnerable && int(p.sim.Elapsed().Seconds()*10)%2 == 0 {
		c = colorInvuln
	}
	vector.DrawFilledCircle(screen, x, y, float32(pl.Radius), c, false)
}

// drawBossIndicator points from the screen centre toward an off-screen boss
func (p *Playing) drawBossIndicator(screen *ebiten.Image) {
	dir := p.hud.stats.BossDirection
	if dir == nil {
		return
	}
	rad := *dir * math.Pi / 180
	cx, cy := float64(p.screenW)/2, float64(p.screenH)/2
	reach := math.Min(cx, cy) - 40

	tipX, tipY := cx+math.Cos(rad)*reach, cy+math.Sin(rad)*reach
	tailX, tailY := cx+math.Cos(rad)*(reach-30), cy+math.Sin(rad)*(reach-30)
	vector.StrokeLine(screen, float32(tailX), float32(tailY), float32(tipX), float32(tipY), 4, colorBoss, false)
	vector.DrawFilledCircle(screen, float32(tipX), float32(tipY), 8, colorBoss, false)
}

func (p *Playing) drawHUD(screen *ebiten.Image) {
	barX, barY := 10.0, float64(p.screenH-30)
	barW, barH := 200.0, 14.0
	ebitenutil.DrawRect(screen, barX, barY, barW, barH, colorHealthBG)
	ebitenutil.DrawRect(screen, barX, barY, barW*ratio(p.hud.health, p.hud.maxHealth), barH, colorHealthFG)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("HP %.0f/%.0f", p.hud.health, p.hud.maxHealth), int(barX), int(barY)-16)

	var b strings.Builder
	fmt.Fprintf(&b, "%s | Score: %d | Orbs: %d | %s\n",
		unitLabel(p.sim.Mode().String(), p.sim.Unit()), p.hud.score, p.hud.pickups, p.hud.stats.Elapsed.Truncate(time.Second))
	for _, w := range p.hud.stats.Weapons {
		fmt.Fprintf(&b, "%s Lv%d %s\n", w.Name, w.Level, chargeMeter(w))
	}
	ebitenutil.DebugPrint(screen, b.String())

	ebitenutil.DebugPrintAt(screen, "WASD/Arrows or hold LClick: Move | P/ESC: Pause | F5: Save replay", 10, p.screenH-60)

	if p.hud.bannerTTL > 0 {
		ebitenutil.DebugPrintAt(screen, p.hud.banner, p.screenW/2-40, p.screenH/4)
	}
}

func (p *Playing) drawPauseOverlay(screen *ebiten.Image) {
	overlay := color.RGBA{0, 0, 0, 128}
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), overlay)

	text := "PAUSED\n\nPress P or ESC to resume"
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-70, p.screenH/2-20)
}

func (p *Playing) drawUpgradeOverlay(screen *ebiten.Image) {
	overlay := color.RGBA{0, 0, 40, 160}
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), overlay)

	var b strings.Builder
	b.WriteString("CHOOSE AN UPGRADE\n\n")
	for i, ch := range p.sim.Offer() {
		fmt.Fprintf(&b, "[%d] %s\n    %s\n\n", i+1, ch.Name, ch.Description)
	}
	ebitenutil.DebugPrintAt(screen, b.String(), p.screenW/2-150, p.screenH/2-80)
}

func (p *Playing) drawGameOverOverlay(screen *ebiten.Image) {
	overlay := color.RGBA{100, 0, 0, 180}
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), overlay)

	text := fmt.Sprintf("GAME OVER\n\nScore: %d\n\nPress Z to restart", p.hud.score)
	if s := p.hud.summary; s != nil {
		text = fmt.Sprintf("GAME OVER\n\nScore: %d\nReached: %s\nDamage dealt: %.0f\n\nPress Z to restart",
			s.Score, unitLabel(s.Mode, s.CurrentUnit), s.TotalDamageDealt)
	}
	if p.opts.Quit != nil {
		text += " | Q for title"
	}
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-80, p.screenH/2-40)
}

// chargeMeter renders a timed weapon's cooldown as a ten-cell text bar
func chargeMeter(w system.WeaponSnapshot) string {
	if w.AttackSpeed <= 0 {
		return ""
	}
	const cells = 10
	n := int(entity.Clamp(w.Charge, 0, 1) * cells)
	return "[" + strings.Repeat("#", n) + strings.Repeat("-", cells-n) + "]"
}

// ratio returns v/maxV clamped to [0, 1]
func ratio(v, maxV float64) float64 {
	if maxV <= 0 {
		return 0
	}
	return entity.Clamp(v/maxV, 0, 1)
}
