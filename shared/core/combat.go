package core

import (
	"github.com/automoto/epicfantasy/shared/gameconfig"
	"github.com/automoto/epicfantasy/shared/gamemath"
)

// Hitbox returns the area a swing started now would cover. It extends
// rightward from the player's centre.
func Hitbox(p *Player) gamemath.Rect {
	return gamemath.NewRect(p.Box.CenterX(), p.Box.Y, gameconfig.Combat.HitboxWidth, gameconfig.Combat.HitboxHeight)
}

// Attack swings the player's weapon and damages every living enemy inside the
// hitbox. While the cooldown runs the call is a no-op. It returns the number
// of enemies hit.
func Attack(p *Player, enemies []*Enemy, now int64) int {
	if now-p.LastAttackAt < p.AttackCooldownMs {
		return 0
	}

	p.LastAttackAt = now
	p.SwingActive = true
	p.SwingStartAt = now

	hitbox := Hitbox(p)
	hits := 0
	for _, e := range enemies {
		if !e.Alive() || !gamemath.Intersects(hitbox, e.Box) {
			continue
		}
		e.TakeDamage(p.AttackDamage)
		hits++
	}
	return hits
}

// UpdateSwing closes the swing window once it has run longer than the swing
// duration. It is independent of new attacks.
func UpdateSwing(p *Player, now int64) {
	if p.SwingActive && now-p.SwingStartAt > p.SwingDurationMs {
		p.SwingActive = false
	}
}
