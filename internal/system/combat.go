package system

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"tombs-roguelike/assets"
	"tombs-roguelike/internal/component"
	"tombs-roguelike/internal/entity"
	"tombs-roguelike/internal/world"
)

// AttackResult holds the outcome of one attack.
type AttackResult struct {
	Damage int
	Killed bool
}

// Attack resolves one attack from attacker against defender.
// Damage is attacker power minus defender defence; anything at or below
// zero has no effect.
func Attack(w *world.World, attacker, defender entity.Handle) AttackResult {
	a, d := w.Entities.Get(attacker), w.Entities.Get(defender)
	if a == nil || d == nil || a.Fighter == nil || d.Fighter == nil {
		return AttackResult{}
	}
	dmg := a.Fighter.Power - d.Fighter.Defense
	if dmg <= 0 {
		w.Message(fmt.Sprintf("%s attacks %s but it has no effect!", capitalize(a.Name), d.Name), assets.ColorPeach)
		return AttackResult{}
	}
	w.Message(fmt.Sprintf("%s attacks %s for %d hit points.", capitalize(a.Name), d.Name, dmg), assets.ColorPeach)
	return AttackResult{Damage: dmg, Killed: TakeDamage(w, defender, dmg)}
}

// TakeDamage subtracts n hit points from h and fires its death behaviour
// the first time HP reaches zero or below. It reports whether h died on
// this call.
func TakeDamage(w *world.World, h entity.Handle, n int) bool {
	e := w.Entities.Get(h)
	if e == nil || e.Fighter == nil || n <= 0 {
		return false
	}
	f := e.Fighter
	f.HP -= n
	if f.HP > 0 || f.Dead {
		return false
	}
	f.Dead = true
	switch f.Death {
	case component.DeathPlayer:
		playerDeath(w, e)
	case component.DeathMonster:
		monsterDeath(w, h, e)
	}
	w.Logger.Debug("entity died", "name", e.Name, "hp", f.HP)
	return true
}

func playerDeath(w *world.World, e *entity.Entity) {
	w.Message("You died!", assets.ColorRed)
	w.EndGame()
	e.Render = component.Renderable{Glyph: assets.GlyphCorpse, Color: assets.ColorCorpse}
}

func monsterDeath(w *world.World, h entity.Handle, e *entity.Entity) {
	w.Message(capitalize(e.Name)+" is dead!", assets.ColorRed)
	e.Render = component.Renderable{Glyph: assets.GlyphCorpse, Color: assets.ColorCorpse}
	e.Blocks = false
	e.Fighter = nil
	e.AI = nil
	e.Name = "remains of " + e.Name
	w.Entities.SendToBack(h)
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}
