package system

import (
	"testing"

	"tombs-roguelike/assets"
	"tombs-roguelike/internal/world"
)

func TestAttackDamageIsPowerMinusDefense(t *testing.T) {
	w := openWorld(t, 10, 10, 1, 1)
	a := addFighter(w, "troll", 3, 3, 10, 0, 5)
	d := addFighter(w, "orc", 4, 3, 10, 2, 1)

	res := Attack(w, a, d)
	if res.Damage != 3 || res.Killed {
		t.Fatalf("result = %+v; want 3 damage, not killed", res)
	}
	if hp := w.Entities.Get(d).Fighter.HP; hp != 7 {
		t.Errorf("defender hp = %d; want 7", hp)
	}
	if got, want := lastMessage(t, w), "Troll attacks orc for 3 hit points."; got != want {
		t.Errorf("message = %q; want %q", got, want)
	}
}

func TestAttackWithoutEffect(t *testing.T) {
	w := openWorld(t, 10, 10, 1, 1)
	a := addFighter(w, "orc", 3, 3, 10, 0, 2)
	d := addFighter(w, "troll", 4, 3, 10, 5, 1)

	res := Attack(w, a, d)
	if res.Damage != 0 {
		t.Fatalf("damage = %d; want 0", res.Damage)
	}
	if hp := w.Entities.Get(d).Fighter.HP; hp != 10 {
		t.Errorf("defender hp = %d; want unchanged 10", hp)
	}
	if got, want := lastMessage(t, w), "Orc attacks troll but it has no effect!"; got != want {
		t.Errorf("message = %q; want %q", got, want)
	}
	if c := w.Log.Lines()[w.Log.Len()-1].Color; c != assets.ColorPeach {
		t.Errorf("message colour = %v; want peach", c)
	}
}

func TestMonsterDeathAtExactlyZero(t *testing.T) {
	w := openWorld(t, 10, 10, 1, 1)
	orc := addFighter(w, "orc", 4, 4, 5, 0, 2)

	if !TakeDamage(w, orc, 5) {
		t.Fatal("hp reaching exactly 0 must kill")
	}
	e := w.Entities.Get(orc)
	if e.Name != "remains of orc" {
		t.Errorf("name = %q", e.Name)
	}
	if e.Blocks || e.Fighter != nil || e.AI != nil {
		t.Errorf("remains must be inert: blocks=%v fighter=%v ai=%v", e.Blocks, e.Fighter, e.AI)
	}
	if e.Render.Glyph != assets.GlyphCorpse || e.Render.Color != assets.ColorCorpse {
		t.Errorf("render = %+v; want corpse", e.Render)
	}
	if w.Entities.Order()[0] != orc {
		t.Error("remains must be drawn first")
	}
	if got := lastMessage(t, w); got != "Orc is dead!" {
		t.Errorf("message = %q", got)
	}
	if w.State != world.StatePlaying {
		t.Error("monster death must not end the game")
	}
}

func TestDeathFiresOnce(t *testing.T) {
	w := openWorld(t, 10, 10, 1, 1)
	if !TakeDamage(w, w.Player, 30) {
		t.Fatal("player should die")
	}
	n := w.Log.Len()
	if TakeDamage(w, w.Player, 5) {
		t.Fatal("second reduction must not fire death again")
	}
	if w.Log.Len() != n {
		t.Errorf("log grew from %d to %d on second reduction", n, w.Log.Len())
	}
	if hp := w.PlayerEntity().Fighter.HP; hp != -5 {
		t.Errorf("hp = %d; want -5", hp)
	}
}

func TestPlayerDeath(t *testing.T) {
	w := openWorld(t, 10, 10, 1, 1)
	TakeDamage(w, w.Player, 31)
	if w.State != world.StateDead {
		t.Fatalf("state = %v; want dead", w.State)
	}
	p := w.PlayerEntity()
	if p.Render.Glyph != assets.GlyphCorpse || p.Render.Color != assets.ColorCorpse {
		t.Errorf("render = %+v; want corpse", p.Render)
	}
	if p.Fighter == nil {
		t.Error("player keeps its fighter after death")
	}
	if got := lastMessage(t, w); got != "You died!" {
		t.Errorf("message = %q", got)
	}
}

func TestTakeDamageIgnoresNonPositive(t *testing.T) {
	w := openWorld(t, 10, 10, 1, 1)
	TakeDamage(w, w.Player, 0)
	TakeDamage(w, w.Player, -3)
	if hp := w.PlayerEntity().Fighter.HP; hp != 30 {
		t.Errorf("hp = %d; want 30", hp)
	}
}
