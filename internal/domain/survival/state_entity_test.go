package survival

import (
	"testing"
	"time"
)

func TestStatsHungerDecayCarriesRemainder(t *testing.T) {
	s := NewStats()
	s.Update(2 * time.Second)
	if s.Hunger != MaxHunger {
		t.Fatalf("expected no decay yet, got=%d", s.Hunger)
	}
	d := s.Update(1500 * time.Millisecond)
	if s.Hunger != MaxHunger-1 || d.Hunger != -1 {
		t.Fatalf("hunger mismatch: got=%d delta=%d", s.Hunger, d.Hunger)
	}
	s.Update(6 * time.Second)
	if got, want := s.Hunger, MaxHunger-3; got != want {
		t.Fatalf("hunger mismatch: got=%d want=%d", got, want)
	}
}

func TestStatsStarvationAndRegen(t *testing.T) {
	s := NewStats()
	s.Health = 90
	s.Update(5 * time.Second)
	if s.Health != 91 {
		t.Fatalf("expected regen to 91, got=%d", s.Health)
	}

	s.Hunger = 0
	s.Update(5 * time.Second)
	if s.Health != 89 {
		t.Fatalf("expected starvation damage to 89, got=%d", s.Health)
	}

	s.Health = 2
	s.Update(5 * time.Second)
	if !s.Dead || s.DeathCause != DeathCauseStarvation {
		t.Fatalf("expected starvation death, got %+v", s)
	}
	s.Update(time.Minute)
	if s.Health != 0 {
		t.Fatalf("dead stats must not change, got=%d", s.Health)
	}
}

func TestEatRestoresHungerCapped(t *testing.T) {
	inv := NewInventory(3)
	inv.Add(ItemWood, 1)
	inv.Add(ItemBerry, 2)

	s := NewStats()
	s.Hunger = 90
	if ok := s.Eat(inv, ItemBerry); !ok {
		t.Fatalf("expected eat success")
	}
	if s.Hunger != MaxHunger {
		t.Fatalf("expected hunger capped at max, got=%d", s.Hunger)
	}
	if got := inv.Count(ItemBerry); got != 1 {
		t.Fatalf("berry count mismatch: got=%d want=1", got)
	}
	if ok := s.Eat(inv, ItemWood); ok {
		t.Fatalf("wood is not edible")
	}
	inv.Remove(1, 1)
	if ok := s.Eat(inv, ItemBerry); ok {
		t.Fatalf("expected eat fail without berries")
	}
}

func TestDamageMarksCombatDeath(t *testing.T) {
	s := NewStats()
	s.Damage(30)
	if s.Health != 70 || s.Dead {
		t.Fatalf("unexpected stats: %+v", s)
	}
	s.Damage(500)
	if !s.Dead || s.DeathCause != DeathCauseCombat {
		t.Fatalf("expected combat death, got %+v", s)
	}
}

func TestRestoreClampsVitals(t *testing.T) {
	s := NewStats()
	s.Restore(140, -3)
	if s.Health != MaxHealth || s.Hunger != 0 || s.Dead {
		t.Fatalf("unexpected restored stats: %+v", s)
	}
}
