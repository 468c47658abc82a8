package survival

import "time"

type DeathCause string

const (
	DeathCauseUnknown    DeathCause = "unknown"
	DeathCauseStarvation DeathCause = "starvation"
	DeathCauseCombat     DeathCause = "combat"
)

// Stats are the player's vitals. The accumulators carry simulated time that
// has not yet produced a full hunger or health step.
type Stats struct {
	Health     int        `json:"health"`
	Hunger     int        `json:"hunger"`
	Dead       bool       `json:"dead"`
	DeathCause DeathCause `json:"death_cause,omitempty"`

	hungerAcc time.Duration
	healthAcc time.Duration
}

func NewStats() Stats {
	return Stats{Health: MaxHealth, Hunger: MaxHunger}
}

// StatsDelta reports what one Update changed.
type StatsDelta struct {
	Hunger int `json:"hunger"`
	Health int `json:"health"`
}

// Update advances simulated time. Hunger drops every HungerDecayInterval.
// Every HealthTickInterval health drops while starving, otherwise it
// regenerates up to MaxHealth.
func (s *Stats) Update(dt time.Duration) StatsDelta {
	var delta StatsDelta
	if s.Dead || dt <= 0 {
		return delta
	}

	s.hungerAcc += dt
	for s.hungerAcc >= HungerDecayInterval {
		s.hungerAcc -= HungerDecayInterval
		if s.Hunger > 0 {
			next := max(s.Hunger-HungerDecayAmount, 0)
			delta.Hunger += next - s.Hunger
			s.Hunger = next
		}
	}

	s.healthAcc += dt
	for s.healthAcc >= HealthTickInterval {
		s.healthAcc -= HealthTickInterval
		before := s.Health
		if s.Hunger <= 0 {
			s.Health = max(s.Health-StarvationDamage, 0)
		} else if s.Health < MaxHealth {
			s.Health = min(s.Health+HealthRegenPerTick, MaxHealth)
		}
		delta.Health += s.Health - before
		if s.Health <= 0 {
			s.MarkDead(DeathCauseStarvation)
			break
		}
	}
	return delta
}

// Eat consumes one unit of an edible item from the first slot holding it.
func (s *Stats) Eat(inv *Inventory, item ItemType) bool {
	def, ok := itemDefs[item]
	if !ok || !def.Edible() || s.Dead {
		return false
	}
	index, ok := inv.FirstIndex(item)
	if !ok {
		return false
	}
	inv.Remove(index, 1)
	s.Hunger = min(s.Hunger+def.RestoreHunger, MaxHunger)
	return true
}

func (s *Stats) Damage(amount int) {
	if amount <= 0 || s.Dead {
		return
	}
	s.Health = max(s.Health-amount, 0)
	if s.Health == 0 {
		s.MarkDead(DeathCauseCombat)
	}
}

// Restore sets vitals from persisted values, clamped to their ranges.
func (s *Stats) Restore(health, hunger int) {
	s.Health = min(max(health, 0), MaxHealth)
	s.Hunger = min(max(hunger, 0), MaxHunger)
	s.Dead = s.Health == 0
	s.DeathCause = ""
	if s.Dead {
		s.DeathCause = DeathCauseUnknown
	}
	s.hungerAcc, s.healthAcc = 0, 0
}

func (s *Stats) MarkDead(cause DeathCause) {
	if cause == "" {
		cause = DeathCauseUnknown
	}
	s.Dead = true
	s.DeathCause = cause
}
