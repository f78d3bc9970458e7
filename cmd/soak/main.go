// Command soak runs the shooter core headless with a random pilot and
// checks the session invariants on every tick.
package main

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/younwookim/starship/internal/application/replay"
	"github.com/younwookim/starship/internal/application/session"
	"github.com/younwookim/starship/internal/infrastructure/config"
)

func main() {
	ticks := config.GetEnvInt("SOAK_TICKS", 36000)
	seed := int64(config.GetEnvInt("SOAK_SEED", int(time.Now().UnixNano()%1_000_000)))

	cfg, err := config.Default().LoadAll()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	log.Printf("Soak run: %d ticks, seed %d", ticks, seed)
	pilot := replay.NewPilot(rand.New(rand.NewSource(seed)))

	start := time.Now()
	sessions, best := 0, 0
	s := session.New(cfg, seed)
	for i := 0; i < ticks; i++ {
		if s.Over() {
			log.Printf("Session %d over: score %d, tier %d, kills %d, %d ticks",
				sessions, s.Score(), s.Tier(), s.Kills(), s.Frame())
			best = max(best, s.Score())
			sessions++
			s = session.New(cfg, seed+int64(sessions))
		}

		prev := s.Score()
		prevTier := s.Tier()
		s.Step(pilot.Poll())
		if err := check(s, prev, prevTier); err != nil {
			log.Fatalf("Invariant broken at tick %d of session %d (seed %d): %v", s.Frame(), sessions, s.Seed(), err)
		}
	}
	best = max(best, s.Score())

	log.Printf("Soak done in %v: %d sessions finished, best score %d", time.Since(start).Round(time.Millisecond), sessions, best)
}

// check verifies what must hold after every tick
func check(s *session.Session, prevScore, prevTier int) error {
	p := s.Player()
	if p.Health < 0 || p.Health > p.MaxHealth {
		return fmt.Errorf("health %d outside [0, %d]", p.Health, p.MaxHealth)
	}
	if s.Score() < prevScore {
		return fmt.Errorf("score went down from %d to %d", prevScore, s.Score())
	}
	if s.Tier() < prevTier {
		return fmt.Errorf("tier went down from %d to %d", prevTier, s.Tier())
	}

	w := s.World()
	for _, e := range w.Enemies {
		if !e.Alive {
			return fmt.Errorf("dead enemy %d survived the sweep", e.ID)
		}
	}
	for _, pr := range w.Projectiles {
		if !pr.Alive {
			return fmt.Errorf("dead projectile %d survived the sweep", pr.ID)
		}
	}
	for _, d := range w.Debris {
		if !d.Alive {
			return fmt.Errorf("dead debris %d survived the sweep", d.ID)
		}
	}
	return nil
}
