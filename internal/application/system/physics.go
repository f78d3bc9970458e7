package system

import (
	"github.com/younwookim/starship/internal/application/world"
	"github.com/younwookim/starship/internal/domain/entity"
	"github.com/younwookim/starship/internal/infrastructure/config"
)

// PhysicsSystem moves entities and expires the ones that leave the play area
type PhysicsSystem struct {
	movement config.MovementConfig
	width    float64
	height   float64
	margin   float64
}

// NewPhysicsSystem creates a new physics system
func NewPhysicsSystem(cfg *config.PhysicsConfig) *PhysicsSystem {
	return &PhysicsSystem{
		movement: cfg.Movement,
		width:    float64(cfg.Display.ScreenWidth),
		height:   float64(cfg.Display.ScreenHeight),
		margin:   cfg.Bounds.DespawnMargin,
	}
}

// ApplyThrust updates the starship velocity from the movement intents.
// Friction is applied once per tick, then speed is capped and tiny
// velocities snap to zero so an idle ship comes to rest.
func (s *PhysicsSystem) ApplyThrust(p *entity.Player, in InputState, dt float64) {
	if !p.Alive {
		p.Vel = entity.Vec2{}
		return
	}

	thrust := in.Thrust()
	p.Vel = p.Vel.Add(thrust.Scale(s.movement.Acceleration * dt))
	p.Vel = p.Vel.Scale(s.movement.Friction)
	p.Vel = p.Vel.Limit(s.movement.MaxSpeed)

	if thrust.IsZero() && p.Vel.Len() < s.movement.StopSpeed {
		p.Vel = entity.Vec2{}
	}
}

// Integrate advances every live entity by velocity * dt.
// Enemies steer along their pattern first; the starship is clamped to the screen.
func (s *PhysicsSystem) Integrate(w *world.World, dt float64) {
	if p := w.Player; p != nil && p.Alive {
		p.Advance(dt)
		s.clampPlayer(p)
	}
	for _, e := range w.Enemies {
		if !e.Alive {
			continue
		}
		e.Steer(dt)
		e.Advance(dt)
	}
	for _, pr := range w.Projectiles {
		if pr.Alive {
			pr.Advance(dt)
		}
	}
	for _, d := range w.Debris {
		if d.Alive {
			d.Advance(dt)
			d.Rotate(dt)
		}
	}
}

// clampPlayer keeps the starship's box fully on screen and stops motion
// into the edge it hit
func (s *PhysicsSystem) clampPlayer(p *entity.Player) {
	hw, hh := p.Extent()
	if p.Pos.X < hw {
		p.Pos.X = hw
		p.Vel.X = 0
	} else if p.Pos.X > s.width-hw {
		p.Pos.X = s.width - hw
		p.Vel.X = 0
	}
	if p.Pos.Y < hh {
		p.Pos.Y = hh
		p.Vel.Y = 0
	} else if p.Pos.Y > s.height-hh {
		p.Pos.Y = s.height - hh
		p.Vel.Y = 0
	}
}

// Expire ages projectiles and kills every entity that left the
// margin-expanded screen. Returns the number of entities expired.
func (s *PhysicsSystem) Expire(w *world.World, dt float64) int {
	expired := 0
	for _, pr := range w.Projectiles {
		if !pr.Alive {
			continue
		}
		pr.Age(dt)
		if pr.Alive && s.outside(&pr.Body) {
			pr.Kill()
		}
		if !pr.Alive {
			expired++
		}
	}
	for _, e := range w.Enemies {
		if e.Alive && s.outside(&e.Body) {
			e.Kill()
			expired++
		}
	}
	for _, d := range w.Debris {
		if d.Alive && s.outside(&d.Body) {
			d.Kill()
			expired++
		}
	}
	return expired
}

func (s *PhysicsSystem) outside(b *entity.Body) bool {
	return b.OutOfBounds(s.width, s.height, s.margin)
}
