// 15 Oct 2026

// Package nbody is the orbit kernel. It moves the sun and the four
// gas giants under Newtonian gravity with a fixed step and reports the
// total energy. Everything is float64 and the loops always run in the
// same order, so the printed digits are reproducible.
package nbody

import "math"

const (
	NBody = 5
	DT    = 0.01 // default step, in years
)

// System owns the bodies. They are addressed by index so that the pair
// loop can update two different slots without aliasing.
type System struct {
	bodies [NBody]Body
}

// New places the bodies and then gives the sun the velocity which
// makes the total momentum zero.
func New() *System {
	s := &System{bodies: planets()}
	px, py, pz := s.Momentum()
	sun := &s.bodies[0]
	sun.Vx = -px / SolarMass
	sun.Vy = -py / SolarMass
	sun.Vz = -pz / SolarMass
	return s
}

// Body returns a copy of body i
func (s *System) Body(i int) Body { return s.bodies[i] }

// Momentum is the sum of mass * velocity, added up in body order.
func (s *System) Momentum() (px, py, pz float64) {
	for i := range s.bodies {
		b := &s.bodies[i]
		px += b.Vx * b.mass
		py += b.Vy * b.mass
		pz += b.Vz * b.mass
	}
	return px, py, pz
}

// Advance moves the system forward by dt. First every pair (i < j)
// gets its equal and opposite velocity change. Only after all pairs
// are done do positions move, using the new velocities.
func (s *System) Advance(dt float64) {
	for i := 0; i < NBody; i++ {
		bi := &s.bodies[i]
		for j := i + 1; j < NBody; j++ {
			bj := &s.bodies[j]
			dx := bi.X - bj.X
			dy := bi.Y - bj.Y
			dz := bi.Z - bj.Z

			dSquared := dx*dx + dy*dy + dz*dz
			distance := math.Sqrt(dSquared)
			mag := dt / (dSquared * distance)

			bi.Vx -= dx * bj.mass * mag
			bi.Vy -= dy * bj.mass * mag
			bi.Vz -= dz * bj.mass * mag

			bj.Vx += dx * bi.mass * mag
			bj.Vy += dy * bi.mass * mag
			bj.Vz += dz * bi.mass * mag
		}
	}

	for i := range s.bodies {
		b := &s.bodies[i]
		b.X += dt * b.Vx
		b.Y += dt * b.Vy
		b.Z += dt * b.Vz
	}
}

// Energy is kinetic minus potential energy. It does not change the
// system. For each body we add its kinetic term, then subtract its
// potential with every later body.
func (s *System) Energy() float64 {
	var e float64
	for i := 0; i < NBody; i++ {
		bi := &s.bodies[i]
		e += 0.5 * bi.mass * (bi.Vx*bi.Vx + bi.Vy*bi.Vy + bi.Vz*bi.Vz)
		for j := i + 1; j < NBody; j++ {
			bj := &s.bodies[j]
			dx := bi.X - bj.X
			dy := bi.Y - bj.Y
			dz := bi.Z - bj.Z
			distance := math.Sqrt(dx*dx + dy*dy + dz*dz)
			e -= (bi.mass * bj.mass) / distance
		}
	}
	return e
}

// Run advances n steps of dt. If every > 0, sample is called with the
// step number and energy at step 0 and every `every` steps after that.
func (s *System) Run(n int, dt float64, every int, sample func(step int, e float64)) {
	if every > 0 && sample != nil {
		sample(0, s.Energy())
	}
	for i := 1; i <= n; i++ {
		s.Advance(dt)
		if every > 0 && sample != nil && (i%every == 0 || i == n) {
			sample(i, s.Energy())
		}
	}
}
