// 15 Oct 2026

package nbody

import "math"

const (
	SolarMass   = 4 * math.Pi * math.Pi
	DaysPerYear = 365.24
)

// Body is one mass. Position is in AU, velocity in AU/year and mass in
// solar masses.
type Body struct {
	X, Y, Z    float64
	Vx, Vy, Vz float64
	mass       float64
}

// Mass does not change after the body is made.
func (b Body) Mass() float64 { return b.mass }

// newBody takes velocities in AU/day and masses in solar masses
// and converts them.
func newBody(x, y, z, vx, vy, vz, mass float64) Body {
	return Body{
		X: x, Y: y, Z: z,
		Vx: vx * DaysPerYear, Vy: vy * DaysPerYear, Vz: vz * DaysPerYear,
		mass: mass * SolarMass,
	}
}

// Names of the bodies in the order they are stored
var Names = [NBody]string{"sun", "jupiter", "saturn", "uranus", "neptune"}

// planets are the starting positions of the sun and the four gas giants.
func planets() [NBody]Body {
	return [NBody]Body{
		newBody(0, 0, 0, 0, 0, 0, 1),
		newBody( // jupiter
			4.84143144246472090e+00,
			-1.16032004402742839e+00,
			-1.03622044471123109e-01,
			1.66007664274403694e-03,
			7.69901118419740425e-03,
			-6.90460016972063023e-05,
			9.54791938424326609e-04),
		newBody( // saturn
			8.34336671824457987e+00,
			4.12479856412430479e+00,
			-4.03523417114321381e-01,
			-2.76742510726862411e-03,
			4.99852801234917238e-03,
			2.30417297573763929e-05,
			2.85885980666130812e-04),
		newBody( // uranus
			1.28943695621391310e+01,
			-1.51111514016986312e+01,
			-2.23307578892655734e-01,
			2.96460137564761618e-03,
			2.37847173959480950e-03,
			-2.96589568540237556e-05,
			4.36624404335156298e-05),
		newBody( // neptune
			1.53796971148509165e+01,
			-2.59193146099879641e+01,
			1.79258772950371181e-01,
			2.68067772490389322e-03,
			1.62824170038242295e-03,
			-9.51592254519715870e-05,
			5.15138902046611451e-05),
	}
}
