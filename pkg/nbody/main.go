// 15 Oct 2026

package nbody

import (
	"errors"
	"fmt"
	"io"
	"math"

	jsoniter "github.com/json-iterator/go"

	"github.com/andrew-torda/seqbench/pkg/plot"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Args is the set of arguments passed to the main function
type Args struct {
	Steps int       // number of steps, required
	DT    float64   // step size, must be positive
	Wrtr  io.Writer // where the energies go
	JSON  bool      // write a JSON report instead of two lines
	Plot  io.Writer // if not nil, a PNG of energy against step goes here
	Every int       // sample interval for the plot, zero means Steps/500
}

// Report is what one run produces. Drift is (final - initial)/|initial|.
type Report struct {
	Steps   int     `json:"steps"`
	DT      float64 `json:"dt"`
	Initial float64 `json:"initial_energy"`
	Final   float64 `json:"final_energy"`
	Drift   float64 `json:"relative_drift"`
}

// WriteText writes the two energies with nine decimal places.
func (r *Report) WriteText(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%.9f\n%.9f\n", r.Initial, r.Final)
	return err
}

// WriteJSON writes the report as an indented JSON object.
func (r *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// Simulate builds a fresh system, runs it and fills in a report. If
// sample is not nil, it is called as described for System.Run.
func Simulate(steps int, dt float64, every int, sample func(int, float64)) Report {
	s := New()
	r := Report{Steps: steps, DT: dt, Initial: s.Energy()}
	s.Run(steps, dt, every, sample)
	r.Final = s.Energy()
	r.Drift = (r.Final - r.Initial) / math.Abs(r.Initial)
	return r
}

// Main runs the simulation and writes the result. Nothing is written
// if the arguments are bad.
func Main(args *Args) error {
	if args.Steps < 0 {
		return fmt.Errorf("negative number of steps %d", args.Steps)
	}
	if args.Wrtr == nil {
		return errors.New("no writer for output")
	}
	dt := args.DT
	if !(dt > 0) {
		return fmt.Errorf("time step must be positive, got %g", dt)
	}
	var sample func(int, float64)
	var pts plot.Series
	every := 0
	if args.Plot != nil {
		if every = args.Every; every <= 0 {
			every = max(args.Steps/500, 1)
		}
		sample = pts.Add
	}
	r := Simulate(args.Steps, dt, every, sample)

	var err error
	if args.JSON {
		err = r.WriteJSON(args.Wrtr)
	} else {
		err = r.WriteText(args.Wrtr)
	}
	if err != nil {
		return fmt.Errorf("writing energies: %w", err)
	}
	if args.Plot != nil {
		title := fmt.Sprintf("energy, %d steps of %g", args.Steps, dt)
		if err := plot.Write(args.Plot, &pts, title); err != nil {
			return fmt.Errorf("energy plot: %w", err)
		}
	}
	return nil
}
