// 15 Oct 2026

/*

Nbody moves the sun, Jupiter, Saturn, Uranus and Neptune under gravity
and prints the total energy before and after, as a benchmark.
Usage:
	nbody [options] nsteps
Each step is 0.01 years. The output is two lines, the energy with nine
decimal places. For 1000 steps they are
	-0.169075164
	-0.169087605

Flags:
	-json
		print a JSON report with the step count, both energies and the
		relative drift
	-plot
		name of a PNG file for a chart of energy against step
	-every
		steps between points on the chart
	-dt
		time step, if you want something other than 0.01
	-q
		do not print warnings

*/
package main
