// Package dataset writes simulated surface-code training data to disk.
//
// Each Job (basis, distance, rounds, error rate) gets its own directory under
// the output root, named by DirName, e.g. "bZ_d3_r01_p0.001". A directory
// holds:
//
//	circuit_ideal.stim        sweep-prepared circuit without noise
//	circuit_noisy.stim        same circuit under the noise model
//	sweep.{fmt}               sweep bits (when a sweep distribution is set)
//	measurements.{fmt}        samples of the noisy circuit (when sampling)
//	detection_events.{fmt}    measurements converted against the ideal circuit
//	obs_flips_actual.01       observable flips from the same conversion
//	manifest.yaml             parameters, counts and the list of files
//
// Sampling and conversion are delegated to a Sampler, normally a
// *stimcli.Runner. Run fans jobs out over a bounded errgroup; the first
// failure cancels the rest.
package dataset
