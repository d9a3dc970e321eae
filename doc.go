// Package ossim provides an operating-system resource management simulator.
//
// The engine runs teaching algorithms over a collection of process records:
//
//   - scheduler  – fcfs, sjf, srtf, srtfp, rr and priority CPU scheduling
//   - allocation – first, best and worst fit contiguous memory allocation
//   - deadlock   – detection by iterative reduction
//
// Every run yields a model.Envelope carrying the decorated records, the
// family specific artefacts (timeline, memory map or matrices) and metrics.
// End-users typically interact with the engine via the Service façade
// exposed by the root package:
//
//	srv, _ := ossim.New()
//	_, _ = srv.LoadSample(ctx, "fcfs")
//	envelope, _ := srv.Execute(ctx, "rr")
//	URL, _ := srv.Export(ctx)
//
// For more details see the individual sub-packages.
package ossim
