// Package gridpath finds cheapest paths across weighted square grids and
// lets you watch the search frontier grow.
//
// What is inside?
//
//   - grid/      – cells, costs, barriers, endpoints; layout parsing and
//     on-demand 4-connected adjacency
//   - frontier/  – min-priority queue with (distance, insertion) ordering
//     and O(1) membership
//   - dijkstra/  – the search itself, the Observer protocol, Recorder,
//     path reconstruction and a goroutine Worker streaming frames
//   - config/    – settings from .env and the environment
//   - api/       – gin routes for searching over HTTP, request IDs and
//     Prometheus metrics
//   - cmd/gridpath  – interactive terminal editor and animator
//   - cmd/gridpathd – HTTP server
//
// Quick example:
//
//	g, _ := grid.ParseString(`
//		S8E
//		.#.
//		...`, grid.DefaultOptions())
//	res, _ := dijkstra.Run(ctx, g, nil)
//	// res.Cost == 6: the route around the heavy cell beats 8+1.
//
// Moves cost the entry cost of the cell moved into. Barriers are never
// entered and movement is never diagonal.
package gridpath
