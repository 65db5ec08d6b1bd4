// Package knightsliars explores the knights-and-liars labeling problem on
// graphs: every vertex is red (a knight) or blue (a liar); a knight has
// exactly as many red as blue neighbours, a liar does not.
//
// Layout:
//
//	core/       undirected simple graph with string IDs, thread-safe
//	builder/    lattices (grid, d-dim, torus, triangular) and small graphs
//	gridgraph/  shaped boards from text masks
//	bfs/        breadth-first search and connected components
//	forcing/    fixed-point propagation of vertices forced blue
//	labeling/   validity check of a labeling
//	solver/     maximum-red labelings via pseudo-boolean optimisation
//	bound/      closed-form estimate for grids
//	render/     text plots of lattice vertex sets
//	config/     YAML configuration of the CLI
//	cmd/knightsliars  command-line interface
//
// Quick start:
//
//	g, _ := builder.BuildGraph(nil, builder.Grid(10, 10))
//	forced, _ := forcing.Closure(g)
//	sol, _ := solver.NewPBSolver(solver.WithPresolve()).Solve(ctx, g)
//	fmt.Print(render.TextPlot(10, 10, sol.Red))
package knightsliars
