// Package internal provides the core analysis engine for allocfree.
//
// # Architecture Overview
//
// The analyzer follows a modular architecture with clear separation of concerns:
//
//	                            +------------------+
//	                            |   analyzer.go    |  Entry point, flags, config
//	                            +--------+---------+
//	                                     |
//	                            +--------v---------+
//	                            |     checker      |  Traversal, per-file fan-out
//	                            +--------+---------+
//	                                     |
//	                            +--------v---------+
//	                            |     dispatch     |  Gate, then fan out
//	                            +--------+---------+
//	                                     |
//	        +----------------------------+----------------------------+
//	        |                            |                            |
//	  +-----v-------+          +---------v----------+       +---------v----------+
//	  |   policy    |          |       index        |       |    capabilities    |
//	  | (gating)    |          | (category lookup)  |       | (detectors)        |
//	  +-----+-------+          +--------------------+       +---------+----------+
//	        |                                                         |
//	  +-----v------------+-------------+                    +---------v----------+
//	  | directives/scope | filefilter  |                    | diagnostic (dedup) |
//	  +------------------+-------------+                    +--------------------+
//
// # Capabilities
//
// A [capability.Capability] declares the syntax categories it inspects. The
// [index] maps each category to its capabilities in registration order, and
// the checker subscribes to exactly the indexed categories.
//
// Example registration:
//
//	idx := index.Build([]capability.Capability{
//	    explicit.New(),
//	    knowncall.New(extra),
//	})
//
// # Execution Flow
//
//  1. The checker receives the analysis pass and AST inspector
//  2. [scope.Build] reads //allocfree:check and //allocfree:ignore directives
//  3. Inspector walks the AST with the index node filter, grouping nodes per file
//  4. Files are dispatched in parallel; for each node:
//     - ignored file, opted-out symbol or no opt-in -> skipped
//     - otherwise every interested capability analyzes the node
//  5. Findings are merged in file order, deduplicated, and reported via pass.Report
//
// # Failure Handling
//
// A node whose category is not indexed fails the whole pass with
// [dispatch.ErrUnindexedCategory]. A capability that errors or panics only
// loses its own findings for that node and is listed in the pass result:
//
//	res := pass.ResultOf[allocfree.Analyzer].(*allocfree.Result)
//	for _, name := range res.Degraded.Names() {
//	    log.Printf("%s: %v", name, res.Degraded.Err(name))
//	}
package internal
