// Package homeostat is a closed-loop path planner that regulates the
// structure of the routes it finds.
//
// Every cycle a search picks a path, the path is encoded as a sequence of
// complex headings, its regularity is scored with the Gowers U² norm, and a
// proportional controller with decay turns the gap between that score and a
// target into the structure penalty used by the next search. Straight,
// repetitive routes score high; when they exceed the target the penalty grows
// until a less predictable route becomes cheaper.
//
// Under the hood, everything is organized into small packages:
//
//	core/      - NodeID, Point, Arc, the Topology contract and an explicit Graph
//	gridgraph/ - grid topology (Conn4/Conn8, walls, terrain), components, breach, mazes
//	pathfind/  - A*/Dijkstra over (node, recent trail) states with a mutable cost
//	spectral/  - radix-2 FFT, autocorrelation and a reusable workspace
//	gowers/    - path encoding and the U² regularity estimator
//	control/   - controller, immutable Policy and the structure-aware cost
//	network/   - capacity and flow routing over an explicit Graph
//	loop/      - the per-cycle Agent with logging and Prometheus metrics
//	report/    - concurrent strategy runs and per-strategy summaries
//	config/    - YAML configuration and topology builders
//
// The command in cmd/homeostat runs the loop on a grid or a network and
// compares strategies:
//
//	homeostat grid
//	homeostat network --log-level info
//	homeostat analyze --config run.yaml --metrics-addr :9090
//
// Quick ASCII view of one cycle:
//
//	Policy ──▶ FindPath ──▶ Encode ──▶ U² score ──▶ Observe ──▶ Policy
//	   ▲                                                          │
//	   └──────────────────────────────────────────────────────────┘
package homeostat
