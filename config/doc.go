// Package config loads homeostat run configuration from YAML.
//
// A File describes the controller set-point and gains, search settings,
// exactly one topology source (a grid or an explicit graph) and optional
// named strategies for comparative runs:
//
//	cycles: 40
//	control:
//	  target_norm: 0.25
//	  proportional_gain: 5
//	  decay_rate: 0.01
//	  tolerance: 0.05
//	search:
//	  heuristic_enabled: true
//	  history: 2
//	  encoding: heading
//	grid:
//	  width: 10
//	  height: 10
//	  connectivity: 8
//
// Grid cells may be given as rows of characters: '.' open, '#' wall and
// '0'-'9' terrain levels. Graph sources list labelled nodes with positions
// and edges with costs and optional capacities.
//
// Decoding rejects unknown keys. Validation runs struct tags through
// go-playground/validator, then the controller's own range checks; every
// failure wraps ErrInvalid. A missing topology section falls back to the
// default 10×10 grid; missing control or search keys keep their defaults.
package config
