// Package scenario loads timed gate scenarios and plays them in virtual
// time.
//
// A scenario is a list of steps. Each step, at a time offset from the
// start, hands the gate new children (or none) and optionally changes
// its props. Playing a scenario records every committed frame, including
// the frames produced when an exit finishes.
//
//	name: card swap
//	props:
//	  enterClass: fade-in
//	  exitClass: fade-out
//	  exitDurationMs: 200
//	steps:
//	  - at: 0
//	    children: {tag: div, class: card, text: first}
//	  - at: 500
//	    children: {tag: section, text: second}
//	  - at: 1000
//	    children: null
//
// Files ending in .json are read as JSON, anything else as YAML.
package scenario
