// Package preview serves a live view of one transition gate.
//
// The server owns a gate running on an event loop. Browsers load the
// page at / and receive every committed frame over a WebSocket at /ws.
// The gate's children and props are changed over HTTP:
//
//	PUT    /children   JSON node, or null to clear
//	DELETE /children
//	PATCH  /props      JSON prop overrides
//	POST   /scenario   YAML scenario, played in real time
//	GET    /frame      the latest frame
//	GET    /metrics    Prometheus metrics, when enabled
//
// Nodes, overrides and scenarios use the scenario package's formats.
package preview
