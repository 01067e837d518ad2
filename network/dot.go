package network

import "gonum.org/v1/gonum/graph/encoding/dot"

// MarshalDOT renders the network in Graphviz DOT form: vertices
// labeled by station key, edges by their vertex pair and weight. The
// core holds no file I/O; callers persist the bytes as they see fit.
func (g *Geometry) MarshalDOT() ([]byte, error) {
	return dot.Marshal(g.grf, "orinet", "", "  ")
}
