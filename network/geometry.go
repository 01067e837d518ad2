package network

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/encoding"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/Stellacore/orinet/ga"
)

// graphEdge adapts an Edge payload to gonum's weighted edge surface so
// the payload can ride in the underlying graph structure.
type graphEdge struct {
	fNode, tNode graph.Node
	payload      Edge
}

// From satisfies graph.Edge.
func (e graphEdge) From() graph.Node { return e.fNode }

// To satisfies graph.Edge.
func (e graphEdge) To() graph.Node { return e.tNode }

// ReversedEdge satisfies graph.Edge; the payload direction is
// unaffected (EdgeDir governs interpretation, not storage order).
func (e graphEdge) ReversedEdge() graph.Edge {
	return graphEdge{fNode: e.tNode, tNode: e.fNode, payload: e.payload}
}

// Weight satisfies graph.WeightedEdge.
func (e graphEdge) Weight() float64 { return e.payload.Weight() }

// Attributes labels the edge for DOT export with its vertex pair and
// weight.
func (e graphEdge) Attributes() []encoding.Attribute {
	return []encoding.Attribute{{
		Key: "label",
		Value: fmt.Sprintf("%d-->%d\n%g",
			e.fNode.ID(), e.tNode.ID(), e.Weight()),
	}}
}

// Geometry represents the geometry of a rigid-body network: station
// frames as vertices and relative orientations as weighted edges.
//
// Separate instances share nothing; callers wanting parallelism run
// independent Geometry values. A single instance is not safe for
// concurrent mutation.
type Geometry struct {
	vertIDFromStaKey map[StaKey]VertID
	grf              *simple.WeightedUndirectedGraph
}

// NewGeometry returns an empty network.
func NewGeometry() *Geometry {
	return &Geometry{
		vertIDFromStaKey: make(map[StaKey]VertID),
		grf:              simple.NewWeightedUndirectedGraph(0, math.Inf(1)),
	}
}

// HasStaKey reports whether the station is already a vertex.
func (g *Geometry) HasStaKey(staKey StaKey) bool {
	_, ok := g.vertIDFromStaKey[staKey]
	return ok
}

// ensureStaFrameExists adds a vertex for staKey unless already present.
func (g *Geometry) ensureStaFrameExists(staKey StaKey) {
	if !g.HasStaKey(staKey) {
		vid := VertID(g.grf.NewNode().ID())
		g.grf.AddNode(StaFrame{vid: vid, key: staKey})
		g.vertIDFromStaKey[staKey] = vid
	}
}

// vertIDForStaKey returns the vertex for a station key.
func (g *Geometry) vertIDForStaKey(staKey StaKey) (VertID, bool) {
	vid, ok := g.vertIDFromStaKey[staKey]
	return vid, ok
}

// staKeyForVertID returns the station key stored at a vertex.
func (g *Geometry) staKeyForVertID(vid VertID) (StaKey, bool) {
	node := g.grf.Node(int64(vid))
	if node == nil {
		return NullKey, false
	}
	return node.(StaFrame).Key(), true
}

// InsertEdge adds edge between its two endpoint frames, creating the
// frames if necessary. An existing edge between the same pair is
// replaced (augmentation in place is the robust variant's
// AccumulateXform). Equal or invalid endpoints yield ErrBadEdgeDir.
func (g *Geometry) InsertEdge(edge Edge) error {
	dir := edge.Dir()
	if !dir.IsValid() {
		return fmt.Errorf("%w: %s", ErrBadEdgeDir, dir.InfoString(""))
	}

	g.ensureStaFrameExists(dir.From)
	g.ensureStaFrameExists(dir.Into)

	vid1, ok1 := g.vertIDForStaKey(dir.From)
	vid2, ok2 := g.vertIDForStaKey(dir.Into)
	if !(ok1 && ok2) {
		// vertex management failed - a programming bug, not a data case
		return fmt.Errorf("%w: insertEdge vertex management (%s)",
			ErrStaKeyNotFound, dir.InfoString(""))
	}

	g.grf.SetWeightedEdge(graphEdge{
		fNode: g.grf.Node(int64(vid1)),
		tNode: g.grf.Node(int64(vid2)),
		payload: edge,
	})
	return nil
}

// Edge returns the edge joining the stations of edgeDir regardless of
// the stored direction; ok is false when either station is unknown or
// no edge exists.
func (g *Geometry) Edge(edgeDir EdgeDir) (Edge, bool) {
	vid1, ok1 := g.vertIDForStaKey(edgeDir.From)
	vid2, ok2 := g.vertIDForStaKey(edgeDir.Into)
	if !(ok1 && ok2) {
		return nil, false
	}
	we := g.grf.WeightedEdge(int64(vid1), int64(vid2))
	if we == nil {
		return nil, false
	}
	return we.(graphEdge).payload, true
}

// edgeForVertPair recovers the edge joining two vertices, oriented so
// that its direction runs staKey(vidFrom) -> staKey(vidInto). A stored
// direction matching neither way indicates a corrupted network.
func (g *Geometry) edgeForVertPair(vidFrom, vidInto VertID) (Edge, error) {
	keyFrom, okF := g.staKeyForVertID(vidFrom)
	keyInto, okI := g.staKeyForVertID(vidInto)
	if !(okF && okI) {
		return nil, fmt.Errorf("%w: vertex pair (%d,%d)",
			ErrStaKeyNotFound, vidFrom, vidInto)
	}
	we := g.grf.WeightedEdge(int64(vidFrom), int64(vidInto))
	if we == nil {
		return nil, fmt.Errorf("%w: vertex pair (%d,%d)",
			ErrEdgeNotFound, vidFrom, vidInto)
	}
	useEdge := we.(graphEdge).payload

	wantDir := EdgeDir{From: keyFrom, Into: keyInto}
	switch wantDir.CompareTo(useEdge.Dir()) {
	case Forward:
		return useEdge, nil
	case Reverse:
		return useEdge.Reversed(), nil
	}
	return nil, fmt.Errorf("%w: have %s want %s", ErrDirMismatch,
		useEdge.Dir().InfoString(""), wantDir.InfoString(""))
}

// SizeVerts returns the number of station frames.
func (g *Geometry) SizeVerts() int { return len(g.vertIDFromStaKey) }

// SizeEdges returns the number of stored edges.
func (g *Geometry) SizeEdges() int {
	num := 0
	for it := g.grf.WeightedEdges(); it.Next(); {
		num++
	}
	return num
}

// InfoString summarizes the network sizes, prefixed with title when
// non-empty.
func (g *Geometry) InfoString(title string) string {
	pre := ""
	if title != "" {
		pre = title + " "
	}
	return fmt.Sprintf("%ssizeVerts: %d sizeEdges: %d\n",
		pre, g.SizeVerts(), g.SizeEdges())
}

// InfoStringContents reports every vertex and edge in deterministic
// sorted order. Edges print in their low-to-high key orientation.
func (g *Geometry) InfoStringContents(title string) string {
	infoVerts := make([]string, 0, g.SizeVerts())
	for staKey := range g.vertIDFromStaKey {
		infoVerts = append(infoVerts, fmt.Sprintf("VertKey: %8d", staKey))
	}

	infoEdges := make([]string, 0, g.SizeEdges())
	for it := g.grf.WeightedEdges(); it.Next(); {
		edge := it.WeightedEdge().(graphEdge).payload
		if edge.Dir().IsReverse() {
			edge = edge.Reversed()
		}
		infoEdges = append(infoEdges, "EdgeId: "+edge.InfoString(""))
	}

	sort.Strings(infoVerts)
	sort.Strings(infoEdges)

	var sb strings.Builder
	sb.WriteString(g.InfoString(title))
	sb.WriteString("vertices...")
	for _, infoVert := range infoVerts {
		sb.WriteString("\n")
		sb.WriteString(infoVert)
	}
	sb.WriteString("\n")
	sb.WriteString("edges...")
	for _, infoEdge := range infoEdges {
		sb.WriteString("\n")
		sb.WriteString(infoEdge)
	}
	return sb.String()
}

// allStaFrames returns every frame sorted by station key.
func (g *Geometry) allStaFrames() []StaFrame {
	frames := make([]StaFrame, 0, g.SizeVerts())
	for staKey, vid := range g.vertIDFromStaKey {
		frames = append(frames, StaFrame{vid: vid, key: staKey})
	}
	sort.Slice(frames, func(i, j int) bool { return frames[i].key < frames[j].key })
	return frames
}

// xformForEdge returns the propagation transform of an edge oriented
// vidFrom -> vidInto (the composition x_into = xform * x_from).
func (g *Geometry) xformForEdge(vidFrom, vidInto VertID) (ga.Transform, error) {
	useEdge, err := g.edgeForVertPair(vidFrom, vidInto)
	if err != nil {
		return ga.NullXform(), err
	}
	return useEdge.Xform(), nil
}
