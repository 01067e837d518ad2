package network

import (
	"fmt"
	"sort"

	"github.com/Stellacore/orinet/ga"
)

// queueItem pairs a vertex with its station key during traversal.
type queueItem struct {
	vid VertID
	key StaKey
}

// propagator encapsulates mutable breadth-first propagation state.
type propagator struct {
	geo       *Geometry
	queue     []queueItem
	visited   map[VertID]bool
	staXforms map[StaKey]ga.Transform
}

// PropagateTransforms computes an absolute pose for every frame
// reachable from the anchor: the result map is seeded with
// {anchorKey: anchorXform}, then the network is walked breadth first
// from the anchor and each tree edge - re-oriented so its From side is
// the already-solved endpoint - composes the next station pose as
// xIntoWrtRef = edge.Xform() * xFromWrtRef.
//
// Equal-level neighbors are visited in ascending station-key order, so
// the traversal (and on cyclic networks, which value survives at a
// frame) is deterministic. On a spanning tree every frame receives
// exactly one pose; running a cyclic network through NetworkTree first
// is the supported way to resolve redundancy.
//
// An empty network yields an empty map and no error. Otherwise an
// unknown anchor yields an empty map and ErrStaKeyNotFound. A stored
// direction matching neither traversal orientation yields
// ErrDirMismatch.
func (g *Geometry) PropagateTransforms(
	anchorKey StaKey,
	anchorXform ga.Transform,
) (map[StaKey]ga.Transform, error) {
	staXforms := make(map[StaKey]ga.Transform, g.SizeVerts())
	if g.SizeVerts() == 0 {
		return staXforms, nil
	}

	vid0, ok := g.vertIDForStaKey(anchorKey)
	if !ok {
		return staXforms, fmt.Errorf("%w: anchor %d", ErrStaKeyNotFound, anchorKey)
	}

	w := &propagator{
		geo:       g,
		queue:     make([]queueItem, 0, g.SizeVerts()),
		visited:   make(map[VertID]bool, g.SizeVerts()),
		staXforms: staXforms,
	}

	// anchor seeds the result
	staXforms[anchorKey] = anchorXform
	w.enqueue(queueItem{vid: vid0, key: anchorKey})
	if err := w.loop(); err != nil {
		return staXforms, err
	}
	return staXforms, nil
}

// enqueue marks item visited and adds it to the queue.
func (w *propagator) enqueue(item queueItem) {
	w.visited[item.vid] = true
	w.queue = append(w.queue, item)
}

// dequeue pops the first item.
func (w *propagator) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	return item
}

// loop processes the queue until empty.
func (w *propagator) loop() error {
	for len(w.queue) > 0 {
		item := w.dequeue()
		if err := w.propagateNeighbors(item); err != nil {
			return err
		}
	}
	return nil
}

// neighborsOf returns the unvisited neighbors of item in ascending
// station-key order.
func (w *propagator) neighborsOf(item queueItem) []queueItem {
	var nbrs []queueItem
	for it := w.geo.grf.From(int64(item.vid)); it.Next(); {
		frame := it.Node().(StaFrame)
		vid := VertID(frame.ID())
		if !w.visited[vid] {
			nbrs = append(nbrs, queueItem{vid: vid, key: frame.Key()})
		}
	}
	sort.Slice(nbrs, func(i, j int) bool { return nbrs[i].key < nbrs[j].key })
	return nbrs
}

// propagateNeighbors composes a pose across every tree edge leaving
// item and enqueues the newly solved stations.
func (w *propagator) propagateNeighbors(item queueItem) error {
	xFromWrtRef, ok := w.staXforms[item.key]
	if !ok {
		// every dequeued station was assigned a pose when enqueued
		return fmt.Errorf("%w: traversal reached unsolved station %d",
			ErrStaKeyNotFound, item.key)
	}

	for _, nbr := range w.neighborsOf(item) {
		// edge re-directed so the solved station is its domain
		xIntoWrtFrom, err := w.geo.xformForEdge(item.vid, nbr.vid)
		if err != nil {
			return err
		}
		xIntoWrtRef := xIntoWrtFrom.Mul(xFromWrtRef)
		w.staXforms[nbr.key] = xIntoWrtRef
		w.enqueue(nbr)
	}
	return nil
}
