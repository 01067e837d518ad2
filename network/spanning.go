package network

import (
	"fmt"
	"sort"
)

// SpanningEdges returns the edges of a minimum-weight spanning tree of
// the network, Kruskal style: all edges stably sorted by ascending
// weight (fit error), accepted greedily under a union-find cycle
// check. For a disconnected network the result is a minimum spanning
// forest, one tree per connected component.
//
// Candidate edges are enumerated in ascending station-key order before
// the stable sort, so equal-weight tie-breaks are deterministic for a
// given network content.
//
// Complexity: O(E log E + alpha(V)*E). Memory: O(E + V).
func (g *Geometry) SpanningEdges() []EdgeID {
	numVerts := g.SizeVerts()
	if numVerts < 2 {
		return []EdgeID{}
	}

	// candidate edges with canonical low/high key order
	type candidate struct {
		eid    EdgeID
		weight float64
		loKey  StaKey
		hiKey  StaKey
	}
	cands := make([]candidate, 0, g.SizeEdges())
	for it := g.grf.WeightedEdges(); it.Next(); {
		we := it.WeightedEdge().(graphEdge)
		keyF, _ := g.staKeyForVertID(VertID(we.fNode.ID()))
		keyT, _ := g.staKeyForVertID(VertID(we.tNode.ID()))
		cand := candidate{
			eid:    EdgeID{U: VertID(we.fNode.ID()), V: VertID(we.tNode.ID())},
			weight: we.Weight(),
			loKey:  min(keyF, keyT),
			hiKey:  max(keyF, keyT),
		}
		cands = append(cands, cand)
	}

	// deterministic base order, then stable sort by ascending weight
	sort.Slice(cands, func(i, j int) bool {
		if cands[i].loKey != cands[j].loKey {
			return cands[i].loKey < cands[j].loKey
		}
		return cands[i].hiKey < cands[j].hiKey
	})
	sort.SliceStable(cands, func(i, j int) bool {
		return cands[i].weight < cands[j].weight
	})

	// disjoint-set forest with path compression and union by rank
	parent := make(map[VertID]VertID, numVerts)
	rank := make(map[VertID]int, numVerts)
	for _, vid := range g.vertIDFromStaKey {
		parent[vid] = vid
		rank[vid] = 0
	}
	find := func(u VertID) VertID {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}
		return u
	}
	union := func(u, v VertID) {
		rootU, rootV := find(u), find(v)
		if rootU == rootV {
			return
		}
		if rank[rootU] < rank[rootV] {
			parent[rootU] = rootV
		} else {
			parent[rootV] = rootU
			if rank[rootU] == rank[rootV] {
				rank[rootU]++
			}
		}
	}

	// greedy acceptance; complete once |V|-1 edges joined
	mst := make([]EdgeID, 0, numVerts-1)
	for _, cand := range cands {
		if find(cand.eid.U) != find(cand.eid.V) {
			union(cand.eid.U, cand.eid.V)
			mst = append(mst, cand.eid)
			if len(mst) == numVerts-1 {
				break
			}
		}
	}

	return mst
}

// NetworkTree returns a new Geometry containing only the listed edges,
// each re-oriented to the canonical direction from the lower station
// key into the higher. Feeding the result of SpanningEdges produces a
// network that minimally spans this one, ready for propagation.
func (g *Geometry) NetworkTree(eids []EdgeID) (*Geometry, error) {
	network := NewGeometry()

	for _, eid := range eids {
		key1, ok1 := g.staKeyForVertID(eid.U)
		key2, ok2 := g.staKeyForVertID(eid.V)
		if !(ok1 && ok2) {
			return nil, fmt.Errorf("%w: edge id (%d,%d)",
				ErrStaKeyNotFound, eid.U, eid.V)
		}

		we := g.grf.WeightedEdge(int64(eid.U), int64(eid.V))
		if we == nil {
			return nil, fmt.Errorf("%w: edge id (%d,%d)",
				ErrEdgeNotFound, eid.U, eid.V)
		}
		origEdge := we.(graphEdge).payload

		// canonical low-into-high orientation
		wantDir := EdgeDir{From: min(key1, key2), Into: max(key1, key2)}
		var useEdge Edge
		switch wantDir.CompareTo(origEdge.Dir()) {
		case Forward:
			useEdge = origEdge
		case Reverse:
			useEdge = origEdge.Reversed()
		default:
			return nil, fmt.Errorf("%w: have %s want %s", ErrDirMismatch,
				origEdge.Dir().InfoString(""), wantDir.InfoString(""))
		}

		if err := network.InsertEdge(useEdge); err != nil {
			return nil, err
		}
	}

	return network, nil
}
