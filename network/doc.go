// Package network represents the geometry of a rigid-body orientation
// network: station frames as graph vertices and relative pose
// measurements as weighted edges between them, with minimum spanning
// tree extraction and breadth-first pose propagation on top.
//
// What & Why
//
//   - What is an orientation network?
//     Surveying and SLAM-style sessions produce many relative pose
//     measurements between pairs of stations ("backsights"), noisy and
//     partially redundant. Arranged as a graph - stations as vertices,
//     measurements as edges weighted by fit error - the redundancy
//     becomes navigable: good measurements form cheap edges, blunders
//     expensive ones.
//
//   - Why a minimum spanning tree?
//     Absolute poses only need one connecting path per station, and
//     every extra path risks contradiction. The minimum-weight
//     spanning tree keeps exactly the most trustworthy set of edges
//     that still reaches every station of each component, so the
//     propagated result uses the best available chain of evidence and
//     nothing else.
//
//   - Why breadth-first propagation?
//     Given one anchored station, composing each tree edge's
//     transform outward solves every reachable frame in hop order;
//     breadth-first order keeps the composition chains as short as
//     the tree allows.
//
// Direction convention
//
// MST extraction needs an undirected graph, but a relative
// orientation between two stations is inherently directed. To resolve
// the contention, every edge carries its own EdgeDir: the stored
// transform maps "From" station coordinates into "Into" station
// coordinates, and nothing about graph storage order is assumed. An
// edge recovered from an undirected traversal may therefore need its
// reversed instance (inverse transform, swapped keys) before use:
//
//   - EdgeDir.CompareTo classifies a stored direction against the
//     wanted one as Forward (use as is), Reverse (use Reversed()), or
//     Different (a corrupted network - surfaced as ErrDirMismatch,
//     never repaired silently).
//
// Edge variants
//
// Edge is a closed capability set {Dir, Weight, Xform, Reversed,
// IsValid, InfoString} with three variants:
//
//   - EdgeBase - a null placeholder: direction only, NaN weight,
//     invalid transform. Never valid.
//
//   - EdgeOri - a single pose with a scalar fit error as weight.
//     EdgeOriMedianFit builds one robustly from a bundle of repeat
//     observations (effect-median transform, median hexad scatter as
//     weight).
//
//   - EdgeRobust - a streaming-median accumulator (track.Transforms)
//     over repeated observations. AccumulateXform is defined on this
//     variant only - augmentation of any other variant is a compile
//     error, not a runtime surprise. The weight is the spread of the
//     order statistics flanking the running median; a single sample
//     has no spread and reports a deliberately enormous
//     "very uncertain" constant so spanning-tree selection prefers
//     any corroborated edge.
//
// Geometry operations
//
//   - InsertEdge(edge) - adds an edge, creating missing endpoint
//     frames; rejects self-edges and invalid keys (ErrBadEdgeDir).
//     A second insert between the same pair replaces the edge object;
//     in-place augmentation is the robust variant's AccumulateXform.
//
//   - Edge(edgeDir) - direction-agnostic lookup; reports ok=false for
//     unknown stations or absent edges (lookup is inherently partial,
//     so an ok-return, not an invalid sentinel).
//
//   - SpanningEdges() - Kruskal: stable sort by ascending weight over
//     a deterministically pre-ordered candidate list, union-find with
//     path compression and union by rank, early exit at |V|-1 edges.
//     Disconnected input yields a minimum spanning forest (V-C
//     edges), not an error.
//     Complexity: O(E log E + alpha(V)*E). Memory: O(E + V).
//
//   - NetworkTree(eIDs) - a new Geometry holding only the listed
//     edges, each re-oriented to the canonical low-key-into-high-key
//     direction; the usual input is SpanningEdges output.
//
//   - PropagateTransforms(anchorKey, anchorXform) - seeds the anchor,
//     walks breadth first, and composes xIntoWrtRef =
//     edge.Xform() * xFromWrtRef across every tree edge, re-oriented
//     so the solved station is its domain. Equal-level neighbors are
//     visited in ascending station-key order, so traversal is
//     deterministic. An unknown anchor yields an empty map plus
//     ErrStaKeyNotFound; an empty network yields an empty map and no
//     error.
//     Complexity: O(V + E log V) (neighbor sorting dominates).
//
//   - SizeVerts, SizeEdges, HasStaKey, InfoString,
//     InfoStringContents - counts and deterministic sorted dumps for
//     diagnostics and tests.
//
//   - MarshalDOT - Graphviz rendering via gonum's encoding/dot:
//     vertices labeled by station key, edges by vertex pair and
//     weight. The core holds no file I/O; callers persist the bytes.
//
// Error conditions
//
//   - ErrBadEdgeDir - edge endpoints equal or keys invalid at insert.
//   - ErrStaKeyNotFound - unknown station in a lookup that requires
//     one (e.g. the propagation anchor).
//   - ErrEdgeNotFound - an EdgeID that resolves to no stored edge.
//   - ErrDirMismatch - stored direction data inconsistent with the
//     edge's graph endpoints; indicates a corrupted network, never a
//     recoverable data condition.
//
// Determinism
//
// Graph storage is gonum's simple.WeightedUndirectedGraph, but the
// MST and BFS routines are implemented here rather than delegated:
// equal-weight tie-breaks and equal-level visit order must be stable
// for a given network content, which map-iteration-ordered algorithms
// cannot promise. Separate Geometry instances share nothing; callers
// wanting parallelism run independent instances. A single instance is
// not safe for concurrent mutation.
//
// For worked usage - building a network, thinning it, and recovering
// absolute poses - see example_test.go in this package.
package network
