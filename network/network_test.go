package network_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/Stellacore/orinet/ga"
	"github.com/Stellacore/orinet/network"
	"github.com/Stellacore/orinet/random"
	"github.com/Stellacore/orinet/sim"
)

// smallNetworkPoses returns six absolute station poses with assorted
// offsets and attitudes.
func smallNetworkPoses() []ga.Transform {
	return []ga.Transform{
		{Loc: ga.Vector{X: 0, Y: 0, Z: 0}, Att: ga.IdentityAtt()},
		{Loc: ga.Vector{X: 10, Y: 1, Z: -2}, Att: ga.AttFromPhysAngle(ga.E12.Scale(0.3))},
		{Loc: ga.Vector{X: 4, Y: 12, Z: 1}, Att: ga.AttFromPhysAngle(ga.E23.Scale(-0.5))},
		{Loc: ga.Vector{X: -6, Y: 8, Z: 3}, Att: ga.AttFromPhysAngle(ga.E31.Scale(0.8))},
		{Loc: ga.Vector{X: 2, Y: -9, Z: -1}, Att: ga.AttFromPhysAngle(ga.BiVector{X23: 0.2, X31: 0.1, X12: -0.3})},
		{Loc: ga.Vector{X: 13, Y: 7, Z: 5}, Att: ga.AttFromPhysAngle(ga.BiVector{X23: -0.1, X31: 0.4, X12: 0.2})},
	}
}

// TestSmallNetworkScenario builds the six-station network with exact
// relative edges, thins it to a spanning tree, and checks that
// propagation from station 3 reproduces every pose.
func TestSmallNetworkScenario(t *testing.T) {
	staPoses := smallNetworkPoses()
	edgePairs := [][2]int{
		{0, 1}, {0, 2}, {0, 4}, {1, 2}, {1, 4},
		{2, 3}, {2, 5}, {3, 4}, {4, 5},
	}

	geo := network.NewGeometry()
	for _, pair := range edgePairs {
		from, into := pair[0], pair[1]
		rel := xformBetween(staPoses[into], staPoses[from])
		dir := network.EdgeDir{From: network.StaKey(from), Into: network.StaKey(into)}
		require.NoError(t, geo.InsertEdge(network.NewEdgeOri(dir, rel, 0.001)))
	}
	assert.Equal(t, 6, geo.SizeVerts())
	assert.Equal(t, 9, geo.SizeEdges())

	// spanning tree: V - 1 edges
	eids := geo.SpanningEdges()
	require.Len(t, eids, 5)

	tree, err := geo.NetworkTree(eids)
	require.NoError(t, err)
	assert.Equal(t, 6, tree.SizeVerts())
	assert.Equal(t, 5, tree.SizeEdges())

	// propagate the known pose of station 3 through the tree
	staXforms, err := tree.PropagateTransforms(3, staPoses[3])
	require.NoError(t, err)
	require.Len(t, staXforms, 6)

	// characteristic translation scale of the scenario
	charScale := 0.
	for _, pose := range staPoses {
		charScale = math.Max(charScale, r3.Norm(pose.Loc))
	}
	tol := charScale * 1e-13

	probe := ga.Vector{X: 1, Y: 2, Z: -1}
	for key := 0; key < len(staPoses); key++ {
		got, ok := staXforms[network.StaKey(key)]
		require.True(t, ok, "station %d", key)
		exp := staPoses[key]
		assert.True(t, ga.NearlyEquals(got.Apply(probe), exp.Apply(probe), tol),
			"station %d: got %v exp %v", key, got, exp)
	}
}

// TestChainScenario simulates eight stations along a line with noisy
// backsight bundles (no blunders), fuses each bundle into a robust
// edge, and checks that propagated translations degrade no faster than
// the random-walk rate over the hop count.
func TestChainScenario(t *testing.T) {
	sigmaLoc := 0.015
	sigmaAng := 0.0001

	expStas := sim.SequentialStations(8)

	geo := network.NewGeometry()
	for k := 0; k+1 < len(expStas); k++ {
		from, into := k, k+1
		expRel := xformBetween(expStas[into], expStas[from])
		obs := random.NoisyTransforms(expRel, 15, 0,
			sigmaLoc, sigmaAng, random.FullLocRange(), random.FullAngRange())

		dir := network.EdgeDir{From: network.StaKey(from), Into: network.StaKey(into)}
		edge := network.NewEdgeRobust(dir, obs[0], len(obs))
		for _, xform := range obs[1:] {
			edge.AccumulateXform(xform)
		}
		require.NoError(t, geo.InsertEdge(edge))
	}

	tree, err := geo.NetworkTree(geo.SpanningEdges())
	require.NoError(t, err)
	require.Equal(t, 7, tree.SizeEdges())

	staXforms, err := tree.PropagateTransforms(0, expStas[0])
	require.NoError(t, err)
	require.Len(t, staXforms, 8)

	for key := 1; key < len(expStas); key++ {
		got, ok := staXforms[network.StaKey(key)]
		require.True(t, ok, "station %d", key)

		hops := float64(key)
		// noise accumulates random-walk style along the chain; the
		// gate allows for the attitude lever arm as well
		tol := 6.*sigmaLoc*math.Sqrt(hops) + 60.*sigmaAng*hops*10.

		locErr := r3.Norm(got.Loc.Sub(expStas[key].Loc))
		assert.Less(t, locErr, tol, "station %d locErr %v", key, locErr)
	}
}

// TestBacksightNetworkScenario runs the full pipeline on randomly
// connected backsight bundles: fuse bundles robustly, build the
// network, thin, and propagate.
func TestBacksightNetworkScenario(t *testing.T) {
	model := random.NoiseModel{
		SigmaLoc:  0.01,
		SigmaAng:  0.0002,
		LocMinMax: random.MinMax{Min: -80, Max: 80},
		AngMinMax: random.FullAngRange(),
	}

	expStas := sim.SequentialStations(6)
	pairXforms := sim.BacksightTransforms(expStas, 3, 9, 1, model)
	require.NotEmpty(t, pairXforms)

	geo := network.NewGeometry()
	for pair, obs := range pairXforms {
		dir := network.EdgeDir{
			From: network.StaKey(pair.From),
			Into: network.StaKey(pair.Into),
		}
		require.NoError(t, geo.InsertEdge(network.EdgeOriMedianFit(dir, obs)))
	}
	assert.Equal(t, 6, geo.SizeVerts())

	tree, err := geo.NetworkTree(geo.SpanningEdges())
	require.NoError(t, err)
	require.Equal(t, 5, tree.SizeEdges())

	staXforms, err := tree.PropagateTransforms(0, expStas[0])
	require.NoError(t, err)
	require.Len(t, staXforms, 6)

	// every recovered station within a loose multi-hop gate
	for key := range expStas {
		got, ok := staXforms[network.StaKey(key)]
		require.True(t, ok, "station %d", key)
		locErr := r3.Norm(got.Loc.Sub(expStas[key].Loc))
		assert.Less(t, locErr, 0.5, "station %d locErr %v", key, locErr)
	}
}
