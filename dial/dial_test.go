package dial_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sboyles/tapsue/bush"
	"github.com/sboyles/tapsue/dial"
	"github.com/sboyles/tapsue/network"
)

func parallelPaths(t *testing.T) *network.Network {
	t.Helper()
	net, err := network.New(4, 2, 2)
	require.NoError(t, err)
	for _, e := range [][2]int{{0, 2}, {2, 1}, {0, 3}, {3, 1}} {
		_, err := net.AddArc(network.Arc{
			Tail: e[0], Head: e[1],
			FreeFlowTime: 1, Capacity: 100, Alpha: 0, Beta: 1,
		})
		require.NoError(t, err)
	}
	require.NoError(t, net.SetDemand(0, 1, 80))
	require.NoError(t, net.Finalize())
	return net
}

func TestLoadOriginSymmetricSplit(t *testing.T) {
	net := parallelPaths(t)
	s, err := bush.Build(net)
	require.NoError(t, err)

	dial.LoadOrigin(s, 0, 1.0)

	// Both paths are identical in cost, so symmetric likelihoods split the
	// 80 units of demand evenly across each leg: scenario (b).
	require.InDelta(t, 40, s.Flow[0], 1e-9) // 0->2
	require.InDelta(t, 40, s.Flow[1], 1e-9) // 2->1
	require.InDelta(t, 40, s.Flow[2], 1e-9) // 0->3
	require.InDelta(t, 40, s.Flow[3], 1e-9) // 3->1
}

func TestLoadOriginFlowConservation(t *testing.T) {
	net := parallelPaths(t)
	s, err := bush.Build(net)
	require.NoError(t, err)
	dial.LoadOrigin(s, 0, 1.0)

	for i := 0; i < net.N; i++ {
		inflow, outflow := 0.0, 0.0
		for _, ij := range s.Reverse(0, i) {
			inflow += s.Flow[ij]
		}
		for _, ij := range s.Forward(0, i) {
			outflow += s.Flow[ij]
		}
		if i == 0 {
			require.InDelta(t, net.Demand[0][1], outflow-inflow, 1e-9)
			continue
		}
		want := 0.0
		if i < net.Z {
			want = net.Demand[0][i]
		}
		require.InDelta(t, want, inflow-outflow, 1e-9)
	}
}

func TestLoadOriginZeroDemand(t *testing.T) {
	net := parallelPaths(t)
	s, err := bush.Build(net)
	require.NoError(t, err)
	dial.LoadOrigin(s, 1, 1.0) // origin 1 has no outgoing demand

	for ij := 0; ij < net.NumArcs; ij++ {
		require.Zero(t, s.Flow[ij])
	}
}

func TestLikelihoodBoundedByOne(t *testing.T) {
	net := parallelPaths(t)
	s, err := bush.Build(net)
	require.NoError(t, err)
	dial.LoadOrigin(s, 0, 1.0)

	for _, ij := range s.Forward(0, 0) {
		require.LessOrEqual(t, s.Likelihood[ij], 1.0+1e-9)
	}
}

func TestLoadOriginNoNaNWhenUnreached(t *testing.T) {
	// Node 3 unreachable in bush r=0 forces SPCost[3] = +Inf and
	// likelihood 0 on its outgoing arcs, never NaN: scenario (d).
	net, err := network.New(4, 2, 2)
	require.NoError(t, err)
	_, err = net.AddArc(network.Arc{Tail: 0, Head: 1, FreeFlowTime: 1, Capacity: 10, Beta: 1})
	require.NoError(t, err)
	_, err = net.AddArc(network.Arc{Tail: 3, Head: 1, FreeFlowTime: 1, Capacity: 10, Beta: 1})
	require.NoError(t, err)
	require.NoError(t, net.SetDemand(0, 1, 10))
	require.NoError(t, net.Finalize())

	s, err := bush.Build(net)
	require.NoError(t, err)
	dial.LoadOrigin(s, 0, 1.0)

	for ij := 0; ij < net.NumArcs; ij++ {
		require.False(t, math.IsNaN(s.Flow[ij]))
		require.False(t, math.IsNaN(s.Likelihood[ij]))
	}
}
