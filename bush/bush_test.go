package bush_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sboyles/tapsue/bush"
	"github.com/sboyles/tapsue/network"
)

// parallelPaths builds scenario (b) from spec.md §8: two symmetric parallel
// paths 0->2->1 and 0->3->1, zones {0,1}, through-nodes {2,3}.
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

func TestBuildAcyclicityInvariant(t *testing.T) {
	net := parallelPaths(t)
	s, err := bush.Build(net)
	require.NoError(t, err)

	for r := 0; r < net.Z; r++ {
		for i := 0; i < net.N; i++ {
			for _, ij := range s.Forward(r, i) {
				j := net.Arcs[ij].Head
				require.Less(t, s.Position[r][i], s.Position[r][j],
					"arc (%d,%d) must go from a lower to a higher bush position", i, j)
			}
		}
	}
}

func TestBuildOriginFirstInOrder(t *testing.T) {
	net := parallelPaths(t)
	s, err := bush.Build(net)
	require.NoError(t, err)
	for r := 0; r < net.Z; r++ {
		require.Equal(t, r, s.BushOrder[r][0])
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	net := parallelPaths(t)
	s1, err := bush.Build(net)
	require.NoError(t, err)
	s2, err := bush.Build(net)
	require.NoError(t, err)

	for r := 0; r < net.Z; r++ {
		require.Equal(t, s1.BushOrder[r], s2.BushOrder[r])
	}
}

func TestBuildZeroDemandOrigin(t *testing.T) {
	net := parallelPaths(t)
	// demand[1][*] is all zero: scenario (c).
	s, err := bush.Build(net)
	require.NoError(t, err)
	require.Equal(t, int64(0), s.NumBushPaths[1].Int64())
}

func TestBuildDisconnectedDestination(t *testing.T) {
	// Zone 2 has positive demand from origin 0 but no arc reaches it at
	// all: scenario (d). Building bushes must not error, and the
	// unreachable zone contributes nothing to the path count.
	net, err := network.New(5, 3, 3)
	require.NoError(t, err)
	_, err = net.AddArc(network.Arc{Tail: 0, Head: 1, FreeFlowTime: 1, Capacity: 10, Beta: 1})
	require.NoError(t, err)
	require.NoError(t, net.SetDemand(0, 2, 10))
	require.NoError(t, net.Finalize())

	s, err := bush.Build(net)
	require.NoError(t, err)
	require.Equal(t, int64(0), s.NumBushPaths[0].Int64())
}
