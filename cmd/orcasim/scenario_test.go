package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/orca2d/simconfig"
	"github.com/katalvlaran/orca2d/vector2"
)

func TestBuildScenario_HeadOnProducesTwoOpposingBodies(t *testing.T) {
	cfg, err := simconfig.New(nil)
	require.NoError(t, err)

	sim, err := buildScenario("headon", 0, cfg)
	require.NoError(t, err)
	require.Len(t, sim.bodies, 2)
	assert.Equal(t, sim.bodies[0].position, vector2.Neg(sim.bodies[1].position))
}

func TestBuildScenario_RandomProducesRequestedCount(t *testing.T) {
	cfg, err := simconfig.New(nil)
	require.NoError(t, err)

	sim, err := buildScenario("random", 12, cfg)
	require.NoError(t, err)
	assert.Len(t, sim.bodies, 12)
}

func TestBuildScenario_UnknownNameFails(t *testing.T) {
	cfg, err := simconfig.New(nil)
	require.NoError(t, err)

	_, err = buildScenario("nonsense", 1, cfg)
	assert.Error(t, err)
}

func TestSimulation_CommitAdvancesPositionsFromVelocities(t *testing.T) {
	cfg, err := simconfig.New(nil)
	require.NoError(t, err)
	sim, err := buildScenario("headon", 0, cfg)
	require.NoError(t, err)

	snapshots := sim.snapshots()
	require.Len(t, snapshots, 2)
	require.Len(t, snapshots[0].Neighbors, 1)

	before := sim.bodies[0].position
	velocities := []vector2.Vector2{vector2.New(1, 0), vector2.New(-1, 0)}
	sim.commit(velocities, 1.0)
	assert.NotEqual(t, before, sim.bodies[0].position)
}
