package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veridian-labs/dimens-cli/internal/core/domain"
)

func TestServer_handleCheck(t *testing.T) {
	ctx := context.Background()

	t.Run("returns verdict", func(t *testing.T) {
		mockResolver := &mockResolverService{
			verdict: domain.Compatibility{
				Left:             "speed",
				Right:            "length / time",
				Equal:            false,
				Interconvertible: true,
			},
		}

		server, err := NewServer(&Ports{Resolver: mockResolver})
		require.NoError(t, err)

		input := CheckInput{Left: "speed", Right: "length / time"}
		_, output, err := server.handleCheck(ctx, nil, input)

		require.NoError(t, err)
		assert.Equal(t, "speed", output.Left)
		assert.Equal(t, "length / time", output.Right)
		assert.False(t, output.Equal)
		assert.True(t, output.Interconvertible)
		assert.Empty(t, output.Reason)
	})

	t.Run("returns error on resolver failure", func(t *testing.T) {
		mockResolver := &mockResolverService{
			err: errors.New("unknown quantity kind"),
		}

		server, err := NewServer(&Ports{Resolver: mockResolver})
		require.NoError(t, err)

		_, _, err = server.handleCheck(ctx, nil, CheckInput{Left: "bogus", Right: "length"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown quantity kind")
	})
}

func TestServer_handleResolve(t *testing.T) {
	ctx := context.Background()

	t.Run("passes references through", func(t *testing.T) {
		mockResolver := &mockResolverService{
			resolved: domain.ResolvedReference{
				Spec:      "length",
				Unit:      "km",
				Reference: "length[km]",
			},
		}

		server, err := NewServer(&Ports{Resolver: mockResolver})
		require.NoError(t, err)

		input := ResolveInput{References: []string{"length@km", "distance@mi"}}
		_, output, err := server.handleResolve(ctx, nil, input)

		require.NoError(t, err)
		assert.Equal(t, []string{"length@km", "distance@mi"}, mockResolver.gotRefs)
		assert.Equal(t, "length", output.Spec)
		assert.Equal(t, "km", output.Unit)
		assert.Equal(t, "length[km]", output.Reference)
	})

	t.Run("returns error when no common representation", func(t *testing.T) {
		mockResolver := &mockResolverService{err: domain.ErrNoCommonRepresentation}

		server, err := NewServer(&Ports{Resolver: mockResolver})
		require.NoError(t, err)

		_, _, err = server.handleResolve(ctx, nil, ResolveInput{References: []string{"m", "s"}})

		assert.ErrorIs(t, err, domain.ErrNoCommonRepresentation)
	})
}

func TestServer_handleUnitSpec(t *testing.T) {
	ctx := context.Background()

	mockResolver := &mockResolverService{
		report: domain.UnitReport{
			Unit:      "km / h",
			Spec:      "length / time",
			Dimension: "L / T",
			Base:      "m / s",
			Factor:    1000.0 / 3600.0,
		},
	}

	server, err := NewServer(&Ports{Resolver: mockResolver})
	require.NoError(t, err)

	_, output, err := server.handleUnitSpec(ctx, nil, UnitSpecInput{Unit: "km / h"})

	require.NoError(t, err)
	assert.Equal(t, "km / h", output.Unit)
	assert.Equal(t, "length / time", output.Spec)
	assert.Equal(t, "L / T", output.Dimension)
	assert.Equal(t, "m / s", output.Base)
	assert.InDelta(t, 1000.0/3600.0, output.Factor, 1e-12)
}

func TestNewServer_RequiresResolver(t *testing.T) {
	_, err := NewServer(&Ports{})
	assert.ErrorIs(t, err, ErrMissingResolverService)
}
