package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/match-center/internal/platform/payload"
)

func TestLiveBundle_LiveStubs(t *testing.T) {
	t.Parallel()

	t.Run("results envelope", func(t *testing.T) {
		t.Parallel()
		bundle := LiveBundle{LiveMatches: payload.Object{
			"results": []any{
				map[string]any{"id": "m1"},
				map[string]any{"id": "m2"},
			},
		}}
		stubs := bundle.LiveStubs()
		require.Len(t, stubs, 2)
		assert.Equal(t, "m1", payload.String(stubs[0]["id"]))
	})

	t.Run("matches key fallback", func(t *testing.T) {
		t.Parallel()
		bundle := LiveBundle{LiveMatches: payload.Object{
			"matches": []any{
				map[string]any{"id": "m3"},
				"not a match",
			},
		}}
		stubs := bundle.LiveStubs()
		require.Len(t, stubs, 1)
		assert.Equal(t, "m3", payload.String(stubs[0]["id"]))
	})

	t.Run("empty feed", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, LiveBundle{LiveMatches: payload.Object{}}.LiveStubs())
	})
}

func TestLiveBundle_CountryNames(t *testing.T) {
	t.Parallel()

	bundle := LiveBundle{Countries: payload.Object{
		"results": []any{
			map[string]any{"id": "c1", "name": "England"},
			map[string]any{"id": "c2", "name": "Italy"},
			map[string]any{"id": "", "name": "nameless"},
			map[string]any{"id": "c3"},
		},
	}}

	names := bundle.CountryNames()
	require.Len(t, names, 2)
	assert.Equal(t, "England", names["c1"])
	assert.Equal(t, "Italy", names["c2"])
}
