package group_test

import (
	"testing"

	"shipping/internal/core/domain/model/group"

	"github.com/stretchr/testify/assert"
)

func TestTierForQuantity(t *testing.T) {
	cases := []struct {
		quantity int
		want     group.Tier
	}{
		{0, group.TierSingle},
		{1, group.TierSingle},
		{2, group.TierDouble},
		{3, group.TierTriple},
		{4, group.TierQuad},
		{5, group.TierFivePlus},
		{17, group.TierFivePlus},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, group.TierForQuantity(tc.quantity), "quantity %d", tc.quantity)
	}
}

func TestTier_SortRank(t *testing.T) {
	assert.Equal(t, 0, group.TierSingle.SortRank())
	assert.Equal(t, 1, group.TierDouble.SortRank())
	assert.Equal(t, 2, group.TierTriple.SortRank())
	assert.Equal(t, 3, group.TierQuad.SortRank())
	assert.Equal(t, 4, group.TierFivePlus.SortRank())

	// Unrecognized tiers sort last.
	assert.Equal(t, 5, group.Tier("diger").SortRank())
}

func TestTier_Tag(t *testing.T) {
	assert.Equal(t, "3LU", group.TierTriple.Tag())
	assert.Equal(t, "5VEUSTU", group.TierFivePlus.Tag())
}
