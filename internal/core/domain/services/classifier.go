package services

import "shipping/internal/core/domain/model/group"

// TierClassifier distributes grouped orders into the five fixed quantity
// tiers. Pure, total and deterministic: every tier is present in the result,
// mapped to an empty slice when no group falls into it.
type TierClassifier struct{}

// NewTierClassifier creates a classifier.
func NewTierClassifier() TierClassifier {
	return TierClassifier{}
}

// Classify buckets groups by tier. The relative order of groups within a
// tier is preserved from the input.
func (TierClassifier) Classify(groups []*group.Group) map[group.Tier][]*group.Group {
	buckets := make(map[group.Tier][]*group.Group, len(group.AllTiers()))
	for _, tier := range group.AllTiers() {
		buckets[tier] = make([]*group.Group, 0)
	}

	for _, g := range groups {
		buckets[g.Tier()] = append(buckets[g.Tier()], g)
	}

	return buckets
}
