package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRightsFor_BelowAllThresholds(t *testing.T) {
	assert.Empty(t, RightsFor(NewWeight(1, 100)))
}

func TestRightsFor_BracketBoundaries(t *testing.T) {
	// Exactly at a threshold unlocks that bracket.
	assert.Len(t, RightsFor(NewWeight(1, 20)), 4)
	assert.Len(t, RightsFor(NewWeight(1, 10)), 6)
	assert.Len(t, RightsFor(NewWeight(3, 20)), 7)
	assert.Len(t, RightsFor(NewWeight(1, 4)), 8)
	assert.Len(t, RightsFor(NewWeight(1, 1)), 8)
}

func TestRightsFor_AscendingOrder(t *testing.T) {
	rights := RightsFor(NewWeight(1, 4))
	assert.Equal(t, "apply to court to prevent the conversion of a public company into a private company", rights[0])
	assert.Equal(t, "prevent the passing of a special resolution", rights[7])
}

func TestRightsFor_Monotonic(t *testing.T) {
	// Higher weight never loses a bracket: lower rights are a prefix of higher.
	steps := []Weight{
		NewWeight(1, 100),
		NewWeight(6, 100),
		NewWeight(11, 100),
		NewWeight(16, 100),
		NewWeight(26, 100),
	}
	prev := RightsFor(steps[0])
	for _, w := range steps[1:] {
		cur := RightsFor(w)
		assert.GreaterOrEqual(t, len(cur), len(prev))
		assert.Equal(t, prev, cur[:len(prev)])
		prev = cur
	}
}

func TestRightsBrackets_ReturnsCopy(t *testing.T) {
	b := RightsBrackets()
	assert.Len(t, b, 4)
	b[0].Rights = nil
	assert.NotNil(t, RightsBrackets()[0].Rights)
}

func TestBaseUnits(t *testing.T) {
	assert.Equal(t, int64(13000000), BaseUnits(13000000, 0))
	assert.Equal(t, int64(1300), BaseUnits(13, 2))
}

func TestVotePolicy_Valid(t *testing.T) {
	assert.True(t, VotePolicyWeightProportional.Valid())
	assert.True(t, VotePolicyOneHolderOneVote.Valid())
	assert.False(t, VotePolicy("PLURALITY").Valid())
}
