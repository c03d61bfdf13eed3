package service

import (
	"context"
	"testing"

	"equity-registry/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The rights service runs against a real voting service over mocked repos.
func setupRightsService(t *testing.T) (*RightsServiceImpl, *votingTestDeps) {
	d := setupVotingService(t)
	return NewRightsService(d.svc), d
}

func TestRightsService_OrganicRights_JohnScenario(t *testing.T) {
	svc, d := setupRightsService(t)
	defer d.ctrl.Finish()

	d.seedRegistry(domain.VotePolicyWeightProportional, 13000000)
	d.seedHolders(map[string]int64{"john": 11800000, "jane": 1200000})
	d.seedDelegations(map[string]string{})

	// 1,200,000 / 13,000,000 clears 5% but not 10%.
	rights, err := svc.OrganicRights(context.Background(), "jane")
	require.NoError(t, err)
	assert.Len(t, rights, 4)
	assert.Contains(t, rights, "requisition an extraordinary general meeting")

	rights, err = svc.OrganicRights(context.Background(), "john")
	require.NoError(t, err)
	assert.Len(t, rights, 8)
}

func TestRightsService_EffectiveRights_DelegationUnlocksBracket(t *testing.T) {
	svc, d := setupRightsService(t)
	defer d.ctrl.Finish()

	// jane holds 6%, mark delegates another 5%: effective 11% unlocks the
	// 10% bracket that her own stake misses.
	d.seedRegistry(domain.VotePolicyWeightProportional, 100)
	d.seedHolders(map[string]int64{"john": 89, "jane": 6, "mark": 5})
	d.seedDelegations(map[string]string{"mark": "jane"})

	organic, err := svc.OrganicRights(context.Background(), "jane")
	require.NoError(t, err)
	assert.Len(t, organic, 4)

	effective, err := svc.EffectiveRights(context.Background(), "jane")
	require.NoError(t, err)
	assert.Len(t, effective, 6)
}

func TestRightsService_EffectiveRights_DelegatingHolderHasNone(t *testing.T) {
	svc, d := setupRightsService(t)
	defer d.ctrl.Finish()

	d.seedRegistry(domain.VotePolicyWeightProportional, 100)
	d.seedHolders(map[string]int64{"john": 89, "jane": 11})
	d.seedDelegations(map[string]string{"jane": "john"})

	effective, err := svc.EffectiveRights(context.Background(), "jane")
	require.NoError(t, err)
	assert.Empty(t, effective)
}

func TestRightsService_NotAShareholder(t *testing.T) {
	svc, d := setupRightsService(t)
	defer d.ctrl.Finish()

	d.seedRegistry(domain.VotePolicyWeightProportional, 100)
	d.seedHolders(map[string]int64{})

	_, err := svc.OrganicRights(context.Background(), "ghost")
	assert.Equal(t, "REG_002", appCode(t, err))
}

func TestRightsService_Brackets(t *testing.T) {
	svc, d := setupRightsService(t)
	defer d.ctrl.Finish()

	brackets := svc.Brackets()
	require.Len(t, brackets, 4)
	assert.Equal(t, domain.Fraction(1, 20), brackets[0].Threshold)
	assert.Equal(t, domain.Fraction(1, 4), brackets[3].Threshold)
}
