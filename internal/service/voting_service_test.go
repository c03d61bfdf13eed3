package service

import (
	"context"
	"testing"

	"equity-registry/internal/core/domain"
	"equity-registry/internal/core/ports/mocks"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type votingTestDeps struct {
	svc            *VotingServiceImpl
	registryRepo   *mocks.MockRegistryRepository
	holderRepo     *mocks.MockHolderRepository
	delegationRepo *mocks.MockDelegationRepository
	transactor     *mocks.MockDBTransactor
	ctrl           *gomock.Controller
}

func setupVotingService(t *testing.T) *votingTestDeps {
	ctrl := gomock.NewController(t)
	d := &votingTestDeps{
		registryRepo:   mocks.NewMockRegistryRepository(ctrl),
		holderRepo:     mocks.NewMockHolderRepository(ctrl),
		delegationRepo: mocks.NewMockDelegationRepository(ctrl),
		transactor:     mocks.NewMockDBTransactor(ctrl),
		ctrl:           ctrl,
	}
	d.svc = NewVotingService(d.registryRepo, d.holderRepo, d.delegationRepo, d.transactor, zerolog.Nop())
	return d
}

// seedHolders wires holderRepo.Get for a fixed balance table. Addresses not in
// the table resolve to nil (not a shareholder).
func (d *votingTestDeps) seedHolders(balances map[string]int64) {
	d.holderRepo.EXPECT().Get(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, address string) (*domain.Holder, error) {
			if balance, ok := balances[address]; ok {
				return &domain.Holder{Address: address, Balance: balance}, nil
			}
			return nil, nil
		},
	).AnyTimes()
}

func (d *votingTestDeps) seedRegistry(mode domain.VotePolicy, supply int64) {
	d.registryRepo.EXPECT().Get(gomock.Any()).Return(
		&domain.Registry{VoteMode: mode, TotalSupply: supply, Emitter: "john"}, nil,
	).AnyTimes()
}

func (d *votingTestDeps) seedDelegations(edges map[string]string) {
	d.delegationRepo.EXPECT().Get(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, delegator string) (string, error) {
			return edges[delegator], nil
		},
	).AnyTimes()
	d.delegationRepo.EXPECT().ListDelegators(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, delegate string) ([]string, error) {
			var out []string
			for from, to := range edges {
				if to == delegate {
					out = append(out, from)
				}
			}
			return out, nil
		},
	).AnyTimes()
}

// ==================== Delegation ====================

func TestVotingService_SetDelegate_Success(t *testing.T) {
	d := setupVotingService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}

	d.seedHolders(map[string]int64{"jane": 100})
	d.delegationRepo.EXPECT().Get(ctx, "jane").Return("", nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.delegationRepo.EXPECT().Set(ctx, tx, "jane", "john").Return(nil)

	previous, err := d.svc.SetDelegate(ctx, "jane", "john")
	require.NoError(t, err)
	assert.Equal(t, "", previous)
}

func TestVotingService_SetDelegate_ReplacesPrevious(t *testing.T) {
	d := setupVotingService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}

	d.seedHolders(map[string]int64{"jane": 100})
	d.delegationRepo.EXPECT().Get(ctx, "jane").Return("mark", nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.delegationRepo.EXPECT().Set(ctx, tx, "jane", "john").Return(nil)

	previous, err := d.svc.SetDelegate(ctx, "jane", "john")
	require.NoError(t, err)
	assert.Equal(t, "mark", previous)
}

func TestVotingService_SetDelegate_EmptyDelegate(t *testing.T) {
	d := setupVotingService(t)
	defer d.ctrl.Finish()

	_, err := d.svc.SetDelegate(context.Background(), "jane", "")
	assert.Equal(t, "REG_005", appCode(t, err))
}

func TestVotingService_SetDelegate_Self(t *testing.T) {
	d := setupVotingService(t)
	defer d.ctrl.Finish()

	_, err := d.svc.SetDelegate(context.Background(), "jane", "jane")
	assert.Equal(t, "REG_006", appCode(t, err))
}

func TestVotingService_SetDelegate_NotAShareholder(t *testing.T) {
	d := setupVotingService(t)
	defer d.ctrl.Finish()

	d.seedHolders(map[string]int64{})

	_, err := d.svc.SetDelegate(context.Background(), "ghost", "john")
	assert.Equal(t, "REG_002", appCode(t, err))
}

func TestVotingService_RemoveDelegate_NoEdgeIsNoop(t *testing.T) {
	d := setupVotingService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.delegationRepo.EXPECT().Get(ctx, "jane").Return("", nil)

	previous, err := d.svc.RemoveDelegate(ctx, "jane")
	require.NoError(t, err)
	assert.Equal(t, "", previous)
}

func TestVotingService_RemoveDelegate_ReturnsPrevious(t *testing.T) {
	d := setupVotingService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}

	d.delegationRepo.EXPECT().Get(ctx, "jane").Return("john", nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.delegationRepo.EXPECT().Delete(ctx, tx, "jane").Return(nil)

	previous, err := d.svc.RemoveDelegate(ctx, "jane")
	require.NoError(t, err)
	assert.Equal(t, "john", previous)
}

func TestVotingService_Delegators_NotAShareholder(t *testing.T) {
	d := setupVotingService(t)
	defer d.ctrl.Finish()

	d.seedHolders(map[string]int64{"john": 500})
	d.seedDelegations(map[string]string{"john": "ghost"})

	_, err := d.svc.Delegators(context.Background(), "ghost")
	assert.Equal(t, "REG_002", appCode(t, err))
}

// ==================== Vote pool ====================

func TestVotingService_TotalVotes_WeightProportional(t *testing.T) {
	d := setupVotingService(t)
	defer d.ctrl.Finish()

	d.seedRegistry(domain.VotePolicyWeightProportional, 13000000)

	total, err := d.svc.TotalVotes(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(13000000), total)
}

func TestVotingService_TotalVotes_OneHolderOneVote(t *testing.T) {
	d := setupVotingService(t)
	defer d.ctrl.Finish()

	d.seedRegistry(domain.VotePolicyOneHolderOneVote, 13000000)
	d.holderRepo.EXPECT().Count(gomock.Any()).Return(int64(2), nil)

	total, err := d.svc.TotalVotes(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
}

func TestVotingService_TotalVotes_NotInitialized(t *testing.T) {
	d := setupVotingService(t)
	defer d.ctrl.Finish()

	d.registryRepo.EXPECT().Get(gomock.Any()).Return(nil, nil)

	_, err := d.svc.TotalVotes(context.Background())
	assert.Equal(t, "REG_008", appCode(t, err))
}

// ==================== Shares and votes ====================

func TestVotingService_OrganicShares_NotAShareholder(t *testing.T) {
	d := setupVotingService(t)
	defer d.ctrl.Finish()

	d.seedHolders(map[string]int64{})

	_, err := d.svc.OrganicShares(context.Background(), "ghost")
	assert.Equal(t, "REG_002", appCode(t, err))
}

func TestVotingService_DelegatedShares_SumsDirectDelegators(t *testing.T) {
	d := setupVotingService(t)
	defer d.ctrl.Finish()

	d.seedHolders(map[string]int64{"john": 11800000, "jane": 1000000, "mark": 200000})
	d.seedDelegations(map[string]string{"jane": "john", "mark": "john"})

	delegated, err := d.svc.DelegatedShares(context.Background(), "john")
	require.NoError(t, err)
	assert.Equal(t, int64(1200000), delegated)
}

func TestVotingService_DelegatedShares_DanglingDelegatorContributesNothing(t *testing.T) {
	d := setupVotingService(t)
	defer d.ctrl.Finish()

	// "ghost" delegated to john and later transferred all shares away.
	d.seedHolders(map[string]int64{"john": 500, "jane": 300})
	d.seedDelegations(map[string]string{"jane": "john", "ghost": "john"})

	delegated, err := d.svc.DelegatedShares(context.Background(), "john")
	require.NoError(t, err)
	assert.Equal(t, int64(300), delegated)
}

func TestVotingService_DelegatedShares_DepthOneOnly(t *testing.T) {
	d := setupVotingService(t)
	defer d.ctrl.Finish()

	// mark -> jane -> john: mark's stake reaches jane, not john.
	d.seedHolders(map[string]int64{"john": 500, "jane": 300, "mark": 200})
	d.seedDelegations(map[string]string{"jane": "john", "mark": "jane"})

	delegated, err := d.svc.DelegatedShares(context.Background(), "john")
	require.NoError(t, err)
	assert.Equal(t, int64(300), delegated)
}

func TestVotingService_EffectiveShares_DelegatingHolderHasZero(t *testing.T) {
	d := setupVotingService(t)
	defer d.ctrl.Finish()

	d.seedHolders(map[string]int64{"john": 500, "jane": 300, "mark": 200})
	d.seedDelegations(map[string]string{"jane": "john", "mark": "jane"})

	// jane receives mark's stake but delegates herself.
	effective, err := d.svc.EffectiveShares(context.Background(), "jane")
	require.NoError(t, err)
	assert.Equal(t, int64(0), effective)
}

func TestVotingService_EffectiveShares_CombinesOrganicAndDelegated(t *testing.T) {
	d := setupVotingService(t)
	defer d.ctrl.Finish()

	d.seedHolders(map[string]int64{"john": 500, "jane": 300})
	d.seedDelegations(map[string]string{"jane": "john"})

	effective, err := d.svc.EffectiveShares(context.Background(), "john")
	require.NoError(t, err)
	assert.Equal(t, int64(800), effective)
}

func TestVotingService_OrganicVotes_OneHolderOneVote(t *testing.T) {
	d := setupVotingService(t)
	defer d.ctrl.Finish()

	d.seedRegistry(domain.VotePolicyOneHolderOneVote, 13000000)
	d.seedHolders(map[string]int64{"john": 11800000, "jane": 1200000})

	votes, err := d.svc.OrganicVotes(context.Background(), "jane")
	require.NoError(t, err)
	assert.Equal(t, int64(1), votes)
}

// ==================== Weights and majority ====================

func TestVotingService_OrganicWeight_ProportionalScenario(t *testing.T) {
	d := setupVotingService(t)
	defer d.ctrl.Finish()

	d.seedRegistry(domain.VotePolicyWeightProportional, 13000000)
	d.seedHolders(map[string]int64{"john": 11800000, "jane": 1200000})
	d.seedDelegations(map[string]string{})

	weight, err := d.svc.OrganicWeight(context.Background(), "jane")
	require.NoError(t, err)
	assert.Equal(t, int64(1200000), weight.Votes())
	assert.Equal(t, int64(13000000), weight.TotalVotes())
	assert.InDelta(t, 0.0923, weight.Float64(), 0.0001)

	majority, err := d.svc.IsOrganicMajority(context.Background(), "jane")
	require.NoError(t, err)
	assert.False(t, majority)

	majority, err = d.svc.IsOrganicMajority(context.Background(), "john")
	require.NoError(t, err)
	assert.True(t, majority)
}

func TestVotingService_DelegatedWeight_ProportionalScenario(t *testing.T) {
	d := setupVotingService(t)
	defer d.ctrl.Finish()

	d.seedRegistry(domain.VotePolicyWeightProportional, 13000000)
	d.seedHolders(map[string]int64{"john": 11800000, "jane": 1200000})
	d.seedDelegations(map[string]string{"jane": "john"})

	weight, err := d.svc.DelegatedWeight(context.Background(), "john")
	require.NoError(t, err)
	assert.Equal(t, int64(1200000), weight.Votes())
	assert.Equal(t, int64(13000000), weight.TotalVotes())
	assert.InDelta(t, 0.0923, weight.Float64(), 0.0001)
}

func TestVotingService_IsMajority_HalfIsNotMajority(t *testing.T) {
	d := setupVotingService(t)
	defer d.ctrl.Finish()

	// Two holders under one-holder-one-vote: each weighs exactly 1/2.
	d.seedRegistry(domain.VotePolicyOneHolderOneVote, 13000000)
	d.seedHolders(map[string]int64{"john": 11800000, "jane": 1200000})
	d.seedDelegations(map[string]string{})
	d.holderRepo.EXPECT().Count(gomock.Any()).Return(int64(2), nil).AnyTimes()

	majority, err := d.svc.IsMajority(context.Background(), "john")
	require.NoError(t, err)
	assert.False(t, majority)
}

func TestVotingService_EffectiveWeight_DelegationFlipsMajority(t *testing.T) {
	d := setupVotingService(t)
	defer d.ctrl.Finish()

	d.seedRegistry(domain.VotePolicyWeightProportional, 1000)
	d.seedHolders(map[string]int64{"john": 400, "jane": 350, "mark": 250})
	d.seedDelegations(map[string]string{"mark": "john"})

	weight, err := d.svc.EffectiveWeight(context.Background(), "john")
	require.NoError(t, err)
	assert.Equal(t, int64(650), weight.Votes())

	majority, err := d.svc.IsMajority(context.Background(), "john")
	require.NoError(t, err)
	assert.True(t, majority)

	// Without delegation john holds 400/1000.
	organicMajority, err := d.svc.IsOrganicMajority(context.Background(), "john")
	require.NoError(t, err)
	assert.False(t, organicMajority)
}

func TestVotingService_Weight_EmptyPool(t *testing.T) {
	d := setupVotingService(t)
	defer d.ctrl.Finish()

	d.seedRegistry(domain.VotePolicyOneHolderOneVote, 0)
	d.seedHolders(map[string]int64{"john": 100})
	d.holderRepo.EXPECT().Count(gomock.Any()).Return(int64(0), nil).AnyTimes()

	_, err := d.svc.OrganicWeight(context.Background(), "john")
	assert.Equal(t, "REG_003", appCode(t, err))
}

// ==================== Profile ====================

func TestVotingService_Profile(t *testing.T) {
	d := setupVotingService(t)
	defer d.ctrl.Finish()

	d.seedRegistry(domain.VotePolicyWeightProportional, 13000000)
	d.seedHolders(map[string]int64{"john": 11800000, "jane": 1200000})
	d.seedDelegations(map[string]string{"jane": "john"})

	profile, err := d.svc.Profile(context.Background(), "john")
	require.NoError(t, err)

	assert.Equal(t, "john", profile.Address)
	assert.False(t, profile.Delegating)
	assert.Equal(t, []string{"jane"}, profile.Delegators)
	assert.Equal(t, int64(11800000), profile.OrganicShares)
	assert.Equal(t, int64(1200000), profile.DelegatedShares)
	assert.Equal(t, int64(13000000), profile.EffectiveShares)
	assert.Equal(t, int64(13000000), profile.TotalVotes)
	assert.Equal(t, "1200000/13000000", profile.DelegatedWeight.String())
	assert.True(t, profile.Majority)
	assert.True(t, profile.OrganicMajority)
}

func TestVotingService_Profile_NotAShareholder(t *testing.T) {
	d := setupVotingService(t)
	defer d.ctrl.Finish()

	d.seedHolders(map[string]int64{})

	_, err := d.svc.Profile(context.Background(), "ghost")
	assert.Equal(t, "REG_002", appCode(t, err))
}
