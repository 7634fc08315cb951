package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/DiamondsLab/diamond-forge/internal/config"
	"github.com/DiamondsLab/diamond-forge/internal/usecase"
)

type deployFixture struct {
	records   *MockRecordStore
	cache     *fakeCache
	deployer  *MockDiamondDeployer
	chain     *MockChainResolver
	confirmer *MockConfirmer
	uc        *usecase.DeployDiamond
}

func newDeployFixture(nonInteractive bool) *deployFixture {
	f := &deployFixture{
		records:   new(MockRecordStore),
		cache:     newFakeCache(),
		deployer:  new(MockDiamondDeployer),
		chain:     new(MockChainResolver),
		confirmer: new(MockConfirmer),
	}
	f.chain.On("ResolveChainID", mock.Anything, mock.Anything).Return(uint64(31337), nil)

	cfg := &config.RuntimeConfig{ProjectRoot: "/project", NonInteractive: nonInteractive}
	log := testLogger()
	ensure := usecase.NewEnsureDeployment(f.records, f.cache, f.deployer, f.chain, log)
	f.uc = usecase.NewDeployDiamond(cfg, ensure, f.records, f.chain, f.confirmer, usecase.NopProgress{}, log)
	return f
}

func persistentNetwork() *config.Network {
	return &config.Network{Name: "localhost", ChainID: 31337, RPCURL: "http://127.0.0.1:8545", Persistent: true}
}

func TestDeployDiamond_Run(t *testing.T) {
	ctx := context.Background()

	t.Run("reuse and force are mutually exclusive", func(t *testing.T) {
		f := newDeployFixture(true)
		_, err := f.uc.Run(ctx, usecase.DeployParams{
			DiamondName: "ExampleDiamond",
			Network:     hardhatNetwork(),
			Reuse:       true,
			Force:       true,
		})
		assert.Error(t, err)
	})

	t.Run("ephemeral network deploys without touching records", func(t *testing.T) {
		f := newDeployFixture(true)
		f.deployer.On("Deploy", mock.Anything, mock.Anything).Return(deployedFixture(), nil).Once()

		result, err := f.uc.Run(ctx, usecase.DeployParams{
			DiamondName: "ExampleDiamond",
			Network:     hardhatNetwork(),
		})
		require.NoError(t, err)
		assert.False(t, result.Persisted)
		assert.False(t, result.Reused)
		assert.Empty(t, result.RecordPath)
		f.records.AssertNotCalled(t, "Exists", mock.Anything)
	})

	t.Run("existing record is reused on a persistent network", func(t *testing.T) {
		f := newDeployFixture(true)
		f.records.On("Exists", mock.Anything).Return(true)
		f.records.On("RecordPath", mock.Anything).Return("deployments/ExampleDiamond/examplediamond-localhost-31337.json")
		f.deployer.On("Load", mock.Anything, mock.Anything).Return(deployedFixture(), nil)

		result, err := f.uc.Run(ctx, usecase.DeployParams{
			DiamondName: "ExampleDiamond",
			Network:     persistentNetwork(),
		})
		require.NoError(t, err)
		assert.True(t, result.Reused)
		assert.True(t, result.Persisted)
		assert.NotEmpty(t, result.RecordPath)
		f.deployer.AssertNotCalled(t, "Deploy", mock.Anything, mock.Anything)
	})

	t.Run("interactive confirmation gates the redeploy", func(t *testing.T) {
		f := newDeployFixture(false)
		f.records.On("Exists", mock.Anything).Return(true)
		f.records.On("RecordPath", mock.Anything).Return("deployments/ExampleDiamond/examplediamond-localhost-31337.json")
		f.confirmer.On("Confirm", mock.Anything, mock.Anything).Return(true, nil)
		f.deployer.On("Deploy", mock.Anything, mock.Anything).Return(deployedFixture(), nil).Once()

		result, err := f.uc.Run(ctx, usecase.DeployParams{
			DiamondName: "ExampleDiamond",
			Network:     persistentNetwork(),
		})
		require.NoError(t, err)
		assert.False(t, result.Reused)
		f.deployer.AssertExpectations(t)
	})

	t.Run("declined confirmation falls back to reuse", func(t *testing.T) {
		f := newDeployFixture(false)
		f.records.On("Exists", mock.Anything).Return(true)
		f.records.On("RecordPath", mock.Anything).Return("deployments/ExampleDiamond/examplediamond-localhost-31337.json")
		f.confirmer.On("Confirm", mock.Anything, mock.Anything).Return(false, nil)
		f.deployer.On("Load", mock.Anything, mock.Anything).Return(deployedFixture(), nil)

		result, err := f.uc.Run(ctx, usecase.DeployParams{
			DiamondName: "ExampleDiamond",
			Network:     persistentNetwork(),
		})
		require.NoError(t, err)
		assert.True(t, result.Reused)
		f.deployer.AssertNotCalled(t, "Deploy", mock.Anything, mock.Anything)
	})

	t.Run("reuse flag skips the prompt entirely", func(t *testing.T) {
		f := newDeployFixture(false)
		f.records.On("Exists", mock.Anything).Return(true)
		f.records.On("RecordPath", mock.Anything).Return("deployments/ExampleDiamond/examplediamond-localhost-31337.json")
		f.deployer.On("Load", mock.Anything, mock.Anything).Return(deployedFixture(), nil)

		_, err := f.uc.Run(ctx, usecase.DeployParams{
			DiamondName: "ExampleDiamond",
			Network:     persistentNetwork(),
			Reuse:       true,
		})
		require.NoError(t, err)
		f.confirmer.AssertNotCalled(t, "Confirm", mock.Anything, mock.Anything)
	})
}
