package usecase_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/DiamondsLab/diamond-forge/internal/config"
	"github.com/DiamondsLab/diamond-forge/internal/domain"
	"github.com/DiamondsLab/diamond-forge/internal/usecase"
)

type helpersFixture struct {
	records   *MockRecordStore
	cache     *fakeCache
	chain     *MockChainResolver
	generator *MockHelperGenerator
	writer    *MockFileWriter
	uc        *usecase.GenerateHelpers
}

func newHelpersFixture() *helpersFixture {
	f := &helpersFixture{
		records:   new(MockRecordStore),
		cache:     newFakeCache(),
		chain:     new(MockChainResolver),
		generator: new(MockHelperGenerator),
		writer:    new(MockFileWriter),
	}
	f.chain.On("ResolveChainID", mock.Anything, mock.Anything).Return(uint64(31337), nil)

	cfg := &config.RuntimeConfig{
		ProjectRoot: "/project",
		HelpersDir:  "test/foundry/helpers",
	}
	deployer := new(MockDiamondDeployer)
	ensure := usecase.NewEnsureDeployment(f.records, f.cache, deployer, f.chain, testLogger())
	f.uc = usecase.NewGenerateHelpers(cfg, ensure, f.chain, f.records, f.generator, f.writer, testLogger())
	return f
}

func TestGenerateHelpers_Run(t *testing.T) {
	ctx := context.Background()

	t.Run("writes the helper file into the configured directory", func(t *testing.T) {
		f := newHelpersFixture()
		f.generator.On("Generate", mock.Anything).Return("// helper source", nil)

		wantDir := filepath.Join("/project", "test", "foundry", "helpers")
		f.writer.On("WriteFile", mock.Anything, filepath.Join(wantDir, usecase.HelperFileName), "// helper source").Return(nil)

		result, err := f.uc.Run(ctx, usecase.GenerateHelpersParams{
			DiamondName: "ExampleDiamond",
			Network:     hardhatNetwork(),
			Deployed:    deployedFixture(),
		})
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(wantDir, usecase.HelperFileName), result.Path)
		assert.Equal(t, 1, result.FacetCount)
		f.writer.AssertExpectations(t)
	})

	t.Run("output dir override wins over configuration", func(t *testing.T) {
		f := newHelpersFixture()
		f.generator.On("Generate", mock.Anything).Return("// helper source", nil)

		wantDir := filepath.Join("/project", "custom", "helpers")
		f.writer.On("WriteFile", mock.Anything, filepath.Join(wantDir, usecase.HelperFileName), mock.Anything).Return(nil)

		_, err := f.uc.Run(ctx, usecase.GenerateHelpersParams{
			DiamondName: "ExampleDiamond",
			Network:     hardhatNetwork(),
			OutputDir:   filepath.Join("custom", "helpers"),
			Deployed:    deployedFixture(),
		})
		require.NoError(t, err)
		f.writer.AssertExpectations(t)
	})

	t.Run("falls back to the record store when no data is passed", func(t *testing.T) {
		f := newHelpersFixture()
		f.records.On("Exists", mock.Anything).Return(true)
		f.records.On("Read", mock.Anything, mock.Anything).Return(deployedFixture(), nil)
		f.generator.On("Generate", mock.Anything).Return("// helper source", nil)
		f.writer.On("WriteFile", mock.Anything, mock.Anything, mock.Anything).Return(nil)

		result, err := f.uc.Run(ctx, usecase.GenerateHelpersParams{
			DiamondName: "ExampleDiamond",
			Network:     hardhatNetwork(),
		})
		require.NoError(t, err)
		assert.Equal(t, 1, result.FacetCount)
	})

	t.Run("missing deployment fails without writing anything", func(t *testing.T) {
		f := newHelpersFixture()
		f.records.On("Exists", mock.Anything).Return(false)
		f.records.On("ListDiamonds", mock.Anything).Return([]string{}, nil)

		_, err := f.uc.Run(ctx, usecase.GenerateHelpersParams{
			DiamondName: "ExampleDiamond",
			Network:     hardhatNetwork(),
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrDeployFirst)
		f.writer.AssertNotCalled(t, "WriteFile", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("close names surface as suggestions", func(t *testing.T) {
		f := newHelpersFixture()
		f.records.On("Exists", mock.Anything).Return(false)
		f.records.On("ListDiamonds", mock.Anything).Return([]string{"ExampleDiamond", "TokenDiamond"}, nil)

		_, err := f.uc.Run(ctx, usecase.GenerateHelpersParams{
			DiamondName: "ExampleDimond",
			Network:     hardhatNetwork(),
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrDeployFirst)

		var unknown *domain.UnknownDiamondError
		require.ErrorAs(t, err, &unknown)
		assert.Equal(t, "ExampleDimond", unknown.Name)
		assert.Equal(t, []string{"ExampleDiamond"}, unknown.Suggestions)
	})
}
