package usecase_test

import (
	"context"
	"io"
	"log/slog"

	"github.com/stretchr/testify/mock"

	"github.com/DiamondsLab/diamond-forge/internal/config"
	"github.com/DiamondsLab/diamond-forge/internal/domain/models"
	"github.com/DiamondsLab/diamond-forge/internal/usecase"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// MockRecordStore is a mock implementation of usecase.RecordStore
type MockRecordStore struct {
	mock.Mock
}

func (m *MockRecordStore) RecordPath(key models.DeploymentKey) string {
	args := m.Called(key)
	return args.String(0)
}

func (m *MockRecordStore) Exists(key models.DeploymentKey) bool {
	args := m.Called(key)
	return args.Bool(0)
}

func (m *MockRecordStore) Read(ctx context.Context, key models.DeploymentKey) (*models.DeployedDiamond, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DeployedDiamond), args.Error(1)
}

func (m *MockRecordStore) Write(ctx context.Context, key models.DeploymentKey, data *models.DeployedDiamond) error {
	args := m.Called(ctx, key, data)
	return args.Error(0)
}

func (m *MockRecordStore) ListDiamonds(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockDiamondDeployer is a mock implementation of usecase.DiamondDeployer
type MockDiamondDeployer struct {
	mock.Mock
}

func (m *MockDiamondDeployer) Deploy(ctx context.Context, cfg usecase.DeployConfig) (*models.DeployedDiamond, error) {
	args := m.Called(ctx, cfg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DeployedDiamond), args.Error(1)
}

func (m *MockDiamondDeployer) Load(ctx context.Context, cfg usecase.DeployConfig) (*models.DeployedDiamond, error) {
	args := m.Called(ctx, cfg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DeployedDiamond), args.Error(1)
}

// MockChainResolver is a mock implementation of usecase.ChainResolver
type MockChainResolver struct {
	mock.Mock
}

func (m *MockChainResolver) ResolveChainID(ctx context.Context, network *config.Network) (uint64, error) {
	args := m.Called(ctx, network)
	return args.Get(0).(uint64), args.Error(1)
}

// MockHelperGenerator is a mock implementation of usecase.HelperGenerator
type MockHelperGenerator struct {
	mock.Mock
}

func (m *MockHelperGenerator) Generate(deployed *models.DeployedDiamond) (string, error) {
	args := m.Called(deployed)
	return args.String(0), args.Error(1)
}

// MockFileWriter is a mock implementation of usecase.FileWriter
type MockFileWriter struct {
	mock.Mock
}

func (m *MockFileWriter) WriteFile(ctx context.Context, path string, content string) error {
	args := m.Called(ctx, path, content)
	return args.Error(0)
}

func (m *MockFileWriter) FileExists(ctx context.Context, path string) (bool, error) {
	args := m.Called(ctx, path)
	return args.Bool(0), args.Error(1)
}

func (m *MockFileWriter) EnsureDirectory(ctx context.Context, path string) error {
	args := m.Called(ctx, path)
	return args.Error(0)
}

// MockForgeRunner is a mock implementation of usecase.ForgeRunner
type MockForgeRunner struct {
	mock.Mock
}

func (m *MockForgeRunner) CheckInstallation() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockForgeRunner) Run(ctx context.Context, subcommand string, cmdArgs []string) (bool, error) {
	args := m.Called(ctx, subcommand, cmdArgs)
	return args.Bool(0), args.Error(1)
}

// MockConfirmer is a mock implementation of usecase.Confirmer
type MockConfirmer struct {
	mock.Mock
}

func (m *MockConfirmer) Confirm(ctx context.Context, prompt string) (bool, error) {
	args := m.Called(ctx, prompt)
	return args.Bool(0), args.Error(1)
}

// fakeCache is a map-backed stand-in for the ephemeral deployment cache.
type fakeCache struct {
	entries map[string]*models.DeployedDiamond
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string]*models.DeployedDiamond)}
}

func (c *fakeCache) Get(key models.DeploymentKey) (*models.DeployedDiamond, bool) {
	d, ok := c.entries[key.String()]
	return d, ok
}

func (c *fakeCache) Put(key models.DeploymentKey, data *models.DeployedDiamond) {
	c.entries[key.String()] = data
}
