package registry_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DiamondsLab/diamond-forge/internal/adapters/registry"
	"github.com/DiamondsLab/diamond-forge/internal/config"
	"github.com/DiamondsLab/diamond-forge/internal/domain/models"
)

func newStore(t *testing.T) (*registry.FileStore, string) {
	t.Helper()
	root := t.TempDir()
	store := registry.NewFileStore(&config.RuntimeConfig{
		ProjectRoot:    root,
		DeploymentsDir: "deployments",
	})
	return store, root
}

func TestRecordPath(t *testing.T) {
	store, root := newStore(t)

	key := models.DeploymentKey{
		DiamondName: "ExampleDiamond",
		NetworkName: "Hardhat",
		ChainID:     31337,
	}

	t.Run("lowercases name and network but not directory", func(t *testing.T) {
		path := store.RecordPath(key)
		expected := filepath.Join(root, "deployments", "ExampleDiamond", "examplediamond-hardhat-31337.json")
		assert.Equal(t, expected, path)
	})

	t.Run("is idempotent", func(t *testing.T) {
		assert.Equal(t, store.RecordPath(key), store.RecordPath(key))
	})

	t.Run("chain ID is never altered", func(t *testing.T) {
		key := models.DeploymentKey{DiamondName: "D", NetworkName: "N", ChainID: 11155111}
		assert.Contains(t, store.RecordPath(key), "11155111")
	})
}

func TestFileStore(t *testing.T) {
	ctx := context.Background()

	key := models.DeploymentKey{
		DiamondName: "ExampleDiamond",
		NetworkName: "sepolia",
		ChainID:     11155111,
	}

	deployed := &models.DeployedDiamond{
		DiamondName:     "ExampleDiamond",
		NetworkName:     "sepolia",
		ChainID:         11155111,
		DiamondAddress:  "0x1111111111111111111111111111111111111111",
		DeployerAddress: "0x2222222222222222222222222222222222222222",
		Facets: map[string]models.FacetCut{
			"DiamondCutFacet": {
				Address:           "0x3333333333333333333333333333333333333333",
				TxHash:            "0xabc",
				Version:           1,
				FunctionSelectors: []string{"0x1f931c1c"},
			},
		},
	}

	t.Run("absence is the canonical not-deployed signal", func(t *testing.T) {
		store, _ := newStore(t)
		assert.False(t, store.Exists(key))
	})

	t.Run("write then read round-trips", func(t *testing.T) {
		store, _ := newStore(t)
		require.NoError(t, store.Write(ctx, key, deployed))
		assert.True(t, store.Exists(key))

		got, err := store.Read(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, deployed, got)
	})

	t.Run("key equality is case-insensitive on strings", func(t *testing.T) {
		store, _ := newStore(t)
		require.NoError(t, store.Write(ctx, key, deployed))

		upper := models.DeploymentKey{DiamondName: "EXAMPLEDIAMOND", NetworkName: "SEPOLIA", ChainID: 11155111}
		assert.True(t, key.Equal(upper))
		// The record file key lowercases, so the uppercase key finds it
		assert.Equal(t, filepath.Base(store.RecordPath(key)), filepath.Base(store.RecordPath(upper)))
	})

	t.Run("lists diamonds with records", func(t *testing.T) {
		store, _ := newStore(t)
		require.NoError(t, store.Write(ctx, key, deployed))

		names, err := store.ListDiamonds(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"ExampleDiamond"}, names)
	})

	t.Run("listing without a deployments dir is empty, not an error", func(t *testing.T) {
		store, _ := newStore(t)
		names, err := store.ListDiamonds(ctx)
		require.NoError(t, err)
		assert.Empty(t, names)
	})
}

func TestCache(t *testing.T) {
	key := models.DeploymentKey{DiamondName: "ExampleDiamond", NetworkName: "hardhat", ChainID: 31337}
	deployed := &models.DeployedDiamond{DiamondAddress: "0x1111111111111111111111111111111111111111"}

	t.Run("miss then hit", func(t *testing.T) {
		cache := registry.NewCache()
		_, ok := cache.Get(key)
		assert.False(t, ok)

		cache.Put(key, deployed)
		got, ok := cache.Get(key)
		require.True(t, ok)
		assert.Same(t, deployed, got)
	})

	t.Run("chain ID differentiates entries", func(t *testing.T) {
		cache := registry.NewCache()
		cache.Put(key, deployed)

		other := key
		other.ChainID = 1
		_, ok := cache.Get(other)
		assert.False(t, ok)
	})

	t.Run("put replaces prior entry", func(t *testing.T) {
		cache := registry.NewCache()
		cache.Put(key, deployed)

		replacement := &models.DeployedDiamond{DiamondAddress: "0x2222222222222222222222222222222222222222"}
		cache.Put(key, replacement)

		got, ok := cache.Get(key)
		require.True(t, ok)
		assert.Same(t, replacement, got)
	})
}
