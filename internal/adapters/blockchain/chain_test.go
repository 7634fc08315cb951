package blockchain_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DiamondsLab/diamond-forge/internal/adapters/blockchain"
	"github.com/DiamondsLab/diamond-forge/internal/config"
	"github.com/DiamondsLab/diamond-forge/internal/domain"
)

func newChainAdapter() *blockchain.ChainAdapter {
	return blockchain.NewChainAdapter(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestResolveChainID(t *testing.T) {
	ctx := context.Background()

	t.Run("no RPC URL falls back to the configured chain ID", func(t *testing.T) {
		got, err := newChainAdapter().ResolveChainID(ctx, &config.Network{Name: "hardhat", ChainID: 31337})
		require.NoError(t, err)
		assert.Equal(t, uint64(31337), got)
	})

	t.Run("no RPC URL and no chain ID is an error", func(t *testing.T) {
		_, err := newChainAdapter().ResolveChainID(ctx, &config.Network{Name: "hardhat"})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidChainID)
	})

	t.Run("dead endpoint errors within the connection budget", func(t *testing.T) {
		start := time.Now()
		_, err := newChainAdapter().ResolveChainID(ctx, &config.Network{
			Name:    "localhost",
			ChainID: 31337,
			RPCURL:  "http://127.0.0.1:1",
		})
		require.Error(t, err)
		assert.Less(t, time.Since(start), 10*time.Second)
	})

	t.Run("caller cancellation cuts the resolution short", func(t *testing.T) {
		ctx, cancel := context.WithCancel(ctx)
		cancel()

		_, err := newChainAdapter().ResolveChainID(ctx, &config.Network{
			Name:    "localhost",
			ChainID: 31337,
			RPCURL:  "http://127.0.0.1:1",
		})
		assert.Error(t, err)
	})
}
