package blockchain

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/DiamondsLab/diamond-forge/internal/config"
	"github.com/DiamondsLab/diamond-forge/internal/domain"
	"github.com/DiamondsLab/diamond-forge/internal/usecase"
)

// ChainAdapter resolves chain IDs from the active network connection
// using ethclient, falling back to the configured value for in-process
// networks that expose no RPC endpoint.
type ChainAdapter struct {
	log *slog.Logger
}

// NewChainAdapter creates a new chain resolver adapter
func NewChainAdapter(log *slog.Logger) *ChainAdapter {
	return &ChainAdapter{log: log.With("component", "ChainAdapter")}
}

// ResolveChainID returns the chain ID for the network. When an RPC URL
// is configured, the node's answer is authoritative and a configured
// mismatch is fatal rather than silently trusted.
func (c *ChainAdapter) ResolveChainID(ctx context.Context, network *config.Network) (uint64, error) {
	if network.RPCURL == "" {
		if network.ChainID == 0 {
			return 0, fmt.Errorf("network %s: %w (no RPC URL and no configured chain ID)", network.Name, domain.ErrInvalidChainID)
		}
		return network.ChainID, nil
	}

	// One budget for dial plus query; a black-holed endpoint must not
	// hang past it.
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := ethclient.DialContext(ctx, network.RPCURL)
	if err != nil {
		return 0, fmt.Errorf("failed to connect to %s (start the node first): %w", network.RPCURL, err)
	}
	defer client.Close()

	chainID, err := client.ChainID(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get chain ID from %s: %w", network.RPCURL, err)
	}

	got := chainID.Uint64()
	if network.ChainID != 0 && network.ChainID != got {
		return 0, fmt.Errorf("%w: network %s configured as chain %d but node reports %d",
			domain.ErrNetworkMismatch, network.Name, network.ChainID, got)
	}

	c.log.Debug("resolved chain ID", "network", network.Name, "chainId", got)
	return got, nil
}

// Ensure the adapter implements the interface
var _ usecase.ChainResolver = (*ChainAdapter)(nil)
