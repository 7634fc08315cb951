package registry

import (
	"github.com/DiamondsLab/diamond-forge/internal/domain/models"
	"github.com/DiamondsLab/diamond-forge/internal/usecase"
)

// Cache is the in-memory store for ephemeral deployments. Entries are
// created on deploy and live until process exit; nothing ever reaches
// disk. Keys include the chain ID, so a stale entry can never alias a
// different network connection. No locking: one logical CLI operation
// runs per process.
type Cache struct {
	entries map[string]*models.DeployedDiamond
}

// NewCache creates an empty ephemeral deployment cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[string]*models.DeployedDiamond)}
}

// Get returns the cached deployment for a key, if any.
func (c *Cache) Get(key models.DeploymentKey) (*models.DeployedDiamond, bool) {
	deployed, ok := c.entries[key.String()]
	return deployed, ok
}

// Put stores a deployment, replacing any prior entry for the key.
func (c *Cache) Put(key models.DeploymentKey, deployed *models.DeployedDiamond) {
	c.entries[key.String()] = deployed
}

// Ensure the adapter implements the interface
var _ usecase.DeploymentCache = (*Cache)(nil)
