package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/DiamondsLab/diamond-forge/internal/config"
	"github.com/DiamondsLab/diamond-forge/internal/domain/models"
	"github.com/DiamondsLab/diamond-forge/internal/usecase"
)

// FileStore is the flat-file deployment record store. Records live at
// deployments/{DiamondName}/{diamond}-{network}-{chainID}.json with the
// filename parts lowercased; the directory keeps the original casing.
type FileStore struct {
	root string
}

// NewFileStore creates a record store rooted at the project's
// deployments directory.
func NewFileStore(cfg *config.RuntimeConfig) *FileStore {
	root := cfg.DeploymentsDir
	if !filepath.IsAbs(root) {
		root = filepath.Join(cfg.ProjectRoot, root)
	}
	return &FileStore{root: root}
}

// RecordPath returns the deterministic record path for a key. Pure:
// lowercasing applies only to the name and network fields, never the
// chain ID.
func (s *FileStore) RecordPath(key models.DeploymentKey) string {
	return filepath.Join(s.root, key.DiamondName, key.String()+".json")
}

// Exists reports whether a record file exists for the key.
func (s *FileStore) Exists(key models.DeploymentKey) bool {
	_, err := os.Stat(s.RecordPath(key))
	return err == nil
}

// Read loads and decodes the record for a key.
func (s *FileStore) Read(ctx context.Context, key models.DeploymentKey) (*models.DeployedDiamond, error) {
	data, err := os.ReadFile(s.RecordPath(key))
	if err != nil {
		return nil, err
	}

	var deployed models.DeployedDiamond
	if err := json.Unmarshal(data, &deployed); err != nil {
		return nil, fmt.Errorf("malformed deployment record %s: %w", s.RecordPath(key), err)
	}
	return &deployed, nil
}

// Write serializes a deployment record, creating the diamond directory
// as needed.
func (s *FileStore) Write(ctx context.Context, key models.DeploymentKey, deployed *models.DeployedDiamond) error {
	path := s.RecordPath(key)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create record directory: %w", err)
	}

	data, err := json.MarshalIndent(deployed, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize deployment record: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// ListDiamonds returns the diamond names that have at least one record
// directory, sorted for stable output.
func (s *FileStore) ListDiamonds(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.root)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// Ensure the adapter implements the interface
var _ usecase.RecordStore = (*FileStore)(nil)
