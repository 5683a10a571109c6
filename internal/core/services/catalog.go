package services

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/veridian-labs/dimens-cli/internal/core/domain"
	"github.com/veridian-labs/dimens-cli/internal/core/ports/driven"
	"github.com/veridian-labs/dimens-cli/internal/core/ports/driving"
	"github.com/veridian-labs/dimens-cli/internal/logger"
)

// Ensure CatalogManager implements the interface.
var _ driving.CatalogService = (*CatalogManager)(nil)

// CatalogManager owns the live registry built from the primary catalog
// store. Rebuilds swap the registry pointer atomically, so readers
// always see a complete catalog.
type CatalogManager struct {
	store driven.CatalogStore
	reg   atomic.Pointer[Registry]
}

// NewCatalogManager loads the store and builds the initial registry.
func NewCatalogManager(ctx context.Context, store driven.CatalogStore) (*CatalogManager, error) {
	m := &CatalogManager{store: store}
	if err := m.Reload(ctx); err != nil {
		return nil, err
	}
	return m, nil
}

// Registry returns the live registry.
func (m *CatalogManager) Registry() *Registry {
	return m.reg.Load()
}

// List returns the current declarations in declaration order.
func (m *CatalogManager) List(ctx context.Context) (domain.CatalogData, error) {
	return m.reg.Load().Data(), nil
}

// Replace validates the declarations, persists them, and swaps the live
// registry. Validation failure leaves both store and registry untouched.
func (m *CatalogManager) Replace(ctx context.Context, data domain.CatalogData) error {
	reg, err := NewRegistry(data)
	if err != nil {
		return err
	}
	if err := m.store.Save(ctx, data); err != nil {
		return fmt.Errorf("save catalog: %w", err)
	}
	m.reg.Store(reg)
	logger.Info("Catalog replaced: %d dimensions, %d kinds, %d units",
		len(data.Dimensions), len(data.Kinds), len(data.Units))
	return nil
}

// Reload re-reads the primary store and swaps the live registry.
func (m *CatalogManager) Reload(ctx context.Context) error {
	data, err := m.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	reg, err := NewRegistry(data)
	if err != nil {
		return err
	}
	m.reg.Store(reg)
	logger.Debug("Catalog loaded from %s: %d dimensions, %d kinds, %d units",
		m.store.Path(), len(data.Dimensions), len(data.Kinds), len(data.Units))
	return nil
}

// Path returns the locator of the primary store.
func (m *CatalogManager) Path() string {
	return m.store.Path()
}

// Watch blocks watching the primary store for external changes,
// reloading on each one, until the context is cancelled. Stores without
// watch support return immediately.
func (m *CatalogManager) Watch(ctx context.Context) error {
	watcher, ok := m.store.(driven.CatalogWatcher)
	if !ok {
		logger.Debug("Catalog store %s does not support watching", m.store.Path())
		return nil
	}
	logger.Info("Watching catalog at %s", m.store.Path())
	return watcher.Watch(ctx, func() {
		if err := m.Reload(ctx); err != nil {
			logger.Warn("Catalog reload failed, keeping previous catalog: %v", err)
		}
	})
}
