package mcp

import (
	"context"

	"github.com/veridian-labs/dimens-cli/internal/core/domain"
)

// mockResolverService is a mock implementation of driving.ResolverService.
type mockResolverService struct {
	verdict  domain.Compatibility
	resolved domain.ResolvedReference
	report   domain.UnitReport
	gotRefs  []string
	err      error
}

func (m *mockResolverService) Check(
	_ context.Context,
	_, _ string,
) (domain.Compatibility, error) {
	return m.verdict, m.err
}

func (m *mockResolverService) Common(
	_ context.Context,
	refs ...string,
) (domain.ResolvedReference, error) {
	m.gotRefs = refs
	return m.resolved, m.err
}

func (m *mockResolverService) UnitSpec(
	_ context.Context,
	_ string,
) (domain.UnitReport, error) {
	return m.report, m.err
}

// mockCatalogService is a mock implementation of driving.CatalogService.
type mockCatalogService struct {
	data domain.CatalogData
	err  error
}

func (m *mockCatalogService) List(_ context.Context) (domain.CatalogData, error) {
	return m.data, m.err
}

func (m *mockCatalogService) Replace(_ context.Context, _ domain.CatalogData) error {
	return m.err
}

func (m *mockCatalogService) Reload(_ context.Context) error {
	return m.err
}

func (m *mockCatalogService) Path() string {
	return "memory://mock"
}
