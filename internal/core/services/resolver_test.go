package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veridian-labs/dimens-cli/internal/core/domain"
)

// fakeStore is an in-memory CatalogStore for service tests.
type fakeStore struct {
	mu      sync.Mutex
	data    domain.CatalogData
	loadErr error
	saves   int
}

func (s *fakeStore) Load(ctx context.Context) (domain.CatalogData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loadErr != nil {
		return domain.CatalogData{}, s.loadErr
	}
	return s.data, nil
}

func (s *fakeStore) Save(ctx context.Context, data domain.CatalogData) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = data
	s.saves++
	return nil
}

func (s *fakeStore) Path() string { return "memory://test" }

func newTestResolver(t *testing.T) (*Resolver, *CatalogManager) {
	t.Helper()
	mgr, err := NewCatalogManager(context.Background(), &fakeStore{data: testCatalog()})
	require.NoError(t, err)
	return NewResolver(mgr), mgr
}

func TestResolver_Check_EqualAndInterconvertible(t *testing.T) {
	r, _ := newTestResolver(t)
	ctx := context.Background()

	verdict, err := r.Check(ctx, "length / time", "length / time")
	require.NoError(t, err)
	assert.True(t, verdict.Equal)
	assert.True(t, verdict.Interconvertible)
	assert.Empty(t, verdict.Reason)

	// A named kind vs its expansion: interconvertible, not equal.
	verdict, err = r.Check(ctx, "speed", "length / time")
	require.NoError(t, err)
	assert.False(t, verdict.Equal)
	assert.True(t, verdict.Interconvertible)
	assert.Equal(t, "speed", verdict.Left)
	assert.Equal(t, "length / time", verdict.Right)
}

func TestResolver_Check_UnitNamesCoerce(t *testing.T) {
	r, _ := newTestResolver(t)

	verdict, err := r.Check(context.Background(), "metre / second", "speed")
	require.NoError(t, err)
	assert.True(t, verdict.Interconvertible)
}

func TestResolver_Check_Incompatible(t *testing.T) {
	r, _ := newTestResolver(t)

	verdict, err := r.Check(context.Background(), "length", "time")
	require.NoError(t, err)
	assert.False(t, verdict.Equal)
	assert.False(t, verdict.Interconvertible)
	assert.Contains(t, verdict.Reason, "dimensions differ")
}

func TestResolver_Check_ParseErrors(t *testing.T) {
	r, _ := newTestResolver(t)
	ctx := context.Background()

	_, err := r.Check(ctx, "length *", "time")
	assert.ErrorIs(t, err, domain.ErrMalformedExpression)

	_, err = r.Check(ctx, "length", "heartbeats")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestResolver_Common_PicksFinestUnit(t *testing.T) {
	r, _ := newTestResolver(t)

	resolved, err := r.Common(context.Background(), "length@kilometre", "distance@mile")
	require.NoError(t, err)
	assert.Equal(t, "length", resolved.Spec)
	assert.Equal(t, "km", resolved.Unit)
	assert.Equal(t, "length[km]", resolved.Reference)
}

func TestResolver_Common_BareUnits(t *testing.T) {
	r, _ := newTestResolver(t)

	resolved, err := r.Common(context.Background(), "km / h", "metre / second")
	require.NoError(t, err)
	assert.Equal(t, "km / h", resolved.Unit)
}

func TestResolver_Common_Rejections(t *testing.T) {
	r, _ := newTestResolver(t)
	ctx := context.Background()

	_, err := r.Common(ctx, "length@metre", "time@second")
	assert.ErrorIs(t, err, domain.ErrNoCommonRepresentation)

	_, err = r.Common(ctx, "length@metre")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = r.Common(ctx, "length@metre", "length@cubit")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestResolver_UnitSpec(t *testing.T) {
	r, _ := newTestResolver(t)

	report, err := r.UnitSpec(context.Background(), "km / h")
	require.NoError(t, err)
	assert.Equal(t, "km / h", report.Unit)
	assert.Equal(t, "length / time", report.Spec)
	assert.Equal(t, "L / T", report.Dimension)
	assert.Equal(t, "m / s", report.Base)
	assert.InDelta(t, 1000.0/3600.0, report.Factor, 1e-12)
}

func TestResolver_UnitSpec_Alias(t *testing.T) {
	r, _ := newTestResolver(t)

	report, err := r.UnitSpec(context.Background(), "Hz")
	require.NoError(t, err)
	assert.Equal(t, "1 / time", report.Spec)
	assert.Equal(t, "1 / s", report.Base)
	assert.InDelta(t, 1.0, report.Factor, 1e-12)
}

func TestCatalogManager_ReplaceValidatesFirst(t *testing.T) {
	r, mgr := newTestResolver(t)
	ctx := context.Background()

	bad := testCatalog()
	bad.Kinds = append(bad.Kinds, domain.KindDecl{Name: "dangling"})
	err := mgr.Replace(ctx, bad)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidCatalog)

	// The previous registry stays live.
	verdict, err := r.Check(ctx, "speed", "length / time")
	require.NoError(t, err)
	assert.True(t, verdict.Interconvertible)
}

func TestCatalogManager_ReplacePersistsAndSwaps(t *testing.T) {
	store := &fakeStore{data: testCatalog()}
	mgr, err := NewCatalogManager(context.Background(), store)
	require.NoError(t, err)
	ctx := context.Background()

	next := testCatalog()
	next.Units = append(next.Units, domain.UnitDecl{
		Name: "furlong", Symbol: "fur", Reference: "metre", Scale: 201.168,
	})
	require.NoError(t, mgr.Replace(ctx, next))
	assert.Equal(t, 1, store.saves)

	_, ok := mgr.Registry().Unit("furlong")
	assert.True(t, ok)
}

func TestCatalogManager_ReloadPicksUpStoreChanges(t *testing.T) {
	store := &fakeStore{data: testCatalog()}
	mgr, err := NewCatalogManager(context.Background(), store)
	require.NoError(t, err)

	store.mu.Lock()
	store.data.Units = append(store.data.Units, domain.UnitDecl{
		Name: "fathom", Reference: "metre", Scale: 1.8288,
	})
	store.mu.Unlock()

	_, ok := mgr.Registry().Unit("fathom")
	assert.False(t, ok, "stale registry must not see the change yet")

	require.NoError(t, mgr.Reload(context.Background()))
	_, ok = mgr.Registry().Unit("fathom")
	assert.True(t, ok)
}

func TestCatalogManager_LoadFailure(t *testing.T) {
	store := &fakeStore{loadErr: errors.New("disk gone")}
	_, err := NewCatalogManager(context.Background(), store)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load catalog")
}
