package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pelletier/go-toml/v2"

	"github.com/veridian-labs/dimens-cli/internal/core/domain"
	"github.com/veridian-labs/dimens-cli/internal/core/ports/driven"
	"github.com/veridian-labs/dimens-cli/internal/logger"
)

// Ensure CatalogStore implements the interfaces.
var (
	_ driven.CatalogStore   = (*CatalogStore)(nil)
	_ driven.CatalogWatcher = (*CatalogStore)(nil)
)

// debounceDelay coalesces the bursts of events editors emit when
// saving a file.
const debounceDelay = 100 * time.Millisecond

// catalogFile is the TOML shape of the catalog. Declaration order in
// the file is the declaration order of the catalog.
type catalogFile struct {
	Dimensions []dimensionDecl `toml:"dimensions,omitempty"`
	Kinds      []kindDecl      `toml:"kinds,omitempty"`
	Units      []unitDecl      `toml:"units,omitempty"`
}

type dimensionDecl struct {
	Name   string `toml:"name"`
	Symbol string `toml:"symbol,omitempty"`
}

type kindDecl struct {
	Name       string `toml:"name"`
	Dimension  string `toml:"dimension,omitempty"`
	Parent     string `toml:"parent,omitempty"`
	Definition string `toml:"definition,omitempty"`
	Character  string `toml:"character,omitempty"`
}

type unitDecl struct {
	Name       string  `toml:"name"`
	Symbol     string  `toml:"symbol,omitempty"`
	Kind       string  `toml:"kind,omitempty"`
	Reference  string  `toml:"reference,omitempty"`
	Scale      float64 `toml:"scale,omitempty"`
	Definition string  `toml:"definition,omitempty"`
}

// CatalogStore is a TOML file implementation of driven.CatalogStore.
type CatalogStore struct {
	mu       sync.Mutex
	filePath string
}

// NewCatalogStore creates a store over the given catalog file.
// If path is empty, defaults to ~/.dimens/catalog.toml.
func NewCatalogStore(path string) (*CatalogStore, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(home, ".dimens", "catalog.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, err
	}
	return &CatalogStore{filePath: path}, nil
}

// Exists reports whether the catalog file is present.
func (s *CatalogStore) Exists() bool {
	_, err := os.Stat(s.filePath)
	return err == nil
}

// Load reads and decodes the catalog file.
func (s *CatalogStore) Load(ctx context.Context) (domain.CatalogData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.filePath)
	if err != nil {
		return domain.CatalogData{}, err
	}
	var f catalogFile
	if err := toml.Unmarshal(raw, &f); err != nil {
		return domain.CatalogData{}, fmt.Errorf("%w: %s: %v", domain.ErrInvalidCatalog, s.filePath, err)
	}
	return f.toDomain(), nil
}

// Save encodes and writes the full catalog, replacing the file.
func (s *CatalogStore) Save(ctx context.Context, data domain.CatalogData) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := toml.Marshal(fromDomain(data))
	if err != nil {
		return fmt.Errorf("encoding catalog: %w", err)
	}
	return os.WriteFile(s.filePath, raw, 0600)
}

// Path returns the catalog file path.
func (s *CatalogStore) Path() string {
	return s.filePath
}

// Watch blocks watching the catalog file until the context is
// cancelled, invoking onChange after each external modification. The
// parent directory is watched so editors that replace the file on save
// are still seen.
func (s *CatalogStore) Watch(ctx context.Context, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(s.filePath)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(s.filePath), err)
	}

	var debounce *time.Timer
	defer func() {
		if debounce != nil {
			debounce.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Name != s.filePath {
				continue
			}
			if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Rename) {
				continue
			}
			logger.Debug("Catalog file event: %s", event)
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(debounceDelay, onChange)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Catalog watcher error: %v", err)
		}
	}
}

func (f catalogFile) toDomain() domain.CatalogData {
	data := domain.CatalogData{
		Dimensions: make([]domain.DimensionDecl, len(f.Dimensions)),
		Kinds:      make([]domain.KindDecl, len(f.Kinds)),
		Units:      make([]domain.UnitDecl, len(f.Units)),
	}
	for i, d := range f.Dimensions {
		data.Dimensions[i] = domain.DimensionDecl{Name: d.Name, Symbol: d.Symbol}
	}
	for i, k := range f.Kinds {
		data.Kinds[i] = domain.KindDecl{
			Name:       k.Name,
			Dimension:  k.Dimension,
			Parent:     k.Parent,
			Definition: k.Definition,
			Character:  k.Character,
		}
	}
	for i, u := range f.Units {
		data.Units[i] = domain.UnitDecl{
			Name:       u.Name,
			Symbol:     u.Symbol,
			Kind:       u.Kind,
			Reference:  u.Reference,
			Scale:      u.Scale,
			Definition: u.Definition,
		}
	}
	return data
}

func fromDomain(data domain.CatalogData) catalogFile {
	f := catalogFile{
		Dimensions: make([]dimensionDecl, len(data.Dimensions)),
		Kinds:      make([]kindDecl, len(data.Kinds)),
		Units:      make([]unitDecl, len(data.Units)),
	}
	for i, d := range data.Dimensions {
		f.Dimensions[i] = dimensionDecl{Name: d.Name, Symbol: d.Symbol}
	}
	for i, k := range data.Kinds {
		f.Kinds[i] = kindDecl{
			Name:       k.Name,
			Dimension:  k.Dimension,
			Parent:     k.Parent,
			Definition: k.Definition,
			Character:  k.Character,
		}
	}
	for i, u := range data.Units {
		f.Units[i] = unitDecl{
			Name:       u.Name,
			Symbol:     u.Symbol,
			Kind:       u.Kind,
			Reference:  u.Reference,
			Scale:      u.Scale,
			Definition: u.Definition,
		}
	}
	return f
}
