package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/helixml/wikitree/domain/page"
	"github.com/helixml/wikitree/domain/tree"
	"gopkg.in/yaml.v3"
)

// ImportFile is the YAML document accepted by Importer.
//
//	owners:
//	  - id: 4f1c...
//	    name: Alice
//	pages:
//	  - owner: 4f1c...
//	    slug: programming/go
//	    title: Go
//	    priority: 1
//	    public: true
type ImportFile struct {
	Owners []ImportOwner `yaml:"owners"`
	Pages  []ImportPage  `yaml:"pages"`
}

// ImportOwner names an owner.
type ImportOwner struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

// ImportPage is one page record. Title defaults to the last slug segment and
// Updated to the import time.
type ImportPage struct {
	Owner    string    `yaml:"owner"`
	Slug     string    `yaml:"slug"`
	Title    string    `yaml:"title"`
	Priority int       `yaml:"priority"`
	Public   bool      `yaml:"public"`
	Updated  time.Time `yaml:"updated"`
}

// ImportResult counts what an import stored.
type ImportResult struct {
	Owners int
	Pages  int
}

// ImporterOption configures an Importer.
type ImporterOption func(*Importer)

// WithUUIDOwners rejects owner identifiers that are not UUIDs.
func WithUUIDOwners() ImporterOption {
	return func(i *Importer) { i.uuidOwners = true }
}

// WithClock sets the time source used for pages without an updated field.
func WithClock(now func() time.Time) ImporterOption {
	return func(i *Importer) { i.now = now }
}

// Transactor runs fn atomically. Stores called with the context passed to fn
// take part in the same transaction.
type Transactor interface {
	InTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// Importer loads page records from YAML into the store.
type Importer struct {
	pages      page.Store
	owners     page.OwnerStore
	tx         Transactor
	logger     *slog.Logger
	uuidOwners bool
	now        func() time.Time
}

// NewImporter creates a new Importer.
func NewImporter(pages page.Store, owners page.OwnerStore, tx Transactor, logger *slog.Logger, opts ...ImporterOption) *Importer {
	if logger == nil {
		logger = slog.Default()
	}
	i := &Importer{pages: pages, owners: owners, tx: tx, logger: logger, now: time.Now}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Import decodes r and stores every owner and page in it. The whole file is
// validated before anything is written, and owners and pages are written in
// one transaction.
func (i *Importer) Import(ctx context.Context, r io.Reader) (ImportResult, error) {
	var file ImportFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return ImportResult{}, fmt.Errorf("%w: decode yaml: %v", ErrInvalidImport, err)
	}

	owners, err := i.parseOwners(file.Owners)
	if err != nil {
		return ImportResult{}, err
	}
	pages, err := i.parsePages(file.Pages)
	if err != nil {
		return ImportResult{}, err
	}

	var saved []page.Page
	err = i.tx.InTransaction(ctx, func(ctx context.Context) error {
		for _, o := range owners {
			if _, err := i.owners.Save(ctx, o); err != nil {
				return err
			}
		}
		var err error
		saved, err = i.pages.SaveAll(ctx, pages)
		return err
	})
	if err != nil {
		return ImportResult{}, err
	}

	i.logger.InfoContext(ctx, "pages imported", "owners", len(owners), "pages", len(saved))
	return ImportResult{Owners: len(owners), Pages: len(saved)}, nil
}

func (i *Importer) validateOwner(id string) error {
	if id == "" {
		return ErrOwnerRequired
	}
	if i.uuidOwners {
		if _, err := uuid.Parse(id); err != nil {
			return fmt.Errorf("owner %q: %v", id, err)
		}
	}
	return nil
}

func (i *Importer) parseOwners(records []ImportOwner) ([]page.Owner, error) {
	owners := make([]page.Owner, 0, len(records))
	for n, rec := range records {
		if err := i.validateOwner(rec.ID); err != nil {
			return nil, fmt.Errorf("%w: owners[%d]: %w", ErrInvalidImport, n, err)
		}
		owners = append(owners, page.NewOwner(rec.ID, rec.Name))
	}
	return owners, nil
}

func (i *Importer) parsePages(records []ImportPage) ([]page.Page, error) {
	type key struct{ owner, slug string }
	seen := make(map[key]bool, len(records))
	now := i.now()

	pages := make([]page.Page, 0, len(records))
	for n, rec := range records {
		if err := i.validateOwner(rec.Owner); err != nil {
			return nil, fmt.Errorf("%w: pages[%d]: %w", ErrInvalidImport, n, err)
		}
		segments, err := page.Segments(rec.Slug)
		if err != nil {
			return nil, fmt.Errorf("%w: pages[%d]: %w", ErrInvalidImport, n, err)
		}
		k := key{rec.Owner, rec.Slug}
		if seen[k] {
			return nil, fmt.Errorf("%w: pages[%d]: %w: %q", ErrInvalidImport, n, tree.ErrDuplicatePath, rec.Slug)
		}
		seen[k] = true

		title := rec.Title
		if title == "" {
			title = segments[len(segments)-1]
		}
		updated := rec.Updated
		if updated.IsZero() {
			updated = now
		}
		pages = append(pages, page.NewPage(rec.Owner, rec.Slug, title, rec.Priority, rec.Public).WithLastUpdated(updated))
	}
	return pages, nil
}
