package catalog

import (
	"context"
	"sort"

	"assessment-backend/internal/shared/telemetry"
)

// Service owns the loaded catalog. Load is called once at startup; reads after
// that never touch the repo again.
type Service struct {
	Repo     Repo
	PageSize int

	items []DiagnosticItem
	keys  []ResponseKey
	tags  []string
}

// NewService constructs a Service.
func NewService(repo Repo, pageSize int) *Service {
	if pageSize <= 0 {
		pageSize = 10
	}
	return &Service{Repo: repo, PageSize: pageSize}
}

// Load fetches the catalog from the repo. A load failure or an empty result
// falls back to the built-in placeholder catalog so the API stays usable.
func (s *Service) Load(ctx context.Context) {
	items, err := s.Repo.ListDiagnostics(ctx)
	if err != nil || len(items) == 0 {
		fields := map[string]any{"fallback": "placeholder"}
		if err != nil {
			fields["error"] = err.Error()
		}
		telemetry.Error("catalog.load", fields)
		items = PlaceholderCatalog()
	}
	s.items = items

	keys, err := s.Repo.ListResponseKeys(ctx)
	if err != nil || len(keys) == 0 {
		if err != nil {
			telemetry.Error("catalog.response_keys", map[string]any{"error": err.Error()})
		}
		keys = DefaultResponseKeys()
	}
	s.keys = keys

	tags, err := s.Repo.ListTags(ctx)
	if err != nil || len(tags) == 0 {
		if err != nil {
			telemetry.Error("catalog.tags", map[string]any{"error": err.Error()})
		}
		tags = tagsFromItems(s.items)
	}
	s.tags = tags

	telemetry.Info("catalog.loaded", map[string]any{
		"items":         len(s.items),
		"response_keys": len(s.keys),
		"tags":          len(s.tags),
	})
}

// Items returns the loaded catalog in catalog order.
func (s *Service) Items() []DiagnosticItem {
	return s.items
}

// ResponseKeys returns the categorical answer labels.
func (s *Service) ResponseKeys() []ResponseKey {
	return s.keys
}

// Tags returns the known tag names.
func (s *Service) Tags() []string {
	return s.tags
}

// Page filters and pages the loaded catalog.
func (s *Service) Page(tiers []int, tag string, page int) PageResult {
	return FilterPage(s.items, tiers, tag, page, s.PageSize)
}

// Get returns the catalog item with the given ID.
func (s *Service) Get(id string) (DiagnosticItem, bool) {
	for _, item := range s.items {
		if item.ID == id {
			return item, true
		}
	}
	return DiagnosticItem{}, false
}

// PlaceholderCatalog is the built-in two-item catalog used when the external
// source is unavailable or empty.
func PlaceholderCatalog() []DiagnosticItem {
	return []DiagnosticItem{
		{
			ID:        "CRI-01",
			ProfileID: "CRI-01",
			Title:     "Asset Inventory Maintained",
			Statement: "Ensure you maintain an up-to-date asset inventory.",
			Tiers:     []int{1},
			Position:  1,
		},
		{
			ID:        "CRI-02",
			ProfileID: "CRI-02",
			Title:     "Access Controls Enforced",
			Statement: "Implement least privilege and segregation of duties.",
			Tiers:     []int{1},
			Position:  2,
		},
	}
}

// DefaultResponseKeys is the fixed categorical label set used when no
// externally configured set exists.
func DefaultResponseKeys() []ResponseKey {
	return []ResponseKey{
		{ID: 1, Label: "Yes", Description: "Control fully implemented"},
		{ID: 2, Label: "Partial", Description: "Control partially implemented"},
		{ID: 3, Label: "No", Description: "Control not implemented"},
		{ID: 4, Label: "Compensating", Description: "Compensating control in place"},
	}
}

func tagsFromItems(items []DiagnosticItem) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, item := range items {
		for _, tag := range item.Tags {
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			out = append(out, tag)
		}
	}
	sort.Strings(out)
	return out
}
