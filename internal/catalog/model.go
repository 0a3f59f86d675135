package catalog

// DiagnosticItem is a single control statement the assessment asks about.
// The catalog is loaded once per process and treated as immutable afterwards.
type DiagnosticItem struct {
	ID               string
	ProfileID        string
	Title            string
	Statement        string
	ResponseGuidance string
	EEEPackage       string
	Tiers            []int
	Tags             []string
	Position         int
}

// InTier reports whether the item belongs to the given tier.
func (d DiagnosticItem) InTier(tier int) bool {
	for _, t := range d.Tiers {
		if t == tier {
			return true
		}
	}
	return false
}

// HasTag reports whether the item carries the given tag.
func (d DiagnosticItem) HasTag(tag string) bool {
	for _, t := range d.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// ResponseKey is one of the categorical answer labels offered per diagnostic.
type ResponseKey struct {
	ID          int
	Label       string
	Description string
}
