// ABOUTME: Trust table mapping source domains to credibility weights and categories
// ABOUTME: Pure data, loaded once at startup and read-only afterwards

package domain

import "strings"

// SourceCategory classifies the kind of source behind a domain.
type SourceCategory string

const (
	CategoryOfficial SourceCategory = "official"
	CategoryLegal    SourceCategory = "legal"
	CategoryBusiness SourceCategory = "business"
	CategoryExpert   SourceCategory = "expert"
	CategoryInfo     SourceCategory = "info"
	CategoryService  SourceCategory = "service"
	CategoryUnknown  SourceCategory = "unknown"
)

// TrustEntry assigns a credibility weight to one source domain.
type TrustEntry struct {
	// Domain is matched as a substring against result URLs
	Domain string

	// TrustWeight is the multiplier in [0,1] applied to lexical relevance
	TrustWeight float64

	// Category classifies the source
	Category SourceCategory
}

// DefaultTrustWeight is used for domains not present in the table.
const DefaultTrustWeight = 0.5

// TrustTable holds an ordered list of trust entries. Lookup returns the
// first entry whose domain appears in the URL, so more specific domains
// should be listed before generic ones.
type TrustTable struct {
	entries []TrustEntry
}

// NewTrustTable creates a trust table from the given entries.
func NewTrustTable(entries []TrustEntry) *TrustTable {
	return &TrustTable{entries: entries}
}

// DefaultTrustTable returns the built-in table of German tax and finance
// sources.
func DefaultTrustTable() *TrustTable {
	return NewTrustTable([]TrustEntry{
		{Domain: "bundesfinanzministerium.de", TrustWeight: 1.0, Category: CategoryOfficial},
		{Domain: "dejure.org", TrustWeight: 0.95, Category: CategoryLegal},
		{Domain: "gesetze-im-internet.de", TrustWeight: 1.0, Category: CategoryLegal},
		{Domain: "ihk.de", TrustWeight: 0.9, Category: CategoryBusiness},
		{Domain: "haufe.de", TrustWeight: 0.85, Category: CategoryExpert},
		{Domain: "steuerberater.de", TrustWeight: 0.8, Category: CategoryExpert},
		{Domain: "steuertipps.de", TrustWeight: 0.75, Category: CategoryInfo},
		{Domain: "finanztip.de", TrustWeight: 0.8, Category: CategoryInfo},
		{Domain: "elster.de", TrustWeight: 1.0, Category: CategoryOfficial},
		{Domain: "smartsteuer.de", TrustWeight: 0.75, Category: CategoryService},
	})
}

// Lookup returns the trust entry matching the URL. Unknown domains get
// DefaultTrustWeight and CategoryUnknown.
func (t *TrustTable) Lookup(url string) TrustEntry {
	for _, e := range t.entries {
		if strings.Contains(url, e.Domain) {
			return e
		}
	}
	return TrustEntry{TrustWeight: DefaultTrustWeight, Category: CategoryUnknown}
}

// Weight returns just the trust weight for the URL.
func (t *TrustTable) Weight(url string) float64 {
	return t.Lookup(url).TrustWeight
}
