package scoring

import (
	"fmt"
	"strings"
)

// Category is one scoring bucket, matched by exact upstream identifier.
type Category struct {
	Identifier string
	Label      string
}

// Catalog is an ordered, versioned set of categories. Order is column order.
type Catalog struct {
	Version    string
	Categories []Category
	index      map[string]int
}

const (
	Minutes               = "minutes"
	GoalsScored           = "goals_scored"
	Assists               = "assists"
	CleanSheets           = "clean_sheets"
	GoalsConceded         = "goals_conceded"
	Saves                 = "saves"
	PenaltiesSaved        = "penalties_saved"
	PenaltiesMissed       = "penalties_missed"
	YellowCards           = "yellow_cards"
	RedCards              = "red_cards"
	OwnGoals              = "own_goals"
	Bonus                 = "bonus"
	DefensiveContribution = "defensive_contribution"
)

var v1Categories = []Category{
	{Identifier: Minutes, Label: "Min"},
	{Identifier: GoalsScored, Label: "G"},
	{Identifier: Assists, Label: "A"},
	{Identifier: CleanSheets, Label: "CS"},
	{Identifier: GoalsConceded, Label: "GC"},
	{Identifier: Saves, Label: "S"},
	{Identifier: PenaltiesSaved, Label: "PS"},
	{Identifier: PenaltiesMissed, Label: "PM"},
	{Identifier: YellowCards, Label: "YC"},
	{Identifier: RedCards, Label: "RC"},
	{Identifier: OwnGoals, Label: "OG"},
	{Identifier: Bonus, Label: "B"},
}

var (
	CatalogV1 = NewCatalog("v1", v1Categories...)
	CatalogV2 = CatalogV1.Extend("v2", Category{Identifier: DefensiveContribution, Label: "DC"})
)

// NewCatalog builds a catalog. Duplicate identifiers keep their first slot.
func NewCatalog(version string, categories ...Category) Catalog {
	out := Catalog{
		Version:    version,
		Categories: make([]Category, 0, len(categories)),
		index:      make(map[string]int, len(categories)),
	}
	for _, category := range categories {
		if _, exists := out.index[category.Identifier]; exists {
			continue
		}
		out.index[category.Identifier] = len(out.Categories)
		out.Categories = append(out.Categories, category)
	}
	return out
}

// Extend returns a new catalog with extra categories appended after the existing ones.
func (c Catalog) Extend(version string, extra ...Category) Catalog {
	all := make([]Category, 0, len(c.Categories)+len(extra))
	all = append(all, c.Categories...)
	all = append(all, extra...)
	return NewCatalog(version, all...)
}

func (c Catalog) Len() int {
	return len(c.Categories)
}

// Slot returns the accumulator index for an identifier.
func (c Catalog) Slot(identifier string) (int, bool) {
	slot, ok := c.index[identifier]
	return slot, ok
}

func (c Catalog) Labels() []string {
	out := make([]string, 0, len(c.Categories))
	for _, category := range c.Categories {
		out = append(out, category.Label)
	}
	return out
}

// CatalogByVersion resolves a configured catalog version.
func CatalogByVersion(version string) (Catalog, error) {
	switch strings.ToLower(strings.TrimSpace(version)) {
	case "", CatalogV1.Version:
		return CatalogV1, nil
	case CatalogV2.Version:
		return CatalogV2, nil
	default:
		return Catalog{}, fmt.Errorf("unknown stat catalog version %q", version)
	}
}
