package profile

// The learning-objective taxonomy is fixed and pre-declared: categories and
// objectives come from the curriculum, not from usage. Stored scores for
// objectives outside the taxonomy are ignored on load, and objectives added
// to the taxonomy later start at the default level.

// taxonomyCategory is one category of the objective taxonomy, with its
// objectives in curriculum order.
type taxonomyCategory struct {
	Name       string
	Objectives []string
}

// defaultTaxonomy is the reference objective set.
var defaultTaxonomy = []taxonomyCategory{
	{Name: "algebra", Objectives: []string{"linear_equations", "quadratic_equations", "polynomials"}},
	{Name: "geometry", Objectives: []string{"triangles", "circles", "angles"}},
	{Name: "arithmetic", Objectives: []string{"fractions", "decimals", "percentages"}},
}

// newObjectiveScores materializes the full taxonomy at the default level.
func newObjectiveScores() map[string]map[string]float64 {
	scores := make(map[string]map[string]float64, len(defaultTaxonomy))
	for _, cat := range defaultTaxonomy {
		m := make(map[string]float64, len(cat.Objectives))
		for _, obj := range cat.Objectives {
			m[obj] = DefaultLevel
		}
		scores[cat.Name] = m
	}
	return scores
}

// TaxonomyCategories returns the category names in curriculum order.
func TaxonomyCategories() []string {
	names := make([]string, len(defaultTaxonomy))
	for i, cat := range defaultTaxonomy {
		names[i] = cat.Name
	}
	return names
}

// TaxonomyObjectives returns the objectives of a category in curriculum
// order, or nil for an unknown category.
func TaxonomyObjectives(category string) []string {
	for _, cat := range defaultTaxonomy {
		if cat.Name == category {
			return cat.Objectives
		}
	}
	return nil
}
