package adcom1

// AdCOM 1.0 List: Category Taxonomies
//
// Taxonomies for content categories, referenced by cattax fields wherever a
// list of categories appears.
type CategoryTaxonomy int8

const (
	CatTaxIABContent10    CategoryTaxonomy = 1 // IAB Tech Lab Content Category Taxonomy 1.0
	CatTaxIABContent20    CategoryTaxonomy = 2 // IAB Tech Lab Content Category Taxonomy 2.0
	CatTaxIABProductAudit CategoryTaxonomy = 3 // IAB Tech Lab Ad Product Taxonomy 1.0
	CatTaxIABAudience11   CategoryTaxonomy = 4 // IAB Tech Lab Audience Taxonomy 1.1
	CatTaxIABContent21    CategoryTaxonomy = 5 // IAB Tech Lab Content Taxonomy 2.1
	CatTaxIABContent22    CategoryTaxonomy = 6 // IAB Tech Lab Content Taxonomy 2.2
	CatTaxIABContent30    CategoryTaxonomy = 7 // IAB Tech Lab Content Taxonomy 3.0
)
