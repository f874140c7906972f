package extract

// Category classifies an interview question. The set is closed: the response
// schema sent to the service constrains the field to exactly these values.
type Category string

const (
	CategoryPersonal   Category = "Personal"
	CategoryEthics     Category = "Ethics"
	CategoryLeadership Category = "Leadership"
	CategoryTeamwork   Category = "Teamwork"
	CategoryHealthcare Category = "Healthcare"
	CategoryTechnical  Category = "Technical"
	CategoryOther      Category = "Other"
)

// Categories lists every valid category in schema order.
var Categories = []Category{
	CategoryPersonal,
	CategoryEthics,
	CategoryLeadership,
	CategoryTeamwork,
	CategoryHealthcare,
	CategoryTechnical,
	CategoryOther,
}

var validCategories = func() map[Category]bool {
	m := make(map[Category]bool, len(Categories))
	for _, c := range Categories {
		m[c] = true
	}
	return m
}()

// ValidCategory reports whether c is one of the closed category set.
func ValidCategory(c Category) bool {
	return validCategories[c]
}

// Record is one extracted question/answer pair. Category, Question and
// Answer come from the service response; ID is stamped afterwards and is
// never part of the schema sent to the service.
type Record struct {
	Category Category `json:"category"`
	Question string   `json:"question"`
	Answer   string   `json:"answer"`
	ID       string   `json:"id,omitempty"`
}
