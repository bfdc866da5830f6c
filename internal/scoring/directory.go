package scoring

// UnknownCategoryName is the sentinel under which rows referencing a
// category id absent from the directory are still counted.
const UnknownCategoryName = "Unknown Category"

// Category is a rating category snapshot entry. Weight zero is legal and
// means the category carries no influence in weighted scores.
type Category struct {
	ID     int64
	Name   string
	Weight float64
}

// NameByID resolves a category id against a snapshot, falling back to the
// UnknownCategoryName sentinel.
func NameByID(categories []Category, id int64) string {
	for _, c := range categories {
		if c.ID == id {
			return c.Name
		}
	}
	return UnknownCategoryName
}

// IDNameMap builds the id-to-name lookup used by the reducer.
func IDNameMap(categories []Category) map[int64]string {
	m := make(map[int64]string, len(categories))
	for _, c := range categories {
		m[c.ID] = c.Name
	}
	return m
}
