package taxonomy

// Category is a top-level hull classification.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon,omitempty"`
}

// SubType is a vessel configuration nested under a Category.
type SubType struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Entry pairs a category with its ordered sub-types.
type Entry struct {
	Category
	SubTypes []SubType `json:"subTypes"`
}
