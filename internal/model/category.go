package model

// Category is a named, colored grouping. Tasks reference it by Name,
// not by ID, so renames must cascade through the task collection.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Icon  string `json:"icon,omitempty"`
}
