package todo

// Seed returns the default collection used when no valid persisted data
// exists. IDs are fixed so a reseeded store is recognizable.
func Seed() []Item {
	return []Item{
		{ID: "1", Text: "Explore the list", Done: true},
		{ID: "2", Text: "Toggle a todo"},
		{ID: "3", Text: "Add one of your own"},
	}
}
