package models

import "golang.org/x/exp/slices"

// DefaultCategories is the category vocabulary used when the
// configuration does not override it.
//
// Budgets and expenses share this closed set, clients offering a
// category choice render exactly these labels.
var DefaultCategories = []string{
	"Food & Dining",
	"Transportation",
	"Shopping",
	"Entertainment",
	"Utilities",
	"Healthcare",
	"Education",
	"Travel",
	"Other",
}

var categories = DefaultCategories

// SetCategories replaces the recognized category set. It is called once
// at startup, before any request is served.
func SetCategories(set []string) {
	if len(set) == 0 {
		return
	}

	categories = slices.Clone(set)
}

// Categories returns the recognized category set.
func Categories() []string {
	return slices.Clone(categories)
}

// CategoryValid reports whether a category is in the recognized set.
func CategoryValid(name string) bool {
	return slices.Contains(categories, name)
}
