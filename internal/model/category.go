package model

import (
	"slices"
	"strings"
)

// FallbackCategory is assigned when nothing better is known.
const FallbackCategory = "Lainnya"

var defaultCategories = []string{
	"Makanan & Minuman",
	"Belanja Barang",
	"Rokok",
	"Kebutuhan Rumah",
	"Hobi & Gear",
	"Nongki / Cafe",
	"Tarik Tunai",
	"Hiburan & Jalan-Jalan",
}

var incomeCategories = []string{
	"Gaji",
	"Bonus",
	FallbackCategory,
}

// DefaultCategories returns the built-in category set that seeds a new store.
func DefaultCategories() []string {
	return slices.Clone(defaultCategories)
}

// IncomeCategories returns the fixed choices offered for income entries.
// They are not part of the editable category set.
func IncomeCategories() []string {
	return slices.Clone(incomeCategories)
}

// NormalizeCategoryName trims a user-entered category name.
func NormalizeCategoryName(name string) string {
	return strings.TrimSpace(name)
}

// ContainsCategory reports whether name is in set (exact, case-sensitive).
func ContainsCategory(set []string, name string) bool {
	return slices.Contains(set, name)
}
