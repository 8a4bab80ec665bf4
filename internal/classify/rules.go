package classify

import "github.com/Veraticus/dompet/internal/model"

// DefaultRules returns the built-in keyword table in priority order.
func DefaultRules() []Rule {
	return []Rule{
		{Name: "Marketplace", Keywords: []string{"shopee", "tokopedia"}, Category: "Belanja Barang"},
		{Name: "Cafe", Keywords: []string{"kopi", "cafe", "janji"}, Category: "Nongki / Cafe"},
		{Name: "Food", Keywords: []string{"kfc", "mcd", "ayam", "nasi"}, Category: "Makanan & Minuman"},
		// QRIS payments are almost always small food purchases.
		{Name: "QRIS", Keywords: []string{"qris"}, Category: "Makanan & Minuman"},
		{Name: "Tobacco", Keywords: []string{"rokok", "djarum", "sampoerna"}, Category: "Rokok"},
		{Name: "Cash Withdrawal", Keywords: []string{"atm", "tarik tunai"}, Category: "Tarik Tunai"},
		{Name: "Entertainment", Keywords: []string{"mall", "cinema", "tix"}, Category: "Hiburan & Jalan-Jalan"},
		{Name: "Salary", Keywords: []string{"gaji", "salary"}, Category: "Gaji"},
	}
}

// DefaultFallback is returned when no rule matches.
const DefaultFallback = model.FallbackCategory
