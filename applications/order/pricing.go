package order

// DefaultPackage is the tier applied when the submitted package name is
// missing or not in the table.
const DefaultPackage = "regular"

// packagePrices maps package tier -> price in cents.
var packagePrices = map[string]int{
	"platinum": 200000,
	"premium":  150000,
	"gold":     120000,
	"silver":   100000,
	"bronze":   70000,
	"regular":  50000,
}

// PerkBundle is presentation data for a tier; the wizard passes it through
// unmodified.
type PerkBundle struct {
	Title    string   `json:"title"`
	Benefits []string `json:"benefits"`
}

var packagePerks = map[string]PerkBundle{
	"platinum": {
		Title: "Platinum VIP Experience",
		Benefits: []string{
			"Private 30-minute meet-and-greet",
			"Professional photo and video session",
			"Signed merchandise bundle",
			"Backstage access",
			"Priority concierge line",
		},
	},
	"premium": {
		Title: "Premium VIP Experience",
		Benefits: []string{
			"Private 15-minute meet-and-greet",
			"Professional photo session",
			"Signed merchandise item",
			"Backstage access",
		},
	},
	"gold": {
		Title: "Gold Meet & Greet",
		Benefits: []string{
			"Group meet-and-greet",
			"Professional photo",
			"Signed photo card",
		},
	},
	"silver": {
		Title: "Silver Meet & Greet",
		Benefits: []string{
			"Group meet-and-greet",
			"Souvenir photo",
		},
	},
	"bronze": {
		Title: "Bronze Fan Pass",
		Benefits: []string{
			"Group photo opportunity",
			"Digital souvenir",
		},
	},
	"regular": {
		Title: "Regular Fan Pass",
		Benefits: []string{
			"General admission meet line",
		},
	},
}

// PriceCents returns the tier price in cents, falling back to the regular
// tier for any unrecognized key.
func PriceCents(pkg string) int {
	if p, ok := packagePrices[pkg]; ok {
		return p
	}
	return packagePrices[DefaultPackage]
}

// Perks returns the display bundle for a tier, with the same fallback rule
// as PriceCents.
func Perks(pkg string) PerkBundle {
	if b, ok := packagePerks[pkg]; ok {
		return b
	}
	return packagePerks[DefaultPackage]
}

// NormalizePackage collapses unknown tiers to the default so the order
// always carries a priceable package name.
func NormalizePackage(pkg string) string {
	if _, ok := packagePrices[pkg]; ok {
		return pkg
	}
	return DefaultPackage
}
