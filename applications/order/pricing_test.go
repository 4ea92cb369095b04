package order

import "testing"

func TestPriceTable(t *testing.T) {
	cases := map[string]int{
		"platinum": 200000,
		"premium":  150000,
		"gold":     120000,
		"silver":   100000,
		"bronze":   70000,
		"regular":  50000,
	}
	for pkg, want := range cases {
		if got := PriceCents(pkg); got != want {
			t.Errorf("PriceCents(%q) = %d, want %d", pkg, got, want)
		}
	}
}

func TestPriceFallbackToRegular(t *testing.T) {
	for _, pkg := range []string{"", "diamond", "GOLD", "plat"} {
		if got := PriceCents(pkg); got != 50000 {
			t.Errorf("PriceCents(%q) = %d, want regular fallback 50000", pkg, got)
		}
	}
}

func TestPriceIsIdempotent(t *testing.T) {
	first := PriceCents("gold")
	for i := 0; i < 10; i++ {
		if got := PriceCents("gold"); got != first {
			t.Fatalf("repeated lookup changed: %d then %d", first, got)
		}
	}
}

func TestPerksFallback(t *testing.T) {
	b := Perks("not-a-tier")
	if b.Title != Perks(DefaultPackage).Title {
		t.Errorf("Perks fallback title = %q, want the regular bundle", b.Title)
	}
	if len(b.Benefits) == 0 {
		t.Error("perk bundle has no benefits")
	}
}

func TestPerksExistForEveryTier(t *testing.T) {
	for pkg := range packagePrices {
		b := Perks(pkg)
		if b.Title == "" || len(b.Benefits) == 0 {
			t.Errorf("tier %q has an incomplete perk bundle: %+v", pkg, b)
		}
	}
}

func TestNormalizePackage(t *testing.T) {
	if got := NormalizePackage("gold"); got != "gold" {
		t.Errorf("NormalizePackage(gold) = %q", got)
	}
	if got := NormalizePackage("mystery"); got != DefaultPackage {
		t.Errorf("NormalizePackage(mystery) = %q, want %q", got, DefaultPackage)
	}
	if got := NormalizePackage(""); got != DefaultPackage {
		t.Errorf("NormalizePackage(\"\") = %q, want %q", got, DefaultPackage)
	}
}
