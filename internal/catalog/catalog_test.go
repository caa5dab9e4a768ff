package catalog

import (
	"sort"
	"testing"

	"github.com/KairamCabral/terravik-sub003/pkg/enums"
)

func TestTableHasExactlyThreeSKUs(t *testing.T) {
	if got := len(Products()); got != 3 {
		t.Fatalf("expected 3 products, got %d", got)
	}
}

func TestTableInvariants(t *testing.T) {
	for _, p := range Products() {
		if !p.ID.IsValid() {
			t.Fatalf("%s: invalid product id", p.ID)
		}
		if p.DoseMinGM2 <= 0 || p.DoseMaxGM2 <= p.DoseMinGM2 {
			t.Fatalf("%s: dose range must be positive and ordered", p.ID)
		}
		if p.DoseDefault < p.DoseMinGM2 || p.DoseDefault > p.DoseMaxGM2 {
			t.Fatalf("%s: default dose outside [min, max]", p.ID)
		}
		if p.FrequencyWeeksMin <= 0 || p.FrequencyWeeksMax < p.FrequencyWeeksMin {
			t.Fatalf("%s: frequency weeks must be positive and ordered", p.ID)
		}
		if len(p.PackSizesG) == 0 {
			t.Fatalf("%s: no pack sizes", p.ID)
		}
		if !sort.IntsAreSorted(p.PackSizesG) {
			t.Fatalf("%s: pack sizes must ascend", p.ID)
		}
	}
}

func TestByID(t *testing.T) {
	p, ok := ByID(enums.ProductRaizes)
	if !ok {
		t.Fatal("expected raizes to exist")
	}
	if p.ID != enums.ProductRaizes {
		t.Fatalf("wrong product returned: %s", p.ID)
	}

	if _, ok := ByID(enums.ProductID("nope")); ok {
		t.Fatal("unknown id must not resolve")
	}
}
