package dosage

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// CoverNeed picks a multiset of packages whose combined weight is the
// smallest value covering needG. Ties on total grams are broken by fewest
// packages, then fewest distinct sizes, then by preferring larger sizes.
// A need of zero yields an empty list; a need below the smallest pack
// yields exactly one of the smallest pack.
func CoverNeed(needG float64, sizesG []int) []PackRecommendation {
	if needG <= 0 || len(sizesG) == 0 {
		return []PackRecommendation{}
	}

	desc := make([]int, len(sizesG))
	copy(desc, sizesG)
	sort.Sort(sort.Reverse(sort.IntSlice(desc)))

	need := int(math.Ceil(needG))

	var best []int
	bestTotal := -1

	quantities := make([]int, len(desc))
	var walk func(idx, total int)
	walk = func(idx, total int) {
		if total >= need {
			candidate := make([]int, len(quantities))
			copy(candidate, quantities)
			if bestTotal == -1 || betterCover(candidate, total, best, bestTotal, desc) {
				best = candidate
				bestTotal = total
			}
			return
		}
		if idx == len(desc) {
			return
		}
		maxQty := (need-total)/desc[idx] + 1
		for qty := maxQty; qty >= 0; qty-- {
			quantities[idx] = qty
			walk(idx+1, total+qty*desc[idx])
		}
		quantities[idx] = 0
	}
	walk(0, 0)

	result := make([]PackRecommendation, 0, len(desc))
	for i, size := range desc {
		if best[i] > 0 {
			result = append(result, PackRecommendation{SizeG: size, Quantity: best[i]})
		}
	}
	return result
}

// betterCover reports whether candidate a beats current best b under the
// tie-break policy: lowest total, then lowest pack count, then fewest
// distinct sizes, then more of the larger sizes.
func betterCover(a []int, aTotal int, b []int, bTotal int, desc []int) bool {
	if aTotal != bTotal {
		return aTotal < bTotal
	}
	aCount, bCount := sum(a), sum(b)
	if aCount != bCount {
		return aCount < bCount
	}
	aDistinct, bDistinct := distinct(a), distinct(b)
	if aDistinct != bDistinct {
		return aDistinct < bDistinct
	}
	for i := range desc {
		if a[i] != b[i] {
			return a[i] > b[i]
		}
	}
	return false
}

func sum(quantities []int) int {
	total := 0
	for _, q := range quantities {
		total += q
	}
	return total
}

func distinct(quantities []int) int {
	count := 0
	for _, q := range quantities {
		if q > 0 {
			count++
		}
	}
	return count
}

// FormatGrams renders a weight for display, in kilograms from 1000 g up.
func FormatGrams(grams float64) string {
	if grams < 1000 {
		return fmt.Sprintf("%d g", int(math.Round(grams)))
	}
	kg := strconv.FormatFloat(grams/1000, 'f', -1, 64)
	return strings.Replace(kg, ".", ",", 1) + " kg"
}

// FormatPacks renders a pack breakdown, e.g. "1× 2 kg + 1× 500 g".
func FormatPacks(packs []PackRecommendation) string {
	if len(packs) == 0 {
		return "nenhuma embalagem necessária"
	}
	parts := make([]string, 0, len(packs))
	for _, p := range packs {
		parts = append(parts, fmt.Sprintf("%d× %s", p.Quantity, FormatGrams(float64(p.SizeG))))
	}
	return strings.Join(parts, " + ")
}
