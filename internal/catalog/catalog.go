// Package catalog holds the static Terravik product table. The three SKUs
// are loaded once and never mutated at runtime.
package catalog

import (
	"github.com/KairamCabral/terravik-sub003/pkg/enums"
)

// Product is one fertilizer SKU with its agronomic constants.
type Product struct {
	ID          enums.ProductID
	Name        string
	ShortName   string
	Base        string
	DoseMinGM2  float64
	DoseMaxGM2  float64
	DoseDefault float64
	// FrequencyWeeksMin/Max bound the reapplication interval.
	FrequencyWeeksMin int
	FrequencyWeeksMax int
	// PackSizesG lists available package weights in grams, ascending.
	PackSizesG []int
	Guidance   string
	Cautions   []string
}

var products = []Product{
	{
		ID:                enums.ProductRaizes,
		Name:              "Terravik Raízes Fortes",
		ShortName:         "Raízes",
		Base:              "NPK 05-20-10 com fósforo de liberação gradual",
		DoseMinGM2:        15,
		DoseMaxGM2:        25,
		DoseDefault:       20,
		FrequencyWeeksMin: 6,
		FrequencyWeeksMax: 8,
		PackSizesG:        []int{500, 2000, 5000},
		Guidance:          "Aplique a lanço sobre o solo úmido e regue em seguida. Ideal para plantio, semeadura e recuperação de falhas.",
		Cautions: []string{
			"Não aplique sobre folhas molhadas em dia de sol forte.",
			"Mantenha animais fora da área até a primeira rega.",
		},
	},
	{
		ID:                enums.ProductVerdeIntens,
		Name:              "Terravik Verde Intenso",
		ShortName:         "Verde Intenso",
		Base:              "NPK 24-04-08 com nitrogênio estabilizado",
		DoseMinGM2:        10,
		DoseMaxGM2:        20,
		DoseDefault:       15,
		FrequencyWeeksMin: 4,
		FrequencyWeeksMax: 6,
		PackSizesG:        []int{500, 2000, 5000},
		Guidance:          "Distribua uniformemente com o gramado seco e irrigue logo após. Resposta de cor em 5 a 7 dias.",
		Cautions: []string{
			"Excesso de nitrogênio em calor intenso pode queimar o gramado.",
		},
	},
	{
		ID:                enums.ProductEscudo,
		Name:              "Terravik Escudo",
		ShortName:         "Escudo",
		Base:              "NPK 08-10-18 com potássio e micronutrientes",
		DoseMinGM2:        10,
		DoseMaxGM2:        15,
		DoseDefault:       12,
		FrequencyWeeksMin: 6,
		FrequencyWeeksMax: 10,
		PackSizesG:        []int{500, 2000},
		Guidance:          "Aplique antes de períodos de estresse (frio, seca, pisoteio intenso) para fortalecer a resistência do gramado.",
		Cautions: []string{
			"Não substitui a adubação de crescimento regular.",
		},
	},
}

// Products returns the full SKU table in catalog order. The slice is shared;
// callers must not mutate it.
func Products() []Product {
	return products
}

// ByID returns the product for the given ID, or false when unknown.
func ByID(id enums.ProductID) (Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}
