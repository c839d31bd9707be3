package slug_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Tienda-api/pkg/slug"
)

func TestMake(t *testing.T) {
	cases := map[string]string{
		"Café con Leche 500g":    "cafe-con-leche-500g",
		"  Frutas & Verduras  ":  "frutas-verduras",
		"Niños / Juguetes":       "ninos-juguetes",
		"ÁRBOL--Genealógico":     "arbol-genealogico",
		"":                       "",
		"---":                    "",
		"Ünïcödé_Täst":           "unicode-tast",
	}
	for in, want := range cases {
		assert.Equal(t, want, slug.Make(in), "entrada %q", in)
	}
}

func TestMake_RecortaALongitudMaxima(t *testing.T) {
	got := slug.Make(strings.Repeat("palabra ", 20))
	assert.LessOrEqual(t, len(got), slug.MaxLength)
	assert.False(t, strings.HasSuffix(got, "-"))
}

func TestValid(t *testing.T) {
	assert.True(t, slug.Valid("frutas-secas"))
	assert.False(t, slug.Valid("Frutas"))
	assert.False(t, slug.Valid("frutas--secas"))
	assert.False(t, slug.Valid(""))
}
