package stock_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/printworks/stockroom-api/internal/domain/entity"
	"github.com/printworks/stockroom-api/internal/domain/stock"
)

func filterFixture() []stock.CategorySummary {
	return []stock.CategorySummary{
		{Category: entity.Category{ID: 1, Name: "Inks"}},
		{Category: entity.Category{ID: 2, Name: "Paper"}},
		{Category: entity.Category{ID: 3, Name: "Ink Cartridges"}},
	}
}

func TestFilterByCategoryName_SubstringCaseInsensitive(t *testing.T) {
	out := stock.FilterByCategoryName(filterFixture(), "ink")

	require.Len(t, out, 2)
	assert.Equal(t, "Inks", out[0].Category.Name)
	assert.Equal(t, "Ink Cartridges", out[1].Category.Name)
}

func TestFilterByCategoryName_QueryVacio_DevuelveTodo(t *testing.T) {
	in := filterFixture()
	out := stock.FilterByCategoryName(in, "")
	assert.Equal(t, in, out)
}

func TestFilterByCategoryName_SinCoincidencias(t *testing.T) {
	out := stock.FilterByCategoryName(filterFixture(), "toner")
	assert.Empty(t, out)
}

func TestFilterByCategoryName_NoMutaElResumen(t *testing.T) {
	in := filterFixture()
	_ = stock.FilterByCategoryName(in, "paper")
	require.Len(t, in, 3, "el filtro solo selecciona, nunca muta la fuente")
}

func TestExpandState_PorDefectoExpandido(t *testing.T) {
	s := stock.NewExpandState()
	assert.True(t, s.Expanded(1))
	assert.True(t, s.Expanded(99))
}

func TestExpandState_ToggleInvierte(t *testing.T) {
	s := stock.NewExpandState()
	s.Toggle(1)
	assert.False(t, s.Expanded(1))
	assert.True(t, s.Expanded(2), "toggle no afecta otras categorías")
	s.Toggle(1)
	assert.True(t, s.Expanded(1))
}

func TestExpandState_ColapsadasIniciales(t *testing.T) {
	s := stock.NewExpandState(2, 3)
	assert.True(t, s.Expanded(1))
	assert.False(t, s.Expanded(2))
	assert.False(t, s.Expanded(3))
}
