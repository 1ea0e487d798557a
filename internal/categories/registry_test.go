package categories

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultSeed(t *testing.T) {
	r := NewRegistry()
	assert.Equal(t, []string{"Разработка", "Аналитика", "Тестирование"}, r.List())
}

func TestCustomSeed(t *testing.T) {
	r := NewRegistry("Дом", "Работа")
	assert.Equal(t, []string{"Дом", "Работа"}, r.List())
	assert.Equal(t, 2, r.Len())
}

func TestAddPreservesOrderAndDuplicates(t *testing.T) {
	r := NewRegistry()
	r.Add("Спорт")
	r.Add("Спорт")

	list := r.List()
	assert.Equal(t, 5, len(list))
	assert.Equal(t, "Спорт", list[3])
	assert.Equal(t, "Спорт", list[4], "appends are permissive, duplicates kept")
}

func TestListReturnsSnapshot(t *testing.T) {
	r := NewRegistry()
	list := r.List()
	list[0] = "mutated"
	assert.Equal(t, "Разработка", r.List()[0])
}
