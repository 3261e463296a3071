package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

type fakeCategoryRepo struct {
	rows map[string]*entity.Category // nombre → fila
}

func (f *fakeCategoryRepo) Create(c *entity.Category) error {
	if _, ok := f.rows[c.Name]; ok {
		return domain.ErrDuplicate
	}
	f.rows[c.Name] = c
	return nil
}

func (f *fakeCategoryRepo) ListAll() ([]*entity.Category, error) {
	var all []*entity.Category
	for _, c := range f.rows {
		all = append(all, c)
	}
	return all, nil
}

type fakeUnitRepo struct {
	rows map[string]*entity.Unit
}

func (f *fakeUnitRepo) Create(u *entity.Unit) error {
	if _, ok := f.rows[u.Name]; ok {
		return domain.ErrDuplicate
	}
	f.rows[u.Name] = u
	return nil
}

func (f *fakeUnitRepo) ListAll() ([]*entity.Unit, error) {
	var all []*entity.Unit
	for _, u := range f.rows {
		all = append(all, u)
	}
	return all, nil
}

// En una segunda corrida del seed, el mapa debe llevar el id de la fila que ya
// existe en la base y no el uuid fresco que el Create duplicado descartó.
func TestEnsureCategories_ReusaIDDeFilaExistente(t *testing.T) {
	repo := &fakeCategoryRepo{rows: map[string]*entity.Category{
		"Papelería": {ID: "cat-existente", Name: "Papelería"},
	}}

	ids, err := ensureCategories(repo, []string{"Papelería", "Limpieza"})
	require.NoError(t, err)

	assert.Equal(t, "cat-existente", ids["Papelería"], "debe conservar el id ya persistido")
	assert.NotEmpty(t, ids["Limpieza"], "la categoría nueva sí recibe id propio")
	assert.Equal(t, repo.rows["Limpieza"].ID, ids["Limpieza"], "el id del mapa debe ser el que quedó en la base")
}

func TestEnsureUnits_ReusaIDDeFilaExistente(t *testing.T) {
	repo := &fakeUnitRepo{rows: map[string]*entity.Unit{
		"pieza": {ID: "unit-existente", Name: "pieza"},
	}}

	ids, err := ensureUnits(repo, []string{"pieza", "caja"})
	require.NoError(t, err)

	assert.Equal(t, "unit-existente", ids["pieza"])
	assert.Equal(t, repo.rows["caja"].ID, ids["caja"])
}

// Correr dos veces con el mismo repo no debe cambiar ningún id.
func TestEnsureCategories_EsIdempotente(t *testing.T) {
	repo := &fakeCategoryRepo{rows: map[string]*entity.Category{}}
	names := []string{"Papelería", "Limpieza", "Herramientas"}

	first, err := ensureCategories(repo, names)
	require.NoError(t, err)
	second, err := ensureCategories(repo, names)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
