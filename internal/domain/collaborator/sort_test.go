package collaborator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Colaboradores-api/internal/domain/collaborator"
	"github.com/jhoicas/Colaboradores-api/internal/domain/entity"
)

func names(list []entity.Collaborator) []string {
	out := make([]string, 0, len(list))
	for _, c := range list {
		out = append(out, c.Name)
	}
	return out
}

func TestSort_ToggleInvierteOrden(t *testing.T) {
	in := []entity.Collaborator{{Name: "carlos"}, {Name: "Ana"}, {Name: "Bruno"}, {Name: "Élida"}}

	state := collaborator.NewSortState()
	asc := state.Apply(in)
	assert.Equal(t, []string{"Ana", "Bruno", "carlos", "Élida"}, names(asc))

	state = state.Toggle(collaborator.SortByName)
	require.Equal(t, collaborator.Desc, state.Direction)
	desc := state.Apply(in)

	reversed := make([]string, len(asc))
	for i, n := range names(asc) {
		reversed[len(asc)-1-i] = n
	}
	assert.Equal(t, reversed, names(desc))
}

func TestSort_NoModificaEntrada(t *testing.T) {
	in := []entity.Collaborator{{Name: "b"}, {Name: "a"}}
	_ = collaborator.Sort(in, collaborator.SortByName, collaborator.Asc)
	assert.Equal(t, "b", in[0].Name)
}

func TestSort_IgnoraMayusculasYEsEstable(t *testing.T) {
	in := []entity.Collaborator{
		{Name: "ana", Email: "1@x.com"},
		{Name: "Ana", Email: "2@x.com"},
		{Name: "ANA", Email: "3@x.com"},
	}
	out := collaborator.Sort(in, collaborator.SortByName, collaborator.Asc)
	assert.Equal(t, []string{"1@x.com", "2@x.com", "3@x.com"}, []string{out[0].Email, out[1].Email, out[2].Email},
		"claves iguales conservan el orden original")
}

func TestSortState_NuevaClaveReiniciaAscendente(t *testing.T) {
	state := collaborator.NewSortState().Toggle(collaborator.SortByName)
	require.Equal(t, collaborator.Desc, state.Direction)

	state = state.Toggle(collaborator.SortByDepartment)
	assert.Equal(t, collaborator.SortByDepartment, state.Key)
	assert.Equal(t, collaborator.Asc, state.Direction)

	state = state.Toggle(collaborator.SortByDepartment).Toggle(collaborator.SortByDepartment)
	assert.Equal(t, collaborator.Asc, state.Direction, "dos toggles vuelven a ascendente")
}

func TestSort_PorEstado(t *testing.T) {
	in := []entity.Collaborator{{Name: "a", Status: entity.StatusInactive}, {Name: "b", Status: entity.StatusActive}}
	out := collaborator.Sort(in, collaborator.SortByStatus, collaborator.Asc)
	assert.Equal(t, entity.StatusActive, out[0].Status)
}

func TestParseSortKey(t *testing.T) {
	k, ok := collaborator.ParseSortKey("email")
	assert.True(t, ok)
	assert.Equal(t, collaborator.SortByEmail, k)

	k, ok = collaborator.ParseSortKey("salario")
	assert.False(t, ok)
	assert.Equal(t, collaborator.SortByName, k)
}
