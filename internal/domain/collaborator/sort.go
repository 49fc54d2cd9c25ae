package collaborator

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/jhoicas/Colaboradores-api/internal/domain/entity"
)

// SortKey campo por el que se ordena el listado.
type SortKey string

// Claves de ordenamiento soportadas.
const (
	SortByName       SortKey = FieldName
	SortByEmail      SortKey = FieldEmail
	SortByDepartment SortKey = FieldDepartment
	SortByStatus     SortKey = FieldStatus
	SortByAvatar     SortKey = FieldAvatar
)

// Direction sentido del ordenamiento.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// ParseSortKey valida la clave; si no es conocida devuelve SortByName y false.
func ParseSortKey(s string) (SortKey, bool) {
	switch k := SortKey(s); k {
	case SortByName, SortByEmail, SortByDepartment, SortByStatus, SortByAvatar:
		return k, true
	}
	return SortByName, false
}

// ParseDirection interpreta "desc"; cualquier otro valor es ascendente.
func ParseDirection(s string) Direction {
	if Direction(s) == Desc {
		return Desc
	}
	return Asc
}

// SortState recuerda la columna activa y su sentido, como una cabecera de tabla.
type SortState struct {
	Key       SortKey
	Direction Direction
}

// NewSortState comienza ordenando por nombre ascendente.
func NewSortState() SortState {
	return SortState{Key: SortByName, Direction: Asc}
}

// Toggle: la misma clave invierte el sentido; una clave nueva reinicia en ascendente.
func (s SortState) Toggle(key SortKey) SortState {
	if s.Key == key && s.Direction == Asc {
		return SortState{Key: key, Direction: Desc}
	}
	return SortState{Key: key, Direction: Asc}
}

// Apply ordena una copia de records según el estado.
func (s SortState) Apply(records []entity.Collaborator) []entity.Collaborator {
	return Sort(records, s.Key, s.Direction)
}

// Sort devuelve una copia ordenada de records. La comparación usa colación pt-BR
// sin distinguir mayúsculas ni diacríticos. El ordenamiento es estable.
func Sort(records []entity.Collaborator, key SortKey, dir Direction) []entity.Collaborator {
	out := make([]entity.Collaborator, len(records))
	copy(out, records)

	// collate.Collator no es seguro para uso concurrente: uno por llamada.
	col := collate.New(language.BrazilianPortuguese, collate.IgnoreCase, collate.IgnoreDiacritics)
	sort.SliceStable(out, func(i, j int) bool {
		cmp := col.CompareString(fieldValue(out[i], key), fieldValue(out[j], key))
		if dir == Desc {
			return cmp > 0
		}
		return cmp < 0
	})
	return out
}

func fieldValue(c entity.Collaborator, key SortKey) string {
	switch key {
	case SortByEmail:
		return c.Email
	case SortByDepartment:
		return c.Department
	case SortByStatus:
		return c.Status
	case SortByAvatar:
		return c.Avatar
	default:
		return c.Name
	}
}
