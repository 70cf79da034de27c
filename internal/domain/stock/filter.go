package stock

import "strings"

// FilterByCategoryName devuelve las entradas cuyo nombre de categoría contiene
// query (case-insensitive). No muta el resumen: solo selecciona qué se muestra.
// Query vacío devuelve todo.
func FilterByCategoryName(summaries []CategorySummary, query string) []CategorySummary {
	if query == "" {
		return summaries
	}
	q := strings.ToLower(query)
	out := make([]CategorySummary, 0, len(summaries))
	for _, cs := range summaries {
		if strings.Contains(strings.ToLower(cs.Category.Name), q) {
			out = append(out, cs)
		}
	}
	return out
}

// ExpandState estado de despliegue por categoría (estado de vista, no de
// dominio). Por defecto toda categoría está expandida.
type ExpandState struct {
	collapsed map[int64]bool
}

// NewExpandState crea el estado con las categorías indicadas colapsadas.
func NewExpandState(collapsedIDs ...int64) *ExpandState {
	s := &ExpandState{collapsed: make(map[int64]bool, len(collapsedIDs))}
	for _, id := range collapsedIDs {
		s.collapsed[id] = true
	}
	return s
}

// Toggle invierte el estado de una categoría.
func (s *ExpandState) Toggle(categoryID int64) {
	if s.collapsed[categoryID] {
		delete(s.collapsed, categoryID)
		return
	}
	s.collapsed[categoryID] = true
}

// Expanded indica si la categoría está desplegada (true si nunca se tocó).
func (s *ExpandState) Expanded(categoryID int64) bool {
	return !s.collapsed[categoryID]
}
