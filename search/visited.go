package search

// VisitedSet records states that have been popped and accepted. It only
// grows during a search. Equality is Go map-key equality, so composite
// states (structs of arrays) are compared structurally.
//
// The zero value is not usable; create sets with NewVisitedSet.
type VisitedSet[S comparable] struct {
	states map[S]struct{}
}

// NewVisitedSet returns an empty set sized for about capacity states.
func NewVisitedSet[S comparable](capacity int) *VisitedSet[S] {
	return &VisitedSet[S]{states: make(map[S]struct{}, capacity)}
}

// Contains reports whether s was already accepted.
func (v *VisitedSet[S]) Contains(s S) bool {
	_, ok := v.states[s]
	return ok
}

// Insert adds s and reports whether it was newly inserted. A false return
// means s was already finalised and the caller should skip it.
func (v *VisitedSet[S]) Insert(s S) bool {
	if _, ok := v.states[s]; ok {
		return false
	}
	v.states[s] = struct{}{}

	return true
}

// Len returns the number of accepted states.
func (v *VisitedSet[S]) Len() int { return len(v.states) }
