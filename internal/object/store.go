package object

// Store is the single arena holding every live entity of a game.
// Entities are kept in insertion order; killed entities stay in place
// (Alive == false) until the next Sweep so indices remain stable within a tick.
type Store struct {
	entities []Entity
	nextID   ID
}

// NewStore creates an empty entity store.
func NewStore() *Store {
	return &Store{nextID: 1}
}

// Add inserts an entity and returns its assigned ID.
func (s *Store) Add(e Entity) ID {
	e.ID = s.nextID
	s.nextID++
	s.entities = append(s.entities, e)
	return e.ID
}

// Len returns the number of stored entities, including killed ones not yet swept.
func (s *Store) Len() int {
	return len(s.entities)
}

// At returns the entity at index i. The pointer is valid until the next
// Add or Sweep.
func (s *Store) At(i int) *Entity {
	return &s.entities[i]
}

// Select appends to dst the indices of alive entities whose kind matches,
// in insertion order, and returns the extended slice.
func (s *Store) Select(dst []int, match func(Kind) bool) []int {
	for i := range s.entities {
		if s.entities[i].Alive && match(s.entities[i].Kind) {
			dst = append(dst, i)
		}
	}
	return dst
}

// Each calls fn for every alive entity in insertion order.
func (s *Store) Each(fn func(e *Entity)) {
	for i := range s.entities {
		if s.entities[i].Alive {
			fn(&s.entities[i])
		}
	}
}

// Sweep removes killed entities and returns how many were removed.
func (s *Store) Sweep() int {
	kept := s.entities[:0] // reuse backing array
	for _, e := range s.entities {
		if e.Alive {
			kept = append(kept, e)
		}
	}
	removed := len(s.entities) - len(kept)
	clear(s.entities[len(kept):])
	s.entities = kept
	return removed
}

// Clear removes every entity. IDs keep increasing across clears.
func (s *Store) Clear() {
	clear(s.entities)
	s.entities = s.entities[:0]
}
