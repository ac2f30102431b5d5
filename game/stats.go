package game

import (
	"github.com/kamstrup/intmap"
	"github.com/plus3/tetrust/piece"
)

// Stats counts what happened during a session.
type Stats struct {
	Ticks       uint64
	Pieces      int
	RowsCleared int

	spawns *intmap.Map[piece.Kind, int]
}

func newStats() *Stats {
	return &Stats{spawns: intmap.New[piece.Kind, int](piece.NumKinds)}
}

func (s *Stats) spawned(kind piece.Kind) {
	n, _ := s.spawns.Get(kind)
	s.spawns.Put(kind, n+1)
}

// Spawns is how many pieces of kind have been spawned, including the one
// currently falling.
func (s *Stats) Spawns(kind piece.Kind) int {
	n, _ := s.spawns.Get(kind)
	return n
}

// TotalSpawns sums Spawns over every kind.
func (s *Stats) TotalSpawns() int {
	total := 0
	for _, kind := range piece.Kinds() {
		total += s.Spawns(kind)
	}
	return total
}
