package piece

import (
	"math/rand/v2"

	"github.com/plus3/tetrust/core"
)

// Table is an immutable set of prototype pieces, built once at startup.
type Table struct {
	pieces []Piece
}

// NewTable parses every prototype. The table is complete or an error is
// returned; there is no partially initialized state.
func NewTable(protos ...Prototype) (*Table, error) {
	t := &Table{pieces: make([]Piece, 0, len(protos))}
	for _, proto := range protos {
		p, err := FromLayout(proto.Kind, proto.Color, proto.Layout)
		if err != nil {
			return nil, err
		}
		t.pieces = append(t.pieces, p)
	}
	return t, nil
}

// StandardTable returns the table of the seven canonical pieces.
func StandardTable() *Table {
	t, err := NewTable(Standard[:]...)
	if err != nil {
		panic("standard piece layouts are malformed: " + err.Error())
	}
	return t
}

// Len is the number of prototypes.
func (t *Table) Len() int {
	return len(t.pieces)
}

// At returns a copy of the i-th prototype.
func (t *Table) At(i int) Piece {
	return t.pieces[i]
}

// Lookup returns a copy of the first prototype of the given kind.
func (t *Table) Lookup(kind Kind) (Piece, bool) {
	for _, p := range t.pieces {
		if p.Kind == kind {
			return p, true
		}
	}
	return Piece{}, false
}

var spawnRotations = [...]core.Rotation{core.RotationCW, core.RotationCCW, core.RotationNone}

// Spawner draws random pieces from a table using an injected random source.
type Spawner struct {
	table *Table
	rng   *rand.Rand
}

// NewSpawner creates a spawner over table. Seed rng to make spawns repeatable.
func NewSpawner(table *Table, rng *rand.Rand) *Spawner {
	return &Spawner{table: table, rng: rng}
}

// Next picks a prototype uniformly, applies a random rotation step around the
// prototype's own pivot, and only then moves it to a random column in
// [Size, boardWidth-Size) on the top row.
func (s *Spawner) Next(boardWidth int) Piece {
	p := s.table.At(s.rng.IntN(s.table.Len()))
	p.Rotate(spawnRotations[s.rng.IntN(len(spawnRotations))])

	x := Size
	if span := boardWidth - 2*Size; span > 0 {
		x += s.rng.IntN(span)
	}
	p.Translate(core.Coord{X: x, Y: 0})
	return p
}
