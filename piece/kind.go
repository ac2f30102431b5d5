package piece

// Kind names one of the seven tetrinome shapes. It only drives the initial
// layout and color of a piece.
type Kind uint8

const (
	I Kind = iota
	O
	T
	S
	Z
	J
	L
)

// NumKinds is the number of distinct piece kinds.
const NumKinds = 7

var kindNames = [NumKinds]string{"I", "O", "T", "S", "Z", "J", "L"}

func (k Kind) String() string {
	if int(k) >= NumKinds {
		return "?"
	}
	return kindNames[k]
}

// Kinds lists every kind in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, NumKinds)
	for i := range kinds {
		kinds[i] = Kind(i)
	}
	return kinds
}
