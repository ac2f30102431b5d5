package game

import (
	"errors"
	"fmt"
)

var ErrUnknownIntent = errors.New("unknown intent")

// Intent is a discrete player command.
type Intent uint8

const (
	MoveLeft Intent = iota
	MoveRight
	MoveDown
	RotateCW
	RotateCCW
	HardDrop
	ClearBoard

	numIntents
)

var intentNames = [numIntents]string{"left", "right", "down", "cw", "ccw", "drop", "clear"}

// Intents lists every intent in declaration order.
func Intents() []Intent {
	intents := make([]Intent, numIntents)
	for i := range intents {
		intents[i] = Intent(i)
	}
	return intents
}

func (i Intent) Valid() bool {
	return i < numIntents
}

func (i Intent) String() string {
	if !i.Valid() {
		return fmt.Sprintf("Intent(%d)", uint8(i))
	}
	return intentNames[i]
}

// ParseIntent returns the intent with the given name.
func ParseIntent(name string) (Intent, error) {
	for i, n := range intentNames {
		if n == name {
			return Intent(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownIntent, name)
}

func (i Intent) MarshalText() ([]byte, error) {
	if !i.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownIntent, uint8(i))
	}
	return []byte(intentNames[i]), nil
}

func (i *Intent) UnmarshalText(text []byte) error {
	parsed, err := ParseIntent(string(text))
	if err != nil {
		return err
	}
	*i = parsed
	return nil
}
