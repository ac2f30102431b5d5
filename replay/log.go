// Package replay records the intents applied to a game and reproduces the
// session from them.
package replay

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/plus3/tetrust/game"
	"gopkg.in/yaml.v3"
)

var (
	ErrConfigMismatch = errors.New("replay config does not match game")
	ErrMalformedLog   = errors.New("malformed replay log")
)

// Entry is one intent and the tick it was applied before.
type Entry struct {
	Tick   uint64      `yaml:"tick"`
	Intent game.Intent `yaml:"intent"`
}

// Log is everything needed to reproduce a session.
type Log struct {
	Config  game.Config `yaml:"config"`
	Ticks   uint64      `yaml:"ticks"`
	Entries []Entry     `yaml:"entries"`
}

// Validate checks the config and that entries are ordered by tick and fall
// within the recorded tick count.
func (l Log) Validate() error {
	if err := l.Config.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedLog, err)
	}
	var last uint64
	for i, e := range l.Entries {
		if e.Tick < last {
			return fmt.Errorf("%w: entry %d at tick %d follows tick %d", ErrMalformedLog, i, e.Tick, last)
		}
		if e.Tick > l.Ticks {
			return fmt.Errorf("%w: entry %d at tick %d is past the end (%d)", ErrMalformedLog, i, e.Tick, l.Ticks)
		}
		if !e.Intent.Valid() {
			return fmt.Errorf("%w: entry %d: %w", ErrMalformedLog, i, game.ErrUnknownIntent)
		}
		last = e.Tick
	}
	return nil
}

// Save writes l as YAML.
func Save(w io.Writer, l Log) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(l); err != nil {
		return fmt.Errorf("encode replay: %w", err)
	}
	return enc.Close()
}

// Load reads a YAML log and validates it.
func Load(r io.Reader) (Log, error) {
	var l Log
	if err := yaml.NewDecoder(r).Decode(&l); err != nil {
		return Log{}, fmt.Errorf("decode replay: %w", err)
	}
	if err := l.Validate(); err != nil {
		return Log{}, err
	}
	return l, nil
}

func SaveFile(path string, l Log) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Save(f, l); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func LoadFile(path string) (Log, error) {
	f, err := os.Open(path)
	if err != nil {
		return Log{}, err
	}
	defer f.Close()
	return Load(f)
}
