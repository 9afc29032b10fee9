package drawlog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
)

// ErrExhausted is wrapped by the panic value of Player.Next once every
// recorded draw has been replayed.
var ErrExhausted = errors.New("drawlog: recorded draws exhausted")

// Player replays recorded draws in order. It is safe for concurrent use.
type Player struct {
	mu    sync.Mutex
	draws []float64
	next  int
}

// Replay reads every draw from r. Draws must be numbered from zero without
// gaps, and every value must lie in [0, 1).
func Replay(r io.Reader) (*Player, error) {
	var draws []float64
	dec := json.NewDecoder(r)
	for {
		var d Draw
		err := dec.Decode(&d)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decode draw record %d: %w", len(draws)+1, err)
		}
		if d.Seq != uint64(len(draws)) {
			return nil, fmt.Errorf("draw record %d: expected seq %d, got %d", len(draws)+1, len(draws), d.Seq)
		}
		if !(d.Value >= 0 && d.Value < 1) {
			return nil, fmt.Errorf("draw record %d: value %v outside [0, 1)", len(draws)+1, d.Value)
		}
		draws = append(draws, d.Value)
	}
	return &Player{draws: draws}, nil
}

// ReplayFile is Replay on the contents of the file at path.
func ReplayFile(path string) (*Player, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open draw log %s: %w", path, err)
	}
	defer file.Close()
	return Replay(file)
}

// Next returns the next recorded value. It panics with an error wrapping
// ErrExhausted when none are left.
func (p *Player) Next() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.next >= len(p.draws) {
		panic(fmt.Errorf("%w after %d draws", ErrExhausted, len(p.draws)))
	}
	v := p.draws[p.next]
	p.next++
	return v
}

// Remaining returns how many recorded values have not been replayed yet.
func (p *Player) Remaining() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.draws) - p.next
}
