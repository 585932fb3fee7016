package excalidraw

import (
	"math/rand"
	"sync"
	"time"
)

// idAlphabet holds the 64 symbols used in element identifiers.
const idAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"

const (
	idLength = 8
	seedMax  = 1 << 31
)

// Randomizer provides the identifiers and rendering seeds of new elements.
type Randomizer interface {
	// NextID returns an 8 characters identifier.
	NextID() string
	// NextSeed returns an integer in [0, 2^31).
	NextSeed() uint32
}

// RandSource is a Randomizer backed by a math/rand generator.
// It is safe for concurrent use.
type RandSource struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewRandSource wraps `rnd`. Use a seeded generator
// to get reproducible scenes.
func NewRandSource(rnd *rand.Rand) *RandSource {
	return &RandSource{rnd: rnd}
}

var defaultSource = NewRandSource(rand.New(rand.NewSource(time.Now().UnixNano())))

// DefaultRandomizer returns the process wide source used when
// no Randomizer is provided.
func DefaultRandomizer() Randomizer { return defaultSource }

func (rs *RandSource) NextID() string {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	var b [idLength]byte
	for i := range b {
		b[i] = idAlphabet[rs.rnd.Intn(len(idAlphabet))]
	}
	return string(b[:])
}

func (rs *RandSource) NextSeed() uint32 {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	return uint32(rs.rnd.Int63n(seedMax))
}

// ValidID reports whether `id` has the shape of a generated identifier.
func ValidID(id string) bool {
	if len(id) != idLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		c := id[i]
		switch {
		case 'A' <= c && c <= 'Z', 'a' <= c && c <= 'z', '0' <= c && c <= '9', c == '-', c == '_':
		default:
			return false
		}
	}
	return true
}
