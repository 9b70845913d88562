// Package wheel implements the weighted prize draw. A Wheel is pure state over
// its sector table and an injected entropy source; it holds no ledger state.
package wheel

import (
	"errors"
	"math/rand"
	"strconv"
	"sync"

	"github.com/rgalimov/fortuna/internal/domain"
)

type Sector struct {
	Segment string
	Label   string
	Kind    domain.PrizeKind
	Value   string
	Weight  int
}

// BonusAttempts reports how many free attempts the sector grants, zero for
// non-attempt prizes.
func (s Sector) BonusAttempts() int {
	if s.Kind != domain.PrizeAttempt {
		return 0
	}
	bonus, err := strconv.Atoi(s.Value)
	if err != nil {
		return 0
	}
	return bonus
}

var (
	ErrNoSectors     = errors.New("sector table is empty")
	ErrInvalidWeight = errors.New("sector weight must be positive")
)

type Wheel struct {
	sectors []Sector
	total   int

	mu  sync.Mutex
	rnd *rand.Rand
}

func New(sectors []Sector, src rand.Source) (*Wheel, error) {
	if len(sectors) == 0 {
		return nil, ErrNoSectors
	}
	total := 0
	for _, sector := range sectors {
		if sector.Weight <= 0 {
			return nil, ErrInvalidWeight
		}
		total += sector.Weight
	}
	return &Wheel{
		sectors: sectors,
		total:   total,
		rnd:     rand.New(src),
	}, nil
}

// Draw picks a sector with probability weight/sum(weights).
func (w *Wheel) Draw() Sector {
	w.mu.Lock()
	n := w.rnd.Intn(w.total)
	w.mu.Unlock()

	for _, sector := range w.sectors {
		n -= sector.Weight
		if n < 0 {
			return sector
		}
	}
	return w.sectors[len(w.sectors)-1]
}

func (w *Wheel) Sectors() []Sector {
	return w.sectors
}

// DefaultSectors is the production prize table.
func DefaultSectors() []Sector {
	return []Sector{
		{Segment: "🍒", Label: "10 rubles", Kind: domain.PrizeMoney, Value: "10", Weight: 15},
		{Segment: "🍋", Label: "20 rubles", Kind: domain.PrizeMoney, Value: "20", Weight: 15},
		{Segment: "🍊", Label: "Free attempt", Kind: domain.PrizeAttempt, Value: "1", Weight: 15},
		{Segment: "🍇", Label: "5 rubles", Kind: domain.PrizeMoney, Value: "5", Weight: 15},
		{Segment: "🍉", Label: "Candy", Kind: domain.PrizeOther, Value: "candy", Weight: 10},
		{Segment: "💰", Label: "100 rubles", Kind: domain.PrizeMoney, Value: "100", Weight: 5},
		{Segment: "🎁", Label: "Gift", Kind: domain.PrizeOther, Value: "gift", Weight: 5},
		{Segment: "⭐", Label: "5 free attempts", Kind: domain.PrizeAttempt, Value: "5", Weight: 10},
		{Segment: "🍀", Label: "10% discount on the next game", Kind: domain.PrizeDiscount, Value: "10", Weight: 10},
	}
}
