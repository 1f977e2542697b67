package game

import "golang.org/x/exp/rand"

// Pool is the shared set of draw slots: five factory displays plus the
// center slot that accumulates factory leftovers. Each slot counts tiles
// by color.
type Pool struct {
	Slots [NumPoolSlots][NumColors]int
}

// Refill discards whatever is left and deals four random tiles into each
// factory display from the injected generator. The center starts empty.
func (p *Pool) Refill(rng *rand.Rand) {
	p.Slots = [NumPoolSlots][NumColors]int{}
	for f := 0; f < NumFactories; f++ {
		for t := 0; t < TilesPerFactory; t++ {
			p.Slots[f][rng.Intn(NumColors)]++
		}
	}
}

// Count returns the number of tiles of color in the given slot.
func (p *Pool) Count(slot int, color Color) int {
	return p.Slots[slot][color]
}

// Empty reports whether every slot holds zero tiles of every color.
func (p *Pool) Empty() bool {
	for s := range p.Slots {
		for c := range p.Slots[s] {
			if p.Slots[s][c] != 0 {
				return false
			}
		}
	}
	return true
}

// Total returns the number of tiles across all slots.
func (p *Pool) Total() int {
	total := 0
	for s := range p.Slots {
		for c := range p.Slots[s] {
			total += p.Slots[s][c]
		}
	}
	return total
}

// take removes and returns all tiles of color from the slot.
func (p *Pool) take(slot int, color Color) int {
	n := p.Slots[slot][color]
	p.Slots[slot][color] = 0
	return n
}

// spillToCenter moves every remaining tile of a factory into the center
// and zeroes the factory.
func (p *Pool) spillToCenter(factory int) {
	for c := range p.Slots[factory] {
		p.Slots[CenterSlot][c] += p.Slots[factory][c]
		p.Slots[factory][c] = 0
	}
}
