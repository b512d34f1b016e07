package game

import (
	"math"
	"math/rand"
)

// The wheel is a half-circle. Every spin lays out five contiguous sectors of
// fixed width and values at a random offset, so the scoring band sits
// somewhere new each round while the geometry itself never changes.
const (
	halfCircle  = 180.0
	sectorWidth = 10.0
)

var (
	sectorValues = []int{2, 3, 4, 3, 2}
	sectorColors = []string{"yellow", "red", "blue", "red", "yellow"}
)

// WheelGen produces the random parts of a round. It is not safe for
// concurrent use; every room owns its own generator and calls it under the
// room lock. Tests inject a seeded rand.Rand for deterministic layouts.
type WheelGen struct {
	rnd *rand.Rand
}

func NewWheelGen(rnd *rand.Rand) *WheelGen {
	return &WheelGen{rnd: rnd}
}

// Sectors generates the sector layout for one round: the full band of
// sectors shifted by a random offset, always fitting inside the half-circle.
func (g *WheelGen) Sectors() []WheelSector {
	band := sectorWidth * float64(len(sectorValues))
	offset := g.rnd.Float64() * (halfCircle - band)

	sectors := make([]WheelSector, 0, len(sectorValues))
	start := offset
	for i, value := range sectorValues {
		sectors = append(sectors, WheelSector{
			Value:      value,
			Color:      sectorColors[i],
			StartAngle: start,
			EndAngle:   start + sectorWidth,
		})
		start += sectorWidth
	}
	return sectors
}

// SpinAngle is where the wheel visually stops. It is cosmetic: scoring
// depends only on the arrow position, never on the spin itself.
func (g *WheelGen) SpinAngle() float64 {
	return g.rnd.Float64() * halfCircle
}

func (g *WheelGen) AntonymPair() [2]string {
	return antonymPairs[g.rnd.Intn(len(antonymPairs))]
}

// NormalizeAngle wraps an arbitrary arrow position into [0, 180), so -10
// becomes 170 and 190 becomes 10.
func NormalizeAngle(pos float64) float64 {
	a := math.Mod(pos, halfCircle)
	if a < 0 {
		a += halfCircle
	}
	return a
}

// Score returns the value of the sector containing the normalized arrow
// position, or 0 when the arrow landed outside the band. A miss is a valid
// outcome, not an error.
func Score(pos float64, sectors []WheelSector) int {
	a := NormalizeAngle(pos)
	for _, s := range sectors {
		if a >= s.StartAngle && a < s.EndAngle {
			return s.Value
		}
	}
	return 0
}
