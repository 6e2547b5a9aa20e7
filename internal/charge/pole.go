// Package charge holds the charge sources the calculators read.
//
// A [Pole] is an immutable snapshot. Hosts change a configuration with the
// command functions ([Move], [SetCharge], [MoveByID], [SetChargeByID]),
// which return new values and leave their inputs untouched, and then call
// the engine again with the result.
package charge

import (
	"errors"

	"github.com/google/uuid"
	"github.com/san-kum/fieldlab/internal/field"
)

var ErrPoleNotFound = errors.New("charge: pole not found")

// Pole is a point charge placed in the display plane. Radius is only used
// for drawing.
type Pole struct {
	ID       string     `json:"id" yaml:"id"`
	Position field.Vec2 `json:"position" yaml:"position"`
	Charge   float64    `json:"charge" yaml:"charge"`
	Radius   float64    `json:"radius,omitempty" yaml:"radius,omitempty"`
}

// New creates a pole with a fresh random id.
func New(x, y, q, radius float64) Pole {
	return Pole{
		ID:       uuid.NewString(),
		Position: field.V(x, y),
		Charge:   q,
		Radius:   radius,
	}
}

func (p Pole) X() float64 { return p.Position.X }
func (p Pole) Y() float64 { return p.Position.Y }

func (p Pole) HasCharge() bool { return p.Charge != 0 }

// Sign returns -1, 0 or +1.
func (p Pole) Sign() int {
	switch {
	case p.Charge > 0:
		return 1
	case p.Charge < 0:
		return -1
	}
	return 0
}

func (p Pole) DistanceTo(o Pole) float64 {
	return p.Position.Dist(o.Position)
}

// Move returns a copy of p at (x, y).
func Move(p Pole, x, y float64) Pole {
	p.Position = field.V(x, y)
	return p
}

// SetCharge returns a copy of p carrying q.
func SetCharge(p Pole, q float64) Pole {
	p.Charge = q
	return p
}

// MoveByID returns a new slice in which the pole with id sits at (x, y).
func MoveByID(poles []Pole, id string, x, y float64) ([]Pole, error) {
	return update(poles, id, func(p Pole) Pole { return Move(p, x, y) })
}

// SetChargeByID returns a new slice in which the pole with id carries q.
func SetChargeByID(poles []Pole, id string, q float64) ([]Pole, error) {
	return update(poles, id, func(p Pole) Pole { return SetCharge(p, q) })
}

func update(poles []Pole, id string, fn func(Pole) Pole) ([]Pole, error) {
	out := make([]Pole, len(poles))
	copy(out, poles)
	for i := range out {
		if out[i].ID == id {
			out[i] = fn(out[i])
			return out, nil
		}
	}
	return nil, ErrPoleNotFound
}

// Charged returns the poles carrying nonzero charge, in order.
func Charged(poles []Pole) []Pole {
	out := make([]Pole, 0, len(poles))
	for _, p := range poles {
		if p.HasCharge() {
			out = append(out, p)
		}
	}
	return out
}

// TotalAbsCharge sums |q| over all poles.
func TotalAbsCharge(poles []Pole) float64 {
	total := 0.0
	for _, p := range poles {
		if p.Charge < 0 {
			total -= p.Charge
		} else {
			total += p.Charge
		}
	}
	return total
}

// CountBySign returns how many poles carry positive and negative charge.
func CountBySign(poles []Pole) (pos, neg int) {
	for _, p := range poles {
		switch p.Sign() {
		case 1:
			pos++
		case -1:
			neg++
		}
	}
	return
}
