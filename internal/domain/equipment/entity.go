package equipment

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrEmptyName     = errors.New("equipment name cannot be empty")
	ErrNegativePrice = errors.New("equipment price cannot be negative")
)

// Equipment is a rentable add-on claimed as part of a workspace rental.
// Availability flips only through the rental engine's conditional writes.
type Equipment struct {
	id        uuid.UUID
	name      string
	price     float64
	available bool
}

func NewEquipment(name string, price float64) (*Equipment, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if price < 0 {
		return nil, ErrNegativePrice
	}

	return &Equipment{
		id:        uuid.New(),
		name:      name,
		price:     price,
		available: true,
	}, nil
}

func ReconstructEquipment(id uuid.UUID, name string, price float64, available bool) *Equipment {
	return &Equipment{
		id:        id,
		name:      name,
		price:     price,
		available: available,
	}
}

func (e *Equipment) ID() uuid.UUID   { return e.id }
func (e *Equipment) Name() string    { return e.name }
func (e *Equipment) Price() float64  { return e.price }
func (e *Equipment) Available() bool { return e.available }
