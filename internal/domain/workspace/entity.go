package workspace

import (
	"errors"

	"workspace-rental/internal/domain/booking"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus   = errors.New("invalid workspace status")
	ErrNegativePrice   = errors.New("base price cannot be negative")
	ErrEmptyName       = errors.New("workspace name cannot be empty")
	ErrInvalidCapacity = errors.New("capacity must be positive")
)

type Status string

const (
	StatusAvailable Status = "AVAILABLE"
	StatusReserved  Status = "RESERVED"
)

func NewStatus(value string) (Status, error) {
	switch Status(value) {
	case StatusAvailable, StatusReserved:
		return Status(value), nil
	default:
		return "", ErrInvalidStatus
	}
}

// Workspace is a rentable room. Status and the admitted slot list are
// mutated only through the rental engine's conditional store writes;
// the entity itself carries a read snapshot.
type Workspace struct {
	id          uuid.UUID
	roomType    string
	name        string
	capacity    int
	description string
	basePrice   float64
	status      Status
	rentedSlots []booking.TimeSlot
	version     int64
}

func NewWorkspace(roomType, name string, capacity int, description string, basePrice float64) (*Workspace, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	if basePrice < 0 {
		return nil, ErrNegativePrice
	}

	return &Workspace{
		id:          uuid.New(),
		roomType:    roomType,
		name:        name,
		capacity:    capacity,
		description: description,
		basePrice:   basePrice,
		status:      StatusAvailable,
	}, nil
}

func ReconstructWorkspace(
	id uuid.UUID,
	roomType, name string,
	capacity int,
	description string,
	basePrice float64,
	status Status,
	rentedSlots []booking.TimeSlot,
	version int64,
) *Workspace {
	return &Workspace{
		id:          id,
		roomType:    roomType,
		name:        name,
		capacity:    capacity,
		description: description,
		basePrice:   basePrice,
		status:      status,
		rentedSlots: rentedSlots,
		version:     version,
	}
}

func (w *Workspace) ID() uuid.UUID                   { return w.id }
func (w *Workspace) RoomType() string                { return w.roomType }
func (w *Workspace) Name() string                    { return w.name }
func (w *Workspace) Capacity() int                   { return w.capacity }
func (w *Workspace) Description() string             { return w.description }
func (w *Workspace) BasePrice() float64              { return w.basePrice }
func (w *Workspace) Status() Status                  { return w.status }
func (w *Workspace) RentedSlots() []booking.TimeSlot { return w.rentedSlots }
func (w *Workspace) Version() int64                  { return w.version }

func (w *Workspace) IsAvailable() bool {
	return w.status == StatusAvailable
}
