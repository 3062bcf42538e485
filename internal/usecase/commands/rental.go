package commands

import (
	"context"
	"sync"
	"time"

	"workspace-rental/internal/domain/booking"
	"workspace-rental/internal/domain/payment"
	"workspace-rental/internal/domain/workspace"
	"workspace-rental/internal/infra"
	"workspace-rental/internal/pkg/clock"
	"workspace-rental/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrWorkspaceNotFound    = errs.New("workspace not found")
	ErrEquipmentNotFound    = errs.New("equipment not found")
	ErrInvalidTimeSlot      = errs.New("invalid time slot")
	ErrWorkspaceUnavailable = errs.New("workspace not available")
	ErrWorkspaceNotReserved = errs.New("workspace not reserved")
	ErrSlotUnavailable      = errs.New("time slot unavailable")
	ErrPaymentFailed        = errs.New("payment failed")
	ErrStoreUnavailable     = errs.New("store unavailable")
)

// PaymentDeclinedError carries the persisted ledger record alongside the
// failure, so the caller always has an audit reference for the declined
// attempt. errors.Is(err, ErrPaymentFailed) holds.
type PaymentDeclinedError struct {
	Record *payment.Record
	reason error
}

func NewPaymentDeclinedError(record *payment.Record, reason error) *PaymentDeclinedError {
	return &PaymentDeclinedError{Record: record, reason: reason}
}

func (e *PaymentDeclinedError) Error() string {
	if e.reason != nil {
		return "payment failed: " + e.reason.Error()
	}
	return "payment failed"
}

func (e *PaymentDeclinedError) Is(target error) bool {
	return target == ErrPaymentFailed
}

type RentNowResult struct {
	Workspace          *workspace.Workspace
	TotalPrice         float64
	Record             *payment.Record
	FailedEquipmentIDs []uuid.UUID
}

type RentSlotResult struct {
	TotalPrice float64
	Slot       booking.TimeSlot
	Record     *payment.Record
}

type RentalCommands interface {
	RentNow(ctx context.Context, workspaceID uuid.UUID, equipmentIDs []uuid.UUID, info payment.PaymentInfo, lateFine *float64, userID uuid.UUID) (*RentNowResult, error)
	RentTimeSlot(ctx context.Context, workspaceID uuid.UUID, start, end time.Time, info payment.PaymentInfo, userID uuid.UUID) (*RentSlotResult, error)
	Release(ctx context.Context, workspaceID uuid.UUID) (*workspace.Workspace, error)
}

type rentalCommandsImpl struct {
	workspaceRepo WorkspaceRepository
	equipmentRepo EquipmentRepository
	ledger        LedgerRepository
	gateway       PaymentGateway
	clock         clock.Clock
	policy        RentalPolicy
}

func NewRentalCommands(
	workspaceRepo WorkspaceRepository,
	equipmentRepo EquipmentRepository,
	ledger LedgerRepository,
	gateway PaymentGateway,
	clk clock.Clock,
	policy RentalPolicy,
) RentalCommands {
	if policy.LedgerRetries < 1 {
		policy.LedgerRetries = 1
	}
	return &rentalCommandsImpl{
		workspaceRepo: workspaceRepo,
		equipmentRepo: equipmentRepo,
		ledger:        ledger,
		gateway:       gateway,
		clock:         clk,
		policy:        policy,
	}
}

// RentNow rents a whole workspace immediately. Sequencing:
// equipment lookup (prices), conditional AVAILABLE->RESERVED flip,
// charge computation, payment authorization, unconditional ledger write,
// then independent per-item equipment claims. The ledger write always
// precedes both the error return and the equipment claims.
func (r *rentalCommandsImpl) RentNow(
	ctx context.Context,
	workspaceID uuid.UUID,
	equipmentIDs []uuid.UUID,
	info payment.PaymentInfo,
	lateFine *float64,
	userID uuid.UUID,
) (*RentNowResult, error) {
	items, err := r.equipmentRepo.FindByIDs(ctx, equipmentIDs)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrEquipmentNotFound)
		}
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}

	ws, err := r.workspaceRepo.MarkReserved(ctx, workspaceID)
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return nil, errs.Mark(err, ErrWorkspaceNotFound)
		case infra.IsKind(err, infra.KindConflict):
			return nil, errs.Mark(err, ErrWorkspaceUnavailable)
		default:
			return nil, errs.Mark(err, ErrStoreUnavailable)
		}
	}

	totalPrice := booking.FlatPrice(ws.BasePrice(), lateFine)
	for _, item := range items {
		totalPrice += item.Price()
	}

	authErr := r.authorize(ctx, totalPrice, info)

	record := payment.NewRecord(
		r.clock.Now(), totalPrice, userID, workspaceID, equipmentIDs, lateFine, recordStatus(authErr))
	if err := r.appendLedger(ctx, record); err != nil {
		return nil, err
	}

	if authErr != nil {
		// The workspace stays RESERVED; releasing it is an operator
		// decision, not an automatic compensation.
		return nil, NewPaymentDeclinedError(record, authErr)
	}

	failed := r.claimEquipment(ctx, equipmentIDs)

	return &RentNowResult{
		Workspace:          ws,
		TotalPrice:         totalPrice,
		Record:             record,
		FailedEquipmentIDs: failed,
	}, nil
}

// RentTimeSlot books a bounded interval. The pure availability check runs
// before payment so an obviously conflicting request is never charged; the
// admission itself is a conditional insert, so of two racing overlapping
// requests the store admits exactly one.
func (r *rentalCommandsImpl) RentTimeSlot(
	ctx context.Context,
	workspaceID uuid.UUID,
	start, end time.Time,
	info payment.PaymentInfo,
	userID uuid.UUID,
) (*RentSlotResult, error) {
	slot, err := booking.NewTimeSlot(start, end, userID)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidTimeSlot)
	}

	ws, err := r.workspaceRepo.FindByID(ctx, workspaceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrWorkspaceNotFound)
		}
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}

	if !booking.IsSlotFree(ws.RentedSlots(), slot) {
		return nil, ErrSlotUnavailable
	}

	totalPrice := booking.SlotPrice(ws.BasePrice(), slot)

	authErr := r.authorize(ctx, totalPrice, info)

	record := payment.NewRecord(
		r.clock.Now(), totalPrice, userID, workspaceID, nil, nil, recordStatus(authErr))
	if err := r.appendLedger(ctx, record); err != nil {
		return nil, err
	}

	if authErr != nil {
		return nil, NewPaymentDeclinedError(record, authErr)
	}

	if err := r.workspaceRepo.AppendSlot(ctx, workspaceID, slot); err != nil {
		switch {
		case infra.IsKind(err, infra.KindConflict):
			// A concurrent admission won the race after we charged; the
			// ledger record remains for reconciliation.
			return nil, errs.Mark(err, ErrSlotUnavailable)
		case infra.IsKind(err, infra.KindNotFound):
			return nil, errs.Mark(err, ErrWorkspaceNotFound)
		default:
			return nil, errs.Mark(err, ErrStoreUnavailable)
		}
	}

	return &RentSlotResult{
		TotalPrice: totalPrice,
		Slot:       slot,
		Record:     record,
	}, nil
}

func (r *rentalCommandsImpl) Release(ctx context.Context, workspaceID uuid.UUID) (*workspace.Workspace, error) {
	ws, err := r.workspaceRepo.Release(ctx, workspaceID)
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return nil, errs.Mark(err, ErrWorkspaceNotFound)
		case infra.IsKind(err, infra.KindConflict):
			return nil, errs.Mark(err, ErrWorkspaceNotReserved)
		default:
			return nil, errs.Mark(err, ErrStoreUnavailable)
		}
	}

	return ws, nil
}

func (r *rentalCommandsImpl) authorize(ctx context.Context, amount float64, info payment.PaymentInfo) error {
	// A timed-out authorization counts as failed; the slot or workspace is
	// never admitted on an unconfirmed charge.
	ctx, cancel := context.WithTimeout(ctx, r.policy.PaymentTimeout)
	defer cancel()

	return r.gateway.Authorize(ctx, amount, info)
}

// appendLedger retries a bounded number of times: losing an audit record
// is worse than a slow response.
func (r *rentalCommandsImpl) appendLedger(ctx context.Context, record *payment.Record) error {
	var err error
	for attempt := 0; attempt < r.policy.LedgerRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return errs.Mark(ctx.Err(), ErrStoreUnavailable)
			case <-time.After(r.policy.LedgerBackoff):
			}
		}
		if err = r.ledger.Append(ctx, record); err == nil {
			return nil
		}
	}
	return errs.Mark(err, ErrStoreUnavailable)
}

// claimEquipment flips each item unavailable concurrently. Claims are
// independent: one failure does not roll back the others, it is only
// reported back to the caller.
func (r *rentalCommandsImpl) claimEquipment(ctx context.Context, equipmentIDs []uuid.UUID) []uuid.UUID {
	if len(equipmentIDs) == 0 {
		return nil
	}

	claimErrs := make([]error, len(equipmentIDs))
	var wg sync.WaitGroup
	for i, id := range equipmentIDs {
		wg.Add(1)
		go func(i int, id uuid.UUID) {
			defer wg.Done()
			claimErrs[i] = r.equipmentRepo.Claim(ctx, id)
		}(i, id)
	}
	wg.Wait()

	var failed []uuid.UUID
	for i, err := range claimErrs {
		if err != nil {
			failed = append(failed, equipmentIDs[i])
		}
	}
	return failed
}

func recordStatus(authErr error) payment.RecordStatus {
	if authErr != nil {
		return payment.StatusFailed
	}
	return payment.StatusSuccess
}
