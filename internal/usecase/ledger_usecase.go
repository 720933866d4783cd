package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"oficina_prime/internal/domain/entities"
	"oficina_prime/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidPlate          = errors.New("invalid vehicle plate")
	ErrInvalidLineID         = errors.New("invalid service line id")
	ErrInvalidLinePrice      = errors.New("invalid service line price")
	ErrInvalidLineName       = errors.New("invalid service line name")
	ErrServiceLineNotFound   = errors.New("service line not found")
	ErrLineNotCompletable    = errors.New("service line cannot be completed from its current status")
	ErrVehicleNotDeliverable = errors.New("vehicle must be completed and fully paid before delivery")
)

// VehicleRecord is the aggregate view of one vehicle: the record itself plus
// its tasks, service lines and any open receivable.
type VehicleRecord struct {
	Vehicle       entities.Vehicle
	PaymentStatus entities.PaymentStatus
	Tasks         []entities.Task
	ServiceLines  []entities.ServiceLine
	Receivable    *entities.Receivable
}

// ILedgerUseCase owns the vehicle service record: check-in, service-line
// totals, client payments received and their derived payment status, and
// final delivery. The record's total estimate is always the sum of its line
// prices; payment status is derived, never stored on its own.

type ILedgerUseCase interface {
	CheckInVehicle(ctx context.Context, plate, customerName string) (entities.Vehicle, error)
	GetVehicleRecord(ctx context.Context, vehicleID string) (VehicleRecord, error)
	AddServiceLine(ctx context.Context, vehicleID, name, description string, price int64) (entities.ServiceLine, error)
	StartServiceLine(ctx context.Context, lineID string) (entities.ServiceLine, error)
	CompleteServiceLine(ctx context.Context, lineID string) (entities.ServiceLine, error)
	RecordClientPayment(ctx context.Context, vehicleID string, amount int64) (entities.Vehicle, error)
	DeliverVehicle(ctx context.Context, vehicleID string) (entities.Vehicle, error)
}

type LedgerUseCase struct {
	vehicles   interfaces.IVehicleRepository
	lines      interfaces.IServiceLineRepository
	tasks      interfaces.ITaskRepository
	debts      IDebtUseCase
	completion ICompletionUseCase
}

var _ ILedgerUseCase = (*LedgerUseCase)(nil)

func NewLedgerUseCase(
	vehicles interfaces.IVehicleRepository,
	lines interfaces.IServiceLineRepository,
	tasks interfaces.ITaskRepository,
	debts IDebtUseCase,
	completion ICompletionUseCase,
) *LedgerUseCase {
	return &LedgerUseCase{vehicles: vehicles, lines: lines, tasks: tasks, debts: debts, completion: completion}
}

func (u *LedgerUseCase) CheckInVehicle(ctx context.Context, plate, customerName string) (entities.Vehicle, error) {
	plate = strings.TrimSpace(plate)
	if plate == "" {
		return entities.Vehicle{}, ErrInvalidPlate
	}

	now := time.Now().UTC()
	v := entities.Vehicle{
		ID:           uuid.NewString(),
		Plate:        plate,
		CustomerName: strings.TrimSpace(customerName),
		Status:       entities.VehicleStatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	created, err := u.vehicles.Create(ctx, v)
	if err != nil {
		return entities.Vehicle{}, err
	}
	log.Printf("[ledger][usecase] vehicle checked in vehicle_id=%s plate=%s", created.ID, created.Plate)
	return created, nil
}

func (u *LedgerUseCase) GetVehicleRecord(ctx context.Context, vehicleID string) (VehicleRecord, error) {
	vehicleID = strings.TrimSpace(vehicleID)
	if vehicleID == "" {
		return VehicleRecord{}, ErrInvalidVehicleID
	}

	v, err := u.vehicles.GetByID(ctx, vehicleID)
	if err != nil {
		return VehicleRecord{}, err
	}
	if v.ID == "" {
		return VehicleRecord{}, ErrVehicleNotFound
	}

	tasks, err := u.tasks.ListByVehicleID(ctx, vehicleID)
	if err != nil {
		return VehicleRecord{}, err
	}
	lines, err := u.lines.ListByVehicleID(ctx, vehicleID)
	if err != nil {
		return VehicleRecord{}, err
	}

	rec := VehicleRecord{
		Vehicle:       v,
		PaymentStatus: v.PaymentStatus(),
		Tasks:         tasks,
		ServiceLines:  lines,
	}
	open, err := u.debts.GetOpenByVehicleID(ctx, vehicleID)
	if err != nil && !errors.Is(err, ErrReceivableNotFound) {
		return VehicleRecord{}, err
	}
	if open.ID != "" {
		rec.Receivable = &open
	}
	return rec, nil
}

func (u *LedgerUseCase) AddServiceLine(ctx context.Context, vehicleID, name, description string, price int64) (entities.ServiceLine, error) {
	vehicleID = strings.TrimSpace(vehicleID)
	if vehicleID == "" {
		return entities.ServiceLine{}, ErrInvalidVehicleID
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.ServiceLine{}, ErrInvalidLineName
	}
	if price <= 0 {
		return entities.ServiceLine{}, ErrInvalidLinePrice
	}

	v, err := u.vehicles.GetByID(ctx, vehicleID)
	if err != nil {
		return entities.ServiceLine{}, err
	}
	if v.ID == "" {
		return entities.ServiceLine{}, ErrVehicleNotFound
	}

	now := time.Now().UTC()
	l := entities.ServiceLine{
		ID:          uuid.NewString(),
		VehicleID:   vehicleID,
		Name:        name,
		Description: strings.TrimSpace(description),
		Price:       price,
		Status:      entities.ServiceLineStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	created, err := u.lines.Create(ctx, l)
	if err != nil {
		return entities.ServiceLine{}, err
	}
	log.Printf("[ledger][usecase] service line added vehicle_id=%s line_id=%s price=%d", vehicleID, created.ID, created.Price)

	if v.Status == entities.VehicleStatusPending {
		if _, err := u.vehicles.MarkInProgress(ctx, vehicleID); err != nil {
			log.Printf("[ledger][usecase] failed promoting vehicle to in_progress vehicle_id=%s err=%v", vehicleID, err)
		}
	}

	if _, err := u.recomputeTotals(ctx, v); err != nil {
		return entities.ServiceLine{}, err
	}
	return created, nil
}

// recomputeTotals refreshes the vehicle's total estimate from its lines and
// reconciles any open receivable with the new balance.
func (u *LedgerUseCase) recomputeTotals(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error) {
	lines, err := u.lines.ListByVehicleID(ctx, v.ID)
	if err != nil {
		return entities.Vehicle{}, err
	}
	var total int64
	for _, l := range lines {
		total += l.Price
	}

	updated, err := u.vehicles.UpdateTotals(ctx, v.ID, total, v.PaidAmount)
	if err != nil {
		return entities.Vehicle{}, err
	}
	log.Printf("[ledger][usecase] totals recomputed vehicle_id=%s total=%d paid=%d status=%s", updated.ID, updated.TotalEstimate, updated.PaidAmount, updated.PaymentStatus())

	if updated.Status == entities.VehicleStatusCompleted || updated.Status == entities.VehicleStatusDelivered {
		if _, err := u.debts.EnsureReceivable(ctx, updated.ID, updated.TotalEstimate, updated.PaidAmount); err != nil {
			log.Printf("[ledger][usecase] receivable reconciliation failed vehicle_id=%s err=%v", updated.ID, err)
		}
	}
	return updated, nil
}

func (u *LedgerUseCase) StartServiceLine(ctx context.Context, lineID string) (entities.ServiceLine, error) {
	lineID = strings.TrimSpace(lineID)
	if lineID == "" {
		return entities.ServiceLine{}, ErrInvalidLineID
	}

	l, err := u.lines.TransitionStatus(ctx, lineID, entities.ServiceLineStatusPending, entities.ServiceLineStatusInProgress)
	if err != nil {
		return entities.ServiceLine{}, err
	}
	if l.ID == "" {
		return entities.ServiceLine{}, u.lineTransitionFailure(ctx, lineID)
	}
	return l, nil
}

// CompleteServiceLine marks the line done and triggers the vehicle-wide
// completion check, since a line can be the last unresolved item.
func (u *LedgerUseCase) CompleteServiceLine(ctx context.Context, lineID string) (entities.ServiceLine, error) {
	lineID = strings.TrimSpace(lineID)
	if lineID == "" {
		return entities.ServiceLine{}, ErrInvalidLineID
	}

	l, err := u.lines.TransitionStatus(ctx, lineID, entities.ServiceLineStatusInProgress, entities.ServiceLineStatusCompleted)
	if err != nil {
		return entities.ServiceLine{}, err
	}
	if l.ID == "" {
		// Lines are allowed to complete straight from pending.
		l, err = u.lines.TransitionStatus(ctx, lineID, entities.ServiceLineStatusPending, entities.ServiceLineStatusCompleted)
		if err != nil {
			return entities.ServiceLine{}, err
		}
		if l.ID == "" {
			return entities.ServiceLine{}, u.lineTransitionFailure(ctx, lineID)
		}
	}
	log.Printf("[ledger][usecase] service line completed vehicle_id=%s line_id=%s", l.VehicleID, l.ID)

	if _, err := u.completion.Reevaluate(ctx, l.VehicleID); err != nil {
		log.Printf("[ledger][usecase] completion re-check failed vehicle_id=%s err=%v", l.VehicleID, err)
	}
	return l, nil
}

func (u *LedgerUseCase) lineTransitionFailure(ctx context.Context, lineID string) error {
	l, err := u.lines.GetByID(ctx, lineID)
	if err != nil {
		return err
	}
	if l.ID == "" {
		return ErrServiceLineNotFound
	}
	return ErrLineNotCompletable
}

// RecordClientPayment books a payment received from the client against the
// vehicle record and reconciles any open receivable with the new balance.
func (u *LedgerUseCase) RecordClientPayment(ctx context.Context, vehicleID string, amount int64) (entities.Vehicle, error) {
	vehicleID = strings.TrimSpace(vehicleID)
	if vehicleID == "" {
		return entities.Vehicle{}, ErrInvalidVehicleID
	}
	if amount <= 0 {
		return entities.Vehicle{}, ErrInvalidPaymentAmount
	}

	v, err := u.vehicles.GetByID(ctx, vehicleID)
	if err != nil {
		return entities.Vehicle{}, err
	}
	if v.ID == "" {
		return entities.Vehicle{}, ErrVehicleNotFound
	}

	updated, err := u.vehicles.UpdateTotals(ctx, vehicleID, v.TotalEstimate, v.PaidAmount+amount)
	if err != nil {
		return entities.Vehicle{}, err
	}
	log.Printf("[ledger][usecase] client payment recorded vehicle_id=%s amount=%d paid=%d/%d status=%s", vehicleID, amount, updated.PaidAmount, updated.TotalEstimate, updated.PaymentStatus())

	if updated.Status == entities.VehicleStatusCompleted || updated.Status == entities.VehicleStatusDelivered {
		if _, err := u.debts.EnsureReceivable(ctx, vehicleID, updated.TotalEstimate, updated.PaidAmount); err != nil {
			log.Printf("[ledger][usecase] receivable reconciliation failed vehicle_id=%s err=%v", vehicleID, err)
		}
	}
	return updated, nil
}

// DeliverVehicle hands the vehicle back to the client. Only a completed,
// fully paid record can be delivered.
func (u *LedgerUseCase) DeliverVehicle(ctx context.Context, vehicleID string) (entities.Vehicle, error) {
	vehicleID = strings.TrimSpace(vehicleID)
	if vehicleID == "" {
		return entities.Vehicle{}, ErrInvalidVehicleID
	}

	v, err := u.vehicles.GetByID(ctx, vehicleID)
	if err != nil {
		return entities.Vehicle{}, err
	}
	if v.ID == "" {
		return entities.Vehicle{}, ErrVehicleNotFound
	}
	if v.Status != entities.VehicleStatusCompleted || v.PaymentStatus() != entities.PaymentStatusPaid {
		return entities.Vehicle{}, ErrVehicleNotDeliverable
	}

	delivered, err := u.vehicles.MarkDelivered(ctx, vehicleID)
	if err != nil {
		return entities.Vehicle{}, err
	}
	if delivered.ID == "" {
		return entities.Vehicle{}, ErrVehicleNotDeliverable
	}
	log.Printf("[ledger][usecase] vehicle delivered vehicle_id=%s", vehicleID)
	return delivered, nil
}
