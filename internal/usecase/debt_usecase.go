package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"time"

	"oficina_prime/internal/domain/entities"
	"oficina_prime/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidVehicleID       = errors.New("invalid vehicle id")
	ErrInvalidDebtTotals      = errors.New("invalid debt totals")
	ErrInvalidPaymentAmount   = errors.New("invalid payment amount")
	ErrReceivableNotFound     = errors.New("no open receivable for vehicle")
	ErrPaymentGatewayRejected = errors.New("payment gateway rejected the charge")
)

// IDebtUseCase materializes and settles client receivables.
//
// EnsureReceivable keeps the at-most-one-open-receivable-per-vehicle
// invariant and is safe to call repeatedly with the same inputs: it creates
// only when no open record exists, updates the owed amount in place while the
// record stays open, and never appends payment history on its own.

type IDebtUseCase interface {
	EnsureReceivable(ctx context.Context, vehicleID string, totalAmount, paidAmount int64) (entities.Receivable, error)
	GetOpenByVehicleID(ctx context.Context, vehicleID string) (entities.Receivable, error)
	CollectPayment(ctx context.Context, vehicleID string, amount int64, method string, mpPayload json.RawMessage) (entities.Receivable, error)
}

type DebtUseCase struct {
	repo     interfaces.IReceivableRepository
	vehicles interfaces.IVehicleRepository
	gateway  interfaces.IPaymentGateway
}

var _ IDebtUseCase = (*DebtUseCase)(nil)

func NewDebtUseCase(repo interfaces.IReceivableRepository, vehicles interfaces.IVehicleRepository, gateway interfaces.IPaymentGateway) *DebtUseCase {
	return &DebtUseCase{repo: repo, vehicles: vehicles, gateway: gateway}
}

// EnsureReceivable reconciles the vehicle's open receivable with its current
// totals. remaining = totalAmount - paidAmount; a positive remaining must be
// represented by exactly one open receivable, a non-positive remaining
// settles whatever is open.
func (u *DebtUseCase) EnsureReceivable(ctx context.Context, vehicleID string, totalAmount, paidAmount int64) (entities.Receivable, error) {
	vehicleID = strings.TrimSpace(vehicleID)
	if vehicleID == "" {
		return entities.Receivable{}, ErrInvalidVehicleID
	}
	if totalAmount < 0 || paidAmount < 0 {
		return entities.Receivable{}, ErrInvalidDebtTotals
	}

	remaining := totalAmount - paidAmount
	log.Printf("[debt][usecase] ensure-receivable vehicle_id=%s total=%d paid=%d remaining=%d", vehicleID, totalAmount, paidAmount, remaining)

	open, err := u.repo.GetOpenByVehicleID(ctx, vehicleID)
	if err != nil {
		return entities.Receivable{}, err
	}

	if remaining <= 0 {
		if open.ID == "" {
			log.Printf("[debt][usecase] nothing owed and nothing open vehicle_id=%s", vehicleID)
			return entities.Receivable{}, nil
		}
		// Balance cleared at the ledger level: settle the open record.
		open.PaidAmount = open.Amount
		open.Status = entities.ReceivableStatusPaid
		open.UpdatedAt = time.Now().UTC()
		log.Printf("[debt][usecase] settling open receivable vehicle_id=%s receivable_id=%s", vehicleID, open.ID)
		return u.repo.Update(ctx, open)
	}

	if open.ID != "" {
		// Collected payments land on the vehicle ledger too, so the gross owed
		// by this record is the outstanding balance plus what it already took.
		target := remaining + open.PaidAmount
		if open.Amount == target {
			log.Printf("[debt][usecase] open receivable already current vehicle_id=%s receivable_id=%s amount=%d", vehicleID, open.ID, open.Amount)
			return open, nil
		}
		// Totals moved since materialization (line added, payment recorded).
		open.Amount = target
		open.Status = entities.DeriveReceivableStatus(open.PaidAmount, open.Amount)
		open.UpdatedAt = time.Now().UTC()
		log.Printf("[debt][usecase] updating open receivable vehicle_id=%s receivable_id=%s amount=%d status=%s", vehicleID, open.ID, open.Amount, open.Status)
		return u.repo.Update(ctx, open)
	}

	now := time.Now().UTC()
	r := entities.Receivable{
		ID:             uuid.NewString(),
		VehicleID:      vehicleID,
		Amount:         remaining,
		PaidAmount:     0,
		Status:         entities.ReceivableStatusPending,
		PaymentHistory: []entities.PaymentRecord{},
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	log.Printf("[debt][usecase] creating receivable vehicle_id=%s receivable_id=%s amount=%d", vehicleID, r.ID, r.Amount)
	return u.repo.Create(ctx, r)
}

func (u *DebtUseCase) GetOpenByVehicleID(ctx context.Context, vehicleID string) (entities.Receivable, error) {
	vehicleID = strings.TrimSpace(vehicleID)
	if vehicleID == "" {
		return entities.Receivable{}, ErrInvalidVehicleID
	}

	open, err := u.repo.GetOpenByVehicleID(ctx, vehicleID)
	if err != nil {
		return entities.Receivable{}, err
	}
	if open.ID == "" {
		return entities.Receivable{}, ErrReceivableNotFound
	}
	return open, nil
}

// CollectPayment charges a client payment against the vehicle's open
// receivable. When an mpPayload is supplied the charge runs through the
// payment gateway first; either way the payment lands on the vehicle ledger
// and in the receivable's append-only history, and the derived status is
// refreshed.
func (u *DebtUseCase) CollectPayment(ctx context.Context, vehicleID string, amount int64, method string, mpPayload json.RawMessage) (entities.Receivable, error) {
	vehicleID = strings.TrimSpace(vehicleID)
	if vehicleID == "" {
		return entities.Receivable{}, ErrInvalidVehicleID
	}
	if amount <= 0 {
		return entities.Receivable{}, ErrInvalidPaymentAmount
	}
	method = strings.TrimSpace(method)
	if method == "" {
		method = "cash"
	}

	open, err := u.repo.GetOpenByVehicleID(ctx, vehicleID)
	if err != nil {
		return entities.Receivable{}, err
	}
	if open.ID == "" {
		log.Printf("[debt][usecase] collect-payment no open receivable vehicle_id=%s", vehicleID)
		return entities.Receivable{}, ErrReceivableNotFound
	}

	v, err := u.vehicles.GetByID(ctx, vehicleID)
	if err != nil {
		return entities.Receivable{}, err
	}
	if v.ID == "" {
		return entities.Receivable{}, ErrVehicleNotFound
	}

	if len(mpPayload) > 0 {
		if u.gateway == nil {
			return entities.Receivable{}, errors.New("payment gateway not configured")
		}
		log.Printf("[debt][usecase] charging gateway vehicle_id=%s receivable_id=%s amount=%d", vehicleID, open.ID, amount)
		providerPaymentID, providerStatus, _, err := u.gateway.CreatePayment(ctx, mpPayload)
		if err != nil {
			log.Printf("[debt][usecase] gateway charge failed vehicle_id=%s err=%v", vehicleID, err)
			return entities.Receivable{}, err
		}
		if providerStatus != "approved" {
			log.Printf("[debt][usecase] gateway charge not approved vehicle_id=%s provider_payment_id=%s provider_status=%s", vehicleID, providerPaymentID, providerStatus)
			return entities.Receivable{}, ErrPaymentGatewayRejected
		}
		log.Printf("[debt][usecase] gateway charge approved vehicle_id=%s provider_payment_id=%s", vehicleID, providerPaymentID)
	}

	// Vehicle ledger first: if the receivable update below is lost, the next
	// EnsureReceivable pass settles or shrinks the open record instead of
	// resurrecting an already-collected balance.
	if _, err := u.vehicles.UpdateTotals(ctx, vehicleID, v.TotalEstimate, v.PaidAmount+amount); err != nil {
		return entities.Receivable{}, err
	}

	now := time.Now().UTC()
	open.PaidAmount += amount
	open.PaymentHistory = append(open.PaymentHistory, entities.PaymentRecord{Amount: amount, Date: now, Method: method})
	open.Status = entities.DeriveReceivableStatus(open.PaidAmount, open.Amount)
	open.UpdatedAt = now

	updated, err := u.repo.Update(ctx, open)
	if err != nil {
		return entities.Receivable{}, err
	}
	log.Printf("[debt][usecase] payment recorded vehicle_id=%s receivable_id=%s paid=%d/%d status=%s", vehicleID, updated.ID, updated.PaidAmount, updated.Amount, updated.Status)
	return updated, nil
}
