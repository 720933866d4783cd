package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"oficina_prime/internal/domain/entities"
	mock_interfaces "oficina_prime/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestDebtUseCase_EnsureReceivable_Validations(t *testing.T) {
	t.Run("invalid vehicle id", func(t *testing.T) {
		uc := NewDebtUseCase(nil, nil, nil)
		_, err := uc.EnsureReceivable(context.Background(), "   ", 1000, 0)
		if !errors.Is(err, ErrInvalidVehicleID) {
			t.Fatalf("expected ErrInvalidVehicleID, got %v", err)
		}
	})

	t.Run("negative totals", func(t *testing.T) {
		uc := NewDebtUseCase(nil, nil, nil)
		_, err := uc.EnsureReceivable(context.Background(), "v-1", -1, 0)
		if !errors.Is(err, ErrInvalidDebtTotals) {
			t.Fatalf("expected ErrInvalidDebtTotals, got %v", err)
		}
	})
}

func TestDebtUseCase_EnsureReceivable(t *testing.T) {
	t.Run("creates receivable for outstanding balance", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIReceivableRepository(ctrl)
		uc := NewDebtUseCase(repo, nil, nil)

		// totalEstimate=5000 paid=3000 -> receivable of 2000
		repo.EXPECT().GetOpenByVehicleID(gomock.Any(), "v-1").Return(entities.Receivable{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Receivable{})).DoAndReturn(
			func(_ context.Context, r entities.Receivable) (entities.Receivable, error) {
				if r.ID == "" || r.VehicleID != "v-1" {
					t.Fatalf("unexpected receivable: %+v", r)
				}
				if r.Amount != 2000 || r.PaidAmount != 0 {
					t.Fatalf("expected amount 2000 paid 0, got %d/%d", r.Amount, r.PaidAmount)
				}
				if r.Status != entities.ReceivableStatusPending {
					t.Fatalf("expected pending, got %s", r.Status)
				}
				if len(r.PaymentHistory) != 0 {
					t.Fatalf("expected empty history, got %+v", r.PaymentHistory)
				}
				return r, nil
			},
		)

		res, err := uc.EnsureReceivable(context.Background(), "v-1", 5000, 3000)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Amount != 2000 {
			t.Fatalf("expected 2000, got %d", res.Amount)
		}
	})

	t.Run("second identical call is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIReceivableRepository(ctrl)
		uc := NewDebtUseCase(repo, nil, nil)

		open := entities.Receivable{ID: "r-1", VehicleID: "v-1", Amount: 2000, Status: entities.ReceivableStatusPending}
		repo.EXPECT().GetOpenByVehicleID(gomock.Any(), "v-1").Return(open, nil)
		// No Create, no Update: the open record already matches.

		res, err := uc.EnsureReceivable(context.Background(), "v-1", 5000, 3000)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != "r-1" || res.Amount != 2000 {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("partially paid open record stays current", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIReceivableRepository(ctrl)
		uc := NewDebtUseCase(repo, nil, nil)

		// 500 already collected: vehicle paid is 3500 and the open record
		// carries Amount 2000 / PaidAmount 500. Nothing to reconcile.
		open := entities.Receivable{ID: "r-1", VehicleID: "v-1", Amount: 2000, PaidAmount: 500, Status: entities.ReceivableStatusPartial}
		repo.EXPECT().GetOpenByVehicleID(gomock.Any(), "v-1").Return(open, nil)

		res, err := uc.EnsureReceivable(context.Background(), "v-1", 5000, 3500)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != "r-1" || res.Amount != 2000 {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("updates open receivable when totals move", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIReceivableRepository(ctrl)
		uc := NewDebtUseCase(repo, nil, nil)

		open := entities.Receivable{ID: "r-1", VehicleID: "v-1", Amount: 2000, PaidAmount: 500, Status: entities.ReceivableStatusPartial}
		repo.EXPECT().GetOpenByVehicleID(gomock.Any(), "v-1").Return(open, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Receivable{})).DoAndReturn(
			func(_ context.Context, r entities.Receivable) (entities.Receivable, error) {
				// outstanding 3000 + 500 already collected on the record
				if r.ID != "r-1" || r.Amount != 3500 {
					t.Fatalf("expected amount 3500 on r-1, got %+v", r)
				}
				if r.Status != entities.ReceivableStatusPartial {
					t.Fatalf("expected partial, got %s", r.Status)
				}
				return r, nil
			},
		)

		// A line was added after completion: total went 5000 -> 6500, and the
		// 500 collected so far is on the vehicle ledger too (paid 3500).
		if _, err := uc.EnsureReceivable(context.Background(), "v-1", 6500, 3500); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("settles open receivable when balance cleared", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIReceivableRepository(ctrl)
		uc := NewDebtUseCase(repo, nil, nil)

		open := entities.Receivable{ID: "r-1", VehicleID: "v-1", Amount: 2000, PaidAmount: 500, Status: entities.ReceivableStatusPartial}
		repo.EXPECT().GetOpenByVehicleID(gomock.Any(), "v-1").Return(open, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Receivable{})).DoAndReturn(
			func(_ context.Context, r entities.Receivable) (entities.Receivable, error) {
				if r.Status != entities.ReceivableStatusPaid || r.PaidAmount != r.Amount {
					t.Fatalf("expected settled receivable, got %+v", r)
				}
				return r, nil
			},
		)

		if _, err := uc.EnsureReceivable(context.Background(), "v-1", 5000, 5000); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("nothing owed and nothing open", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIReceivableRepository(ctrl)
		uc := NewDebtUseCase(repo, nil, nil)

		repo.EXPECT().GetOpenByVehicleID(gomock.Any(), "v-1").Return(entities.Receivable{}, nil)

		res, err := uc.EnsureReceivable(context.Background(), "v-1", 5000, 5000)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != "" {
			t.Fatalf("expected zero receivable, got %+v", res)
		}
	})

	t.Run("repo error surfaces", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIReceivableRepository(ctrl)
		uc := NewDebtUseCase(repo, nil, nil)

		repo.EXPECT().GetOpenByVehicleID(gomock.Any(), "v-1").Return(entities.Receivable{}, errors.New("db"))

		_, err := uc.EnsureReceivable(context.Background(), "v-1", 5000, 3000)
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestDebtUseCase_CollectPayment(t *testing.T) {
	t.Run("invalid amount", func(t *testing.T) {
		uc := NewDebtUseCase(nil, nil, nil)
		_, err := uc.CollectPayment(context.Background(), "v-1", 0, "cash", nil)
		if !errors.Is(err, ErrInvalidPaymentAmount) {
			t.Fatalf("expected ErrInvalidPaymentAmount, got %v", err)
		}
	})

	t.Run("no open receivable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIReceivableRepository(ctrl)
		uc := NewDebtUseCase(repo, nil, nil)

		repo.EXPECT().GetOpenByVehicleID(gomock.Any(), "v-1").Return(entities.Receivable{}, nil)

		_, err := uc.CollectPayment(context.Background(), "v-1", 500, "cash", nil)
		if !errors.Is(err, ErrReceivableNotFound) {
			t.Fatalf("expected ErrReceivableNotFound, got %v", err)
		}
	})

	t.Run("vehicle must exist", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIReceivableRepository(ctrl)
		vehicles := mock_interfaces.NewMockIVehicleRepository(ctrl)
		uc := NewDebtUseCase(repo, vehicles, nil)

		open := entities.Receivable{ID: "r-1", VehicleID: "v-1", Amount: 2000, Status: entities.ReceivableStatusPending}
		repo.EXPECT().GetOpenByVehicleID(gomock.Any(), "v-1").Return(open, nil)
		vehicles.EXPECT().GetByID(gomock.Any(), "v-1").Return(entities.Vehicle{}, nil)

		_, err := uc.CollectPayment(context.Background(), "v-1", 500, "cash", nil)
		if !errors.Is(err, ErrVehicleNotFound) {
			t.Fatalf("expected ErrVehicleNotFound, got %v", err)
		}
	})

	t.Run("cash payment lands on ledger and history", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIReceivableRepository(ctrl)
		vehicles := mock_interfaces.NewMockIVehicleRepository(ctrl)
		uc := NewDebtUseCase(repo, vehicles, nil)

		open := entities.Receivable{ID: "r-1", VehicleID: "v-1", Amount: 2000, Status: entities.ReceivableStatusPending}
		repo.EXPECT().GetOpenByVehicleID(gomock.Any(), "v-1").Return(open, nil)
		vehicles.EXPECT().GetByID(gomock.Any(), "v-1").Return(entities.Vehicle{ID: "v-1", TotalEstimate: 5000, PaidAmount: 3000}, nil)
		vehicles.EXPECT().UpdateTotals(gomock.Any(), "v-1", int64(5000), int64(3500)).Return(entities.Vehicle{ID: "v-1", TotalEstimate: 5000, PaidAmount: 3500}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Receivable{})).DoAndReturn(
			func(_ context.Context, r entities.Receivable) (entities.Receivable, error) {
				if r.PaidAmount != 500 || r.Status != entities.ReceivableStatusPartial {
					t.Fatalf("unexpected receivable: %+v", r)
				}
				if len(r.PaymentHistory) != 1 || r.PaymentHistory[0].Amount != 500 || r.PaymentHistory[0].Method != "cash" {
					t.Fatalf("unexpected history: %+v", r.PaymentHistory)
				}
				return r, nil
			},
		)

		if _, err := uc.CollectPayment(context.Background(), "v-1", 500, "cash", nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("final payment settles the receivable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIReceivableRepository(ctrl)
		vehicles := mock_interfaces.NewMockIVehicleRepository(ctrl)
		uc := NewDebtUseCase(repo, vehicles, nil)

		open := entities.Receivable{ID: "r-1", VehicleID: "v-1", Amount: 2000, PaidAmount: 1500, Status: entities.ReceivableStatusPartial}
		repo.EXPECT().GetOpenByVehicleID(gomock.Any(), "v-1").Return(open, nil)
		vehicles.EXPECT().GetByID(gomock.Any(), "v-1").Return(entities.Vehicle{ID: "v-1", TotalEstimate: 5000, PaidAmount: 4500}, nil)
		vehicles.EXPECT().UpdateTotals(gomock.Any(), "v-1", int64(5000), int64(5000)).Return(entities.Vehicle{ID: "v-1", TotalEstimate: 5000, PaidAmount: 5000}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Receivable{})).DoAndReturn(
			func(_ context.Context, r entities.Receivable) (entities.Receivable, error) {
				if r.Status != entities.ReceivableStatusPaid {
					t.Fatalf("expected paid, got %s", r.Status)
				}
				return r, nil
			},
		)

		if _, err := uc.CollectPayment(context.Background(), "v-1", 500, "pix", nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("settled balance is not billed again", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIReceivableRepository(ctrl)
		vehicles := mock_interfaces.NewMockIVehicleRepository(ctrl)
		uc := NewDebtUseCase(repo, vehicles, nil)

		// Client pays the receivable in full; the amount must reach the
		// vehicle ledger so a later reconciliation sees nothing outstanding.
		open := entities.Receivable{ID: "r-1", VehicleID: "v-1", Amount: 2000, Status: entities.ReceivableStatusPending}
		gomock.InOrder(
			repo.EXPECT().GetOpenByVehicleID(gomock.Any(), "v-1").Return(open, nil),
			vehicles.EXPECT().GetByID(gomock.Any(), "v-1").Return(entities.Vehicle{ID: "v-1", TotalEstimate: 5000, PaidAmount: 3000}, nil),
			vehicles.EXPECT().UpdateTotals(gomock.Any(), "v-1", int64(5000), int64(5000)).Return(entities.Vehicle{ID: "v-1", TotalEstimate: 5000, PaidAmount: 5000}, nil),
			repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Receivable{})).DoAndReturn(
				func(_ context.Context, r entities.Receivable) (entities.Receivable, error) {
					if r.Status != entities.ReceivableStatusPaid || r.PaidAmount != 2000 {
						t.Fatalf("expected settled receivable, got %+v", r)
					}
					return r, nil
				},
			),
			// Reconciliation with the post-payment totals finds nothing open
			// and nothing owed. No Create may fire.
			repo.EXPECT().GetOpenByVehicleID(gomock.Any(), "v-1").Return(entities.Receivable{}, nil),
		)

		if _, err := uc.CollectPayment(context.Background(), "v-1", 2000, "pix", nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		res, err := uc.EnsureReceivable(context.Background(), "v-1", 5000, 5000)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != "" {
			t.Fatalf("expected no new receivable, got %+v", res)
		}
	})

	t.Run("gateway charge must be approved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIReceivableRepository(ctrl)
		vehicles := mock_interfaces.NewMockIVehicleRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewDebtUseCase(repo, vehicles, gateway)

		open := entities.Receivable{ID: "r-1", VehicleID: "v-1", Amount: 2000, Status: entities.ReceivableStatusPending}
		repo.EXPECT().GetOpenByVehicleID(gomock.Any(), "v-1").Return(open, nil)
		vehicles.EXPECT().GetByID(gomock.Any(), "v-1").Return(entities.Vehicle{ID: "v-1", TotalEstimate: 5000, PaidAmount: 3000}, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("mp-1", "rejected", json.RawMessage(`{}`), nil)
		// No ledger write and no receivable update on rejection.

		_, err := uc.CollectPayment(context.Background(), "v-1", 500, "card", json.RawMessage(`{"payment_method_id":"master"}`))
		if !errors.Is(err, ErrPaymentGatewayRejected) {
			t.Fatalf("expected ErrPaymentGatewayRejected, got %v", err)
		}
	})

	t.Run("approved gateway charge is recorded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIReceivableRepository(ctrl)
		vehicles := mock_interfaces.NewMockIVehicleRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewDebtUseCase(repo, vehicles, gateway)

		open := entities.Receivable{ID: "r-1", VehicleID: "v-1", Amount: 2000, Status: entities.ReceivableStatusPending}
		repo.EXPECT().GetOpenByVehicleID(gomock.Any(), "v-1").Return(open, nil)
		vehicles.EXPECT().GetByID(gomock.Any(), "v-1").Return(entities.Vehicle{ID: "v-1", TotalEstimate: 5000, PaidAmount: 3000}, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("mp-1", "approved", json.RawMessage(`{}`), nil)
		vehicles.EXPECT().UpdateTotals(gomock.Any(), "v-1", int64(5000), int64(3500)).Return(entities.Vehicle{ID: "v-1", TotalEstimate: 5000, PaidAmount: 3500}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Receivable{})).DoAndReturn(
			func(_ context.Context, r entities.Receivable) (entities.Receivable, error) {
				if r.PaidAmount != 500 || len(r.PaymentHistory) != 1 {
					t.Fatalf("unexpected receivable: %+v", r)
				}
				return r, nil
			},
		)

		if _, err := uc.CollectPayment(context.Background(), "v-1", 500, "card", json.RawMessage(`{"payment_method_id":"master"}`)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestDebtUseCase_GetOpenByVehicleID(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIReceivableRepository(ctrl)
		uc := NewDebtUseCase(repo, nil, nil)

		repo.EXPECT().GetOpenByVehicleID(gomock.Any(), "v-1").Return(entities.Receivable{}, nil)

		_, err := uc.GetOpenByVehicleID(context.Background(), "v-1")
		if !errors.Is(err, ErrReceivableNotFound) {
			t.Fatalf("expected ErrReceivableNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIReceivableRepository(ctrl)
		uc := NewDebtUseCase(repo, nil, nil)

		repo.EXPECT().GetOpenByVehicleID(gomock.Any(), "v-1").Return(entities.Receivable{ID: "r-1"}, nil)

		res, err := uc.GetOpenByVehicleID(context.Background(), " v-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != "r-1" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}
