package jobs

import (
	"context"
	"errors"
	"testing"

	"oficina_prime/internal/domain/entities"
	mock_interfaces "oficina_prime/internal/usecase/interfaces/mocks"
	mock_usecase "oficina_prime/internal/usecase/mocks"

	"go.uber.org/mock/gomock"
)

func TestCompletionSweep_Run(t *testing.T) {
	t.Run("reevaluates every unfinished vehicle", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		vehicles := mock_interfaces.NewMockIVehicleRepository(ctrl)
		completion := mock_usecase.NewMockICompletionUseCase(ctrl)
		sweep := NewCompletionSweep(vehicles, completion, "")

		vehicles.EXPECT().ListUnfinished(gomock.Any()).Return([]entities.Vehicle{
			{ID: "v-1", Status: entities.VehicleStatusInProgress},
			{ID: "v-2", Status: entities.VehicleStatusPending},
		}, nil)
		completion.EXPECT().Reevaluate(gomock.Any(), "v-1").Return(true, nil)
		completion.EXPECT().Reevaluate(gomock.Any(), "v-2").Return(false, nil)

		sweep.Run(context.Background())
	})

	t.Run("completed vehicle with outstanding debt is reevaluated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		vehicles := mock_interfaces.NewMockIVehicleRepository(ctrl)
		completion := mock_usecase.NewMockICompletionUseCase(ctrl)
		sweep := NewCompletionSweep(vehicles, completion, "")

		// The listing includes completed vehicles whose ledger still shows a
		// balance, so a receivable lost to a crash heals on the next pass.
		vehicles.EXPECT().ListUnfinished(gomock.Any()).Return([]entities.Vehicle{
			{ID: "v-1", Status: entities.VehicleStatusCompleted, TotalEstimate: 5000, PaidAmount: 3000},
		}, nil)
		completion.EXPECT().Reevaluate(gomock.Any(), "v-1").Return(true, nil)

		sweep.Run(context.Background())
	})

	t.Run("one failing vehicle does not stop the pass", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		vehicles := mock_interfaces.NewMockIVehicleRepository(ctrl)
		completion := mock_usecase.NewMockICompletionUseCase(ctrl)
		sweep := NewCompletionSweep(vehicles, completion, "")

		vehicles.EXPECT().ListUnfinished(gomock.Any()).Return([]entities.Vehicle{
			{ID: "v-1"}, {ID: "v-2"},
		}, nil)
		completion.EXPECT().Reevaluate(gomock.Any(), "v-1").Return(false, errors.New("dynamo down"))
		completion.EXPECT().Reevaluate(gomock.Any(), "v-2").Return(false, nil)

		sweep.Run(context.Background())
	})

	t.Run("list failure aborts the pass", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		vehicles := mock_interfaces.NewMockIVehicleRepository(ctrl)
		completion := mock_usecase.NewMockICompletionUseCase(ctrl)
		sweep := NewCompletionSweep(vehicles, completion, "@every 1m")

		vehicles.EXPECT().ListUnfinished(gomock.Any()).Return(nil, errors.New("dynamo down"))

		sweep.Run(context.Background())
	})
}
