package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"oficina_prime/internal/adapter/http/handlers/mocks"
	"oficina_prime/internal/domain/allocation"
	"oficina_prime/internal/domain/entities"
	"oficina_prime/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestTaskHandler_CreateTask(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITaskLifecycleUseCase(ctrl)
		h := NewTaskHandler(uc)

		r := gin.New()
		r.POST("/v1/vehicles/:vehicle_id/tasks", h.CreateTask)

		req := httptest.NewRequest(http.MethodPost, "/v1/vehicles/v-1/tasks", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing assignments", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITaskLifecycleUseCase(ctrl)
		h := NewTaskHandler(uc)

		r := gin.New()
		r.POST("/v1/vehicles/:vehicle_id/tasks", h.CreateTask)

		req := httptest.NewRequest(http.MethodPost, "/v1/vehicles/v-1/tasks", bytes.NewBufferString(`{"title":"troca de oleo","payment":1000}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("default percentage is forwarded as negative", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITaskLifecycleUseCase(ctrl)
		h := NewTaskHandler(uc)

		r := gin.New()
		r.POST("/v1/vehicles/:vehicle_id/tasks", h.CreateTask)

		uc.EXPECT().CreateTask(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, cmd usecase.CreateTaskCommand) (entities.Task, error) {
				if cmd.VehicleID != "v-1" {
					t.Fatalf("unexpected vehicle id %q", cmd.VehicleID)
				}
				if len(cmd.Assignments) != 2 {
					t.Fatalf("expected 2 assignments, got %d", len(cmd.Assignments))
				}
				if cmd.Assignments[0].Percentage != 50 {
					t.Fatalf("expected explicit percentage 50, got %d", cmd.Assignments[0].Percentage)
				}
				if cmd.Assignments[1].Percentage >= 0 {
					t.Fatalf("expected negative sentinel for default percentage, got %d", cmd.Assignments[1].Percentage)
				}
				return entities.Task{ID: "t-1", VehicleID: "v-1", Status: entities.TaskStatusAssigned}, nil
			})

		body := `{"title":"troca de oleo","payment":1000,"assignments":[{"participant_id":"p-a","percentage":50},{"participant_id":"p-b"}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/vehicles/v-1/tasks", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["task_id"] != "t-1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("usecase returns mapped error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITaskLifecycleUseCase(ctrl)
		h := NewTaskHandler(uc)

		r := gin.New()
		r.POST("/v1/vehicles/:vehicle_id/tasks", h.CreateTask)

		uc.EXPECT().CreateTask(gomock.Any(), gomock.Any()).Return(entities.Task{}, usecase.ErrVehicleNotFound)

		body := `{"title":"troca de oleo","assignments":[{"participant_id":"p-a","percentage":50}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/vehicles/v-9/tasks", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestTaskHandler_Transitions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("start success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITaskLifecycleUseCase(ctrl)
		h := NewTaskHandler(uc)

		r := gin.New()
		r.PATCH("/v1/tasks/:task_id/start", h.StartTask)

		uc.EXPECT().StartTask(gomock.Any(), "t-1").Return(entities.Task{ID: "t-1", Status: entities.TaskStatusInProgress}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/tasks/t-1/start", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("complete invalid transition", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITaskLifecycleUseCase(ctrl)
		h := NewTaskHandler(uc)

		r := gin.New()
		r.PATCH("/v1/tasks/:task_id/complete", h.CompleteTask)

		uc.EXPECT().CompleteTask(gomock.Any(), "t-1").Return(entities.Task{}, usecase.ErrInvalidTransition)

		req := httptest.NewRequest(http.MethodPatch, "/v1/tasks/t-1/complete", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("approve reports vehicle completion", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITaskLifecycleUseCase(ctrl)
		h := NewTaskHandler(uc)

		r := gin.New()
		r.PATCH("/v1/tasks/:task_id/approve", h.ApproveTask)

		now := time.Now().UTC()
		uc.EXPECT().ApproveTask(gomock.Any(), "t-1").Return(usecase.ApprovalResult{
			Task:             entities.Task{ID: "t-1", Status: entities.TaskStatusApproved, UpdatedAt: now},
			VehicleCompleted: true,
		}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/tasks/t-1/approve", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["vehicle_completed"] != true {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("reject requires reason", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITaskLifecycleUseCase(ctrl)
		h := NewTaskHandler(uc)

		r := gin.New()
		r.PATCH("/v1/tasks/:task_id/reject", h.RejectTask)

		req := httptest.NewRequest(http.MethodPatch, "/v1/tasks/t-1/reject", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("reject success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITaskLifecycleUseCase(ctrl)
		h := NewTaskHandler(uc)

		r := gin.New()
		r.PATCH("/v1/tasks/:task_id/reject", h.RejectTask)

		uc.EXPECT().RejectTask(gomock.Any(), "t-1", "peca errada").Return(entities.Task{ID: "t-1", Status: entities.TaskStatusRejected, RejectionReason: "peca errada"}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/tasks/t-1/reject", bytes.NewBufferString(`{"reason":"peca errada"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("resubmit not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITaskLifecycleUseCase(ctrl)
		h := NewTaskHandler(uc)

		r := gin.New()
		r.PATCH("/v1/tasks/:task_id/resubmit", h.ResubmitTask)

		uc.EXPECT().ResubmitTask(gomock.Any(), "t-9").Return(entities.Task{}, usecase.ErrTaskNotFound)

		req := httptest.NewRequest(http.MethodPatch, "/v1/tasks/t-9/resubmit", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("delete success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITaskLifecycleUseCase(ctrl)
		h := NewTaskHandler(uc)

		r := gin.New()
		r.DELETE("/v1/tasks/:task_id", h.DeleteTask)

		uc.EXPECT().DeleteTask(gomock.Any(), "t-1").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/tasks/t-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}

func TestTaskHandler_PreviewAllocation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITaskLifecycleUseCase(ctrl)
		h := NewTaskHandler(uc)

		r := gin.New()
		r.POST("/v1/allocations/preview", h.PreviewAllocation)

		uc.EXPECT().PreviewAllocation(gomock.Any(), int64(1000), gomock.Any()).Return(allocation.Result{
			Earnings: []allocation.Earning{
				{ParticipantID: "p-a", Amount: 250},
				{ParticipantID: "p-b", Amount: 250},
			},
			MasterRemainder: 500,
		}, nil)

		body := `{"payment":1000,"assignments":[{"participant_id":"p-a","percentage":50},{"participant_id":"p-b","percentage":50}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/allocations/preview", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["master_remainder"] != float64(500) {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("empty split is a bad request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITaskLifecycleUseCase(ctrl)
		h := NewTaskHandler(uc)

		r := gin.New()
		r.POST("/v1/allocations/preview", h.PreviewAllocation)

		uc.EXPECT().PreviewAllocation(gomock.Any(), int64(1000), gomock.Any()).Return(allocation.Result{}, allocation.ErrNoAssignments)

		body := `{"payment":1000,"assignments":[]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/allocations/preview", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestMapTaskError(t *testing.T) {
	if got := mapTaskError(usecase.ErrInvalidTaskTitle); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapTaskError(allocation.ErrInvalidPercentage); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapTaskError(usecase.ErrDuplicateParticipant); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapTaskError(usecase.ErrTaskNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapTaskError(usecase.ErrParticipantNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapTaskError(usecase.ErrInvalidTransition); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapTaskError(errors.New("boom")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
