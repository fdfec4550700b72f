package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"oficina_os/internal/adapter/http/handlers/mocks"
	"oficina_os/internal/domain/entities"
	"oficina_os/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func storedOrder() entities.ServiceOrder {
	return entities.ServiceOrder{
		ID:        1,
		Type:      entities.OrderTypeServico,
		ClientID:  10,
		VehicleID: 100,
		Items: []entities.OrderItem{
			{Description: "troca de oleo", Quantity: 2, UnitPrice: 50},
			{Description: "filtro", Quantity: 1, UnitPrice: 30},
		},
		DiscountAmount: 20,
		Status:         entities.OrderStatusAberta,
	}
}

func TestServiceOrderHandler_CreateOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	const createBody = `{"type":"servico","client_id":10,"vehicle_id":100,"items":[{"description":"troca de oleo","quantity":2,"unit_price":50},{"description":"filtro","quantity":1,"unit_price":30}],"discount_amount":20}`

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orders", h.CreateOrder)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing required fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orders", h.CreateOrder)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString(`{"type":"servico"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("validation error from the domain", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orders", h.CreateOrder)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.ServiceOrder{}, &entities.ValidationError{Field: "items", Reason: "quantity must be positive"})

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString(createBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orders", h.CreateOrder)

		uc.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(usecase.OrderDraft{})).DoAndReturn(
			func(_ context.Context, draft usecase.OrderDraft) (entities.ServiceOrder, error) {
				if draft.Type != entities.OrderTypeServico || draft.ClientID != 10 || len(draft.Items) != 2 {
					t.Fatalf("unexpected draft: %+v", draft)
				}
				return storedOrder(), nil
			},
		)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString(createBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["subtotal"] != float64(130) || body["total"] != float64(110) {
			t.Fatalf("unexpected totals in response: %s", w.Body.String())
		}
	})
}

func TestServiceOrderHandler_ListOrders(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("passes query params", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		r := gin.New()
		r.GET("/v1/orders", h.ListOrders)

		uc.EXPECT().List(gomock.Any(), gomock.AssignableToTypeOf(entities.ListQuery{})).DoAndReturn(
			func(_ context.Context, q entities.ListQuery) ([]entities.ServiceOrder, error) {
				if q.Text != "oleo" || q.Status != "aberta" {
					t.Fatalf("unexpected query: %+v", q)
				}
				return []entities.ServiceOrder{storedOrder()}, nil
			},
		)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders?q=oleo&status=aberta", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("remote error maps to 502", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		r := gin.New()
		r.GET("/v1/orders", h.ListOrders)

		uc.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, &usecase.RemoteError{Action: "list", Entity: "service_order", Err: errors.New("db")})

		req := httptest.NewRequest(http.MethodGet, "/v1/orders", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})
}

func TestServiceOrderHandler_GetOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("malformed id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		r := gin.New()
		r.GET("/v1/orders/:id", h.GetOrder)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/abc", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		r := gin.New()
		r.GET("/v1/orders/:id", h.GetOrder)

		uc.EXPECT().GetByID(gomock.Any(), int64(9)).Return(entities.ServiceOrder{}, usecase.ErrOrderNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/9", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		r := gin.New()
		r.GET("/v1/orders/:id", h.GetOrder)

		uc.EXPECT().GetByID(gomock.Any(), int64(1)).Return(storedOrder(), nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != float64(1) || body["status"] != "aberta" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestServiceOrderHandler_UpdateOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	const updateBody = `{"description":"cliente aprovou","items":[{"description":"freios","quantity":1,"unit_price":200}],"discount_amount":10}`

	t.Run("finalized order conflicts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		r := gin.New()
		r.PUT("/v1/orders/:id", h.UpdateOrder)

		uc.EXPECT().Update(gomock.Any(), int64(1), gomock.Any()).Return(entities.ServiceOrder{}, &entities.InvalidTransitionError{Entity: "service_order", From: "finalizada", To: "finalizada"})

		req := httptest.NewRequest(http.MethodPut, "/v1/orders/1", bytes.NewBufferString(updateBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		r := gin.New()
		r.PUT("/v1/orders/:id", h.UpdateOrder)

		uc.EXPECT().Update(gomock.Any(), int64(1), gomock.AssignableToTypeOf(usecase.OrderPatch{})).DoAndReturn(
			func(_ context.Context, _ int64, patch usecase.OrderPatch) (entities.ServiceOrder, error) {
				if patch.Description != "cliente aprovou" || len(patch.Items) != 1 || patch.DiscountAmount != 10 {
					t.Fatalf("unexpected patch: %+v", patch)
				}
				o := storedOrder()
				o.Description = patch.Description
				o.Items = patch.Items
				o.DiscountAmount = patch.DiscountAmount
				return o, nil
			},
		)

		req := httptest.NewRequest(http.MethodPut, "/v1/orders/1", bytes.NewBufferString(updateBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestServiceOrderHandler_StatusRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("finalize success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		r := gin.New()
		r.PATCH("/v1/orders/:id/finalize", h.FinalizeOrder)

		done := storedOrder()
		done.Status = entities.OrderStatusFinalizada
		uc.EXPECT().Finalize(gomock.Any(), int64(1)).Return(done, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/1/finalize", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("cancel from terminal state conflicts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		r := gin.New()
		r.PATCH("/v1/orders/:id/cancel", h.CancelOrder)

		uc.EXPECT().Cancel(gomock.Any(), int64(1)).Return(entities.ServiceOrder{}, &entities.InvalidTransitionError{Entity: "service_order", From: "finalizada", To: "cancelada"})

		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/1/cancel", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestServiceOrderHandler_DeleteOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		r := gin.New()
		r.DELETE("/v1/orders/:id", h.DeleteOrder)

		uc.EXPECT().Delete(gomock.Any(), int64(1)).Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/orders/1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("terminal order conflicts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		r := gin.New()
		r.DELETE("/v1/orders/:id", h.DeleteOrder)

		uc.EXPECT().Delete(gomock.Any(), int64(1)).Return(&entities.InvalidTransitionError{Entity: "service_order", From: "finalizada", To: "excluida"})

		req := httptest.NewRequest(http.MethodDelete, "/v1/orders/1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestMapServiceOrderError(t *testing.T) {
	if got := mapServiceOrderError(usecase.ErrInvalidOrderID); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapServiceOrderError(usecase.ErrOrderNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapServiceOrderError(&entities.ValidationError{Field: "items", Reason: "x"}); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapServiceOrderError(entities.ErrInvalidDiscount); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapServiceOrderError(&entities.InvalidTransitionError{Entity: "service_order", From: "finalizada", To: "cancelada"}); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapServiceOrderError(&usecase.RemoteError{Action: "get", Entity: "service_order", Err: errors.New("db")}); got.HTTPStatus != http.StatusBadGateway {
		t.Fatalf("expected 502")
	}
	if got := mapServiceOrderError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
