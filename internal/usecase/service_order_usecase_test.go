package usecase

import (
	"context"
	"errors"
	"testing"

	"oficina_os/internal/domain/entities"
	mock_interfaces "oficina_os/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func validOrderDraft() OrderDraft {
	return OrderDraft{
		Type:      entities.OrderTypeServico,
		ClientID:  10,
		VehicleID: 100,
		Items: []entities.OrderItem{
			{Description: "troca de oleo", Quantity: 2, UnitPrice: 50},
			{Description: "filtro", Quantity: 1, UnitPrice: 30},
		},
		DiscountAmount: 20,
	}
}

func TestServiceOrderUseCase_Create(t *testing.T) {
	t.Run("invalid draft", func(t *testing.T) {
		uc := NewServiceOrderUseCase(nil)
		draft := validOrderDraft()
		draft.ClientID = 0

		_, err := uc.Create(context.Background(), draft)
		var ve *entities.ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		uc := NewServiceOrderUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.ServiceOrder{}, errors.New("db"))

		_, err := uc.Create(context.Background(), validOrderDraft())
		var re *RemoteError
		if !errors.As(err, &re) {
			t.Fatalf("expected RemoteError, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		uc := NewServiceOrderUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.ServiceOrder{})).DoAndReturn(
			func(_ context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
				if o.Status != entities.OrderStatusAberta {
					t.Fatalf("expected status aberta, got %s", o.Status)
				}
				if o.ID != 0 {
					t.Fatalf("id must be assigned by the repo, got %d", o.ID)
				}
				if len(o.Items) != 2 || o.DiscountAmount != 20 {
					t.Fatalf("unexpected order: %+v", o)
				}
				o.ID = 1
				return o, nil
			},
		)

		created, err := uc.Create(context.Background(), validOrderDraft())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID != 1 {
			t.Fatalf("expected assigned id, got %d", created.ID)
		}
	})
}

func TestServiceOrderUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewServiceOrderUseCase(nil)
		_, err := uc.GetByID(context.Background(), 0)
		if !errors.Is(err, ErrInvalidOrderID) {
			t.Fatalf("expected ErrInvalidOrderID, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		uc := NewServiceOrderUseCase(repo)
		repo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(entities.ServiceOrder{}, errors.New("db"))

		_, err := uc.GetByID(context.Background(), 1)
		var re *RemoteError
		if !errors.As(err, &re) {
			t.Fatalf("expected RemoteError, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		uc := NewServiceOrderUseCase(repo)
		repo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(entities.ServiceOrder{}, nil)

		_, err := uc.GetByID(context.Background(), 1)
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		uc := NewServiceOrderUseCase(repo)
		repo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(entities.ServiceOrder{ID: 1}, nil)

		res, err := uc.GetByID(context.Background(), 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != 1 {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestServiceOrderUseCase_List(t *testing.T) {
	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		uc := NewServiceOrderUseCase(repo)
		repo.EXPECT().List(gomock.Any()).Return(nil, errors.New("db"))

		_, err := uc.List(context.Background(), entities.ListQuery{})
		var re *RemoteError
		if !errors.As(err, &re) {
			t.Fatalf("expected RemoteError, got %v", err)
		}
	})

	t.Run("applies the query", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		uc := NewServiceOrderUseCase(repo)
		repo.EXPECT().List(gomock.Any()).Return([]entities.ServiceOrder{
			{ID: 1, Status: entities.OrderStatusAberta},
			{ID: 2, Status: entities.OrderStatusFinalizada},
		}, nil)

		res, err := uc.List(context.Background(), entities.ListQuery{Status: string(entities.OrderStatusAberta)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != 1 || res[0].ID != 1 {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestServiceOrderUseCase_Update(t *testing.T) {
	stored := func(status entities.OrderStatus) entities.ServiceOrder {
		return entities.ServiceOrder{
			ID:        1,
			Type:      entities.OrderTypeServico,
			ClientID:  10,
			VehicleID: 100,
			Items:     []entities.OrderItem{{Description: "troca de oleo", Quantity: 1, UnitPrice: 50}},
			Status:    status,
		}
	}

	patch := OrderPatch{
		Description:    "cliente aprovou",
		Items:          []entities.OrderItem{{Description: "freios", Quantity: 1, UnitPrice: 200}},
		DiscountAmount: 10,
	}

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		uc := NewServiceOrderUseCase(repo)
		repo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(entities.ServiceOrder{}, nil)

		_, err := uc.Update(context.Background(), 1, patch)
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("finalized order is immutable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		uc := NewServiceOrderUseCase(repo)
		repo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(stored(entities.OrderStatusFinalizada), nil)

		_, err := uc.Update(context.Background(), 1, patch)
		var ite *entities.InvalidTransitionError
		if !errors.As(err, &ite) {
			t.Fatalf("expected InvalidTransitionError, got %v", err)
		}
	})

	t.Run("invalid patch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		uc := NewServiceOrderUseCase(repo)
		repo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(stored(entities.OrderStatusAberta), nil)

		bad := patch
		bad.Items = nil
		_, err := uc.Update(context.Background(), 1, bad)
		var ve *entities.ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		uc := NewServiceOrderUseCase(repo)
		repo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(stored(entities.OrderStatusAberta), nil)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.ServiceOrder{})).DoAndReturn(
			func(_ context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
				if o.ID != 1 || o.Description != "cliente aprovou" || o.DiscountAmount != 10 {
					t.Fatalf("unexpected order: %+v", o)
				}
				if o.Status != entities.OrderStatusAberta {
					t.Fatalf("update must not change status, got %s", o.Status)
				}
				return o, nil
			},
		)

		res, err := uc.Update(context.Background(), 1, patch)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.Items) != 1 || res.Items[0].UnitPrice != 200 {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestServiceOrderUseCase_TransitionFlows(t *testing.T) {
	cases := []struct {
		name   string
		call   func(uc *ServiceOrderUseCase, ctx context.Context, id int64) (entities.ServiceOrder, error)
		status entities.OrderStatus
	}{
		{name: "finalize", call: (*ServiceOrderUseCase).Finalize, status: entities.OrderStatusFinalizada},
		{name: "cancel", call: (*ServiceOrderUseCase).Cancel, status: entities.OrderStatusCancelada},
	}

	for _, tc := range cases {
		t.Run(tc.name+" invalid id", func(t *testing.T) {
			uc := NewServiceOrderUseCase(nil)
			_, err := tc.call(uc, context.Background(), 0)
			if !errors.Is(err, ErrInvalidOrderID) {
				t.Fatalf("expected ErrInvalidOrderID, got %v", err)
			}
		})

		t.Run(tc.name+" from terminal state", func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
			uc := NewServiceOrderUseCase(repo)
			repo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(entities.ServiceOrder{ID: 1, Status: entities.OrderStatusCancelada}, nil)

			_, err := tc.call(uc, context.Background(), 1)
			var ite *entities.InvalidTransitionError
			if !errors.As(err, &ite) {
				t.Fatalf("expected InvalidTransitionError, got %v", err)
			}
		})

		t.Run(tc.name+" success", func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
			uc := NewServiceOrderUseCase(repo)
			repo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(entities.ServiceOrder{ID: 1, Status: entities.OrderStatusAberta}, nil)
			repo.EXPECT().UpdateStatus(gomock.Any(), int64(1), tc.status).Return(entities.ServiceOrder{ID: 1, Status: tc.status}, nil)

			res, err := tc.call(uc, context.Background(), 1)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Status != tc.status {
				t.Fatalf("expected %s, got %s", tc.status, res.Status)
			}
		})
	}
}

func TestServiceOrderUseCase_Delete(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		uc := NewServiceOrderUseCase(repo)
		repo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(entities.ServiceOrder{}, nil)

		err := uc.Delete(context.Background(), 1)
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("terminal order cannot be deleted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		uc := NewServiceOrderUseCase(repo)
		repo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(entities.ServiceOrder{ID: 1, Status: entities.OrderStatusFinalizada}, nil)

		err := uc.Delete(context.Background(), 1)
		var ite *entities.InvalidTransitionError
		if !errors.As(err, &ite) {
			t.Fatalf("expected InvalidTransitionError, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		uc := NewServiceOrderUseCase(repo)
		repo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(entities.ServiceOrder{ID: 1, Status: entities.OrderStatusAberta}, nil)
		repo.EXPECT().Delete(gomock.Any(), int64(1)).Return(nil)

		if err := uc.Delete(context.Background(), 1); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
