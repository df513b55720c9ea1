package commands_test

import (
	"testing"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/services"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeleteOrderItemCommandHandler_Handle(t *testing.T) {
	lifecycle := services.NewOrderLifecycle()

	setup := func(t *testing.T, current *order.Order) (*MockOrderRepository, *MockUoW, *MockOrderUoWFactory) {
		t.Helper()
		orders := new(MockOrderRepository)
		orders.On("GetForUserForUpdate", mock.Anything, mustID(t, 7), mustID(t, 3)).Return(current, nil).Once()
		uow := new(MockUoW)
		uow.On("Begin", mock.Anything).Return(nil).Once()
		uow.On("OrderRepository").Return(orders).Once()
		uow.On("Rollback", mock.Anything).Return(nil).Once()
		factory := new(MockOrderUoWFactory)
		factory.On("Create").Return(uow).Once()
		return orders, uow, factory
	}

	t.Run("should remove a line", func(t *testing.T) {
		ctx := t.Context()
		cmd, _ := commands.NewDeleteOrderItemCommand(mustID(t, 7), mustID(t, 3), mustID(t, 11))
		line := restoredItem(t, 11, 3, 1, 2)
		orders, uow, factory := setup(t, restoredOrder(t, 3, 7, order.Active))
		orders.On("GetItem", ctx, cmd.ItemID()).Return(line, nil).Once()
		orders.On("DeleteItem", ctx, line).Return(nil).Once()
		uow.On("Commit", ctx).Return(nil).Once()

		h := commands.NewDeleteOrderItemCommandHandler(factory, lifecycle)
		removed, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Same(t, line, removed)
		orders.AssertExpectations(t)
		uow.AssertExpectations(t)
	})

	t.Run("should reject a completed order", func(t *testing.T) {
		ctx := t.Context()
		cmd, _ := commands.NewDeleteOrderItemCommand(mustID(t, 7), mustID(t, 3), mustID(t, 11))
		orders, _, factory := setup(t, restoredOrder(t, 3, 7, order.Complete))

		h := commands.NewDeleteOrderItemCommandHandler(factory, lifecycle)
		_, err := h.Handle(ctx, cmd)

		require.ErrorIs(t, err, order.ErrOrderAlreadyCompleted)
		orders.AssertNotCalled(t, "DeleteItem", mock.Anything, mock.Anything)
	})

	t.Run("should hide items of other orders", func(t *testing.T) {
		ctx := t.Context()
		cmd, _ := commands.NewDeleteOrderItemCommand(mustID(t, 7), mustID(t, 3), mustID(t, 11))
		orders, _, factory := setup(t, restoredOrder(t, 3, 7, order.Active))
		orders.On("GetItem", ctx, cmd.ItemID()).Return(restoredItem(t, 11, 9, 1, 2), nil).Once()

		h := commands.NewDeleteOrderItemCommandHandler(factory, lifecycle)
		_, err := h.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		orders.AssertNotCalled(t, "DeleteItem", mock.Anything, mock.Anything)
	})
}
