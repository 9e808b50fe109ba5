package commands_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/shipment"
	"marketplace/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func restoreOrderForRecompute(t *testing.T, status order.Status) *order.Order {
	t.Helper()

	item, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 1)
	require.NoError(t, err)

	o, err := order.RestoreOrder(
		kernel.NewUUID(), kernel.NewUUID(), "ORD-2001", status, []order.Item{item})
	require.NoError(t, err)
	return o
}

func shipmentsWithStatuses(t *testing.T, orderID kernel.UUID, statuses ...shipment.Status) []*shipment.Shipment {
	t.Helper()

	result := make([]*shipment.Shipment, 0, len(statuses))
	for _, status := range statuses {
		item, err := shipment.NewItem(kernel.NewUUID(), 1)
		require.NoError(t, err)

		s, err := shipment.RestoreShipment(
			kernel.NewUUID(), orderID, kernel.NewUUID(),
			shipment.NewNumber(time.Now()), status, shipment.Details{},
			nil, nil, []shipment.Item{item}, time.Now().UTC())
		require.NoError(t, err)
		result = append(result, s)
	}
	return result
}

func TestRecomputeOrderStatusCommandHandler_Handle_StatusChanges(t *testing.T) {
	// Arrange
	ctx := t.Context()
	orderAggregate := restoreOrderForRecompute(t, order.StatusConfirmed)
	shipments := shipmentsWithStatuses(t, orderAggregate.ID(),
		shipment.StatusDelivered, shipment.StatusDelivered)

	cmd, err := commands.NewRecomputeOrderStatusCommand(orderAggregate.ID())
	require.NoError(t, err)

	mockOrderRepo := new(MockOrderRepository)
	mockShipmentRepo := new(MockShipmentRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockOrderUoWFactory)
	mockNotifier := new(MockOrderStatusNotifier)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("ShipmentRepository").Return(mockShipmentRepo).Once(),
		mockShipmentRepo.On("GetAllByOrder", ctx, orderAggregate.ID()).Return(shipments, nil).Once(),
		mockUoW.On("OrderRepository").Return(mockOrderRepo).Once(),
		mockOrderRepo.On("Get", ctx, orderAggregate.ID()).Return(orderAggregate, nil).Once(),
		mockUoW.On("OrderRepository").Return(mockOrderRepo).Once(),
		mockOrderRepo.On("Update", ctx, orderAggregate).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()
	mockNotifier.On("PublishOrderStatusChanged",
		ctx, orderAggregate.ID(), order.StatusDelivered, mock.AnythingOfType("time.Time")).
		Return(nil).Once()

	handler := commands.NewRecomputeOrderStatusCommandHandler(
		mockFactory, services.NewOrderStatusPolicy(), mockNotifier,
		slog.New(slog.DiscardHandler))

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, order.StatusDelivered, orderAggregate.Status())
	require.Len(t, orderAggregate.PendingTimeline(), 1)
	assert.Equal(t, order.StatusDelivered, orderAggregate.PendingTimeline()[0].Status())

	mockNotifier.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
}

func TestRecomputeOrderStatusCommandHandler_Handle_NoOpWhenStatusUnchanged(t *testing.T) {
	// Arrange
	ctx := t.Context()
	orderAggregate := restoreOrderForRecompute(t, order.StatusShipped)
	shipments := shipmentsWithStatuses(t, orderAggregate.ID(), shipment.StatusInTransit)

	cmd, err := commands.NewRecomputeOrderStatusCommand(orderAggregate.ID())
	require.NoError(t, err)

	mockOrderRepo := new(MockOrderRepository)
	mockShipmentRepo := new(MockShipmentRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockOrderUoWFactory)
	mockNotifier := new(MockOrderStatusNotifier)

	mockUoW.On("Begin", ctx).Return(nil).Once()
	mockUoW.On("ShipmentRepository").Return(mockShipmentRepo).Once()
	mockShipmentRepo.On("GetAllByOrder", ctx, orderAggregate.ID()).Return(shipments, nil).Once()
	mockUoW.On("OrderRepository").Return(mockOrderRepo).Once()
	mockOrderRepo.On("Get", ctx, orderAggregate.ID()).Return(orderAggregate, nil).Once()
	mockUoW.On("Rollback", ctx).Return(nil).Once()
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewRecomputeOrderStatusCommandHandler(
		mockFactory, services.NewOrderStatusPolicy(), mockNotifier,
		slog.New(slog.DiscardHandler))

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert: no update, no timeline entry, no publication
	require.NoError(t, err)
	assert.Empty(t, orderAggregate.PendingTimeline())
	mockOrderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	mockNotifier.AssertNotCalled(t, "PublishOrderStatusChanged",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRecomputeOrderStatusCommandHandler_Handle_NoRuleApplies(t *testing.T) {
	// Arrange
	ctx := t.Context()
	orderID := kernel.NewUUID()

	cmd, err := commands.NewRecomputeOrderStatusCommand(orderID)
	require.NoError(t, err)

	mockShipmentRepo := new(MockShipmentRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockOrderUoWFactory)
	mockNotifier := new(MockOrderStatusNotifier)

	mockUoW.On("Begin", ctx).Return(nil).Once()
	mockUoW.On("ShipmentRepository").Return(mockShipmentRepo).Once()
	mockShipmentRepo.On("GetAllByOrder", ctx, orderID).
		Return([]*shipment.Shipment{}, nil).Once()
	mockUoW.On("Rollback", ctx).Return(nil).Once()
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewRecomputeOrderStatusCommandHandler(
		mockFactory, services.NewOrderStatusPolicy(), mockNotifier,
		slog.New(slog.DiscardHandler))

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert: an order with no shipments keeps its checkout status
	require.NoError(t, err)
	mockNotifier.AssertNotCalled(t, "PublishOrderStatusChanged",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRecomputeOrderStatusCommandHandler_Handle_NotifierFailureDoesNotFail(t *testing.T) {
	// Arrange
	ctx := t.Context()
	orderAggregate := restoreOrderForRecompute(t, order.StatusConfirmed)
	shipments := shipmentsWithStatuses(t, orderAggregate.ID(), shipment.StatusProcessing)

	cmd, err := commands.NewRecomputeOrderStatusCommand(orderAggregate.ID())
	require.NoError(t, err)

	mockOrderRepo := new(MockOrderRepository)
	mockShipmentRepo := new(MockShipmentRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockOrderUoWFactory)
	mockNotifier := new(MockOrderStatusNotifier)

	mockUoW.On("Begin", ctx).Return(nil).Once()
	mockUoW.On("ShipmentRepository").Return(mockShipmentRepo).Once()
	mockShipmentRepo.On("GetAllByOrder", ctx, orderAggregate.ID()).Return(shipments, nil).Once()
	mockUoW.On("OrderRepository").Return(mockOrderRepo)
	mockOrderRepo.On("Get", ctx, orderAggregate.ID()).Return(orderAggregate, nil).Once()
	mockOrderRepo.On("Update", ctx, orderAggregate).Return(nil).Once()
	mockUoW.On("Commit", ctx).Return(nil).Once()
	mockUoW.On("Rollback", ctx).Return(nil).Once()
	mockFactory.On("Create").Return(mockUoW).Once()
	mockNotifier.On("PublishOrderStatusChanged",
		ctx, orderAggregate.ID(), order.StatusProcessing, mock.AnythingOfType("time.Time")).
		Return(errors.New("broker unavailable")).Once()

	handler := commands.NewRecomputeOrderStatusCommandHandler(
		mockFactory, services.NewOrderStatusPolicy(), mockNotifier,
		slog.New(slog.DiscardHandler))

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert: the committed status change stands, publication is best-effort
	require.NoError(t, err)
	assert.Equal(t, order.StatusProcessing, orderAggregate.Status())
	mockNotifier.AssertExpectations(t)
}
