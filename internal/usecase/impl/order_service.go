package impl

import (
	"context"
	"log/slog"

	"sabor/internal/domain/entity"
	domainerrors "sabor/internal/domain/errors"
	"sabor/internal/domain/repository"
	"sabor/internal/errors"
	"sabor/internal/usecase"

	"github.com/google/uuid"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	repo   repository.OrderRepository
	logger *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(repo repository.OrderRepository, logger *slog.Logger) usecase.OrderUsecase {
	return &orderService{repo: repo, logger: logger}
}

// History retrieves the user's orders, newest first.
func (srv *orderService) History(ctx context.Context) ([]*entity.Order, error) {
	orders, err := srv.repo.ListOrders(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "order history")
	}

	return orders, nil
}

// Track refetches one order with its status history.
func (srv *orderService) Track(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := srv.repo.FindOrderByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "track order")
	}

	return order, nil
}

// Cancel requests cancellation, gating locally on the last known status so an
// obviously final order never produces a doomed round trip.
func (srv *orderService) Cancel(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := srv.Track(ctx, id)
	if err != nil {
		return nil, err
	}

	if !order.Status.IsCancelable() {
		return nil, domainerrors.ErrOrderNotCancelable.WithDetails(order.Status.String())
	}

	canceled, err := srv.repo.CancelOrder(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "cancel order")
	}
	srv.logger.Info("order canceled", slog.String("order_number", canceled.OrderNumber))

	return canceled, nil
}

// RetryPayment re-runs the charge of an order still awaiting payment.
func (srv *orderService) RetryPayment(ctx context.Context, id uuid.UUID) (*entity.PaymentResult, error) {
	order, err := srv.Track(ctx, id)
	if err != nil {
		return nil, err
	}

	if order.Status != entity.OrderStatusAwaitingPayment {
		return nil, domainerrors.ErrOrderNotPayable.WithDetails(order.Status.String())
	}

	result, err := srv.repo.PayOrder(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "retry payment")
	}
	srv.logger.Info("payment retried",
		slog.String("order_number", order.OrderNumber),
		slog.String("status", result.Status))

	return result, nil
}
