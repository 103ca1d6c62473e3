package commands

import (
	"context"

	"ordermanagement/internal/core/domain/model/order"
)

// SweepPendingOrdersCommandHandler promotes every PENDING order to PROCESSING.
// The whole batch is read, advanced, and persisted within one transaction, so
// concurrent single-order operations either see the batch applied in full or not
// at all.
type SweepPendingOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewSweepPendingOrdersCommandHandler creates a handler for the pending-order sweep.
func NewSweepPendingOrdersCommandHandler(uowFactory OrderUoWFactory) SweepPendingOrdersCommandHandler {
	return SweepPendingOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle fetches all PENDING orders, moves each to PROCESSING, and persists the
// batch in a single call. A run that finds no pending orders is a no-op.
func (h *SweepPendingOrdersCommandHandler) Handle(ctx context.Context, cmd SweepPendingOrdersCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()

	pending, err := repo.GetAllInStatus(ctx, order.Pending)
	if err != nil {
		return err
	}

	if len(pending) == 0 {
		return uow.Commit(ctx)
	}

	for _, aggregate := range pending {
		if err = aggregate.OverrideStatus(order.Processing); err != nil {
			return err
		}
	}

	if err = repo.UpdateAll(ctx, pending); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
