package ports

import (
	"context"

	"github.com/Gunvolt24/orderform/internal/domain"
)

// OrderIntake — приём заявки: валидация → санитизация → запись → письма.
type OrderIntake interface {
	SubmitOrder(ctx context.Context, form domain.OrderForm) (domain.SubmitReceipt, error)
}
