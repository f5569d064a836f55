package ports

import (
	"context"

	"github.com/Gunvolt24/orderform/internal/domain"
)

// FormValidator — валидация формы заказа.
// Возвращает первую нарушенную причину (порядок правил фиксирован).
type FormValidator interface {
	Validate(ctx context.Context, form *domain.OrderForm) error
}
