package ports

import (
	"context"

	"github.com/Gunvolt24/orderform/internal/domain"
)

// OrderRepository — хранилище заявок. Только вставка: система не читает,
// не обновляет и не удаляет сохранённые заказы.
type OrderRepository interface {
	// Insert — вставить санитизированную заявку; возвращает запись
	// с id и created_at, назначенными хранилищем.
	Insert(ctx context.Context, form domain.OrderForm) (domain.StoredOrder, error)
}
