package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Gunvolt24/orderform/internal/domain"
	"github.com/Gunvolt24/orderform/internal/ports"
)

// Проверка, что OrderRepository удовлетворяет интерфейсу OrderRepository.
var _ ports.OrderRepository = (*OrderRepository)(nil)

// OrderRepository — реализация репозитория заявок на Postgres (pgxpool).
type OrderRepository struct {
	pool *pgxpool.Pool
}

// NewOrderRepository - конструктор OrderRepository.
func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository { return &OrderRepository{pool: pool} }

// Insert — вставляет санитизированную заявку одной строкой.
// id и created_at назначает БД (bigserial / default now()).
// Таблица append-only: обновлений и удалений в системе нет, поэтому
// транзакция не нужна — единственный INSERT атомарен сам по себе.
func (r *OrderRepository) Insert(ctx context.Context, form domain.OrderForm) (domain.StoredOrder, error) {
	stored := domain.StoredOrder{OrderForm: form}

	err := r.pool.QueryRow(ctx, `
		INSERT INTO orders (name, email, phone, service, details)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`, form.Name, form.Email, form.Phone, form.Service, form.Details,
	).Scan(&stored.ID, &stored.CreatedAt)
	if err != nil {
		return domain.StoredOrder{}, fmt.Errorf("insert order: %w", err)
	}

	return stored, nil
}
