//go:build integration

package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/Gunvolt24/orderform/internal/domain"
	pgrepo "github.com/Gunvolt24/orderform/internal/repo/postgres"
	"github.com/Gunvolt24/orderform/internal/testutil"
)

// 1) Вставка заявки: БД назначает id и created_at, поля сохраняются как есть.
func TestRepo_Insert_TC(t *testing.T) {
	t.Parallel()

	// длинный контекст — только на подъём контейнера
	ctxStart, cancelStart := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancelStart()

	pg, stopPG, err := testutil.StartPostgresTC(ctxStart)
	require.NoError(t, err)
	defer func() { _ = stopPG(context.Background()) }()

	// миграции
	require.NoError(t, pgrepo.ApplyMigrations(pg.DSN))

	// короткий контекст — на сами БД-операции
	ctxTest, cancelTest := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelTest()

	pool, err := pgxpool.New(ctxTest, pg.DSN)
	require.NoError(t, err)
	defer pool.Close()

	repo := pgrepo.NewOrderRepository(pool)

	form := testutil.MakeOrderForm()
	stored, err := repo.Insert(ctxTest, form)
	require.NoError(t, err)
	require.Positive(t, stored.ID)
	require.False(t, stored.CreatedAt.IsZero())
	require.Equal(t, form, stored.OrderForm)

	// строка действительно лежит в БД с теми же значениями
	var got domain.OrderForm
	var createdAt time.Time
	err = pool.QueryRow(ctxTest, `
		SELECT name, email, phone, service, details, created_at
		FROM orders WHERE id = $1
	`, stored.ID).Scan(&got.Name, &got.Email, &got.Phone, &got.Service, &got.Details, &createdAt)
	require.NoError(t, err)
	require.Equal(t, form, got)
	require.WithinDuration(t, stored.CreatedAt, createdAt, time.Millisecond)
}

// 2) Последовательные вставки получают монотонно растущие id.
func TestRepo_Insert_MonotonicIDs_TC(t *testing.T) {
	t.Parallel()

	ctxStart, cancelStart := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancelStart()

	pg, stopPG, err := testutil.StartPostgresTC(ctxStart)
	require.NoError(t, err)
	defer func() { _ = stopPG(context.Background()) }()
	require.NoError(t, pgrepo.ApplyMigrations(pg.DSN))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, pg.DSN)
	require.NoError(t, err)
	defer pool.Close()

	repo := pgrepo.NewOrderRepository(pool)

	first, err := repo.Insert(ctx, testutil.MakeOrderForm(testutil.WithService("Packing")))
	require.NoError(t, err)
	second, err := repo.Insert(ctx, testutil.MakeOrderForm(testutil.WithService("Storage")))
	require.NoError(t, err)

	require.Greater(t, second.ID, first.ID)
}

// 3) Повторный прогон миграций — no-op, ошибок нет.
func TestApplyMigrations_Idempotent_TC(t *testing.T) {
	t.Parallel()

	ctxStart, cancelStart := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancelStart()

	pg, stopPG, err := testutil.StartPostgresTC(ctxStart)
	require.NoError(t, err)
	defer func() { _ = stopPG(context.Background()) }()

	require.NoError(t, pgrepo.ApplyMigrations(pg.DSN))
	require.NoError(t, pgrepo.ApplyMigrations(pg.DSN))
}
