//go:build integration

package testutil

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/Gunvolt24/orderform/internal/domain"
)

func randHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func UniqSuffix() string { return randHex(6) }

// Мини-генератор валидной (и уже «чистой») формы заказа.
func MakeOrderForm(opts ...func(*domain.OrderForm)) domain.OrderForm {
	f := domain.OrderForm{
		Name:    "John Smith",
		Email:   "john-" + UniqSuffix() + "@example.com",
		Phone:   "+12025550142",
		Service: "Moving",
		Details: "2 sofas, 10 boxes, suffix " + UniqSuffix(),
	}

	for _, opt := range opts {
		opt(&f)
	}
	return f
}

func WithService(service string) func(*domain.OrderForm) {
	return func(f *domain.OrderForm) { f.Service = service }
}

func WithEmail(email string) func(*domain.OrderForm) {
	return func(f *domain.OrderForm) { f.Email = email }
}
