package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Gunvolt24/orderform/internal/domain"
	"github.com/Gunvolt24/orderform/internal/ports"
	"github.com/Gunvolt24/orderform/pkg/metrics"
	"github.com/Gunvolt24/orderform/pkg/sanitize"
	"github.com/Gunvolt24/orderform/pkg/validate"
)

// Проверка, что OrderIntake удовлетворяет интерфейсу ports.OrderIntake.
var _ ports.OrderIntake = (*OrderIntake)(nil)

// ErrSaveOrder — заявка прошла валидацию, но не записалась в хранилище.
var ErrSaveOrder = errors.New("failed to save order")

// Тексты ответов зафиксированы контрактом API: клиент получает их как есть.
const (
	MsgSubmitted           = "Order submitted successfully!"
	MsgSavedNoConfirmation = "Order saved, but failed to send customer confirmation."
)

// OrderIntake — прикладная логика приёма заявки (без знаний о транспорте).
type OrderIntake struct {
	repo      ports.OrderRepository // прямой доступ к хранилищу
	mailer    ports.Mailer          // прямой доступ к SMTP-отправителю
	validator ports.FormValidator   // прямой доступ к валидатору
	log       ports.Logger          // прямой доступ к логгеру

	adminTo              string // адрес для уведомлений о новых заявках
	customerConfirmation bool   // слать ли подтверждение клиенту
}

// NewOrderIntake — DI-конструктор.
func NewOrderIntake(
	repo ports.OrderRepository,
	mailer ports.Mailer,
	validator ports.FormValidator,
	log ports.Logger,
	adminTo string,
	customerConfirmation bool,
) *OrderIntake {
	return &OrderIntake{
		repo:                 repo,
		mailer:               mailer,
		validator:            validator,
		log:                  log,
		adminTo:              adminTo,
		customerConfirmation: customerConfirmation,
	}
}

// SubmitOrder — принять заявку с формы сайта.
// Шаги:
//  1. валидация сырых полей (вернёт validate.ErrInvalidForm при проблемах);
//  2. HTML-санитизация всех полей;
//  3. вставка в БД (append-only, без транзакции);
//  4. письмо администратору — best-effort, сбой не меняет ответ клиенту;
//  5. подтверждение клиенту (если включено) — сбой понижает сообщение,
//     но не превращает ответ в ошибку: заявка уже сохранена.
func (s *OrderIntake) SubmitOrder(ctx context.Context, form domain.OrderForm) (domain.SubmitReceipt, error) {
	if err := s.validator.Validate(ctx, &form); err != nil {
		s.log.Warnf(ctx, "validation failed email=%s err=%v", form.Email, err)
		metrics.OrdersRejected.WithLabelValues(validate.Rule(err)).Inc()
		return domain.SubmitReceipt{}, err
	}

	clean := sanitize.Clean(form)

	start := time.Now()
	stored, err := s.repo.Insert(ctx, clean)
	if err != nil {
		s.log.Errorf(ctx, "repo.Insert failed email=%s err=%v", clean.Email, err)
		metrics.OrdersSaveFailed.Inc()
		return domain.SubmitReceipt{}, fmt.Errorf("%w: %v", ErrSaveOrder, err)
	}
	metrics.OrdersSubmitted.Inc()
	s.log.Infof(ctx, "order saved id=%d took=%s", stored.ID, time.Since(start))

	s.notifyAdmin(ctx, stored)

	receipt := domain.SubmitReceipt{OrderID: stored.ID, Message: MsgSubmitted}
	if s.customerConfirmation && !s.confirmCustomer(ctx, stored) {
		receipt.Message = MsgSavedNoConfirmation
	}

	return receipt, nil
}

// notifyAdmin — письмо администратору о новой заявке. Ошибка только логируется.
func (s *OrderIntake) notifyAdmin(ctx context.Context, order domain.StoredOrder) {
	subject := fmt.Sprintf("New Order #%d: %s", order.ID, order.Service)
	body := fmt.Sprintf(
		"New order received.\n\nOrder ID: %d\nName: %s\nEmail: %s\nPhone: %s\nService: %s\nDetails: %s\nReceived: %s\n",
		order.ID, order.Name, order.Email, order.Phone, order.Service, order.Details,
		order.CreatedAt.UTC().Format(time.RFC3339),
	)

	if err := s.mailer.Send(ctx, s.adminTo, subject, body); err != nil {
		s.log.Errorf(ctx, "admin mail failed order_id=%d err=%v", order.ID, err)
		metrics.EmailsFailed.WithLabelValues("admin").Inc()
		return
	}
	metrics.EmailsSent.WithLabelValues("admin").Inc()
}

// confirmCustomer — подтверждение клиенту; false — письмо не ушло.
func (s *OrderIntake) confirmCustomer(ctx context.Context, order domain.StoredOrder) bool {
	subject := "We received your order"
	body := fmt.Sprintf(
		"Hello %s,\n\nThank you for your order! We received your request and will contact you shortly.\n\nService: %s\nDetails: %s\nPhone: %s\n",
		order.Name, order.Service, order.Details, order.Phone,
	)

	if err := s.mailer.Send(ctx, order.Email, subject, body); err != nil {
		s.log.Warnf(ctx, "customer mail failed order_id=%d email=%s err=%v", order.ID, order.Email, err)
		metrics.EmailsFailed.WithLabelValues("customer").Inc()
		return false
	}
	metrics.EmailsSent.WithLabelValues("customer").Inc()
	return true
}
