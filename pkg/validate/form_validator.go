package validate

import (
	"context"
	"errors"
	"regexp"

	"github.com/Gunvolt24/orderform/internal/domain"
	"github.com/Gunvolt24/orderform/internal/ports"
)

// Проверка, что FormValidator удовлетворяет интерфейсу FormValidator.
var _ ports.FormValidator = (*FormValidator)(nil)

// ErrInvalidForm — базовая (sentinel error) ошибка валидации формы.
var ErrInvalidForm = errors.New("order form validation failed")

// Тексты причин зафиксированы контрактом API: клиент получает их как есть.
const (
	ReasonFieldsRequired = "All fields are required."
	ReasonNameFormat     = "Name must contain only letters and spaces."
	ReasonEmailFormat    = "Invalid email format."
	ReasonPhoneFormat    = "Invalid phone number."
)

// FormError — ошибка валидации с причиной для клиента.
// Сопоставляется с ErrInvalidForm через errors.Is.
type FormError struct {
	Reason string
}

func (e *FormError) Error() string { return e.Reason }

func (e *FormError) Is(target error) bool { return target == ErrInvalidForm }

var (
	// Имя: только латинские буквы и пробельные символы.
	// Сознательно строго — "O'Brien" и "José" не проходят (см. DESIGN.md).
	nameRe = regexp.MustCompile(`^[A-Za-z\s]+$`)
	// Email: local@domain.tld без пробелов и лишних @.
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	// Телефон: после удаления дефисов/скобок/пробелов — опциональный '+' и 10–15 цифр.
	phoneStripRe = regexp.MustCompile(`[-()\s]`)
	phoneRe      = regexp.MustCompile(`^\+?[0-9]{10,15}$`)
)

// Rule — короткая метка нарушенного правила (для метрик).
func Rule(err error) string {
	var fe *FormError
	if !errors.As(err, &fe) {
		return "other"
	}
	switch fe.Reason {
	case ReasonFieldsRequired:
		return "required"
	case ReasonNameFormat:
		return "name"
	case ReasonEmailFormat:
		return "email"
	case ReasonPhoneFormat:
		return "phone"
	default:
		return "other"
	}
}

// FormValidator — валидация полей формы заказа.
type FormValidator struct{}

// NewFormValidator — конструктор FormValidator.
func NewFormValidator() *FormValidator { return &FormValidator{} }

// Validate — проверяет поля формы в фиксированном порядке и
// останавливается на первом нарушении: порядок причин — наблюдаемый
// контракт (клиент видит ровно первую нарушенную причину).
//  1. все пять полей непустые;
//  2. формат имени;
//  3. формат email;
//  4. формат телефона.
func (v *FormValidator) Validate(_ context.Context, form *domain.OrderForm) error {
	if form == nil {
		return &FormError{Reason: ReasonFieldsRequired}
	}
	if form.Name == "" || form.Email == "" || form.Phone == "" || form.Service == "" || form.Details == "" {
		return &FormError{Reason: ReasonFieldsRequired}
	}
	if !nameRe.MatchString(form.Name) {
		return &FormError{Reason: ReasonNameFormat}
	}
	if !emailRe.MatchString(form.Email) {
		return &FormError{Reason: ReasonEmailFormat}
	}
	if !phoneRe.MatchString(phoneStripRe.ReplaceAllString(form.Phone, "")) {
		return &FormError{Reason: ReasonPhoneFormat}
	}
	return nil
}
