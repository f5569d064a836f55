package validate_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Gunvolt24/orderform/internal/domain"
	"github.com/Gunvolt24/orderform/pkg/validate"
)

func validForm() *domain.OrderForm {
	return &domain.OrderForm{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Phone:   "555-123-4567",
		Service: "Moving",
		Details: "3 boxes",
	}
}

func TestFormValidator_Validate(t *testing.T) {
	v := validate.NewFormValidator()
	ctx := context.Background()

	t.Run("valid form", func(t *testing.T) {
		if err := v.Validate(ctx, validForm()); err != nil {
			t.Fatalf("expected valid form, got: %v", err)
		}
	})

	type testCase struct {
		name     string
		makeForm func() *domain.OrderForm
		reason   string
	}

	cases := []testCase{
		{
			name:     "nil form",
			makeForm: func() *domain.OrderForm { return nil },
			reason:   validate.ReasonFieldsRequired,
		},
		{
			name: "empty name",
			makeForm: func() *domain.OrderForm {
				f := validForm()
				f.Name = ""
				return f
			},
			reason: validate.ReasonFieldsRequired,
		},
		{
			name: "empty email",
			makeForm: func() *domain.OrderForm {
				f := validForm()
				f.Email = ""
				return f
			},
			reason: validate.ReasonFieldsRequired,
		},
		{
			name: "empty phone",
			makeForm: func() *domain.OrderForm {
				f := validForm()
				f.Phone = ""
				return f
			},
			reason: validate.ReasonFieldsRequired,
		},
		{
			name: "empty service",
			makeForm: func() *domain.OrderForm {
				f := validForm()
				f.Service = ""
				return f
			},
			reason: validate.ReasonFieldsRequired,
		},
		{
			name: "empty details",
			makeForm: func() *domain.OrderForm {
				f := validForm()
				f.Details = ""
				return f
			},
			reason: validate.ReasonFieldsRequired,
		},
		{
			name: "name with digits",
			makeForm: func() *domain.OrderForm {
				f := validForm()
				f.Name = "Jane 2 Doe"
				return f
			},
			reason: validate.ReasonNameFormat,
		},
		{
			name: "name with punctuation",
			makeForm: func() *domain.OrderForm {
				f := validForm()
				f.Name = "O'Brien"
				return f
			},
			reason: validate.ReasonNameFormat,
		},
		{
			name: "name with non-ascii letter",
			makeForm: func() *domain.OrderForm {
				f := validForm()
				f.Name = "José"
				return f
			},
			reason: validate.ReasonNameFormat,
		},
		{
			// Порядок правил: имя проверяется раньше email.
			name: "bad name wins over bad email",
			makeForm: func() *domain.OrderForm {
				f := validForm()
				f.Name = "Jane99"
				f.Email = "not-an-email"
				return f
			},
			reason: validate.ReasonNameFormat,
		},
		{
			name: "email without at",
			makeForm: func() *domain.OrderForm {
				f := validForm()
				f.Email = "jane.example.com"
				return f
			},
			reason: validate.ReasonEmailFormat,
		},
		{
			name: "email without dot after at",
			makeForm: func() *domain.OrderForm {
				f := validForm()
				f.Email = "jane@example"
				return f
			},
			reason: validate.ReasonEmailFormat,
		},
		{
			name: "email with space",
			makeForm: func() *domain.OrderForm {
				f := validForm()
				f.Email = "jane doe@example.com"
				return f
			},
			reason: validate.ReasonEmailFormat,
		},
		{
			// Порядок правил: email проверяется раньше телефона.
			name: "bad email wins over bad phone",
			makeForm: func() *domain.OrderForm {
				f := validForm()
				f.Email = "not-an-email"
				f.Phone = "123"
				return f
			},
			reason: validate.ReasonEmailFormat,
		},
		{
			name: "phone too short",
			makeForm: func() *domain.OrderForm {
				f := validForm()
				f.Phone = "555-1234"
				return f
			},
			reason: validate.ReasonPhoneFormat,
		},
		{
			name: "phone too long",
			makeForm: func() *domain.OrderForm {
				f := validForm()
				f.Phone = "+1234567890123456"
				return f
			},
			reason: validate.ReasonPhoneFormat,
		},
		{
			name: "phone with letters",
			makeForm: func() *domain.OrderForm {
				f := validForm()
				f.Phone = "555-CALL-NOW1"
				return f
			},
			reason: validate.ReasonPhoneFormat,
		},
		{
			name: "phone with plus in the middle",
			makeForm: func() *domain.OrderForm {
				f := validForm()
				f.Phone = "5551+234567"
				return f
			},
			reason: validate.ReasonPhoneFormat,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := v.Validate(ctx, tc.makeForm())
			if err == nil {
				t.Fatalf("expected error %q, got nil", tc.reason)
			}
			if !errors.Is(err, validate.ErrInvalidForm) {
				t.Fatalf("error must match ErrInvalidForm, got: %v", err)
			}
			var formErr *validate.FormError
			if !errors.As(err, &formErr) {
				t.Fatalf("error must be *FormError, got: %T", err)
			}
			if formErr.Reason != tc.reason {
				t.Fatalf("reason: want %q, got %q", tc.reason, formErr.Reason)
			}
		})
	}
}

// Телефоны с дефисами, скобками и пробелами нормализуются перед проверкой.
func TestFormValidator_PhoneNormalization(t *testing.T) {
	v := validate.NewFormValidator()
	ctx := context.Background()

	accepted := []string{
		"(555) 123-4567",
		"555-123-4567",
		"+7 999 123 45 67",
		"+123456789012345",
		"5551234567",
	}
	for _, phone := range accepted {
		f := validForm()
		f.Phone = phone
		if err := v.Validate(ctx, f); err != nil {
			t.Fatalf("phone %q must be accepted, got: %v", phone, err)
		}
	}

	rejected := []string{
		"(555) 123-456",      // 9 цифр
		"555.123.4567",       // точки не вырезаются
		"++15551234567",      // двойной плюс
		"(555) 123-4567 x89", // добавочный номер
	}
	for _, phone := range rejected {
		f := validForm()
		f.Phone = phone
		if err := v.Validate(ctx, f); err == nil {
			t.Fatalf("phone %q must be rejected", phone)
		}
	}
}

func TestRule_Labels(t *testing.T) {
	t.Parallel()

	cases := []struct {
		err  error
		want string
	}{
		{&validate.FormError{Reason: validate.ReasonFieldsRequired}, "required"},
		{&validate.FormError{Reason: validate.ReasonNameFormat}, "name"},
		{&validate.FormError{Reason: validate.ReasonEmailFormat}, "email"},
		{&validate.FormError{Reason: validate.ReasonPhoneFormat}, "phone"},
		{&validate.FormError{Reason: "something new"}, "other"},
		{errors.New("not a form error"), "other"},
	}

	for _, tc := range cases {
		if got := validate.Rule(tc.err); got != tc.want {
			t.Fatalf("Rule(%v): got %q, want %q", tc.err, got, tc.want)
		}
	}
}
