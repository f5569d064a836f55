// Пакет sanitize — HTML-санитизация полей формы.
// Очищенный текст безопасен для хранения, отображения и подстановки
// в plain-text письма как есть.
package sanitize

import (
	"github.com/microcosm-cc/bluemonday"

	"github.com/Gunvolt24/orderform/internal/domain"
)

// StrictPolicy не разрешает ни одного тега: вся разметка вырезается,
// спецсимволы экранируются. Политика потокобезопасна после создания.
var policy = bluemonday.StrictPolicy()

// Field — очистка одного поля. Никогда не падает; худший случай —
// пустая строка.
func Field(s string) string {
	return policy.Sanitize(s)
}

// Clean — санитизированная копия формы: каждое поле очищается независимо.
// Только такая копия попадает в БД и в письма.
func Clean(form domain.OrderForm) domain.OrderForm {
	return domain.OrderForm{
		Name:    Field(form.Name),
		Email:   Field(form.Email),
		Phone:   Field(form.Phone),
		Service: Field(form.Service),
		Details: Field(form.Details),
	}
}
