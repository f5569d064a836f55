package domain

import "time"

// OrderForm — пять полей формы заказа, как они приходят с сайта.
// Структура используется и для сырой заявки, и для её очищенной копии
// (после HTML-санитизации) — набор полей одинаковый.
type OrderForm struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Service string `json:"service"`
	Details string `json:"details"`
}

// StoredOrder — заявка, сохранённая в БД: очищенные поля + идентификатор
// и отметка времени, назначаемые хранилищем. Запись только добавляется,
// никогда не обновляется и не удаляется.
type StoredOrder struct {
	ID        int64     `json:"id"`
	OrderForm           // всегда санитизированные значения
	CreatedAt time.Time `json:"created_at"`
}

// SubmitReceipt — итог обработки заявки: id созданной записи и
// сообщение для клиента (полный успех или успех с оговоркой).
type SubmitReceipt struct {
	OrderID int64  `json:"-"`
	Message string `json:"message"`
}
