package ports

import "context"

// Mailer — отправка одного письма. Реализация может вызываться
// несколько раз за запрос (админ + клиент), вызовы независимы.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}
