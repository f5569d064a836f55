// Пакет mail — отправка писем по SMTP (реализация ports.Mailer).
package mail

import (
	"bytes"
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"net"
	"net/smtp"
	"strconv"
	"strings"
	"time"

	"github.com/Gunvolt24/orderform/config"
	"github.com/Gunvolt24/orderform/internal/ports"
)

var _ ports.Mailer = (*Sender)(nil)

// Dialer — абстракция net.Dialer; подменяется в тестах фейковым SMTP-сервером.
type Dialer interface {
	DialContext(ctx context.Context, network, address string) (net.Conn, error)
}

// Option — настройка Sender'а (в основном для тестов).
type Option func(*Sender)

// WithDialer — подменяет сетевой дайлер.
func WithDialer(d Dialer) Option {
	return func(s *Sender) {
		if d != nil {
			s.dialer = d
		}
	}
}

// WithTLSConfig — переопределяет TLS-конфигурацию STARTTLS (nil — отключить).
func WithTLSConfig(cfg *tls.Config) Option {
	return func(s *Sender) { s.tlsConfig = cfg }
}

// Sender — SMTP-отправитель. На каждый вызов Send открывается
// новое соединение: объёмы небольшие, зато нет висящих сессий.
type Sender struct {
	host        string
	port        int
	from        string
	auth        smtp.Auth
	tlsConfig   *tls.Config
	dialer      Dialer
	sendTimeout time.Duration
	log         ports.Logger
}

// NewSender — конструктор отправителя из конфигурации SMTP.
func NewSender(cfg config.SMTP, log ports.Logger, opts ...Option) (*Sender, error) {
	if strings.TrimSpace(cfg.Host) == "" {
		return nil, errors.New("smtp: host is required")
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("smtp: invalid port %d", cfg.Port)
	}
	if strings.TrimSpace(cfg.From) == "" {
		return nil, errors.New("smtp: from address is required")
	}

	s := &Sender{
		host:        cfg.Host,
		port:        cfg.Port,
		from:        strings.TrimSpace(cfg.From),
		dialer:      &net.Dialer{Timeout: 30 * time.Second},
		sendTimeout: cfg.SendTimeout,
		log:         log,
		tlsConfig: &tls.Config{
			ServerName: cfg.Host,
			MinVersion: tls.VersionTLS12,
		},
	}

	// Аутентификация только при заданном пользователе (локальный relay её не требует).
	if strings.TrimSpace(cfg.User) != "" {
		s.auth = smtp.PlainAuth("", cfg.User, cfg.Pass, cfg.Host)
	}

	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}

	return s, nil
}

// Send — отправляет одно plain-text письмо. Таймаут на весь вызов —
// cfg.SendTimeout, чтобы медленный SMTP не держал HTTP-запрос.
func (s *Sender) Send(ctx context.Context, to, subject, body string) error {
	if strings.TrimSpace(to) == "" {
		return errors.New("smtp: recipient is required")
	}

	if s.sendTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.sendTimeout)
		defer cancel()
	}

	msg := s.buildMessage(to, subject, body)

	if err := s.deliver(ctx, to, msg); err != nil {
		return fmt.Errorf("smtp send to %s: %w", to, err)
	}

	s.log.Infof(ctx, "smtp: письмо отправлено to=%s subject=%q", to, subject)
	return nil
}

func (s *Sender) deliver(ctx context.Context, to string, msg []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	addr := net.JoinHostPort(s.host, strconv.Itoa(s.port))
	conn, err := s.dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("dial: %w", err)
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	// Отмена контекста рвёт соединение — smtp.Client сам из блокировки не выйдет.
	done := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			_ = conn.Close()
		case <-done:
		}
	}()
	defer close(done)

	client, err := smtp.NewClient(conn, s.host)
	if err != nil {
		return fmt.Errorf("new client: %w", err)
	}
	defer client.Close()

	if err := client.Hello("localhost"); err != nil {
		return fmt.Errorf("hello: %w", err)
	}

	if s.tlsConfig != nil {
		if ok, _ := client.Extension("STARTTLS"); ok {
			if err := client.StartTLS(s.tlsConfig.Clone()); err != nil {
				return fmt.Errorf("starttls: %w", err)
			}
		}
	}

	if s.auth != nil {
		if ok, _ := client.Extension("AUTH"); ok {
			if err := client.Auth(s.auth); err != nil {
				return fmt.Errorf("auth: %w", err)
			}
		}
	}

	if err := client.Mail(s.from); err != nil {
		return fmt.Errorf("mail from: %w", err)
	}
	if err := client.Rcpt(to); err != nil {
		return fmt.Errorf("rcpt to: %w", err)
	}

	writer, err := client.Data()
	if err != nil {
		return fmt.Errorf("data: %w", err)
	}
	if _, err := writer.Write(msg); err != nil {
		_ = writer.Close()
		return fmt.Errorf("data write: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("data close: %w", err)
	}

	if err := client.Quit(); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("quit: %w", err)
	}

	return ctx.Err()
}

func (s *Sender) buildMessage(to, subject, body string) []byte {
	var buf bytes.Buffer
	buf.WriteString("From: " + s.from + "\r\n")
	buf.WriteString("To: " + to + "\r\n")
	buf.WriteString("Subject: " + sanitizeHeader(subject) + "\r\n")
	buf.WriteString("Date: " + time.Now().UTC().Format(time.RFC1123Z) + "\r\n")
	buf.WriteString("MIME-Version: 1.0\r\n")
	buf.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	buf.WriteString("\r\n")
	buf.WriteString(normalizeBody(body))
	return buf.Bytes()
}

// sanitizeHeader — защита от CRLF-инъекции в заголовок.
// Пара \r\n схлопывается в один пробел, одиночные \r и \n — тоже.
func sanitizeHeader(v string) string {
	v = strings.ReplaceAll(v, "\r\n", " ")
	v = strings.ReplaceAll(v, "\r", " ")
	v = strings.ReplaceAll(v, "\n", " ")
	return strings.TrimSpace(v)
}

// normalizeBody — тело письма должно идти с CRLF-переводами строк.
func normalizeBody(body string) string {
	if body == "" {
		return ""
	}
	normalized := strings.ReplaceAll(body, "\r\n", "\n")
	normalized = strings.ReplaceAll(normalized, "\r", "\n")
	return strings.ReplaceAll(normalized, "\n", "\r\n")
}
