package validate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/Gunvolt24/orderform/internal/domain"
	"github.com/Gunvolt24/orderform/internal/ports"
)

// ValidateFormFromJSON — валидация заявки из JSON.
func ValidateFormFromJSON(ctx context.Context, validator ports.FormValidator, raw []byte) (*domain.OrderForm, error) {
	var form domain.OrderForm
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&form); err != nil {
		return nil, fmt.Errorf("invalid json: %w", err)
	}
	// гарантируем отсутствие данных после объекта
	if err := dec.Decode(new(struct{})); err != io.EOF {
		return nil, fmt.Errorf("invalid json: trailing data")
	}
	if err := validator.Validate(ctx, &form); err != nil {
		return nil, err
	}
	return &form, nil
}
