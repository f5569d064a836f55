package validate

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return path
}

func TestValidateFile_JSON_OK(t *testing.T) {
	ctx := context.Background()
	validator := NewFormValidator()

	path := writeTempFile(t, "form.json", validFormJSON("Jane Doe", "jane@example.com"))

	var out bytes.Buffer
	summary, err := ValidateFile(ctx, validator, path, FormatAuto, &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary != "1 valid / 0 invalid" {
		t.Fatalf("unexpected summary: %q", summary)
	}
	if !strings.Contains(out.String(), "jane@example.com") {
		t.Fatalf("canonical output missing form: %q", out.String())
	}
}

func TestValidateFile_JSON_Invalid(t *testing.T) {
	ctx := context.Background()
	validator := NewFormValidator()

	path := writeTempFile(t, "form.json", validFormJSON("Jane99", "jane@example.com"))

	var out bytes.Buffer
	summary, err := ValidateFile(ctx, validator, path, FormatAuto, &out)
	if err == nil {
		t.Fatalf("expected validation error")
	}
	if summary != "0 valid / 1 invalid" {
		t.Fatalf("unexpected summary: %q", summary)
	}
}

func TestValidateFile_JSONL_AutoByExtension(t *testing.T) {
	ctx := context.Background()
	validator := NewFormValidator()

	content := `{"name":"Jane Doe","email":"jane@example.com","phone":"5551234567","service":"Moving","details":"3 boxes"}` + "\n" +
		`broken` + "\n"
	path := writeTempFile(t, "forms.jsonl", content)

	var out bytes.Buffer
	summary, err := ValidateFile(ctx, validator, path, FormatAuto, &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary != "1 valid / 1 invalid" {
		t.Fatalf("unexpected summary: %q", summary)
	}
}

func TestValidateFile_MissingFile(t *testing.T) {
	ctx := context.Background()
	validator := NewFormValidator()

	var out bytes.Buffer
	if _, err := ValidateFile(ctx, validator, "/no/such/file.json", FormatAuto, &out); err == nil {
		t.Fatalf("expected open error")
	}
}

func TestValidateFile_UnsupportedFormat(t *testing.T) {
	ctx := context.Background()
	validator := NewFormValidator()

	path := writeTempFile(t, "form.json", validFormJSON("Jane Doe", "jane@example.com"))

	var out bytes.Buffer
	if _, err := ValidateFile(ctx, validator, path, InputFormat("xml"), &out); err == nil {
		t.Fatalf("expected unsupported format error")
	}
}
