package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/Gunvolt24/orderform/pkg/validate"
)

// CLI-приложение для офлайн-валидации форм заказа
// (например, выгрузок с лендинга перед импортом).
func main() {
	inputPath := flag.String("in", "", "path to input (.json or .jsonl). If empty, reads from stdin.")
	formatStr := flag.String("format", "auto", "input format: auto|json|jsonl")
	flag.Parse()

	ctx := context.Background()
	formValidator := validate.NewFormValidator()

	format := validate.InputFormat(*formatStr)

	// stdin вариант: считаем, что jsonl
	path := *inputPath
	if path == "" {
		path = "/dev/stdin"
		if format == validate.FormatAuto {
			format = validate.FormatJSONL
		}
	}

	summary, err := validate.ValidateFile(ctx, formValidator, path, format, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "validation: %v (%s)\n", err, summary)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "validation ok (%s)\n", summary)
}
