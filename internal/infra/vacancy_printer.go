package infra

import (
	"fmt"
	"io"

	"github.com/nrad-K/go-vacancy-collector/internal/domain/model"
)

// VacancyPrinterは、求人を1件ずつ出力するインターフェースです。
type VacancyPrinter interface {
	Print(vacancy model.Vacancy) error
}

type TextPrinter struct {
	w io.Writer
}

func NewTextPrinter(w io.Writer) *TextPrinter {
	return &TextPrinter{w: w}
}

func formatSalary(v model.Vacancy) string {
	from := v.SalaryFrom()
	if from.IsNull() {
		return "記載なし"
	}
	if currency, ok := v.Conversion().Currency(); ok {
		return from.Format() + " " + currency
	}
	return from.Format()
}

// Printは、求人を固定のブロック形式で出力します。
func (p *TextPrinter) Print(v model.Vacancy) error {
	_, err := fmt.Fprintf(p.w, "\n雇用主: \"%s\"\n求人: \"%s\"\n給与: %s\nリンク: %s\n",
		v.Employer(),
		v.Title(),
		formatSalary(v),
		v.URL(),
	)
	return err
}
