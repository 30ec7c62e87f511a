package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/nrad-K/go-vacancy-collector/internal/domain/model"
	"github.com/nrad-K/go-vacancy-collector/internal/infra"
)

const menuPrompt = "1 - 求人一覧を表示\n2 - 給与下限で並べ替えて表示\n>>> "

type vacancyLister interface {
	List(ctx context.Context, keyword string, sortByMinSalary bool) ([]model.Vacancy, error)
}

// runMenuは、入力が終わるまでメニューを繰り返します。"1"と"2"以外の入力は何もしません。
// 読み込みのエラーは画面に表示して次の入力を待ちます。
func runMenu(ctx context.Context, in *bufio.Scanner, out io.Writer, lister vacancyLister, printer infra.VacancyPrinter, keyword string) error {
	for {
		fmt.Fprint(out, menuPrompt)
		if !in.Scan() {
			return in.Err()
		}

		var sorted bool
		switch strings.TrimSpace(in.Text()) {
		case "1":
			sorted = false
		case "2":
			sorted = true
		default:
			continue
		}

		if err := printVacancies(ctx, out, lister, printer, keyword, sorted); err != nil {
			fmt.Fprintf(out, "エラー: %v\n", err)
		}
	}
}

func printVacancies(ctx context.Context, out io.Writer, lister vacancyLister, printer infra.VacancyPrinter, keyword string, sorted bool) error {
	vacancies, err := lister.List(ctx, keyword, sorted)
	if err != nil {
		return err
	}
	for _, v := range vacancies {
		if err := printer.Print(v); err != nil {
			return fmt.Errorf("求人の表示に失敗しました: %w", err)
		}
	}
	return nil
}
