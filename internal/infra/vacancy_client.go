package infra

import (
	"context"

	"github.com/nrad-K/go-vacancy-collector/internal/domain/model"
	"github.com/nrad-K/go-vacancy-collector/internal/logger"
)

// VacancyClientは、1つの求人APIからの取得と正規化をまとめたインターフェースです。
type VacancyClient interface {
	API() model.SourceAPI
	// Searchは、最大maxPagesページ分の求人を取得し、ratesを使って正規化します。
	// ページ単位の失敗はログに記録され、そのAPIの取得を終了するだけでエラーにはなりません。
	Search(ctx context.Context, keyword string, maxPages int, rates model.RateTable) ([]model.Vacancy, error)
}

// pageFetcherは、指定ページの生の求人一覧を取得する関数です。
type pageFetcher[T any] func(ctx context.Context, keyword string, page int) ([]T, error)

// fetchAllPagesは、0ページ目から順に取得し、0件のページか取得失敗で終了します。
func fetchAllPages[T any](ctx context.Context, log logger.AppLogger, api model.SourceAPI, fetch pageFetcher[T], keyword string, maxPages int) ([]T, error) {
	var all []T
	for page := 0; page < maxPages; page++ {
		if err := ctx.Err(); err != nil {
			return all, err
		}

		items, err := fetch(ctx, keyword, page)
		if err != nil {
			if ctx.Err() != nil {
				return all, ctx.Err()
			}
			log.Warn("ページの取得に失敗したため、このAPIの取得を終了します", "api", api, "page", page, "error", err)
			break
		}

		log.Info("ページを取得しました", "api", api, "page", page, "count", len(items))
		if len(items) == 0 {
			break
		}
		all = append(all, items...)
	}
	return all, nil
}
