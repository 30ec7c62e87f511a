package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/nrad-K/go-vacancy-collector/internal/config"
	"github.com/nrad-K/go-vacancy-collector/internal/domain/model"
	"github.com/nrad-K/go-vacancy-collector/internal/domain/repository"
	"github.com/nrad-K/go-vacancy-collector/internal/infra"
	"github.com/nrad-K/go-vacancy-collector/internal/logger"
)

// ErrEmptyKeywordは、検索キーワードが空の場合のエラーです。
var ErrEmptyKeyword = errors.New("検索キーワードが空です")

// SearchArgsは、求人検索ユースケースを構築するための引数を保持します。
//
// フィールド:
//
//	Cfg     : 収集の設定情報
//	Clients : 求人APIクライアント(この順に取得する)
//	Rates   : 為替レートの取得元
//	Repo    : 検索結果の保存先
//	Logger  : ロガー
type SearchArgs struct {
	Cfg     *config.AppConfig
	Clients []infra.VacancyClient
	Rates   repository.CurrencyRateRepository
	Repo    repository.VacancyRepository
	Logger  logger.AppLogger
}

// SearchVacanciesUseCaseは、全ての求人APIから求人を集めて1つのファイルに保存するユースケースです。
type SearchVacanciesUseCase struct {
	cfg     *config.AppConfig
	clients []infra.VacancyClient
	rates   repository.CurrencyRateRepository
	repo    repository.VacancyRepository
	logger  logger.AppLogger
}

func NewSearchVacanciesUseCase(args SearchArgs) *SearchVacanciesUseCase {
	return &SearchVacanciesUseCase{
		cfg:     args.Cfg,
		clients: args.Clients,
		rates:   args.Rates,
		repo:    args.Repo,
		logger:  args.Logger,
	}
}

// Runは、為替レートを取得してから各APIを順に検索し、結果を連結して一度だけ保存します。
//
// args:
//
//	ctx     : コンテキスト
//	keyword : 検索キーワード
//
// return:
//
//	model.SearchSession : 検索結果
//	error               : キーワードが空、処理の中断、保存の失敗
func (u *SearchVacanciesUseCase) Run(ctx context.Context, keyword string) (model.SearchSession, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return model.SearchSession{}, ErrEmptyKeyword
	}

	session := model.NewSearchSession(keyword)
	log := u.logger.With("session_id", session.ID.String(), "keyword", keyword)
	log.Info("求人の検索を開始します", "apis", len(u.clients), "max_pages", u.cfg.MaxPages)

	rates, err := u.rates.FetchRates(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return model.SearchSession{}, ctx.Err()
		}
		log.Warn("為替レートを取得できなかったため、通貨換算なしで続行します", "error", err)
		rates = model.UnavailableRateTable()
	}

	for _, client := range u.clients {
		vacancies, err := client.Search(ctx, keyword, u.cfg.MaxPages, rates)
		if err != nil {
			return model.SearchSession{}, fmt.Errorf("%sの検索が中断されました: %w", client.API(), err)
		}
		log.Info("求人を取得しました", "api", client.API(), "count", len(vacancies))
		session.Vacancies = append(session.Vacancies, vacancies...)
	}

	if err := u.repo.Save(ctx, keyword, session.Vacancies); err != nil {
		log.Error("検索結果の保存に失敗しました", "error", err)
		return model.SearchSession{}, fmt.Errorf("検索結果の保存に失敗しました: %w", err)
	}

	log.Info("求人の検索が完了しました", "total_count", len(session.Vacancies))
	return session, nil
}
