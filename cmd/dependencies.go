package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/nrad-K/go-vacancy-collector/internal/config"
	"github.com/nrad-K/go-vacancy-collector/internal/domain/repository"
	"github.com/nrad-K/go-vacancy-collector/internal/infra"
	"github.com/nrad-K/go-vacancy-collector/internal/logger"
	"github.com/nrad-K/go-vacancy-collector/internal/usecase"
)

// dependenciesは、設定から組み立てたクライアントとリポジトリを保持します。
type dependencies struct {
	cfg     config.AppConfig
	logger  logger.AppLogger
	clients []infra.VacancyClient
	rates   repository.CurrencyRateRepository
	repo    repository.VacancyRepository
}

func newDependencies(path string) (*dependencies, error) {
	// .envが無い場合(本番の環境変数で渡す場合)は何もしない
	_ = godotenv.Load()

	cfg, err := config.LoadAppConfig(path)
	if err != nil {
		return nil, err
	}

	// 標準出力はメニューの表示に使うため、ログは標準エラー出力に出す
	appLogger, err := logger.NewTextAppLogger(os.Stderr, cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("ロガーの初期化に失敗しました: %w", err)
	}

	api := infra.NewAPIClient(infra.APIClientArgs{
		Timeout:         time.Duration(cfg.TimeoutSeconds) * time.Second,
		RequestInterval: time.Duration(cfg.RequestIntervalMs) * time.Millisecond,
		UserAgent:       cfg.UserAgent,
	})

	var clients []infra.VacancyClient
	if cfg.HeadHunter.Enabled {
		clients = append(clients, infra.NewHeadHunterClient(infra.HeadHunterClientArgs{
			API:     api,
			BaseURL: cfg.HeadHunter.BaseURL,
			Logger:  appLogger,
		}))
	}
	if cfg.SuperJob.Enabled {
		clients = append(clients, infra.NewSuperJobClient(infra.SuperJobClientArgs{
			API:     api,
			BaseURL: cfg.SuperJob.BaseURL,
			APIKey:  cfg.SuperJob.APIKey,
			Logger:  appLogger,
		}))
	}

	return &dependencies{
		cfg:     cfg,
		logger:  appLogger,
		clients: clients,
		rates: infra.NewCBRRateClient(infra.CBRRateClientArgs{
			API:    api,
			URL:    cfg.Rates.URL,
			Format: cfg.Rates.Format,
			Logger: appLogger,
		}),
		repo: infra.NewVacancyJSONStore(cfg.OutputDir),
	}, nil
}

func (d *dependencies) searchUseCase() *usecase.SearchVacanciesUseCase {
	return usecase.NewSearchVacanciesUseCase(usecase.SearchArgs{
		Cfg:     &d.cfg,
		Clients: d.clients,
		Rates:   d.rates,
		Repo:    d.repo,
		Logger:  d.logger,
	})
}

func (d *dependencies) listUseCase() *usecase.ListVacanciesUseCase {
	return usecase.NewListVacanciesUseCase(usecase.ListArgs{
		Repo:   d.repo,
		Logger: d.logger,
	})
}

func (d *dependencies) printer(w io.Writer) infra.VacancyPrinter {
	return infra.NewTextPrinter(w)
}
