package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-yaml"
)

// SuperJobAPIKeyEnvは、SuperJobのAPIキーを読み込む環境変数名です。
const SuperJobAPIKeyEnv = "SUPERJOB_API_KEY"

type RateFormat string

const (
	RateFormatJSON RateFormat = "json" // cbr-xml-daily.ru 形式
	RateFormatXML  RateFormat = "xml"  // cbr.ru XML_daily 形式 (windows-1251)
)

// VendorConfigは、求人APIごとの接続設定です。
type VendorConfig struct {
	Enabled bool   `yaml:"enabled"`
	BaseURL string `yaml:"base_url" validate:"required,url"`
	APIKey  string `yaml:"-"` // 環境変数から設定する
}

// RatesConfigは、為替レート取得先の設定です。
type RatesConfig struct {
	URL    string     `yaml:"url" validate:"required,url"`
	Format RateFormat `yaml:"format" validate:"required,oneof=json xml"`
}

// AppConfigは、求人収集の動作設定をまとめる構造体です。
type AppConfig struct {
	OutputDir         string       `yaml:"output_dir" validate:"required"`                      // 検索結果のJSONを保存するディレクトリ
	MaxPages          int          `yaml:"max_pages" validate:"min=1,max=20"`                   // 1つのAPIから取得する最大ページ数
	TimeoutSeconds    int          `yaml:"timeout_seconds" validate:"min=1,max=300"`            // HTTPリクエストのタイムアウト時間（秒）
	RequestIntervalMs int          `yaml:"request_interval_ms" validate:"min=0,max=60000"`      // ページ取得の間隔（ミリ秒）
	UserAgent         string       `yaml:"user_agent" validate:"required,min=1"`                // リクエストヘッダーに設定するUser-Agent
	LogLevel          string       `yaml:"log_level" validate:"omitempty,oneof=debug info warn error"`
	HeadHunter        VendorConfig `yaml:"headhunter" validate:"required"`
	SuperJob          VendorConfig `yaml:"superjob" validate:"required"`
	Rates             RatesConfig  `yaml:"rates" validate:"required"`
}

// DefaultAppConfigは、設定ファイルで省略された項目に使う既定値です。
func DefaultAppConfig() AppConfig {
	return AppConfig{
		OutputDir:         ".",
		MaxPages:          10,
		TimeoutSeconds:    30,
		RequestIntervalMs: 0,
		UserAgent:         "go-vacancy-collector/1.0",
		LogLevel:          "info",
		HeadHunter: VendorConfig{
			Enabled: true,
			BaseURL: "https://api.hh.ru/vacancies",
		},
		SuperJob: VendorConfig{
			Enabled: true,
			BaseURL: "https://api.superjob.ru/2.0/vacancies/",
		},
		Rates: RatesConfig{
			URL:    "https://www.cbr-xml-daily.ru/daily_json.js",
			Format: RateFormatJSON,
		},
	}
}

// バリデーターのインスタンス
var validate = validator.New()

// YAMLファイルからAppConfigを読み込む
func LoadAppConfig(path string) (AppConfig, error) {
	f, err := os.ReadFile(path)
	if err != nil {
		return AppConfig{}, fmt.Errorf("設定ファイルを読み込めませんでした: %w", err)
	}

	cfg := DefaultAppConfig()
	if err := yaml.Unmarshal(f, &cfg); err != nil {
		return AppConfig{}, fmt.Errorf("YAMLの解析に失敗しました: %w", err)
	}

	cfg.SuperJob.APIKey = os.Getenv(SuperJobAPIKeyEnv)

	if err := cfg.Validate(); err != nil {
		return AppConfig{}, err
	}

	return cfg, nil
}

// Validateは、タグによるバリデーションと項目間の整合性チェックを行います。
func (c AppConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("設定のバリデーションに失敗しました: %w", err)
	}

	// カスタムバリデーション
	if !c.HeadHunter.Enabled && !c.SuperJob.Enabled {
		return fmt.Errorf("headhunterとsuperjobのどちらかを有効にする必要があります")
	}
	if c.SuperJob.Enabled && c.SuperJob.APIKey == "" {
		return fmt.Errorf("superjobを有効にする場合は環境変数%sが必要です", SuperJobAPIKeyEnv)
	}

	return nil
}
