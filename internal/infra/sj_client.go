package infra

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"

	"github.com/nrad-K/go-vacancy-collector/internal/constants"
	"github.com/nrad-K/go-vacancy-collector/internal/domain/model"
	"github.com/nrad-K/go-vacancy-collector/internal/logger"
)

// sjSearchResponseは、SuperJobの求人検索APIのレスポンスです。
type sjSearchResponse struct {
	Objects []sjVacancy `json:"objects"`
	Total   int         `json:"total"`
	More    bool        `json:"more"`
}

type sjVacancy struct {
	ID          int     `json:"id"`
	Profession  string  `json:"profession"`
	FirmName    string  `json:"firm_name"`
	Link        string  `json:"link"`
	PaymentFrom float64 `json:"payment_from"` // 0 は「応相談」
	PaymentTo   float64 `json:"payment_to"`
	Currency    string  `json:"currency"`
}

type SuperJobClientArgs struct {
	API     *APIClient
	BaseURL string
	APIKey  string
	Logger  logger.AppLogger
}

// SuperJobClientは、api.superjob.ru の求人検索を扱うクライアントです。
type SuperJobClient struct {
	api     *APIClient
	baseURL string
	apiKey  string
	logger  logger.AppLogger
}

func NewSuperJobClient(args SuperJobClientArgs) *SuperJobClient {
	return &SuperJobClient{
		api:     args.API,
		baseURL: args.BaseURL,
		apiKey:  args.APIKey,
		logger:  args.Logger,
	}
}

func (c *SuperJobClient) API() model.SourceAPI {
	return model.SuperJob
}

func (c *SuperJobClient) Search(ctx context.Context, keyword string, maxPages int, rates model.RateTable) ([]model.Vacancy, error) {
	raw, err := c.fetchAll(ctx, keyword, maxPages)
	if err != nil {
		return nil, err
	}
	return c.normalize(raw, rates), nil
}

func (c *SuperJobClient) fetchAll(ctx context.Context, keyword string, maxPages int) ([]sjVacancy, error) {
	return fetchAllPages(ctx, c.logger, c.API(), c.fetchPage, keyword, maxPages)
}

func (c *SuperJobClient) fetchPage(ctx context.Context, keyword string, page int) ([]sjVacancy, error) {
	query := url.Values{}
	query.Set("keyword", keyword)
	query.Set("count", strconv.Itoa(constants.PageSize))
	query.Set("page", strconv.Itoa(page))

	headers := map[string]string{
		"X-Api-App-Id": c.apiKey,
	}

	body, err := c.api.Get(ctx, c.baseURL, query, headers)
	if err != nil {
		return nil, err
	}

	var resp sjSearchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &ParseError{Source: "SuperJobのレスポンス", Err: err}
	}
	return resp.Objects, nil
}

func (c *SuperJobClient) normalize(raw []sjVacancy, rates model.RateTable) []model.Vacancy {
	vacancies := make([]model.Vacancy, len(raw))
	for i, v := range raw {
		vacancies[i] = normalizeSuperJobVacancy(v, rates)
	}
	return vacancies
}

func normalizeSuperJobVacancy(v sjVacancy, rates model.RateTable) model.Vacancy {
	return model.NewVacancy(model.VacancyArgs{
		Employer:   PlainText(v.FirmName),
		Title:      PlainText(v.Profession),
		URL:        v.Link,
		API:        model.SuperJob,
		SalaryFrom: superJobPayment(v.PaymentFrom),
		SalaryTo:   superJobPayment(v.PaymentTo),
		Conversion: superJobConversion(v.Currency, rates),
	})
}

// superJobPaymentは、0を給与未記載として扱います。
func superJobPayment(p float64) model.Amount {
	if p == 0 {
		return model.NewNullAmount()
	}
	return model.NewAmount(p)
}

// superJobConversionは、SuperJobの通貨コードを換算レートに変換します。
// 未知のコードはRUB(レート1)、レート表にないコードはレート1とみなします。
func superJobConversion(currency string, rates model.RateTable) model.Conversion {
	if currency == "" || !rates.Available() {
		return model.NewNullConversion()
	}

	code, ok := constants.GetSuperJobCurrencyCodes()[currency]
	if !ok {
		return model.NewConversion(constants.SuperJobDefaultCurrency, 1)
	}

	rate, ok := rates.Rate(code)
	if !ok {
		rate = 1
	}
	return model.NewConversion(code, rate)
}
