package infra

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
	"strings"

	"github.com/nrad-K/go-vacancy-collector/internal/constants"
	"github.com/nrad-K/go-vacancy-collector/internal/domain/model"
	"github.com/nrad-K/go-vacancy-collector/internal/logger"
)

// hhSearchResponseは、HeadHunterの求人検索APIのレスポンスです。
type hhSearchResponse struct {
	Items []hhVacancy `json:"items"`
	Found int         `json:"found"`
	Pages int         `json:"pages"`
}

type hhVacancy struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	URL          string      `json:"url"`
	AlternateURL string      `json:"alternate_url"`
	Employer     *hhEmployer `json:"employer"`
	Salary       *hhSalary   `json:"salary"` // 給与非公開の求人ではnull
}

type hhEmployer struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type hhSalary struct {
	From     *float64 `json:"from"`
	To       *float64 `json:"to"`
	Currency string   `json:"currency"`
	Gross    *bool    `json:"gross"`
}

type HeadHunterClientArgs struct {
	API     *APIClient
	BaseURL string
	Logger  logger.AppLogger
}

// HeadHunterClientは、api.hh.ru の求人検索を扱うクライアントです。
type HeadHunterClient struct {
	api     *APIClient
	baseURL string
	logger  logger.AppLogger
}

func NewHeadHunterClient(args HeadHunterClientArgs) *HeadHunterClient {
	return &HeadHunterClient{
		api:     args.API,
		baseURL: args.BaseURL,
		logger:  args.Logger,
	}
}

func (c *HeadHunterClient) API() model.SourceAPI {
	return model.HeadHunter
}

func (c *HeadHunterClient) Search(ctx context.Context, keyword string, maxPages int, rates model.RateTable) ([]model.Vacancy, error) {
	raw, err := c.fetchAll(ctx, keyword, maxPages)
	if err != nil {
		return nil, err
	}
	return c.normalize(raw, rates), nil
}

func (c *HeadHunterClient) fetchAll(ctx context.Context, keyword string, maxPages int) ([]hhVacancy, error) {
	return fetchAllPages(ctx, c.logger, c.API(), c.fetchPage, keyword, maxPages)
}

func (c *HeadHunterClient) fetchPage(ctx context.Context, keyword string, page int) ([]hhVacancy, error) {
	query := url.Values{}
	query.Set("text", keyword)
	query.Set("per_page", strconv.Itoa(constants.PageSize))
	query.Set("page", strconv.Itoa(page))

	body, err := c.api.Get(ctx, c.baseURL, query, nil)
	if err != nil {
		return nil, err
	}

	var resp hhSearchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &ParseError{Source: "HeadHunterのレスポンス", Err: err}
	}
	return resp.Items, nil
}

func (c *HeadHunterClient) normalize(raw []hhVacancy, rates model.RateTable) []model.Vacancy {
	vacancies := make([]model.Vacancy, len(raw))
	for i, v := range raw {
		vacancies[i] = normalizeHeadHunterVacancy(v, rates)
	}
	return vacancies
}

func normalizeHeadHunterVacancy(v hhVacancy, rates model.RateTable) model.Vacancy {
	args := model.VacancyArgs{
		Title:      PlainText(v.Name),
		URL:        v.AlternateURL,
		API:        model.HeadHunter,
		SalaryFrom: model.NewNullAmount(),
		SalaryTo:   model.NewNullAmount(),
		Conversion: model.NewNullConversion(),
	}
	if args.URL == "" {
		args.URL = v.URL
	}
	if v.Employer != nil {
		args.Employer = PlainText(v.Employer.Name)
	}
	if v.Salary != nil {
		args.SalaryFrom = model.NewAmountFromPtr(v.Salary.From)
		args.SalaryTo = model.NewAmountFromPtr(v.Salary.To)
		args.Conversion = headHunterConversion(v.Salary.Currency, rates)
	}
	return model.NewVacancy(args)
}

// headHunterConversionは、旧通貨コードを読み替えてからレート表を参照します。
// 表にないコードは換算不可として扱います。
func headHunterConversion(currency string, rates model.RateTable) model.Conversion {
	code := strings.ToUpper(strings.TrimSpace(currency))
	if code == "" {
		return model.NewNullConversion()
	}
	if alias, ok := constants.GetHeadHunterCurrencyAliases()[code]; ok {
		code = alias
	}

	rate, ok := rates.Rate(code)
	if !ok {
		return model.NewNullConversion()
	}
	return model.NewConversion(code, rate)
}
