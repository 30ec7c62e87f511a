package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/nrad-K/go-vacancy-collector/internal/config"
	"github.com/nrad-K/go-vacancy-collector/internal/domain/model"
	"github.com/nrad-K/go-vacancy-collector/internal/infra"
	"github.com/nrad-K/go-vacancy-collector/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	api       model.SourceAPI
	vacancies []model.Vacancy
	err       error
	gotRates  model.RateTable
	calls     int
}

func (c *fakeClient) API() model.SourceAPI { return c.api }

func (c *fakeClient) Search(ctx context.Context, keyword string, maxPages int, rates model.RateTable) ([]model.Vacancy, error) {
	c.calls++
	c.gotRates = rates
	return c.vacancies, c.err
}

type fakeRates struct {
	table model.RateTable
	err   error
}

func (r *fakeRates) FetchRates(ctx context.Context) (model.RateTable, error) {
	return r.table, r.err
}

type fakeRepo struct {
	saved     map[string][]model.Vacancy
	saveCalls int
	saveErr   error
	findErr   error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{saved: map[string][]model.Vacancy{}}
}

func (r *fakeRepo) Save(ctx context.Context, keyword string, vacancies []model.Vacancy) error {
	r.saveCalls++
	if r.saveErr != nil {
		return r.saveErr
	}
	r.saved[keyword] = vacancies
	return nil
}

func (r *fakeRepo) FindAll(ctx context.Context, keyword string) ([]model.Vacancy, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	return r.saved[keyword], nil
}

func vacancy(title string, api model.SourceAPI, from *float64) model.Vacancy {
	return model.NewVacancy(model.VacancyArgs{
		Title:      title,
		API:        api,
		SalaryFrom: model.NewAmountFromPtr(from),
		SalaryTo:   model.NewNullAmount(),
		Conversion: model.NewNullConversion(),
	})
}

func ptr(v float64) *float64 {
	return &v
}

func newSearchUseCase(clients []infra.VacancyClient, rates *fakeRates, repo *fakeRepo) *SearchVacanciesUseCase {
	cfg := config.DefaultAppConfig()
	return NewSearchVacanciesUseCase(SearchArgs{
		Cfg:     &cfg,
		Clients: clients,
		Rates:   rates,
		Repo:    repo,
		Logger:  logger.NewNopLogger(),
	})
}

func TestSearchVacanciesUseCaseRun(t *testing.T) {
	ctx := context.Background()

	t.Run("各APIの結果を順に連結して一度だけ保存する", func(t *testing.T) {
		hh := &fakeClient{api: model.HeadHunter, vacancies: []model.Vacancy{vacancy("hh1", model.HeadHunter, nil), vacancy("hh2", model.HeadHunter, ptr(1))}}
		sj := &fakeClient{api: model.SuperJob, vacancies: []model.Vacancy{vacancy("sj1", model.SuperJob, ptr(2))}}
		repo := newFakeRepo()
		rates := &fakeRates{table: model.NewRateTable(map[string]float64{"USD": 90})}

		session, err := newSearchUseCase([]infra.VacancyClient{hh, sj}, rates, repo).Run(ctx, "  golang ")

		require.NoError(t, err)
		assert.Equal(t, 1, repo.saveCalls)
		assert.Equal(t, "golang", session.Keyword)
		require.Len(t, repo.saved["golang"], 3)
		assert.Equal(t, "hh1", repo.saved["golang"][0].Title())
		assert.Equal(t, "hh2", repo.saved["golang"][1].Title())
		assert.Equal(t, "sj1", repo.saved["golang"][2].Title())
		assert.Equal(t, repo.saved["golang"], session.Vacancies)
		assert.True(t, hh.gotRates.Available())
		assert.True(t, sj.gotRates.Available())
	})

	t.Run("レート取得に失敗しても利用不可のレート表で続行する", func(t *testing.T) {
		hh := &fakeClient{api: model.HeadHunter}
		sj := &fakeClient{api: model.SuperJob}
		repo := newFakeRepo()
		rates := &fakeRates{err: errors.New("timeout")}

		_, err := newSearchUseCase([]infra.VacancyClient{hh, sj}, rates, repo).Run(ctx, "golang")

		require.NoError(t, err)
		assert.False(t, hh.gotRates.Available())
		assert.False(t, sj.gotRates.Available())
		assert.Equal(t, 1, repo.saveCalls)
	})

	t.Run("結果が0件でも保存する", func(t *testing.T) {
		repo := newFakeRepo()
		hh := &fakeClient{api: model.HeadHunter}

		session, err := newSearchUseCase([]infra.VacancyClient{hh}, &fakeRates{table: model.NewRateTable(nil)}, repo).Run(ctx, "cobol")

		require.NoError(t, err)
		assert.Empty(t, session.Vacancies)
		assert.Equal(t, 1, repo.saveCalls)
	})

	t.Run("空のキーワードはエラー", func(t *testing.T) {
		repo := newFakeRepo()
		hh := &fakeClient{api: model.HeadHunter}

		_, err := newSearchUseCase([]infra.VacancyClient{hh}, &fakeRates{}, repo).Run(ctx, "   ")

		assert.ErrorIs(t, err, ErrEmptyKeyword)
		assert.Equal(t, 0, hh.calls)
		assert.Equal(t, 0, repo.saveCalls)
	})

	t.Run("保存の失敗を返す", func(t *testing.T) {
		saveErr := errors.New("disk full")
		repo := newFakeRepo()
		repo.saveErr = saveErr

		_, err := newSearchUseCase(nil, &fakeRates{table: model.NewRateTable(nil)}, repo).Run(ctx, "golang")

		assert.ErrorIs(t, err, saveErr)
	})

	t.Run("APIの中断は保存せずに返す", func(t *testing.T) {
		repo := newFakeRepo()
		hh := &fakeClient{api: model.HeadHunter, err: context.Canceled}
		sj := &fakeClient{api: model.SuperJob}

		_, err := newSearchUseCase([]infra.VacancyClient{hh, sj}, &fakeRates{table: model.NewRateTable(nil)}, repo).Run(ctx, "golang")

		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 0, sj.calls)
		assert.Equal(t, 0, repo.saveCalls)
	})
}
