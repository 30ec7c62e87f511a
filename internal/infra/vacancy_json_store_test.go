package infra

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/nrad-K/go-vacancy-collector/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleVacancies() []model.Vacancy {
	return []model.Vacancy{
		model.NewVacancy(model.VacancyArgs{
			Employer:   "Яндекс",
			Title:      "Go разработчик",
			URL:        "https://hh.ru/vacancy/1",
			API:        model.HeadHunter,
			SalaryFrom: model.NewAmount(150000),
			SalaryTo:   model.NewAmount(250000.5),
			Conversion: model.NewConversion("RUB", 1),
		}),
		model.NewVacancy(model.VacancyArgs{
			Employer:   "Acme <Ltd> & Co",
			Title:      "Backend",
			URL:        "https://www.superjob.ru/vakansii/backend-2.html",
			API:        model.SuperJob,
			SalaryFrom: model.NewNullAmount(),
			SalaryTo:   model.NewAmount(3000),
			Conversion: model.NewConversion("USD", 91.9829),
		}),
		model.NewVacancy(model.VacancyArgs{
			Title:      "Стажёр",
			API:        model.HeadHunter,
			SalaryFrom: model.NewNullAmount(),
			SalaryTo:   model.NewNullAmount(),
			Conversion: model.NewNullConversion(),
		}),
	}
}

func TestVacancyFileName(t *testing.T) {
	assert.Equal(t, "Python Developer.json", VacancyFileName("python developer"))
	assert.Equal(t, "Golang.json", VacancyFileName("  GOLANG "))
	assert.Equal(t, "Программист.json", VacancyFileName("программист"))
}

func TestVacancyJSONStore(t *testing.T) {
	ctx := context.Background()

	t.Run("保存して読み込むと同じ内容になる", func(t *testing.T) {
		store := NewVacancyJSONStore(t.TempDir())
		want := sampleVacancies()

		require.NoError(t, store.Save(ctx, "go developer", want))
		got, err := store.FindAll(ctx, "go developer")

		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("整形済みJSONで非ASCII文字をエスケープしない", func(t *testing.T) {
		dir := t.TempDir()
		store := NewVacancyJSONStore(dir)
		require.NoError(t, store.Save(ctx, "go developer", sampleVacancies()))

		data, err := os.ReadFile(filepath.Join(dir, "Go Developer.json"))
		require.NoError(t, err)

		content := string(data)
		assert.Contains(t, content, `"employer": "Яндекс"`)
		assert.Contains(t, content, `"employer": "Acme <Ltd> & Co"`)
		assert.Contains(t, content, "\n    {\n        \"employer\"")
		assert.Contains(t, content, `"salary_from": null`)
		assert.Contains(t, content, `"currency": null`)
		assert.Contains(t, content, `"currency_value": null`)
		assert.Contains(t, content, `"api": "SuperJob"`)
	})

	t.Run("保存はファイル全体を上書きする", func(t *testing.T) {
		store := NewVacancyJSONStore(t.TempDir())
		require.NoError(t, store.Save(ctx, "go", sampleVacancies()))
		require.NoError(t, store.Save(ctx, "go", sampleVacancies()[:1]))

		got, err := store.FindAll(ctx, "go")

		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("空の一覧は空配列として保存する", func(t *testing.T) {
		dir := t.TempDir()
		store := NewVacancyJSONStore(dir)
		require.NoError(t, store.Save(ctx, "empty", nil))

		data, err := os.ReadFile(filepath.Join(dir, "Empty.json"))
		require.NoError(t, err)
		assert.Equal(t, "[]\n", string(data))

		got, err := store.FindAll(ctx, "empty")
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("ファイルが無ければNotFoundError", func(t *testing.T) {
		store := NewVacancyJSONStore(t.TempDir())

		_, err := store.FindAll(ctx, "missing")

		var notFound *NotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Contains(t, notFound.Path, "Missing.json")
	})

	t.Run("壊れたJSONはParseError", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "Broken.json"), []byte(`[{"employer":`), 0644))
		store := NewVacancyJSONStore(dir)

		_, err := store.FindAll(ctx, "broken")

		var parseErr *ParseError
		assert.ErrorAs(t, err, &parseErr)
	})

	t.Run("currencyとcurrency_valueの片方だけの記録はParseError", func(t *testing.T) {
		dir := t.TempDir()
		body := `[{"employer":"A","title":"B","url":"u","api":"HeadHunter","salary_from":null,"salary_to":null,"currency":"RUB","currency_value":null}]`
		require.NoError(t, os.WriteFile(filepath.Join(dir, "Half.json"), []byte(body), 0644))
		store := NewVacancyJSONStore(dir)

		_, err := store.FindAll(ctx, "half")

		var parseErr *ParseError
		assert.ErrorAs(t, err, &parseErr)
	})

	t.Run("未知のapiはParseError", func(t *testing.T) {
		dir := t.TempDir()
		body := `[{"employer":"A","title":"B","url":"u","api":"Indeed","salary_from":1,"salary_to":null,"currency":null,"currency_value":null}]`
		require.NoError(t, os.WriteFile(filepath.Join(dir, "Indeed.json"), []byte(body), 0644))
		store := NewVacancyJSONStore(dir)

		_, err := store.FindAll(ctx, "indeed")

		var parseErr *ParseError
		assert.ErrorAs(t, err, &parseErr)
	})
}
