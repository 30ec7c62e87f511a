package infra

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/nrad-K/go-vacancy-collector/internal/domain/model"
	"github.com/nrad-K/go-vacancy-collector/internal/domain/repository"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type vacancyJSONStore struct {
	dir string
}

// NewVacancyJSONStoreは、キーワードごとのJSONファイルに求人を保存するリポジトリを生成します。
func NewVacancyJSONStore(dir string) repository.VacancyRepository {
	return &vacancyJSONStore{dir: dir}
}

// VacancyFileNameは、キーワードの各単語を先頭大文字にしたファイル名を返します。
// 例: "python developer" -> "Python Developer.json"
func VacancyFileName(keyword string) string {
	return cases.Title(language.Und).String(strings.TrimSpace(keyword)) + ".json"
}

func (s *vacancyJSONStore) path(keyword string) string {
	return filepath.Join(s.dir, VacancyFileName(keyword))
}

// Saveは、ファイル全体を整形済みのJSON配列で上書きします。非ASCII文字はエスケープしません。
func (s *vacancyJSONStore) Save(ctx context.Context, keyword string, vacancies []model.Vacancy) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	records := make([]VacancyRecord, 0, len(vacancies))
	for _, v := range vacancies {
		records = append(records, ToRecord(v))
	}

	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "    ")
	if err := encoder.Encode(records); err != nil {
		return fmt.Errorf("求人のJSON変換に失敗しました: %w", err)
	}

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("出力ディレクトリの作成に失敗しました: %w", err)
	}

	path := s.path(keyword)
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("ファイル %s の書き込みに失敗しました: %w", path, err)
	}
	return nil
}

func (s *vacancyJSONStore) FindAll(ctx context.Context, keyword string) ([]model.Vacancy, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := s.path(keyword)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &NotFoundError{Path: path, Err: err}
		}
		return nil, fmt.Errorf("ファイル %s の読み込みに失敗しました: %w", path, err)
	}

	var records []VacancyRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, &ParseError{Source: path, Err: err}
	}

	vacancies := make([]model.Vacancy, 0, len(records))
	for i, r := range records {
		v, err := r.ToDomain()
		if err != nil {
			return nil, &ParseError{Source: fmt.Sprintf("%s の%d件目", path, i+1), Err: err}
		}
		vacancies = append(vacancies, v)
	}
	return vacancies, nil
}
