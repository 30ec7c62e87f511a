package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/nrad-K/go-vacancy-collector/internal/domain/model"
	"github.com/nrad-K/go-vacancy-collector/internal/domain/repository"
	"github.com/nrad-K/go-vacancy-collector/internal/logger"
)

type ListArgs struct {
	Repo   repository.VacancyRepository
	Logger logger.AppLogger
}

// ListVacanciesUseCaseは、保存済みの求人を読み込むユースケースです。
type ListVacanciesUseCase struct {
	repo   repository.VacancyRepository
	logger logger.AppLogger
}

func NewListVacanciesUseCase(args ListArgs) *ListVacanciesUseCase {
	return &ListVacanciesUseCase{
		repo:   args.Repo,
		logger: args.Logger,
	}
}

// Listは、保存済みの求人を読み込み、sortByMinSalaryがtrueなら給与下限の昇順(未記載は末尾)に並べます。
// 読み込みのエラーはそのまま呼び出し元に返します。
func (u *ListVacanciesUseCase) List(ctx context.Context, keyword string, sortByMinSalary bool) ([]model.Vacancy, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, ErrEmptyKeyword
	}

	vacancies, err := u.repo.FindAll(ctx, keyword)
	if err != nil {
		return nil, fmt.Errorf("保存済みの求人を読み込めませんでした: %w", err)
	}
	u.logger.Debug("保存済みの求人を読み込みました", "keyword", keyword, "count", len(vacancies), "sorted", sortByMinSalary)

	if sortByMinSalary {
		return model.SortByMinSalary(vacancies), nil
	}
	return vacancies, nil
}
