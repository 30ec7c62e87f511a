package model

import "slices"

type VacancyArgs struct {
	Employer   string
	Title      string
	URL        string
	API        SourceAPI
	SalaryFrom Amount
	SalaryTo   Amount
	Conversion Conversion
}

// Vacancyは、各求人APIのレスポンスを正規化した求人情報です。生成後は変更されません。
type Vacancy struct {
	employer   string
	title      string
	url        string
	api        SourceAPI
	salaryFrom Amount
	salaryTo   Amount
	conversion Conversion
}

func NewVacancy(args VacancyArgs) Vacancy {
	return Vacancy{
		employer:   args.Employer,
		title:      args.Title,
		url:        args.URL,
		api:        args.API,
		salaryFrom: args.SalaryFrom,
		salaryTo:   args.SalaryTo,
		conversion: args.Conversion,
	}
}

func (v Vacancy) Employer() string {
	return v.employer
}

func (v Vacancy) Title() string {
	return v.title
}

func (v Vacancy) URL() string {
	return v.url
}

func (v Vacancy) API() SourceAPI {
	return v.api
}

func (v Vacancy) SalaryFrom() Amount {
	return v.salaryFrom
}

func (v Vacancy) SalaryTo() Amount {
	return v.salaryTo
}

func (v Vacancy) Conversion() Conversion {
	return v.conversion
}

// CompareByMinSalaryは、給与下限の昇順で比較します。下限が欠損している求人はどの数値よりも大きいものとして扱います。
func CompareByMinSalary(a, b Vacancy) int {
	av, aok := a.salaryFrom.Value()
	bv, bok := b.salaryFrom.Value()
	switch {
	case !aok && !bok:
		return 0
	case !aok:
		return 1
	case !bok:
		return -1
	case av < bv:
		return -1
	case av > bv:
		return 1
	default:
		return 0
	}
}

// SortByMinSalaryは、給与下限で安定ソートした新しいスライスを返します。
func SortByMinSalary(vacancies []Vacancy) []Vacancy {
	sorted := slices.Clone(vacancies)
	slices.SortStableFunc(sorted, CompareByMinSalary)
	return sorted
}
