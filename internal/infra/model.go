package infra

import (
	"fmt"

	"github.com/nrad-K/go-vacancy-collector/internal/domain/model"
)

// VacancyRecordは、保存ファイル上の求人1件の形式です。
type VacancyRecord struct {
	Employer      string   `json:"employer"`
	Title         string   `json:"title"`
	URL           string   `json:"url"`
	API           string   `json:"api"`
	SalaryFrom    *float64 `json:"salary_from"`
	SalaryTo      *float64 `json:"salary_to"`
	Currency      *string  `json:"currency"`
	CurrencyValue *float64 `json:"currency_value"`
}

func (r *VacancyRecord) ToDomain() (model.Vacancy, error) {
	api, err := model.ParseSourceAPI(r.API)
	if err != nil {
		return model.Vacancy{}, err
	}

	if (r.Currency == nil) != (r.CurrencyValue == nil) {
		return model.Vacancy{}, fmt.Errorf("currencyとcurrency_valueはどちらか一方だけを指定できません")
	}
	conversion := model.NewNullConversion()
	if r.Currency != nil {
		if *r.Currency == "" {
			return model.Vacancy{}, fmt.Errorf("currencyが空文字です")
		}
		conversion = model.NewConversion(*r.Currency, *r.CurrencyValue)
	}

	return model.NewVacancy(model.VacancyArgs{
		Employer:   r.Employer,
		Title:      r.Title,
		URL:        r.URL,
		API:        api,
		SalaryFrom: model.NewAmountFromPtr(r.SalaryFrom),
		SalaryTo:   model.NewAmountFromPtr(r.SalaryTo),
		Conversion: conversion,
	}), nil
}

func ToRecord(v model.Vacancy) VacancyRecord {
	record := VacancyRecord{
		Employer:   v.Employer(),
		Title:      v.Title(),
		URL:        v.URL(),
		API:        string(v.API()),
		SalaryFrom: v.SalaryFrom().Ptr(),
		SalaryTo:   v.SalaryTo().Ptr(),
	}
	if currency, ok := v.Conversion().Currency(); ok {
		rate, _ := v.Conversion().Rate()
		record.Currency = &currency
		record.CurrencyValue = &rate
	}
	return record
}
