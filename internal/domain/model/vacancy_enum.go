package model

import "fmt"

// SourceAPIは、求人の取得元APIです。
type SourceAPI string

const (
	HeadHunter SourceAPI = "HeadHunter"
	SuperJob   SourceAPI = "SuperJob"
)

func ParseSourceAPI(s string) (SourceAPI, error) {
	switch SourceAPI(s) {
	case HeadHunter, SuperJob:
		return SourceAPI(s), nil
	default:
		return "", fmt.Errorf("未知の取得元APIです: %q", s)
	}
}
