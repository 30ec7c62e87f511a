package infra

import "fmt"

// FetchErrorは、外部APIが成功以外のステータスを返した場合のエラーです。
type FetchError struct {
	URL    string
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("リクエストに失敗しました (status %d): %s", e.Status, e.URL)
	}
	return fmt.Sprintf("リクエストに失敗しました (status %d): %s: %v", e.Status, e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// ParseErrorは、レスポンスや保存ファイルの内容が解析できない場合のエラーです。
type ParseError struct {
	Source string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%sの解析に失敗しました: %v", e.Source, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// NotFoundErrorは、保存ファイルが存在しない場合のエラーです。
type NotFoundError struct {
	Path string
	Err  error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("ファイルが見つかりません: %s", e.Path)
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}
