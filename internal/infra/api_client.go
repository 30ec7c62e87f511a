package infra

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

// maxErrorBodyは、エラーメッセージに含めるレスポンス本文の最大バイト数です。
const maxErrorBody = 512

// APIClientArgsは、APIClientを構築するための引数を保持します。
type APIClientArgs struct {
	Timeout         time.Duration
	RequestInterval time.Duration // 0の場合は間隔を空けない
	UserAgent       string
	HTTPClient      *http.Client // nilの場合はTimeoutから生成する
}

// APIClientは、外部APIへのGETリクエストを一定間隔で送るHTTPクライアントです。
type APIClient struct {
	http      *http.Client
	limiter   *rate.Limiter
	userAgent string
}

func NewAPIClient(args APIClientArgs) *APIClient {
	httpClient := args.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: args.Timeout}
	}

	limit := rate.Inf
	if args.RequestInterval > 0 {
		limit = rate.Every(args.RequestInterval)
	}

	return &APIClient{
		http:      httpClient,
		limiter:   rate.NewLimiter(limit, 1),
		userAgent: args.UserAgent,
	}
}

// Getは、クエリとヘッダーを付与してGETリクエストを送り、レスポンス本文を返します。
// 200以外のステータスの場合は*FetchErrorを返します。
func (c *APIClient) Get(ctx context.Context, rawURL string, query url.Values, headers map[string]string) ([]byte, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("URL %s のパースに失敗しました: %w", rawURL, err)
	}
	if len(query) > 0 {
		q := u.Query()
		for key, values := range query {
			for _, v := range values {
				q.Add(key, v)
			}
		}
		u.RawQuery = q.Encode()
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("リクエスト間隔の待機中に中断されました: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("リクエストの作成に失敗しました: %w", err)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTPリクエストに失敗しました: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		fetchErr := &FetchError{URL: u.String(), Status: resp.StatusCode}
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		if len(body) > 0 {
			fetchErr.Err = errors.New(string(body))
		}
		return nil, fetchErr
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("レスポンスの読み込みに失敗しました: %w", err)
	}

	return body, nil
}
