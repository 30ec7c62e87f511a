package infra

import (
	"bytes"
	"context"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nrad-K/go-vacancy-collector/internal/config"
	"github.com/nrad-K/go-vacancy-collector/internal/domain/model"
	"github.com/nrad-K/go-vacancy-collector/internal/domain/repository"
	"github.com/nrad-K/go-vacancy-collector/internal/logger"
	"golang.org/x/text/encoding/charmap"
)

// cbrDailyJSONは、cbr-xml-daily.ru の daily_json.js 形式です。
type cbrDailyJSON struct {
	Date   string                   `json:"Date"`
	Valute map[string]cbrJSONValute `json:"Valute"`
}

type cbrJSONValute struct {
	CharCode string  `json:"CharCode"`
	Nominal  float64 `json:"Nominal"`
	Value    float64 `json:"Value"`
}

// cbrValCursは、cbr.ru の XML_daily.asp 形式です。数値は小数点にカンマを使います。
type cbrValCurs struct {
	XMLName xml.Name       `xml:"ValCurs"`
	Date    string         `xml:"Date,attr"`
	Valutes []cbrXMLValute `xml:"Valute"`
}

type cbrXMLValute struct {
	CharCode string `xml:"CharCode"`
	Nominal  string `xml:"Nominal"`
	Value    string `xml:"Value"`
}

type CBRRateClientArgs struct {
	API    *APIClient
	URL    string
	Format config.RateFormat
	Logger logger.AppLogger
}

type cbrRateClient struct {
	api    *APIClient
	url    string
	format config.RateFormat
	logger logger.AppLogger
}

// NewCBRRateClientは、ロシア中央銀行の日次レートを取得するクライアントを生成します。
func NewCBRRateClient(args CBRRateClientArgs) repository.CurrencyRateRepository {
	return &cbrRateClient{
		api:    args.API,
		url:    args.URL,
		format: args.Format,
		logger: args.Logger,
	}
}

// FetchRatesは、1回のGETで日次レートを取得し、value / nominal を1単位あたりのレートとして返します。
// RUBは常に1になります。
func (c *cbrRateClient) FetchRates(ctx context.Context) (model.RateTable, error) {
	body, err := c.api.Get(ctx, c.url, nil, nil)
	if err != nil {
		return model.RateTable{}, fmt.Errorf("為替レートの取得に失敗しました: %w", err)
	}

	var rates map[string]float64
	switch c.format {
	case config.RateFormatXML:
		rates, err = c.parseXML(body)
	default:
		rates, err = c.parseJSON(body)
	}
	if err != nil {
		return model.RateTable{}, err
	}

	table := model.NewRateTable(rates)
	c.logger.Info("為替レートを取得しました", "count", table.Len(), "format", c.format)
	return table, nil
}

func (c *cbrRateClient) parseJSON(body []byte) (map[string]float64, error) {
	var daily cbrDailyJSON
	if err := json.Unmarshal(body, &daily); err != nil {
		return nil, &ParseError{Source: "為替レート(JSON)", Err: err}
	}
	if len(daily.Valute) == 0 {
		return nil, &ParseError{Source: "為替レート(JSON)", Err: errors.New("Valuteが含まれていません")}
	}

	rates := make(map[string]float64, len(daily.Valute))
	for key, v := range daily.Valute {
		code := v.CharCode
		if code == "" {
			code = key
		}
		if v.Nominal <= 0 {
			c.logger.Warn("単位が不正なレートを除外しました", "currency", code, "nominal", v.Nominal)
			continue
		}
		rates[code] = v.Value / v.Nominal
	}
	return rates, nil
}

func (c *cbrRateClient) parseXML(body []byte) (map[string]float64, error) {
	decoder := xml.NewDecoder(bytes.NewReader(body))
	decoder.CharsetReader = cbrCharsetReader

	var curs cbrValCurs
	if err := decoder.Decode(&curs); err != nil {
		return nil, &ParseError{Source: "為替レート(XML)", Err: err}
	}
	if len(curs.Valutes) == 0 {
		return nil, &ParseError{Source: "為替レート(XML)", Err: errors.New("Valuteが含まれていません")}
	}

	rates := make(map[string]float64, len(curs.Valutes))
	for _, v := range curs.Valutes {
		nominal, err := parseCBRNumber(v.Nominal)
		if err != nil {
			return nil, &ParseError{Source: "為替レート(XML) " + v.CharCode + " のNominal", Err: err}
		}
		value, err := parseCBRNumber(v.Value)
		if err != nil {
			return nil, &ParseError{Source: "為替レート(XML) " + v.CharCode + " のValue", Err: err}
		}
		if nominal <= 0 {
			c.logger.Warn("単位が不正なレートを除外しました", "currency", v.CharCode, "nominal", nominal)
			continue
		}
		rates[v.CharCode] = value / nominal
	}
	return rates, nil
}

// cbrCharsetReaderは、XML宣言のwindows-1251をUTF-8に変換します。
func cbrCharsetReader(label string, input io.Reader) (io.Reader, error) {
	switch strings.ToLower(label) {
	case "windows-1251", "cp1251":
		return charmap.Windows1251.NewDecoder().Reader(input), nil
	default:
		return nil, fmt.Errorf("未対応の文字コードです: %s", label)
	}
}

// parseCBRNumberは、"90,1234" のようなカンマ区切りの小数を解析します。
func parseCBRNumber(s string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(s), ",", "."), 64)
}
