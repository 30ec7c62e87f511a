package model

// BaseCurrencyは、換算レートの基準通貨です。
const BaseCurrency = "RUB"

// RateTableは、通貨コードから1単位あたりのルーブル換算レートへの対応表です。
// 取得に失敗した場合はゼロ値(利用不可)の表を使い、全ての参照が失敗します。
type RateTable struct {
	rates map[string]float64
}

// NewRateTableは、正のレートだけを取り込み、RUBを常に1に設定した表を生成します。
func NewRateTable(rates map[string]float64) RateTable {
	table := make(map[string]float64, len(rates)+1)
	for code, rate := range rates {
		if rate > 0 {
			table[code] = rate
		}
	}
	table[BaseCurrency] = 1
	return RateTable{rates: table}
}

// UnavailableRateTableは、レートが取得できなかった場合の表を返します。
func UnavailableRateTable() RateTable {
	return RateTable{}
}

func (t RateTable) Available() bool {
	return t.rates != nil
}

func (t RateTable) Rate(code string) (float64, bool) {
	if t.rates == nil {
		return 0, false
	}
	rate, ok := t.rates[code]
	return rate, ok
}

func (t RateTable) Len() int {
	return len(t.rates)
}
