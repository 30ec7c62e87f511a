package constants

const (
	// PageSizeは、各求人APIに1ページあたり要求する件数です。
	PageSize = 100

	// SuperJobDefaultCurrencyは、SuperJobの未知の通貨コードに割り当てる通貨です。
	SuperJobDefaultCurrency = "RUB"
)

// GetHeadHunterCurrencyAliasesは、HeadHunterの旧通貨コードから現行コードへの対応を返します。
func GetHeadHunterCurrencyAliases() map[string]string {
	return map[string]string{
		"RUR": "RUB",
		"BYR": "BYN",
	}
}

// GetSuperJobCurrencyCodesは、SuperJobの小文字の通貨コードからISOコードへの対応を返します。
func GetSuperJobCurrencyCodes() map[string]string {
	return map[string]string{
		"rub": "RUB",
		"uah": "UAH",
		"uzs": "UZS",
	}
}
