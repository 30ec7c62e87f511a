package model

import "strconv"

// Amountは、欠損を表現できる金額です。
type Amount struct {
	value float64
	valid bool
}

func NewAmount(value float64) Amount {
	return Amount{
		value: value,
		valid: true,
	}
}

func NewNullAmount() Amount {
	return Amount{
		value: 0,
		valid: false,
	}
}

// NewAmountFromPtrは、nilを欠損として扱いAmountを生成します。
func NewAmountFromPtr(p *float64) Amount {
	if p == nil {
		return NewNullAmount()
	}
	return NewAmount(*p)
}

func (a Amount) Value() (float64, bool) {
	return a.value, a.valid
}

func (a Amount) IsNull() bool {
	return !a.valid
}

// Ptrは、欠損の場合nilを返します。
func (a Amount) Ptr() *float64 {
	if !a.valid {
		return nil
	}
	v := a.value
	return &v
}

func (a Amount) Format() string {
	if !a.valid {
		return ""
	}
	return strconv.FormatFloat(a.value, 'f', -1, 64)
}

// Conversionは、通貨コードと1単位あたりのルーブル換算レートの組です。
// 通貨コードとレートは常に両方揃っているか、両方欠損しているかのどちらかです。
type Conversion struct {
	currency string
	rate     float64
	valid    bool
}

func NewConversion(currency string, rate float64) Conversion {
	if currency == "" {
		return NewNullConversion()
	}
	return Conversion{
		currency: currency,
		rate:     rate,
		valid:    true,
	}
}

func NewNullConversion() Conversion {
	return Conversion{}
}

func (c Conversion) Currency() (string, bool) {
	return c.currency, c.valid
}

func (c Conversion) Rate() (float64, bool) {
	return c.rate, c.valid
}

func (c Conversion) IsNull() bool {
	return !c.valid
}
