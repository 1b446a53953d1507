package domain

import "github.com/shopspring/decimal"

// TaxSourceType tells what a tax line's SourceID refers to.
type TaxSourceType string

const (
	TaxSourceLine     TaxSourceType = "LINE"
	TaxSourceDocument TaxSourceType = "DOCUMENT"
)

// TaxRate is a catalog tax-rate definition; Rate is a fraction (0.16 for 16%).
type TaxRate struct {
	TaxRateID string          `json:"taxRateID"`
	Code      string          `json:"code"`
	Rate      decimal.Decimal `json:"rate"`
}

// TaxLine is a computed tax attached to a document or one of its lines.
type TaxLine struct {
	TaxLineID     string          `json:"taxLineID"`
	SourceType    TaxSourceType   `json:"sourceType"`
	SourceID      string          `json:"sourceID"`
	TaxRateID     string          `json:"taxRateID"`
	TaxableAmount decimal.Decimal `json:"taxableAmount"`
	TaxAmount     decimal.Decimal `json:"taxAmount"`
}
