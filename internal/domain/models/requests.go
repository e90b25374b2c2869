package models

// Requests for ticker HTTP endpoints. Defined in domain for consistency and reuse.

type BatchRequest struct {
	Symbols string `query:"symbols" json:"symbols" validate:"required"`
}

type DataRequest struct {
	Symbol  string `query:"symbol" json:"symbol"`
	Symbols string `query:"symbols" json:"symbols"`
	From    string `query:"from" json:"from"`
	To      string `query:"to" json:"to"`
}
