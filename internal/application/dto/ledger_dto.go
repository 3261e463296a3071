package dto

import "github.com/shopspring/decimal"

// ReceiptRequest body para POST /api/ledger/receipts.
// OfficerID puede omitirse: el handler usa entonces el usuario del token
// (en el terminal compartido de bodega el oficial se elige de una lista).
type ReceiptRequest struct {
	ProductID string          `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	OfficerID string          `json:"officer_id,omitempty"`
	Remark    string          `json:"remark,omitempty"`
}

// IssueRequest body para POST /api/ledger/issues.
type IssueRequest struct {
	ProductID    string          `json:"product_id"`
	Quantity     decimal.Decimal `json:"quantity"`
	RequesterID  string          `json:"requester_id"`
	OfficerID    string          `json:"officer_id,omitempty"`
	DepartmentID string          `json:"department_id,omitempty"`
}

// BulkIssueItem línea de una salida masiva.
type BulkIssueItem struct {
	ProductID string          `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
}

// BulkIssueRequest body para POST /api/ledger/issues/bulk.
// Todas las líneas se aplican como una sola unidad de trabajo (todo o nada).
type BulkIssueRequest struct {
	Items        []BulkIssueItem `json:"items"`
	RequesterID  string          `json:"requester_id"`
	OfficerID    string          `json:"officer_id,omitempty"`
	DepartmentID string          `json:"department_id,omitempty"`
}
