package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	// Available solo se rellena para INSUFFICIENT_STOCK: la cantidad disponible
	// para que el cliente pueda reintentar con menos.
	Available string `json:"available,omitempty"`
}
