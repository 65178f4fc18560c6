package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Mensagem string       `json:"mensagem"`
	Erros    []FieldError `json:"erros,omitempty"`
}

// FieldError error de validación de un campo.
type FieldError struct {
	Campo    string `json:"campo"`
	Mensagem string `json:"mensagem"`
}

// MessageResponse respuesta de los endpoints de validación de documentos.
type MessageResponse struct {
	Mensagem string `json:"mensagem"`
}
