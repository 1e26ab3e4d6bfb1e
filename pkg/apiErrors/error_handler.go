package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos de erro retornados pela API
const (
	// Erros de validação
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrPayloadTooLarge     = "VAL_004" // Arquivo maior que o permitido
	ErrTooManyRequests     = "VAL_005" // Limite de requisições excedido

	// Erros de dados
	ErrNoSnapshot     = "DATA_001" // Nenhum conjunto de dados carregado
	ErrMissingColumns = "DATA_002" // Colunas obrigatórias ausentes

	// Erros de rota
	ErrRouteNotFound    = "ROUTE_001" // Rota inexistente
	ErrMethodNotAllowed = "ROUTE_002" // Método não suportado pela rota

	// Erros do servidor
	ErrInternalServer  = "SRV_001" // Erro interno do servidor
	ErrSchedulerFailed = "SRV_002" // Erro no agendador
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,
	ErrPayloadTooLarge:     http.StatusRequestEntityTooLarge,
	ErrTooManyRequests:     http.StatusTooManyRequests,
	ErrNoSnapshot:          http.StatusNotFound,
	ErrMissingColumns:      http.StatusUnprocessableEntity,
	ErrRouteNotFound:       http.StatusNotFound,
	ErrMethodNotAllowed:    http.StatusMethodNotAllowed,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrSchedulerFailed:     http.StatusInternalServerError,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// StatusFor retorna o status HTTP associado ao código
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	json.NewEncoder(w).Encode(apiErr)
}

// FromError cria um erro de API a partir de um erro Go
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Erro desconhecido",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
