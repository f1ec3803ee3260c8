package analyzing

import (
	"errors"
	"fmt"

	"github.com/vfg2006/business-advisor-api/internal/domain"
)

// Erros específicos para o contexto de análise
var (
	ErrAccountIDRequired = errors.New("ID da conta é obrigatório")
	ErrAccountNotFound   = domain.ErrAccountNotFound
	ErrReportNotFound    = errors.New("relatório não encontrado")
	ErrNameRequired      = errors.New("nome da conta é obrigatório")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")

	ErrGenerateID = errors.New("erro ao gerar ID")
)

// AnalysisError é um erro com contexto adicional para análises
type AnalysisError struct {
	Err       error  // Erro base
	Code      string // Código de erro para API
	AccountID string // ID da conta envolvida (quando aplicável)
	Details   string // Detalhes adicionais
}

func (e *AnalysisError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *AnalysisError) Unwrap() error {
	return e.Err
}

// NewAnalysisError cria um novo AnalysisError com ID da conta
func NewAnalysisError(err error, code string, accountID string, details string) *AnalysisError {
	return &AnalysisError{
		Err:       err,
		Code:      code,
		AccountID: accountID,
		Details:   details,
	}
}
