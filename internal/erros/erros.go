// internal/erros/erros.go
package erros

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ValidacaoError indica entrada malformada; rejeitada antes de qualquer escrita.
type ValidacaoError struct {
	Motivo string
}

func (e *ValidacaoError) Error() string { return "validação: " + e.Motivo }

// Validacao cria um erro de validação com o motivo informado.
func Validacao(formato string, args ...any) error {
	return &ValidacaoError{Motivo: fmt.Sprintf(formato, args...)}
}

// SaldoInsuficienteError indica alocação acima do restante de um saldo.
type SaldoInsuficienteError struct {
	SaldoID    uint
	Restante   decimal.Decimal
	Solicitado decimal.Decimal
}

func (e *SaldoInsuficienteError) Error() string {
	return fmt.Sprintf("saldo %d insuficiente: restante %s, solicitado %s",
		e.SaldoID, e.Restante.StringFixed(2), e.Solicitado.StringFixed(2))
}

// TransicaoInvalidaError indica uma transição de estado não permitida.
type TransicaoInvalidaError struct {
	Motivo string
}

func (e *TransicaoInvalidaError) Error() string { return "transição inválida: " + e.Motivo }

// TransicaoInvalida cria um erro de transição com o motivo informado.
func TransicaoInvalida(formato string, args ...any) error {
	return &TransicaoInvalidaError{Motivo: fmt.Sprintf(formato, args...)}
}

// NaoEncontradoError indica referência a uma entidade inexistente.
type NaoEncontradoError struct {
	Entidade string
	ID       uint
}

func (e *NaoEncontradoError) Error() string {
	return fmt.Sprintf("%s %d não encontrado", e.Entidade, e.ID)
}

// NaoEncontrado cria um erro para a entidade e id informados.
func NaoEncontrado(entidade string, id uint) error {
	return &NaoEncontradoError{Entidade: entidade, ID: id}
}

// DoBanco converte gorm.ErrRecordNotFound em NaoEncontradoError; qualquer
// outra falha do banco é propagada sem alteração (PersistenceFailure).
func DoBanco(err error, entidade string, id uint) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NaoEncontrado(entidade, id)
	}
	return err
}

// StatusHTTP mapeia a taxonomia de erros para códigos HTTP. Falhas de
// persistência (qualquer erro fora da taxonomia) viram 500.
func StatusHTTP(err error) int {
	var (
		val  *ValidacaoError
		ins  *SaldoInsuficienteError
		tra  *TransicaoInvalidaError
		nenc *NaoEncontradoError
	)
	switch {
	case errors.As(err, &val):
		return http.StatusBadRequest
	case errors.As(err, &ins):
		return http.StatusUnprocessableEntity
	case errors.As(err, &tra):
		return http.StatusConflict
	case errors.As(err, &nenc):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
