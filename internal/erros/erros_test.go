package erros

import (
	"errors"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestStatusHTTP(t *testing.T) {
	insuficiente := &SaldoInsuficienteError{
		SaldoID:    1,
		Restante:   decimal.New(600, 0),
		Solicitado: decimal.New(700, 0),
	}

	assert.Equal(t, http.StatusBadRequest, StatusHTTP(Validacao("campo ausente")))
	assert.Equal(t, http.StatusUnprocessableEntity, StatusHTTP(insuficiente))
	assert.Equal(t, http.StatusConflict, StatusHTTP(TransicaoInvalida("já pago")))
	assert.Equal(t, http.StatusNotFound, StatusHTTP(NaoEncontrado("processo", 3)))
	assert.Equal(t, http.StatusInternalServerError, StatusHTTP(errors.New("conexão caiu")))
}

func TestDoBanco(t *testing.T) {
	var nenc *NaoEncontradoError
	assert.ErrorAs(t, DoBanco(gorm.ErrRecordNotFound, "cliente", 9), &nenc)
	assert.Equal(t, "cliente", nenc.Entidade)

	outro := errors.New("deadlock")
	assert.Equal(t, outro, DoBanco(outro, "cliente", 9))
}
