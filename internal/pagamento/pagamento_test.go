package pagamento

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type registroFake struct {
	pago   bool
	quando *time.Time
	forma  *Forma
}

func (r *registroFake) EstaPago() bool { return r.pago }

func (r *registroFake) AplicarPagamento(quando time.Time, f Forma) {
	r.pago = true
	r.quando = &quando
	r.forma = &f
}

func (r *registroFake) LimparPagamento() {
	r.pago = false
	r.quando = nil
	r.forma = nil
}

func TestFormaValidar(t *testing.T) {
	assert.NoError(t, EmEspecie().Validar())
	assert.NoError(t, EmConta("Maria", "123-4", "PF").Validar())
	assert.NoError(t, ComSaldo(7).Validar())

	assert.Error(t, EmConta("", "123-4", "PF").Validar())
	assert.Error(t, EmConta("Maria", "", "PF").Validar())
	assert.Error(t, EmConta("Maria", "123-4", "XX").Validar())
	assert.Error(t, ComSaldo(0).Validar())
	assert.Error(t, Forma{}.Validar())
}

func TestFormaDTO(t *testing.T) {
	f, err := FormaDTO{Meio: "Conta", Recebedor: "João", Conta: "99-0", TipoConta: "PJ"}.Forma()
	require.NoError(t, err)
	assert.Equal(t, MeioConta, f.Meio())
	assert.Equal(t, "João", f.Recebedor())
	assert.Equal(t, "99-0", f.Conta())
	assert.Equal(t, "PJ", f.TipoConta())

	f, err = FormaDTO{Meio: "Saldo", SaldoID: 3}.Forma()
	require.NoError(t, err)
	assert.Equal(t, uint(3), f.SaldoID())

	_, err = FormaDTO{Meio: "Cheque"}.Forma()
	assert.Error(t, err)

	_, err = FormaDTO{Meio: "Conta"}.Forma()
	assert.Error(t, err)
}

func TestConfirmar(t *testing.T) {
	reg := &registroFake{}
	agora := time.Now()

	require.NoError(t, Confirmar(reg, EmEspecie(), agora))
	assert.True(t, reg.EstaPago())
	require.NotNil(t, reg.quando)
	assert.Equal(t, agora, *reg.quando)
}

func TestConfirmarJaPagoEhNoOp(t *testing.T) {
	reg := &registroFake{}
	primeira := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	require.NoError(t, Confirmar(reg, EmConta("Maria", "123-4", "PF"), primeira))

	// Segunda confirmação não sobrescreve data nem custeio.
	require.NoError(t, Confirmar(reg, EmEspecie(), primeira.Add(48*time.Hour)))
	assert.Equal(t, primeira, *reg.quando)
	assert.Equal(t, MeioConta, reg.forma.Meio())
}

func TestConfirmarFormaInvalida(t *testing.T) {
	reg := &registroFake{}
	err := Confirmar(reg, EmConta("", "", ""), time.Now())
	assert.Error(t, err)
	assert.False(t, reg.EstaPago())
}

func TestEstornar(t *testing.T) {
	reg := &registroFake{}
	require.NoError(t, Confirmar(reg, EmEspecie(), time.Now()))

	require.NoError(t, Estornar(reg))
	assert.False(t, reg.EstaPago())
	assert.Nil(t, reg.quando)
}

func TestEstornarNaoPago(t *testing.T) {
	reg := &registroFake{}
	assert.Error(t, Estornar(reg))
}
