// internal/pagamento/transicao.go
package pagamento

import (
	"time"

	"github.com/VianaAdvocacia/api-escritorio/internal/erros"
)

// Pagavel é qualquer registro que transita entre Pendente e Pago.
type Pagavel interface {
	EstaPago() bool
	// AplicarPagamento grava a data e os metadados de custeio da variante.
	AplicarPagamento(quando time.Time, f Forma)
	// LimparPagamento zera data e metadados de custeio.
	LimparPagamento()
}

// Confirmar aplica a transição Pendente→Pago com a forma informada.
// Confirmar um registro já pago é no-op: nunca duplica dados de custeio.
func Confirmar(p Pagavel, f Forma, agora time.Time) error {
	if p.EstaPago() {
		return nil
	}
	if err := f.Validar(); err != nil {
		return err
	}
	p.AplicarPagamento(agora, f)
	return nil
}

// Estornar aplica a transição Pago→Pendente, liberando os metadados de
// custeio. Se o registro estava vinculado a um saldo, limpar o vínculo
// devolve a capacidade automaticamente, já que o restante é derivado.
func Estornar(p Pagavel) error {
	if !p.EstaPago() {
		return erros.TransicaoInvalida("registro não está pago")
	}
	p.LimparPagamento()
	return nil
}
