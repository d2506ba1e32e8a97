// internal/pagamento/forma.go
package pagamento

import (
	"github.com/VianaAdvocacia/api-escritorio/internal/erros"
)

// Meio identifica a variante de custeio de um pagamento.
type Meio string

const (
	// MeioEspecie: pagamento em espécie, sem dados adicionais.
	MeioEspecie Meio = "Especie"
	// MeioConta: pagamento via conta externa (recebedor, conta, tipo PF/PJ).
	MeioConta Meio = "Conta"
	// MeioSaldo: pagamento custeado por um saldo interno do escritório.
	// Exclusivo para despesas do escritório.
	MeioSaldo Meio = "Saldo"
)

// Forma é a decisão de custeio capturada no momento da transição
// Pendente→Pago. Os campos são privados e só preenchíveis pelos
// construtores, de modo que as variantes são mutuamente exclusivas
// por construção e não por convenção.
type Forma struct {
	meio      Meio
	recebedor string
	conta     string
	tipoConta string
	saldoID   uint
}

// EmEspecie custeia o pagamento em espécie.
func EmEspecie() Forma {
	return Forma{meio: MeioEspecie}
}

// EmConta custeia o pagamento por uma conta externa.
func EmConta(recebedor, conta, tipoConta string) Forma {
	return Forma{meio: MeioConta, recebedor: recebedor, conta: conta, tipoConta: tipoConta}
}

// ComSaldo custeia o pagamento por um saldo interno do escritório.
func ComSaldo(saldoID uint) Forma {
	return Forma{meio: MeioSaldo, saldoID: saldoID}
}

func (f Forma) Meio() Meio        { return f.meio }
func (f Forma) Recebedor() string { return f.recebedor }
func (f Forma) Conta() string     { return f.conta }
func (f Forma) TipoConta() string { return f.tipoConta }
func (f Forma) SaldoID() uint     { return f.saldoID }

// Validar garante que a variante carrega os dados que exige.
func (f Forma) Validar() error {
	switch f.meio {
	case MeioEspecie:
		return nil
	case MeioConta:
		if f.recebedor == "" || f.conta == "" {
			return erros.Validacao("pagamento em conta exige recebedor e conta")
		}
		if f.tipoConta != "PF" && f.tipoConta != "PJ" {
			return erros.Validacao("tipo de conta deve ser PF ou PJ")
		}
		return nil
	case MeioSaldo:
		if f.saldoID == 0 {
			return erros.Validacao("pagamento com saldo exige o saldo de origem")
		}
		return nil
	default:
		return erros.Validacao("forma de pagamento desconhecida")
	}
}

// FormaDTO é o payload JSON aceito pelos endpoints de confirmação de pagamento.
type FormaDTO struct {
	Meio      string `json:"meio"` // "Especie" | "Conta" | "Saldo"
	Recebedor string `json:"recebedor"`
	Conta     string `json:"conta"`
	TipoConta string `json:"tipoConta"`
	SaldoID   uint   `json:"saldoId"`
}

// Forma converte o DTO na variante correspondente, já validada.
func (d FormaDTO) Forma() (Forma, error) {
	var f Forma
	switch Meio(d.Meio) {
	case MeioEspecie:
		f = EmEspecie()
	case MeioConta:
		f = EmConta(d.Recebedor, d.Conta, d.TipoConta)
	case MeioSaldo:
		f = ComSaldo(d.SaldoID)
	default:
		return Forma{}, erros.Validacao("meio de pagamento inválido: %q", d.Meio)
	}
	if err := f.Validar(); err != nil {
		return Forma{}, err
	}
	return f, nil
}
