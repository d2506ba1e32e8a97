// internal/processo/adapters.go
package processo

import (
	"github.com/VianaAdvocacia/api-escritorio/internal/parcela"
)

// NomeadorClientes lê o nome de um cliente. Implementado pelo repositório
// de clientes.
type NomeadorClientes interface {
	NomeDoCliente(clienteID uint) (string, error)
}

// FonteBeneficio expõe o recorte do processo usado pelo gerador de parcelas.
type FonteBeneficio struct {
	Repo *Repository
}

// DadosBeneficio lê valor da causa e concessão do processo.
func (f *FonteBeneficio) DadosBeneficio(processoID uint) (parcela.DadosBeneficio, error) {
	p, err := f.Repo.BuscarPorID(processoID)
	if err != nil {
		return parcela.DadosBeneficio{}, err
	}
	return parcela.DadosBeneficio{
		ValorCausa: p.ValorCausa,
		Concedido:  p.Concedido(),
	}, nil
}

// FonteAvisos compõe os dados de processo e cliente usados no aviso de
// cobrança de parcelas.
type FonteAvisos struct {
	Repo     *Repository
	Clientes NomeadorClientes
}

// DadosAviso retorna o título do processo e o nome do cliente vinculado.
func (f *FonteAvisos) DadosAviso(processoID uint) (string, string, error) {
	p, err := f.Repo.BuscarPorID(processoID)
	if err != nil {
		return "", "", err
	}
	nome, err := f.Clientes.NomeDoCliente(p.ClienteID)
	if err != nil {
		return "", "", err
	}
	return p.Titulo, nome, nil
}
