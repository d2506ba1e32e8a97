// internal/saldo/engine.go
package saldo

import (
	"sync"
	"time"

	"github.com/VianaAdvocacia/api-escritorio/internal/despesa"
	"github.com/VianaAdvocacia/api-escritorio/internal/erros"
	"github.com/shopspring/decimal"
)

// FonteSaldos lê saldos para o motor de alocação.
type FonteSaldos interface {
	BuscarPorID(id uint) (*Saldo, error)
}

// FonteDespesas lê e grava as despesas vinculadas a saldos.
type FonteDespesas interface {
	ListarPorSaldo(saldoID uint) ([]despesa.Despesa, error)
	Salvar(d *despesa.Despesa) error
}

// Restante soma o que já foi sacado do saldo pelas despesas vinculadas e
// devolve (usado, restante). É função pura e recalculada a cada leitura:
// o restante nunca é gravado no saldo, para não divergir das despesas.
func Restante(s Saldo, despesas []despesa.Despesa) (usado, restante decimal.Decimal) {
	usado = decimal.Zero
	for _, d := range despesas {
		if d.PagaComSaldoID != nil && *d.PagaComSaldoID == s.ID {
			usado = usado.Add(d.Valor)
		}
	}
	return usado, s.ValorInicial.Sub(usado)
}

// Engine aplica alocações de despesas contra saldos. As verificações de
// capacidade são serializadas por saldo para que duas confirmações
// simultâneas não passem juntas pela checagem de restante.
type Engine struct {
	Saldos   FonteSaldos
	Despesas FonteDespesas

	mu     sync.Mutex
	travas map[uint]*sync.Mutex
}

// NewEngine instancia o motor de alocação.
func NewEngine(saldos FonteSaldos, despesas FonteDespesas) *Engine {
	return &Engine{Saldos: saldos, Despesas: despesas, travas: map[uint]*sync.Mutex{}}
}

func (e *Engine) trava(saldoID uint) *sync.Mutex {
	e.mu.Lock()
	defer e.mu.Unlock()
	m, ok := e.travas[saldoID]
	if !ok {
		m = &sync.Mutex{}
		e.travas[saldoID] = m
	}
	return m
}

// Alocar vincula a despesa ao saldo, debitando sua capacidade derivada.
// Em caso de capacidade insuficiente retorna SaldoInsuficienteError sem
// mutar nada; em caso de sucesso força status Pago, limpa os campos de
// pagador externo e grava o sentinela do escritório.
func (e *Engine) Alocar(d *despesa.Despesa, saldoID uint) error {
	if d.Valor.LessThanOrEqual(decimal.Zero) {
		return erros.Validacao("valor da despesa deve ser positivo")
	}

	m := e.trava(saldoID)
	m.Lock()
	defer m.Unlock()

	s, err := e.Saldos.BuscarPorID(saldoID)
	if err != nil {
		return erros.DoBanco(err, "saldo", saldoID)
	}

	vinculadas, err := e.Despesas.ListarPorSaldo(saldoID)
	if err != nil {
		return err
	}
	// Em reatribuição a própria despesa pode já constar no grupo.
	usado := decimal.Zero
	for _, v := range vinculadas {
		if v.ID != d.ID {
			usado = usado.Add(v.Valor)
		}
	}
	restante := s.ValorInicial.Sub(usado)
	if restante.LessThan(d.Valor) {
		return &erros.SaldoInsuficienteError{SaldoID: saldoID, Restante: restante, Solicitado: d.Valor}
	}

	id := saldoID
	d.Status = despesa.StatusPago
	d.Pagador = despesa.PagadorEscritorio
	d.Recebedor = ""
	d.TipoConta = ""
	d.Conta = ""
	d.FormaPagamento = "Saldo"
	d.PagaComSaldoID = &id
	return e.Despesas.Salvar(d)
}

// Grupo é a projeção de exibição das despesas custeadas por um mesmo saldo.
type Grupo struct {
	SaldoID    uint              `json:"saldoId"`
	Descricao  string            `json:"descricao"`
	Despesas   []despesa.Despesa `json:"despesas"`
	Total      decimal.Decimal   `json:"total"`
	UltimaData time.Time         `json:"ultimaData"`
}

// AgruparPorSaldo particiona as despesas pagas com saldo por saldo de
// origem, na ordem da primeira ocorrência no fluxo de entrada. Despesas
// sem vínculo são ignoradas. Determinístico para um mesmo snapshot.
func AgruparPorSaldo(despesas []despesa.Despesa) []Grupo {
	var grupos []Grupo
	indice := map[uint]int{}

	for _, d := range despesas {
		if d.PagaComSaldoID == nil {
			continue
		}
		id := *d.PagaComSaldoID
		i, ok := indice[id]
		if !ok {
			grupos = append(grupos, Grupo{SaldoID: id, Total: decimal.Zero})
			i = len(grupos) - 1
			indice[id] = i
		}
		grupos[i].Despesas = append(grupos[i].Despesas, d)
		grupos[i].Total = grupos[i].Total.Add(d.Valor)
		if d.DataDespesa.After(grupos[i].UltimaData) {
			grupos[i].UltimaData = d.DataDespesa
		}
	}
	return grupos
}
