// internal/processo/model.go
package processo

import (
	"time"

	"github.com/VianaAdvocacia/api-escritorio/internal/parcela"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	// StatusConcedido é o único status que libera honorários e cronograma
	// de parcelas.
	StatusConcedido = "Concluído (Concedido)"
	StatusNegado    = "Concluído (Negado)"
)

// Status de pagamento agregado do processo, mantido pelo acompanhamento.
const (
	PagamentoPendente = "Pendente"
	PagamentoParcial  = "Parcial"
	PagamentoPago     = "Pago"
)

// Processo é um caso jurídico vinculado a um cliente. O valor da causa é a
// base dos honorários e do cronograma de parcelas.
type Processo struct {
	ID              uint              `gorm:"primaryKey" json:"id"`
	ClienteID       uint              `gorm:"not null;index" json:"clienteId"`
	Titulo          string            `gorm:"size:255;not null" json:"titulo"`
	NumeroProcesso  string            `gorm:"size:50;index" json:"numeroProcesso"`
	Tribunal        string            `gorm:"size:100" json:"tribunal"`
	Tipo            string            `gorm:"size:100" json:"tipo"`
	Descricao       string            `gorm:"type:text" json:"descricao"`
	Status          string            `gorm:"size:50;not null;default:'A Protocolar';index" json:"status"`
	StatusPagamento string            `gorm:"size:20;not null;default:'Pendente'" json:"statusPagamento"`
	ValorCausa      decimal.Decimal   `gorm:"type:decimal(20,2);not null;default:0" json:"valorCausa"`
	DataEntrada     time.Time         `json:"dataEntrada"`
	Parcelas        []parcela.Parcela `gorm:"foreignKey:ProcessoID" json:"parcelas,omitempty"`

	// Marcação de honorários; a receita correspondente vive no razão.
	HonorariosPagos          bool       `gorm:"not null;default:false" json:"honorariosPagos"`
	DataPagamentoHonorarios  *time.Time `json:"dataPagamentoHonorarios"`
	FormaPagamentoHonorarios string     `gorm:"size:50" json:"formaPagamentoHonorarios"`
	RecebedorHonorarios      string     `gorm:"size:100" json:"recebedorHonorarios"`
	TipoContaHonorarios      string     `gorm:"size:4" json:"tipoContaHonorarios"`
	ContaHonorarios          string     `gorm:"size:100" json:"contaHonorarios"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Processo{})
}

// Concedido informa se o processo foi concluído com concessão.
func (p *Processo) Concedido() bool { return p.Status == StatusConcedido }
