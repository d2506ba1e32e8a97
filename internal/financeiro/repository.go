// internal/financeiro/repository.go
package financeiro

import (
	"gorm.io/gorm"
)

// Filtros da listagem de lançamentos; campos zerados não filtram.
type Filtros struct {
	ProcessoID uint
	ClienteID  uint
	Tipo       string
	Pago       *bool
}

// Repository encapsula o acesso a dados de Lancamento.
type Repository struct {
	DB *gorm.DB
}

// NewRepository instancia um novo repositório.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// Criar insere um novo lançamento.
func (r *Repository) Criar(l *Lancamento) error {
	return r.DB.Create(l).Error
}

// BuscarPorID busca um lançamento pelo ID.
func (r *Repository) BuscarPorID(id uint) (*Lancamento, error) {
	var l Lancamento
	if err := r.DB.First(&l, id).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

// Listar retorna lançamentos aplicando os filtros informados.
func (r *Repository) Listar(f Filtros) ([]Lancamento, error) {
	q := r.DB.Order("data_vencimento DESC")
	if f.ProcessoID != 0 {
		q = q.Where("processo_id = ?", f.ProcessoID)
	}
	if f.ClienteID != 0 {
		q = q.Where("cliente_id = ?", f.ClienteID)
	}
	if f.Tipo != "" {
		q = q.Where("tipo = ?", f.Tipo)
	}
	if f.Pago != nil {
		q = q.Where("pago = ?", *f.Pago)
	}
	var list []Lancamento
	err := q.Find(&list).Error
	return list, err
}

// ListarPorIDs busca lançamentos por um conjunto de IDs.
// Se db == nil usa o r.DB; permite uso dentro de transação.
func (r *Repository) ListarPorIDs(db *gorm.DB, ids []uint) ([]Lancamento, error) {
	if db == nil {
		db = r.DB
	}
	var list []Lancamento
	err := db.Where("id IN ?", ids).Find(&list).Error
	return list, err
}

// Atualizar salva alterações em um lançamento existente.
func (r *Repository) Atualizar(l *Lancamento) error {
	return r.DB.Save(l).Error
}

// ExisteHonorario informa se o processo já possui receita de honorários.
func (r *Repository) ExisteHonorario(processoID uint) (bool, error) {
	var n int64
	err := r.DB.Model(&Lancamento{}).
		Where("processo_id = ? AND eh_honorario = ? AND tipo = ?", processoID, true, TipoReceita).
		Count(&n).Error
	return n > 0, err
}

// VincularRecibo carimba os lançamentos com o recibo gerado.
// Se db == nil usa o r.DB; permite uso dentro de transação.
func (r *Repository) VincularRecibo(db *gorm.DB, ids []uint, reciboID uint) error {
	if db == nil {
		db = r.DB
	}
	return db.Model(&Lancamento{}).
		Where("id IN ?", ids).
		Update("recibo_id", reciboID).Error
}

// DesvincularRecibo limpa a referência ao recibo nos lançamentos ligados a
// ele. Os lançamentos em si são preservados.
func (r *Repository) DesvincularRecibo(db *gorm.DB, reciboID uint) error {
	if db == nil {
		db = r.DB
	}
	return db.Model(&Lancamento{}).
		Where("recibo_id = ?", reciboID).
		Update("recibo_id", nil).Error
}

// DeletarPorID apaga o lançamento; não recalcula recibos vinculados (o
// total do recibo é congelado na geração).
func (r *Repository) DeletarPorID(id uint) error {
	res := r.DB.Delete(&Lancamento{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
