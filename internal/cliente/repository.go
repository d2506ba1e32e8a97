package cliente

import (
	"gorm.io/gorm"
)

// Repository encapsula o acesso a dados de Cliente.
type Repository struct {
	DB *gorm.DB
}

// NewRepository instancia um novo repositório.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// Criar insere um novo cliente.
func (r *Repository) Criar(c *Cliente) error {
	return r.DB.Create(c).Error
}

// BuscarPorID busca um cliente pelo ID.
func (r *Repository) BuscarPorID(id uint) (*Cliente, error) {
	var c Cliente
	if err := r.DB.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// ListarTodos retorna os clientes, opcionalmente filtrados por status.
func (r *Repository) ListarTodos(status string) ([]Cliente, error) {
	var list []Cliente
	q := r.DB.Order("nome_completo ASC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Find(&list).Error
	return list, err
}

// ListarPorCaptador retorna os clientes trazidos por um captador.
func (r *Repository) ListarPorCaptador(captador string) ([]Cliente, error) {
	var list []Cliente
	err := r.DB.Where("captador = ?", captador).Find(&list).Error
	return list, err
}

// NomeDoCliente retorna o nome completo do cliente.
func (r *Repository) NomeDoCliente(clienteID uint) (string, error) {
	c, err := r.BuscarPorID(clienteID)
	if err != nil {
		return "", err
	}
	return c.NomeCompleto, nil
}

// CaptadorDoCliente retorna o captador estruturado do cliente.
func (r *Repository) CaptadorDoCliente(clienteID uint) (string, error) {
	c, err := r.BuscarPorID(clienteID)
	if err != nil {
		return "", err
	}
	return c.Captador, nil
}

// Atualizar salva alterações em um cliente existente.
func (r *Repository) Atualizar(c *Cliente) error {
	return r.DB.Save(c).Error
}

// DeletarPorID apaga o cliente; retorna gorm.ErrRecordNotFound se nada foi deletado.
func (r *Repository) DeletarPorID(id uint) error {
	res := r.DB.Delete(&Cliente{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
