package usuario

import (
	"gorm.io/gorm"
)

// Repository encapsula o acesso a dados de Usuario.
type Repository struct {
	DB *gorm.DB
}

// NewRepository instancia um novo repositório.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// Criar insere um novo usuário.
func (r *Repository) Criar(u *Usuario) error {
	return r.DB.Create(u).Error
}

// BuscarPorID busca um usuário pelo ID.
func (r *Repository) BuscarPorID(id uint) (*Usuario, error) {
	var u Usuario
	if err := r.DB.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// BuscarPorEmail busca um usuário pelo email de login.
func (r *Repository) BuscarPorEmail(email string) (*Usuario, error) {
	var u Usuario
	if err := r.DB.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// ListarTodos retorna todos os usuários.
func (r *Repository) ListarTodos() ([]Usuario, error) {
	var list []Usuario
	err := r.DB.Order("nome ASC").Find(&list).Error
	return list, err
}

// Atualizar salva alterações em um usuário existente.
func (r *Repository) Atualizar(u *Usuario) error {
	return r.DB.Save(u).Error
}

// DeletarPorID apaga o usuário; retorna gorm.ErrRecordNotFound se nada foi deletado.
func (r *Repository) DeletarPorID(id uint) error {
	res := r.DB.Delete(&Usuario{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
