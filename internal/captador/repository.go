package captador

import "gorm.io/gorm"

// Repository encapsula o acesso a dados de Captador.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Criar(c *Captador) error {
	return r.DB.Create(c).Error
}

func (r *Repository) BuscarPorNome(nome string) (*Captador, error) {
	var c Captador
	if err := r.DB.Where("nome = ?", nome).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *Repository) ListarTodos() ([]Captador, error) {
	var list []Captador
	err := r.DB.Order("nome ASC").Find(&list).Error
	return list, err
}

func (r *Repository) DeletarPorID(id uint) error {
	res := r.DB.Delete(&Captador{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
