package persistent

import (
	"errors"

	"imovel-hub/internal/entity"
	"imovel-hub/internal/httperr"
	"imovel-hub/internal/model"

	"gorm.io/gorm"
)

type DestaqueRepository interface {
	Create(destaque *entity.Destaque) (*entity.Destaque, error)
	ListPublic() ([]*entity.Destaque, error)
	ListAdmin() ([]*entity.Destaque, error)
	GetByID(id int) (*entity.Destaque, error)
	Update(id int, updates map[string]interface{}) (*entity.Destaque, error)
	Delete(id int) error
}

type destaqueRepository struct {
	db *gorm.DB
}

func NewDestaqueRepository(db *gorm.DB) DestaqueRepository {
	return &destaqueRepository{db: db}
}

func (r *destaqueRepository) Create(destaque *entity.Destaque) (*entity.Destaque, error) {
	m := &model.DestaqueModel{
		Titulo:     destaque.Titulo,
		Descricao:  destaque.Descricao,
		Imagem:     destaque.Imagem,
		Valor:      destaque.Valor,
		Area:       destaque.Area,
		Quartos:    destaque.Quartos,
		Banheiros:  destaque.Banheiros,
		Garagem:    destaque.Garagem,
		TextoBotao: destaque.TextoBotao,
		Link:       destaque.Link,
		Ativo:      destaque.Ativo,
		Ordem:      destaque.Ordem,
	}
	if err := r.db.Create(m).Error; err != nil {
		return nil, err
	}
	return ToDestaqueEntity(m), nil
}

// ListPublic returns only active cards, in display order.
func (r *destaqueRepository) ListPublic() ([]*entity.Destaque, error) {
	var models []model.DestaqueModel
	if err := r.db.Where("ativo = ?", true).Order("ordem ASC").Find(&models).Error; err != nil {
		return nil, err
	}
	return toDestaqueEntities(models), nil
}

// ListAdmin returns every card, active or not, ordered for the editor.
func (r *destaqueRepository) ListAdmin() ([]*entity.Destaque, error) {
	var models []model.DestaqueModel
	if err := r.db.Order("ordem ASC, created_at DESC").Find(&models).Error; err != nil {
		return nil, err
	}
	return toDestaqueEntities(models), nil
}

func toDestaqueEntities(models []model.DestaqueModel) []*entity.Destaque {
	destaques := make([]*entity.Destaque, len(models))
	for i := range models {
		destaques[i] = ToDestaqueEntity(&models[i])
	}
	return destaques
}

func (r *destaqueRepository) GetByID(id int) (*entity.Destaque, error) {
	var m model.DestaqueModel
	if err := r.db.First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.NotFound("Destaque não encontrado")
		}
		return nil, err
	}
	return ToDestaqueEntity(&m), nil
}

func (r *destaqueRepository) Update(id int, updates map[string]interface{}) (*entity.Destaque, error) {
	var m model.DestaqueModel
	if err := r.db.First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.NotFound("Destaque não encontrado")
		}
		return nil, err
	}

	if len(updates) > 0 {
		if err := r.db.Model(&m).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return ToDestaqueEntity(&m), nil
}

func (r *destaqueRepository) Delete(id int) error {
	result := r.db.Delete(&model.DestaqueModel{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return httperr.NotFound("Destaque não encontrado")
	}
	return nil
}
