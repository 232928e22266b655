package persistent

import (
	"errors"

	"imovel-hub/internal/entity"
	"imovel-hub/internal/httperr"
	"imovel-hub/internal/model"

	"gorm.io/gorm"
)

// Vocabulary repositories. Name comparison on the conflict check is
// exact-match; anything looser is up to the store collation.

type TipoRepository interface {
	Create(nome string) (*entity.Tipo, error)
	List(nome string) ([]*entity.Tipo, error)
	Update(id int, nome string) (*entity.Tipo, error)
	Delete(id int) error
}

type FinalidadeRepository interface {
	Create(nome string) (*entity.Finalidade, error)
	List(nome string) ([]*entity.Finalidade, error)
	Update(id int, nome string) (*entity.Finalidade, error)
	Delete(id int) error
}

type CategoriaRepository interface {
	Create(nome string) (*entity.Categoria, error)
	List(nome string) ([]*entity.Categoria, error)
	Update(id int, nome string) (*entity.Categoria, error)
	Delete(id int) error
}

type BlogCategoriaRepository interface {
	Create(nome string) (*entity.BlogCategoria, error)
	List() ([]*entity.BlogCategoria, error)
	Update(id int, nome string) (*entity.BlogCategoria, error)
	Delete(id int) error
}

type tipoRepository struct {
	db *gorm.DB
}

func NewTipoRepository(db *gorm.DB) TipoRepository {
	return &tipoRepository{db: db}
}

func (r *tipoRepository) Create(nome string) (*entity.Tipo, error) {
	var existing model.TipoModel
	if err := r.db.Where("nome = ?", nome).First(&existing).Error; err == nil {
		return nil, httperr.Conflict("Tipo de imóvel já existe")
	}

	m := &model.TipoModel{Nome: nome}
	if err := r.db.Create(m).Error; err != nil {
		return nil, err
	}
	return ToTipoEntity(m), nil
}

func (r *tipoRepository) List(nome string) ([]*entity.Tipo, error) {
	q := r.db.Model(&model.TipoModel{}).Order("nome ASC")
	if nome != "" {
		q = q.Where("nome LIKE ?", "%"+nome+"%")
	}

	var models []model.TipoModel
	if err := q.Find(&models).Error; err != nil {
		return nil, err
	}

	tipos := make([]*entity.Tipo, len(models))
	for i := range models {
		tipos[i] = ToTipoEntity(&models[i])
	}
	return tipos, nil
}

func (r *tipoRepository) Update(id int, nome string) (*entity.Tipo, error) {
	var m model.TipoModel
	if err := r.db.First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.NotFound("Tipo não encontrado")
		}
		return nil, err
	}

	m.Nome = nome
	if err := r.db.Save(&m).Error; err != nil {
		return nil, err
	}
	return ToTipoEntity(&m), nil
}

func (r *tipoRepository) Delete(id int) error {
	result := r.db.Delete(&model.TipoModel{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return httperr.NotFound("Tipo não encontrado")
	}
	return nil
}

type finalidadeRepository struct {
	db *gorm.DB
}

func NewFinalidadeRepository(db *gorm.DB) FinalidadeRepository {
	return &finalidadeRepository{db: db}
}

func (r *finalidadeRepository) Create(nome string) (*entity.Finalidade, error) {
	var existing model.FinalidadeModel
	if err := r.db.Where("nome = ?", nome).First(&existing).Error; err == nil {
		return nil, httperr.Conflict("Finalidade já existe")
	}

	m := &model.FinalidadeModel{Nome: nome}
	if err := r.db.Create(m).Error; err != nil {
		return nil, err
	}
	return ToFinalidadeEntity(m), nil
}

func (r *finalidadeRepository) List(nome string) ([]*entity.Finalidade, error) {
	q := r.db.Model(&model.FinalidadeModel{}).Order("nome ASC")
	if nome != "" {
		q = q.Where("nome LIKE ?", "%"+nome+"%")
	}

	var models []model.FinalidadeModel
	if err := q.Find(&models).Error; err != nil {
		return nil, err
	}

	finalidades := make([]*entity.Finalidade, len(models))
	for i := range models {
		finalidades[i] = ToFinalidadeEntity(&models[i])
	}
	return finalidades, nil
}

func (r *finalidadeRepository) Update(id int, nome string) (*entity.Finalidade, error) {
	var m model.FinalidadeModel
	if err := r.db.First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.NotFound("Finalidade não encontrada")
		}
		return nil, err
	}

	m.Nome = nome
	if err := r.db.Save(&m).Error; err != nil {
		return nil, err
	}
	return ToFinalidadeEntity(&m), nil
}

func (r *finalidadeRepository) Delete(id int) error {
	result := r.db.Delete(&model.FinalidadeModel{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return httperr.NotFound("Finalidade não encontrada")
	}
	return nil
}

type categoriaRepository struct {
	db *gorm.DB
}

func NewCategoriaRepository(db *gorm.DB) CategoriaRepository {
	return &categoriaRepository{db: db}
}

func (r *categoriaRepository) Create(nome string) (*entity.Categoria, error) {
	var existing model.CategoriaModel
	if err := r.db.Where("nome = ?", nome).First(&existing).Error; err == nil {
		return nil, httperr.Conflict("Categoria já existe")
	}

	m := &model.CategoriaModel{Nome: nome}
	if err := r.db.Create(m).Error; err != nil {
		return nil, err
	}
	return ToCategoriaEntity(m), nil
}

func (r *categoriaRepository) List(nome string) ([]*entity.Categoria, error) {
	q := r.db.Model(&model.CategoriaModel{}).Order("nome ASC")
	if nome != "" {
		q = q.Where("nome LIKE ?", "%"+nome+"%")
	}

	var models []model.CategoriaModel
	if err := q.Find(&models).Error; err != nil {
		return nil, err
	}

	categorias := make([]*entity.Categoria, len(models))
	for i := range models {
		categorias[i] = ToCategoriaEntity(&models[i])
	}
	return categorias, nil
}

func (r *categoriaRepository) Update(id int, nome string) (*entity.Categoria, error) {
	var m model.CategoriaModel
	if err := r.db.First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.NotFound("Categoria não encontrada")
		}
		return nil, err
	}

	m.Nome = nome
	if err := r.db.Save(&m).Error; err != nil {
		return nil, err
	}
	return ToCategoriaEntity(&m), nil
}

func (r *categoriaRepository) Delete(id int) error {
	result := r.db.Delete(&model.CategoriaModel{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return httperr.NotFound("Categoria não encontrada")
	}
	return nil
}

type blogCategoriaRepository struct {
	db *gorm.DB
}

func NewBlogCategoriaRepository(db *gorm.DB) BlogCategoriaRepository {
	return &blogCategoriaRepository{db: db}
}

func (r *blogCategoriaRepository) Create(nome string) (*entity.BlogCategoria, error) {
	var existing model.BlogCategoriaModel
	if err := r.db.Where("nome = ?", nome).First(&existing).Error; err == nil {
		return nil, httperr.Conflict("Categoria já existe")
	}

	m := &model.BlogCategoriaModel{Nome: nome}
	if err := r.db.Create(m).Error; err != nil {
		return nil, err
	}
	return ToBlogCategoriaEntity(m), nil
}

func (r *blogCategoriaRepository) List() ([]*entity.BlogCategoria, error) {
	var models []model.BlogCategoriaModel
	if err := r.db.Order("nome ASC").Find(&models).Error; err != nil {
		return nil, err
	}

	categorias := make([]*entity.BlogCategoria, len(models))
	for i := range models {
		categorias[i] = ToBlogCategoriaEntity(&models[i])
	}
	return categorias, nil
}

func (r *blogCategoriaRepository) Update(id int, nome string) (*entity.BlogCategoria, error) {
	var m model.BlogCategoriaModel
	if err := r.db.First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.NotFound("Categoria não encontrada")
		}
		return nil, err
	}

	m.Nome = nome
	if err := r.db.Save(&m).Error; err != nil {
		return nil, err
	}
	return ToBlogCategoriaEntity(&m), nil
}

func (r *blogCategoriaRepository) Delete(id int) error {
	result := r.db.Delete(&model.BlogCategoriaModel{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return httperr.NotFound("Categoria não encontrada")
	}
	return nil
}
