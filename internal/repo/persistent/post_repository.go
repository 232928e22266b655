package persistent

import (
	"errors"

	"imovel-hub/internal/entity"
	"imovel-hub/internal/httperr"
	"imovel-hub/internal/model"

	"gorm.io/gorm"
)

// PostFilter holds the optional listing filters for blog posts.
type PostFilter struct {
	Status      string
	CategoriaID int
	ImovelID    int
}

type PostRepository interface {
	Create(post *entity.Post) (*entity.Post, error)
	List(filter PostFilter) ([]*entity.Post, error)
	GetByID(id int) (*entity.Post, error)
	GetBySlug(slug string) (*entity.Post, error)
	Update(id int, updates map[string]interface{}) (*entity.Post, error)
	Delete(id int) error
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) withRelations(q *gorm.DB) *gorm.DB {
	return q.
		Preload("Categoria").
		Preload("Imovel", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "titulo", "codigo")
		})
}

func (r *postRepository) Create(post *entity.Post) (*entity.Post, error) {
	var existing model.PostModel
	if err := r.db.Where("slug = ?", post.Slug).First(&existing).Error; err == nil {
		return nil, httperr.Conflict("Slug já existe")
	}

	m := &model.PostModel{
		Titulo:         post.Titulo,
		Slug:           post.Slug,
		Chamada:        post.Chamada,
		Conteudo:       post.Conteudo,
		ImagemCapa:     post.ImagemCapa,
		DataPublicacao: post.DataPublicacao,
		Status:         string(post.Status),
		CategoriaID:    post.CategoriaID,
		ImovelID:       post.ImovelID,
	}
	if err := r.db.Create(m).Error; err != nil {
		return nil, err
	}
	return r.GetByID(m.ID)
}

func (r *postRepository) List(filter PostFilter) ([]*entity.Post, error) {
	q := r.withRelations(r.db.Model(&model.PostModel{})).Order("created_at DESC")

	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.CategoriaID != 0 {
		q = q.Where("categoria_id = ?", filter.CategoriaID)
	}
	if filter.ImovelID != 0 {
		q = q.Where("imovel_id = ?", filter.ImovelID)
	}

	var models []model.PostModel
	if err := q.Find(&models).Error; err != nil {
		return nil, err
	}

	posts := make([]*entity.Post, len(models))
	for i := range models {
		posts[i] = ToPostEntity(&models[i])
	}
	return posts, nil
}

func (r *postRepository) GetByID(id int) (*entity.Post, error) {
	var m model.PostModel
	if err := r.withRelations(r.db).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.NotFound("Post não encontrado")
		}
		return nil, err
	}
	return ToPostEntity(&m), nil
}

func (r *postRepository) GetBySlug(slug string) (*entity.Post, error) {
	var m model.PostModel
	if err := r.withRelations(r.db).Where("slug = ?", slug).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.NotFound("Post não encontrado")
		}
		return nil, err
	}
	return ToPostEntity(&m), nil
}

func (r *postRepository) Update(id int, updates map[string]interface{}) (*entity.Post, error) {
	var m model.PostModel
	if err := r.db.First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.NotFound("Post não encontrado")
		}
		return nil, err
	}

	if slug, ok := updates["slug"].(string); ok && slug != m.Slug {
		var existing model.PostModel
		if err := r.db.Where("slug = ? AND id <> ?", slug, id).First(&existing).Error; err == nil {
			return nil, httperr.Conflict("Slug já existe")
		}
	}

	if len(updates) > 0 {
		if err := r.db.Model(&m).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return r.GetByID(id)
}

func (r *postRepository) Delete(id int) error {
	result := r.db.Delete(&model.PostModel{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return httperr.NotFound("Post não encontrado")
	}
	return nil
}
