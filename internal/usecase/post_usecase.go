package usecase

import (
	"mime/multipart"

	"imovel-hub/internal/entity"
	"imovel-hub/internal/repo/persistent"
	"imovel-hub/internal/upload"
	"imovel-hub/internal/validation"
	"imovel-hub/pkg/logger"
)

type PostUseCase interface {
	Create(in *validation.PostInput, capa *multipart.FileHeader) (*entity.Post, error)
	List(filter persistent.PostFilter) ([]*entity.Post, error)
	GetByID(id int) (*entity.Post, error)
	GetBySlug(slug string) (*entity.Post, error)
	Update(id int, in *validation.PostInput, capa *multipart.FileHeader) (*entity.Post, error)
	Delete(id int) error
}

type postUseCase struct {
	postRepo persistent.PostRepository
	gateway  *upload.Gateway
	logger   *logger.Logger
}

func NewPostUseCase(
	postRepo persistent.PostRepository,
	gateway *upload.Gateway,
	logger *logger.Logger,
) PostUseCase {
	return &postUseCase{
		postRepo: postRepo,
		gateway:  gateway,
		logger:   logger,
	}
}

func (uc *postUseCase) Create(in *validation.PostInput, capa *multipart.FileHeader) (*entity.Post, error) {
	capaURL := ""
	if capa != nil {
		var err error
		capaURL, err = uc.gateway.UploadOne(upload.PrefixPosts, capa)
		if err != nil {
			return nil, err
		}
	}

	post := &entity.Post{
		Titulo:         in.Titulo,
		Slug:           in.Slug,
		Chamada:        in.Chamada,
		Conteudo:       in.Conteudo,
		ImagemCapa:     capaURL,
		DataPublicacao: in.DataPublicacao,
		Status:         entity.PostStatus(in.Status),
		CategoriaID:    in.CategoriaID,
		ImovelID:       in.ImovelID,
	}
	return uc.postRepo.Create(post)
}

func (uc *postUseCase) List(filter persistent.PostFilter) ([]*entity.Post, error) {
	return uc.postRepo.List(filter)
}

func (uc *postUseCase) GetByID(id int) (*entity.Post, error) {
	return uc.postRepo.GetByID(id)
}

func (uc *postUseCase) GetBySlug(slug string) (*entity.Post, error) {
	return uc.postRepo.GetBySlug(slug)
}

// Update is a full rewrite of the post fields; the cover image is only
// replaced when a new file comes with the request. A null imovelId
// unlinks the associated property.
func (uc *postUseCase) Update(id int, in *validation.PostInput, capa *multipart.FileHeader) (*entity.Post, error) {
	current, err := uc.postRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"titulo":          in.Titulo,
		"slug":            in.Slug,
		"chamada":         in.Chamada,
		"conteudo":        in.Conteudo,
		"data_publicacao": in.DataPublicacao,
		"status":          in.Status,
		"categoria_id":    in.CategoriaID,
		"imovel_id":       in.ImovelID,
	}

	if capa != nil {
		capaURL, err := uc.gateway.UploadOne(upload.PrefixPosts, capa)
		if err != nil {
			return nil, err
		}
		updates["imagem_capa"] = capaURL

		if current.ImagemCapa != "" {
			if err := uc.gateway.Delete(current.ImagemCapa); err != nil {
				uc.logger.Warn("Failed to delete replaced cover %s: %v", current.ImagemCapa, err)
			}
		}
	}

	return uc.postRepo.Update(id, updates)
}

func (uc *postUseCase) Delete(id int) error {
	post, err := uc.postRepo.GetByID(id)
	if err != nil {
		return err
	}

	if err := uc.postRepo.Delete(id); err != nil {
		return err
	}

	if post.ImagemCapa != "" {
		if err := uc.gateway.Delete(post.ImagemCapa); err != nil {
			uc.logger.Warn("Failed to delete cover image %s: %v", post.ImagemCapa, err)
		}
	}
	return nil
}
