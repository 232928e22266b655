package usecase

import (
	"mime/multipart"

	"imovel-hub/internal/entity"
	"imovel-hub/internal/httperr"
	"imovel-hub/internal/repo/persistent"
	"imovel-hub/internal/upload"
	"imovel-hub/internal/validation"
	"imovel-hub/pkg/logger"
)

type DestaqueUseCase interface {
	Create(in *validation.DestaqueCreateInput, imagem *multipart.FileHeader) (*entity.Destaque, error)
	ListPublic() ([]*entity.Destaque, error)
	ListAdmin() ([]*entity.Destaque, error)
	GetByID(id int) (*entity.Destaque, error)
	Update(id int, in *validation.DestaqueUpdateInput, imagem *multipart.FileHeader) (*entity.Destaque, error)
	Delete(id int) error
}

type destaqueUseCase struct {
	destaqueRepo persistent.DestaqueRepository
	gateway      *upload.Gateway
	logger       *logger.Logger
}

func NewDestaqueUseCase(
	destaqueRepo persistent.DestaqueRepository,
	gateway *upload.Gateway,
	logger *logger.Logger,
) DestaqueUseCase {
	return &destaqueUseCase{
		destaqueRepo: destaqueRepo,
		gateway:      gateway,
		logger:       logger,
	}
}

func (uc *destaqueUseCase) Create(in *validation.DestaqueCreateInput, imagem *multipart.FileHeader) (*entity.Destaque, error) {
	if imagem == nil {
		return nil, httperr.Validation([]httperr.FieldError{
			{Field: "imagem", Message: "Imagem é obrigatória"},
		})
	}

	imageURL, err := uc.gateway.UploadOne(upload.PrefixDestaques, imagem)
	if err != nil {
		return nil, err
	}

	destaque := &entity.Destaque{
		Titulo:     in.Titulo,
		Descricao:  in.Descricao,
		Imagem:     imageURL,
		Valor:      in.Valor,
		Area:       in.Area,
		Quartos:    in.Quartos,
		Banheiros:  in.Banheiros,
		Garagem:    in.Garagem,
		TextoBotao: in.TextoBotao,
		Link:       in.Link,
		Ativo:      in.Ativo,
		Ordem:      in.Ordem,
	}
	return uc.destaqueRepo.Create(destaque)
}

func (uc *destaqueUseCase) ListPublic() ([]*entity.Destaque, error) {
	return uc.destaqueRepo.ListPublic()
}

func (uc *destaqueUseCase) ListAdmin() ([]*entity.Destaque, error) {
	return uc.destaqueRepo.ListAdmin()
}

func (uc *destaqueUseCase) GetByID(id int) (*entity.Destaque, error) {
	return uc.destaqueRepo.GetByID(id)
}

func (uc *destaqueUseCase) Update(id int, in *validation.DestaqueUpdateInput, imagem *multipart.FileHeader) (*entity.Destaque, error) {
	current, err := uc.destaqueRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	setString(updates, "titulo", in.Titulo)
	setString(updates, "descricao", in.Descricao)
	setFloat(updates, "valor", in.Valor)
	setInt(updates, "area", in.Area)
	setInt(updates, "quartos", in.Quartos)
	setInt(updates, "banheiros", in.Banheiros)
	setInt(updates, "garagem", in.Garagem)
	setString(updates, "texto_botao", in.TextoBotao)
	setString(updates, "link", in.Link)
	setBool(updates, "ativo", in.Ativo)
	setInt(updates, "ordem", in.Ordem)

	if imagem != nil {
		imageURL, err := uc.gateway.UploadOne(upload.PrefixDestaques, imagem)
		if err != nil {
			return nil, err
		}
		updates["imagem"] = imageURL

		if current.Imagem != "" {
			if err := uc.gateway.Delete(current.Imagem); err != nil {
				uc.logger.Warn("Failed to delete replaced image %s: %v", current.Imagem, err)
			}
		}
	} else if in.OldImage != "" {
		updates["imagem"] = in.OldImage
	}

	return uc.destaqueRepo.Update(id, updates)
}

func (uc *destaqueUseCase) Delete(id int) error {
	destaque, err := uc.destaqueRepo.GetByID(id)
	if err != nil {
		return err
	}

	if err := uc.destaqueRepo.Delete(id); err != nil {
		return err
	}

	if destaque.Imagem != "" {
		if err := uc.gateway.Delete(destaque.Imagem); err != nil {
			uc.logger.Warn("Failed to delete image %s: %v", destaque.Imagem, err)
		}
	}
	return nil
}
