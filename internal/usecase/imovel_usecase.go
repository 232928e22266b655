package usecase

import (
	"mime/multipart"

	"imovel-hub/internal/entity"
	"imovel-hub/internal/repo/persistent"
	"imovel-hub/internal/upload"
	"imovel-hub/internal/validation"
	"imovel-hub/pkg/logger"
)

type ImovelUseCase interface {
	Create(in *validation.ImovelCreateInput, fotos []*multipart.FileHeader, capa *multipart.FileHeader) (*entity.Imovel, error)
	List(filter persistent.ImovelFilter) ([]*entity.Imovel, error)
	GetByID(id int) (*entity.Imovel, error)
	GetByCodigo(codigo string) (*entity.Imovel, error)
	Update(id int, in *validation.ImovelUpdateInput, fotos []*multipart.FileHeader, capa *multipart.FileHeader) (*entity.Imovel, error)
	Delete(id int) error
}

type imovelUseCase struct {
	imovelRepo persistent.ImovelRepository
	gateway    *upload.Gateway
	logger     *logger.Logger
}

func NewImovelUseCase(
	imovelRepo persistent.ImovelRepository,
	gateway *upload.Gateway,
	logger *logger.Logger,
) ImovelUseCase {
	return &imovelUseCase{
		imovelRepo: imovelRepo,
		gateway:    gateway,
		logger:     logger,
	}
}

func (uc *imovelUseCase) Create(in *validation.ImovelCreateInput, fotos []*multipart.FileHeader, capa *multipart.FileHeader) (*entity.Imovel, error) {
	fotoURLs, err := uc.uploadMedia(fotos)
	if err != nil {
		return nil, err
	}

	capaURL := ""
	if capa != nil {
		capaURL, err = uc.gateway.UploadOne(upload.PrefixImoveis, capa)
		if err != nil {
			return nil, err
		}
	}

	imovel := &entity.Imovel{
		Titulo:         in.Titulo,
		Codigo:         in.Codigo,
		DescricaoCurta: in.DescricaoCurta,
		DescricaoLonga: in.DescricaoLonga,
		Fotos:          fotoURLs,
		ImagemCapa:     capaURL,
		Valor:          in.Valor,
		ValorPromo:     in.ValorPromo,
		Cep:            in.Cep,
		Endereco:       in.Endereco,
		Bairro:         in.Bairro,
		Cidade:         in.Cidade,
		Estado:         in.Estado,
		Latitude:       in.Latitude,
		Longitude:      in.Longitude,
		Suites:         in.Suites,
		Dormitorios:    in.Dormitorios,
		Banheiros:      in.Banheiros,
		Garagem:        in.Garagem,
		Geminada:       in.Geminada,
		TerrenoMedidas: in.TerrenoMedidas,
		TerrenoM2:      in.TerrenoM2,
		AreaConstruida: in.AreaConstruida,
	}

	return uc.imovelRepo.Create(imovel, in.TipoID, in.FinalidadeID)
}

func (uc *imovelUseCase) List(filter persistent.ImovelFilter) ([]*entity.Imovel, error) {
	return uc.imovelRepo.List(filter)
}

func (uc *imovelUseCase) GetByID(id int) (*entity.Imovel, error) {
	return uc.imovelRepo.GetByID(id)
}

func (uc *imovelUseCase) GetByCodigo(codigo string) (*entity.Imovel, error) {
	return uc.imovelRepo.GetByCodigo(codigo)
}

// Update patches only the fields present in the request, except the
// photo set: the stored gallery is always rewritten as the surviving
// old photos plus whatever was uploaded in this call.
func (uc *imovelUseCase) Update(id int, in *validation.ImovelUpdateInput, fotos []*multipart.FileHeader, capa *multipart.FileHeader) (*entity.Imovel, error) {
	if _, err := uc.imovelRepo.GetByID(id); err != nil {
		return nil, err
	}

	newFotos, err := uc.uploadMedia(fotos)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	setString(updates, "titulo", in.Titulo)
	setString(updates, "codigo", in.Codigo)
	setString(updates, "descricao_curta", in.DescricaoCurta)
	setString(updates, "descricao_longa", in.DescricaoLonga)
	setFloat(updates, "valor", in.Valor)
	setFloat(updates, "valor_promo", in.ValorPromo)
	setString(updates, "cep", in.Cep)
	setString(updates, "endereco", in.Endereco)
	setString(updates, "bairro", in.Bairro)
	setString(updates, "cidade", in.Cidade)
	setString(updates, "estado", in.Estado)
	setFloat(updates, "latitude", in.Latitude)
	setFloat(updates, "longitude", in.Longitude)
	setInt(updates, "suites", in.Suites)
	setInt(updates, "dormitorios", in.Dormitorios)
	setInt(updates, "banheiros", in.Banheiros)
	setBool(updates, "garagem", in.Garagem)
	setBool(updates, "geminada", in.Geminada)
	setString(updates, "terreno_medidas", in.TerrenoMedidas)
	setFloat(updates, "terreno_m2", in.TerrenoM2)
	setFloat(updates, "area_construida", in.AreaConstruida)

	finalFotos := append([]string{}, in.OldPhotos...)
	updates["fotos"] = append(finalFotos, newFotos...)

	if capa != nil {
		capaURL, err := uc.gateway.UploadOne(upload.PrefixImoveis, capa)
		if err != nil {
			return nil, err
		}
		updates["imagem_capa"] = capaURL
	} else if in.ImagemCapa != nil {
		updates["imagem_capa"] = *in.ImagemCapa
	}

	if in.TipoID != nil {
		if err := uc.imovelRepo.ReplaceTipo(id, *in.TipoID); err != nil {
			return nil, err
		}
	}
	if in.FinalidadeID != nil {
		if err := uc.imovelRepo.ReplaceFinalidade(id, *in.FinalidadeID); err != nil {
			return nil, err
		}
	}

	return uc.imovelRepo.Update(id, updates)
}

func (uc *imovelUseCase) Delete(id int) error {
	imovel, err := uc.imovelRepo.GetByID(id)
	if err != nil {
		return err
	}

	if err := uc.imovelRepo.Delete(id); err != nil {
		return err
	}

	// Best effort: orphaned objects are not worth failing the request.
	for _, url := range imovel.Fotos {
		if err := uc.gateway.Delete(url); err != nil {
			uc.logger.Warn("Failed to delete photo %s: %v", url, err)
		}
	}
	if imovel.ImagemCapa != "" {
		if err := uc.gateway.Delete(imovel.ImagemCapa); err != nil {
			uc.logger.Warn("Failed to delete cover image %s: %v", imovel.ImagemCapa, err)
		}
	}
	return nil
}

func (uc *imovelUseCase) uploadMedia(fotos []*multipart.FileHeader) ([]string, error) {
	if len(fotos) == 0 {
		return []string{}, nil
	}
	return uc.gateway.UploadMany(upload.PrefixImoveis, fotos, upload.MaxGalleryFiles)
}

func setString(updates map[string]interface{}, column string, v *string) {
	if v != nil {
		updates[column] = *v
	}
}

func setInt(updates map[string]interface{}, column string, v *int) {
	if v != nil {
		updates[column] = *v
	}
}

func setFloat(updates map[string]interface{}, column string, v *float64) {
	if v != nil {
		updates[column] = *v
	}
}

func setBool(updates map[string]interface{}, column string, v *bool) {
	if v != nil {
		updates[column] = *v
	}
}
