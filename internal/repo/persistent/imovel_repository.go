package persistent

import (
	"errors"

	"imovel-hub/internal/entity"
	"imovel-hub/internal/httperr"
	"imovel-hub/internal/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ImovelFilter holds the optional listing filters. Codigo and Cidade are
// exact matches; Tipo and Finalidade match when ANY linked vocabulary row
// has the given name (existential over the join, never universal).
type ImovelFilter struct {
	Codigo     string
	Cidade     string
	Tipo       string
	Finalidade string
}

type ImovelRepository interface {
	Create(imovel *entity.Imovel, tipoID, finalidadeID int) (*entity.Imovel, error)
	List(filter ImovelFilter) ([]*entity.Imovel, error)
	GetByID(id int) (*entity.Imovel, error)
	GetByCodigo(codigo string) (*entity.Imovel, error)
	Update(id int, updates map[string]interface{}) (*entity.Imovel, error)
	ReplaceTipo(imovelID, tipoID int) error
	ReplaceFinalidade(imovelID, finalidadeID int) error
	Delete(id int) error
}

type imovelRepository struct {
	db *gorm.DB
}

func NewImovelRepository(db *gorm.DB) ImovelRepository {
	return &imovelRepository{db: db}
}

func (r *imovelRepository) withRelations(q *gorm.DB) *gorm.DB {
	return q.
		Preload("Tipo.Tipo").
		Preload("Finalidade.Finalidade").
		Preload("Categorias.Categoria")
}

func (r *imovelRepository) Create(imovel *entity.Imovel, tipoID, finalidadeID int) (*entity.Imovel, error) {
	var existing model.ImovelModel
	if err := r.db.Where("codigo = ?", imovel.Codigo).First(&existing).Error; err == nil {
		return nil, httperr.Conflict("Código de imóvel já cadastrado")
	}

	m := &model.ImovelModel{
		Titulo:         imovel.Titulo,
		Codigo:         imovel.Codigo,
		DescricaoCurta: imovel.DescricaoCurta,
		DescricaoLonga: imovel.DescricaoLonga,
		Fotos:          datatypes.JSONSlice[string](imovel.Fotos),
		ImagemCapa:     imovel.ImagemCapa,
		Valor:          imovel.Valor,
		ValorPromo:     imovel.ValorPromo,
		Cep:            imovel.Cep,
		Endereco:       imovel.Endereco,
		Bairro:         imovel.Bairro,
		Cidade:         imovel.Cidade,
		Estado:         imovel.Estado,
		Latitude:       imovel.Latitude,
		Longitude:      imovel.Longitude,
		Suites:         imovel.Suites,
		Dormitorios:    imovel.Dormitorios,
		Banheiros:      imovel.Banheiros,
		Garagem:        imovel.Garagem,
		Geminada:       imovel.Geminada,
		TerrenoMedidas: imovel.TerrenoMedidas,
		TerrenoM2:      imovel.TerrenoM2,
		AreaConstruida: imovel.AreaConstruida,
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(m).Error; err != nil {
			return err
		}
		if err := tx.Create(&model.ImovelTipoModel{ImovelID: m.ID, TipoID: tipoID}).Error; err != nil {
			return err
		}
		return tx.Create(&model.ImovelFinalidadeModel{ImovelID: m.ID, FinalidadeID: finalidadeID}).Error
	})
	if err != nil {
		return nil, err
	}

	return r.GetByID(m.ID)
}

func (r *imovelRepository) List(filter ImovelFilter) ([]*entity.Imovel, error) {
	q := r.withRelations(r.db.Model(&model.ImovelModel{})).Order("created_at DESC")

	if filter.Codigo != "" {
		q = q.Where("codigo = ?", filter.Codigo)
	}
	if filter.Cidade != "" {
		q = q.Where("cidade = ?", filter.Cidade)
	}
	if filter.Tipo != "" {
		q = q.Where(
			"EXISTS (SELECT 1 FROM imovel_tipos it JOIN tipos t ON t.id = it.tipo_id WHERE it.imovel_id = imoveis.id AND t.nome = ?)",
			filter.Tipo,
		)
	}
	if filter.Finalidade != "" {
		q = q.Where(
			"EXISTS (SELECT 1 FROM imovel_finalidades ifi JOIN finalidades f ON f.id = ifi.finalidade_id WHERE ifi.imovel_id = imoveis.id AND f.nome = ?)",
			filter.Finalidade,
		)
	}

	var models []model.ImovelModel
	if err := q.Find(&models).Error; err != nil {
		return nil, err
	}

	imoveis := make([]*entity.Imovel, len(models))
	for i := range models {
		imoveis[i] = ToImovelEntity(&models[i])
	}
	return imoveis, nil
}

func (r *imovelRepository) GetByID(id int) (*entity.Imovel, error) {
	var m model.ImovelModel
	if err := r.withRelations(r.db).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.NotFound("Imóvel não encontrado")
		}
		return nil, err
	}
	return ToImovelEntity(&m), nil
}

func (r *imovelRepository) GetByCodigo(codigo string) (*entity.Imovel, error) {
	var m model.ImovelModel
	if err := r.withRelations(r.db).Where("codigo = ?", codigo).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.NotFound("Imóvel não encontrado")
		}
		return nil, err
	}
	return ToImovelEntity(&m), nil
}

func (r *imovelRepository) Update(id int, updates map[string]interface{}) (*entity.Imovel, error) {
	var m model.ImovelModel
	if err := r.db.First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.NotFound("Imóvel não encontrado")
		}
		return nil, err
	}

	if fotos, ok := updates["fotos"].([]string); ok {
		updates["fotos"] = datatypes.JSONSlice[string](fotos)
	}

	if len(updates) > 0 {
		if err := r.db.Model(&m).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return r.GetByID(id)
}

// ReplaceTipo rewrites the imovel->tipo links as delete-all-then-recreate.
// Last write wins and previous links are discarded; this intentionally
// mirrors the original behavior instead of diffing incrementally.
func (r *imovelRepository) ReplaceTipo(imovelID, tipoID int) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("imovel_id = ?", imovelID).Delete(&model.ImovelTipoModel{}).Error; err != nil {
			return err
		}
		return tx.Create(&model.ImovelTipoModel{ImovelID: imovelID, TipoID: tipoID}).Error
	})
}

// ReplaceFinalidade rewrites the imovel->finalidade links, same replace
// semantics as ReplaceTipo.
func (r *imovelRepository) ReplaceFinalidade(imovelID, finalidadeID int) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("imovel_id = ?", imovelID).Delete(&model.ImovelFinalidadeModel{}).Error; err != nil {
			return err
		}
		return tx.Create(&model.ImovelFinalidadeModel{ImovelID: imovelID, FinalidadeID: finalidadeID}).Error
	})
}

func (r *imovelRepository) Delete(id int) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var m model.ImovelModel
		if err := tx.First(&m, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return httperr.NotFound("Imóvel não encontrado")
			}
			return err
		}

		if err := tx.Where("imovel_id = ?", id).Delete(&model.ImovelTipoModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("imovel_id = ?", id).Delete(&model.ImovelFinalidadeModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("imovel_id = ?", id).Delete(&model.ImovelCategoriaModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&m).Error
	})
}
