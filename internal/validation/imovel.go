package validation

import (
	"encoding/json"
	"net/url"

	"imovel-hub/internal/httperr"
)

type ImovelCreateInput struct {
	Titulo         string `json:"titulo" validate:"required,min=3"`
	Codigo         string `json:"codigo" validate:"required,min=1"`
	DescricaoCurta string `json:"descricaoCurta"`
	DescricaoLonga string `json:"descricaoLonga"`
	Valor          *float64
	ValorPromo     *float64
	Cep            string `json:"cep"`
	Endereco       string `json:"endereco"`
	Bairro         string `json:"bairro"`
	Cidade         string `json:"cidade"`
	Estado         string `json:"estado"`
	Latitude       *float64
	Longitude      *float64
	Suites         *int
	Dormitorios    *int
	Banheiros      *int
	Garagem        *bool
	Geminada       *bool
	TerrenoMedidas string `json:"terrenoMedidas"`
	TerrenoM2      *float64
	AreaConstruida *float64
	TipoID         int `json:"tipoId" validate:"required,gte=1"`
	FinalidadeID   int `json:"finalidadeId" validate:"required,gte=1"`
}

// ParseImovelCreate coerces the multipart fields and validates the
// result, accumulating coercion and schema violations together.
func ParseImovelCreate(values url.Values) (*ImovelCreateInput, error) {
	f := NewForm(values)

	in := &ImovelCreateInput{
		Titulo:         f.String("titulo"),
		Codigo:         f.String("codigo"),
		DescricaoCurta: f.String("descricaoCurta"),
		DescricaoLonga: f.String("descricaoLonga"),
		Valor:          f.Float("valor"),
		ValorPromo:     f.Float("valorPromo"),
		Cep:            f.String("cep"),
		Endereco:       f.String("endereco"),
		Bairro:         f.String("bairro"),
		Cidade:         f.String("cidade"),
		Estado:         f.String("estado"),
		Latitude:       f.Float("latitude"),
		Longitude:      f.Float("longitude"),
		Suites:         f.Int("suites"),
		Dormitorios:    f.Int("dormitorios"),
		Banheiros:      f.Int("banheiros"),
		Garagem:        f.Bool("garagem"),
		Geminada:       f.Bool("geminada"),
		TerrenoMedidas: f.String("terrenoMedidas"),
		TerrenoM2:      f.Float("terrenoM2"),
		AreaConstruida: f.Float("areaConstruida"),
		TipoID:         intValue(f.Int("tipoId")),
		FinalidadeID:   intValue(f.Int("finalidadeId")),
	}

	details := append(f.Errors(), Validate(in)...)
	if len(details) > 0 {
		return nil, httperr.Validation(details)
	}
	return in, nil
}

// ImovelUpdateInput is presence-aware: a nil field was absent from the
// request and must not overwrite the stored value.
type ImovelUpdateInput struct {
	Titulo         *string
	Codigo         *string
	DescricaoCurta *string
	DescricaoLonga *string
	Valor          *float64
	ValorPromo     *float64
	Cep            *string
	Endereco       *string
	Bairro         *string
	Cidade         *string
	Estado         *string
	Latitude       *float64
	Longitude      *float64
	Suites         *int
	Dormitorios    *int
	Banheiros      *int
	Garagem        *bool
	Geminada       *bool
	TerrenoMedidas *string
	TerrenoM2      *float64
	AreaConstruida *float64
	TipoID         *int
	FinalidadeID   *int
	ImagemCapa     *string
	OldPhotos      []string
}

func ParseImovelUpdate(values url.Values) (*ImovelUpdateInput, error) {
	f := NewForm(values)

	in := &ImovelUpdateInput{
		Titulo:         f.OptString("titulo"),
		Codigo:         f.OptString("codigo"),
		DescricaoCurta: f.OptString("descricaoCurta"),
		DescricaoLonga: f.OptString("descricaoLonga"),
		Valor:          f.Float("valor"),
		ValorPromo:     f.Float("valorPromo"),
		Cep:            f.OptString("cep"),
		Endereco:       f.OptString("endereco"),
		Bairro:         f.OptString("bairro"),
		Cidade:         f.OptString("cidade"),
		Estado:         f.OptString("estado"),
		Latitude:       f.Float("latitude"),
		Longitude:      f.Float("longitude"),
		Suites:         f.Int("suites"),
		Dormitorios:    f.Int("dormitorios"),
		Banheiros:      f.Int("banheiros"),
		Garagem:        f.Bool("garagem"),
		Geminada:       f.Bool("geminada"),
		TerrenoMedidas: f.OptString("terrenoMedidas"),
		TerrenoM2:      f.Float("terrenoM2"),
		AreaConstruida: f.Float("areaConstruida"),
		TipoID:         f.Int("tipoId"),
		FinalidadeID:   f.Int("finalidadeId"),
		ImagemCapa:     f.OptString("imagemCapa"),
	}

	// Surviving gallery photos come in as a JSON array of URLs; the final
	// photo set is always this list plus whatever was uploaded now.
	if raw := f.String("oldPhotos"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &in.OldPhotos); err != nil {
			f.fail("oldPhotos", "Deve ser uma lista JSON de URLs")
		}
	}

	if in.Titulo != nil && len(*in.Titulo) < 3 {
		f.fail("titulo", "Deve ter no mínimo 3 caracteres")
	}
	if in.Codigo != nil && *in.Codigo == "" {
		f.fail("codigo", "Campo obrigatório")
	}

	if err := f.Err(); err != nil {
		return nil, err
	}
	return in, nil
}
