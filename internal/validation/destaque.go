package validation

import (
	"net/url"

	"imovel-hub/internal/httperr"
)

type DestaqueCreateInput struct {
	Titulo     string `json:"titulo" validate:"required,min=3"`
	Descricao  string `json:"descricao" validate:"required"`
	Valor      *float64
	Area       *int
	Quartos    *int
	Banheiros  *int
	Garagem    *int
	TextoBotao string `json:"textoBotao" validate:"required"`
	Link       string `json:"link" validate:"required"`
	Ativo      bool
	Ordem      int
}

func ParseDestaqueCreate(values url.Values) (*DestaqueCreateInput, error) {
	f := NewForm(values)

	in := &DestaqueCreateInput{
		Titulo:     f.String("titulo"),
		Descricao:  f.String("descricao"),
		Valor:      f.Float("valor"),
		Area:       f.Int("area"),
		Quartos:    f.Int("quartos"),
		Banheiros:  f.Int("banheiros"),
		Garagem:    f.Int("garagem"),
		TextoBotao: f.String("textoBotao"),
		Link:       f.String("link"),
		Ativo:      true,
		Ordem:      intValue(f.Int("ordem")),
	}
	if ativo := f.Bool("ativo"); ativo != nil {
		in.Ativo = *ativo
	}

	details := append(f.Errors(), Validate(in)...)
	if len(details) > 0 {
		return nil, httperr.Validation(details)
	}
	return in, nil
}

type DestaqueUpdateInput struct {
	Titulo     *string
	Descricao  *string
	Valor      *float64
	Area       *int
	Quartos    *int
	Banheiros  *int
	Garagem    *int
	TextoBotao *string
	Link       *string
	Ativo      *bool
	Ordem      *int
	OldImage   string
}

func ParseDestaqueUpdate(values url.Values) (*DestaqueUpdateInput, error) {
	f := NewForm(values)

	in := &DestaqueUpdateInput{
		Titulo:     f.OptString("titulo"),
		Descricao:  f.OptString("descricao"),
		Valor:      f.Float("valor"),
		Area:       f.Int("area"),
		Quartos:    f.Int("quartos"),
		Banheiros:  f.Int("banheiros"),
		Garagem:    f.Int("garagem"),
		TextoBotao: f.OptString("textoBotao"),
		Link:       f.OptString("link"),
		Ativo:      f.Bool("ativo"),
		Ordem:      f.Int("ordem"),
		OldImage:   f.String("oldImage"),
	}

	if in.Titulo != nil && len(*in.Titulo) < 3 {
		f.fail("titulo", "Deve ter no mínimo 3 caracteres")
	}

	if err := f.Err(); err != nil {
		return nil, err
	}
	return in, nil
}
