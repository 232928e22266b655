package validation

import (
	"net/url"
	"time"

	"imovel-hub/internal/httperr"
)

type PostInput struct {
	Titulo         string `json:"titulo" validate:"required,min=3"`
	Slug           string `json:"slug" validate:"required,min=3"`
	Chamada        string `json:"chamada"`
	Conteudo       string `json:"conteudo" validate:"required,min=10"`
	DataPublicacao *time.Time
	Status         string `json:"status" validate:"required,oneof=RASCUNHO PUBLICADO"`
	CategoriaID    int    `json:"categoriaId" validate:"required,gte=1"`
	ImovelID       *int
}

// ParsePost validates a post submission. Create and update share the
// same schema; updates are full rewrites, not patches.
func ParsePost(values url.Values) (*PostInput, error) {
	f := NewForm(values)

	in := &PostInput{
		Titulo:      f.String("titulo"),
		Slug:        f.String("slug"),
		Chamada:     f.String("chamada"),
		Conteudo:    f.String("conteudo"),
		Status:      f.String("status"),
		CategoriaID: intValue(f.Int("categoriaId")),
		ImovelID:    f.ForeignKey("imovelId"),
	}
	if in.Status == "" {
		in.Status = "RASCUNHO"
	}

	if raw := f.String("dataPublicacao"); raw != "" {
		t, err := parseDate(raw)
		if err != nil {
			f.fail("dataPublicacao", "Data inválida")
		} else {
			in.DataPublicacao = &t
		}
	}

	details := append(f.Errors(), Validate(in)...)
	if len(details) > 0 {
		return nil, httperr.Validation(details)
	}
	return in, nil
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
