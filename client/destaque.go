package client

import (
	"context"
	"net/http"
	"net/url"

	"imovel-hub/internal/entity"
)

// DestaqueForm carries the multipart payload of a highlight create or
// update. Imagem is mandatory on create.
type DestaqueForm struct {
	Fields url.Values
	Imagem *MediaFile
}

func (c *Client) CreateDestaque(ctx context.Context, form DestaqueForm) (*entity.Destaque, error) {
	body, contentType, err := buildMultipart(form.Fields, "", nil, "imagem", form.Imagem)
	if err != nil {
		return nil, err
	}

	var destaque entity.Destaque
	if err := c.do(ctx, http.MethodPost, "/api/destaques", body, contentType, &destaque); err != nil {
		return nil, err
	}
	return &destaque, nil
}

// ListDestaques returns the public view: active cards in display order.
func (c *Client) ListDestaques(ctx context.Context) ([]*entity.Destaque, error) {
	var destaques []*entity.Destaque
	if err := c.do(ctx, http.MethodGet, "/api/destaques", nil, "", &destaques); err != nil {
		return nil, err
	}
	return destaques, nil
}

// ListDestaquesAdmin returns every card, inactive included.
func (c *Client) ListDestaquesAdmin(ctx context.Context) ([]*entity.Destaque, error) {
	var destaques []*entity.Destaque
	if err := c.do(ctx, http.MethodGet, "/api/destaques/admin", nil, "", &destaques); err != nil {
		return nil, err
	}
	return destaques, nil
}

func (c *Client) GetDestaque(ctx context.Context, id int) (*entity.Destaque, error) {
	var destaque entity.Destaque
	if err := c.do(ctx, http.MethodGet, pathf("/api/destaques/%d", id), nil, "", &destaque); err != nil {
		return nil, err
	}
	return &destaque, nil
}

func (c *Client) UpdateDestaque(ctx context.Context, id int, form DestaqueForm) (*entity.Destaque, error) {
	body, contentType, err := buildMultipart(form.Fields, "", nil, "imagem", form.Imagem)
	if err != nil {
		return nil, err
	}

	var destaque entity.Destaque
	if err := c.do(ctx, http.MethodPut, pathf("/api/destaques/%d", id), body, contentType, &destaque); err != nil {
		return nil, err
	}
	return &destaque, nil
}

func (c *Client) DeleteDestaque(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, pathf("/api/destaques/%d", id), nil, "", nil)
}
