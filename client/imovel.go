package client

import (
	"context"
	"net/http"
	"net/url"

	"imovel-hub/internal/entity"
)

// ImovelForm carries the multipart payload of a property create or
// update. Fields holds the scalar form values under their wire names
// (titulo, codigo, valor, tipoId, oldPhotos, ...).
type ImovelForm struct {
	Fields     url.Values
	Fotos      []MediaFile
	ImagemCapa *MediaFile
}

type ImovelListFilter struct {
	Codigo     string
	Cidade     string
	Tipo       string
	Finalidade string
}

func (f ImovelListFilter) query() string {
	q := url.Values{}
	if f.Codigo != "" {
		q.Set("codigo", f.Codigo)
	}
	if f.Cidade != "" {
		q.Set("cidade", f.Cidade)
	}
	if f.Tipo != "" {
		q.Set("tipo", f.Tipo)
	}
	if f.Finalidade != "" {
		q.Set("finalidade", f.Finalidade)
	}
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}

func (c *Client) CreateImovel(ctx context.Context, form ImovelForm) (*entity.Imovel, error) {
	body, contentType, err := buildMultipart(form.Fields, "fotos", form.Fotos, "imagemCapa", form.ImagemCapa)
	if err != nil {
		return nil, err
	}

	var imovel entity.Imovel
	if err := c.do(ctx, http.MethodPost, "/api/imoveis", body, contentType, &imovel); err != nil {
		return nil, err
	}
	return &imovel, nil
}

func (c *Client) ListImoveis(ctx context.Context, filter ImovelListFilter) ([]*entity.Imovel, error) {
	var imoveis []*entity.Imovel
	if err := c.do(ctx, http.MethodGet, "/api/imoveis"+filter.query(), nil, "", &imoveis); err != nil {
		return nil, err
	}
	return imoveis, nil
}

func (c *Client) GetImovel(ctx context.Context, id int) (*entity.Imovel, error) {
	var imovel entity.Imovel
	if err := c.do(ctx, http.MethodGet, pathf("/api/imoveis/id/%d", id), nil, "", &imovel); err != nil {
		return nil, err
	}
	return &imovel, nil
}

func (c *Client) GetImovelByCodigo(ctx context.Context, codigo string) (*entity.Imovel, error) {
	var imovel entity.Imovel
	if err := c.do(ctx, http.MethodGet, "/api/imoveis/"+url.PathEscape(codigo), nil, "", &imovel); err != nil {
		return nil, err
	}
	return &imovel, nil
}

func (c *Client) UpdateImovel(ctx context.Context, id int, form ImovelForm) (*entity.Imovel, error) {
	body, contentType, err := buildMultipart(form.Fields, "fotos", form.Fotos, "imagemCapa", form.ImagemCapa)
	if err != nil {
		return nil, err
	}

	var imovel entity.Imovel
	if err := c.do(ctx, http.MethodPut, pathf("/api/imoveis/%d", id), body, contentType, &imovel); err != nil {
		return nil, err
	}
	return &imovel, nil
}

func (c *Client) DeleteImovel(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, pathf("/api/imoveis/%d", id), nil, "", nil)
}
