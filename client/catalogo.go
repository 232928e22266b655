package client

import (
	"context"
	"net/http"
	"net/url"

	"imovel-hub/internal/entity"
)

// Name-only vocabulary resources.

func (c *Client) CreateTipo(ctx context.Context, nome string) (*entity.Tipo, error) {
	var tipo entity.Tipo
	err := c.do(ctx, http.MethodPost, "/api/tipo", jsonBody(map[string]string{"nome": nome}), "application/json", &tipo)
	if err != nil {
		return nil, err
	}
	return &tipo, nil
}

func (c *Client) ListTipos(ctx context.Context, nome string) ([]*entity.Tipo, error) {
	var tipos []*entity.Tipo
	if err := c.do(ctx, http.MethodGet, "/api/tipo"+nameQuery(nome), nil, "", &tipos); err != nil {
		return nil, err
	}
	return tipos, nil
}

func (c *Client) UpdateTipo(ctx context.Context, id int, nome string) (*entity.Tipo, error) {
	var tipo entity.Tipo
	err := c.do(ctx, http.MethodPut, pathf("/api/tipo/%d", id), jsonBody(map[string]string{"nome": nome}), "application/json", &tipo)
	if err != nil {
		return nil, err
	}
	return &tipo, nil
}

func (c *Client) DeleteTipo(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, pathf("/api/tipo/%d", id), nil, "", nil)
}

func (c *Client) CreateFinalidade(ctx context.Context, nome string) (*entity.Finalidade, error) {
	var finalidade entity.Finalidade
	err := c.do(ctx, http.MethodPost, "/api/finalidade", jsonBody(map[string]string{"nome": nome}), "application/json", &finalidade)
	if err != nil {
		return nil, err
	}
	return &finalidade, nil
}

func (c *Client) ListFinalidades(ctx context.Context, nome string) ([]*entity.Finalidade, error) {
	var finalidades []*entity.Finalidade
	if err := c.do(ctx, http.MethodGet, "/api/finalidade"+nameQuery(nome), nil, "", &finalidades); err != nil {
		return nil, err
	}
	return finalidades, nil
}

func (c *Client) UpdateFinalidade(ctx context.Context, id int, nome string) (*entity.Finalidade, error) {
	var finalidade entity.Finalidade
	err := c.do(ctx, http.MethodPut, pathf("/api/finalidade/%d", id), jsonBody(map[string]string{"nome": nome}), "application/json", &finalidade)
	if err != nil {
		return nil, err
	}
	return &finalidade, nil
}

func (c *Client) DeleteFinalidade(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, pathf("/api/finalidade/%d", id), nil, "", nil)
}

func (c *Client) CreateCategoria(ctx context.Context, nome string) (*entity.Categoria, error) {
	var categoria entity.Categoria
	err := c.do(ctx, http.MethodPost, "/api/categorias", jsonBody(map[string]string{"nome": nome}), "application/json", &categoria)
	if err != nil {
		return nil, err
	}
	return &categoria, nil
}

func (c *Client) ListCategorias(ctx context.Context, nome string) ([]*entity.Categoria, error) {
	var categorias []*entity.Categoria
	if err := c.do(ctx, http.MethodGet, "/api/categorias"+nameQuery(nome), nil, "", &categorias); err != nil {
		return nil, err
	}
	return categorias, nil
}

func (c *Client) UpdateCategoria(ctx context.Context, id int, nome string) (*entity.Categoria, error) {
	var categoria entity.Categoria
	err := c.do(ctx, http.MethodPut, pathf("/api/categorias/%d", id), jsonBody(map[string]string{"nome": nome}), "application/json", &categoria)
	if err != nil {
		return nil, err
	}
	return &categoria, nil
}

func (c *Client) DeleteCategoria(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, pathf("/api/categorias/%d", id), nil, "", nil)
}

func (c *Client) CreateBlogCategoria(ctx context.Context, nome string) (*entity.BlogCategoria, error) {
	var categoria entity.BlogCategoria
	err := c.do(ctx, http.MethodPost, "/api/blog-categorias", jsonBody(map[string]string{"nome": nome}), "application/json", &categoria)
	if err != nil {
		return nil, err
	}
	return &categoria, nil
}

func (c *Client) ListBlogCategorias(ctx context.Context) ([]*entity.BlogCategoria, error) {
	var categorias []*entity.BlogCategoria
	if err := c.do(ctx, http.MethodGet, "/api/blog-categorias", nil, "", &categorias); err != nil {
		return nil, err
	}
	return categorias, nil
}

func (c *Client) UpdateBlogCategoria(ctx context.Context, id int, nome string) (*entity.BlogCategoria, error) {
	var categoria entity.BlogCategoria
	err := c.do(ctx, http.MethodPut, pathf("/api/blog-categorias/%d", id), jsonBody(map[string]string{"nome": nome}), "application/json", &categoria)
	if err != nil {
		return nil, err
	}
	return &categoria, nil
}

func (c *Client) DeleteBlogCategoria(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, pathf("/api/blog-categorias/%d", id), nil, "", nil)
}

func nameQuery(nome string) string {
	if nome == "" {
		return ""
	}
	return "?nome=" + url.QueryEscape(nome)
}
