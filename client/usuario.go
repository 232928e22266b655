package client

import (
	"context"
	"net/http"

	"imovel-hub/internal/entity"
)

type UsuarioCreate struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UsuarioUpdate is a partial update; nil fields are omitted entirely.
type UsuarioUpdate struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`
}

func (c *Client) CreateUsuario(ctx context.Context, in UsuarioCreate) (*entity.Usuario, error) {
	var usuario entity.Usuario
	if err := c.do(ctx, http.MethodPost, "/api/usuarios", jsonBody(in), "application/json", &usuario); err != nil {
		return nil, err
	}
	return &usuario, nil
}

func (c *Client) ListUsuarios(ctx context.Context) ([]*entity.Usuario, error) {
	var usuarios []*entity.Usuario
	if err := c.do(ctx, http.MethodGet, "/api/usuarios", nil, "", &usuarios); err != nil {
		return nil, err
	}
	return usuarios, nil
}

func (c *Client) GetUsuario(ctx context.Context, id int) (*entity.Usuario, error) {
	var usuario entity.Usuario
	if err := c.do(ctx, http.MethodGet, pathf("/api/usuarios/%d", id), nil, "", &usuario); err != nil {
		return nil, err
	}
	return &usuario, nil
}

func (c *Client) UpdateUsuario(ctx context.Context, id int, in UsuarioUpdate) (*entity.Usuario, error) {
	var usuario entity.Usuario
	if err := c.do(ctx, http.MethodPut, pathf("/api/usuarios/%d", id), jsonBody(in), "application/json", &usuario); err != nil {
		return nil, err
	}
	return &usuario, nil
}

func (c *Client) DeleteUsuario(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, pathf("/api/usuarios/%d", id), nil, "", nil)
}
