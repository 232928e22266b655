package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"imovel-hub/internal/entity"
)

// PostForm carries the multipart payload of a blog post create or
// update. Set imovelId to "0" in Fields to unlink the property.
type PostForm struct {
	Fields     url.Values
	ImagemCapa *MediaFile
}

type PostListFilter struct {
	Status      string
	CategoriaID int
	ImovelID    int
}

func (f PostListFilter) query() string {
	q := url.Values{}
	if f.Status != "" {
		q.Set("status", f.Status)
	}
	if f.CategoriaID != 0 {
		q.Set("categoriaId", strconv.Itoa(f.CategoriaID))
	}
	if f.ImovelID != 0 {
		q.Set("imovelId", strconv.Itoa(f.ImovelID))
	}
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}

func (c *Client) CreatePost(ctx context.Context, form PostForm) (*entity.Post, error) {
	body, contentType, err := buildMultipart(form.Fields, "", nil, "imagemCapa", form.ImagemCapa)
	if err != nil {
		return nil, err
	}

	var post entity.Post
	if err := c.do(ctx, http.MethodPost, "/api/posts", body, contentType, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (c *Client) ListPosts(ctx context.Context, filter PostListFilter) ([]*entity.Post, error) {
	var posts []*entity.Post
	if err := c.do(ctx, http.MethodGet, "/api/posts"+filter.query(), nil, "", &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (c *Client) GetPost(ctx context.Context, id int) (*entity.Post, error) {
	var post entity.Post
	if err := c.do(ctx, http.MethodGet, pathf("/api/posts/id/%d", id), nil, "", &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (c *Client) GetPostBySlug(ctx context.Context, slug string) (*entity.Post, error) {
	var post entity.Post
	if err := c.do(ctx, http.MethodGet, "/api/posts/"+url.PathEscape(slug), nil, "", &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (c *Client) UpdatePost(ctx context.Context, id int, form PostForm) (*entity.Post, error) {
	body, contentType, err := buildMultipart(form.Fields, "", nil, "imagemCapa", form.ImagemCapa)
	if err != nil {
		return nil, err
	}

	var post entity.Post
	if err := c.do(ctx, http.MethodPut, pathf("/api/posts/%d", id), body, contentType, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (c *Client) DeletePost(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, pathf("/api/posts/%d", id), nil, "", nil)
}
