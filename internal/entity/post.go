package entity

import "time"

type PostStatus string

const (
	StatusRascunho  PostStatus = "RASCUNHO"
	StatusPublicado PostStatus = "PUBLICADO"
)

type Post struct {
	ID             int            `json:"id"`
	Titulo         string         `json:"titulo"`
	Slug           string         `json:"slug"`
	Chamada        string         `json:"chamada,omitempty"`
	Conteudo       string         `json:"conteudo"`
	ImagemCapa     string         `json:"imagemCapa,omitempty"`
	DataPublicacao *time.Time     `json:"dataPublicacao,omitempty"`
	Status         PostStatus     `json:"status"`
	CategoriaID    int            `json:"categoriaId"`
	Categoria      *BlogCategoria `json:"categoria,omitempty"`
	ImovelID       *int           `json:"imovelId,omitempty"`
	Imovel         *PostImovel    `json:"imovel,omitempty"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}

// PostImovel is the projection of the linked property carried by posts.
type PostImovel struct {
	ID     int    `json:"id"`
	Titulo string `json:"titulo"`
	Codigo string `json:"codigo"`
}
