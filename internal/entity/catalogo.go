package entity

import "time"

// Controlled vocabularies. Each name is unique within its own table.

type Tipo struct {
	ID        int       `json:"id"`
	Nome      string    `json:"nome"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Finalidade struct {
	ID        int       `json:"id"`
	Nome      string    `json:"nome"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Categoria struct {
	ID        int       `json:"id"`
	Nome      string    `json:"nome"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type BlogCategoria struct {
	ID        int       `json:"id"`
	Nome      string    `json:"nome"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
