package entity

import "time"

// Destaque is a promotional carousel entry shown on the public homepage.
type Destaque struct {
	ID         int       `json:"id"`
	Titulo     string    `json:"titulo"`
	Descricao  string    `json:"descricao"`
	Imagem     string    `json:"imagem"`
	Valor      *float64  `json:"valor,omitempty"`
	Area       *int      `json:"area,omitempty"`
	Quartos    *int      `json:"quartos,omitempty"`
	Banheiros  *int      `json:"banheiros,omitempty"`
	Garagem    *int      `json:"garagem,omitempty"`
	TextoBotao string    `json:"textoBotao"`
	Link       string    `json:"link"`
	Ativo      bool      `json:"ativo"`
	Ordem      int       `json:"ordem"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
