package entity

import "time"

type Imovel struct {
	ID             int       `json:"id"`
	Titulo         string    `json:"titulo"`
	Codigo         string    `json:"codigo"`
	DescricaoCurta string    `json:"descricaoCurta,omitempty"`
	DescricaoLonga string    `json:"descricaoLonga,omitempty"`
	Fotos          []string  `json:"fotos"`
	ImagemCapa     string    `json:"imagemCapa,omitempty"`
	Valor          *float64  `json:"valor,omitempty"`
	ValorPromo     *float64  `json:"valorPromo,omitempty"`
	Cep            string    `json:"cep,omitempty"`
	Endereco       string    `json:"endereco,omitempty"`
	Bairro         string    `json:"bairro,omitempty"`
	Cidade         string    `json:"cidade,omitempty"`
	Estado         string    `json:"estado,omitempty"`
	Latitude       *float64  `json:"latitude,omitempty"`
	Longitude      *float64  `json:"longitude,omitempty"`
	Suites         *int      `json:"suites,omitempty"`
	Dormitorios    *int      `json:"dormitorios,omitempty"`
	Banheiros      *int      `json:"banheiros,omitempty"`
	Garagem        *bool     `json:"garagem,omitempty"`
	Geminada       *bool     `json:"geminada,omitempty"`
	TerrenoMedidas string    `json:"terrenoMedidas,omitempty"`
	TerrenoM2      *float64  `json:"terrenoM2,omitempty"`
	AreaConstruida *float64  `json:"areaConstruida,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`

	Tipo       []ImovelTipo       `json:"tipo"`
	Finalidade []ImovelFinalidade `json:"finalidade"`
	Categorias []ImovelCategoria  `json:"categorias,omitempty"`
}

// Join records. Classification updates replace the whole set
// (delete-all-then-recreate), they never merge.

type ImovelTipo struct {
	ID     int   `json:"id"`
	TipoID int   `json:"tipoId"`
	Tipo   *Tipo `json:"tipo,omitempty"`
}

type ImovelFinalidade struct {
	ID           int         `json:"id"`
	FinalidadeID int         `json:"finalidadeId"`
	Finalidade   *Finalidade `json:"finalidade,omitempty"`
}

type ImovelCategoria struct {
	ID          int        `json:"id"`
	CategoriaID int        `json:"categoriaId"`
	Categoria   *Categoria `json:"categoria,omitempty"`
}
