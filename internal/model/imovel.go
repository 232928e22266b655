package model

import (
	"time"

	"gorm.io/datatypes"
)

type ImovelModel struct {
	ID             int                          `gorm:"primaryKey;autoIncrement"`
	Titulo         string                       `gorm:"type:varchar(255);not null"`
	Codigo         string                       `gorm:"type:varchar(50);uniqueIndex;not null"`
	DescricaoCurta string                       `gorm:"type:text"`
	DescricaoLonga string                       `gorm:"type:text"`
	Fotos          datatypes.JSONSlice[string]  `gorm:"type:jsonb"`
	ImagemCapa     string                       `gorm:"type:varchar(500)"`
	Valor          *float64                     `gorm:"type:decimal(14,2)"`
	ValorPromo     *float64                     `gorm:"type:decimal(14,2)"`
	Cep            string                       `gorm:"type:varchar(9)"`
	Endereco       string                       `gorm:"type:varchar(255)"`
	Bairro         string                       `gorm:"type:varchar(100)"`
	Cidade         string                       `gorm:"type:varchar(100);index"`
	Estado         string                       `gorm:"type:varchar(2)"`
	Latitude       *float64                     `gorm:"type:decimal(10,7)"`
	Longitude      *float64                     `gorm:"type:decimal(10,7)"`
	Suites         *int
	Dormitorios    *int
	Banheiros      *int
	Garagem        *bool
	Geminada       *bool
	TerrenoMedidas string   `gorm:"type:varchar(100)"`
	TerrenoM2      *float64 `gorm:"type:decimal(12,2)"`
	AreaConstruida *float64 `gorm:"type:decimal(12,2)"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Tipo       []ImovelTipoModel       `gorm:"foreignKey:ImovelID"`
	Finalidade []ImovelFinalidadeModel `gorm:"foreignKey:ImovelID"`
	Categorias []ImovelCategoriaModel  `gorm:"foreignKey:ImovelID"`
}

func (ImovelModel) TableName() string {
	return "imoveis"
}

type ImovelTipoModel struct {
	ID       int `gorm:"primaryKey;autoIncrement"`
	ImovelID int `gorm:"index;not null"`
	TipoID   int `gorm:"index;not null"`

	Tipo TipoModel `gorm:"foreignKey:TipoID"`
}

func (ImovelTipoModel) TableName() string {
	return "imovel_tipos"
}

type ImovelFinalidadeModel struct {
	ID           int `gorm:"primaryKey;autoIncrement"`
	ImovelID     int `gorm:"index;not null"`
	FinalidadeID int `gorm:"index;not null"`

	Finalidade FinalidadeModel `gorm:"foreignKey:FinalidadeID"`
}

func (ImovelFinalidadeModel) TableName() string {
	return "imovel_finalidades"
}

type ImovelCategoriaModel struct {
	ID          int `gorm:"primaryKey;autoIncrement"`
	ImovelID    int `gorm:"index;not null"`
	CategoriaID int `gorm:"index;not null"`

	Categoria CategoriaModel `gorm:"foreignKey:CategoriaID"`
}

func (ImovelCategoriaModel) TableName() string {
	return "imovel_categorias"
}
