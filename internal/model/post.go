package model

import "time"

type PostModel struct {
	ID             int        `gorm:"primaryKey;autoIncrement"`
	Titulo         string     `gorm:"type:varchar(255);not null"`
	Slug           string     `gorm:"type:varchar(255);uniqueIndex;not null"`
	Chamada        string     `gorm:"type:text"`
	Conteudo       string     `gorm:"type:text;not null"`
	ImagemCapa     string     `gorm:"type:varchar(500)"`
	DataPublicacao *time.Time `gorm:"index"`
	Status         string     `gorm:"type:varchar(20);default:'RASCUNHO';index"`
	CategoriaID    int        `gorm:"index;not null"`
	ImovelID       *int       `gorm:"index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Categoria BlogCategoriaModel `gorm:"foreignKey:CategoriaID"`
	Imovel    *ImovelModel       `gorm:"foreignKey:ImovelID"`
}

func (PostModel) TableName() string {
	return "posts"
}
