package model

import "time"

type TipoModel struct {
	ID        int    `gorm:"primaryKey;autoIncrement"`
	Nome      string `gorm:"type:varchar(100);uniqueIndex;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (TipoModel) TableName() string {
	return "tipos"
}

type FinalidadeModel struct {
	ID        int    `gorm:"primaryKey;autoIncrement"`
	Nome      string `gorm:"type:varchar(100);uniqueIndex;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (FinalidadeModel) TableName() string {
	return "finalidades"
}

type CategoriaModel struct {
	ID        int    `gorm:"primaryKey;autoIncrement"`
	Nome      string `gorm:"type:varchar(100);uniqueIndex;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (CategoriaModel) TableName() string {
	return "categorias"
}

type BlogCategoriaModel struct {
	ID        int    `gorm:"primaryKey;autoIncrement"`
	Nome      string `gorm:"type:varchar(100);uniqueIndex;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (BlogCategoriaModel) TableName() string {
	return "blog_categorias"
}
