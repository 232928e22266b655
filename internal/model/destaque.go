package model

import "time"

type DestaqueModel struct {
	ID         int      `gorm:"primaryKey;autoIncrement"`
	Titulo     string   `gorm:"type:varchar(255);not null"`
	Descricao  string   `gorm:"type:text;not null"`
	Imagem     string   `gorm:"type:varchar(500);not null"`
	Valor      *float64 `gorm:"type:decimal(14,2)"`
	Area       *int
	Quartos    *int
	Banheiros  *int
	Garagem    *int
	TextoBotao string `gorm:"type:varchar(100);not null"`
	Link       string `gorm:"type:varchar(500);not null"`
	Ativo      bool   `gorm:"default:true;index"`
	Ordem      int    `gorm:"default:0;index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (DestaqueModel) TableName() string {
	return "destaques"
}
