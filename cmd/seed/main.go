package main

import (
	"log"

	"imovel-hub/internal/model"
	"imovel-hub/pkg/config"
	"imovel-hub/pkg/database"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seeds the admin user and the base vocabularies. Safe to run more than
// once; existing rows are left alone.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.AdminPassword == "" {
		log.Fatal("ADMIN_PASSWORD must be set to seed the admin user")
	}

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seedAdmin(db, cfg); err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}
	if err := seedVocabularies(db); err != nil {
		log.Fatalf("Failed to seed vocabularies: %v", err)
	}

	log.Println("Seed completed")
}

func seedAdmin(db *gorm.DB, cfg *config.Config) error {
	var count int64
	if err := db.Model(&model.UsuarioModel{}).Where("email = ?", cfg.AdminEmail).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Printf("Admin user %s already exists, skipping", cfg.AdminEmail)
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return db.Create(&model.UsuarioModel{
		Name:     cfg.AdminName,
		Email:    cfg.AdminEmail,
		Password: string(hashed),
	}).Error
}

func seedVocabularies(db *gorm.DB) error {
	tipos := []string{"Casa", "Apartamento", "Terreno", "Sala Comercial", "Galpão"}
	for _, nome := range tipos {
		if err := firstOrCreateNome(db, &model.TipoModel{Nome: nome}, nome); err != nil {
			return err
		}
	}

	finalidades := []string{"Venda", "Locação"}
	for _, nome := range finalidades {
		if err := firstOrCreateNome(db, &model.FinalidadeModel{Nome: nome}, nome); err != nil {
			return err
		}
	}

	categorias := []string{"Lançamento", "Pronto para morar"}
	for _, nome := range categorias {
		if err := firstOrCreateNome(db, &model.CategoriaModel{Nome: nome}, nome); err != nil {
			return err
		}
	}

	blogCategorias := []string{"Mercado", "Dicas", "Notícias"}
	for _, nome := range blogCategorias {
		if err := firstOrCreateNome(db, &model.BlogCategoriaModel{Nome: nome}, nome); err != nil {
			return err
		}
	}

	return nil
}

func firstOrCreateNome(db *gorm.DB, m any, nome string) error {
	return db.Where("nome = ?", nome).FirstOrCreate(m).Error
}
