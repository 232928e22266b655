package persistent

import (
	"errors"

	"imovel-hub/internal/entity"
	"imovel-hub/internal/httperr"
	"imovel-hub/internal/model"

	"gorm.io/gorm"
)

type UsuarioRepository interface {
	Create(usuario *entity.Usuario) error
	List() ([]*entity.Usuario, error)
	GetByID(id int) (*entity.Usuario, error)
	GetByEmail(email string) (*entity.Usuario, error)
	Update(id int, updates map[string]interface{}) (*entity.Usuario, error)
	Delete(id int) error
}

type usuarioRepository struct {
	db *gorm.DB
}

func NewUsuarioRepository(db *gorm.DB) UsuarioRepository {
	return &usuarioRepository{db: db}
}

func (r *usuarioRepository) Create(usuario *entity.Usuario) error {
	var existing model.UsuarioModel
	if err := r.db.Where("email = ?", usuario.Email).First(&existing).Error; err == nil {
		return httperr.Conflict("Email já cadastrado")
	}

	m := ToUsuarioModel(usuario)
	m.ID = 0
	if err := r.db.Create(m).Error; err != nil {
		return err
	}
	*usuario = *ToUsuarioEntity(m)
	return nil
}

func (r *usuarioRepository) List() ([]*entity.Usuario, error) {
	var models []model.UsuarioModel
	if err := r.db.Order("name ASC").Find(&models).Error; err != nil {
		return nil, err
	}

	usuarios := make([]*entity.Usuario, len(models))
	for i := range models {
		usuarios[i] = ToUsuarioEntity(&models[i])
	}
	return usuarios, nil
}

func (r *usuarioRepository) GetByID(id int) (*entity.Usuario, error) {
	var m model.UsuarioModel
	if err := r.db.First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.NotFound("Usuário não encontrado")
		}
		return nil, err
	}
	return ToUsuarioEntity(&m), nil
}

func (r *usuarioRepository) GetByEmail(email string) (*entity.Usuario, error) {
	var m model.UsuarioModel
	if err := r.db.Where("email = ?", email).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.NotFound("Usuário não encontrado")
		}
		return nil, err
	}
	return ToUsuarioEntity(&m), nil
}

func (r *usuarioRepository) Update(id int, updates map[string]interface{}) (*entity.Usuario, error) {
	var m model.UsuarioModel
	if err := r.db.First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.NotFound("Usuário não encontrado")
		}
		return nil, err
	}

	if err := r.db.Model(&m).Updates(updates).Error; err != nil {
		return nil, err
	}
	return ToUsuarioEntity(&m), nil
}

func (r *usuarioRepository) Delete(id int) error {
	result := r.db.Delete(&model.UsuarioModel{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return httperr.NotFound("Usuário não encontrado")
	}
	return nil
}
