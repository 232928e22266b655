package usecase

import (
	"imovel-hub/internal/entity"
	"imovel-hub/internal/httperr"
	"imovel-hub/internal/repo/persistent"
	"imovel-hub/internal/validation"
	"imovel-hub/pkg/logger"

	"golang.org/x/crypto/bcrypt"
)

type UsuarioUseCase interface {
	Create(in *validation.UsuarioCreateInput) (*entity.Usuario, error)
	List() ([]*entity.Usuario, error)
	GetByID(id int) (*entity.Usuario, error)
	Update(id int, in *validation.UsuarioUpdateInput) (*entity.Usuario, error)
	Delete(id int) error
}

type usuarioUseCase struct {
	usuarioRepo persistent.UsuarioRepository
	logger      *logger.Logger
}

func NewUsuarioUseCase(usuarioRepo persistent.UsuarioRepository, logger *logger.Logger) UsuarioUseCase {
	return &usuarioUseCase{usuarioRepo: usuarioRepo, logger: logger}
}

func (uc *usuarioUseCase) Create(in *validation.UsuarioCreateInput) (*entity.Usuario, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		uc.logger.Error("Failed to hash password: %v", err)
		return nil, httperr.Internal("Erro ao processar senha")
	}

	usuario := &entity.Usuario{
		Name:     in.Name,
		Email:    in.Email,
		Password: string(hashed),
	}
	if err := uc.usuarioRepo.Create(usuario); err != nil {
		return nil, err
	}
	return usuario, nil
}

func (uc *usuarioUseCase) List() ([]*entity.Usuario, error) {
	return uc.usuarioRepo.List()
}

func (uc *usuarioUseCase) GetByID(id int) (*entity.Usuario, error) {
	return uc.usuarioRepo.GetByID(id)
}

func (uc *usuarioUseCase) Update(id int, in *validation.UsuarioUpdateInput) (*entity.Usuario, error) {
	if in.Empty() {
		return nil, httperr.Validation([]httperr.FieldError{
			{Field: "body", Message: "Nenhum campo para atualizar"},
		})
	}

	updates := map[string]interface{}{}
	if in.Name != nil {
		updates["name"] = *in.Name
	}
	if in.Email != nil {
		// Keeping one's own email is fine; taking another account's is not.
		if existing, err := uc.usuarioRepo.GetByEmail(*in.Email); err == nil && existing.ID != id {
			return nil, httperr.Conflict("Email já cadastrado")
		}
		updates["email"] = *in.Email
	}
	if in.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			uc.logger.Error("Failed to hash password: %v", err)
			return nil, httperr.Internal("Erro ao processar senha")
		}
		updates["password"] = string(hashed)
	}

	return uc.usuarioRepo.Update(id, updates)
}

func (uc *usuarioUseCase) Delete(id int) error {
	return uc.usuarioRepo.Delete(id)
}
