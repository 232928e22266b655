package usecase

import (
	"imovel-hub/internal/entity"
	"imovel-hub/internal/httperr"
	"imovel-hub/internal/repo/persistent"
	"imovel-hub/pkg/jwt"
	"imovel-hub/pkg/logger"

	"golang.org/x/crypto/bcrypt"
)

type AuthUseCase interface {
	Login(email, password string) (*entity.Usuario, string, string, error)
	Refresh(refreshToken string) (string, error)
}

type authUseCase struct {
	usuarioRepo persistent.UsuarioRepository
	jwtService  *jwt.Service
	logger      *logger.Logger
}

func NewAuthUseCase(
	usuarioRepo persistent.UsuarioRepository,
	jwtService *jwt.Service,
	logger *logger.Logger,
) AuthUseCase {
	return &authUseCase{
		usuarioRepo: usuarioRepo,
		jwtService:  jwtService,
		logger:      logger,
	}
}

// Login returns the user plus an access and a refresh token. Unknown
// email and wrong password are indistinguishable on purpose.
func (uc *authUseCase) Login(email, password string) (*entity.Usuario, string, string, error) {
	usuario, err := uc.usuarioRepo.GetByEmail(email)
	if err != nil {
		return nil, "", "", httperr.Unauthorized("Email ou senha inválidos")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usuario.Password), []byte(password)); err != nil {
		return nil, "", "", httperr.Unauthorized("Email ou senha inválidos")
	}

	accessToken, err := uc.jwtService.GenerateAccessToken(usuario.ID, usuario.Email, usuario.Name)
	if err != nil {
		uc.logger.Error("Failed to generate access token: %v", err)
		return nil, "", "", httperr.Internal("Erro ao gerar token de acesso")
	}

	refreshToken, err := uc.jwtService.GenerateRefreshToken(usuario.ID, usuario.Email, usuario.Name)
	if err != nil {
		uc.logger.Error("Failed to generate refresh token: %v", err)
		return nil, "", "", httperr.Internal("Erro ao gerar token de acesso")
	}

	return usuario, accessToken, refreshToken, nil
}

// Refresh mints a new access token. The refresh token itself is not
// rotated; it stays valid until its own expiry.
func (uc *authUseCase) Refresh(refreshToken string) (string, error) {
	claims, err := uc.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return "", httperr.Unauthorized("Refresh token inválido ou expirado")
	}

	usuario, err := uc.usuarioRepo.GetByID(claims.UserID)
	if err != nil {
		return "", httperr.Unauthorized("Refresh token inválido ou expirado")
	}

	accessToken, err := uc.jwtService.GenerateAccessToken(usuario.ID, usuario.Email, usuario.Name)
	if err != nil {
		uc.logger.Error("Failed to generate access token: %v", err)
		return "", httperr.Internal("Erro ao gerar token de acesso")
	}
	return accessToken, nil
}
