package http

import (
	"net/http"

	"imovel-hub/internal/entity"
	"imovel-hub/internal/httperr"
	"imovel-hub/internal/usecase"
	"imovel-hub/internal/validation"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUseCase usecase.AuthUseCase
}

func NewAuthHandler(authUseCase usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
	}
}

type LoginResponse struct {
	Message      string          `json:"message"`
	AccessToken  string          `json:"accessToken"`
	RefreshToken string          `json:"refreshToken"`
	User         *entity.Usuario `json:"user"`
}

type RefreshResponse struct {
	AccessToken string `json:"accessToken"`
}

// Login godoc
// @Summary      Authenticate a user
// @Description  Validates credentials and returns access and refresh tokens
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body validation.LoginInput true "Credentials"
// @Success      200  {object}  LoginResponse
// @Failure      400  {object}  httperr.Error
// @Failure      401  {object}  httperr.Error
// @Router       /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var in validation.LoginInput
	if err := c.ShouldBindJSON(&in); err != nil {
		httperr.Respond(c, httperr.BadRequest("Corpo da requisição inválido", ""))
		return
	}
	if details := validation.Validate(in); details != nil {
		httperr.Respond(c, httperr.Validation(details))
		return
	}

	usuario, access, refresh, err := h.authUseCase.Login(in.Email, in.Password)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Message:      "Login realizado com sucesso",
		AccessToken:  access,
		RefreshToken: refresh,
		User:         usuario,
	})
}

// Refresh godoc
// @Summary      Refresh the access token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body validation.RefreshInput true "Refresh token"
// @Success      200  {object}  RefreshResponse
// @Failure      401  {object}  httperr.Error
// @Router       /refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var in validation.RefreshInput
	if err := c.ShouldBindJSON(&in); err != nil {
		httperr.Respond(c, httperr.BadRequest("Corpo da requisição inválido", ""))
		return
	}
	if details := validation.Validate(in); details != nil {
		httperr.Respond(c, httperr.Validation(details))
		return
	}

	access, err := h.authUseCase.Refresh(in.RefreshToken)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, RefreshResponse{AccessToken: access})
}
