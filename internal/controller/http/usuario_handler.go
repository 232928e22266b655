package http

import (
	"net/http"
	"strconv"

	"imovel-hub/internal/httperr"
	"imovel-hub/internal/usecase"
	"imovel-hub/internal/validation"

	"github.com/gin-gonic/gin"
)

type UsuarioHandler struct {
	usuarioUseCase usecase.UsuarioUseCase
}

func NewUsuarioHandler(usuarioUseCase usecase.UsuarioUseCase) *UsuarioHandler {
	return &UsuarioHandler{
		usuarioUseCase: usuarioUseCase,
	}
}

// Create godoc
// @Summary      Create a user
// @Tags         usuarios
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body validation.UsuarioCreateInput true "User data"
// @Success      201  {object}  entity.Usuario
// @Failure      400  {object}  httperr.Error
// @Failure      409  {object}  httperr.Error
// @Router       /usuarios [post]
func (h *UsuarioHandler) Create(c *gin.Context) {
	var in validation.UsuarioCreateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		httperr.Respond(c, httperr.BadRequest("Corpo da requisição inválido", ""))
		return
	}
	if details := validation.Validate(in); details != nil {
		httperr.Respond(c, httperr.Validation(details))
		return
	}

	usuario, err := h.usuarioUseCase.Create(&in)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, usuario)
}

// List godoc
// @Summary      List users
// @Tags         usuarios
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  entity.Usuario
// @Router       /usuarios [get]
func (h *UsuarioHandler) List(c *gin.Context) {
	usuarios, err := h.usuarioUseCase.List()
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, usuarios)
}

// GetByID godoc
// @Summary      Get a user by id
// @Tags         usuarios
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "User id"
// @Success      200  {object}  entity.Usuario
// @Failure      404  {object}  httperr.Error
// @Router       /usuarios/{id} [get]
func (h *UsuarioHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	usuario, err := h.usuarioUseCase.GetByID(id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, usuario)
}

// Update godoc
// @Summary      Update a user
// @Description  Partial update; an empty body is rejected
// @Tags         usuarios
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "User id"
// @Param        request body validation.UsuarioUpdateInput true "Fields to change"
// @Success      200  {object}  entity.Usuario
// @Failure      400  {object}  httperr.Error
// @Failure      404  {object}  httperr.Error
// @Router       /usuarios/{id} [put]
func (h *UsuarioHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var in validation.UsuarioUpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		httperr.Respond(c, httperr.BadRequest("Corpo da requisição inválido", ""))
		return
	}
	if details := validation.Validate(in); details != nil {
		httperr.Respond(c, httperr.Validation(details))
		return
	}

	usuario, err := h.usuarioUseCase.Update(id, &in)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, usuario)
}

// Delete godoc
// @Summary      Delete a user
// @Tags         usuarios
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "User id"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  httperr.Error
// @Router       /usuarios/{id} [delete]
func (h *UsuarioHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.usuarioUseCase.Delete(id); err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Usuário removido com sucesso"})
}

// pathID parses the :id segment, answering 400 itself on garbage.
func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		httperr.Respond(c, httperr.BadRequest("ID inválido", ""))
		return 0, false
	}
	return id, true
}
