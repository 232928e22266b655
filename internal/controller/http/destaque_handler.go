package http

import (
	"net/http"

	"imovel-hub/internal/httperr"
	"imovel-hub/internal/usecase"
	"imovel-hub/internal/validation"

	"github.com/gin-gonic/gin"
)

type DestaqueHandler struct {
	destaqueUseCase usecase.DestaqueUseCase
}

func NewDestaqueHandler(destaqueUseCase usecase.DestaqueUseCase) *DestaqueHandler {
	return &DestaqueHandler{
		destaqueUseCase: destaqueUseCase,
	}
}

// Create godoc
// @Summary      Create a highlight card
// @Description  Multipart form; the image is mandatory
// @Tags         destaques
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Success      201  {object}  entity.Destaque
// @Failure      400  {object}  httperr.Error
// @Router       /destaques [post]
func (h *DestaqueHandler) Create(c *gin.Context) {
	values, _, imagem, ok := multipartMedia(c, "", "imagem")
	if !ok {
		return
	}

	in, err := validation.ParseDestaqueCreate(values)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	destaque, err := h.destaqueUseCase.Create(in, imagem)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, destaque)
}

// ListPublic godoc
// @Summary      List active highlights in display order
// @Tags         destaques
// @Produce      json
// @Success      200  {array}  entity.Destaque
// @Router       /destaques [get]
func (h *DestaqueHandler) ListPublic(c *gin.Context) {
	destaques, err := h.destaqueUseCase.ListPublic()
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, destaques)
}

// ListAdmin godoc
// @Summary      List all highlights, inactive included
// @Tags         destaques
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  entity.Destaque
// @Router       /destaques/admin [get]
func (h *DestaqueHandler) ListAdmin(c *gin.Context) {
	destaques, err := h.destaqueUseCase.ListAdmin()
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, destaques)
}

func (h *DestaqueHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	destaque, err := h.destaqueUseCase.GetByID(id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, destaque)
}

// Update godoc
// @Summary      Update a highlight card
// @Description  Partial multipart update; the image is only replaced when a new file is sent
// @Tags         destaques
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Highlight id"
// @Success      200  {object}  entity.Destaque
// @Failure      404  {object}  httperr.Error
// @Router       /destaques/{id} [put]
func (h *DestaqueHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	values, _, imagem, ok := multipartMedia(c, "", "imagem")
	if !ok {
		return
	}

	in, err := validation.ParseDestaqueUpdate(values)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	destaque, err := h.destaqueUseCase.Update(id, in, imagem)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, destaque)
}

func (h *DestaqueHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.destaqueUseCase.Delete(id); err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Destaque removido com sucesso"})
}
