package http

import (
	"mime/multipart"
	"net/http"
	"net/url"

	"imovel-hub/internal/httperr"
	"imovel-hub/internal/repo/persistent"
	"imovel-hub/internal/usecase"
	"imovel-hub/internal/validation"

	"github.com/gin-gonic/gin"
)

type ImovelHandler struct {
	imovelUseCase usecase.ImovelUseCase
}

func NewImovelHandler(imovelUseCase usecase.ImovelUseCase) *ImovelHandler {
	return &ImovelHandler{
		imovelUseCase: imovelUseCase,
	}
}

// Create godoc
// @Summary      Create a property
// @Description  Multipart form with up to 18 gallery photos and one cover image
// @Tags         imoveis
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Success      201  {object}  entity.Imovel
// @Failure      400  {object}  httperr.Error
// @Failure      409  {object}  httperr.Error
// @Router       /imoveis [post]
func (h *ImovelHandler) Create(c *gin.Context) {
	values, fotos, capa, ok := multipartMedia(c, "fotos", "imagemCapa")
	if !ok {
		return
	}

	in, err := validation.ParseImovelCreate(values)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	imovel, err := h.imovelUseCase.Create(in, fotos, capa)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, imovel)
}

// List godoc
// @Summary      List properties
// @Tags         imoveis
// @Produce      json
// @Param        codigo     query string false "Exact code"
// @Param        cidade     query string false "Exact city"
// @Param        tipo       query string false "Any linked type with this name"
// @Param        finalidade query string false "Any linked purpose with this name"
// @Success      200  {array}  entity.Imovel
// @Router       /imoveis [get]
func (h *ImovelHandler) List(c *gin.Context) {
	imoveis, err := h.imovelUseCase.List(persistent.ImovelFilter{
		Codigo:     c.Query("codigo"),
		Cidade:     c.Query("cidade"),
		Tipo:       c.Query("tipo"),
		Finalidade: c.Query("finalidade"),
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, imoveis)
}

// GetByID godoc
// @Summary      Get a property by numeric id
// @Tags         imoveis
// @Produce      json
// @Param        id path int true "Property id"
// @Success      200  {object}  entity.Imovel
// @Failure      404  {object}  httperr.Error
// @Router       /imoveis/id/{id} [get]
func (h *ImovelHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	imovel, err := h.imovelUseCase.GetByID(id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, imovel)
}

// GetByCodigo godoc
// @Summary      Get a property by its external code
// @Tags         imoveis
// @Produce      json
// @Param        codigo path string true "Property code"
// @Success      200  {object}  entity.Imovel
// @Failure      404  {object}  httperr.Error
// @Router       /imoveis/{codigo} [get]
func (h *ImovelHandler) GetByCodigo(c *gin.Context) {
	imovel, err := h.imovelUseCase.GetByCodigo(c.Param("codigo"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, imovel)
}

// Update godoc
// @Summary      Update a property
// @Description  Partial multipart update; the photo set is always rewritten from oldPhotos plus new uploads
// @Tags         imoveis
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Property id"
// @Success      200  {object}  entity.Imovel
// @Failure      400  {object}  httperr.Error
// @Failure      404  {object}  httperr.Error
// @Router       /imoveis/{id} [put]
func (h *ImovelHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	values, fotos, capa, ok := multipartMedia(c, "fotos", "imagemCapa")
	if !ok {
		return
	}

	in, err := validation.ParseImovelUpdate(values)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	imovel, err := h.imovelUseCase.Update(id, in, fotos, capa)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, imovel)
}

// Delete godoc
// @Summary      Delete a property
// @Tags         imoveis
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Property id"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  httperr.Error
// @Router       /imoveis/{id} [delete]
func (h *ImovelHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.imovelUseCase.Delete(id); err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Imóvel removido com sucesso"})
}

// multipartMedia parses the request form and splits out the gallery and
// single-file fields. Answers 400 itself when the body is not multipart
// or when a single-file field carries more than one file.
func multipartMedia(c *gin.Context, galleryField, singleField string) (url.Values, []*multipart.FileHeader, *multipart.FileHeader, bool) {
	form, err := c.MultipartForm()
	if err != nil {
		httperr.Respond(c, httperr.BadRequest("Requisição deve ser multipart/form-data", ""))
		return nil, nil, nil, false
	}

	values := url.Values(form.Value)
	gallery := form.File[galleryField]

	var single *multipart.FileHeader
	if files := form.File[singleField]; len(files) > 0 {
		if len(files) > 1 {
			httperr.Respond(c, httperr.BadRequest("Apenas um arquivo é permitido no campo "+singleField, ""))
			return nil, nil, nil, false
		}
		single = files[0]
	}
	return values, gallery, single, true
}
