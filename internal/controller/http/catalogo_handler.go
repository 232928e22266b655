package http

import (
	"net/http"

	"imovel-hub/internal/httperr"
	"imovel-hub/internal/usecase"
	"imovel-hub/internal/validation"

	"github.com/gin-gonic/gin"
)

// Handlers for the name-only vocabularies. They share the CatalogoInput
// schema and differ only in which usecase they call.

type TipoHandler struct {
	tipoUseCase usecase.TipoUseCase
}

func NewTipoHandler(tipoUseCase usecase.TipoUseCase) *TipoHandler {
	return &TipoHandler{tipoUseCase: tipoUseCase}
}

// Create godoc
// @Summary      Create a property type
// @Tags         tipo
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body validation.CatalogoInput true "Type name"
// @Success      201  {object}  entity.Tipo
// @Failure      409  {object}  httperr.Error
// @Router       /tipo [post]
func (h *TipoHandler) Create(c *gin.Context) {
	nome, ok := bindCatalogo(c)
	if !ok {
		return
	}

	tipo, err := h.tipoUseCase.Create(nome)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, tipo)
}

// List godoc
// @Summary      List property types
// @Tags         tipo
// @Produce      json
// @Param        nome query string false "Name filter (contains)"
// @Success      200  {array}  entity.Tipo
// @Router       /tipo [get]
func (h *TipoHandler) List(c *gin.Context) {
	tipos, err := h.tipoUseCase.List(c.Query("nome"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, tipos)
}

func (h *TipoHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	nome, ok := bindCatalogo(c)
	if !ok {
		return
	}

	tipo, err := h.tipoUseCase.Update(id, nome)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, tipo)
}

func (h *TipoHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.tipoUseCase.Delete(id); err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Tipo removido com sucesso"})
}

type FinalidadeHandler struct {
	finalidadeUseCase usecase.FinalidadeUseCase
}

func NewFinalidadeHandler(finalidadeUseCase usecase.FinalidadeUseCase) *FinalidadeHandler {
	return &FinalidadeHandler{finalidadeUseCase: finalidadeUseCase}
}

func (h *FinalidadeHandler) Create(c *gin.Context) {
	nome, ok := bindCatalogo(c)
	if !ok {
		return
	}

	finalidade, err := h.finalidadeUseCase.Create(nome)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, finalidade)
}

func (h *FinalidadeHandler) List(c *gin.Context) {
	finalidades, err := h.finalidadeUseCase.List(c.Query("nome"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, finalidades)
}

func (h *FinalidadeHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	nome, ok := bindCatalogo(c)
	if !ok {
		return
	}

	finalidade, err := h.finalidadeUseCase.Update(id, nome)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, finalidade)
}

func (h *FinalidadeHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.finalidadeUseCase.Delete(id); err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Finalidade removida com sucesso"})
}

type CategoriaHandler struct {
	categoriaUseCase usecase.CategoriaUseCase
}

func NewCategoriaHandler(categoriaUseCase usecase.CategoriaUseCase) *CategoriaHandler {
	return &CategoriaHandler{categoriaUseCase: categoriaUseCase}
}

func (h *CategoriaHandler) Create(c *gin.Context) {
	nome, ok := bindCatalogo(c)
	if !ok {
		return
	}

	categoria, err := h.categoriaUseCase.Create(nome)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, categoria)
}

func (h *CategoriaHandler) List(c *gin.Context) {
	categorias, err := h.categoriaUseCase.List(c.Query("nome"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, categorias)
}

func (h *CategoriaHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	nome, ok := bindCatalogo(c)
	if !ok {
		return
	}

	categoria, err := h.categoriaUseCase.Update(id, nome)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, categoria)
}

func (h *CategoriaHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.categoriaUseCase.Delete(id); err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Categoria removida com sucesso"})
}

type BlogCategoriaHandler struct {
	blogCategoriaUseCase usecase.BlogCategoriaUseCase
}

func NewBlogCategoriaHandler(blogCategoriaUseCase usecase.BlogCategoriaUseCase) *BlogCategoriaHandler {
	return &BlogCategoriaHandler{blogCategoriaUseCase: blogCategoriaUseCase}
}

func (h *BlogCategoriaHandler) Create(c *gin.Context) {
	nome, ok := bindCatalogo(c)
	if !ok {
		return
	}

	categoria, err := h.blogCategoriaUseCase.Create(nome)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, categoria)
}

func (h *BlogCategoriaHandler) List(c *gin.Context) {
	categorias, err := h.blogCategoriaUseCase.List()
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, categorias)
}

func (h *BlogCategoriaHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	nome, ok := bindCatalogo(c)
	if !ok {
		return
	}

	categoria, err := h.blogCategoriaUseCase.Update(id, nome)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, categoria)
}

func (h *BlogCategoriaHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.blogCategoriaUseCase.Delete(id); err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Categoria removida com sucesso"})
}

func bindCatalogo(c *gin.Context) (string, bool) {
	var in validation.CatalogoInput
	if err := c.ShouldBindJSON(&in); err != nil {
		httperr.Respond(c, httperr.BadRequest("Corpo da requisição inválido", ""))
		return "", false
	}
	if details := validation.Validate(in); details != nil {
		httperr.Respond(c, httperr.Validation(details))
		return "", false
	}
	return in.Nome, true
}
