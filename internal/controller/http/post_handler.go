package http

import (
	"net/http"
	"strconv"

	"imovel-hub/internal/httperr"
	"imovel-hub/internal/repo/persistent"
	"imovel-hub/internal/usecase"
	"imovel-hub/internal/validation"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postUseCase usecase.PostUseCase
}

func NewPostHandler(postUseCase usecase.PostUseCase) *PostHandler {
	return &PostHandler{
		postUseCase: postUseCase,
	}
}

// Create godoc
// @Summary      Create a blog post
// @Tags         posts
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Success      201  {object}  entity.Post
// @Failure      400  {object}  httperr.Error
// @Failure      409  {object}  httperr.Error
// @Router       /posts [post]
func (h *PostHandler) Create(c *gin.Context) {
	values, _, capa, ok := multipartMedia(c, "", "imagemCapa")
	if !ok {
		return
	}

	in, err := validation.ParsePost(values)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	post, err := h.postUseCase.Create(in, capa)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, post)
}

// List godoc
// @Summary      List blog posts
// @Tags         posts
// @Produce      json
// @Param        status      query string false "Post status"
// @Param        categoriaId query int    false "Blog category id"
// @Param        imovelId    query int    false "Linked property id"
// @Success      200  {array}  entity.Post
// @Router       /posts [get]
func (h *PostHandler) List(c *gin.Context) {
	filter := persistent.PostFilter{Status: c.Query("status")}
	if v, err := strconv.Atoi(c.Query("categoriaId")); err == nil {
		filter.CategoriaID = v
	}
	if v, err := strconv.Atoi(c.Query("imovelId")); err == nil {
		filter.ImovelID = v
	}

	posts, err := h.postUseCase.List(filter)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

func (h *PostHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	post, err := h.postUseCase.GetByID(id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

// GetBySlug godoc
// @Summary      Get a post by slug
// @Tags         posts
// @Produce      json
// @Param        slug path string true "Post slug"
// @Success      200  {object}  entity.Post
// @Failure      404  {object}  httperr.Error
// @Router       /posts/{slug} [get]
func (h *PostHandler) GetBySlug(c *gin.Context) {
	post, err := h.postUseCase.GetBySlug(c.Param("slug"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

// Update godoc
// @Summary      Update a blog post
// @Description  Full rewrite with revalidation; cover only replaced when a new file is sent
// @Tags         posts
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Post id"
// @Success      200  {object}  entity.Post
// @Failure      404  {object}  httperr.Error
// @Router       /posts/{id} [put]
func (h *PostHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	values, _, capa, ok := multipartMedia(c, "", "imagemCapa")
	if !ok {
		return
	}

	in, err := validation.ParsePost(values)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	post, err := h.postUseCase.Update(id, in, capa)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

func (h *PostHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.postUseCase.Delete(id); err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Post removido com sucesso"})
}
