package http

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"imovel-hub/internal/entity"
	"imovel-hub/internal/httperr"
	"imovel-hub/internal/repo/persistent"
	"imovel-hub/internal/upload"
	"imovel-hub/internal/usecase"
	"imovel-hub/pkg/jwt"
	"imovel-hub/pkg/logger"
	"imovel-hub/pkg/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type mockTipoUseCase struct {
	mock.Mock
}

func (m *mockTipoUseCase) Create(nome string) (*entity.Tipo, error) {
	args := m.Called(nome)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Tipo), args.Error(1)
}

func (m *mockTipoUseCase) List(nome string) ([]*entity.Tipo, error) {
	args := m.Called(nome)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Tipo), args.Error(1)
}

func (m *mockTipoUseCase) Update(id int, nome string) (*entity.Tipo, error) {
	args := m.Called(id, nome)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Tipo), args.Error(1)
}

func (m *mockTipoUseCase) Delete(id int) error {
	args := m.Called(id)
	return args.Error(0)
}

type mockAuthUseCase struct {
	mock.Mock
}

func (m *mockAuthUseCase) Login(email, password string) (*entity.Usuario, string, string, error) {
	args := m.Called(email, password)
	if args.Get(0) == nil {
		return nil, "", "", args.Error(3)
	}
	return args.Get(0).(*entity.Usuario), args.String(1), args.String(2), args.Error(3)
}

func (m *mockAuthUseCase) Refresh(refreshToken string) (string, error) {
	args := m.Called(refreshToken)
	return args.String(0), args.Error(1)
}

func doJSON(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestTipoCreateConflict(t *testing.T) {
	uc := new(mockTipoUseCase)
	uc.On("Create", "Casa").
		Return(&entity.Tipo{ID: 1, Nome: "Casa"}, nil).Once()
	uc.On("Create", "Casa").
		Return(nil, httperr.Conflict("Tipo de imóvel já existe")).Once()

	h := NewTipoHandler(uc)
	r := gin.New()
	r.POST("/api/tipo", h.Create)

	first := doJSON(r, http.MethodPost, "/api/tipo", gin.H{"nome": "Casa"})
	assert.Equal(t, http.StatusCreated, first.Code)

	second := doJSON(r, http.MethodPost, "/api/tipo", gin.H{"nome": "Casa"})
	assert.Equal(t, http.StatusConflict, second.Code)

	var envelope map[string]any
	require.NoError(t, json.Unmarshal(second.Body.Bytes(), &envelope))
	assert.Equal(t, "Tipo de imóvel já existe", envelope["error"])
}

func TestTipoCreateValidation(t *testing.T) {
	uc := new(mockTipoUseCase)
	h := NewTipoHandler(uc)
	r := gin.New()
	r.POST("/api/tipo", h.Create)

	w := doJSON(r, http.MethodPost, "/api/tipo", gin.H{"nome": "X"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var envelope struct {
		Error   string `json:"error"`
		Details []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"details"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, "Erro de validação", envelope.Error)
	require.Len(t, envelope.Details, 1)
	assert.Equal(t, "nome", envelope.Details[0].Field)
	uc.AssertNotCalled(t, "Create", mock.Anything)
}

func TestLoginHandler(t *testing.T) {
	t.Run("valid credentials", func(t *testing.T) {
		uc := new(mockAuthUseCase)
		uc.On("Login", "admin@example.com", "secret123").
			Return(&entity.Usuario{ID: 1, Email: "admin@example.com"}, "access-token", "refresh-token", nil)

		h := NewAuthHandler(uc)
		r := gin.New()
		r.POST("/api/login", h.Login)

		w := doJSON(r, http.MethodPost, "/api/login", gin.H{
			"email":    "admin@example.com",
			"password": "secret123",
		})

		assert.Equal(t, http.StatusOK, w.Code)
		var resp LoginResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "access-token", resp.AccessToken)
		assert.Equal(t, "refresh-token", resp.RefreshToken)
		assert.Equal(t, 1, resp.User.ID)
	})

	t.Run("bad credentials give the generic message", func(t *testing.T) {
		uc := new(mockAuthUseCase)
		uc.On("Login", "admin@example.com", "wrong").
			Return(nil, "", "", httperr.Unauthorized("Email ou senha inválidos"))

		h := NewAuthHandler(uc)
		r := gin.New()
		r.POST("/api/login", h.Login)

		w := doJSON(r, http.MethodPost, "/api/login", gin.H{
			"email":    "admin@example.com",
			"password": "wrong",
		})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		var envelope map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
		assert.Equal(t, "Email ou senha inválidos", envelope["error"])
	})
}

func TestProtectedRouteWithoutToken(t *testing.T) {
	uc := new(mockTipoUseCase)
	h := NewTipoHandler(uc)

	jwtService := jwt.NewService("test-secret")
	r := gin.New()
	r.POST("/api/tipo", middleware.AuthMiddleware(jwtService), h.Create)

	w := doJSON(r, http.MethodPost, "/api/tipo", gin.H{"nome": "Casa"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	uc.AssertNotCalled(t, "Create", mock.Anything)
}

func TestTipoDeleteNotFound(t *testing.T) {
	uc := new(mockTipoUseCase)
	uc.On("Delete", 42).Return(httperr.NotFound("Tipo não encontrado"))

	h := NewTipoHandler(uc)
	r := gin.New()
	r.DELETE("/api/tipo/:id", h.Delete)

	req := httptest.NewRequest(http.MethodDelete, "/api/tipo/42", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

type mockImovelRepo struct {
	mock.Mock
}

func (m *mockImovelRepo) Create(imovel *entity.Imovel, tipoID, finalidadeID int) (*entity.Imovel, error) {
	args := m.Called(imovel, tipoID, finalidadeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Imovel), args.Error(1)
}

func (m *mockImovelRepo) List(filter persistent.ImovelFilter) ([]*entity.Imovel, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Imovel), args.Error(1)
}

func (m *mockImovelRepo) GetByID(id int) (*entity.Imovel, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Imovel), args.Error(1)
}

func (m *mockImovelRepo) GetByCodigo(codigo string) (*entity.Imovel, error) {
	args := m.Called(codigo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Imovel), args.Error(1)
}

func (m *mockImovelRepo) Update(id int, updates map[string]interface{}) (*entity.Imovel, error) {
	args := m.Called(id, updates)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Imovel), args.Error(1)
}

func (m *mockImovelRepo) ReplaceTipo(imovelID, tipoID int) error {
	args := m.Called(imovelID, tipoID)
	return args.Error(0)
}

func (m *mockImovelRepo) ReplaceFinalidade(imovelID, finalidadeID int) error {
	args := m.Called(imovelID, finalidadeID)
	return args.Error(0)
}

func (m *mockImovelRepo) Delete(id int) error {
	args := m.Called(id)
	return args.Error(0)
}

type stubStorage struct{}

func (stubStorage) UploadFile(key string, file io.Reader, contentType string) (string, error) {
	return "https://bucket.s3.us-east-1.amazonaws.com/" + key, nil
}

func (stubStorage) DeleteFile(key string) error { return nil }

func TestImovelCreateRejectsOversizedGallery(t *testing.T) {
	repo := new(mockImovelRepo)
	gateway := upload.NewGateway(stubStorage{})
	uc := usecase.NewImovelUseCase(repo, gateway, logger.New())
	h := NewImovelHandler(uc)

	r := gin.New()
	r.POST("/api/imoveis", h.Create)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("titulo", "Casa nova no centro"))
	require.NoError(t, mw.WriteField("codigo", "IMV-0099"))
	require.NoError(t, mw.WriteField("tipoId", "1"))
	require.NoError(t, mw.WriteField("finalidadeId", "1"))
	for i := 0; i < upload.MaxGalleryFiles+1; i++ {
		part, err := mw.CreateFormFile("fotos", "foto.jpg")
		require.NoError(t, err)
		_, err = part.Write([]byte("fake-image"))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/imoveis", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestImovelCreateRejectsDuplicateCoverImage(t *testing.T) {
	repo := new(mockImovelRepo)
	gateway := upload.NewGateway(stubStorage{})
	uc := usecase.NewImovelUseCase(repo, gateway, logger.New())
	h := NewImovelHandler(uc)

	r := gin.New()
	r.POST("/api/imoveis", h.Create)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("titulo", "Casa nova no centro"))
	require.NoError(t, mw.WriteField("codigo", "IMV-0100"))
	require.NoError(t, mw.WriteField("tipoId", "1"))
	require.NoError(t, mw.WriteField("finalidadeId", "1"))
	for i := 0; i < 2; i++ {
		part, err := mw.CreateFormFile("imagemCapa", "capa.jpg")
		require.NoError(t, err)
		_, err = part.Write([]byte("fake-image"))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/imoveis", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var envelope map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Contains(t, envelope["error"], "imagemCapa")
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}
