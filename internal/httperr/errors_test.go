package httperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func performWithError(err error) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/test", func(c *gin.Context) {
		Respond(c, err)
	})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/test", nil)
	r.ServeHTTP(w, req)
	return w
}

func TestRespond_TaxonomyStatusCodes(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"validation", Validation([]FieldError{{Field: "nome", Message: "obrigatório"}}), 400},
		{"unauthorized", Unauthorized("Email ou senha inválidos"), 401},
		{"not found", NotFound("Imóvel não encontrado"), 404},
		{"conflict", Conflict("Categoria já existe"), 409},
		{"upload forbidden", Upload(403, "Acesso negado ao S3", "Sem permissão no bucket"), 403},
		{"internal", Internal("Erro interno do servidor"), 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := performWithError(tt.err)
			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestRespond_Envelope(t *testing.T) {
	w := performWithError(Validation([]FieldError{
		{Field: "email", Message: "Email inválido"},
		{Field: "password", Message: "Senha deve ter no mínimo 6 caracteres"},
	}))

	var body struct {
		Error   string       `json:"error"`
		Details []FieldError `json:"details"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Erro de validação", body.Error)
	assert.Len(t, body.Details, 2)
	assert.Equal(t, "email", body.Details[0].Field)
}

func TestRespond_UnknownErrorBecomes500(t *testing.T) {
	w := performWithError(errors.New("driver: bad connection"))
	assert.Equal(t, 500, w.Code)

	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Erro interno do servidor", body["error"])
	// internal details never leak
	assert.NotContains(t, w.Body.String(), "driver")
}

func TestRespond_WrappedError(t *testing.T) {
	wrapped := fmt.Errorf("usecase: %w", NotFound("Post não encontrado"))
	w := performWithError(wrapped)
	assert.Equal(t, 404, w.Code)
}
