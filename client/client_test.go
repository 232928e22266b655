package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"

	"imovel-hub/internal/httperr"
	"imovel-hub/internal/upload"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginStoresSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/login", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		if body["password"] != "secret123" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"error": "Email ou senha inválidos"})
			return
		}

		json.NewEncoder(w).Encode(map[string]any{
			"message":      "Login realizado com sucesso",
			"accessToken":  "access-1",
			"refreshToken": "refresh-1",
			"user":         map[string]any{"id": 1, "email": body["email"]},
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	assert.False(t, c.Authenticated())

	usuario, err := c.Login(context.Background(), "admin@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, 1, usuario.ID)
	assert.True(t, c.Authenticated())

	_, err = c.Login(context.Background(), "admin@example.com", "wrong")
	var apiErr *httperr.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "Email ou senha inválidos", apiErr.Err)
}

func TestExpiredAccessTokenIsRefreshedOnce(t *testing.T) {
	var listCalls atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/refresh":
			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			require.Equal(t, "refresh-1", body["refreshToken"])
			json.NewEncoder(w).Encode(map[string]string{"accessToken": "access-2"})
		case "/api/usuarios":
			listCalls.Add(1)
			if r.Header.Get("Authorization") != "Bearer access-2" {
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(map[string]string{"error": "Token inválido"})
				return
			}
			json.NewEncoder(w).Encode([]map[string]any{{"id": 1, "name": "Admin"}})
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	c := New(srv.URL)
	c.accessToken = "stale"
	c.refreshToken = "refresh-1"

	usuarios, err := c.ListUsuarios(context.Background())
	require.NoError(t, err)
	assert.Len(t, usuarios, 1)
	assert.Equal(t, int32(2), listCalls.Load())
}

func TestConflictErrorIsTyped(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]string{"error": "Tipo de imóvel já existe"})
	}))
	defer srv.Close()

	c := New(srv.URL)
	c.accessToken = "access"

	_, err := c.CreateTipo(context.Background(), "Casa")

	var apiErr *httperr.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.Status)
	assert.Equal(t, "Tipo de imóvel já existe", apiErr.Err)
}

func TestBuildMultipartEnforcesLimits(t *testing.T) {
	t.Run("too many gallery files", func(t *testing.T) {
		files := make([]MediaFile, upload.MaxGalleryFiles+1)
		for i := range files {
			files[i] = MediaFile{Name: "f.jpg", ContentType: "image/jpeg", Data: strings.NewReader("x")}
		}

		_, _, err := buildMultipart(url.Values{}, "fotos", files, "imagemCapa", nil)
		assert.Error(t, err)
	})

	t.Run("disallowed mime type", func(t *testing.T) {
		f := MediaFile{Name: "doc.pdf", ContentType: "application/pdf", Data: strings.NewReader("x")}
		_, _, err := buildMultipart(url.Values{}, "", nil, "imagem", &f)
		assert.ErrorContains(t, err, "doc.pdf")
	})

	t.Run("oversized file", func(t *testing.T) {
		f := MediaFile{
			Name:        "big.jpg",
			ContentType: "image/jpeg",
			Size:        upload.MaxFileSize + 1,
			Data:        strings.NewReader("x"),
		}
		_, _, err := buildMultipart(url.Values{}, "", nil, "imagem", &f)
		assert.ErrorContains(t, err, "10MB")
	})

	t.Run("valid payload builds and replays", func(t *testing.T) {
		f := MediaFile{Name: "capa.webp", ContentType: "image/webp", Data: strings.NewReader("bytes")}
		body, contentType, err := buildMultipart(url.Values{"titulo": {"Casa"}}, "", nil, "imagem", &f)

		require.NoError(t, err)
		assert.Contains(t, contentType, "multipart/form-data")

		// Replayable body so the 401-refresh retry can resend it.
		r1, err := body()
		require.NoError(t, err)
		r2, err := body()
		require.NoError(t, err)
		assert.NotNil(t, r1)
		assert.NotNil(t, r2)
	})
}
