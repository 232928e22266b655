// Package upload is the media gateway between multipart requests and
// object storage. It enforces the size, type and count limits before any
// byte leaves the process, and translates storage failures into precise
// user-facing errors.
package upload

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"imovel-hub/internal/httperr"
	"imovel-hub/pkg/s3"

	"github.com/google/uuid"
)

const (
	MaxFileSize     = 10 << 20
	MaxGalleryFiles = 18
)

const (
	PrefixImoveis   = "imoveis"
	PrefixDestaques = "destaques"
	PrefixPosts     = "posts"
)

var allowedTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/jpg":  {},
	"image/png":  {},
	"image/webp": {},
}

// AllowedType reports whether the MIME type is accepted for upload.
func AllowedType(contentType string) bool {
	_, ok := allowedTypes[strings.ToLower(strings.TrimSpace(contentType))]
	return ok
}

// Storage is the slice of the object-store client the gateway needs.
type Storage interface {
	UploadFile(key string, file io.Reader, contentType string) (string, error)
	DeleteFile(key string) error
}

type Gateway struct {
	storage Storage
}

func NewGateway(storage Storage) *Gateway {
	return &Gateway{storage: storage}
}

// UploadOne validates and stores a single file, returning its public URL.
func (g *Gateway) UploadOne(prefix string, fh *multipart.FileHeader) (string, error) {
	urls, err := g.UploadMany(prefix, []*multipart.FileHeader{fh}, 1)
	if err != nil {
		return "", err
	}
	return urls[0], nil
}

// UploadMany validates every file first and uploads only when the whole
// batch passes, so a rejected request never leaves partial objects behind.
func (g *Gateway) UploadMany(prefix string, fhs []*multipart.FileHeader, maxFiles int) ([]string, error) {
	if len(fhs) > maxFiles {
		return nil, httperr.BadRequest(
			"Limite de arquivos excedido",
			fmt.Sprintf("Máximo de %d arquivo(s) por envio", maxFiles),
		)
	}

	var details []httperr.FieldError
	for _, fh := range fhs {
		if fh.Size > MaxFileSize {
			details = append(details, httperr.FieldError{
				Field:   fh.Filename,
				Message: "Arquivo excede o tamanho máximo de 10MB",
			})
		}
		if !AllowedType(contentType(fh)) {
			details = append(details, httperr.FieldError{
				Field:   fh.Filename,
				Message: "Tipo de arquivo não permitido. Use jpeg, jpg, png ou webp",
			})
		}
	}
	if len(details) > 0 {
		return nil, httperr.Validation(details)
	}

	urls := make([]string, 0, len(fhs))
	for _, fh := range fhs {
		url, err := g.put(prefix, fh)
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}
	return urls, nil
}

// Delete removes a previously uploaded object by its public URL. A failure
// here is logged by callers but never fails the owning request.
func (g *Gateway) Delete(publicURL string) error {
	key := keyFromURL(publicURL)
	if key == "" {
		return nil
	}
	return g.storage.DeleteFile(key)
}

func (g *Gateway) put(prefix string, fh *multipart.FileHeader) (string, error) {
	file, err := fh.Open()
	if err != nil {
		return "", httperr.Internal("Falha ao ler arquivo enviado")
	}
	defer file.Close()

	key := objectKey(prefix, fh.Filename)
	url, err := g.storage.UploadFile(key, file, contentType(fh))
	if err != nil {
		return "", translateStorageErr(err)
	}
	return url, nil
}

func objectKey(prefix, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	return fmt.Sprintf("%s/%d-%s%s", prefix, time.Now().UnixMilli(), uuid.NewString(), ext)
}

func contentType(fh *multipart.FileHeader) string {
	return strings.ToLower(strings.TrimSpace(fh.Header.Get("Content-Type")))
}

func keyFromURL(publicURL string) string {
	idx := strings.Index(publicURL, "://")
	if idx < 0 {
		return publicURL
	}
	rest := publicURL[idx+3:]
	slash := strings.Index(rest, "/")
	if slash < 0 {
		return ""
	}
	key := rest[slash+1:]
	// Path-style endpoints carry the bucket as the first path segment.
	if !strings.Contains(publicURL, "amazonaws.com") {
		if i := strings.Index(key, "/"); i >= 0 {
			key = key[i+1:]
		}
	}
	return key
}

func translateStorageErr(err error) error {
	var ue *s3.UploadError
	if !errors.As(err, &ue) {
		return httperr.Internal("Erro ao enviar arquivo para o armazenamento")
	}

	switch ue.Kind {
	case s3.FailureCredentials:
		return httperr.Upload(http.StatusInternalServerError,
			"Erro de configuração do armazenamento",
			"Credenciais de acesso ao bucket são inválidas")
	case s3.FailureBucket:
		return httperr.Upload(http.StatusInternalServerError,
			"Erro de configuração do armazenamento",
			"Bucket de destino não existe")
	case s3.FailureRegion:
		return httperr.Upload(http.StatusInternalServerError,
			"Erro de configuração do armazenamento",
			"Região do bucket está incorreta")
	case s3.FailureAccessDenied:
		return httperr.Upload(http.StatusForbidden,
			"Acesso negado ao armazenamento",
			"Verifique as permissões do bucket")
	case s3.FailureACLNotSupported:
		return httperr.Upload(http.StatusBadRequest,
			"Bucket não aceita ACL pública",
			"Habilite ACLs de objeto no bucket de destino")
	default:
		return httperr.Upload(http.StatusInternalServerError,
			"Erro ao enviar arquivo para o armazenamento", ue.Code)
	}
}
