package usecase

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/textproto"
	"net/url"
	"strings"
	"testing"

	"imovel-hub/internal/entity"
	"imovel-hub/internal/repo/persistent"
	"imovel-hub/internal/upload"
	"imovel-hub/internal/validation"
	"imovel-hub/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

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

func photoFile(t *testing.T, name string) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="file"; filename="`+name+`"`)
	h.Set("Content-Type", "image/jpeg")
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write([]byte("fake-image"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	reader := multipart.NewReader(&buf, w.Boundary())
	form, err := reader.ReadForm(32 << 20)
	require.NoError(t, err)
	return form.File["file"][0]
}

func parseUpdate(t *testing.T, values url.Values) *validation.ImovelUpdateInput {
	t.Helper()
	in, err := validation.ParseImovelUpdate(values)
	require.NoError(t, err)
	return in
}

func TestImovelUpdateFieldMapping(t *testing.T) {
	newFixture := func(t *testing.T) (*mockImovelRepo, ImovelUseCase, *map[string]interface{}) {
		repo := new(mockImovelRepo)
		repo.On("GetByID", 7).Return(&entity.Imovel{ID: 7}, nil)

		var captured map[string]interface{}
		repo.On("Update", 7, mock.Anything).
			Run(func(args mock.Arguments) {
				captured = args.Get(1).(map[string]interface{})
			}).
			Return(&entity.Imovel{ID: 7}, nil)

		uc := NewImovelUseCase(repo, upload.NewGateway(stubStorage{}), logger.New())
		return repo, uc, &captured
	}

	t.Run("absent fields never reach the updates map", func(t *testing.T) {
		repo, uc, captured := newFixture(t)
		oldPhoto := "https://bucket.s3.us-east-1.amazonaws.com/imoveis/old-1.jpg"

		in := parseUpdate(t, url.Values{
			"cidade":    {"Blumenau"},
			"oldPhotos": {`["` + oldPhoto + `"]`},
		})

		_, err := uc.Update(7, in, []*multipart.FileHeader{photoFile(t, "nova.jpg")}, nil)
		require.NoError(t, err)

		updates := *captured
		require.Len(t, updates, 2)
		assert.Equal(t, "Blumenau", updates["cidade"])

		fotos, ok := updates["fotos"].([]string)
		require.True(t, ok)
		require.Len(t, fotos, 2)
		assert.Equal(t, oldPhoto, fotos[0])
		assert.True(t, strings.HasPrefix(fotos[1], "https://bucket.s3.us-east-1.amazonaws.com/imoveis/"))
		assert.True(t, strings.HasSuffix(fotos[1], ".jpg"))

		repo.AssertNotCalled(t, "ReplaceTipo", mock.Anything, mock.Anything)
		repo.AssertNotCalled(t, "ReplaceFinalidade", mock.Anything, mock.Anything)
	})

	t.Run("photo set is rewritten even when nothing else changes", func(t *testing.T) {
		_, uc, captured := newFixture(t)

		_, err := uc.Update(7, parseUpdate(t, url.Values{}), nil, nil)
		require.NoError(t, err)

		updates := *captured
		require.Len(t, updates, 1)
		fotos, ok := updates["fotos"].([]string)
		require.True(t, ok)
		assert.Empty(t, fotos)
	})

	t.Run("new cover file replaces imagem_capa", func(t *testing.T) {
		_, uc, captured := newFixture(t)

		in := parseUpdate(t, url.Values{"imagemCapa": {"https://old/capa.jpg"}})
		_, err := uc.Update(7, in, nil, photoFile(t, "capa.jpg"))
		require.NoError(t, err)

		capa, ok := (*captured)["imagem_capa"].(string)
		require.True(t, ok)
		assert.True(t, strings.HasPrefix(capa, "https://bucket.s3.us-east-1.amazonaws.com/imoveis/"))
	})

	t.Run("tipo and finalidade rewrite their join rows", func(t *testing.T) {
		repo, uc, _ := newFixture(t)
		repo.On("ReplaceTipo", 7, 3).Return(nil)
		repo.On("ReplaceFinalidade", 7, 2).Return(nil)

		in := parseUpdate(t, url.Values{"tipoId": {"3"}, "finalidadeId": {"2"}})
		_, err := uc.Update(7, in, nil, nil)
		require.NoError(t, err)

		repo.AssertCalled(t, "ReplaceTipo", 7, 3)
		repo.AssertCalled(t, "ReplaceFinalidade", 7, 2)
	})
}
