package validation

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateLoginInput(t *testing.T) {
	t.Run("valid input passes", func(t *testing.T) {
		details := Validate(LoginInput{Email: "admin@example.com", Password: "secret"})
		assert.Nil(t, details)
	})

	t.Run("collects every violation", func(t *testing.T) {
		details := Validate(LoginInput{Email: "not-an-email"})
		assert.Len(t, details, 2)

		fields := map[string]string{}
		for _, d := range details {
			fields[d.Field] = d.Message
		}
		assert.Equal(t, "Email inválido", fields["email"])
		assert.Equal(t, "Campo obrigatório", fields["password"])
	})

	t.Run("field names come from json tags", func(t *testing.T) {
		details := Validate(UsuarioCreateInput{Name: "Jo", Email: "a@b.com", Password: "123456"})
		assert.Len(t, details, 1)
		assert.Equal(t, "name", details[0].Field)
		assert.Equal(t, "Deve ter no mínimo 3 caracteres", details[0].Message)
	})
}

func TestUsuarioUpdateInputEmpty(t *testing.T) {
	assert.True(t, UsuarioUpdateInput{}.Empty())

	name := "Maria"
	assert.False(t, UsuarioUpdateInput{Name: &name}.Empty())
}

func TestFormCoercion(t *testing.T) {
	t.Run("numbers and booleans", func(t *testing.T) {
		f := NewForm(url.Values{
			"suites":  {"3"},
			"valor":   {"450000.50"},
			"garagem": {"true"},
		})

		assert.Equal(t, 3, *f.Int("suites"))
		assert.Equal(t, 450000.50, *f.Float("valor"))
		assert.True(t, *f.Bool("garagem"))
		assert.Empty(t, f.Errors())
	})

	t.Run("decimal comma accepted", func(t *testing.T) {
		f := NewForm(url.Values{"valor": {"1250,75"}})
		assert.Equal(t, 1250.75, *f.Float("valor"))
	})

	t.Run("bad values accumulate errors", func(t *testing.T) {
		f := NewForm(url.Values{
			"suites": {"tres"},
			"valor":  {"caro"},
		})

		assert.Nil(t, f.Int("suites"))
		assert.Nil(t, f.Float("valor"))
		assert.Len(t, f.Errors(), 2)
	})

	t.Run("absent field is nil without error", func(t *testing.T) {
		f := NewForm(url.Values{})
		assert.Nil(t, f.Int("suites"))
		assert.False(t, f.Has("suites"))
		assert.Empty(t, f.Errors())
	})

	t.Run("foreign key treats zero as absent", func(t *testing.T) {
		f := NewForm(url.Values{"a": {"0"}, "b": {""}, "c": {"7"}})
		assert.Nil(t, f.ForeignKey("a"))
		assert.Nil(t, f.ForeignKey("b"))
		assert.Equal(t, 7, *f.ForeignKey("c"))
		assert.Empty(t, f.Errors())
	})
}

func TestParseImovelCreate(t *testing.T) {
	t.Run("full form", func(t *testing.T) {
		in, err := ParseImovelCreate(url.Values{
			"titulo":       {"Casa geminada no centro"},
			"codigo":       {"IMV-0042"},
			"valor":        {"350000"},
			"suites":       {"1"},
			"dormitorios":  {"3"},
			"garagem":      {"true"},
			"tipoId":       {"2"},
			"finalidadeId": {"1"},
		})

		assert.NoError(t, err)
		assert.Equal(t, "IMV-0042", in.Codigo)
		assert.Equal(t, 2, in.TipoID)
		assert.Equal(t, 350000.0, *in.Valor)
		assert.Equal(t, 3, *in.Dormitorios)
		assert.True(t, *in.Garagem)
	})

	t.Run("missing required fields", func(t *testing.T) {
		_, err := ParseImovelCreate(url.Values{"titulo": {"Ok titulo"}})
		assert.Error(t, err)
	})
}

func TestParseImovelUpdate(t *testing.T) {
	t.Run("absent fields stay nil", func(t *testing.T) {
		in, err := ParseImovelUpdate(url.Values{"cidade": {"Blumenau"}})
		assert.NoError(t, err)
		assert.Equal(t, "Blumenau", *in.Cidade)
		assert.Nil(t, in.Titulo)
		assert.Nil(t, in.Valor)
	})

	t.Run("old photos json", func(t *testing.T) {
		in, err := ParseImovelUpdate(url.Values{
			"oldPhotos": {`["https://cdn/x.jpg","https://cdn/y.jpg"]`},
		})
		assert.NoError(t, err)
		assert.Equal(t, []string{"https://cdn/x.jpg", "https://cdn/y.jpg"}, in.OldPhotos)
	})

	t.Run("malformed old photos rejected", func(t *testing.T) {
		_, err := ParseImovelUpdate(url.Values{"oldPhotos": {"not-json"}})
		assert.Error(t, err)
	})
}

func TestParsePost(t *testing.T) {
	t.Run("defaults status to draft", func(t *testing.T) {
		in, err := ParsePost(url.Values{
			"titulo":      {"Mercado imobiliário em 2026"},
			"slug":        {"mercado-imobiliario-2026"},
			"conteudo":    {"Conteúdo longo o suficiente."},
			"categoriaId": {"4"},
		})

		assert.NoError(t, err)
		assert.Equal(t, "RASCUNHO", in.Status)
		assert.Equal(t, 4, in.CategoriaID)
		assert.Nil(t, in.ImovelID)
	})

	t.Run("imovelId zero unlinks", func(t *testing.T) {
		in, err := ParsePost(url.Values{
			"titulo":      {"Título ok"},
			"slug":        {"titulo-ok"},
			"conteudo":    {"Conteúdo longo o suficiente."},
			"categoriaId": {"1"},
			"imovelId":    {"0"},
		})

		assert.NoError(t, err)
		assert.Nil(t, in.ImovelID)
	})

	t.Run("invalid status rejected", func(t *testing.T) {
		_, err := ParsePost(url.Values{
			"titulo":      {"Título ok"},
			"slug":        {"titulo-ok"},
			"conteudo":    {"Conteúdo longo o suficiente."},
			"categoriaId": {"1"},
			"status":      {"ARQUIVADO"},
		})
		assert.Error(t, err)
	})

	t.Run("short content rejected", func(t *testing.T) {
		_, err := ParsePost(url.Values{
			"titulo":      {"Título ok"},
			"slug":        {"titulo-ok"},
			"conteudo":    {"curto"},
			"categoriaId": {"1"},
		})
		assert.Error(t, err)
	})
}
