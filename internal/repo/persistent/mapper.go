package persistent

import (
	"imovel-hub/internal/entity"
	"imovel-hub/internal/model"
)

func ToUsuarioEntity(m *model.UsuarioModel) *entity.Usuario {
	if m == nil {
		return nil
	}
	return &entity.Usuario{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Password:  m.Password,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToUsuarioModel(e *entity.Usuario) *model.UsuarioModel {
	if e == nil {
		return nil
	}
	return &model.UsuarioModel{
		ID:        e.ID,
		Name:      e.Name,
		Email:     e.Email,
		Password:  e.Password,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func ToTipoEntity(m *model.TipoModel) *entity.Tipo {
	if m == nil {
		return nil
	}
	return &entity.Tipo{ID: m.ID, Nome: m.Nome, CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt}
}

func ToFinalidadeEntity(m *model.FinalidadeModel) *entity.Finalidade {
	if m == nil {
		return nil
	}
	return &entity.Finalidade{ID: m.ID, Nome: m.Nome, CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt}
}

func ToCategoriaEntity(m *model.CategoriaModel) *entity.Categoria {
	if m == nil {
		return nil
	}
	return &entity.Categoria{ID: m.ID, Nome: m.Nome, CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt}
}

func ToBlogCategoriaEntity(m *model.BlogCategoriaModel) *entity.BlogCategoria {
	if m == nil {
		return nil
	}
	return &entity.BlogCategoria{ID: m.ID, Nome: m.Nome, CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt}
}

func ToImovelEntity(m *model.ImovelModel) *entity.Imovel {
	if m == nil {
		return nil
	}

	tipos := make([]entity.ImovelTipo, len(m.Tipo))
	for i, t := range m.Tipo {
		tipos[i] = entity.ImovelTipo{ID: t.ID, TipoID: t.TipoID}
		if t.Tipo.ID != 0 {
			tipos[i].Tipo = ToTipoEntity(&t.Tipo)
		}
	}

	finalidades := make([]entity.ImovelFinalidade, len(m.Finalidade))
	for i, f := range m.Finalidade {
		finalidades[i] = entity.ImovelFinalidade{ID: f.ID, FinalidadeID: f.FinalidadeID}
		if f.Finalidade.ID != 0 {
			finalidades[i].Finalidade = ToFinalidadeEntity(&f.Finalidade)
		}
	}

	categorias := make([]entity.ImovelCategoria, len(m.Categorias))
	for i, cat := range m.Categorias {
		categorias[i] = entity.ImovelCategoria{ID: cat.ID, CategoriaID: cat.CategoriaID}
		if cat.Categoria.ID != 0 {
			categorias[i].Categoria = ToCategoriaEntity(&cat.Categoria)
		}
	}

	return &entity.Imovel{
		ID:             m.ID,
		Titulo:         m.Titulo,
		Codigo:         m.Codigo,
		DescricaoCurta: m.DescricaoCurta,
		DescricaoLonga: m.DescricaoLonga,
		Fotos:          []string(m.Fotos),
		ImagemCapa:     m.ImagemCapa,
		Valor:          m.Valor,
		ValorPromo:     m.ValorPromo,
		Cep:            m.Cep,
		Endereco:       m.Endereco,
		Bairro:         m.Bairro,
		Cidade:         m.Cidade,
		Estado:         m.Estado,
		Latitude:       m.Latitude,
		Longitude:      m.Longitude,
		Suites:         m.Suites,
		Dormitorios:    m.Dormitorios,
		Banheiros:      m.Banheiros,
		Garagem:        m.Garagem,
		Geminada:       m.Geminada,
		TerrenoMedidas: m.TerrenoMedidas,
		TerrenoM2:      m.TerrenoM2,
		AreaConstruida: m.AreaConstruida,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
		Tipo:           tipos,
		Finalidade:     finalidades,
		Categorias:     categorias,
	}
}

func ToDestaqueEntity(m *model.DestaqueModel) *entity.Destaque {
	if m == nil {
		return nil
	}
	return &entity.Destaque{
		ID:         m.ID,
		Titulo:     m.Titulo,
		Descricao:  m.Descricao,
		Imagem:     m.Imagem,
		Valor:      m.Valor,
		Area:       m.Area,
		Quartos:    m.Quartos,
		Banheiros:  m.Banheiros,
		Garagem:    m.Garagem,
		TextoBotao: m.TextoBotao,
		Link:       m.Link,
		Ativo:      m.Ativo,
		Ordem:      m.Ordem,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func ToPostEntity(m *model.PostModel) *entity.Post {
	if m == nil {
		return nil
	}

	post := &entity.Post{
		ID:             m.ID,
		Titulo:         m.Titulo,
		Slug:           m.Slug,
		Chamada:        m.Chamada,
		Conteudo:       m.Conteudo,
		ImagemCapa:     m.ImagemCapa,
		DataPublicacao: m.DataPublicacao,
		Status:         entity.PostStatus(m.Status),
		CategoriaID:    m.CategoriaID,
		ImovelID:       m.ImovelID,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
	if m.Categoria.ID != 0 {
		post.Categoria = ToBlogCategoriaEntity(&m.Categoria)
	}
	if m.Imovel != nil {
		post.Imovel = &entity.PostImovel{ID: m.Imovel.ID, Titulo: m.Imovel.Titulo, Codigo: m.Imovel.Codigo}
	}
	return post
}
