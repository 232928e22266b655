package usecase

import (
	"imovel-hub/internal/entity"
	"imovel-hub/internal/repo/persistent"
)

// The vocabulary usecases are thin by design: the conflict and not-found
// rules live in the repositories, and no orchestration is needed here.

type TipoUseCase interface {
	Create(nome string) (*entity.Tipo, error)
	List(nome string) ([]*entity.Tipo, error)
	Update(id int, nome string) (*entity.Tipo, error)
	Delete(id int) error
}

type tipoUseCase struct {
	repo persistent.TipoRepository
}

func NewTipoUseCase(repo persistent.TipoRepository) TipoUseCase {
	return &tipoUseCase{repo: repo}
}

func (uc *tipoUseCase) Create(nome string) (*entity.Tipo, error)        { return uc.repo.Create(nome) }
func (uc *tipoUseCase) List(nome string) ([]*entity.Tipo, error)       { return uc.repo.List(nome) }
func (uc *tipoUseCase) Update(id int, nome string) (*entity.Tipo, error) {
	return uc.repo.Update(id, nome)
}
func (uc *tipoUseCase) Delete(id int) error { return uc.repo.Delete(id) }

type FinalidadeUseCase interface {
	Create(nome string) (*entity.Finalidade, error)
	List(nome string) ([]*entity.Finalidade, error)
	Update(id int, nome string) (*entity.Finalidade, error)
	Delete(id int) error
}

type finalidadeUseCase struct {
	repo persistent.FinalidadeRepository
}

func NewFinalidadeUseCase(repo persistent.FinalidadeRepository) FinalidadeUseCase {
	return &finalidadeUseCase{repo: repo}
}

func (uc *finalidadeUseCase) Create(nome string) (*entity.Finalidade, error) {
	return uc.repo.Create(nome)
}
func (uc *finalidadeUseCase) List(nome string) ([]*entity.Finalidade, error) {
	return uc.repo.List(nome)
}
func (uc *finalidadeUseCase) Update(id int, nome string) (*entity.Finalidade, error) {
	return uc.repo.Update(id, nome)
}
func (uc *finalidadeUseCase) Delete(id int) error { return uc.repo.Delete(id) }

type CategoriaUseCase interface {
	Create(nome string) (*entity.Categoria, error)
	List(nome string) ([]*entity.Categoria, error)
	Update(id int, nome string) (*entity.Categoria, error)
	Delete(id int) error
}

type categoriaUseCase struct {
	repo persistent.CategoriaRepository
}

func NewCategoriaUseCase(repo persistent.CategoriaRepository) CategoriaUseCase {
	return &categoriaUseCase{repo: repo}
}

func (uc *categoriaUseCase) Create(nome string) (*entity.Categoria, error) {
	return uc.repo.Create(nome)
}
func (uc *categoriaUseCase) List(nome string) ([]*entity.Categoria, error) {
	return uc.repo.List(nome)
}
func (uc *categoriaUseCase) Update(id int, nome string) (*entity.Categoria, error) {
	return uc.repo.Update(id, nome)
}
func (uc *categoriaUseCase) Delete(id int) error { return uc.repo.Delete(id) }

type BlogCategoriaUseCase interface {
	Create(nome string) (*entity.BlogCategoria, error)
	List() ([]*entity.BlogCategoria, error)
	Update(id int, nome string) (*entity.BlogCategoria, error)
	Delete(id int) error
}

type blogCategoriaUseCase struct {
	repo persistent.BlogCategoriaRepository
}

func NewBlogCategoriaUseCase(repo persistent.BlogCategoriaRepository) BlogCategoriaUseCase {
	return &blogCategoriaUseCase{repo: repo}
}

func (uc *blogCategoriaUseCase) Create(nome string) (*entity.BlogCategoria, error) {
	return uc.repo.Create(nome)
}
func (uc *blogCategoriaUseCase) List() ([]*entity.BlogCategoria, error) {
	return uc.repo.List()
}
func (uc *blogCategoriaUseCase) Update(id int, nome string) (*entity.BlogCategoria, error) {
	return uc.repo.Update(id, nome)
}
func (uc *blogCategoriaUseCase) Delete(id int) error { return uc.repo.Delete(id) }
