package validation

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshInput struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

type UsuarioCreateInput struct {
	Name     string `json:"name" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type UsuarioUpdateInput struct {
	Name     *string `json:"name" validate:"omitempty,min=3"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Password *string `json:"password" validate:"omitempty,min=6"`
}

// Empty reports whether no field was sent at all. An empty update body
// is rejected rather than treated as a no-op success.
func (i UsuarioUpdateInput) Empty() bool {
	return i.Name == nil && i.Email == nil && i.Password == nil
}

// CatalogoInput covers the name-only vocabularies (tipo, finalidade,
// categoria, blog-categoria).
type CatalogoInput struct {
	Nome string `json:"nome" validate:"required,min=2"`
}
