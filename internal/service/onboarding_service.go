package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ingsebastiansierra/tiendaya/internal/dto"
	"github.com/ingsebastiansierra/tiendaya/internal/model"
	"github.com/ingsebastiansierra/tiendaya/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OnboardingService interface {
	// Completar creates the tienda, its categorías and the requesting
	// usuario's membership in one transaction.
	Completar(ctx context.Context, usuarioID uuid.UUID, req dto.CompletarOnboardingRequest) (*dto.OnboardingResponse, error)
}

type onboardingService struct {
	tiendaRepo    repository.TiendaRepository
	usuarioRepo   repository.UsuarioRepository
	categoriaRepo repository.CategoriaRepository
}

func NewOnboardingService(
	tiendaRepo repository.TiendaRepository,
	usuarioRepo repository.UsuarioRepository,
	categoriaRepo repository.CategoriaRepository,
) OnboardingService {
	return &onboardingService{
		tiendaRepo:    tiendaRepo,
		usuarioRepo:   usuarioRepo,
		categoriaRepo: categoriaRepo,
	}
}

var slugReemplazos = strings.NewReplacer(
	"á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u", "ñ", "n", "ü", "u",
)

// generarSlug normalizes the tienda name and appends a timestamp so two
// tiendas named the same never collide.
func generarSlug(nombre string) string {
	s := strings.ToLower(strings.TrimSpace(nombre))
	s = slugReemplazos.Replace(s)
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteRune('-')
		}
	}
	slug := strings.Trim(b.String(), "-")
	for strings.Contains(slug, "--") {
		slug = strings.ReplaceAll(slug, "--", "-")
	}
	return fmt.Sprintf("%s-%d", slug, time.Now().Unix())
}

func (s *onboardingService) Completar(ctx context.Context, usuarioID uuid.UUID, req dto.CompletarOnboardingRequest) (*dto.OnboardingResponse, error) {
	if len(req.Categorias) == 0 {
		return nil, errors.New("el onboarding requiere al menos una categoría")
	}
	usuario, err := s.usuarioRepo.FindByID(ctx, usuarioID)
	if err != nil {
		return nil, errors.New("usuario no encontrado")
	}

	tienda := model.Tienda{
		Nombre:    req.Nombre,
		Slug:      generarSlug(req.Nombre),
		Direccion: req.Direccion,
		Telefono:  req.Telefono,
		Email:     req.Email,
		Activa:    true,
	}

	var categorias []model.Categoria
	txErr := runTx(ctx, s.tiendaRepo.DB(), func(tx *gorm.DB) error {
		if err := s.tiendaRepo.CreateTx(tx, &tienda); err != nil {
			return err
		}

		membresia := model.UsuarioTienda{
			UsuarioID: usuario.ID,
			TiendaID:  tienda.ID,
			Rol:       model.RolAdminGeneral,
			Activo:    true,
		}
		if err := s.usuarioRepo.CreateMembresiaTx(tx, &membresia); err != nil {
			return err
		}

		categorias = make([]model.Categoria, 0, len(req.Categorias))
		for i, c := range req.Categorias {
			categorias = append(categorias, model.Categoria{
				TiendaID: tienda.ID,
				Nombre:   c.Nombre,
				Icono:    c.Icono,
				Orden:    i + 1,
				Activa:   true,
			})
		}
		return s.categoriaRepo.CrearBatchTx(tx, categorias)
	})
	if txErr != nil {
		return nil, txErr
	}

	catResponses := make([]dto.CategoriaResponse, 0, len(categorias))
	for _, c := range categorias {
		catResponses = append(catResponses, *categoriaToResponse(&c))
	}
	return &dto.OnboardingResponse{
		Tienda:     *tiendaToResponse(&tienda),
		Rol:        model.RolAdminGeneral,
		Categorias: catResponses,
	}, nil
}

func tiendaToResponse(t *model.Tienda) *dto.TiendaResponse {
	return &dto.TiendaResponse{
		ID:        t.ID.String(),
		Nombre:    t.Nombre,
		Slug:      t.Slug,
		Direccion: t.Direccion,
		Telefono:  t.Telefono,
		Email:     t.Email,
		LogoURL:   t.LogoURL,
		Activa:    t.Activa,
	}
}
