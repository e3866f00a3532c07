package service

import (
	"context"
	"strconv"
	"strings"
	"testing"

	"github.com/ingsebastiansierra/tiendaya/internal/dto"
	"github.com/ingsebastiansierra/tiendaya/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerarSlug(t *testing.T) {
	casos := []struct {
		nombre  string
		prefijo string
	}{
		{"Tienda Doña María", "tienda-dona-maria"},
		{"  El Rincón del Café  ", "el-rincon-del-cafe"},
		{"Abarrotes & Más", "abarrotes-mas"},
		{"super_la_24", "super-la-24"},
		{"Ñoño's", "nonos"},
	}
	for _, c := range casos {
		slug := generarSlug(c.nombre)
		assert.True(t, strings.HasPrefix(slug, c.prefijo+"-"), "slug %q debería empezar con %q", slug, c.prefijo)

		// el sufijo es un timestamp unix
		sufijo := strings.TrimPrefix(slug, c.prefijo+"-")
		_, err := strconv.ParseInt(sufijo, 10, 64)
		assert.NoError(t, err, "sufijo %q no es numérico", sufijo)
	}
}

func TestCompletarOnboarding(t *testing.T) {
	ctx := context.Background()
	tiendaRepo := newStubTiendaRepo()
	usuarioRepo := newStubUsuarioRepo()
	categoriaRepo := newStubCategoriaRepo()
	svc := NewOnboardingService(tiendaRepo, usuarioRepo, categoriaRepo)

	usuario := &model.Usuario{Email: "maria@example.com", NombreCompleto: "María Pérez", Activo: true}
	require.NoError(t, usuarioRepo.Create(ctx, usuario))

	resp, err := svc.Completar(ctx, usuario.ID, dto.CompletarOnboardingRequest{
		Nombre: "Tienda Doña María",
		Categorias: []dto.CategoriaOnboarding{
			{Nombre: "Bebidas"},
			{Nombre: "Abarrotes"},
			{Nombre: "Aseo"},
		},
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(resp.Tienda.Slug, "tienda-dona-maria-"))
	assert.True(t, resp.Tienda.Activa)
	assert.Equal(t, model.RolAdminGeneral, resp.Rol)

	// el usuario que completa el onboarding queda como admin_general
	tienda, err := tiendaRepo.FindBySlug(ctx, resp.Tienda.Slug)
	require.NoError(t, err)
	membresia, err := usuarioRepo.FindMembresia(ctx, usuario.ID, tienda.ID)
	require.NoError(t, err)
	assert.Equal(t, model.RolAdminGeneral, membresia.Rol)
	assert.True(t, membresia.Activo)

	// las categorías conservan el orden en que el cliente las mandó
	require.Len(t, resp.Categorias, 3)
	assert.Equal(t, "Bebidas", resp.Categorias[0].Nombre)
	assert.Equal(t, "Abarrotes", resp.Categorias[1].Nombre)
	assert.Equal(t, "Aseo", resp.Categorias[2].Nombre)
	for i, c := range resp.Categorias {
		assert.Equal(t, i+1, c.Orden)
	}
}

func TestCompletarOnboardingValidaciones(t *testing.T) {
	ctx := context.Background()
	tiendaRepo := newStubTiendaRepo()
	usuarioRepo := newStubUsuarioRepo()
	categoriaRepo := newStubCategoriaRepo()
	svc := NewOnboardingService(tiendaRepo, usuarioRepo, categoriaRepo)

	usuario := &model.Usuario{Email: "luis@example.com", NombreCompleto: "Luis", Activo: true}
	require.NoError(t, usuarioRepo.Create(ctx, usuario))

	_, err := svc.Completar(ctx, usuario.ID, dto.CompletarOnboardingRequest{Nombre: "Mi Tienda"})
	assert.Error(t, err, "sin categorías no hay onboarding")

	_, err = svc.Completar(ctx, uuid.New(), dto.CompletarOnboardingRequest{
		Nombre:     "Mi Tienda",
		Categorias: []dto.CategoriaOnboarding{{Nombre: "Bebidas"}},
	})
	assert.Error(t, err)
	assert.Empty(t, tiendaRepo.tiendas, "no debe quedar tienda a medias")
}
