// Seed crea los datos mínimos para operar en un entorno nuevo: la cuenta
// admin, los catálogos de referencia y unos productos de ejemplo.
// Idempotente a nivel de fila: las filas duplicadas se saltan (ErrDuplicate).
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
	"github.com/jhoicas/almacen-api/internal/infrastructure/postgres"
	"github.com/jhoicas/almacen-api/pkg/config"
	"github.com/jhoicas/almacen-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Service: "seed"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	employeeRepo := postgres.NewEmployeeRepository(pool)
	departmentRepo := postgres.NewDepartmentRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	unitRepo := postgres.NewUnitRepository(pool)
	productRepo := postgres.NewProductRepository(pool)

	adminPassword := os.Getenv("SEED_ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "admin1234"
		log.Warn().Msg("SEED_ADMIN_PASSWORD no definido, usando contraseña por defecto")
	}

	now := time.Now()
	employees := []struct {
		username, fullName, nickname, role, password string
	}{
		{"admin", "Administrador del Sistema", "Admin", entity.RoleAdmin, adminPassword},
		{"gerente", "Gerente de Almacén", "Gerencia", entity.RoleManager, adminPassword},
		{"bodega", "Oficial de Bodega", "Bodega", entity.RoleStoreOfficer, adminPassword},
	}
	for _, e := range employees {
		hash, err := bcrypt.GenerateFromPassword([]byte(e.password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal().Err(err).Msg("hash de contraseña")
		}
		err = employeeRepo.Create(&entity.Employee{
			ID:           uuid.NewString(),
			Username:     e.username,
			FullName:     e.fullName,
			Nickname:     e.nickname,
			Role:         e.role,
			PasswordHash: string(hash),
			Status:       "active",
			CreatedAt:    now,
			UpdatedAt:    now,
		})
		if errors.Is(err, domain.ErrDuplicate) {
			log.Info().Str("username", e.username).Msg("empleado ya existe, saltando")
			continue
		}
		if err != nil {
			log.Fatal().Err(err).Str("username", e.username).Msg("crear empleado")
		}
		log.Info().Str("username", e.username).Str("role", e.role).Msg("empleado creado")
	}

	for _, name := range []string{"Administración", "Mantenimiento", "Producción", "Ventas"} {
		err := departmentRepo.Create(&entity.Department{ID: uuid.NewString(), Name: name})
		if err != nil && !errors.Is(err, domain.ErrDuplicate) {
			log.Fatal().Err(err).Str("name", name).Msg("crear departamento")
		}
	}

	categoryIDs, err := ensureCategories(categoryRepo, []string{"Papelería", "Limpieza", "Herramientas"})
	if err != nil {
		log.Fatal().Err(err).Msg("sembrar categorías")
	}

	unitIDs, err := ensureUnits(unitRepo, []string{"pieza", "caja", "galón"})
	if err != nil {
		log.Fatal().Err(err).Msg("sembrar unidades")
	}

	products := []struct {
		code, name, category, unit string
		price, safety              string
	}{
		{"PAP-01-01", "Resma papel carta", "Papelería", "caja", "120.00", "10"},
		{"PAP-01-02", "Bolígrafo azul", "Papelería", "pieza", "5.50", "50"},
		{"LMP-02-01", "Desinfectante multiusos", "Limpieza", "galón", "85.00", "5"},
		{"HRM-03-01", "Juego de destornilladores", "Herramientas", "pieza", "240.00", "2"},
	}
	for _, p := range products {
		price, _ := decimal.NewFromString(p.price)
		safety, _ := decimal.NewFromString(p.safety)
		err := productRepo.Create(&entity.Product{
			ID:           uuid.NewString(),
			Code:         p.code,
			Name:         p.name,
			CategoryID:   categoryIDs[p.category],
			UnitID:       unitIDs[p.unit],
			UnitPrice:    price,
			CurrentStock: decimal.Zero,
			SafetyStock:  safety,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
		if errors.Is(err, domain.ErrDuplicate) {
			log.Info().Str("code", p.code).Msg("producto ya existe, saltando")
			continue
		}
		if err != nil {
			log.Fatal().Err(err).Str("code", p.code).Msg("crear producto")
		}
	}

	log.Info().Msg("seed completado")
}

// ensureCategories intenta crear cada categoría y devuelve el mapa nombre → id
// releído de la base, de modo que en una segunda corrida los productos
// referencien la fila que ya existe y no un id que nunca se insertó.
func ensureCategories(repo repository.CategoryRepository, names []string) (map[string]string, error) {
	for _, name := range names {
		err := repo.Create(&entity.Category{ID: uuid.NewString(), Name: name})
		if err != nil && !errors.Is(err, domain.ErrDuplicate) {
			return nil, fmt.Errorf("crear categoría %q: %w", name, err)
		}
	}
	all, err := repo.ListAll()
	if err != nil {
		return nil, fmt.Errorf("listar categorías: %w", err)
	}
	ids := make(map[string]string, len(all))
	for _, c := range all {
		ids[c.Name] = c.ID
	}
	return ids, nil
}

// ensureUnits misma mecánica que ensureCategories para unidades de medida.
func ensureUnits(repo repository.UnitRepository, names []string) (map[string]string, error) {
	for _, name := range names {
		err := repo.Create(&entity.Unit{ID: uuid.NewString(), Name: name})
		if err != nil && !errors.Is(err, domain.ErrDuplicate) {
			return nil, fmt.Errorf("crear unidad %q: %w", name, err)
		}
	}
	all, err := repo.ListAll()
	if err != nil {
		return nil, fmt.Errorf("listar unidades: %w", err)
	}
	ids := make(map[string]string, len(all))
	for _, u := range all {
		ids[u.Name] = u.ID
	}
	return ids, nil
}
