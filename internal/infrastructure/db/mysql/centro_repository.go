package mysql

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/paqueteria/logistics-api/internal/core/domain"
	"github.com/paqueteria/logistics-api/internal/core/ports"
)

const colCentroID = "ID_CENTRO_DISTRIBUCION"

type CentroRepository struct {
	store
}

func NewCentroRepository(db *gorm.DB, queryTimeout time.Duration) ports.CentroRepository {
	return &CentroRepository{store: newStore(db, queryTimeout)}
}

func (r *CentroRepository) List(ctx context.Context) ([]domain.Centro, error) {
	db, cancel := r.conn(ctx)
	defer cancel()

	var rows []centroModel
	if err := db.Order(colCentroID).Find(&rows).Error; err != nil {
		return nil, mapError(err)
	}
	out := make([]domain.Centro, 0, len(rows))
	for _, m := range rows {
		out = append(out, m.toDomain())
	}
	return out, nil
}

func (r *CentroRepository) FindByID(ctx context.Context, id int64) (*domain.Centro, error) {
	db, cancel := r.conn(ctx)
	defer cancel()

	var m centroModel
	if err := db.Where(colCentroID+" = ?", id).Take(&m).Error; err != nil {
		return nil, mapError(err)
	}
	c := m.toDomain()
	return &c, nil
}

func (r *CentroRepository) Create(ctx context.Context, ubicacion string, capacidad int) (int64, error) {
	db, cancel := r.conn(ctx)
	defer cancel()

	var id int64
	if err := db.Raw("SELECT crear_centro(?, ?)", ubicacion, capacidad).Row().Scan(&id); err != nil {
		return 0, mapError(err)
	}
	return id, nil
}

// Update applies the capacity through actualizar_capacidad and, if given, the
// new location, committing both or neither.
func (r *CentroRepository) Update(ctx context.Context, id int64, capacidad int, ubicacion string) (string, error) {
	db, cancel := r.conn(ctx)
	defer cancel()

	var detalle string
	err := db.Transaction(func(tx *gorm.DB) error {
		ok, err := exists(tx, &centroModel{}, colCentroID, id)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrNotFound
		}
		if err := tx.Raw("SELECT actualizar_capacidad(?, ?)", id, capacidad).Row().Scan(&detalle); err != nil {
			return mapError(err)
		}
		if ubicacion == "" {
			return nil
		}
		return mapError(tx.Model(&centroModel{}).Where(colCentroID+" = ?", id).
			Update("UBICACION_CEN_DIST", ubicacion).Error)
	})
	return detalle, err
}

func (r *CentroRepository) Delete(ctx context.Context, id int64) (string, error) {
	db, cancel := r.conn(ctx)
	defer cancel()

	var result string
	if err := db.Raw("SELECT eliminar_centro(?)", id).Row().Scan(&result); err != nil {
		return "", mapError(err)
	}
	return result, nil
}
