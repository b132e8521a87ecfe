package mysql

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/paqueteria/logistics-api/internal/core/domain"
	"github.com/paqueteria/logistics-api/internal/core/ports"
)

const colFacturaID = "ID_FACTURA"

type FacturaRepository struct {
	store
}

func NewFacturaRepository(db *gorm.DB, queryTimeout time.Duration) ports.FacturaRepository {
	return &FacturaRepository{store: newStore(db, queryTimeout)}
}

func (r *FacturaRepository) Create(ctx context.Context, f domain.Factura) (*domain.ProcedureResult, error) {
	db, cancel := r.conn(ctx)
	defer cancel()

	return callProcedure(db, "crear_factura",
		f.Detalle, f.EstadoPago, f.MontoTotal, f.Fecha, f.MetodoPago, f.IVA, f.Descuento, f.PaqueteID)
}

func (r *FacturaRepository) Pay(ctx context.Context, id int64) error {
	db, cancel := r.conn(ctx)
	defer cancel()

	return callOnExisting(db, &facturaModel{}, colFacturaID, "pagar_factura", id)
}

func (r *FacturaRepository) List(ctx context.Context) ([]domain.Factura, error) {
	db, cancel := r.conn(ctx)
	defer cancel()

	var rows []facturaModel
	if err := db.Order(colFacturaID).Find(&rows).Error; err != nil {
		return nil, mapError(err)
	}
	out := make([]domain.Factura, 0, len(rows))
	for _, m := range rows {
		out = append(out, m.toDomain())
	}
	return out, nil
}

func (r *FacturaRepository) FindByID(ctx context.Context, id int64) (*domain.Factura, error) {
	db, cancel := r.conn(ctx)
	defer cancel()

	var m facturaModel
	if err := db.Where(colFacturaID+" = ?", id).Take(&m).Error; err != nil {
		return nil, mapError(err)
	}
	f := m.toDomain()
	return &f, nil
}

func (r *FacturaRepository) Delete(ctx context.Context, id int64) error {
	db, cancel := r.conn(ctx)
	defer cancel()

	return checkAffected(db.Where(colFacturaID+" = ?", id).Delete(&facturaModel{}))
}
