package mysql

import (
	"database/sql"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/paqueteria/logistics-api/internal/core/domain"
)

// callProcedure runs CALL name(args...) and collects the informational
// lines the procedure emits as single-column result sets (SELECT '...' AS
// salida). Procedures that emit nothing yield an empty result.
func callProcedure(db *gorm.DB, name string, args ...any) (*domain.ProcedureResult, error) {
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(args)), ", ")
	rows, err := db.Raw(fmt.Sprintf("CALL %s(%s)", name, placeholders), args...).Rows()
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	res := &domain.ProcedureResult{}
	for {
		for rows.Next() {
			var line sql.NullString
			if err := rows.Scan(&line); err != nil {
				return nil, fmt.Errorf("%s: scan output: %w", name, err)
			}
			if line.Valid && line.String != "" {
				res.Lines = append(res.Lines, line.String)
			}
		}
		if !rows.NextResultSet() {
			break
		}
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err)
	}
	return res, nil
}

// exists reports whether table has a row whose key column equals id.
func exists(db *gorm.DB, model any, column string, id int64) (bool, error) {
	var n int64
	if err := db.Model(model).Where(column+" = ?", id).Count(&n).Error; err != nil {
		return false, mapError(err)
	}
	return n > 0, nil
}

// callOnExisting runs procedure name(id) inside a transaction after checking
// that the row exists, so a missing id reports domain.ErrNotFound whatever
// the procedure itself does.
func callOnExisting(db *gorm.DB, model any, column, name string, id int64, args ...any) error {
	return db.Transaction(func(tx *gorm.DB) error {
		ok, err := exists(tx, model, column, id)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrNotFound
		}
		_, err = callProcedure(tx, name, append([]any{id}, args...)...)
		return err
	})
}
