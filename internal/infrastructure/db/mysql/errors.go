package mysql

import (
	"errors"
	"fmt"

	mysqldriver "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"github.com/paqueteria/logistics-api/internal/core/domain"
)

// MySQL server error numbers.
const (
	errDuplicateEntry  uint16 = 1062
	errRowIsReferenced uint16 = 1451
	errNoReferencedRow uint16 = 1452
	errSignalException uint16 = 1644
)

// mapError classifies a driver or GORM error into a domain error kind. The
// original error stays in the chain for logging.
func mapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %w", domain.ErrNotFound, err)
	}

	var myErr *mysqldriver.MySQLError
	if errors.As(err, &myErr) {
		switch myErr.Number {
		case errDuplicateEntry:
			return fmt.Errorf("%w: %w", domain.ErrConflictDuplicate, err)
		case errRowIsReferenced:
			return fmt.Errorf("%w: %w", domain.ErrDependencyConflict, err)
		case errNoReferencedRow:
			return fmt.Errorf("%w: %w", domain.ErrMissingReference, err)
		case errSignalException:
			// Procedures raise business rule violations with
			// SIGNAL SQLSTATE '45000'; the message is written for clients.
			return domain.NewError(domain.ErrInvalidInput, myErr.Message)
		}
	}

	return err
}

// checkAffected turns an UPDATE or DELETE that touched nothing into
// domain.ErrNotFound.
func checkAffected(res *gorm.DB) error {
	if res.Error != nil {
		return mapError(res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
