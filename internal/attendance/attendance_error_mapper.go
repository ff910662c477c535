package attendance

import (
	"errors"

	"gorm.io/gorm"

	attendanceerrors "classtrack/internal/attendance/errors"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return attendanceerrors.ErrRecordNotFound
	}

	return err
}
