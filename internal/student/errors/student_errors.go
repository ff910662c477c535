package studenterrors

import (
	"net/http"

	"classtrack/internal/shared/apperror"
)

var (
	ErrStudentNotFound = apperror.New(
		apperror.CodeNotFound,
		"Student not found",
		http.StatusNotFound,
	)
	ErrDuplicateRollNumber = apperror.New(
		apperror.CodeConflict,
		"Roll number already exists",
		http.StatusConflict,
	)
)
