package attendanceerrors

import (
	"net/http"

	"classtrack/internal/shared/apperror"
)

var (
	ErrRecordNotFound = apperror.New(
		apperror.CodeNotFound,
		"Record not found",
		http.StatusNotFound,
	)
	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid date format. Use YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"Status must be Present or Absent",
		http.StatusBadRequest,
	)
	ErrMissingRange = apperror.New(
		apperror.CodeInvalidInput,
		"from and to query params are required",
		http.StatusBadRequest,
	)
	ErrEmptyBatch = apperror.New(
		apperror.CodeInvalidInput,
		"date and records array are required",
		http.StatusBadRequest,
	)
	ErrMissingStudentID = apperror.New(
		apperror.CodeInvalidInput,
		"studentId, date and status are required",
		http.StatusBadRequest,
	)
)
