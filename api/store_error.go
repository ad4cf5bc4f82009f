package api

import (
	"net/http"

	db "github.com/VxidDev/eduDuck/db/sqlc"
)

// storeErrorStatus maps a db.Store error to the HTTP status code for it.
func storeErrorStatus(err error) int {
	switch db.ErrorKind(err) {
	case db.KindNotFound:
		return http.StatusNotFound
	case db.KindConflict:
		return http.StatusConflict
	case db.KindInvalid:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
