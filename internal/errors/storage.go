package errors

import "net/http"

var ErrStorage = &Exception{
	Message:    "storage failure",
	StatusCode: http.StatusInternalServerError,
}
