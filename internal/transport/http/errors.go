package httptransport

import (
	"net/http"

	"librarian/pkg/platform/httputil"
)

// writeStatus renders the standard error envelope for router-level failures.
func writeStatus(w http.ResponseWriter, status int) {
	httputil.WriteJSON(w, status, httputil.ErrorResponse{
		Message:   http.StatusText(status),
		ErrorCode: status,
	})
}
