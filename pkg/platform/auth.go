package platform

import "net/http"

const (
	HeaderAuthorization   = "Authorization"
	HeaderClientRequestID = "x-ms-client-request-id"
)

// SetBearer attaches a static bearer credential to req.
func SetBearer(req *http.Request, token string) {
	req.Header.Set(HeaderAuthorization, "Bearer "+token)
}
