package api

import (
	"io"
	"net/http"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/labstack/echo/v4"

	"github.com/malovets/fleetops/internal/pkg/constants"
)

// Binder decodes JSON bodies with sonic and defers everything else to the
// echo default binder.
type Binder struct {
	fallback echo.DefaultBinder
}

func NewBinder() *Binder {
	return &Binder{}
}

func (b *Binder) Bind(i interface{}, c echo.Context) error {
	req := c.Request()
	contentType := req.Header.Get(echo.HeaderContentType)

	if req.ContentLength != 0 && strings.HasPrefix(contentType, echo.MIMEApplicationJSON) {
		body, err := io.ReadAll(req.Body)
		if err != nil {
			return constants.NewCodedError("failed to read request body", http.StatusBadRequest)
		}

		if err = sonic.Unmarshal(body, i); err != nil {
			return constants.NewCodedError("malformed json body", http.StatusBadRequest)
		}

		return b.fallback.BindPathParams(c, i)
	}

	return b.fallback.Bind(i, c)
}
