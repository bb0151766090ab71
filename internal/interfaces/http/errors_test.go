package http

import (
	"errors"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/panaderia-api/internal/domain"
)

func callInternalError(t *testing.T, err error) (int, string) {
	t.Helper()
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return internalError(c, err)
	})
	resp, reqErr := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil), -1)
	require.NoError(t, reqErr)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(body)
}

// El error de Begin conserva la causa de pgx en el texto pero sigue
// envolviendo el centinela, así que el mapeo a 503 no se pierde.
func TestInternalError_StoreCaidoConCausa_Retorna503(t *testing.T) {
	cause := errors.New("dial tcp 127.0.0.1:5432: connect: connection refused")
	err := fmt.Errorf("begin transaction: %w (%v)", domain.ErrStoreUnavailable, cause)

	require.ErrorIs(t, err, domain.ErrStoreUnavailable)
	assert.Contains(t, err.Error(), "connection refused",
		"la causa original debe quedar en el mensaje")

	status, body := callInternalError(t, err)
	assert.Equal(t, fiber.StatusServiceUnavailable, status)
	assert.Contains(t, body, "STORE_UNAVAILABLE")
}

func TestInternalError_ErrorDesconocido_Retorna500(t *testing.T) {
	status, body := callInternalError(t, errors.New("algo inesperado"))
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Contains(t, body, "INTERNAL")
}
