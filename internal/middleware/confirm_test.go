package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequireConfirm(t *testing.T) {
	app := fiber.New()
	app.Delete("/data", RequireConfirm("confirm", "yes"), func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusNoContent)
	})

	tests := []struct {
		query string
		want  int
	}{
		{"", http.StatusBadRequest},
		{"?confirm=no", http.StatusBadRequest},
		{"?confirm=YES", http.StatusBadRequest},
		{"?confirm=yes", http.StatusNoContent},
	}
	for _, tt := range tests {
		resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/data"+tt.query, nil), -1)
		require.NoError(t, err)
		assert.Equal(t, tt.want, resp.StatusCode, tt.query)
	}
}
