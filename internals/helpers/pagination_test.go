package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolveVia(t *testing.T, target string) Paging {
	t.Helper()

	var got Paging
	app := fiber.New()
	app.Get("/items", func(c *fiber.Ctx) error {
		got = ResolvePaging(c, 20, 100)
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	return got
}

func TestResolvePaging(t *testing.T) {
	cases := []struct {
		name   string
		target string
		want   Paging
	}{
		{"default", "/items", Paging{Limit: 20, Offset: 0}},
		{"eksplisit", "/items?limit=50&offset=10", Paging{Limit: 50, Offset: 10}},
		{"limit di atas max dipotong", "/items?limit=500", Paging{Limit: 100, Offset: 0}},
		{"limit nol fallback default", "/items?limit=0", Paging{Limit: 20, Offset: 0}},
		{"limit negatif fallback default", "/items?limit=-5", Paging{Limit: 20, Offset: 0}},
		{"offset negatif jadi nol", "/items?offset=-1", Paging{Limit: 20, Offset: 0}},
		{"bukan angka fallback", "/items?limit=abc&offset=xyz", Paging{Limit: 20, Offset: 0}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, resolveVia(t, tc.target))
		})
	}
}

func TestBuildListMeta(t *testing.T) {
	meta := BuildListMeta(45, Paging{Limit: 20, Offset: 0})
	assert.True(t, meta.HasMore)

	meta = BuildListMeta(45, Paging{Limit: 20, Offset: 20})
	assert.True(t, meta.HasMore) // 40 < 45

	meta = BuildListMeta(45, Paging{Limit: 20, Offset: 40})
	assert.False(t, meta.HasMore) // 60 >= 45

	meta = BuildListMeta(0, Paging{Limit: 20, Offset: 0})
	assert.False(t, meta.HasMore)
	assert.Equal(t, int64(0), meta.Total)
}
