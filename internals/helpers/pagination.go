package helper

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

/* ===============================
   Paging resolver (query → limit/offset)
=================================*/

type Paging struct {
	Limit  int
	Offset int
}

// ResolvePaging membaca ?limit= & ?offset= dan normalisasi.
// - defaultLimit: fallback kalau tidak ada/invalid
// - maxLimit: batasi limit maksimum (0 = tanpa batas)
func ResolvePaging(c *fiber.Ctx, defaultLimit, maxLimit int) Paging {
	limitStr := strings.TrimSpace(c.Query("limit", strconv.Itoa(defaultLimit)))
	offsetStr := strings.TrimSpace(c.Query("offset", "0"))

	limit, _ := strconv.Atoi(limitStr)
	if limit <= 0 {
		limit = defaultLimit
	}
	if maxLimit > 0 && limit > maxLimit {
		limit = maxLimit
	}

	offset, _ := strconv.Atoi(offsetStr)
	if offset < 0 {
		offset = 0
	}

	return Paging{Limit: limit, Offset: offset}
}

/* ===============================
   List meta
=================================*/

type ListMeta struct {
	Total   int64 `json:"total"`
	Limit   int   `json:"limit"`
	Offset  int   `json:"offset"`
	HasMore bool  `json:"has_more"`
}

// BuildListMeta: has_more = offset+limit < total
func BuildListMeta(total int64, p Paging) ListMeta {
	return ListMeta{
		Total:   total,
		Limit:   p.Limit,
		Offset:  p.Offset,
		HasMore: int64(p.Offset+p.Limit) < total,
	}
}
