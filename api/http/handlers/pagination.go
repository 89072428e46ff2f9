package handlers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// parsePageQuery reads 1-indexed "page" and "limit" query params. Values that
// are absent, malformed or out of range fall back to page 1 / defSize, so a
// hand-edited URL degrades to the first page instead of an error.
func parsePageQuery(c *fiber.Ctx, defSize, maxSize int) (page, pageSize int) {
	page = 1
	pageSize = defSize
	if v := strings.TrimSpace(c.Query("page")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			page = n
		}
	}
	if v := strings.TrimSpace(c.Query("limit")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= maxSize {
			pageSize = n
		}
	}
	return page, pageSize
}
