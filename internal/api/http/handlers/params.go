package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// pathID parses a positive integer path parameter.
func pathID(c *fiber.Ctx, name string) (int, bool) {
	id, err := strconv.Atoi(c.Params(name))
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

// optionalBoolQuery reads a tri-state boolean query parameter. An absent
// parameter yields nil so the data layer binds a true SQL NULL.
func optionalBoolQuery(c *fiber.Ctx, name string) (*bool, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, false
	}
	return &v, true
}

// optionalIntQuery reads an optional integer query parameter.
func optionalIntQuery(c *fiber.Ctx, name string) (*int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, false
	}
	return &v, true
}

// optionalStringQuery reads an optional string query parameter.
func optionalStringQuery(c *fiber.Ctx, name string) *string {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	return &raw
}
