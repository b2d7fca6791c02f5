package handlers

import (
	"errors"
	"strconv"

	"grocery-tracker/domain"

	"github.com/gofiber/fiber/v2"
)

var errInvalidID = errors.New("invalid id, expected a positive integer")

func parseIDParam(c *fiber.Ctx, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(name), 10, 32)
	if err != nil || id == 0 {
		return 0, errInvalidID
	}
	return uint(id), nil
}

func parsePagination(c *fiber.Ctx) (skip, limit int) {
	skip, err := strconv.Atoi(c.Query("skip", "0"))
	if err != nil || skip < 0 {
		skip = domain.DefaultSkip
	}

	limit, err = strconv.Atoi(c.Query("limit", "10"))
	if err != nil || limit < 1 {
		limit = domain.DefaultLimit
	}
	return skip, limit
}
