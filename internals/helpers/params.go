package helper

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"shiftlink_backend/internals/helpers/apperr"
)

// ParseUUIDParam membaca path param :name sebagai UUID.
func ParseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params(name)))
	if err != nil {
		return uuid.Nil, apperr.InvalidInput("invalid "+name, map[string]string{name: "uuid"})
	}
	return id, nil
}

// QueryUUID: nil kalau kosong; format salah dicatat ke fields.
func QueryUUID(c *fiber.Ctx, key string, fields map[string]string) *uuid.UUID {
	v := strings.TrimSpace(c.Query(key))
	if v == "" {
		return nil
	}
	id, err := uuid.Parse(v)
	if err != nil {
		fields[key] = "uuid"
		return nil
	}
	return &id
}

// QueryBool: hanya "true"/"false" (case-insensitive) yang diterima.
func QueryBool(c *fiber.Ctx, key string, fields map[string]string) *bool {
	v := strings.TrimSpace(c.Query(key))
	if v == "" {
		return nil
	}
	b, err := strconv.ParseBool(strings.ToLower(v))
	if err != nil {
		fields[key] = "boolean"
		return nil
	}
	return &b
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// LikeContains: pola "%s%" dengan wildcard milik user di-escape, dipakai bersama ESCAPE '\'.
func LikeContains(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}
