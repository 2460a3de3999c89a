package helper

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// LocRawToken menyimpan access token mentah supaya handler logout bisa mencabutnya.
const LocRawToken = "access_token_raw"

// TokenDigest: HMAC-SHA256(token) dalam hex. Yang disimpan di tabel revoked_tokens
// hanya digest ini, bukan token aslinya.
func TokenDigest(rawAccessToken, secret string) string {
	rawAccessToken = strings.TrimSpace(rawAccessToken)
	if rawAccessToken == "" || strings.TrimSpace(secret) == "" {
		return ""
	}
	m := hmac.New(sha256.New, []byte(secret))
	_, _ = m.Write([]byte(rawAccessToken))
	return hex.EncodeToString(m.Sum(nil))
}

// RawTokenFrom: token yang sudah diverifikasi middleware auth untuk request ini.
func RawTokenFrom(c *fiber.Ctx) string {
	s, _ := c.Locals(LocRawToken).(string)
	return s
}
