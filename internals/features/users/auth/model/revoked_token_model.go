package model

import "time"

// RevokedTokenModel: access token yang sudah logout, disimpan sebagai digest HMAC.
// Baris boleh dihapus setelah ExpiresAt karena token sudah ditolak oleh cek exp.
type RevokedTokenModel struct {
	Token     string    `gorm:"type:text;primaryKey" json:"-"`
	UserID    string    `gorm:"type:uuid;not null;index" json:"userId"`
	ExpiresAt time.Time `gorm:"type:timestamptz;not null;index" json:"expiresAt"`
	CreatedAt time.Time `gorm:"type:timestamptz;autoCreateTime" json:"createdAt"`
}

func (RevokedTokenModel) TableName() string {
	return "revoked_tokens"
}
