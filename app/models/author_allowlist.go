package models

import "time"

// AuthorAllowlist gates CMS registration: only listed addresses may create
// an account. Rows are maintained out of band (migration or SQL console).
type AuthorAllowlist struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"uniqueIndex;type:varchar(200)" json:"email"`
	Name      string    `gorm:"type:varchar(150)" json:"name"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName keeps the table the CMS has always used.
func (AuthorAllowlist) TableName() string {
	return "cms_autoren_allowlist"
}
