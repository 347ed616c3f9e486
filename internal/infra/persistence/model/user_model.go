// Package model holds the GORM persistence models.
package model

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID       int64  `gorm:"primaryKey;autoIncrement"`
	Username string `gorm:"type:text;not null;unique"`
	Password string `gorm:"type:text;not null"`
	Email    string `gorm:"type:text;not null"`
	Role     string `gorm:"type:text;not null"`
	Active   bool   `gorm:"type:integer;not null"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
