package models

import "gorm.io/gorm"

// Upload is the metadata record for one stored spreadsheet. The bytes
// themselves live in the object store under ObjectKey.
type Upload struct {
	gorm.Model
	AccountID    uint
	Account      Account
	OriginalName string
	ObjectKey    string `gorm:"uniqueIndex"`
	Size         int64
	ContentType  string
}
