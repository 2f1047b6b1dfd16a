package model

import (
	"time"

	"github.com/google/uuid"
)

// FileModel mirrors the 'files' table holding folder, file and image nodes.
// ParentID is NULL for nodes at the root of an owner's tree.
type FileModel struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OwnerID    uuid.UUID  `gorm:"type:uuid;not null;index:idx_files_owner_parent,priority:1"`
	ParentID   *uuid.UUID `gorm:"type:uuid;index:idx_files_owner_parent,priority:2"`
	Name       string     `gorm:"type:varchar(255);not null"`
	Type       string     `gorm:"type:varchar(16);not null"`
	IsPublic   bool       `gorm:"not null;default:false"`
	StorageRef string     `gorm:"type:varchar(64)"`
	CreatedAt  time.Time  `gorm:"index"`
	UpdatedAt  time.Time

	Owner *UserModel `gorm:"foreignKey:OwnerID"`
}

// TableName explicitly sets the table name for GORM.
func (FileModel) TableName() string {
	return "files"
}
