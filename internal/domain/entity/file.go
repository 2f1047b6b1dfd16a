package entity

import (
	"time"

	"github.com/google/uuid"
)

// FileType is the kind of a stored node.
type FileType string

const (
	FileTypeFolder FileType = "folder"
	FileTypeFile   FileType = "file"
	FileTypeImage  FileType = "image"
)

// ParseFileType converts a raw type string into a FileType.
func ParseFileType(raw string) (FileType, bool) {
	switch FileType(raw) {
	case FileTypeFolder, FileTypeFile, FileTypeImage:
		return FileType(raw), true
	default:
		return "", false
	}
}

// IsFolder reports whether nodes of this type are containers without content.
func (t FileType) IsFolder() bool {
	return t == FileTypeFolder
}

// String implements fmt.Stringer.
func (t FileType) String() string {
	return string(t)
}

// File is a node of a user's file tree: either a folder or a leaf carrying stored bytes.
//
// A folder never has a StorageRef; a file or image always has one.
// ParentID is nil for nodes placed at the root.
type File struct {
	ID         uuid.UUID  // The Global Unique Identifier (GUID) for the node.
	OwnerID    uuid.UUID  // The user who uploaded the node.
	Name       string     // Display name given at upload.
	Type       FileType   // folder, file or image.
	ParentID   *uuid.UUID // Containing folder, nil at the root.
	IsPublic   bool       // Public nodes expose their content to anyone.
	StorageRef string     // Opaque blob key, empty for folders.
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// IsFolder reports whether the node is a folder.
func (f *File) IsFolder() bool {
	return f.Type.IsFolder()
}

// IsOwnedBy reports whether the node belongs to the given user.
func (f *File) IsOwnedBy(userID uuid.UUID) bool {
	return userID != uuid.Nil && f.OwnerID == userID
}
