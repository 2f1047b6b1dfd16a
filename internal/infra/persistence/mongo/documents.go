package mongo

import (
	"time"

	"github.com/IbrahimMurad/alx-files-manager/internal/domain/entity"

	"github.com/google/uuid"
)

// UUIDs are stored in their canonical string form so documents stay readable in the shell.

type userDocument struct {
	ID           string    `bson:"_id"`
	Email        string    `bson:"email"`
	PasswordHash string    `bson:"password"`
	CreatedAt    time.Time `bson:"created_at"`
}

type sessionDocument struct {
	TokenHash string    `bson:"_id"`
	UserID    string    `bson:"user_id"`
	ExpiresAt time.Time `bson:"expires_at"`
	CreatedAt time.Time `bson:"created_at"`
}

type fileDocument struct {
	ID         string    `bson:"_id"`
	OwnerID    string    `bson:"owner_id"`
	Name       string    `bson:"name"`
	Type       string    `bson:"type"`
	ParentID   *string   `bson:"parent_id"`
	IsPublic   bool      `bson:"is_public"`
	StorageRef string    `bson:"storage_ref,omitempty"`
	CreatedAt  time.Time `bson:"created_at"`
	UpdatedAt  time.Time `bson:"updated_at"`
}

func fromUserDomain(user *entity.User) *userDocument {
	return &userDocument{
		ID:           user.ID.String(),
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		CreatedAt:    user.CreatedAt,
	}
}

func (d *userDocument) toDomain() (*entity.User, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return nil, err
	}

	return &entity.User{
		ID:           id,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		CreatedAt:    d.CreatedAt,
	}, nil
}

func fromSessionDomain(session *entity.Session) *sessionDocument {
	return &sessionDocument{
		TokenHash: session.TokenHash,
		UserID:    session.UserID.String(),
		ExpiresAt: session.ExpiresAt,
		CreatedAt: session.CreatedAt,
	}
}

func (d *sessionDocument) toDomain() (*entity.Session, error) {
	userID, err := uuid.Parse(d.UserID)
	if err != nil {
		return nil, err
	}

	return &entity.Session{
		TokenHash: d.TokenHash,
		UserID:    userID,
		ExpiresAt: d.ExpiresAt,
		CreatedAt: d.CreatedAt,
	}, nil
}

func fromFileDomain(file *entity.File) *fileDocument {
	return &fileDocument{
		ID:         file.ID.String(),
		OwnerID:    file.OwnerID.String(),
		Name:       file.Name,
		Type:       file.Type.String(),
		ParentID:   parentKey(file.ParentID),
		IsPublic:   file.IsPublic,
		StorageRef: file.StorageRef,
		CreatedAt:  file.CreatedAt,
		UpdatedAt:  file.UpdatedAt,
	}
}

func (d *fileDocument) toDomain() (*entity.File, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return nil, err
	}
	ownerID, err := uuid.Parse(d.OwnerID)
	if err != nil {
		return nil, err
	}

	var parentID *uuid.UUID
	if d.ParentID != nil {
		parsed, err := uuid.Parse(*d.ParentID)
		if err != nil {
			return nil, err
		}
		parentID = &parsed
	}

	return &entity.File{
		ID:         id,
		OwnerID:    ownerID,
		Name:       d.Name,
		Type:       entity.FileType(d.Type),
		ParentID:   parentID,
		IsPublic:   d.IsPublic,
		StorageRef: d.StorageRef,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}, nil
}

func parentKey(parentID *uuid.UUID) *string {
	if parentID == nil {
		return nil
	}
	key := parentID.String()

	return &key
}
