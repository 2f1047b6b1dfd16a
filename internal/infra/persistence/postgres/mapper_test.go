package postgres

import (
	"testing"
	"time"

	"github.com/IbrahimMurad/alx-files-manager/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestFileMapper_RoundTripKeepsRootParent(t *testing.T) {
	file := &entity.File{
		ID:         uuid.New(),
		OwnerID:    uuid.New(),
		Name:       "image.png",
		Type:       entity.FileTypeImage,
		IsPublic:   true,
		StorageRef: uuid.NewString(),
		CreatedAt:  time.Now(),
	}

	back := toFileDomain(fromFileDomain(file))
	assert.Equal(t, file, back)
	assert.Nil(t, back.ParentID)
	assert.Nil(t, toFileDomain(nil))
}

func TestSessionMapper(t *testing.T) {
	session := &entity.Session{
		TokenHash: "abc",
		UserID:    uuid.New(),
		ExpiresAt: time.Now().Add(time.Hour),
	}

	assert.Equal(t, session, toSessionDomain(fromSessionDomain(session)))
}
