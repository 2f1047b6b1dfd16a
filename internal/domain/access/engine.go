// Package access holds the authorization rules that gate every file operation.
package access

import (
	"context"
	"math"

	"github.com/IbrahimMurad/alx-files-manager/internal/domain/entity"
	domainerrors "github.com/IbrahimMurad/alx-files-manager/internal/domain/errors"
	"github.com/IbrahimMurad/alx-files-manager/internal/domain/repository"
	"github.com/IbrahimMurad/alx-files-manager/internal/errors"

	"github.com/google/uuid"
)

// PageSize is the fixed number of nodes returned by one listing page.
const PageSize = 20

// Engine decides whether a user may create, read or modify file tree nodes.
// Only AuthorizeParent touches the store; every other rule is a pure decision.
type Engine struct {
	files repository.FileRepository
}

// NewEngine is the constructor for Engine.
func NewEngine(files repository.FileRepository) *Engine {
	return &Engine{files: files}
}

// AuthorizeParent checks the parent a new node is placed under.
// A nil parent is the root and always passes without a lookup.
// Otherwise the parent must be an existing folder owned by ownerID.
func (e *Engine) AuthorizeParent(ctx context.Context, ownerID uuid.UUID, parentID *uuid.UUID) (*entity.File, error) {
	if parentID == nil {
		return nil, nil
	}

	parent, err := e.files.FindByID(ctx, *parentID)
	if err != nil {
		if errors.Is(err, repository.ErrFileNotFound) {
			return nil, errors.Wrap(domainerrors.ErrParentNotFound, parentID.String())
		}

		return nil, errors.Wrap(err, "failed to find parent")
	}

	// Someone else's folder is reported the same way as a missing one.
	if !parent.IsOwnedBy(ownerID) {
		return nil, errors.Wrap(domainerrors.ErrParentNotFound, parentID.String())
	}

	if !parent.IsFolder() {
		return nil, errors.Wrap(domainerrors.ErrParentNotFolder, parentID.String())
	}

	return parent, nil
}

// AuthorizeOwnerAccess grants access iff the user owns the node. Visibility is not considered.
func (e *Engine) AuthorizeOwnerAccess(userID uuid.UUID, node *entity.File) error {
	if node == nil || !node.IsOwnedBy(userID) {
		return errors.WithStack(domainerrors.ErrForbidden)
	}

	return nil
}

// AuthorizeContentAccess grants content reads on public nodes to anyone and on private nodes to their owner.
// A uuid.Nil user stands for an anonymous request. Denials are reported as not found.
func (e *Engine) AuthorizeContentAccess(userID uuid.UUID, node *entity.File) error {
	if node == nil {
		return errors.WithStack(domainerrors.ErrNotFound)
	}
	if node.IsPublic || node.IsOwnedBy(userID) {
		return nil
	}

	return errors.WithStack(domainerrors.ErrNotFound)
}

// RejectFolderContent fails for folders, which carry no bytes.
func (e *Engine) RejectFolderContent(node *entity.File) error {
	if node.IsFolder() {
		return errors.WithStack(domainerrors.ErrIsFolder)
	}

	return nil
}

// NormalizePage collapses negative page indexes to the first page.
func NormalizePage(page int) int {
	return max(page, 0)
}

// PageOffset returns the offset of the first node on a normalized page.
// Pages whose offset does not fit in an int saturate at math.MaxInt, which lies past every listing.
func PageOffset(page int) int {
	page = NormalizePage(page)
	if page > math.MaxInt/PageSize {
		return math.MaxInt
	}

	return page * PageSize
}
