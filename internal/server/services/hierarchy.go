package services

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/dmitrijs2005/droply/internal/common"
	"github.com/dmitrijs2005/droply/internal/server/models"
	"github.com/dmitrijs2005/droply/internal/server/repositories/entries"
	"github.com/google/uuid"
)

// validateName trims raw and rejects names that are empty afterwards.
func validateName(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", common.ErrorInvalidName
	}
	return trimmed, nil
}

// resolveParent looks up parentID as a folder owned by userID. A nil
// parentID means the entry is root-level and resolves to nil without a
// lookup. A missing, foreign or non-folder parent fails with
// common.ErrorParentNotFound.
func resolveParent(ctx context.Context, repo entries.Repository, parentID *string, userID string) (*models.Entry, error) {
	if parentID == nil {
		return nil, nil
	}
	parent, err := repo.GetOwnedFolder(ctx, *parentID, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorParentNotFound
		}
		return nil, err
	}
	return parent, nil
}

// folderPath is the metadata path of a folder entry. It is a diagnostic
// identifier, not a physical location.
func folderPath(parentID *string, id string) string {
	if parentID != nil {
		return fmt.Sprintf("/folder/%s/%s", *parentID, id)
	}
	return fmt.Sprintf("/folder/%s", id)
}

// uploadFolderPath is the blob-store destination prefix for a file. It is
// namespaced by owner and, when nested, by the immediate parent, so keys
// never collide across users or siblings.
func uploadFolderPath(userID string, parentID *string) string {
	if parentID != nil {
		return fmt.Sprintf("/droply/%s/folder/%s/", userID, *parentID)
	}
	return fmt.Sprintf("/droply/%s/", userID)
}

// uniqueFileName produces the physical storage name: a fresh random id with
// the original extension preserved. Two uploads of the same original name
// never clobber each other.
func uniqueFileName(original string) string {
	return uuid.NewString() + path.Ext(original)
}
