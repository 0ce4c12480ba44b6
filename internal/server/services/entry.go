// Package services implements the folder/file tree rules and the
// metadata/blob lifecycle: creation is blob-first, metadata-second; deletion
// is best-effort on the blob and unconditional on the metadata row.
package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"

	"github.com/dmitrijs2005/droply/internal/common"
	"github.com/dmitrijs2005/droply/internal/dbx"
	"github.com/dmitrijs2005/droply/internal/logging"
	"github.com/dmitrijs2005/droply/internal/server/models"
	"github.com/dmitrijs2005/droply/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/droply/internal/server/storage"
	"github.com/google/uuid"
)

type EntryService struct {
	db            *sql.DB
	repomanager   repomanager.RepositoryManager
	blobs         storage.BlobStore
	logger        logging.Logger
	maxUploadSize int64
}

func NewEntryService(db *sql.DB, m repomanager.RepositoryManager, blobs storage.BlobStore, logger logging.Logger, maxUploadSize int64) *EntryService {
	return &EntryService{
		db:            db,
		repomanager:   m,
		blobs:         blobs,
		logger:        logger.With("module", "entry_service"),
		maxUploadSize: maxUploadSize,
	}
}

// UploadInput carries a single file upload. ParentID is optional; nil means
// a root-level file.
type UploadInput struct {
	Data        []byte
	Name        string
	ContentType string
	ParentID    *string
}

// isSupportedContentType admits image types and PDF only.
func isSupportedContentType(contentType string) bool {
	return strings.HasPrefix(contentType, "image/") || contentType == "application/pdf"
}

// CreateFolder validates the name, resolves the optional parent and inserts
// the folder row. Parent check and insert run in one transaction so the
// parent cannot vanish in between.
func (s *EntryService) CreateFolder(ctx context.Context, userID, name string, parentID *string) (*models.Entry, error) {
	trimmed, err := validateName(name)
	if err != nil {
		return nil, err
	}

	var created *models.Entry
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Entries(tx)

		if _, err := resolveParent(ctx, repo, parentID, userID); err != nil {
			return err
		}

		id := uuid.NewString()
		created, err = repo.Create(ctx, &models.Entry{
			ID:       id,
			UserID:   userID,
			Name:     trimmed,
			Path:     folderPath(parentID, id),
			ParentID: parentID,
			IsFolder: true,
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// UploadFile stores the payload in the blob store and then inserts the
// metadata row. A blob failure aborts the whole operation; the two systems
// never diverge on the creation path.
func (s *EntryService) UploadFile(ctx context.Context, userID string, in UploadInput) (*models.Entry, error) {
	if len(in.Data) == 0 {
		return nil, common.ErrorFileRequired
	}
	if int64(len(in.Data)) > s.maxUploadSize {
		return nil, common.ErrorFileTooLarge
	}
	if !isSupportedContentType(in.ContentType) {
		return nil, common.ErrorUnsupportedType
	}

	repo := s.repomanager.Entries(s.db)

	if _, err := resolveParent(ctx, repo, in.ParentID, userID); err != nil {
		return nil, err
	}

	folder := uploadFolderPath(userID, in.ParentID)
	physicalName := uniqueFileName(in.Name)

	obj, err := s.blobs.Put(ctx, in.Data, folder, physicalName, in.ContentType)
	if err != nil {
		s.logger.Error(ctx, "blob put failed", "folder", folder, "name", physicalName, "err", err)
		return nil, fmt.Errorf("%w: %v", common.ErrorUploadFailed, err)
	}

	created, err := repo.Create(ctx, &models.Entry{
		ID:           uuid.NewString(),
		UserID:       userID,
		Name:         in.Name,
		Path:         "/" + obj.Key,
		Size:         int64(len(in.Data)),
		ContentType:  in.ContentType,
		FileURL:      obj.URL,
		ThumbnailURL: obj.ThumbnailURL,
		StorageKey:   obj.Key,
		ParentID:     in.ParentID,
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// List returns the non-trashed children of parentID for userID, root-level
// entries when parentID is nil.
func (s *EntryService) List(ctx context.Context, userID string, parentID *string) ([]*models.Entry, error) {
	return s.repomanager.Entries(s.db).List(ctx, userID, parentID)
}

// ToggleStar flips the starred flag and returns the updated entry.
func (s *EntryService) ToggleStar(ctx context.Context, userID, id string) (*models.Entry, error) {
	return s.repomanager.Entries(s.db).ToggleStarred(ctx, id, userID)
}

// ToggleTrash moves the entry into or out of the trash. Descendants are not
// cascaded; each entry is trashed individually.
func (s *EntryService) ToggleTrash(ctx context.Context, userID, id string) (*models.Entry, error) {
	return s.repomanager.Entries(s.db).ToggleTrash(ctx, id, userID)
}

// Delete permanently removes the entry and returns its prior state. For a
// file the blob delete is attempted first; its failure is logged and
// swallowed, and the metadata row is removed regardless.
func (s *EntryService) Delete(ctx context.Context, userID, id string) (*models.Entry, error) {
	repo := s.repomanager.Entries(s.db)

	entry, err := repo.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if !entry.IsFolder && entry.StorageKey != "" {
		if err := s.blobs.Delete(ctx, entry.StorageKey); err != nil {
			s.logger.Warn(ctx, "blob delete failed, removing metadata anyway", "key", entry.StorageKey, "err", err)
		}
	}

	return repo.Delete(ctx, id, userID)
}

// EmptyTrash permanently removes every trashed entry for userID. Blob
// deletes for file entries carrying a locator fan out concurrently and are
// joined without short-circuiting; the metadata rows go in one bulk delete
// regardless of individual blob outcomes. Returns the number of rows removed,
// zero with no error when the trash is already empty.
func (s *EntryService) EmptyTrash(ctx context.Context, userID string) (int64, error) {
	repo := s.repomanager.Entries(s.db)

	trashed, err := repo.SelectTrashed(ctx, userID)
	if err != nil {
		return 0, err
	}
	if len(trashed) == 0 {
		return 0, nil
	}

	var wg sync.WaitGroup
	for _, entry := range trashed {
		if entry.IsFolder || entry.StorageKey == "" {
			continue
		}
		wg.Add(1)
		go func(key string) {
			defer wg.Done()
			if err := s.blobs.Delete(ctx, key); err != nil {
				s.logger.Warn(ctx, "blob delete failed while emptying trash", "key", key, "err", err)
			}
		}(entry.StorageKey)
	}
	wg.Wait()

	return repo.DeleteTrashed(ctx, userID)
}
