// Package uploader runs the validate -> store -> record-create sequence for
// each uploaded file. Files in a batch are processed concurrently under a
// bounded semaphore; every file succeeds or fails on its own.
package uploader

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"
	"gorm.io/datatypes"

	"github.com/tnqbao/gau-dam-service/entity"
	"github.com/tnqbao/gau-dam-service/workflow"
)

const DefaultMaxConcurrent = 4

type UploadState string

const (
	StatePending    UploadState = "pending"
	StateUploading  UploadState = "uploading"
	StateProcessing UploadState = "processing"
	StateComplete   UploadState = "complete"
	StateError      UploadState = "error"
)

// Progress is the transient per-file upload state surfaced to clients.
type Progress struct {
	Filename string      `json:"filename"`
	Progress int         `json:"progress"`
	Status   UploadState `json:"status"`
	Error    string      `json:"error,omitempty"`
	AssetID  string      `json:"asset_id,omitempty"`
}

// ObjectStorage is the object-store collaborator (MinIO in production).
type ObjectStorage interface {
	Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error
	PublicURL(key string) string
	Remove(ctx context.Context, key string) error
}

// AssetStore persists asset metadata rows.
type AssetStore interface {
	CreateAsset(asset *entity.Asset) error
}

// ProgressSink receives per-file milestones keyed by batch id.
type ProgressSink interface {
	Update(ctx context.Context, batchID string, progress Progress)
}

// CleanupPublisher queues storage keys whose best-effort removal failed so a
// consumer can retry them.
type CleanupPublisher interface {
	PublishRemoveObjects(ctx context.Context, keys []string) error
}

type Logger interface {
	InfoWithContextf(ctx context.Context, format string, args ...interface{})
	ErrorWithContextf(ctx context.Context, err error, format string, args ...interface{})
}

// Metadata is the user-supplied, per-file upload form.
type Metadata struct {
	Campaign       string
	Tags           string // comma-separated, parsed during insert
	Notes          string
	GenderCategory string
	ProductID      *uuid.UUID
}

type File struct {
	Name        string
	Size        int64
	ContentType string
	Reader      io.Reader
	Metadata    Metadata
}

// Result is one file's outcome. Err is nil iff the asset row was created.
type Result struct {
	Filename string
	AssetID  uuid.UUID
	Err      error
}

type Pipeline struct {
	storage       ObjectStorage
	store         AssetStore
	sink          ProgressSink
	cleanup       CleanupPublisher
	logger        Logger
	maxConcurrent int64
}

// NewPipeline wires the upload pipeline. cleanup may be nil; failed orphan
// removals are then only logged.
func NewPipeline(storage ObjectStorage, store AssetStore, sink ProgressSink, cleanup CleanupPublisher, logger Logger, maxConcurrent int) *Pipeline {
	if maxConcurrent <= 0 {
		maxConcurrent = DefaultMaxConcurrent
	}
	return &Pipeline{
		storage:       storage,
		store:         store,
		sink:          sink,
		cleanup:       cleanup,
		logger:        logger,
		maxConcurrent: int64(maxConcurrent),
	}
}

// Process uploads a batch. All files run concurrently under the semaphore
// cap; the returned results are positionally aligned with files.
func (p *Pipeline) Process(ctx context.Context, batchID string, files []File) []Result {
	results := make([]Result, len(files))

	for _, f := range files {
		p.sink.Update(ctx, batchID, Progress{Filename: f.Name, Status: StatePending})
	}

	sem := semaphore.NewWeighted(p.maxConcurrent)
	var wg sync.WaitGroup
	for i := range files {
		wg.Add(1)
		go func(i int, f File) {
			defer wg.Done()
			if err := sem.Acquire(ctx, 1); err != nil {
				p.sink.Update(ctx, batchID, Progress{Filename: f.Name, Status: StateError, Error: err.Error()})
				results[i] = Result{Filename: f.Name, Err: err}
				return
			}
			defer sem.Release(1)
			results[i] = p.processFile(ctx, batchID, f)
		}(i, files[i])
	}
	wg.Wait()

	return results
}

func (p *Pipeline) processFile(ctx context.Context, batchID string, f File) Result {
	fail := func(err error) Result {
		p.sink.Update(ctx, batchID, Progress{Filename: f.Name, Status: StateError, Error: err.Error()})
		return Result{Filename: f.Name, Err: err}
	}

	if err := ValidateFile(f.Name, f.Size); err != nil {
		return fail(err)
	}

	key := StorageKey(time.Now(), f.Name)
	contentType := ContentType(f.Name, f.ContentType)

	p.sink.Update(ctx, batchID, Progress{Filename: f.Name, Status: StateUploading, Progress: 10})
	if err := p.storage.Upload(ctx, key, f.Reader, f.Size, contentType); err != nil {
		return fail(fmt.Errorf("storage upload failed: %w", err))
	}

	p.sink.Update(ctx, batchID, Progress{Filename: f.Name, Status: StateProcessing, Progress: 70})

	asset := p.buildAsset(f, key, contentType)
	if err := p.store.CreateAsset(asset); err != nil {
		p.removeOrphan(ctx, key)
		return fail(fmt.Errorf("metadata insert failed: %w", err))
	}

	p.sink.Update(ctx, batchID, Progress{
		Filename: f.Name,
		Status:   StateComplete,
		Progress: 100,
		AssetID:  asset.ID.String(),
	})
	return Result{Filename: f.Name, AssetID: asset.ID}
}

func (p *Pipeline) buildAsset(f File, key, contentType string) *entity.Asset {
	originalName := f.Name
	asset := &entity.Asset{
		ID:               uuid.New(),
		Filename:         f.Name,
		OriginalFilename: &originalName,
		FileURL:          p.storage.PublicURL(key),
		StorageKey:       key,
		Filetype:         contentType,
		Filesize:         f.Size,
		UploadTime:       time.Now(),
		Status:           workflow.StatusDraft,
		ProductID:        f.Metadata.ProductID,
		Tags:             datatypes.JSONSlice[string](entity.ParseTagList(f.Metadata.Tags)),
		GenderCategory:   entity.GenderUnisex,
	}
	if f.Metadata.Campaign != "" {
		campaign := f.Metadata.Campaign
		asset.Campaign = &campaign
	}
	if f.Metadata.Notes != "" {
		notes := f.Metadata.Notes
		asset.Notes = &notes
	}
	if g := entity.GenderCategory(f.Metadata.GenderCategory); entity.ValidGenderCategory(g) {
		asset.GenderCategory = g
	}
	return asset
}

// removeOrphan deletes a stored object whose metadata insert failed. Its own
// failure is logged and queued for retry, never surfaced: the insert error
// stays the primary error.
func (p *Pipeline) removeOrphan(ctx context.Context, key string) {
	err := p.storage.Remove(ctx, key)
	if err == nil {
		return
	}
	p.logger.ErrorWithContextf(ctx, err, "[Upload] Failed to remove orphaned object %s", key)
	if p.cleanup == nil {
		return
	}
	if err := p.cleanup.PublishRemoveObjects(ctx, []string{key}); err != nil {
		p.logger.ErrorWithContextf(ctx, err, "[Upload] Failed to queue orphan cleanup for %s", key)
	}
}
