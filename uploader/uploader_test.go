package uploader

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tnqbao/gau-dam-service/entity"
	"github.com/tnqbao/gau-dam-service/workflow"
)

type stubStorage struct {
	mu        sync.Mutex
	uploaded  map[string]int64
	removed   []string
	uploadErr error
	removeErr error
}

func newStubStorage() *stubStorage {
	return &stubStorage{uploaded: make(map[string]int64)}
}

func (s *stubStorage) Upload(_ context.Context, key string, reader io.Reader, size int64, _ string) error {
	if s.uploadErr != nil {
		return s.uploadErr
	}
	if _, err := io.Copy(io.Discard, reader); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.uploaded[key] = size
	return nil
}

func (s *stubStorage) PublicURL(key string) string {
	return "https://cdn.example.com/assets/" + key
}

func (s *stubStorage) Remove(_ context.Context, key string) error {
	if s.removeErr != nil {
		return s.removeErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removed = append(s.removed, key)
	delete(s.uploaded, key)
	return nil
}

type stubStore struct {
	mu        sync.Mutex
	created   []*entity.Asset
	createErr error
}

func (s *stubStore) CreateAsset(asset *entity.Asset) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.created = append(s.created, asset)
	return nil
}

type recordingSink struct {
	mu      sync.Mutex
	updates []Progress
}

func (s *recordingSink) Update(_ context.Context, _ string, p Progress) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.updates = append(s.updates, p)
}

func (s *recordingSink) last(filename string) (Progress, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out Progress
	found := false
	for _, u := range s.updates {
		if u.Filename == filename {
			out = u
			found = true
		}
	}
	return out, found
}

type nopLogger struct{}

func (nopLogger) InfoWithContextf(context.Context, string, ...interface{})         {}
func (nopLogger) ErrorWithContextf(context.Context, error, string, ...interface{}) {}

type recordingCleanup struct {
	mu   sync.Mutex
	keys []string
}

func (c *recordingCleanup) PublishRemoveObjects(_ context.Context, keys []string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.keys = append(c.keys, keys...)
	return nil
}

func newTestPipeline(storage *stubStorage, store *stubStore, sink *recordingSink) *Pipeline {
	return NewPipeline(storage, store, sink, nil, nopLogger{}, 4)
}

func TestValidateFileBoundaries(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		size     int64
		wantErr  error
	}{
		{"image at the cap", "photo.jpg", MaxImageSize, nil},
		{"image one byte over", "photo.jpg", MaxImageSize + 1, ErrFileTooLarge},
		{"video at the cap", "clip.mp4", MaxVideoSize, nil},
		{"video one byte over", "clip.mp4", MaxVideoSize + 1, ErrFileTooLarge},
		{"unrecognized extension, tiny", "report.pdf", 10, ErrUnsupportedType},
		{"unrecognized extension, huge", "dump.bin", 5 << 30, ErrUnsupportedType},
		{"no extension", "README", 10, ErrUnsupportedType},
		{"uppercase extension accepted", "PHOTO.JPG", 1024, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFile(tt.filename, tt.size)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestStorageKeySanitizes(t *testing.T) {
	now := time.UnixMilli(1700000000000)
	assert.Equal(t, "1700000000000_summer_shoot_final.jpg", StorageKey(now, "summer shoot/final.jpg"))
	assert.Equal(t, "1700000000000_a-b.c_d.png", StorageKey(now, "a-b.c&d.png"))
}

func TestProcessSingleJPEGEndToEnd(t *testing.T) {
	storage := newStubStorage()
	store := &stubStore{}
	sink := &recordingSink{}
	p := newTestPipeline(storage, store, sink)

	payload := bytes.Repeat([]byte{0xAB}, 2<<20) // 2 MiB
	results := p.Process(context.Background(), "batch-1", []File{{
		Name:        "shoot.jpg",
		Size:        int64(len(payload)),
		ContentType: "image/jpeg",
		Reader:      bytes.NewReader(payload),
		Metadata:    Metadata{Tags: "outdoor, lifestyle", Campaign: "summer-2026"},
	}})

	require.Len(t, results, 1)
	require.NoError(t, results[0].Err)
	assert.NotEqual(t, "", results[0].AssetID.String())

	require.Len(t, store.created, 1)
	asset := store.created[0]
	assert.Equal(t, []string{"outdoor", "lifestyle"}, []string(asset.Tags))
	assert.Equal(t, workflow.StatusDraft, asset.Status)
	assert.Equal(t, entity.GenderUnisex, asset.GenderCategory)
	assert.Equal(t, "image/jpeg", asset.Filetype)
	require.NotNil(t, asset.Campaign)
	assert.Equal(t, "summer-2026", *asset.Campaign)
	assert.True(t, strings.HasSuffix(asset.FileURL, asset.StorageKey))

	last, ok := sink.last("shoot.jpg")
	require.True(t, ok)
	assert.Equal(t, StateComplete, last.Status)
	assert.Equal(t, 100, last.Progress)
	assert.Equal(t, asset.ID.String(), last.AssetID)
}

func TestProcessRejectsInvalidFileWithoutNetworkCalls(t *testing.T) {
	storage := newStubStorage()
	store := &stubStore{}
	sink := &recordingSink{}
	p := newTestPipeline(storage, store, sink)

	results := p.Process(context.Background(), "batch-2", []File{{
		Name:   "malware.exe",
		Size:   100,
		Reader: strings.NewReader("nope"),
	}})

	require.Len(t, results, 1)
	assert.ErrorIs(t, results[0].Err, ErrUnsupportedType)
	assert.Empty(t, storage.uploaded)
	assert.Empty(t, store.created)

	last, _ := sink.last("malware.exe")
	assert.Equal(t, StateError, last.Status)
	assert.NotEmpty(t, last.Error)
}

func TestProcessStorageFailureCreatesNoRow(t *testing.T) {
	storage := newStubStorage()
	storage.uploadErr = errors.New("bucket unavailable")
	store := &stubStore{}
	sink := &recordingSink{}
	p := newTestPipeline(storage, store, sink)

	results := p.Process(context.Background(), "batch-3", []File{{
		Name:   "photo.png",
		Size:   1024,
		Reader: strings.NewReader("data"),
	}})

	require.Error(t, results[0].Err)
	assert.Contains(t, results[0].Err.Error(), "bucket unavailable")
	assert.Empty(t, store.created)
	assert.Empty(t, storage.removed)
}

// TestProcessInsertFailureRemovesOrphan verifies the cleanup contract: a
// successful storage upload followed by a failed metadata insert must delete
// the stored object, keyed by the same storage key.
func TestProcessInsertFailureRemovesOrphan(t *testing.T) {
	storage := newStubStorage()
	store := &stubStore{createErr: errors.New("connection reset")}
	sink := &recordingSink{}
	p := newTestPipeline(storage, store, sink)

	results := p.Process(context.Background(), "batch-4", []File{{
		Name:   "photo.png",
		Size:   1024,
		Reader: strings.NewReader("data"),
	}})

	require.Error(t, results[0].Err)
	assert.Contains(t, results[0].Err.Error(), "metadata insert failed")

	require.Len(t, storage.removed, 1)
	assert.Empty(t, storage.uploaded, "no orphan object may remain")

	last, _ := sink.last("photo.png")
	assert.Equal(t, StateError, last.Status)
}

func TestProcessQueuesCleanupWhenRemovalFails(t *testing.T) {
	storage := newStubStorage()
	storage.removeErr = errors.New("storage offline")
	store := &stubStore{createErr: errors.New("insert failed")}
	sink := &recordingSink{}
	cleanup := &recordingCleanup{}
	p := NewPipeline(storage, store, sink, cleanup, nopLogger{}, 4)

	results := p.Process(context.Background(), "batch-5", []File{{
		Name:   "photo.png",
		Size:   64,
		Reader: strings.NewReader("data"),
	}})

	// The insert error stays the primary error.
	require.Error(t, results[0].Err)
	assert.Contains(t, results[0].Err.Error(), "insert failed")
	require.Len(t, cleanup.keys, 1)
	assert.Contains(t, cleanup.keys[0], "photo.png")
}

// TestProcessBatchIsolation submits a mixed batch: valid files succeed even
// when siblings fail validation or persistence.
func TestProcessBatchIsolation(t *testing.T) {
	storage := newStubStorage()
	store := &stubStore{}
	sink := &recordingSink{}
	p := newTestPipeline(storage, store, sink)

	files := []File{
		{Name: "good.jpg", Size: 512, Reader: strings.NewReader("aa")},
		{Name: "bad.exe", Size: 512, Reader: strings.NewReader("bb")},
		{Name: "too_big.png", Size: MaxImageSize + 1, Reader: strings.NewReader("cc")},
		{Name: "also_good.webm", Size: 2048, Reader: strings.NewReader("dd")},
	}

	results := p.Process(context.Background(), "batch-6", files)
	require.Len(t, results, 4)

	assert.NoError(t, results[0].Err)
	assert.ErrorIs(t, results[1].Err, ErrUnsupportedType)
	assert.ErrorIs(t, results[2].Err, ErrFileTooLarge)
	assert.NoError(t, results[3].Err)

	assert.Len(t, store.created, 2)
	// Results stay positionally aligned with the submitted batch.
	assert.Equal(t, "good.jpg", results[0].Filename)
	assert.Equal(t, "also_good.webm", results[3].Filename)
}

func TestProcessReportsMilestones(t *testing.T) {
	storage := newStubStorage()
	store := &stubStore{}
	sink := &recordingSink{}
	p := newTestPipeline(storage, store, sink)

	p.Process(context.Background(), "batch-7", []File{{
		Name:   "clip.mp4",
		Size:   4096,
		Reader: strings.NewReader("vvvv"),
	}})

	var states []UploadState
	var milestones []int
	for _, u := range sink.updates {
		states = append(states, u.Status)
		milestones = append(milestones, u.Progress)
	}
	assert.Equal(t, []UploadState{StatePending, StateUploading, StateProcessing, StateComplete}, states)
	assert.Equal(t, []int{0, 10, 70, 100}, milestones)
}
