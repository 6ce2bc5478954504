package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inclusivo-app/campus-api/internal/models"
	appErrors "github.com/inclusivo-app/campus-api/pkg/errors"
)

type recordingSpeaker struct {
	mu     sync.Mutex
	spoken []string
}

func (r *recordingSpeaker) Speak(text string, _ bool) {
	r.mu.Lock()
	r.spoken = append(r.spoken, text)
	r.mu.Unlock()
}

func testDocuments(base time.Time) []models.ScannedDocument {
	return []models.ScannedDocument{
		{ID: "d1", Title: "Apuntes de Cálculo", Content: "Derivadas e integrales", Tags: []string{"matemáticas"}, CreatedAt: base.Add(-2 * time.Hour)},
		{ID: "d2", Title: "Guía de Laboratorio", Content: "Práctica de químicos", Tags: []string{"química"}, CreatedAt: base.Add(-1 * time.Hour)},
	}
}

func newTestDocumentService(t *testing.T, delay time.Duration, speaker speaker) *DocumentService {
	t.Helper()
	svc := NewDocumentService(testDocuments(time.Now()), delay, speaker, nil, nil, nil)
	ctx, cancel := context.WithCancel(context.Background())
	svc.Start(ctx)
	t.Cleanup(func() {
		cancel()
		svc.Stop()
	})
	return svc
}

func TestDocumentsAllNewestFirst(t *testing.T) {
	svc := newTestDocumentService(t, time.Millisecond, nil)

	all := svc.All()
	require.Len(t, all, 2)
	assert.Equal(t, "d2", all[0].ID)
}

func TestDocumentsSearch(t *testing.T) {
	svc := newTestDocumentService(t, time.Millisecond, nil)

	assert.Len(t, svc.Search("cálculo"), 1)
	assert.Len(t, svc.Search("química"), 1)
	assert.Empty(t, svc.Search("historia"))
}

func TestDocumentsSaveAndUpdate(t *testing.T) {
	svc := newTestDocumentService(t, time.Millisecond, nil)

	doc, err := svc.Save(SaveDocumentRequest{Title: "Nuevo", Content: "Contenido"})
	require.NoError(t, err)
	assert.NotEmpty(t, doc.ID)
	assert.Equal(t, stubOCRLanguage, doc.Language)

	title := "Renombrado"
	updated := svc.Update(doc.ID, UpdateDocumentRequest{Title: &title})
	require.NotNil(t, updated)
	assert.Equal(t, "Renombrado", updated.Title)
	assert.Equal(t, "Contenido", updated.Content)

	assert.Nil(t, svc.Update("missing", UpdateDocumentRequest{Title: &title}))
}

func TestDocumentsSaveRequiresTitleAndContent(t *testing.T) {
	svc := newTestDocumentService(t, time.Millisecond, nil)

	_, err := svc.Save(SaveDocumentRequest{Title: "sin contenido"})
	assert.Error(t, err)
}

func TestDocumentsDelete(t *testing.T) {
	svc := newTestDocumentService(t, time.Millisecond, nil)

	svc.Delete("d1")
	assert.Nil(t, svc.ByID("d1"))
	assert.Len(t, svc.All(), 1)
}

func TestDocumentsScanReturnsFixedResult(t *testing.T) {
	svc := newTestDocumentService(t, time.Millisecond, nil)

	result, err := svc.Scan(context.Background())
	require.NoError(t, err)
	assert.Equal(t, stubOCRText, result.Text)
	assert.Equal(t, stubOCRConfidence, result.Confidence)
	assert.Equal(t, stubOCRLanguage, result.Language)

	// Once the first scan finished a second one is accepted again.
	_, err = svc.Scan(context.Background())
	assert.NoError(t, err)
}

func TestDocumentsScanRejectsConcurrent(t *testing.T) {
	svc := newTestDocumentService(t, 200*time.Millisecond, nil)

	firstDone := make(chan error, 1)
	go func() {
		_, err := svc.Scan(context.Background())
		firstDone <- err
	}()

	// Wait for the first scan to claim the pipeline.
	require.Eventually(t, func() bool {
		return svc.scanPending.Load()
	}, time.Second, 5*time.Millisecond)

	_, err := svc.Scan(context.Background())
	require.ErrorIs(t, err, appErrors.ErrScanInProgress)

	require.NoError(t, <-firstDone)
}

func TestDocumentsReadAloud(t *testing.T) {
	speaker := &recordingSpeaker{}
	svc := newTestDocumentService(t, time.Millisecond, speaker)

	require.NoError(t, svc.ReadAloud("d1"))
	require.Len(t, speaker.spoken, 1)
	assert.Equal(t, "Derivadas e integrales", speaker.spoken[0])

	err := svc.ReadAloud("missing")
	assert.Error(t, err)
}
