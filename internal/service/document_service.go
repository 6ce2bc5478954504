package service

import (
	"context"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/inclusivo-app/campus-api/internal/models"
	appErrors "github.com/inclusivo-app/campus-api/pkg/errors"
	"github.com/inclusivo-app/campus-api/pkg/jobs"
)

// The recognizer is a stub: every scan resolves to this result after the
// configured processing delay.
const (
	stubOCRText       = "Texto extraído del documento mediante OCR. Este es un ejemplo de reconocimiento óptico de caracteres."
	stubOCRConfidence = 0.95
	stubOCRLanguage   = "es"
)

// speaker reads text aloud through the speech controller.
type speaker interface {
	Speak(text string, interrupt bool)
}

// SaveDocumentRequest is the payload for storing a scanned document.
type SaveDocumentRequest struct {
	Title    string   `json:"title" validate:"required"`
	Content  string   `json:"content" validate:"required"`
	ImageURL string   `json:"image_url"`
	Subject  string   `json:"subject"`
	Tags     []string `json:"tags"`
	Language string   `json:"language"`
}

// UpdateDocumentRequest partially updates a stored document.
type UpdateDocumentRequest struct {
	Title   *string   `json:"title,omitempty"`
	Content *string   `json:"content,omitempty"`
	Subject *string   `json:"subject,omitempty"`
	Tags    *[]string `json:"tags,omitempty"`
}

type scanJob struct {
	result chan models.OCRResult
}

// DocumentService owns the in-memory scanned-document collection and the
// stubbed OCR pipeline. OCR runs on a single-worker queue; only one scan
// may be pending at a time and a concurrent request is rejected rather
// than silently raced.
type DocumentService struct {
	mu        sync.Mutex
	documents []models.ScannedDocument

	queue       *jobs.Queue
	delay       time.Duration
	scanPending atomic.Bool

	speech    speaker
	validator *validator.Validate
	now       func() time.Time
	logger    *zap.Logger
}

// NewDocumentService seeds the collection and prepares the scan queue.
// Call Start before accepting scans.
func NewDocumentService(seed []models.ScannedDocument, delay time.Duration, speech speaker, validate *validator.Validate, now func() time.Time, logger *zap.Logger) *DocumentService {
	if validate == nil {
		validate = validator.New()
	}
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	documents := make([]models.ScannedDocument, len(seed))
	copy(documents, seed)

	s := &DocumentService{
		documents: documents,
		delay:     delay,
		speech:    speech,
		validator: validate,
		now:       now,
		logger:    logger,
	}
	s.queue = jobs.NewQueue("ocr", s.process, jobs.QueueConfig{Workers: 1, BufferSize: 1, Logger: logger})
	return s
}

// Start launches the scan worker.
func (s *DocumentService) Start(ctx context.Context) {
	s.queue.Start(ctx)
}

// Stop drains the scan worker.
func (s *DocumentService) Stop() {
	s.queue.Stop()
}

// All returns every document, newest first.
func (s *DocumentService) All() []models.ScannedDocument {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.ScannedDocument, len(s.documents))
	copy(out, s.documents)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// ByID resolves a document, nil when unknown.
func (s *DocumentService) ByID(id string) *models.ScannedDocument {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, doc := range s.documents {
		if doc.ID == id {
			doc := doc
			return &doc
		}
	}
	return nil
}

// Search matches the query case-insensitively against title, content and
// tags.
func (s *DocumentService) Search(query string) []models.ScannedDocument {
	q := strings.ToLower(query)
	var matches []models.ScannedDocument
	for _, doc := range s.All() {
		if strings.Contains(strings.ToLower(doc.Title), q) ||
			strings.Contains(strings.ToLower(doc.Content), q) ||
			tagsMatch(doc.Tags, q) {
			matches = append(matches, doc)
		}
	}
	return matches
}

// Save stores a new document with a fresh id and timestamp.
func (s *DocumentService) Save(req SaveDocumentRequest) (*models.ScannedDocument, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid document payload")
	}

	language := req.Language
	if language == "" {
		language = stubOCRLanguage
	}
	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}

	doc := models.ScannedDocument{
		ID:        uuid.NewString(),
		Title:     req.Title,
		Content:   req.Content,
		ImageURL:  req.ImageURL,
		CreatedAt: s.now(),
		Subject:   req.Subject,
		Tags:      tags,
		Language:  language,
	}

	s.mu.Lock()
	s.documents = append([]models.ScannedDocument{doc}, s.documents...)
	s.mu.Unlock()

	return &doc, nil
}

// Update applies a partial patch; nil when the id is unknown.
func (s *DocumentService) Update(id string, req UpdateDocumentRequest) *models.ScannedDocument {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.documents {
		if s.documents[i].ID != id {
			continue
		}
		if req.Title != nil {
			s.documents[i].Title = *req.Title
		}
		if req.Content != nil {
			s.documents[i].Content = *req.Content
		}
		if req.Subject != nil {
			s.documents[i].Subject = *req.Subject
		}
		if req.Tags != nil {
			s.documents[i].Tags = *req.Tags
		}
		doc := s.documents[i]
		return &doc
	}
	return nil
}

// Delete removes a document; no-op when the id is absent.
func (s *DocumentService) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.documents {
		if s.documents[i].ID == id {
			s.documents = append(s.documents[:i], s.documents[i+1:]...)
			return
		}
	}
}

// ReadAloud speaks a document's content through the voice controller.
func (s *DocumentService) ReadAloud(id string) error {
	doc := s.ByID(id)
	if doc == nil {
		return appErrors.Clone(appErrors.ErrNotFound, "document not found")
	}
	if s.speech != nil {
		s.speech.Speak(doc.Content, false)
	}
	return nil
}

// Scan runs the stubbed OCR pass. Exactly one scan may be in flight; a
// second call while one is pending fails with ErrScanInProgress.
func (s *DocumentService) Scan(ctx context.Context) (*models.OCRResult, error) {
	if !s.scanPending.CompareAndSwap(false, true) {
		return nil, appErrors.ErrScanInProgress
	}

	job := scanJob{result: make(chan models.OCRResult, 1)}
	if err := s.queue.TryEnqueue(jobs.Job{ID: uuid.NewString(), Type: "ocr", Payload: job}); err != nil {
		s.scanPending.Store(false)
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to queue scan")
	}

	select {
	case <-ctx.Done():
		return nil, appErrors.Wrap(ctx.Err(), appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "scan aborted")
	case result := <-job.result:
		return &result, nil
	}
}

func (s *DocumentService) process(ctx context.Context, job jobs.Job) error {
	payload, ok := job.Payload.(scanJob)
	if !ok {
		s.scanPending.Store(false)
		return nil
	}

	timer := time.NewTimer(s.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		s.scanPending.Store(false)
		return nil
	case <-timer.C:
	}

	// Release the pipeline before delivering so the caller can start a
	// new scan as soon as it has the result.
	s.scanPending.Store(false)
	payload.result <- models.OCRResult{
		Text:       stubOCRText,
		Confidence: stubOCRConfidence,
		Language:   stubOCRLanguage,
	}
	return nil
}

func tagsMatch(tags []string, q string) bool {
	for _, tag := range tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}
