package models

import "time"

// ScannedDocument is a stored OCR capture with student annotations.
type ScannedDocument struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	ImageURL  string    `json:"image_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	Subject   string    `json:"subject,omitempty"`
	Tags      []string  `json:"tags"`
	Language  string    `json:"language"`
}

// OCRResult is the outcome of a (stubbed) character recognition pass.
type OCRResult struct {
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"`
	Language   string  `json:"language"`
}
