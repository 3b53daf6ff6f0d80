package decks

import "time"

// Deck is a finished presentation artifact held in memory for download.
// Nothing outlives the process; the data model is deliberately transient.
type Deck struct {
	ID         string
	FileName   string
	SlideCount int
	SizeBytes  int64
	AutoResize bool
	Data       []byte
	Results    []FileResult
	CreatedAt  time.Time
}

// FileResult records the outcome of one uploaded file: either the 1-based
// slide it landed on, or the reason it was skipped.
type FileResult struct {
	FileName string
	Slide    int
	Error    string
}

// SourceFile is one uploaded image blob.
type SourceFile struct {
	Name string
	Data []byte
}

// GenerateInput carries the uploads and options of one generate action.
type GenerateInput struct {
	Files      []SourceFile
	AutoResize bool
}
