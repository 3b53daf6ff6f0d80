package decks

import "time"

// FileResultResponse reports what happened to one uploaded file.
type FileResultResponse struct {
	FileName string `json:"fileName"`
	Slide    int    `json:"slide,omitempty"`
	Error    string `json:"error,omitempty"`
}

// DeckResponse is the outward-facing representation of a generated deck.
type DeckResponse struct {
	DeckID      string               `json:"deckId"`
	FileName    string               `json:"fileName"`
	SlideCount  int                  `json:"slideCount"`
	SizeBytes   int64                `json:"sizeBytes"`
	AutoResize  bool                 `json:"autoResize"`
	CreatedAt   time.Time            `json:"createdAt"`
	DownloadURL string               `json:"downloadUrl"`
	Files       []FileResultResponse `json:"files"`
	Skipped     int                  `json:"skipped"`
}

func toResponse(deck Deck) DeckResponse {
	files := make([]FileResultResponse, 0, len(deck.Results))
	skipped := 0
	for _, res := range deck.Results {
		if res.Error != "" {
			skipped++
		}
		files = append(files, FileResultResponse{
			FileName: res.FileName,
			Slide:    res.Slide,
			Error:    res.Error,
		})
	}
	return DeckResponse{
		DeckID:      deck.ID,
		FileName:    deck.FileName,
		SlideCount:  deck.SlideCount,
		SizeBytes:   deck.SizeBytes,
		AutoResize:  deck.AutoResize,
		CreatedAt:   deck.CreatedAt,
		DownloadURL: "/api/v1/decks/" + deck.ID + "/download",
		Files:       files,
		Skipped:     skipped,
	}
}
