package resume

import (
	"strings"
	"time"
)

const DefaultFileName = "resume.txt"

// Record holds one user's resume. One resume per user; re-upload is a full
// overwrite with no versioning.
type Record struct {
	UserID     string    `json:"userId"`
	Text       string    `json:"text"`
	FileName   string    `json:"fileName"`
	UploadedAt time.Time `json:"uploadedAt"`
	WordCount  int       `json:"wordCount"`
}

func NewRecord(userID, text, fileName string, uploadedAt time.Time) Record {
	if strings.TrimSpace(fileName) == "" {
		fileName = DefaultFileName
	}
	return Record{
		UserID:     userID,
		Text:       text,
		FileName:   fileName,
		UploadedAt: uploadedAt,
		WordCount:  len(strings.Fields(text)),
	}
}

// Preview returns at most n characters of the resume text.
func (r Record) Preview(n int) string {
	if n <= 0 || len(r.Text) <= n {
		return r.Text
	}
	return r.Text[:n]
}
