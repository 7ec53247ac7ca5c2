package match

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log"
	"strings"

	"github.com/anuja-awchar/ai-powered-job-tracker/internal/domain/job"
	"github.com/anuja-awchar/ai-powered-job-tracker/internal/store"
)

const (
	resumePromptLimit = 2000
	digestLen         = 16
)

// Result is the cached output of the scoring pipeline. A cached Result is
// treated as valid for its full retention window regardless of upstream
// model non-determinism.
type Result struct {
	Score         int      `json:"score"`
	KeyMatches    []string `json:"keyMatches"`
	MissingSkills []string `json:"missingSkills"`
	Explanation   string   `json:"explanation"`
}

type contentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// Service memoizes job/resume compatibility scoring through the store.
type Service struct {
	generator contentGenerator
	cache     store.Store
	logger    *log.Logger
}

func NewService(generator contentGenerator, cache store.Store, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.Default()
	}
	return &Service{generator: generator, cache: cache, logger: logger}
}

// Score returns the compatibility between a posting and resume text. It never
// fails: upstream errors yield a zero-score result and unparsable responses a
// neutral one, so callers always receive a well-formed Result.
func (s *Service) Score(ctx context.Context, posting job.Posting, resumeText string) Result {
	key := store.MatchKey(posting.ID, resumeDigest(resumeText))

	var cached Result
	if found, err := s.cache.Get(ctx, key, &cached); err == nil && found {
		return cached
	}

	raw, err := s.generator.GenerateContent(ctx, buildPrompt(posting, resumeText))
	if err != nil {
		s.logger.Printf("[match] scoring call failed job=%s: %v", posting.ID, err)
		return degradedResult()
	}

	result, ok := parseResult(raw)
	if !ok {
		result = neutralResult()
	}

	if err := s.cache.Set(ctx, key, result, store.TTLDay); err != nil {
		s.logger.Printf("[match] cache write failed job=%s: %v", posting.ID, err)
	}
	return result
}

// resumeDigest keys the cache by full resume content, so any edit to the
// text produces a fresh key.
func resumeDigest(resumeText string) string {
	sum := sha256.Sum256([]byte(resumeText))
	return hex.EncodeToString(sum[:])[:digestLen]
}

func buildPrompt(posting job.Posting, resumeText string) string {
	skills := "Not specified"
	if len(posting.RequiredSkills) > 0 {
		skills = strings.Join(posting.RequiredSkills, ", ")
	}
	if len(resumeText) > resumePromptLimit {
		resumeText = resumeText[:resumePromptLimit]
	}

	var b strings.Builder
	b.WriteString("You are an expert recruiter analyzing job compatibility. Score how well a resume matches a job posting.\n\n")
	b.WriteString("JOB POSTING:\n")
	b.WriteString("Title: " + posting.Title + "\n")
	b.WriteString("Company: " + posting.Company + "\n")
	b.WriteString("Description: " + posting.Description + "\n")
	b.WriteString("Required Skills: " + skills + "\n")
	b.WriteString("Job Type: " + posting.JobType + "\n")
	b.WriteString("Location: " + posting.Location + "\n\n")
	b.WriteString("RESUME:\n")
	b.WriteString(resumeText)
	b.WriteString("\n\nProvide a JSON response with:\n")
	b.WriteString(`{
  "score": number (0-100),
  "keyMatches": [string], // 3-4 key matching areas
  "missingSkills": [string], // Key missing skills if any
  "explanation": string // 1-2 sentence summary
}`)
	return b.String()
}

// parseResult extracts the first JSON-shaped substring of the model output.
func parseResult(raw string) (Result, bool) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end <= start {
		return Result{}, false
	}

	var r Result
	if err := json.Unmarshal([]byte(raw[start:end+1]), &r); err != nil {
		return Result{}, false
	}

	if r.Score < 0 {
		r.Score = 0
	}
	if r.Score > 100 {
		r.Score = 100
	}
	if r.KeyMatches == nil {
		r.KeyMatches = []string{}
	}
	if r.MissingSkills == nil {
		r.MissingSkills = []string{}
	}
	return r, true
}

func neutralResult() Result {
	return Result{
		Score:         50,
		KeyMatches:    []string{"Unable to parse response"},
		MissingSkills: []string{},
		Explanation:   "Scoring in progress",
	}
}

func degradedResult() Result {
	return Result{
		Score:         0,
		KeyMatches:    []string{},
		MissingSkills: []string{},
		Explanation:   "Error calculating match score",
	}
}
