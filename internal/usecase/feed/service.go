package feed

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/anuja-awchar/ai-powered-job-tracker/internal/domain/job"
	"github.com/anuja-awchar/ai-powered-job-tracker/internal/store"
	"github.com/anuja-awchar/ai-powered-job-tracker/internal/usecase/match"
)

const (
	bestMatchLimit = 8

	// Match score filter bands.
	filterHigh   = "high"
	filterMedium = "medium"

	noResumeText = "No resume uploaded yet"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrJobNotFound  = errors.New("job not found")
)

type scorer interface {
	Score(ctx context.Context, posting job.Posting, resumeText string) match.Result
}

// ScoredJob is a posting annotated with its match result for one user.
type ScoredJob struct {
	job.Posting
	MatchScore    int      `json:"matchScore"`
	KeyMatches    []string `json:"keyMatches"`
	MissingSkills []string `json:"missingSkills"`
	Explanation   string   `json:"explanation"`
}

type Params struct {
	UserID           string
	Title            string
	JobType          string
	WorkMode         string
	Location         string
	MatchScoreFilter string
}

type Result struct {
	Total       int         `json:"total"`
	BestMatches []ScoredJob `json:"bestMatches"`
	AllJobs     []ScoredJob `json:"allJobs"`
}

// Service assembles the personalized job feed: catalog filtering, per-job
// match scoring against the user's resume, and ranking.
type Service struct {
	catalog *job.Catalog
	store   store.Store
	scorer  scorer
}

func NewService(catalog *job.Catalog, st store.Store, sc scorer) *Service {
	return &Service{catalog: catalog, store: st, scorer: sc}
}

func (s *Service) Feed(ctx context.Context, p Params) (Result, error) {
	if strings.TrimSpace(p.UserID) == "" {
		return Result{}, ErrInvalidInput
	}

	postings := s.catalog.All()
	filtered := postings[:0]
	for _, j := range postings {
		if p.Title != "" && !strings.Contains(strings.ToLower(j.Title), strings.ToLower(p.Title)) {
			continue
		}
		if p.JobType != "" && j.JobType != p.JobType {
			continue
		}
		if p.WorkMode != "" && j.WorkMode != p.WorkMode {
			continue
		}
		if p.Location != "" && !strings.Contains(strings.ToLower(j.Location), strings.ToLower(p.Location)) {
			continue
		}
		filtered = append(filtered, j)
	}

	scored := s.scoreAll(ctx, p.UserID, filtered)

	switch p.MatchScoreFilter {
	case filterHigh:
		scored = filterScores(scored, func(score int) bool { return score > 70 })
	case filterMedium:
		scored = filterScores(scored, func(score int) bool { return score >= 40 && score <= 70 })
	}

	sortByScore(scored)

	best := scored
	if len(best) > bestMatchLimit {
		best = best[:bestMatchLimit]
	}

	return Result{Total: len(scored), BestMatches: best, AllJobs: scored}, nil
}

// Get returns a single catalog posting.
func (s *Service) Get(jobID string) (job.Posting, error) {
	p, ok := s.catalog.ByID(jobID)
	if !ok {
		return job.Posting{}, ErrJobNotFound
	}
	return p, nil
}

// Search matches the query against title, company, description, and skills,
// then scores and ranks the hits.
func (s *Service) Search(ctx context.Context, userID, query string) ([]ScoredJob, error) {
	if strings.TrimSpace(userID) == "" || strings.TrimSpace(query) == "" {
		return nil, ErrInvalidInput
	}

	q := strings.ToLower(query)
	var hits []job.Posting
	for _, j := range s.catalog.All() {
		if strings.Contains(strings.ToLower(j.Title), q) ||
			strings.Contains(strings.ToLower(j.Company), q) ||
			strings.Contains(strings.ToLower(j.Description), q) ||
			skillMatches(j.RequiredSkills, q) {
			hits = append(hits, j)
		}
	}

	scored := s.scoreAll(ctx, userID, hits)
	sortByScore(scored)
	return scored, nil
}

func (s *Service) scoreAll(ctx context.Context, userID string, postings []job.Posting) []ScoredJob {
	resumeText := noResumeText
	var stored string
	if found, err := s.store.Get(ctx, store.ResumeKey(userID), &stored); err == nil && found {
		resumeText = stored
	}

	scored := make([]ScoredJob, 0, len(postings))
	for _, j := range postings {
		r := s.scorer.Score(ctx, j, resumeText)
		scored = append(scored, ScoredJob{
			Posting:       j,
			MatchScore:    r.Score,
			KeyMatches:    r.KeyMatches,
			MissingSkills: r.MissingSkills,
			Explanation:   r.Explanation,
		})
	}
	return scored
}

func skillMatches(skills []string, q string) bool {
	for _, s := range skills {
		if strings.Contains(strings.ToLower(s), q) {
			return true
		}
	}
	return false
}

func filterScores(jobs []ScoredJob, keep func(int) bool) []ScoredJob {
	out := jobs[:0]
	for _, j := range jobs {
		if keep(j.MatchScore) {
			out = append(out, j)
		}
	}
	return out
}

func sortByScore(jobs []ScoredJob) {
	sort.SliceStable(jobs, func(i, j int) bool {
		return jobs[i].MatchScore > jobs[j].MatchScore
	})
}
