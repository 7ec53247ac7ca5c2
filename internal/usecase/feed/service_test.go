package feed

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/anuja-awchar/ai-powered-job-tracker/internal/domain/job"
	"github.com/anuja-awchar/ai-powered-job-tracker/internal/store"
	"github.com/anuja-awchar/ai-powered-job-tracker/internal/usecase/match"
)

type mockScorer struct {
	scores     map[string]int
	gotResume  string
	scoreCalls int
}

func (m *mockScorer) Score(_ context.Context, p job.Posting, resumeText string) match.Result {
	m.gotResume = resumeText
	m.scoreCalls++
	return match.Result{
		Score:         m.scores[p.ID],
		KeyMatches:    []string{},
		MissingSkills: []string{},
		Explanation:   "test",
	}
}

func testCatalog(n int) *job.Catalog {
	postings := make([]job.Posting, 0, n)
	for i := 1; i <= n; i++ {
		postings = append(postings, job.Posting{
			ID:             fmt.Sprintf("job_%d", i),
			Title:          fmt.Sprintf("Engineer %d", i),
			Company:        "Acme",
			Location:       "Remote",
			JobType:        "Full-time",
			WorkMode:       "Remote",
			RequiredSkills: []string{"Go"},
		})
	}
	return job.NewCatalog(postings)
}

func TestFeed_SortsByScoreAndCapsBestMatches(t *testing.T) {
	scorer := &mockScorer{scores: map[string]int{}}
	catalog := testCatalog(10)
	for i := 1; i <= 10; i++ {
		scorer.scores[fmt.Sprintf("job_%d", i)] = i * 10
	}

	svc := NewService(catalog, store.NewMemory(), scorer)
	result, err := svc.Feed(context.Background(), Params{UserID: "user-1"})
	if err != nil {
		t.Fatalf("feed: %v", err)
	}

	if result.Total != 10 {
		t.Fatalf("expected total 10, got %d", result.Total)
	}
	if len(result.BestMatches) != 8 {
		t.Fatalf("expected 8 best matches, got %d", len(result.BestMatches))
	}
	if result.BestMatches[0].MatchScore != 100 || result.BestMatches[7].MatchScore != 30 {
		t.Fatalf("unexpected best match ordering: %d..%d",
			result.BestMatches[0].MatchScore, result.BestMatches[7].MatchScore)
	}
	if len(result.AllJobs) != 10 {
		t.Fatalf("expected all 10 jobs, got %d", len(result.AllJobs))
	}
}

func TestFeed_Filters(t *testing.T) {
	scorer := &mockScorer{scores: map[string]int{"job_1": 90, "job_2": 80}}
	catalog := job.NewCatalog([]job.Posting{
		{ID: "job_1", Title: "Senior React Developer", JobType: "Full-time", WorkMode: "Remote", Location: "San Francisco, CA"},
		{ID: "job_2", Title: "Python Developer", JobType: "Contract", WorkMode: "Onsite", Location: "New York, NY"},
	})
	svc := NewService(catalog, store.NewMemory(), scorer)
	ctx := context.Background()

	result, _ := svc.Feed(ctx, Params{UserID: "u", Title: "react"})
	if result.Total != 1 || result.AllJobs[0].ID != "job_1" {
		t.Fatalf("title filter failed: %+v", result)
	}

	result, _ = svc.Feed(ctx, Params{UserID: "u", JobType: "Contract"})
	if result.Total != 1 || result.AllJobs[0].ID != "job_2" {
		t.Fatalf("jobType filter failed: %+v", result)
	}

	result, _ = svc.Feed(ctx, Params{UserID: "u", WorkMode: "Remote"})
	if result.Total != 1 || result.AllJobs[0].ID != "job_1" {
		t.Fatalf("workMode filter failed: %+v", result)
	}

	result, _ = svc.Feed(ctx, Params{UserID: "u", Location: "new york"})
	if result.Total != 1 || result.AllJobs[0].ID != "job_2" {
		t.Fatalf("location filter failed: %+v", result)
	}
}

func TestFeed_MatchScoreFilterBands(t *testing.T) {
	scorer := &mockScorer{scores: map[string]int{"job_1": 90, "job_2": 55, "job_3": 40, "job_4": 20}}
	svc := NewService(testCatalog(4), store.NewMemory(), scorer)
	ctx := context.Background()

	high, _ := svc.Feed(ctx, Params{UserID: "u", MatchScoreFilter: "high"})
	if high.Total != 1 || high.AllJobs[0].MatchScore != 90 {
		t.Fatalf("high band failed: %+v", high)
	}

	medium, _ := svc.Feed(ctx, Params{UserID: "u", MatchScoreFilter: "medium"})
	if medium.Total != 2 {
		t.Fatalf("medium band failed: %+v", medium)
	}
}

func TestFeed_UsesStoredResume(t *testing.T) {
	scorer := &mockScorer{scores: map[string]int{}}
	st := store.NewMemory()
	svc := NewService(testCatalog(1), st, scorer)
	ctx := context.Background()

	if _, err := svc.Feed(ctx, Params{UserID: "user-1"}); err != nil {
		t.Fatalf("feed: %v", err)
	}
	if scorer.gotResume != noResumeText {
		t.Fatalf("expected default resume text, got %q", scorer.gotResume)
	}

	_ = st.Set(ctx, store.ResumeKey("user-1"), "my resume", store.TTLDurable)
	if _, err := svc.Feed(ctx, Params{UserID: "user-1"}); err != nil {
		t.Fatalf("feed: %v", err)
	}
	if scorer.gotResume != "my resume" {
		t.Fatalf("expected stored resume text, got %q", scorer.gotResume)
	}
}

func TestFeed_RequiresUserID(t *testing.T) {
	svc := NewService(testCatalog(1), store.NewMemory(), &mockScorer{})
	if _, err := svc.Feed(context.Background(), Params{}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestGet(t *testing.T) {
	svc := NewService(testCatalog(2), store.NewMemory(), &mockScorer{})

	p, err := svc.Get("job_2")
	if err != nil || p.ID != "job_2" {
		t.Fatalf("expected job_2, got %+v err=%v", p, err)
	}
	if _, err := svc.Get("job_999"); !errors.Is(err, ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}

func TestSearch_MatchesAcrossFields(t *testing.T) {
	scorer := &mockScorer{scores: map[string]int{"job_1": 30, "job_2": 70}}
	catalog := job.NewCatalog([]job.Posting{
		{ID: "job_1", Title: "Frontend Developer", Company: "Acme", Description: "UI work", RequiredSkills: []string{"React"}},
		{ID: "job_2", Title: "Backend Engineer", Company: "ReactiveSystems", Description: "APIs", RequiredSkills: []string{"Go"}},
	})
	svc := NewService(catalog, store.NewMemory(), scorer)

	jobs, err := svc.Search(context.Background(), "u", "react")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(jobs) != 2 {
		t.Fatalf("expected 2 hits (skill + company), got %d", len(jobs))
	}
	if jobs[0].ID != "job_2" {
		t.Fatalf("expected highest score first, got %s", jobs[0].ID)
	}

	if _, err := svc.Search(context.Background(), "", "react"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
