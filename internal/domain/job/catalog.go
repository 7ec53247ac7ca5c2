package job

import "time"

// Catalog is a read-only set of postings keyed by ID.
type Catalog struct {
	postings []Posting
	byID     map[string]Posting
}

func NewCatalog(postings []Posting) *Catalog {
	byID := make(map[string]Posting, len(postings))
	for _, p := range postings {
		byID[p.ID] = p
	}
	return &Catalog{postings: postings, byID: byID}
}

// All returns a copy of the catalog so callers can filter and sort freely.
func (c *Catalog) All() []Posting {
	out := make([]Posting, len(c.postings))
	copy(out, c.postings)
	return out
}

func (c *Catalog) ByID(id string) (Posting, bool) {
	p, ok := c.byID[id]
	return p, ok
}

func (c *Catalog) Len() int {
	return len(c.postings)
}

// DefaultCatalog returns the built-in postings used until a live job source
// is integrated.
func DefaultCatalog() *Catalog {
	now := time.Now().UTC()
	return NewCatalog([]Posting{
		{
			ID:             "job_1",
			Title:          "Senior React Developer",
			Company:        "TechCorp",
			Location:       "San Francisco, CA",
			Description:    "We are looking for an experienced React developer with 5+ years of experience building large single-page applications.",
			JobType:        "Full-time",
			WorkMode:       "Remote",
			PostedDate:     now.Add(-2 * 24 * time.Hour),
			RequiredSkills: []string{"React", "JavaScript", "TypeScript", "Node.js"},
			Link:           "https://example.com/job1",
		},
		{
			ID:             "job_2",
			Title:          "Full Stack Engineer",
			Company:        "StartupXYZ",
			Location:       "New York, NY",
			Description:    "Seeking a full stack engineer comfortable with a modern JavaScript stack and rapid iteration.",
			JobType:        "Full-time",
			WorkMode:       "Hybrid",
			PostedDate:     now.Add(-1 * 24 * time.Hour),
			RequiredSkills: []string{"JavaScript", "Node.js", "React", "MongoDB"},
			Link:           "https://example.com/job2",
		},
		{
			ID:             "job_3",
			Title:          "Python Developer",
			Company:        "DataAI Inc",
			Location:       "Remote",
			Description:    "Join our data science team working on production machine learning projects.",
			JobType:        "Full-time",
			WorkMode:       "Remote",
			PostedDate:     now.Add(-3 * 24 * time.Hour),
			RequiredSkills: []string{"Python", "Machine Learning", "TensorFlow"},
			Link:           "https://example.com/job3",
		},
		{
			ID:             "job_4",
			Title:          "Backend Engineer (Go)",
			Company:        "CloudScale",
			Location:       "Austin, TX",
			Description:    "Build and operate high-throughput APIs and backing services in Go.",
			JobType:        "Full-time",
			WorkMode:       "Remote",
			PostedDate:     now.Add(-5 * 24 * time.Hour),
			RequiredSkills: []string{"Go", "PostgreSQL", "Redis", "Kubernetes"},
			Link:           "https://example.com/job4",
		},
		{
			ID:             "job_5",
			Title:          "DevOps Engineer",
			Company:        "InfraWorks",
			Location:       "Seattle, WA",
			Description:    "Own CI/CD pipelines and cloud infrastructure for a growing platform team.",
			JobType:        "Contract",
			WorkMode:       "Onsite",
			PostedDate:     now.Add(-4 * 24 * time.Hour),
			RequiredSkills: []string{"AWS", "Terraform", "Docker", "Linux"},
			Link:           "https://example.com/job5",
		},
		{
			ID:             "job_6",
			Title:          "Frontend Developer",
			Company:        "DesignHub",
			Location:       "Remote",
			Description:    "Craft accessible, performant UI for a design collaboration product.",
			JobType:        "Part-time",
			WorkMode:       "Remote",
			PostedDate:     now.Add(-6 * 24 * time.Hour),
			RequiredSkills: []string{"JavaScript", "CSS", "React", "Accessibility"},
			Link:           "https://example.com/job6",
		},
	})
}
