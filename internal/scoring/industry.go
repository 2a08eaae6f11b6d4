package scoring

import (
	"strings"

	"github.com/jonathan/cv-matcher/internal/types"
)

// industryPatterns associates each industry with its keyword set. Declaration
// order doubles as the tie-break order when two industries score equally.
var industryPatterns = []struct {
	name     string
	keywords []string
}{
	{"software_engineering", []string{
		"software", "developer", "programming", "engineer", "backend", "frontend",
		"fullstack", "devops", "api", "microservices", "architect",
	}},
	{"data_science", []string{
		"data scientist", "machine learning", "ml", "ai", "analytics",
		"statistics", "modeling", "data engineer", "big data", "etl",
	}},
	{"product_management", []string{
		"product manager", "product owner", "roadmap", "stakeholder",
		"agile", "scrum", "user stories", "requirements", "strategy",
	}},
	{"sales", []string{
		"sales", "account manager", "business development", "revenue",
		"quota", "pipeline", "crm", "client", "prospect",
	}},
	{"marketing", []string{
		"marketing", "campaign", "brand", "content", "social media",
		"seo", "sem", "growth", "acquisition", "engagement",
	}},
}

// InferIndustry picks the weighting-profile industry by counting keyword hits
// across the job's responsibilities, technical skills, and seniority text.
// Zero hits anywhere yields the default profile identifier.
func InferIndustry(job *types.JobRequirements) string {
	var fields []string
	fields = append(fields, job.Responsibilities...)
	fields = append(fields, job.RequiredSkills.Technical...)
	if job.SeniorityLevel != "" {
		fields = append(fields, job.SeniorityLevel)
	}
	combined := strings.ToLower(strings.Join(fields, " "))

	bestIndustry := DefaultProfile
	bestHits := 0
	for _, pattern := range industryPatterns {
		hits := 0
		for _, keyword := range pattern.keywords {
			if strings.Contains(combined, keyword) {
				hits++
			}
		}
		if hits > bestHits {
			bestHits = hits
			bestIndustry = pattern.name
		}
	}
	return bestIndustry
}
