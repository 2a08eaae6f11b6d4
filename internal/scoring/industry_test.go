package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/cv-matcher/internal/types"
)

func TestInferIndustry_SoftwareEngineering(t *testing.T) {
	job := &types.JobRequirements{
		RequiredSkills: types.SkillSet{Technical: []string{"python", "go"}},
		Responsibilities: []string{
			"Develop backend software and microservices",
			"Design REST api endpoints",
		},
		SeniorityLevel: "senior engineer",
	}

	assert.Equal(t, "software_engineering", InferIndustry(job))
}

func TestInferIndustry_DataScience(t *testing.T) {
	job := &types.JobRequirements{
		RequiredSkills: types.SkillSet{Technical: []string{"pandas", "scikit-learn"}},
		Responsibilities: []string{
			"Build machine learning models",
			"Own analytics and statistics reporting",
			"Maintain etl pipelines as a data engineer",
		},
	}

	assert.Equal(t, "data_science", InferIndustry(job))
}

func TestInferIndustry_Sales(t *testing.T) {
	job := &types.JobRequirements{
		Responsibilities: []string{
			"Drive revenue through the sales pipeline",
			"Manage client accounts in the crm and hit quota",
		},
	}

	assert.Equal(t, "sales", InferIndustry(job))
}

func TestInferIndustry_NoSignalYieldsDefault(t *testing.T) {
	job := &types.JobRequirements{
		Responsibilities: []string{"Perform assigned duties"},
	}

	assert.Equal(t, DefaultProfile, InferIndustry(job))
}

func TestInferIndustry_EmptyJob(t *testing.T) {
	assert.Equal(t, DefaultProfile, InferIndustry(&types.JobRequirements{}))
}

func TestInferIndustry_TieKeepsDeclarationOrder(t *testing.T) {
	// One hit each for software_engineering ("software") and sales ("sales");
	// the earlier pattern wins.
	job := &types.JobRequirements{
		Responsibilities: []string{"Handle software sales"},
	}

	assert.Equal(t, "software_engineering", InferIndustry(job))
}
