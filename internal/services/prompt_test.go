package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromptBuilder_SystemIsFixed(t *testing.T) {
	pb := NewPromptBuilder()

	systemA, _ := pb.Build("resume one", "")
	systemB, _ := pb.Build("resume two", "some job description")
	assert.Equal(t, systemA, systemB)

	for _, section := range []string{
		"Summary",
		"Strengths",
		"Areas for Improvement",
		"Rewritten Bullet Points",
		"Keywords Analysis",
		"Final Action Plan",
	} {
		assert.Contains(t, systemA, section)
	}
	assert.Contains(t, systemA, "STAR")
	assert.Contains(t, systemA, "[X%]")
}

func TestPromptBuilder_UserContent(t *testing.T) {
	pb := NewPromptBuilder()
	resume := "Senior engineer with 8 years of Go experience."

	t.Run("without job description", func(t *testing.T) {
		_, user := pb.Build(resume, "")
		assert.Contains(t, user, resume)
		assert.NotContains(t, user, "JOB DESCRIPTION")
		assert.NotContains(t, user, "compare the resume")
	})

	t.Run("with job description", func(t *testing.T) {
		jd := "Looking for a backend engineer familiar with Go and Postgres."
		_, user := pb.Build(resume, jd)
		require.Contains(t, user, resume)
		assert.Contains(t, user, "JOB DESCRIPTION")
		assert.Contains(t, user, jd)
	})

	t.Run("whitespace job description is omitted", func(t *testing.T) {
		_, user := pb.Build(resume, "   \n ")
		assert.NotContains(t, user, "JOB DESCRIPTION")
	})
}
