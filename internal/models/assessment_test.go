package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsAssessmentStatus(t *testing.T) {
	for _, s := range []string{"pending", "scheduled", "completed", "cancelled"} {
		assert.True(t, IsAssessmentStatus(s), s)
	}
	assert.False(t, IsAssessmentStatus("archived"))
	assert.False(t, IsAssessmentStatus(""))
}

func TestCanTransitionAssessment(t *testing.T) {
	allowed := [][2]string{
		{AssessmentStatusPending, AssessmentStatusScheduled},
		{AssessmentStatusPending, AssessmentStatusCancelled},
		{AssessmentStatusScheduled, AssessmentStatusCompleted},
		{AssessmentStatusScheduled, AssessmentStatusCancelled},
	}
	for _, pair := range allowed {
		assert.True(t, CanTransitionAssessment(pair[0], pair[1]), "%s -> %s", pair[0], pair[1])
	}

	denied := [][2]string{
		{AssessmentStatusPending, AssessmentStatusCompleted},
		{AssessmentStatusCompleted, AssessmentStatusScheduled},
		{AssessmentStatusCompleted, AssessmentStatusCancelled},
		{AssessmentStatusCancelled, AssessmentStatusPending},
		{AssessmentStatusScheduled, AssessmentStatusScheduled},
	}
	for _, pair := range denied {
		assert.False(t, CanTransitionAssessment(pair[0], pair[1]), "%s -> %s", pair[0], pair[1])
	}
}
