package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnswerSet_Is(t *testing.T) {
	tests := []struct {
		name    string
		answers AnswerSet
		key     string
		code    string
		want    bool
	}{
		{
			name:    "matching answer",
			answers: AnswerSet{KeyJurisdiction: "eu"},
			key:     KeyJurisdiction,
			code:    "eu",
			want:    true,
		},
		{
			name:    "non-matching answer",
			answers: AnswerSet{KeyJurisdiction: "non_eu"},
			key:     KeyJurisdiction,
			code:    "eu",
			want:    false,
		},
		{
			name:    "unanswered question never matches",
			answers: AnswerSet{},
			key:     KeyJurisdiction,
			code:    "eu",
			want:    false,
		},
		{
			name:    "empty code never matches even when unanswered",
			answers: AnswerSet{},
			key:     KeyJurisdiction,
			code:    "",
			want:    false,
		},
		{
			name:    "nil set never matches",
			answers: nil,
			key:     KeyJurisdiction,
			code:    "eu",
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.answers.Is(tt.key, tt.code))
		})
	}
}

func TestAnswerSet_OneOf(t *testing.T) {
	tests := []struct {
		name    string
		answers AnswerSet
		key     string
		codes   []string
		want    bool
	}{
		{
			name:    "member of set",
			answers: AnswerSet{KeyEmployeesIndividual: "1000_2999"},
			key:     KeyEmployeesIndividual,
			codes:   []string{"1000_2999", "3000_plus"},
			want:    true,
		},
		{
			name:    "not a member",
			answers: AnswerSet{KeyEmployeesIndividual: "50_249"},
			key:     KeyEmployeesIndividual,
			codes:   []string{"1000_2999", "3000_plus"},
			want:    false,
		},
		{
			name:    "absent answer fails closed",
			answers: AnswerSet{},
			key:     KeyEmployeesIndividual,
			codes:   []string{"1000_2999", "3000_plus"},
			want:    false,
		},
		{
			name:    "unrecognized value fails closed",
			answers: AnswerSet{KeyEmployeesIndividual: "lots"},
			key:     KeyEmployeesIndividual,
			codes:   []string{"1000_2999", "3000_plus"},
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.answers.OneOf(tt.key, tt.codes...))
		})
	}
}

func TestAnswerSet_Clone(t *testing.T) {
	original := AnswerSet{KeyJurisdiction: "eu", KeyParentStatus: "yes"}
	clone := original.Clone()

	clone[KeyJurisdiction] = "non_eu"
	assert.Equal(t, "eu", original.Get(KeyJurisdiction))
	assert.Equal(t, "non_eu", clone.Get(KeyJurisdiction))

	var nilSet AnswerSet
	cloned := nilSet.Clone()
	assert.NotNil(t, cloned)
	assert.Empty(t, cloned)
}
