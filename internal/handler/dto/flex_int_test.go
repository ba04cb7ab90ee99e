package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexInt_Unmarshal(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    FlexInt
		wantErr bool
	}{
		{"number", `3`, 3, false},
		{"numeric string", `"4"`, 4, false},
		{"padded string", `" 5 "`, 5, false},
		{"empty string", `""`, 0, false},
		{"null", `null`, 0, false},
		{"negative", `-1`, -1, false},
		{"word", `"three"`, 0, true},
		{"float", `2.5`, 0, true},
		{"bool", `true`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f FlexInt
			err := json.Unmarshal([]byte(tt.input), &f)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, f)
		})
	}
}

func TestQuizRequest_Decode(t *testing.T) {
	var req QuizRequest
	require.NoError(t, json.Unmarshal([]byte(`{"previous_questions":[1,2],"quiz_category":{"type":"Science","id":"1"}}`), &req))

	assert.Equal(t, []uint{1, 2}, req.PreviousQuestions)
	require.NotNil(t, req.QuizCategory)
	assert.Equal(t, FlexInt(1), req.QuizCategory.ID)

	var missing QuizRequest
	require.NoError(t, json.Unmarshal([]byte(`{"previous_questions":[]}`), &missing))
	assert.Nil(t, missing.QuizCategory)
}

func TestCreateQuestionRequest_ToEntity(t *testing.T) {
	req := CreateQuestionRequest{Question: "Q?", Answer: "A", Category: 2, Difficulty: 3}
	q, ok := req.ToEntity()
	require.True(t, ok)
	assert.Equal(t, uint(2), q.Category)
	assert.Equal(t, 3, q.Difficulty)

	req.Category = -1
	_, ok = req.ToEntity()
	assert.False(t, ok)
}
