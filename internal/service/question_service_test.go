package service

import (
	"context"
	"errors"
	"road_scholar_backend/internal/model"
	"road_scholar_backend/internal/repository"
	"road_scholar_backend/internal/testutil"
	"road_scholar_backend/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }

func TestQuestionUpdateReconcilesChoices(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	svc := NewQuestionService(
		repository.NewQuestionRepository(db),
		repository.NewChoiceRepository(db),
		repository.NewActivityRepository(db),
		nil,
	)
	module := testutil.Module(t, db, "Road signs")
	activity := testutil.Activity(t, db, module.ID, "Quiz")

	_, err := svc.Create(ctx, &QuestionRequest{Question: "q", Category: model.CategoryNormal, Type: model.QuestionText})
	assert.True(t, errors.Is(err, util.ErrValidation))

	created, err := svc.Create(ctx, &QuestionRequest{
		ActivityID: activity.ID,
		Question:   "What does a red octagon mean?",
		Category:   model.CategoryNormal,
		Type:       model.QuestionText,
		Choices: []ChoiceInput{
			{Context: "Stop", IsCorrect: boolPtr(true)},
			{Context: "Go", IsCorrect: boolPtr(false)},
		},
	})
	require.NoError(t, err)
	require.Len(t, created.Choices, 2)
	keep, drop := created.Choices[0], created.Choices[1]

	updated, err := svc.Update(ctx, created.ID, &QuestionRequest{
		Question: "What does a red octagon sign mean?",
		Category: model.CategorySituational,
		Type:     model.QuestionText,
		Choices: []ChoiceInput{
			{ID: keep.ID, Context: "Stop", IsCorrect: boolPtr(true)},
			{Context: "Slow down", IsCorrect: boolPtr(false)},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, model.CategorySituational, updated.Category)
	require.Len(t, updated.Choices, 2)

	ids := []uint{updated.Choices[0].ID, updated.Choices[1].ID}
	assert.Contains(t, ids, keep.ID)
	assert.NotContains(t, ids, drop.ID)

	_, err = svc.ShowChoice(ctx, drop.ID)
	assert.True(t, errors.Is(err, util.ErrChoiceNotFound))

	require.NoError(t, svc.Delete(ctx, created.ID))
	_, err = svc.ShowChoice(ctx, keep.ID)
	assert.True(t, errors.Is(err, util.ErrChoiceNotFound))
	_, err = svc.Show(ctx, created.ID)
	assert.True(t, errors.Is(err, util.ErrQuestionNotFound))
}

func TestQuestionUpdateRejectsForeignChoice(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	svc := NewQuestionService(
		repository.NewQuestionRepository(db),
		repository.NewChoiceRepository(db),
		repository.NewActivityRepository(db),
		nil,
	)
	module := testutil.Module(t, db, "Road signs")
	activity := testutil.Activity(t, db, module.ID, "Quiz")
	mine := testutil.Question(t, db, activity.ID, model.CategoryNormal)
	other := testutil.Question(t, db, activity.ID, model.CategoryNormal)

	_, err := svc.Update(ctx, mine.ID, &QuestionRequest{
		Question: "changed",
		Category: model.CategoryNormal,
		Type:     model.QuestionText,
		Choices:  []ChoiceInput{{ID: other.Choices[0].ID, Context: "stolen", IsCorrect: boolPtr(true)}},
	})
	require.Error(t, err)

	unchanged, err := svc.Show(ctx, mine.ID)
	require.NoError(t, err)
	assert.Equal(t, mine.Question, unchanged.Question)
	assert.Len(t, unchanged.Choices, 2)
}
