package service

import (
	"context"
	"errors"
	"math/rand/v2"
	"road_scholar_backend/internal/model"
	"road_scholar_backend/internal/repository"
	"road_scholar_backend/internal/testutil"
	"road_scholar_backend/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func refsOf(counts map[model.QuestionCategory]int) []model.QuestionRef {
	var refs []model.QuestionRef
	id := uint(1)
	for _, category := range model.RequiredCategories {
		for i := 0; i < counts[category]; i++ {
			refs = append(refs, model.QuestionRef{ID: id, Category: category})
			id++
		}
	}
	return refs
}

func categoriesOf(refs []model.QuestionRef, ids []uint) map[model.QuestionCategory]int {
	byID := make(map[uint]model.QuestionCategory, len(refs))
	for _, ref := range refs {
		byID[ref.ID] = ref.Category
	}
	out := make(map[model.QuestionCategory]int)
	for _, id := range ids {
		out[byID[id]]++
	}
	return out
}

func TestSelectQuestionsCoversEveryCategory(t *testing.T) {
	// one lonely question per rare category makes a missed pick likely if coverage were left to chance
	refs := refsOf(map[model.QuestionCategory]int{
		model.CategorySituational: 1,
		model.CategoryNormal:      30,
		model.CategoryInteractive: 1,
	})

	for seed := uint64(0); seed < 200; seed++ {
		rng := rand.New(rand.NewPCG(seed, seed*7+1))
		ids := selectQuestions(refs, DefaultQuizSize, rng)

		require.Len(t, ids, DefaultQuizSize)
		assertUnique(t, ids)
		counts := categoriesOf(refs, ids)
		for _, category := range model.RequiredCategories {
			assert.GreaterOrEqual(t, counts[category], 1, "seed %d missing %s", seed, category)
		}
	}
}

func TestSelectQuestionsSmallPoolReturnsEverything(t *testing.T) {
	refs := refsOf(map[model.QuestionCategory]int{
		model.CategorySituational: 3,
		model.CategoryNormal:      4,
		model.CategoryInteractive: 2,
	})

	for seed := uint64(0); seed < 50; seed++ {
		ids := selectQuestions(refs, DefaultQuizSize, rand.New(rand.NewPCG(seed, 99)))
		require.Len(t, ids, len(refs))
		assertUnique(t, ids)
	}
}

func TestSelectQuestionsEmptyCategoryDegrades(t *testing.T) {
	refs := refsOf(map[model.QuestionCategory]int{
		model.CategoryNormal:      20,
		model.CategoryInteractive: 2,
	})

	ids := selectQuestions(refs, DefaultQuizSize, rand.New(rand.NewPCG(1, 2)))
	require.Len(t, ids, DefaultQuizSize)
	assertUnique(t, ids)
	assert.Zero(t, categoriesOf(refs, ids)[model.CategorySituational])
	assert.GreaterOrEqual(t, categoriesOf(refs, ids)[model.CategoryInteractive], 1)
}

func TestSelectQuestionsTinyTarget(t *testing.T) {
	refs := refsOf(map[model.QuestionCategory]int{
		model.CategorySituational: 5,
		model.CategoryNormal:      5,
		model.CategoryInteractive: 5,
	})

	ids := selectQuestions(refs, 2, rand.New(rand.NewPCG(3, 4)))
	assert.Len(t, ids, 2)
	assert.Empty(t, selectQuestions(nil, DefaultQuizSize, rand.New(rand.NewPCG(3, 4))))
}

func TestSelectQuestionsIsSeedDeterministic(t *testing.T) {
	refs := refsOf(map[model.QuestionCategory]int{
		model.CategorySituational: 10,
		model.CategoryNormal:      10,
		model.CategoryInteractive: 10,
	})

	a := selectQuestions(refs, DefaultQuizSize, rand.New(rand.NewPCG(42, 42)))
	b := selectQuestions(refs, DefaultQuizSize, rand.New(rand.NewPCG(42, 42)))
	assert.Equal(t, a, b)
}

func assertUnique(t *testing.T, ids []uint) {
	t.Helper()
	seen := make(map[uint]bool, len(ids))
	for _, id := range ids {
		assert.False(t, seen[id], "question %d drawn twice", id)
		seen[id] = true
	}
}

func TestAssembleLoadsQuestionsWithChoices(t *testing.T) {
	db := testutil.NewDB(t)
	module := testutil.Module(t, db, "Road signs")
	activity := testutil.Activity(t, db, module.ID, "Signs quiz")
	for i := 0; i < 6; i++ {
		testutil.Question(t, db, activity.ID, model.RequiredCategories[i%3])
	}
	other := testutil.Activity(t, db, module.ID, "Other quiz")
	testutil.Question(t, db, other.ID, model.CategoryNormal)

	assembler := NewQuizAssembler(
		repository.NewActivityRepository(db),
		repository.NewQuestionRepository(db),
		4,
		rand.New(rand.NewPCG(7, 7)),
	)

	questions, err := assembler.Assemble(context.Background(), activity.ID)
	require.NoError(t, err)
	require.Len(t, questions, 4)

	seen := map[model.QuestionCategory]bool{}
	for _, q := range questions {
		assert.Equal(t, activity.ID, q.ActivityID)
		assert.Len(t, q.Choices, 2)
		seen[q.Category] = true
	}
	assert.Len(t, seen, 3)

	_, err = assembler.Assemble(context.Background(), 999)
	assert.True(t, errors.Is(err, util.ErrNotFound))
}
