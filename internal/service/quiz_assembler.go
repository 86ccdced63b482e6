package service

import (
	"context"
	"math/rand/v2"
	"road_scholar_backend/internal/model"
	"road_scholar_backend/internal/repository"
	"road_scholar_backend/internal/util"
	"road_scholar_backend/pkg/tracing"
	"sync"

	"go.opentelemetry.io/otel/attribute"
)

const DefaultQuizSize = 14

// QuizAssembler draws the question set served for an activity.
type QuizAssembler struct {
	ActivityRepo *repository.ActivityRepository
	QuestionRepo *repository.QuestionRepository
	TargetSize   int

	mu  sync.Mutex
	rng *rand.Rand
}

// NewQuizAssembler uses rng for every draw; a nil rng gets a randomly seeded one.
func NewQuizAssembler(
	activityRepo *repository.ActivityRepository,
	questionRepo *repository.QuestionRepository,
	targetSize int,
	rng *rand.Rand,
) *QuizAssembler {
	if targetSize <= 0 {
		targetSize = DefaultQuizSize
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &QuizAssembler{
		ActivityRepo: activityRepo,
		QuestionRepo: questionRepo,
		TargetSize:   targetSize,
		rng:          rng,
	}
}

// Assemble returns up to TargetSize distinct questions of the activity, with choices,
// covering every required category that has at least one question.
func (a *QuizAssembler) Assemble(ctx context.Context, activityID uint) ([]model.Question, error) {
	ctx, span := tracing.Start(ctx, "quiz.assemble", attribute.Int("activity.id", int(activityID)))
	defer span.End()

	exists, err := a.ActivityRepo.Exists(ctx, activityID)
	if err != nil {
		tracing.Fail(span, err)
		return nil, err
	}
	if !exists {
		return nil, util.ErrActivityNotFound
	}

	refs, err := a.QuestionRepo.Refs(ctx, activityID)
	if err != nil {
		tracing.Fail(span, err)
		return nil, err
	}

	a.mu.Lock()
	ids := selectQuestions(refs, a.TargetSize, a.rng)
	a.mu.Unlock()
	span.SetAttributes(attribute.Int("quiz.pool", len(refs)), attribute.Int("quiz.size", len(ids)))

	questions, err := a.QuestionRepo.FindWithChoices(ctx, ids)
	if err != nil {
		tracing.Fail(span, err)
		return nil, err
	}
	return questions, nil
}

// selectQuestions picks one question per required category, tops up to size from the
// rest of the pool without replacement and shuffles the result.
func selectQuestions(refs []model.QuestionRef, size int, rng *rand.Rand) []uint {
	byCategory := make(map[model.QuestionCategory][]uint)
	for _, ref := range refs {
		byCategory[ref.Category] = append(byCategory[ref.Category], ref.ID)
	}

	selected := make([]uint, 0, size)
	taken := make(map[uint]bool, size)
	for _, category := range model.RequiredCategories {
		if len(selected) >= size {
			break
		}
		ids := byCategory[category]
		if len(ids) == 0 {
			continue
		}
		id := ids[rng.IntN(len(ids))]
		selected = append(selected, id)
		taken[id] = true
	}

	pool := make([]uint, 0, len(refs))
	for _, ref := range refs {
		if !taken[ref.ID] {
			taken[ref.ID] = true
			pool = append(pool, ref.ID)
		}
	}

	remaining := min(size-len(selected), len(pool))
	// partial Fisher-Yates: pool[:remaining] becomes a uniform sample
	for i := 0; i < remaining; i++ {
		j := i + rng.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	selected = append(selected, pool[:max(remaining, 0)]...)

	rng.Shuffle(len(selected), func(i, j int) {
		selected[i], selected[j] = selected[j], selected[i]
	})
	return selected
}
