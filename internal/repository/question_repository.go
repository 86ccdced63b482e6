package repository

import (
	"context"
	"road_scholar_backend/internal/model"
	"road_scholar_backend/internal/util"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// QuestionRepository is the question bank: questions with their choices, keyed by activity.
type QuestionRepository struct {
	DB *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{DB: db}
}

// Refs returns id and category of every question in an activity, ordered by id.
func (r *QuestionRepository) Refs(ctx context.Context, activityID uint) ([]model.QuestionRef, error) {
	var refs []model.QuestionRef
	err := r.DB.WithContext(ctx).Model(&model.Question{}).
		Select("id, category").
		Where("activity_id = ?", activityID).
		Order("id asc").
		Scan(&refs).Error
	return refs, err
}

// FindWithChoices loads the given questions with choices, in the order of ids.
func (r *QuestionRepository) FindWithChoices(ctx context.Context, ids []uint) ([]model.Question, error) {
	if len(ids) == 0 {
		return []model.Question{}, nil
	}

	var questions []model.Question
	err := r.DB.WithContext(ctx).Preload("Choices").Where("id IN ?", ids).Find(&questions).Error
	if err != nil {
		return nil, err
	}

	byID := make(map[uint]model.Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}
	ordered := make([]model.Question, 0, len(ids))
	for _, id := range ids {
		if q, ok := byID[id]; ok {
			ordered = append(ordered, q)
		}
	}
	return ordered, nil
}

func (r *QuestionRepository) List(ctx context.Context) ([]model.Question, error) {
	var questions []model.Question
	err := r.DB.WithContext(ctx).Preload("Activity").Preload("Choices").Order("id asc").Find(&questions).Error
	return questions, err
}

func (r *QuestionRepository) FindByID(ctx context.Context, id uint) (*model.Question, error) {
	var question model.Question
	if err := r.DB.WithContext(ctx).Preload("Activity").Preload("Choices").First(&question, id).Error; err != nil {
		return nil, notFound(err, util.ErrQuestionNotFound)
	}
	return &question, nil
}

// Create inserts a question and its choices together.
func (r *QuestionRepository) Create(ctx context.Context, question *model.Question) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		choices := question.Choices
		question.Choices = nil
		if err := tx.Omit(clause.Associations).Create(question).Error; err != nil {
			return err
		}
		for i := range choices {
			choices[i].QuestionID = question.ID
		}
		if len(choices) > 0 {
			if err := tx.Create(&choices).Error; err != nil {
				return err
			}
		}
		question.Choices = choices
		return nil
	})
}

// UpdateWithChoices saves the question and reconciles its choice set: choices with an id
// are updated, choices without one are created, and choices not listed are deleted.
func (r *QuestionRepository) UpdateWithChoices(ctx context.Context, question *model.Question, choices []model.Choice) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(question).Error; err != nil {
			return err
		}

		keep := make([]uint, 0, len(choices))
		for i := range choices {
			c := &choices[i]
			c.QuestionID = question.ID
			if c.ID != 0 {
				var owned int64
				if err := tx.Model(&model.Choice{}).Where("id = ? AND question_id = ?", c.ID, question.ID).Count(&owned).Error; err != nil {
					return err
				}
				if owned == 0 {
					return util.ErrChoiceNotFound
				}
				err := tx.Model(&model.Choice{}).
					Where("id = ?", c.ID).
					Updates(map[string]interface{}{"context": c.Context, "is_correct": c.IsCorrect}).Error
				if err != nil {
					return err
				}
			} else if err := tx.Create(c).Error; err != nil {
				return err
			}
			keep = append(keep, c.ID)
		}

		stale := tx.Where("question_id = ?", question.ID)
		if len(keep) > 0 {
			stale = stale.Where("id NOT IN ?", keep)
		}
		return stale.Delete(&model.Choice{}).Error
	})
}

func (r *QuestionRepository) Delete(ctx context.Context, id uint) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("question_id = ?", id).Delete(&model.Choice{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.Question{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return util.ErrQuestionNotFound
		}
		return nil
	})
}

func (r *QuestionRepository) UpdateImage(ctx context.Context, id uint, image string) error {
	return r.DB.WithContext(ctx).Model(&model.Question{}).Where("id = ?", id).Update("image", image).Error
}

// GradedChoice is a choice joined with the activity its question belongs to.
type GradedChoice struct {
	ID         uint
	QuestionID uint
	ActivityID uint
	IsCorrect  bool
}

// FindChoicesForGrading resolves choice ids to their question and activity.
func (r *QuestionRepository) FindChoicesForGrading(ctx context.Context, ids []uint) (map[uint]GradedChoice, error) {
	var rows []GradedChoice
	if len(ids) > 0 {
		err := r.DB.WithContext(ctx).Model(&model.Choice{}).
			Select("choices.id, choices.question_id, questions.activity_id, choices.is_correct").
			Joins("JOIN questions ON questions.id = choices.question_id AND questions.deleted_at IS NULL").
			Where("choices.id IN ?", ids).
			Scan(&rows).Error
		if err != nil {
			return nil, err
		}
	}

	out := make(map[uint]GradedChoice, len(rows))
	for _, row := range rows {
		out[row.ID] = row
	}
	return out, nil
}
