package services

import (
	"testing"

	"lms/models/training"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type quizFixture struct {
	quiz      training.Quiz
	questions []training.Question
	correct   map[uint]uint // question ID -> correct option ID
	wrong     map[uint]uint // question ID -> one incorrect option ID
}

func createTestQuiz(t *testing.T, db *gorm.DB, lessonID uint, passingScore, questionCount int) quizFixture {
	t.Helper()

	quiz := training.Quiz{
		LessonID:     lessonID,
		Title:        "Knowledge Check",
		PassingScore: passingScore,
		IsActive:     true,
	}
	require.NoError(t, db.Create(&quiz).Error)

	fixture := quizFixture{
		quiz:    quiz,
		correct: make(map[uint]uint),
		wrong:   make(map[uint]uint),
	}

	for i := 0; i < questionCount; i++ {
		question := training.Question{
			QuizID:     quiz.ID,
			Text:       "Question",
			OrderIndex: i + 1,
		}
		require.NoError(t, db.Create(&question).Error)

		right := training.QuestionOption{QuestionID: question.ID, Text: "Right", IsCorrect: true, OrderIndex: 1}
		wrong := training.QuestionOption{QuestionID: question.ID, Text: "Wrong", IsCorrect: false, OrderIndex: 2}
		require.NoError(t, db.Create(&right).Error)
		require.NoError(t, db.Create(&wrong).Error)

		fixture.questions = append(fixture.questions, question)
		fixture.correct[question.ID] = right.ID
		fixture.wrong[question.ID] = wrong.ID
	}

	return fixture
}

func TestGradeQuizSubmission_TruncatesScore(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "truncate@test.local")
	module := createTestModule(t, db, "Module A", 1)
	lesson := createTestLesson(t, db, module.ID, "Lesson 1", 1)
	fixture := createTestQuiz(t, db, lesson.ID, 70, 3)

	// Two of three correct: 200/3 truncates to 66, below the bar
	answers := []SubmittedAnswer{
		{QuestionID: fixture.questions[0].ID, SelectedOptionID: fixture.correct[fixture.questions[0].ID]},
		{QuestionID: fixture.questions[1].ID, SelectedOptionID: fixture.correct[fixture.questions[1].ID]},
		{QuestionID: fixture.questions[2].ID, SelectedOptionID: fixture.wrong[fixture.questions[2].ID]},
	}

	result, err := GradeQuizSubmission(db, user.ID, fixture.quiz.ID, answers)
	require.NoError(t, err)
	assert.Equal(t, 66, result.Score)
	assert.False(t, result.Passed)
}

func TestGradeQuizSubmission_PassCompletesLesson(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "pass@test.local")
	module := createTestModule(t, db, "Module A", 1)
	lesson := createTestLesson(t, db, module.ID, "Lesson 1", 1)
	fixture := createTestQuiz(t, db, lesson.ID, 80, 5)

	// Four of five correct: exactly 80, which passes
	answers := make([]SubmittedAnswer, 0, 5)
	for i, q := range fixture.questions {
		optionID := fixture.correct[q.ID]
		if i == 4 {
			optionID = fixture.wrong[q.ID]
		}
		answers = append(answers, SubmittedAnswer{QuestionID: q.ID, SelectedOptionID: optionID})
	}

	result, err := GradeQuizSubmission(db, user.ID, fixture.quiz.ID, answers)
	require.NoError(t, err)
	assert.Equal(t, 80, result.Score)
	assert.True(t, result.Passed)

	var progress training.LessonProgress
	require.NoError(t, db.Where("user_id = ? AND lesson_id = ?", user.ID, lesson.ID).First(&progress).Error)
	assert.Equal(t, training.StatusCompleted, progress.Status)
}

func TestGradeQuizSubmission_RejectsIncompleteSubmission(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "incomplete@test.local")
	module := createTestModule(t, db, "Module A", 1)
	lesson := createTestLesson(t, db, module.ID, "Lesson 1", 1)
	fixture := createTestQuiz(t, db, lesson.ID, 70, 2)

	answers := []SubmittedAnswer{
		{QuestionID: fixture.questions[0].ID, SelectedOptionID: fixture.correct[fixture.questions[0].ID]},
	}

	_, err := GradeQuizSubmission(db, user.ID, fixture.quiz.ID, answers)
	assert.ErrorIs(t, err, ErrValidation)

	// Nothing persisted
	var count int64
	db.Model(&training.QuizResult{}).Count(&count)
	assert.Zero(t, count)
}

func TestGradeQuizSubmission_RejectsForeignOption(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "foreign@test.local")
	module := createTestModule(t, db, "Module A", 1)
	lesson := createTestLesson(t, db, module.ID, "Lesson 1", 1)
	fixture := createTestQuiz(t, db, lesson.ID, 70, 2)

	// Swap the second answer's option onto the first question
	answers := []SubmittedAnswer{
		{QuestionID: fixture.questions[0].ID, SelectedOptionID: fixture.correct[fixture.questions[1].ID]},
		{QuestionID: fixture.questions[1].ID, SelectedOptionID: fixture.correct[fixture.questions[1].ID]},
	}

	_, err := GradeQuizSubmission(db, user.ID, fixture.quiz.ID, answers)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestGradeQuizSubmission_RetakesAppend(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "retake@test.local")
	module := createTestModule(t, db, "Module A", 1)
	lesson := createTestLesson(t, db, module.ID, "Lesson 1", 1)
	fixture := createTestQuiz(t, db, lesson.ID, 100, 1)

	q := fixture.questions[0]

	failing := []SubmittedAnswer{{QuestionID: q.ID, SelectedOptionID: fixture.wrong[q.ID]}}
	passing := []SubmittedAnswer{{QuestionID: q.ID, SelectedOptionID: fixture.correct[q.ID]}}

	first, err := GradeQuizSubmission(db, user.ID, fixture.quiz.ID, failing)
	require.NoError(t, err)
	assert.False(t, first.Passed)

	second, err := GradeQuizSubmission(db, user.ID, fixture.quiz.ID, passing)
	require.NoError(t, err)
	assert.True(t, second.Passed)

	var count int64
	db.Model(&training.QuizResult{}).Where("user_id = ? AND quiz_id = ?", user.ID, fixture.quiz.ID).Count(&count)
	assert.Equal(t, int64(2), count)

	latest, err := LatestQuizResult(db, user.ID, fixture.quiz.ID)
	require.NoError(t, err)
	assert.Equal(t, second.ID, latest.ID)
}

func TestGradeQuizSubmission_InactiveQuiz(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "inactive@test.local")
	module := createTestModule(t, db, "Module A", 1)
	lesson := createTestLesson(t, db, module.ID, "Lesson 1", 1)
	fixture := createTestQuiz(t, db, lesson.ID, 70, 1)

	require.NoError(t, db.Model(&training.Quiz{}).Where("id = ?", fixture.quiz.ID).Update("is_active", false).Error)

	q := fixture.questions[0]
	_, err := GradeQuizSubmission(db, user.ID, fixture.quiz.ID,
		[]SubmittedAnswer{{QuestionID: q.ID, SelectedOptionID: fixture.correct[q.ID]}})
	assert.ErrorIs(t, err, ErrNotFound)
}
