// file: internals/features/courses/quiz/service/quiz_service.go
package service

import (
	"errors"

	"gorm.io/gorm"

	lectureModel "github.com/Harus-Bisa/backend/internals/features/courses/lecture/model"
	lectureService "github.com/Harus-Bisa/backend/internals/features/courses/lecture/service"
	quizdto "github.com/Harus-Bisa/backend/internals/features/courses/quiz/dto"
)

var (
	ErrLectureNotFound   = lectureService.ErrLectureNotFound
	ErrQuizIndexNotFound = errors.New("Specified quizIndex not found")
)

// QuizService mutates the quiz list embedded in a lecture. Quizzes have no
// stable id: every write reads the whole list, rebuilds it in memory, and
// writes it back, so two concurrent writers race and the later one wins.
type QuizService struct {
	DB       *gorm.DB
	Lectures *lectureService.LectureService
}

func NewQuizService(db *gorm.DB) *QuizService {
	return &QuizService{DB: db, Lectures: lectureService.NewLectureService(db)}
}

func (s *QuizService) saveQuizzes(lecture *lectureModel.LectureModel) error {
	return s.DB.Model(lecture).Update("lecture_quizzes", lecture.LectureQuizzes).Error
}

// CreateQuiz appends a quiz in its initial runtime state (not started, no
// participants) to the lecture's quiz list and returns it with its position.
func (s *QuizService) CreateQuiz(lectureID string, req *quizdto.CreateQuizRequest) (*lectureModel.QuizItem, int, error) {
	lecture, err := s.Lectures.GetLecture(lectureID)
	if err != nil {
		return nil, 0, err
	}

	quiz := lectureModel.QuizItem{
		Question:           *req.Question,
		AnswerOptions:      *req.AnswerOptions,
		CorrectAnswerIndex: *req.CorrectAnswerIndex,
		Duration:           *req.Duration,
		PointWorth:         *req.PointWorth,
		IncludeForGrading:  *req.IncludeForGrading,
		Started:            false,
		Participants:       map[string]int{},
	}
	lecture.LectureQuizzes = append(lecture.LectureQuizzes, quiz)
	if err := s.saveQuizzes(lecture); err != nil {
		return nil, 0, err
	}
	return &quiz, len(lecture.LectureQuizzes) - 1, nil
}

// GetQuizzes returns the lecture's quiz list.
func (s *QuizService) GetQuizzes(lectureID string) ([]lectureModel.QuizItem, error) {
	lecture, err := s.Lectures.GetLecture(lectureID)
	if err != nil {
		return nil, err
	}
	return []lectureModel.QuizItem(lecture.LectureQuizzes), nil
}

// GetQuiz returns one quiz by position.
func (s *QuizService) GetQuiz(lectureID string, quizIndex int) (*lectureModel.QuizItem, error) {
	lecture, err := s.Lectures.GetLecture(lectureID)
	if err != nil {
		return nil, err
	}
	if quizIndex < 0 || quizIndex >= len(lecture.LectureQuizzes) {
		return nil, ErrQuizIndexNotFound
	}
	quiz := lecture.LectureQuizzes[quizIndex]
	return &quiz, nil
}

// UpdateQuiz rebuilds the quiz list substituting only the target index.
func (s *QuizService) UpdateQuiz(lectureID string, quizIndex int, req *quizdto.UpdateQuizRequest) (*lectureModel.QuizItem, error) {
	lecture, err := s.Lectures.GetLecture(lectureID)
	if err != nil {
		return nil, err
	}
	if quizIndex < 0 || quizIndex >= len(lecture.LectureQuizzes) {
		return nil, ErrQuizIndexNotFound
	}

	quiz := lecture.LectureQuizzes[quizIndex]
	if req.Question != nil {
		quiz.Question = *req.Question
	}
	if req.AnswerOptions != nil {
		quiz.AnswerOptions = *req.AnswerOptions
	}
	if req.CorrectAnswerIndex != nil {
		quiz.CorrectAnswerIndex = *req.CorrectAnswerIndex
	}
	if req.Duration != nil {
		quiz.Duration = *req.Duration
	}
	if req.PointWorth != nil {
		quiz.PointWorth = *req.PointWorth
	}
	if req.IncludeForGrading != nil {
		quiz.IncludeForGrading = *req.IncludeForGrading
	}
	if req.Started != nil {
		quiz.Started = *req.Started
	}

	lecture.LectureQuizzes[quizIndex] = quiz
	if err := s.saveQuizzes(lecture); err != nil {
		return nil, err
	}
	return &quiz, nil
}

// DeleteQuiz rebuilds the quiz list omitting the target index. Every later
// quiz shifts down by one.
func (s *QuizService) DeleteQuiz(lectureID string, quizIndex int) (*lectureModel.QuizItem, error) {
	lecture, err := s.Lectures.GetLecture(lectureID)
	if err != nil {
		return nil, err
	}
	if quizIndex < 0 || quizIndex >= len(lecture.LectureQuizzes) {
		return nil, ErrQuizIndexNotFound
	}

	deleted := lecture.LectureQuizzes[quizIndex]
	lecture.LectureQuizzes = append(lecture.LectureQuizzes[:quizIndex], lecture.LectureQuizzes[quizIndex+1:]...)
	if err := s.saveQuizzes(lecture); err != nil {
		return nil, err
	}
	return &deleted, nil
}

// AnswerQuiz records a student's answer while the lecture is live. A quiz
// whose duration has been zeroed out keeps whatever answer was already
// recorded; the submission is accepted but ignored.
func (s *QuizService) AnswerQuiz(lectureID string, quizIndex int, studentID string, answerIndex int) (*lectureModel.QuizItem, error) {
	lecture, err := s.Lectures.GetLecture(lectureID)
	if err != nil {
		return nil, err
	}
	if !lecture.LectureLive {
		return nil, ErrLectureNotFound
	}
	if quizIndex < 0 || quizIndex >= len(lecture.LectureQuizzes) {
		return nil, ErrQuizIndexNotFound
	}

	quiz := lecture.LectureQuizzes[quizIndex]
	if quiz.Participants == nil {
		quiz.Participants = map[string]int{}
	}
	if quiz.Duration > 0 {
		quiz.Participants[studentID] = answerIndex
	}

	lecture.LectureQuizzes[quizIndex] = quiz
	if err := s.saveQuizzes(lecture); err != nil {
		return nil, err
	}
	return &quiz, nil
}

// StudentQuizzes returns the quiz list for a lecture that has gone live at
// least once; otherwise the lecture is treated as nonexistent.
func (s *QuizService) StudentQuizzes(lectureID string) ([]lectureModel.QuizItem, error) {
	lecture, err := s.Lectures.GetLecture(lectureID)
	if err != nil {
		return nil, err
	}
	if !lecture.LectureHasLived {
		return nil, ErrLectureNotFound
	}
	return []lectureModel.QuizItem(lecture.LectureQuizzes), nil
}

// StudentQuiz returns one quiz by position under the same hasLived gate.
func (s *QuizService) StudentQuiz(lectureID string, quizIndex int) (*lectureModel.QuizItem, error) {
	lecture, err := s.Lectures.GetLecture(lectureID)
	if err != nil {
		return nil, err
	}
	if !lecture.LectureHasLived {
		return nil, ErrLectureNotFound
	}
	if quizIndex < 0 || quizIndex >= len(lecture.LectureQuizzes) {
		return nil, ErrQuizIndexNotFound
	}
	quiz := lecture.LectureQuizzes[quizIndex]
	return &quiz, nil
}
