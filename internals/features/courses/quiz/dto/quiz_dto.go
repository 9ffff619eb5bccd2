// file: internals/features/courses/quiz/dto/quiz_dto.go
package dto

import (
	m "github.com/Harus-Bisa/backend/internals/features/courses/lecture/model"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

// Create (JSON). All six fields are mandatory.
type CreateQuizRequest struct {
	Question           *string   `json:"question" validate:"required"`
	AnswerOptions      *[]string `json:"answerOptions" validate:"required"`
	CorrectAnswerIndex *int      `json:"correctAnswerIndex" validate:"required"`
	Duration           *int      `json:"duration" validate:"required"`
	PointWorth         *float64  `json:"pointWorth" validate:"required"`
	IncludeForGrading  *bool     `json:"includeForGrading" validate:"required"`
}

// Update (partial JSON)
type UpdateQuizRequest struct {
	Question           *string   `json:"question" validate:"omitempty"`
	AnswerOptions      *[]string `json:"answerOptions" validate:"omitempty"`
	CorrectAnswerIndex *int      `json:"correctAnswerIndex" validate:"omitempty"`
	Duration           *int      `json:"duration" validate:"omitempty"`
	PointWorth         *float64  `json:"pointWorth" validate:"omitempty"`
	IncludeForGrading  *bool     `json:"includeForGrading" validate:"omitempty"`
	Started            *bool     `json:"started" validate:"omitempty"`
}

// Answer (JSON)
type AnswerQuizRequest struct {
	StudentAnswerIndex *int `json:"studentAnswerIndex" validate:"required"`
}

/* =========================================================
 * RESPONSES
 * ========================================================= */

// FacultyQuizResponse replaces the participants map with its size.
type FacultyQuizResponse struct {
	QuizIndex          int      `json:"quizIndex"`
	Question           string   `json:"question"`
	AnswerOptions      []string `json:"answerOptions"`
	CorrectAnswerIndex int      `json:"correctAnswerIndex"`
	Duration           int      `json:"duration"`
	PointWorth         float64  `json:"pointWorth"`
	IncludeForGrading  bool     `json:"includeForGrading"`
	Started            bool     `json:"started"`
	Participants       int      `json:"participants"`
}

// StudentQuizResponse strips started/participants and carries the caller's
// own answer, when one has been recorded.
type StudentQuizResponse struct {
	QuizIndex          int      `json:"quizIndex"`
	Question           string   `json:"question"`
	AnswerOptions      []string `json:"answerOptions"`
	CorrectAnswerIndex int      `json:"correctAnswerIndex"`
	Duration           int      `json:"duration"`
	PointWorth         float64  `json:"pointWorth"`
	IncludeForGrading  bool     `json:"includeForGrading"`
	StudentAnswerIndex *int     `json:"studentAnswerIndex,omitempty"`
}

/* =========================================================
 * CONVERTERS
 * ========================================================= */

func ToFacultyQuizResponse(quiz *m.QuizItem, index int) FacultyQuizResponse {
	return FacultyQuizResponse{
		QuizIndex:          index,
		Question:           quiz.Question,
		AnswerOptions:      quiz.AnswerOptions,
		CorrectAnswerIndex: quiz.CorrectAnswerIndex,
		Duration:           quiz.Duration,
		PointWorth:         quiz.PointWorth,
		IncludeForGrading:  quiz.IncludeForGrading,
		Started:            quiz.Started,
		Participants:       len(quiz.Participants),
	}
}

func ToStudentQuizResponse(quiz *m.QuizItem, index int, studentID string) StudentQuizResponse {
	resp := StudentQuizResponse{
		QuizIndex:          index,
		Question:           quiz.Question,
		AnswerOptions:      quiz.AnswerOptions,
		CorrectAnswerIndex: quiz.CorrectAnswerIndex,
		Duration:           quiz.Duration,
		PointWorth:         quiz.PointWorth,
		IncludeForGrading:  quiz.IncludeForGrading,
	}
	if answer, ok := quiz.Participants[studentID]; ok {
		resp.StudentAnswerIndex = &answer
	}
	return resp
}
