package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// QuizItem is embedded in the lecture's quiz list and addressed by position,
// not by a stable id. Deleting an entry shifts every later entry down by one.
type QuizItem struct {
	Question           string   `json:"question"`
	AnswerOptions      []string `json:"answerOptions"`
	CorrectAnswerIndex int      `json:"correctAnswerIndex"`
	// Duration is advisory data: answers are accepted while it is > 0,
	// there is no wall clock behind it.
	Duration          int     `json:"duration"`
	PointWorth        float64 `json:"pointWorth"`
	IncludeForGrading bool    `json:"includeForGrading"`
	Started           bool    `json:"started"`
	// Participants maps a student id to the answer index they submitted.
	Participants map[string]int `json:"participants"`
}

type LectureModel struct {
	LectureID          uuid.UUID `gorm:"column:lecture_id;type:uuid;primaryKey" json:"lecture_id"`
	LectureCourseID    uuid.UUID `gorm:"column:lecture_course_id;type:uuid;not null;index" json:"lecture_course_id"`
	LectureDate        int64     `gorm:"column:lecture_date;not null" json:"lecture_date"`
	LectureDescription string    `gorm:"column:lecture_description;type:text" json:"lecture_description"`

	LectureParticipationRewardPercentage float64 `gorm:"column:lecture_participation_reward_percentage" json:"lecture_participation_reward_percentage"`

	// 📡 Live is the instantaneous broadcast flag toggled by faculty.
	// HasLived latches to true the first time Live is set and never resets.
	LectureLive     bool `gorm:"column:lecture_live;not null;default:false" json:"lecture_live"`
	LectureHasLived bool `gorm:"column:lecture_has_lived;not null;default:false" json:"lecture_has_lived"`

	LectureStudentsAttendance datatypes.JSONSlice[string]   `gorm:"column:lecture_students_attendance" json:"lecture_students_attendance"`
	LectureQuizzes            datatypes.JSONSlice[QuizItem] `gorm:"column:lecture_quizzes" json:"lecture_quizzes"`

	LectureCreatedAt time.Time `gorm:"column:lecture_created_at;autoCreateTime" json:"lecture_created_at"`
	LectureUpdatedAt time.Time `gorm:"column:lecture_updated_at;autoUpdateTime" json:"lecture_updated_at"`
}

func (LectureModel) TableName() string {
	return "lectures"
}

// HasAttendance reports whether the student is in the attendance list.
func (l *LectureModel) HasAttendance(studentID string) bool {
	for _, id := range l.LectureStudentsAttendance {
		if id == studentID {
			return true
		}
	}
	return false
}

// AddAttendance records the student in the attendance list (idempotent).
func (l *LectureModel) AddAttendance(studentID string) {
	if l.HasAttendance(studentID) {
		return
	}
	l.LectureStudentsAttendance = append(l.LectureStudentsAttendance, studentID)
}
