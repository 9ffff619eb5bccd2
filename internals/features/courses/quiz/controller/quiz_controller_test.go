// file: internals/features/courses/quiz/controller/quiz_controller_test.go
package controller_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	database "github.com/Harus-Bisa/backend/internals/databases"
	routes "github.com/Harus-Bisa/backend/internals/route"
)

const testSecret = "test-secret"

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))

	app := fiber.New()
	routes.SetupRoutes(app, db, testSecret)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) (*http.Response, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var env envelope
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &env))
	}
	return resp, env
}

func registerUser(t *testing.T, app *fiber.App, role, email string) (string, string) {
	t.Helper()

	resp, _ := doJSON(t, app, http.MethodPost, "/signup", "", map[string]any{
		"firstName": "Alex",
		"lastName":  "Smith",
		"email":     email,
		"school":    "State University",
		"role":      role,
		"password":  "secret123",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, env := doJSON(t, app, http.MethodPost, "/login", "", map[string]any{
		"email":    email,
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var credential struct {
		UserID string `json:"userId"`
		Token  string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &credential))
	return credential.UserID, credential.Token
}

// quizRoom wires a faculty, an enrolled student, and one lecture.
type quizRoom struct {
	app          *fiber.App
	facultyToken string
	studentToken string
	lectureID    string
}

func newQuizRoom(t *testing.T) *quizRoom {
	t.Helper()

	app := newTestApp(t)
	_, facultyToken := registerUser(t, app, "faculty", "prof@example.com")
	_, studentToken := registerUser(t, app, "student", "student@example.com")

	resp, env := doJSON(t, app, http.MethodPost, "/faculty/courses", facultyToken, map[string]any{
		"courseName": "foo",
		"startTerm":  "Jan 2019",
		"endTerm":    "Feb 2019",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var course map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &course))

	resp, _ = doJSON(t, app, http.MethodPost, "/student/courses", studentToken, map[string]any{
		"joinCode": course["joinCode"],
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, env = doJSON(t, app, http.MethodPost,
		"/faculty/courses/"+course["courseId"].(string)+"/lectures", facultyToken, map[string]any{
			"date":                          1546300800,
			"participationRewardPercentage": 50,
		})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var lecture map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &lecture))

	return &quizRoom{
		app:          app,
		facultyToken: facultyToken,
		studentToken: studentToken,
		lectureID:    lecture["lectureId"].(string),
	}
}

func (qr *quizRoom) setLive(t *testing.T, live bool) {
	t.Helper()

	resp, _ := doJSON(t, qr.app, http.MethodPut,
		"/faculty/lectures/"+qr.lectureID, qr.facultyToken, map[string]any{"live": live})
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func (qr *quizRoom) createQuiz(t *testing.T, question string, duration int) map[string]any {
	t.Helper()

	resp, env := doJSON(t, qr.app, http.MethodPost,
		"/faculty/lectures/"+qr.lectureID+"/quizzes", qr.facultyToken, map[string]any{
			"question":           question,
			"answerOptions":      []string{"a", "b", "c", "d"},
			"correctAnswerIndex": 2,
			"duration":           duration,
			"pointWorth":         10,
			"includeForGrading":  true,
		})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var quiz map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &quiz))
	return quiz
}

func (qr *quizRoom) answer(t *testing.T, index, answer int) (*http.Response, envelope) {
	t.Helper()

	return doJSON(t, qr.app, http.MethodPost,
		"/student/lectures/"+qr.lectureID+"/quizzes/"+strconv.Itoa(index), qr.studentToken,
		map[string]any{"studentAnswerIndex": answer})
}

func TestCreateQuizInitialState(t *testing.T) {
	qr := newQuizRoom(t)

	quiz := qr.createQuiz(t, "q1", 30)
	assert.Equal(t, "q1", quiz["question"])
	assert.Equal(t, false, quiz["started"])
	assert.Equal(t, float64(0), quiz["participants"])
	assert.Equal(t, true, quiz["includeForGrading"], "grading flag comes from the request")
}

func TestCreateQuizMissingField(t *testing.T) {
	qr := newQuizRoom(t)

	resp, env := doJSON(t, qr.app, http.MethodPost,
		"/faculty/lectures/"+qr.lectureID+"/quizzes", qr.facultyToken, map[string]any{
			"question": "incomplete",
		})
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "answerOptions is not provided", env.Message)
}

func TestStudentQuizReadRequiresHasLived(t *testing.T) {
	qr := newQuizRoom(t)
	qr.createQuiz(t, "q1", 30)

	resp, env := doJSON(t, qr.app, http.MethodGet,
		"/student/lectures/"+qr.lectureID+"/quizzes", qr.studentToken, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Specified lecture not found", env.Message)
}

func TestStudentEmptyQuizListIsNotAnError(t *testing.T) {
	qr := newQuizRoom(t)
	qr.setLive(t, true)

	resp, env := doJSON(t, qr.app, http.MethodGet,
		"/student/lectures/"+qr.lectureID+"/quizzes", qr.studentToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var list []map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &list))
	assert.Empty(t, list)
}

func TestAnswerQuizRequiresLive(t *testing.T) {
	qr := newQuizRoom(t)
	qr.createQuiz(t, "q1", 30)

	// has lived but no longer live
	qr.setLive(t, true)
	qr.setLive(t, false)

	resp, env := qr.answer(t, 0, 1)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Specified lecture not found", env.Message)
}

func TestAnswerQuizRecordsAndProjects(t *testing.T) {
	qr := newQuizRoom(t)
	qr.createQuiz(t, "q1", 30)
	qr.setLive(t, true)

	resp, env := qr.answer(t, 0, 1)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var quiz map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &quiz))
	assert.Equal(t, float64(1), quiz["studentAnswerIndex"])
	_, hasStarted := quiz["started"]
	_, hasParticipants := quiz["participants"]
	assert.False(t, hasStarted)
	assert.False(t, hasParticipants)

	// faculty sees the participant count, not the mapping
	resp, env = doJSON(t, qr.app, http.MethodGet,
		"/faculty/lectures/"+qr.lectureID+"/quizzes/0", qr.facultyToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(env.Data, &quiz))
	assert.Equal(t, float64(1), quiz["participants"])
}

// Zeroing the duration closes the quiz: later submissions are accepted but
// the recorded answer stays what it was.
func TestZeroDurationKeepsRecordedAnswer(t *testing.T) {
	qr := newQuizRoom(t)
	qr.createQuiz(t, "q1", 30)
	qr.setLive(t, true)

	resp, _ := qr.answer(t, 0, 1)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, qr.app, http.MethodPut,
		"/faculty/lectures/"+qr.lectureID+"/quizzes/0", qr.facultyToken,
		map[string]any{"duration": 0})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, env := qr.answer(t, 0, 3)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var quiz map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &quiz))
	assert.Equal(t, float64(1), quiz["studentAnswerIndex"], "closed quiz keeps the first answer")
}

func TestDeleteQuizShiftsIndexes(t *testing.T) {
	qr := newQuizRoom(t)
	qr.createQuiz(t, "first", 30)
	qr.createQuiz(t, "second", 30)

	resp, env := doJSON(t, qr.app, http.MethodDelete,
		"/faculty/lectures/"+qr.lectureID+"/quizzes/0", qr.facultyToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var deleted map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &deleted))
	assert.Equal(t, "first", deleted["question"])

	// index 0 now addresses what used to be index 1
	resp, env = doJSON(t, qr.app, http.MethodGet,
		"/faculty/lectures/"+qr.lectureID+"/quizzes/0", qr.facultyToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var quiz map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &quiz))
	assert.Equal(t, "second", quiz["question"])

	resp, env = doJSON(t, qr.app, http.MethodGet,
		"/faculty/lectures/"+qr.lectureID+"/quizzes/1", qr.facultyToken, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Specified quizIndex not found", env.Message)
}

func TestQuizIndexOutOfRange(t *testing.T) {
	qr := newQuizRoom(t)
	qr.createQuiz(t, "only", 30)

	resp, env := doJSON(t, qr.app, http.MethodGet,
		"/faculty/lectures/"+qr.lectureID+"/quizzes/5", qr.facultyToken, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Specified quizIndex not found", env.Message)

	resp, env = doJSON(t, qr.app, http.MethodGet,
		"/faculty/lectures/"+qr.lectureID+"/quizzes/abc", qr.facultyToken, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Specified quizIndex not found", env.Message)
}

func TestUpdateQuizAllowList(t *testing.T) {
	qr := newQuizRoom(t)
	qr.createQuiz(t, "before", 30)

	resp, env := doJSON(t, qr.app, http.MethodPut,
		"/faculty/lectures/"+qr.lectureID+"/quizzes/0", qr.facultyToken, map[string]any{
			"question": "after",
			"started":  true,
		})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var quiz map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &quiz))
	assert.Equal(t, "after", quiz["question"])
	assert.Equal(t, true, quiz["started"])
}
