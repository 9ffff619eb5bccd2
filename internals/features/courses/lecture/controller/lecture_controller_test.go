// file: internals/features/courses/lecture/controller/lecture_controller_test.go
package controller_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
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

// classroom wires a faculty with a course and an enrolled student.
type classroom struct {
	app          *fiber.App
	facultyToken string
	studentToken string
	courseID     string
}

func newClassroom(t *testing.T) *classroom {
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

	return &classroom{
		app:          app,
		facultyToken: facultyToken,
		studentToken: studentToken,
		courseID:     course["courseId"].(string),
	}
}

func (cl *classroom) createLecture(t *testing.T) map[string]any {
	t.Helper()

	resp, env := doJSON(t, cl.app, http.MethodPost,
		"/faculty/courses/"+cl.courseID+"/lectures", cl.facultyToken, map[string]any{
			"date":                          1546300800,
			"participationRewardPercentage": 50,
			"description":                   "intro",
		})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var lecture map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &lecture))
	return lecture
}

func (cl *classroom) setLive(t *testing.T, lectureID string, live bool) map[string]any {
	t.Helper()

	resp, env := doJSON(t, cl.app, http.MethodPut,
		"/faculty/lectures/"+lectureID, cl.facultyToken, map[string]any{"live": live})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var lecture map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &lecture))
	return lecture
}

func TestCreateLectureInitialState(t *testing.T) {
	cl := newClassroom(t)

	lecture := cl.createLecture(t)
	assert.Equal(t, cl.courseID, lecture["courseId"])
	assert.Equal(t, false, lecture["live"])
	assert.Equal(t, false, lecture["hasLived"])
	assert.Equal(t, float64(0), lecture["attendanceNumber"])
}

func TestCreateLectureOnMissingCourse(t *testing.T) {
	cl := newClassroom(t)

	resp, env := doJSON(t, cl.app, http.MethodPost,
		"/faculty/courses/00000000-0000-0000-0000-000000000000/lectures", cl.facultyToken,
		map[string]any{
			"date":                          1546300800,
			"participationRewardPercentage": 50,
		})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Specified course not found", env.Message)
}

func TestCreateLectureMissingField(t *testing.T) {
	cl := newClassroom(t)

	resp, env := doJSON(t, cl.app, http.MethodPost,
		"/faculty/courses/"+cl.courseID+"/lectures", cl.facultyToken, map[string]any{
			"description": "no date",
		})
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "date is not provided", env.Message)
}

func TestHasLivedLatch(t *testing.T) {
	cl := newClassroom(t)
	lecture := cl.createLecture(t)
	lectureID := lecture["lectureId"].(string)

	live := cl.setLive(t, lectureID, true)
	assert.Equal(t, true, live["live"])
	assert.Equal(t, true, live["hasLived"])

	// turning live off never resets hasLived
	off := cl.setLive(t, lectureID, false)
	assert.Equal(t, false, off["live"])
	assert.Equal(t, true, off["hasLived"])
}

func TestStudentListFiltersUnlivedLectures(t *testing.T) {
	cl := newClassroom(t)
	hidden := cl.createLecture(t)
	shown := cl.createLecture(t)
	cl.setLive(t, shown["lectureId"].(string), true)

	resp, env := doJSON(t, cl.app, http.MethodGet,
		"/student/courses/"+cl.courseID+"/lectures", cl.studentToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var list []map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &list))
	require.Len(t, list, 1)
	assert.Equal(t, shown["lectureId"], list[0]["lectureId"])
	assert.NotEqual(t, hidden["lectureId"], list[0]["lectureId"])

	// the student projection hides the live flags
	_, hasLive := list[0]["live"]
	_, hasHasLived := list[0]["hasLived"]
	assert.False(t, hasLive)
	assert.False(t, hasHasLived)
}

func TestAttendRequiresLiveNow(t *testing.T) {
	cl := newClassroom(t)
	lecture := cl.createLecture(t)
	lectureID := lecture["lectureId"].(string)

	// has lived, but not live anymore
	cl.setLive(t, lectureID, true)
	cl.setLive(t, lectureID, false)

	resp, env := doJSON(t, cl.app, http.MethodPost,
		"/student/lectures/"+lectureID, cl.studentToken, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Lecture not found", env.Message)

	// while it stays visible in the student's lecture list
	resp, env = doJSON(t, cl.app, http.MethodGet,
		"/student/courses/"+cl.courseID+"/lectures", cl.studentToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var list []map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &list))
	assert.Len(t, list, 1)
}

func TestAttendanceIsIdempotent(t *testing.T) {
	cl := newClassroom(t)
	lecture := cl.createLecture(t)
	lectureID := lecture["lectureId"].(string)
	cl.setLive(t, lectureID, true)

	for i := 0; i < 2; i++ {
		resp, env := doJSON(t, cl.app, http.MethodPost,
			"/student/lectures/"+lectureID, cl.studentToken, nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var attended map[string]any
		require.NoError(t, json.Unmarshal(env.Data, &attended))
		assert.Equal(t, true, attended["attendance"])
	}

	resp, env := doJSON(t, cl.app, http.MethodGet,
		"/faculty/lectures/"+lectureID, cl.facultyToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var facultyView map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &facultyView))
	assert.Equal(t, float64(1), facultyView["attendanceNumber"])
}

func TestDeleteLecturePullsItFromCourse(t *testing.T) {
	cl := newClassroom(t)
	lecture := cl.createLecture(t)
	lectureID := lecture["lectureId"].(string)

	resp, _ := doJSON(t, cl.app, http.MethodDelete,
		"/faculty/lectures/"+lectureID, cl.facultyToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, env := doJSON(t, cl.app, http.MethodGet,
		"/faculty/courses/"+cl.courseID, cl.facultyToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var course map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &course))
	assert.Equal(t, float64(0), course["numberOfLectures"])

	resp, env = doJSON(t, cl.app, http.MethodGet,
		"/faculty/lectures/"+lectureID, cl.facultyToken, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Specified lecture is not found", env.Message)
}
