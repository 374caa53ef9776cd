package controller

import (
	"bytes"
	"eduflow_backend/internal/config"
	"eduflow_backend/internal/model"
	"eduflow_backend/internal/repository"
	"eduflow_backend/internal/service"
	"eduflow_backend/internal/util"
	"eduflow_backend/pkg/database"
	"eduflow_backend/pkg/logger"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type certTestServer struct {
	router      *gin.Engine
	db          *gorm.DB
	users       *repository.UserRepository
	courses     *repository.CourseRepository
	enrollments *repository.EnrollmentRepository
	certificate *service.CertificateService
	enrollment  *service.EnrollmentService
}

func newCertTestServer(t *testing.T) *certTestServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.Server.Mode = "test"
	logger.InitLogger(cfg)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	srv := &certTestServer{
		db:          db,
		users:       repository.NewUserRepository(db),
		courses:     repository.NewCourseRepository(db),
		enrollments: repository.NewEnrollmentRepository(db),
	}
	certs := repository.NewCertificateRepository(db)
	srv.certificate = service.NewCertificateService(certs, srv.enrollments, srv.users, srv.courses, nil)
	srv.enrollment = service.NewEnrollmentService(srv.enrollments, srv.courses)

	controller := NewCertificateController(srv.certificate)

	srv.router = gin.New()
	api := srv.router.Group("/api")
	api.GET("/certificates/verify/:certificateNumber", controller.Verify)
	api.POST("/certificates", srv.authAs(), controller.Issue)
	api.GET("/certificates", srv.authAs(), controller.ListMine)
	return srv
}

// authAs stands in for the JWT middleware: it trusts the X-Test-User header.
func (s *certTestServer) authAs() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("X-Test-User")
		if header == "" {
			util.Unauthorized(c)
			c.Abort()
			return
		}
		user, err := s.users.FindByEmail(header)
		if err != nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}
		c.Set("user", &util.Claims{UserID: user.ID, Role: user.Role, Email: user.Email})
		c.Next()
	}
}

func (s *certTestServer) completeCourse(t *testing.T, email, title string) (*model.User, *model.Course) {
	t.Helper()
	user := &model.User{Name: email, Email: email, Password: "x", Role: model.Student}
	require.NoError(t, s.users.Create(user))

	course := &model.Course{Title: title, Instructor: "Jane Doe", Published: true}
	require.NoError(t, s.courses.Create(course))

	_, err := s.enrollment.Enroll(user.ID, course.ID)
	require.NoError(t, err)
	_, err = s.enrollment.UpdateProgress(user.ID, course.ID, service.ProgressUpdate{Progress: 100})
	require.NoError(t, err)
	return user, course
}

func (s *certTestServer) do(method, path, userEmail string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if userEmail != "" {
		req.Header.Set("X-Test-User", userEmail)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestVerifyEndpoint(t *testing.T) {
	srv := newCertTestServer(t)
	user, course := srv.completeCourse(t, "u1@example.com", "Go Basics")
	cert, _, err := srv.certificate.IssueCertificate(user.ID, course.ID)
	require.NoError(t, err)

	t.Run("known number", func(t *testing.T) {
		w := srv.do(http.MethodGet, "/api/certificates/verify/"+cert.CertificateNumber, "", nil)
		assert.Equal(t, http.StatusOK, w.Code)

		body := decodeResponse(t, w)
		data := body["data"].(map[string]interface{})
		assert.Equal(t, true, data["valid"])
		assert.Equal(t, cert.CertificateNumber, data["certificateNumber"])
		assert.Equal(t, "u1@example.com", data["holderEmail"])
	})

	t.Run("unknown number", func(t *testing.T) {
		w := srv.do(http.MethodGet, "/api/certificates/verify/CERT-NOPE", "", nil)
		assert.Equal(t, http.StatusOK, w.Code)

		body := decodeResponse(t, w)
		data := body["data"].(map[string]interface{})
		assert.Equal(t, false, data["valid"])
		assert.Equal(t, "certificate not found", data["message"])
	})

	t.Run("whitespace number", func(t *testing.T) {
		w := srv.do(http.MethodGet, "/api/certificates/verify/%20%20", "", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestIssueEndpoint(t *testing.T) {
	srv := newCertTestServer(t)
	_, course := srv.completeCourse(t, "u1@example.com", "Go Basics")

	t.Run("unauthenticated", func(t *testing.T) {
		w := srv.do(http.MethodPost, "/api/certificates", "", IssueCertificateRequest{CourseID: course.ID})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	var issuedNumber string
	t.Run("first issue", func(t *testing.T) {
		w := srv.do(http.MethodPost, "/api/certificates", "u1@example.com", IssueCertificateRequest{CourseID: course.ID})
		assert.Equal(t, http.StatusCreated, w.Code)

		body := decodeResponse(t, w)
		data := body["data"].(map[string]interface{})
		issuedNumber = data["certificateNumber"].(string)
		assert.NotEmpty(t, issuedNumber)
	})

	t.Run("repeat issue returns existing", func(t *testing.T) {
		w := srv.do(http.MethodPost, "/api/certificates", "u1@example.com", IssueCertificateRequest{CourseID: course.ID})
		assert.Equal(t, http.StatusConflict, w.Code)

		body := decodeResponse(t, w)
		data := body["data"].(map[string]interface{})
		assert.Equal(t, issuedNumber, data["certificateNumber"])
	})

	t.Run("unknown course", func(t *testing.T) {
		w := srv.do(http.MethodPost, "/api/certificates", "u1@example.com", IssueCertificateRequest{CourseID: 9999})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("incomplete enrollment", func(t *testing.T) {
		halfway := &model.Course{Title: "In Progress", Instructor: "Jane Doe", Published: true}
		require.NoError(t, srv.courses.Create(halfway))

		user, err := srv.users.FindByEmail("u1@example.com")
		require.NoError(t, err)
		_, err = srv.enrollment.Enroll(user.ID, halfway.ID)
		require.NoError(t, err)
		_, err = srv.enrollment.UpdateProgress(user.ID, halfway.ID, service.ProgressUpdate{Progress: 50})
		require.NoError(t, err)

		w := srv.do(http.MethodPost, "/api/certificates", "u1@example.com", IssueCertificateRequest{CourseID: halfway.ID})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestListMineEndpoint(t *testing.T) {
	srv := newCertTestServer(t)
	user, course := srv.completeCourse(t, "u1@example.com", "Go Basics")
	_, _, err := srv.certificate.IssueCertificate(user.ID, course.ID)
	require.NoError(t, err)

	// a second user with no certificates
	other := &model.User{Name: "other", Email: "other@example.com", Password: "x", Role: model.Student}
	require.NoError(t, srv.users.Create(other))

	w := srv.do(http.MethodGet, "/api/certificates", "u1@example.com", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeResponse(t, w)
	list := body["data"].([]interface{})
	assert.Len(t, list, 1)

	w = srv.do(http.MethodGet, "/api/certificates", "other@example.com", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	body = decodeResponse(t, w)
	if body["data"] != nil {
		assert.Empty(t, body["data"])
	}
}
