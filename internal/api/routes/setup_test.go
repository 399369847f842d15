package routes_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/linskybing/campus-helpdesk/internal/api/middleware"
	"github.com/linskybing/campus-helpdesk/internal/api/routes"
	"github.com/linskybing/campus-helpdesk/internal/application"
	"github.com/linskybing/campus-helpdesk/internal/cache"
	"github.com/linskybing/campus-helpdesk/internal/domain/campus"
	"github.com/linskybing/campus-helpdesk/internal/domain/category"
	"github.com/linskybing/campus-helpdesk/internal/domain/student"
	"github.com/linskybing/campus-helpdesk/internal/domain/user"
	"github.com/linskybing/campus-helpdesk/internal/repository"
	"github.com/linskybing/campus-helpdesk/internal/testutils"
	"github.com/linskybing/campus-helpdesk/pkg/types"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const (
	testIssuer     = "https://idp.test"
	testHMACSecret = "router-test-secret"
)

type testServer struct {
	t        *testing.T
	router   *gin.Engine
	db       *gorm.DB
	repos    *repository.Repos
	services *application.Services
}

func setupRouter(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testutils.NewSQLiteDB(t)
	repos := repository.NewRepositories(db)
	sqlDB, err := db.DB()
	require.NoError(t, err)

	svc := application.New(repos, application.Deps{
		Cache:        cache.NewMemory(),
		DB:           sqlDB,
		EmailDomain:  "college.edu",
		HierarchyTTL: time.Minute,
		StatusTTL:    time.Minute,
		RoleTTL:      time.Minute,
	})
	verifier, err := middleware.NewVerifier(testIssuer, testHMACSecret, "")
	require.NoError(t, err)

	r := gin.New()
	r.Use(middleware.LoggingMiddleware())
	routes.RegisterRoutes(r, repos, svc, verifier)

	return &testServer{t: t, router: r, db: db, repos: repos, services: svc}
}

func token(t *testing.T, subject string) string {
	t.Helper()
	claims := types.Claims{
		Email: subject + "@college.edu",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    testIssuer,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testHMACSecret))
	require.NoError(t, err)
	return signed
}

// do sends a JSON request as subject; an empty subject sends no token.
func (s *testServer) do(method, path, subject string, body any) *httptest.ResponseRecorder {
	s.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(s.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if subject != "" {
		req.Header.Set("Authorization", "Bearer "+token(s.t, subject))
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *testServer) user(subject string, role user.Role) user.User {
	s.t.Helper()
	u := user.User{ExternalID: subject, FullName: subject, Email: subject + "@college.edu", Role: role, Active: true}
	require.NoError(s.t, s.repos.User.CreateUser(&u))
	return u
}

// student creates a student user with a complete profile in a fresh hostel.
func (s *testServer) student(subject string) (user.User, student.Student) {
	s.t.Helper()
	u := s.user(subject, user.RoleStudent)
	hostel := campus.Unit{Kind: campus.KindHostel, Name: "Hostel " + subject, Active: true}
	require.NoError(s.t, s.repos.Campus.CreateUnit(&hostel))
	st := student.Student{UserID: u.ID, RollNo: "R-" + subject, RoomNumber: "101", HostelID: &hostel.ID, Active: true}
	require.NoError(s.t, s.repos.Student.CreateStudent(&st))
	return u, st
}

// category creates an active category with one subcategory that has a
// required text field "issue".
func (s *testServer) category() (category.Category, category.Subcategory) {
	s.t.Helper()
	c := category.Category{Name: "Electrical", Slug: "electrical", Active: true, SLAHours: 48}
	require.NoError(s.t, s.repos.Category.CreateCategory(&c))
	sc := category.Subcategory{CategoryID: c.ID, Name: "Fan", Slug: "fan", Active: true}
	require.NoError(s.t, s.repos.Category.CreateSubcategory(&sc))
	f := category.Field{SubcategoryID: sc.ID, Name: "Issue", Slug: "issue", FieldType: category.TypeText, Required: true, Active: true}
	require.NoError(s.t, s.repos.Category.CreateField(&f))
	return c, sc
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func jsonUnmarshal(raw []byte, v any) error {
	return json.Unmarshal(raw, v)
}
