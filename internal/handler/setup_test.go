package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/waritk/gradtrack-api/internal/handler"
	"github.com/waritk/gradtrack-api/internal/models"
	"github.com/waritk/gradtrack-api/internal/repository"
	"github.com/waritk/gradtrack-api/internal/service"
)

func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Student{}, &models.ThesisProgress{}, &models.CourseEnrollment{}))

	validate := validator.New(validator.WithRequiredStructEnabled())
	logger := zerolog.Nop()

	studentService := service.NewStudentService(repository.NewStudentRepository(db), validate, logger)
	courseService := service.NewCourseService(repository.NewCourseRepository(db), validate, logger)
	thesisService := service.NewThesisService(repository.NewThesisRepository(db), logger)
	statisticsService := service.NewStatisticsService(repository.NewStatisticsRepository(db), logger)

	app := fiber.New()
	api := app.Group("/api")
	handler.NewStudentHandler(studentService, logger).Register(api)
	handler.NewCourseHandler(courseService, logger).Register(api)
	handler.NewThesisHandler(thesisService, logger).Register(api)
	handler.NewStatisticsHandler(statisticsService, logger).Register(api)

	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}
