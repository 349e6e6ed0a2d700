// ABOUTME: HTTP server wiring: gin engine, middleware, and route groups.
// ABOUTME: Routes are grouped by domain prefix: /cardio /food /health /strength.
package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/harperreed/fittrack/internal/storage"
)

// Server holds the handler dependencies. The store is injected per the
// repository contract; there is no ambient database handle.
type Server struct {
	store storage.Repository
	log   logrus.FieldLogger
}

// New creates a Server over the given store.
func New(store storage.Repository, log logrus.FieldLogger) *Server {
	return &Server{store: store, log: log}
}

// Router builds the gin engine with all domain routes registered.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger())

	cardio := r.Group("/cardio")
	{
		cardio.GET("", s.listCardio)
		cardio.GET("/add", s.newCardio)
		cardio.POST("/add", s.addCardio)
		cardio.GET("/edit/:id", s.showCardio)
		cardio.POST("/edit/:id", s.editCardio)
		cardio.GET("/delete/:id", s.deleteCardio)
		cardio.GET("/dashboard", s.cardioDashboard)
		cardio.GET("/export_csv", s.exportCardioCSV)
		cardio.GET("/export_json", s.exportCardioJSON)
		cardio.POST("/import_csv", s.importCardioCSV)

		cardio.GET("/activity-types", s.listActivityTypes)
		cardio.POST("/activity-types/add", s.addActivityType)
		cardio.GET("/activity-types/edit/:id", s.showActivityType)
		cardio.POST("/activity-types/edit/:id", s.editActivityType)
		cardio.GET("/activity-types/delete/:id", s.deleteActivityType)
	}

	food := r.Group("/food")
	{
		food.GET("", s.listFood)
		food.GET("/add", s.newFood)
		food.POST("/add", s.addFood)
		food.GET("/edit/:id", s.showFood)
		food.POST("/edit/:id", s.editFood)
		food.GET("/delete/:id", s.deleteFood)
		food.GET("/export_csv", s.exportFoodCSV)
		food.GET("/export_json", s.exportFoodJSON)
		food.POST("/import_csv", s.importFoodCSV)

		food.GET("/meal_types", s.listMealTypes)
		food.POST("/meal_types/add", s.addMealType)
		food.GET("/meal_types/edit/:id", s.showMealType)
		food.POST("/meal_types/edit/:id", s.editMealType)
		food.GET("/meal_types/delete/:id", s.deleteMealType)
	}

	health := r.Group("/health")
	{
		health.GET("", s.listHealth)
		health.POST("/add", s.addHealth)
		health.GET("/edit/:id", s.showHealth)
		health.POST("/edit/:id", s.editHealth)
		health.GET("/delete/:id", s.deleteHealth)
		health.GET("/dashboard", s.healthDashboard)
		health.GET("/export", s.exportHealthCSV)
		health.GET("/export_json", s.exportHealthJSON)
		health.POST("/import", s.importHealthCSV)
	}

	strength := r.Group("/strength")
	{
		strength.GET("", s.listStrength)
		strength.POST("/add", s.addStrength)
		strength.GET("/view/:id", s.viewStrength)
		strength.POST("/edit/:id", s.editStrength)
		strength.GET("/delete/:id", s.deleteStrength)
		strength.GET("/dashboard", s.strengthDashboard)
		strength.GET("/export/:fmt", s.exportStrength)
		strength.POST("/import", s.importStrength)

		strength.GET("/exercise_types", s.listExerciseTypes)
		strength.POST("/exercise_types/add", s.addExerciseType)
		strength.GET("/exercise_types/edit/:id", s.showExerciseType)
		strength.POST("/exercise_types/edit/:id", s.editExerciseType)
		strength.GET("/exercise_types/delete/:id", s.deleteExerciseType)
	}

	r.GET("/api/strength_data/:exercise_id", s.strengthData)

	return r
}

// requestLogger tags each request with a uuid and logs an access line.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.New().String()
		c.Set("request_id", requestID)
		c.Next()
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
		}).Info("request")
	}
}

// fail maps a storage error to a response. Duplicate catalog entries are a
// warning, everything else is fatal for this request only.
func (s *Server) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, storage.ErrAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"warning": err.Error()})
	case errors.Is(err, storage.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		s.log.WithError(err).Error("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
