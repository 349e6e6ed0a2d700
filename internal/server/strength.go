// ABOUTME: Strength HTTP handlers: nested workout CRUD, exercise type catalog,
// ABOUTME: per-exercise dashboard, and CSV/JSON/YAML import-export.
package server

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harperreed/fittrack/internal/models"
)

func (s *Server) listStrength(c *gin.Context) {
	workouts, err := s.store.ListWorkouts()
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"workouts": workouts})
}

func (s *Server) addStrength(c *gin.Context) {
	w, err := s.workoutFromForm(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := s.store.CreateWorkout(w); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Workout added successfully!", "workout": w})
}

func (s *Server) viewStrength(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	w, err := s.store.GetWorkout(id)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"workout": w})
}

// editStrength replaces the whole workout tree: the stored exercises and
// sets are dropped and the payload is reinserted.
func (s *Server) editStrength(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	w, err := s.workoutFromForm(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	w.ID = id
	if err := s.store.UpdateWorkout(w); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Workout updated successfully!"})
}

func (s *Server) deleteStrength(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := s.store.DeleteWorkout(id); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Workout deleted."})
}

// strengthDashboard returns the exercise picker; the chart itself is fed
// by /api/strength_data/:exercise_id.
func (s *Server) strengthDashboard(c *gin.Context) {
	exercises, err := s.store.ListExercises()
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"exercises": exercises})
}

func (s *Server) strengthData(c *gin.Context) {
	id, err := pathID(c, "exercise_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	series, err := s.store.StrengthData(id)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, series)
}

func (s *Server) exportStrength(c *gin.Context) {
	var (
		data        []byte
		err         error
		contentType string
		filename    string
	)
	switch c.Param("fmt") {
	case "csv":
		data, err = s.store.ExportStrengthCSV()
		contentType, filename = "text/csv", "strength_workouts.csv"
	case "json":
		data, err = s.store.ExportStrengthJSON()
		contentType, filename = "application/json", "strength_workouts.json"
	case "yaml":
		data, err = s.store.ExportStrengthYAML()
		contentType, filename = "application/x-yaml", "strength_workouts.yaml"
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported format"})
		return
	}
	if err != nil {
		s.fail(c, err)
		return
	}
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, contentType, data)
}

// importStrength dispatches on the "fmt" form field. Both formats share
// the duplicate-skipping import path in storage.
func (s *Server) importStrength(c *gin.Context) {
	format := c.PostForm("fmt")
	if format != "csv" && format != "json" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported format"})
		return
	}
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}
	f, err := file.Open()
	if err != nil {
		s.fail(c, err)
		return
	}
	defer f.Close()

	var count int
	if format == "csv" {
		count, err = s.store.ImportStrengthCSV(f)
	} else {
		count, err = s.store.ImportStrengthJSON(f)
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Strength workouts imported successfully!", "imported": count})
}

// workoutFromForm parses the workout header fields plus the nested
// exercises blob posted as a JSON string in "payload".
func (s *Server) workoutFromForm(c *gin.Context) (*models.Workout, error) {
	date := c.PostForm("date")
	if date == "" {
		return nil, errMissing("date")
	}

	w := models.NewWorkout(date)
	w.Time = formString(c, "time")
	w.BodyPart = formString(c, "body_part")
	w.Notes = formString(c, "notes")

	if raw := c.PostForm("payload"); raw != "" {
		var payload models.WorkoutPayload
		if err := json.Unmarshal([]byte(raw), &payload); err != nil {
			return nil, err
		}
		w.Exercises = payload.ToExercises()
	}
	return w, nil
}

// Exercise types

func (s *Server) listExerciseTypes(c *gin.Context) {
	types, err := s.store.ListExerciseTypes()
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"exercise_types": types})
}

func (s *Server) addExerciseType(c *gin.Context) {
	name := c.PostForm("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": errMissing("name").Error()})
		return
	}
	et := &models.ExerciseType{Name: name, BodyPart: formString(c, "body_part")}
	if err := s.store.CreateExerciseType(et); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Exercise type added successfully!", "exercise_type": et})
}

func (s *Server) showExerciseType(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	et, err := s.store.GetExerciseType(id)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"exercise_type": et})
}

func (s *Server) editExerciseType(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	name := c.PostForm("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": errMissing("name").Error()})
		return
	}
	et := &models.ExerciseType{ID: id, Name: name, BodyPart: formString(c, "body_part")}
	if err := s.store.UpdateExerciseType(et); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Exercise type updated successfully!"})
}

func (s *Server) deleteExerciseType(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := s.store.DeleteExerciseType(id); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Exercise type deleted."})
}
