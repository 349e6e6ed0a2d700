// ABOUTME: Cardio HTTP handlers: workout CRUD, activity types, dashboard,
// ABOUTME: and CSV/JSON import-export.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harperreed/fittrack/internal/models"
)

func (s *Server) listCardio(c *gin.Context) {
	workouts, err := s.store.ListCardioWorkouts()
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"workouts": workouts})
}

// newCardio supplies the activity type catalog for the add form.
func (s *Server) newCardio(c *gin.Context) {
	types, err := s.store.ListActivityTypes()
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"activity_types": types})
}

func (s *Server) addCardio(c *gin.Context) {
	w, err := s.cardioFromForm(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := s.store.CreateCardioWorkout(w); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Workout added successfully!", "workout": w})
}

func (s *Server) showCardio(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	w, err := s.store.GetCardioWorkout(id)
	if err != nil {
		s.fail(c, err)
		return
	}
	types, err := s.store.ListActivityTypes()
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"workout": w, "activity_types": types})
}

// editCardio is a full-record replace; there is no partial patch.
func (s *Server) editCardio(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	w, err := s.cardioFromForm(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	w.ID = id
	if err := s.store.UpdateCardioWorkout(w); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Workout updated successfully!"})
}

func (s *Server) deleteCardio(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := s.store.DeleteCardioWorkout(id); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Workout deleted."})
}

// cardioDashboard shapes the weekly aggregation into chart-ready arrays.
func (s *Server) cardioDashboard(c *gin.Context) {
	data, err := s.store.CardioDashboard()
	if err != nil {
		s.fail(c, err)
		return
	}

	weeks := make([]string, 0, len(data))
	distances := make([]float64, 0, len(data))
	calories := make([]int, 0, len(data))
	paceDecimal := make([]*float64, 0, len(data))
	for _, row := range data {
		weeks = append(weeks, row.Week)
		distances = append(distances, round2(row.TotalDistance))
		calories = append(calories, row.TotalCalories)
		if row.AvgPaceMinutes != nil {
			p := round2(*row.AvgPaceMinutes)
			paceDecimal = append(paceDecimal, &p)
		} else {
			paceDecimal = append(paceDecimal, nil)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"weeks":        weeks,
		"distances":    distances,
		"calories":     calories,
		"pace_decimal": paceDecimal,
	})
}

func (s *Server) exportCardioCSV(c *gin.Context) {
	data, err := s.store.ExportCardioCSV()
	if err != nil {
		s.fail(c, err)
		return
	}
	c.Header("Content-Disposition", "attachment; filename=cardio_workouts.csv")
	c.Data(http.StatusOK, "text/csv", data)
}

func (s *Server) exportCardioJSON(c *gin.Context) {
	data, err := s.store.ExportCardioJSON()
	if err != nil {
		s.fail(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json", data)
}

func (s *Server) importCardioCSV(c *gin.Context) {
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

	count, err := s.store.ImportCardioCSV(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cardio workouts imported successfully!", "imported": count})
}

func (s *Server) cardioFromForm(c *gin.Context) (*models.CardioWorkout, error) {
	activityTypeID, err := formInt64(c, "activity_type_id")
	if err != nil {
		return nil, err
	}
	date := c.PostForm("date")
	if date == "" {
		return nil, errMissing("date")
	}

	distance, err := formFloat(c, "distance_miles")
	if err != nil {
		return nil, err
	}
	duration, err := formFloat(c, "duration_minutes")
	if err != nil {
		return nil, err
	}
	heartRate, err := formInt(c, "avg_heart_rate")
	if err != nil {
		return nil, err
	}
	calories, err := formInt(c, "calories_burned")
	if err != nil {
		return nil, err
	}
	weight, err := formFloat(c, "weight_lbs")
	if err != nil {
		return nil, err
	}

	w := models.NewCardioWorkout(date, activityTypeID)
	w.Time = formString(c, "time")
	w.DistanceMiles = distance
	w.DurationMinutes = duration
	w.AvgHeartRate = heartRate
	w.CaloriesBurned = calories
	w.WeightLbs = weight
	w.Notes = formString(c, "notes")
	return w, nil
}

// Activity types

func (s *Server) listActivityTypes(c *gin.Context) {
	types, err := s.store.ListActivityTypes()
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"activity_types": types})
}

func (s *Server) addActivityType(c *gin.Context) {
	name := c.PostForm("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": errMissing("name").Error()})
		return
	}
	at := &models.ActivityType{Name: name, Description: formString(c, "description")}
	if err := s.store.CreateActivityType(at); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Activity type added successfully!", "activity_type": at})
}

func (s *Server) showActivityType(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	at, err := s.store.GetActivityType(id)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"activity_type": at})
}

func (s *Server) editActivityType(c *gin.Context) {
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
	at := &models.ActivityType{ID: id, Name: name, Description: formString(c, "description")}
	if err := s.store.UpdateActivityType(at); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Activity type updated successfully!"})
}

func (s *Server) deleteActivityType(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := s.store.DeleteActivityType(id); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Activity type deleted."})
}
