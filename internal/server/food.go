// ABOUTME: Food HTTP handlers: food log CRUD, meal type catalog,
// ABOUTME: and CSV/JSON import-export.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harperreed/fittrack/internal/models"
)

func (s *Server) listFood(c *gin.Context) {
	entries, err := s.store.ListFoodEntries()
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"foods": entries})
}

// newFood supplies the meal type catalog for the add form.
func (s *Server) newFood(c *gin.Context) {
	types, err := s.store.ListMealTypes()
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"meal_types": types})
}

func (s *Server) addFood(c *gin.Context) {
	e, err := s.foodFromForm(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := s.store.CreateFoodEntry(e); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Food entry added!", "food": e})
}

func (s *Server) showFood(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	e, err := s.store.GetFoodEntry(id)
	if err != nil {
		s.fail(c, err)
		return
	}
	types, err := s.store.ListMealTypes()
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"food": e, "meal_types": types})
}

func (s *Server) editFood(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	e, err := s.foodFromForm(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	e.ID = id
	if err := s.store.UpdateFoodEntry(e); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Food entry updated!"})
}

func (s *Server) deleteFood(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := s.store.DeleteFoodEntry(id); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Food entry deleted!"})
}

func (s *Server) exportFoodCSV(c *gin.Context) {
	data, err := s.store.ExportFoodCSV()
	if err != nil {
		s.fail(c, err)
		return
	}
	c.Header("Content-Disposition", "attachment; filename=food_log.csv")
	c.Data(http.StatusOK, "text/csv", data)
}

func (s *Server) exportFoodJSON(c *gin.Context) {
	data, err := s.store.ExportFoodJSON()
	if err != nil {
		s.fail(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json", data)
}

func (s *Server) importFoodCSV(c *gin.Context) {
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

	count, err := s.store.ImportFoodCSV(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Food log imported successfully!", "imported": count})
}

func (s *Server) foodFromForm(c *gin.Context) (*models.FoodEntry, error) {
	date := c.PostForm("date")
	if date == "" {
		return nil, errMissing("date")
	}
	mealTypeID, err := formInt64(c, "meal_type_id")
	if err != nil {
		return nil, err
	}
	foodItem := c.PostForm("food_item")
	if foodItem == "" {
		return nil, errMissing("food_item")
	}
	calories, err := formInt(c, "calories")
	if err != nil {
		return nil, err
	}

	e := models.NewFoodEntry(date, mealTypeID, foodItem)
	e.Time = formString(c, "time")
	e.Quantity = formString(c, "quantity")
	e.Calories = calories
	e.Notes = formString(c, "notes")
	return e, nil
}

// Meal types

func (s *Server) listMealTypes(c *gin.Context) {
	types, err := s.store.ListMealTypes()
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"meal_types": types})
}

func (s *Server) addMealType(c *gin.Context) {
	name := c.PostForm("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": errMissing("name").Error()})
		return
	}
	mt := &models.MealType{Name: name}
	if err := s.store.CreateMealType(mt); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Meal type added successfully!", "meal_type": mt})
}

func (s *Server) showMealType(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	mt, err := s.store.GetMealType(id)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"meal_type": mt})
}

func (s *Server) editMealType(c *gin.Context) {
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
	mt := &models.MealType{ID: id, Name: name}
	if err := s.store.UpdateMealType(mt); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Meal type updated!"})
}

func (s *Server) deleteMealType(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := s.store.DeleteMealType(id); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Meal type deleted!"})
}
