// ABOUTME: Health HTTP handlers: vitals CRUD, trend dashboard,
// ABOUTME: and CSV/JSON export plus CSV import.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harperreed/fittrack/internal/models"
)

func (s *Server) listHealth(c *gin.Context) {
	records, err := s.store.ListHealthRecords()
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"records": records})
}

func (s *Server) addHealth(c *gin.Context) {
	r, err := s.healthFromForm(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := s.store.CreateHealthRecord(r); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Health record added successfully!", "record": r})
}

func (s *Server) showHealth(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	r, err := s.store.GetHealthRecord(id)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"record": r})
}

func (s *Server) editHealth(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	r, err := s.healthFromForm(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	r.ID = id
	if err := s.store.UpdateHealthRecord(r); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Health record updated successfully!"})
}

func (s *Server) deleteHealth(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := s.store.DeleteHealthRecord(id); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Health record deleted."})
}

// healthDashboard returns the date-ordered trend series. Slices are
// index-aligned so the chart can plot sparse measurements.
func (s *Server) healthDashboard(c *gin.Context) {
	series, err := s.store.HealthDashboard()
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, series)
}

func (s *Server) exportHealthCSV(c *gin.Context) {
	data, err := s.store.ExportHealthCSV()
	if err != nil {
		s.fail(c, err)
		return
	}
	c.Header("Content-Disposition", "attachment; filename=health_log.csv")
	c.Data(http.StatusOK, "text/csv", data)
}

func (s *Server) exportHealthJSON(c *gin.Context) {
	data, err := s.store.ExportHealthJSON()
	if err != nil {
		s.fail(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json", data)
}

func (s *Server) importHealthCSV(c *gin.Context) {
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

	count, err := s.store.ImportHealthCSV(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Health log imported successfully!", "imported": count})
}

// healthFromForm parses a vitals form. BMI is never taken from the client;
// it is derived from weight here, or left nil when weight is absent.
func (s *Server) healthFromForm(c *gin.Context) (*models.HealthRecord, error) {
	date := c.PostForm("date")
	if date == "" {
		return nil, errMissing("date")
	}
	systolic, err := formInt(c, "systolic")
	if err != nil {
		return nil, err
	}
	diastolic, err := formInt(c, "diastolic")
	if err != nil {
		return nil, err
	}
	bpm, err := formInt(c, "bpm")
	if err != nil {
		return nil, err
	}
	weight, err := formFloat(c, "weight")
	if err != nil {
		return nil, err
	}

	r := models.NewHealthRecord(date)
	r.Time = formString(c, "time")
	r.Systolic = systolic
	r.Diastolic = diastolic
	r.BPM = bpm
	if weight != nil {
		r.WithWeight(*weight)
	}
	return r, nil
}
