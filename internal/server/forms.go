// ABOUTME: Form parsing helpers shared by the domain handlers.
// ABOUTME: Empty optional fields become nil and round-trip as SQL NULL.
package server

import (
	"fmt"
	"math"
	"strconv"

	"github.com/gin-gonic/gin"
)

func pathID(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", name, c.Param(name))
	}
	return id, nil
}

func formString(c *gin.Context, name string) *string {
	v := c.PostForm(name)
	if v == "" {
		return nil
	}
	return &v
}

func formFloat(c *gin.Context, name string) (*float64, error) {
	v := c.PostForm(name)
	if v == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %q", name, v)
	}
	return &f, nil
}

func formInt(c *gin.Context, name string) (*int, error) {
	v := c.PostForm(name)
	if v == "" {
		return nil, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %q", name, v)
	}
	return &i, nil
}

func formInt64(c *gin.Context, name string) (int64, error) {
	v := c.PostForm(name)
	if v == "" {
		return 0, fmt.Errorf("missing %s", name)
	}
	i, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", name, v)
	}
	return i, nil
}

func errMissing(name string) error {
	return fmt.Errorf("missing required field %q", name)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
