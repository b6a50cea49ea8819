package property

import (
	"errors"
	"net/http"
	"strconv"

	"estate-voice-api/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Handlers exposes listing search over REST.
// Keep these thin: parse query params, call the service, return JSON.
type Handlers struct {
	Service *Service
}

// Search handles GET /api/properties.
func (h Handlers) Search(c *gin.Context) {
	f := SearchFilter{
		City:   c.Query("city"),
		State:  c.Query("state"),
		Type:   PropertyType(c.Query("type")),
		Status: ListingStatus(c.Query("status")),
		Query:  c.Query("q"),
	}

	var err error
	if f.MinPrice, err = queryInt64(c, "min_price"); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"success": false, "error": "min_price must be an integer"})
		return
	}
	if f.MaxPrice, err = queryInt64(c, "max_price"); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"success": false, "error": "max_price must be an integer"})
		return
	}
	if f.MinBedrooms, err = queryInt(c, "bedrooms"); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"success": false, "error": "bedrooms must be an integer"})
		return
	}
	if f.Limit, err = queryInt(c, "limit"); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"success": false, "error": "limit must be an integer"})
		return
	}
	if f.Offset, err = queryInt(c, "offset"); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"success": false, "error": "offset must be an integer"})
		return
	}

	results, err := h.Service.Search(c.Request.Context(), f)
	if err != nil {
		if errors.Is(err, ErrInvalidFilter) {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}
		logger.FromGin(c).Error("property search failed", "err", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"success": false, "error": "search failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": results, "count": len(results)})
}

// Get handles GET /api/properties/:id.
func (h Handlers) Get(c *gin.Context) {
	p, err := h.Service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"success": false, "error": "property not found"})
		case errors.Is(err, ErrInvalidFilter):
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		default:
			logger.FromGin(c).Error("property lookup failed", "err", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"success": false, "error": "lookup failed"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": p})
}

func queryInt(c *gin.Context, key string) (int, error) {
	v := c.Query(key)
	if v == "" {
		return 0, nil
	}
	return strconv.Atoi(v)
}

func queryInt64(c *gin.Context, key string) (int64, error) {
	v := c.Query(key)
	if v == "" {
		return 0, nil
	}
	return strconv.ParseInt(v, 10, 64)
}
