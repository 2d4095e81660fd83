// Package handler contains the HTTP handlers for the API.
package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"storeradar/internal/delivery/api/response"
	"storeradar/internal/domain/geo"

	"github.com/labstack/echo/v4"
	"github.com/paulmach/orb"
)

const isoDateLayout = "2006-01-02"

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

func unauthorized(c echo.Context) error {
	return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
}

func pathInt64(c echo.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}

	return id, true
}

// queryInt64 parses an optional positive integer query parameter.
func queryInt64(c echo.Context, name string) (*int64, bool) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return nil, true
	}

	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v <= 0 {
		return nil, false
	}

	return &v, true
}

func queryString(c echo.Context, name string) *string {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return nil
	}

	return &raw
}

// queryPoint reads the lat and lng query parameters. present is false when both are absent.
func queryPoint(c echo.Context) (point orb.Point, present, ok bool) {
	rawLat, rawLng := c.QueryParam("lat"), c.QueryParam("lng")
	if rawLat == "" && rawLng == "" {
		return orb.Point{}, false, true
	}

	lat, err := strconv.ParseFloat(rawLat, 64)
	if err != nil {
		return orb.Point{}, true, false
	}
	lng, err := strconv.ParseFloat(rawLng, 64)
	if err != nil {
		return orb.Point{}, true, false
	}

	point = orb.Point{lng, lat}

	return point, true, geo.Valid(point)
}

// optionalPoint builds a point from an optional lat/lng pair; both must be set.
func optionalPoint(lat, lng *float64) (*orb.Point, bool) {
	if lat == nil && lng == nil {
		return nil, true
	}
	if lat == nil || lng == nil {
		return nil, false
	}

	p := orb.Point{*lng, *lat}

	return &p, geo.Valid(p)
}

func parseISODate(raw string) (time.Time, error) {
	return time.Parse(isoDateLayout, raw)
}
