package handler

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/finanzas-app/finanzas-backend/internal/domain"
	"github.com/finanzas-app/finanzas-backend/internal/util"
	"github.com/labstack/echo/v4"
)

// now is replaced in tests
var now = time.Now

func parseInt32Param(raw string) (int32, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 32)
	if err != nil {
		return 0, err
	}
	return int32(n), nil
}

// optionalInt32Query parses an integer query parameter; empty means absent.
func optionalInt32Query(c echo.Context, name string) (*int32, *ValidationError) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	n, err := parseInt32Param(raw)
	if err != nil {
		return nil, &ValidationError{Field: name, Message: "Must be an integer"}
	}
	return &n, nil
}

// parseIDList parses "1,2,3". Blank entries are skipped.
func parseIDList(raw string) ([]int32, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	ids := make([]int32, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) == "" {
			continue
		}
		n, err := parseInt32Param(p)
		if err != nil {
			return nil, fmt.Errorf("invalid id %q", p)
		}
		ids = append(ids, n)
	}
	return ids, nil
}

// parseStartDate parses a range start
func parseStartDate(raw string) (time.Time, error) {
	return util.ParseDate(strings.TrimSpace(raw))
}

// parseEndDate parses a range end. A bare calendar date covers its whole day.
func parseEndDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	t, err := util.ParseDate(raw)
	if err != nil {
		return time.Time{}, err
	}
	if util.IsCalendarDate(raw) {
		return util.EndOfDay(t), nil
	}
	return t, nil
}

// parseDateRange reads startDate/endDate, falling back to the last month for
// whichever bound is missing.
func parseDateRange(c echo.Context) (time.Time, time.Time, []ValidationError) {
	start, end := util.DefaultRange(now())
	var errs []ValidationError

	if raw := c.QueryParam("startDate"); raw != "" {
		t, err := parseStartDate(raw)
		if err != nil {
			errs = append(errs, ValidationError{Field: "startDate", Message: "Must be YYYY-MM-DD or RFC3339"})
		} else {
			start = t
		}
	}
	if raw := c.QueryParam("endDate"); raw != "" {
		t, err := parseEndDate(raw)
		if err != nil {
			errs = append(errs, ValidationError{Field: "endDate", Message: "Must be YYYY-MM-DD or RFC3339"})
		} else {
			end = t
		}
	}
	if len(errs) == 0 && start.After(end) {
		errs = append(errs, ValidationError{Field: "startDate", Message: domain.ErrInvalidDateRange.Error()})
	}
	return start, end, errs
}
