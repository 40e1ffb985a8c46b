package validate

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/sdejongh/sizesweep/pkg/models"
)

// MaxSizeLimitMB is the largest accepted scan threshold, in megabytes
const MaxSizeLimitMB = 10000

// ValidateSizeLimit checks a user-supplied threshold in megabytes.
// It must parse as a finite number in (0, MaxSizeLimitMB].
func ValidateSizeLimit(value string) models.ValidationOutcome {
	_, outcome := parseSizeLimit(value)
	return outcome
}

// ValidateSizeLimitMB checks an already numeric threshold
func ValidateSizeLimitMB(limitMB float64) models.ValidationOutcome {
	switch {
	case math.IsNaN(limitMB) || math.IsInf(limitMB, 0):
		return models.Invalid("size limit must be a finite number")
	case limitMB <= 0:
		return models.Invalid("size limit must be greater than 0")
	case limitMB > MaxSizeLimitMB:
		return models.Invalid(fmt.Sprintf("size limit must not exceed %d MB", MaxSizeLimitMB))
	}
	return models.Valid()
}

// ParseSizeLimit validates value and returns it as megabytes.
// Failures are returned as *models.ValidationError.
func ParseSizeLimit(value string) (float64, error) {
	limit, outcome := parseSizeLimit(value)
	if err := outcome.Err("size_limit"); err != nil {
		return 0, err
	}
	return limit, nil
}

func parseSizeLimit(value string) (float64, models.ValidationOutcome) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return 0, models.Invalid("size limit is empty")
	}

	limit, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, models.Invalid(fmt.Sprintf("size limit is not a number: %q", value))
	}

	outcome := ValidateSizeLimitMB(limit)
	if !outcome.Valid {
		return 0, outcome
	}
	return limit, outcome
}
