package artifact

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/proximity-backend/internal/config"
	"github.com/heartmarshall/proximity-backend/internal/domain"
	"github.com/heartmarshall/proximity-backend/pkg/geo"
)

var (
	disallowedContent = []*regexp.Regexp{
		regexp.MustCompile(`(?i)https?://`),
		regexp.MustCompile(`(?i)www\.`),
		regexp.MustCompile(`\b\d{3}[- .]?\d{3}[- .]?\d{4}\b`),
		regexp.MustCompile(`(?i)[A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,}`),
	}
	whitespaceRun = regexp.MustCompile(`\s+`)
)

// CreateInput holds the parameters for posting an artifact. A zero RadiusM
// uses the configured default.
type CreateInput struct {
	Type     domain.ArtifactType
	Content  string
	Location geo.Point
	RadiusM  int
}

// Validate checks all fields against cfg and collects all errors. On
// success it returns the sanitised content.
func (i CreateInput) Validate(cfg config.ArtifactConfig) (string, error) {
	var errs []domain.FieldError

	if !i.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "invalid value"})
	}
	if err := i.Location.Validate(); err != nil {
		errs = append(errs, domain.FieldError{Field: "location", Message: err.Error()})
	}
	if i.RadiusM != 0 && (i.RadiusM < cfg.MinRadiusM || i.RadiusM > cfg.MaxRadiusM) {
		errs = append(errs, domain.FieldError{
			Field:   "radius_m",
			Message: fmt.Sprintf("must be between %d and %d", cfg.MinRadiusM, cfg.MaxRadiusM),
		})
	}

	content, msg := sanitizeContent(i.Content, cfg.MaxContentLength)
	if msg != "" {
		errs = append(errs, domain.FieldError{Field: "content", Message: msg})
	}

	if len(errs) > 0 {
		return "", &domain.ValidationError{Errors: errs}
	}
	return content, nil
}

// sanitizeContent rejects contact details and links, then trims and
// collapses whitespace. A non-empty message means the content is rejected.
func sanitizeContent(raw string, maxLen int) (string, string) {
	for _, re := range disallowedContent {
		if re.MatchString(raw) {
			return "", "contains disallowed contact or link information"
		}
	}

	clean := strings.TrimSpace(whitespaceRun.ReplaceAllString(raw, " "))
	n := utf8.RuneCountInString(clean)
	if n < 1 {
		return "", "required"
	}
	if n > maxLen {
		return "", fmt.Sprintf("max %d characters", maxLen)
	}
	return clean, ""
}

// QueryInput describes a radius search around Center. A nil Type matches
// every type.
type QueryInput struct {
	Center  geo.Point
	RadiusM int
	Type    *domain.ArtifactType
}

// Validate checks all fields and collects all errors.
func (i QueryInput) Validate(cfg config.ArtifactConfig) error {
	var errs []domain.FieldError

	if err := i.Center.Validate(); err != nil {
		errs = append(errs, domain.FieldError{Field: "center", Message: err.Error()})
	}
	if i.RadiusM <= 0 || i.RadiusM > cfg.MaxRadiusM {
		errs = append(errs, domain.FieldError{
			Field:   "radius_m",
			Message: fmt.Sprintf("must be between 1 and %d", cfg.MaxRadiusM),
		})
	}
	if i.Type != nil && !i.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "invalid value"})
	}

	return domain.ValidationErrorFrom(errs)
}
