package config

import "fmt"

// ValidationError points at one invalid profile field.
type ValidationError struct {
	Path    string
	Message string
}

// Error returns the error message.
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// Validate applies the semantic rules the schema cannot express. It
// assumes defaults have been applied.
func Validate(p *Profile) []ValidationError {
	var errs []ValidationError

	if p.Samples <= 0 {
		errs = append(errs, ValidationError{
			Path:    "samples",
			Message: fmt.Sprintf("must be positive, got %d", p.Samples),
		})
	}
	if p.Warmup < 0 {
		errs = append(errs, ValidationError{
			Path:    "warmup",
			Message: fmt.Sprintf("must not be negative, got %d", p.Warmup),
		})
	}
	if p.Unit != "ms" && p.Unit != "fps" {
		errs = append(errs, ValidationError{
			Path:    "unit",
			Message: fmt.Sprintf("must be \"ms\" or \"fps\", got %q", p.Unit),
		})
	}

	if len(p.Zones) == 0 {
		errs = append(errs, ValidationError{
			Path:    "zones",
			Message: "at least one zone is required",
		})
	}

	seen := make(map[string]bool, len(p.Zones))
	for i, zone := range p.Zones {
		if zone.Name == "" {
			errs = append(errs, ValidationError{
				Path:    fmt.Sprintf("zones[%d].name", i),
				Message: "name is required",
			})
			continue
		}
		if seen[zone.Name] {
			errs = append(errs, ValidationError{
				Path:    fmt.Sprintf("zones[%d].name", i),
				Message: fmt.Sprintf("duplicate zone name %q", zone.Name),
			})
		}
		seen[zone.Name] = true

		if zone.Work.Duration() <= 0 {
			errs = append(errs, ValidationError{
				Path:    fmt.Sprintf("zones[%d].work", i),
				Message: "work must be a positive duration",
			})
		}
	}

	return errs
}
