package experience

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/resume-parser/internal/dates"
	"github.com/jonathan/resume-parser/internal/schemas"
	"github.com/jonathan/resume-parser/internal/types"
)

// LoadBank reads an experience bank JSON file, validates it against the
// bank schema and loads it into a recency-sorted Bank.
func LoadBank(path string, svc *dates.Service) (*Bank, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to read file %s", path),
			Cause:   err,
		}
	}
	return ParseBank(content, svc)
}

// ParseBank is LoadBank over in-memory content
func ParseBank(content []byte, svc *dates.Service) (*Bank, error) {
	if err := schemas.ValidateBank(content); err != nil {
		return nil, &LoadError{
			Message: "schema validation failed",
			Cause:   err,
		}
	}

	var raw types.ExperienceBank
	if err := json.Unmarshal(content, &raw); err != nil {
		return nil, &LoadError{
			Message: "failed to unmarshal JSON",
			Cause:   err,
		}
	}

	b := NewBank(svc)
	b.ReplaceAll(&raw)
	return b, nil
}
