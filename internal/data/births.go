package data

import (
	"encoding/json"
	"fmt"
	"os"

	"vedic-chart/internal/model"
)

// LoadBirthInputs reads a JSON array of birth inputs for batch builds.
func LoadBirthInputs(path string) ([]model.BirthInput, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var births []model.BirthInput
	if err := json.Unmarshal(raw, &births); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(births) == 0 {
		return nil, fmt.Errorf("%s: no births", path)
	}
	return births, nil
}
