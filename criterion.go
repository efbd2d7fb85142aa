package panelmatch

import "encoding/json"

// Criterion is a selection requirement extracted from a tender document or
// authored by hand. Criteria with Selected=false are ignored by the engine.
type Criterion struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Selected    bool   `json:"selected"`

	// SelectedDepartments lists explicit department names or codes for a
	// hand-authored geographic filter. When set, the geographic scorer
	// matches against them directly instead of inferring regions from the
	// criterion text.
	SelectedDepartments []string `json:"selectedDepartments,omitempty"`
}

// UnmarshalJSON decodes a criterion with Selected defaulting to true when
// the field is omitted, matching the supplier contract.
func (c *Criterion) UnmarshalJSON(data []byte) error {
	type alias Criterion
	aux := alias{Selected: true}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*c = Criterion(aux)
	return nil
}
