package dialog

// Completeness is the gate verdict over one context snapshot.
type Completeness struct {
	HasBasicInfo         bool     `json:"has_basic_info"`
	HasSymptoms          bool     `json:"has_symptoms"`
	HasDetailedSymptoms  bool     `json:"has_detailed_symptoms"`
	MissingFields        []string `json:"missing_fields"`
	ReadyForPrescription bool     `json:"ready_for_prescription"`
}

// AssessCompleteness decides whether enough is known to prescribe:
// a name, an age, at least one symptom, and at least one symptom with a
// non-empty modifier. MissingFields names each absent item.
func (c *Context) AssessCompleteness() Completeness {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var out Completeness

	hasName := c.UserInfo.Name != ""
	hasAge := c.UserInfo.Age > 0
	out.HasBasicInfo = hasName && hasAge
	out.HasSymptoms = len(c.Symptoms) > 0
	for _, s := range c.Symptoms {
		if s.Duration != "" || s.Severity != "" || s.Location != "" {
			out.HasDetailedSymptoms = true
			break
		}
	}

	if !hasName {
		out.MissingFields = append(out.MissingFields, "name")
	}
	if !hasAge {
		out.MissingFields = append(out.MissingFields, "age")
	}
	if !out.HasSymptoms {
		out.MissingFields = append(out.MissingFields, "symptoms")
	} else if !out.HasDetailedSymptoms {
		out.MissingFields = append(out.MissingFields, "symptom details")
	}

	out.ReadyForPrescription = out.HasBasicInfo && out.HasSymptoms && out.HasDetailedSymptoms
	return out
}
