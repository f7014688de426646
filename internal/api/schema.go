package api

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema/study_plan.json
var studyPlanSchemaJSON string

var studyPlanSchema *gojsonschema.Schema

func init() {
	var err error
	studyPlanSchema, err = gojsonschema.NewSchema(gojsonschema.NewStringLoader(studyPlanSchemaJSON))
	if err != nil {
		panic(fmt.Sprintf("api: invalid study plan schema: %v", err))
	}
}

// validateStudyPlan checks a raw request body against the study-plan schema
// and returns a single human-readable message listing every violation.
func validateStudyPlan(body []byte) error {
	result, err := studyPlanSchema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return fmt.Errorf("request is not valid JSON: %w", err)
	}
	if result.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("%s", strings.Join(msgs, "; "))
}
