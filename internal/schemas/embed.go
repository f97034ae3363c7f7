package schemas

import (
	"embed"
)

//go:embed *.schema.json
var schemaFiles embed.FS

// ResumeAnalysisSchema returns the JSON Schema for resume critic output.
func ResumeAnalysisSchema() string {
	data, err := schemaFiles.ReadFile("resume_analysis.schema.json")
	if err != nil {
		// Embedded at compile time; missing file is a build defect.
		panic(err)
	}
	return string(data)
}

// ValidateResumeAnalysis validates JSON content against the resume analysis
// schema.
func ValidateResumeAnalysis(jsonContent string) error {
	return ValidateJSONString(ResumeAnalysisSchema(), jsonContent)
}
