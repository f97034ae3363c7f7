package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/therrshan/resume-feedback/internal/analyzer"
	"github.com/therrshan/resume-feedback/internal/latex"
	"github.com/therrshan/resume-feedback/internal/types"
)

var validate = validator.New()

// AnalyzeRequest represents the request body for /analyze
type AnalyzeRequest struct {
	ResumeText     string          `json:"resume_text,omitempty"`
	JobDescription string          `json:"job_description" validate:"required"`
	ProjectsLaTeX  string          `json:"projects_latex,omitempty"`
	Projects       []types.Project `json:"projects,omitempty"`
	Namespace      string          `json:"namespace,omitempty"`
}

// ParseProjectsRequest represents the request body for /projects/latex
type ParseProjectsRequest struct {
	LaTeX string `json:"latex" validate:"required"`
}

// ParseProjectsResponse represents the response for /projects/latex
type ParseProjectsResponse struct {
	Projects []types.Project `json:"projects"`
	Count    int             `json:"count"`
}

// handleAnalyze runs a full analysis and returns the AnalysisResult.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := validate.Struct(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	result, err := s.analyzer.Analyze(r.Context(), analyzer.Options{
		ResumeText:     req.ResumeText,
		JobDescription: req.JobDescription,
		ProjectsLaTeX:  req.ProjectsLaTeX,
		Projects:       req.Projects,
		Namespace:      req.Namespace,
	})
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Analysis failed: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// handleParseProjects parses LaTeX project content into structured projects.
func (s *Server) handleParseProjects(w http.ResponseWriter, r *http.Request) {
	var req ParseProjectsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := validate.Struct(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	projects, err := latex.ParseProjects(req.LaTeX)
	if err != nil {
		s.errorResponse(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, ParseProjectsResponse{
		Projects: projects,
		Count:    len(projects),
	})
}
