// Package types provides type definitions for structured data used throughout the resume-feedback system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "strings"

// Project represents a structured portfolio entry. Projects are produced by an
// upstream parser (LaTeX or heuristic resume splitting) and are immutable for
// the duration of one analysis run; the scoring core only reads them.
type Project struct {
	Name              string   `json:"name"`
	TechStack         []string `json:"tech_stack"`
	DateRange         string   `json:"date_range"`
	GithubLink        string   `json:"github_link,omitempty"`
	DescriptionPoints []string `json:"description_points"`
}

// FullDescription returns the description points joined by a single space.
func (p *Project) FullDescription() string {
	return strings.Join(p.DescriptionPoints, " ")
}

// SearchText returns the combined text used for keyword extraction:
// project name, tech stack, and the full description.
func (p *Project) SearchText() string {
	parts := make([]string, 0, 3)
	if p.Name != "" {
		parts = append(parts, p.Name)
	}
	if len(p.TechStack) > 0 {
		parts = append(parts, strings.Join(p.TechStack, " "))
	}
	if desc := p.FullDescription(); desc != "" {
		parts = append(parts, desc)
	}
	return strings.Join(parts, " ")
}
