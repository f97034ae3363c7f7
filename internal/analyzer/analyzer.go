// Package analyzer provides the high-level orchestration for one analysis
// run: deterministic project ranking and keyword-gap detection, optionally
// supplemented by LLM feedback and full-text retrieval.
package analyzer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/therrshan/resume-feedback/internal/latex"
	"github.com/therrshan/resume-feedback/internal/llm"
	"github.com/therrshan/resume-feedback/internal/scoring"
	"github.com/therrshan/resume-feedback/internal/search"
	"github.com/therrshan/resume-feedback/internal/types"
)

const (
	// minResumeChars gates the resume critic; shorter inputs carry too
	// little signal to critique.
	minResumeChars = 50

	// rankTopK bounds how many ranked projects are considered for
	// recommendations.
	rankTopK = 8

	// whyBetterKeywords is how many matched keywords a recommendation cites.
	whyBetterKeywords = 5
)

// Options holds the inputs for one analysis run.
type Options struct {
	ResumeText     string
	JobDescription string

	// ProjectsLaTeX is parsed when Projects is empty. A parse failure
	// degrades to project-free analysis, it does not abort the run.
	ProjectsLaTeX string
	Projects      []types.Project

	// Namespace scopes retrieval storage per resume or session. Retrieval
	// is skipped when empty.
	Namespace string

	Verbose bool
}

// Analyzer orchestrates the analysis pipeline. The LLM client and searcher
// are both optional; without them the run is purely deterministic.
type Analyzer struct {
	engine   *scoring.Engine
	client   llm.Client
	searcher search.Searcher
}

// New returns an analyzer over the given collaborators. client and searcher
// may be nil.
func New(engine *scoring.Engine, client llm.Client, searcher search.Searcher) *Analyzer {
	if engine == nil {
		engine = scoring.NewDefaultEngine()
	}
	return &Analyzer{engine: engine, client: client, searcher: searcher}
}

// NewDeterministic returns an analyzer with no LLM client and no searcher.
func NewDeterministic() *Analyzer {
	return New(scoring.NewDefaultEngine(), nil, nil)
}

// Engine exposes the underlying scoring engine.
func (a *Analyzer) Engine() *scoring.Engine {
	return a.engine
}

// Analyze runs the full pipeline and assembles the composite result. The
// deterministic core always completes; LLM collaborators degrade to absent
// sections when unavailable.
func (a *Analyzer) Analyze(ctx context.Context, opts Options) (*types.AnalysisResult, error) {
	start := time.Now()

	if strings.TrimSpace(opts.JobDescription) == "" {
		return nil, errors.New("job description is required")
	}

	projects := opts.Projects
	if len(projects) == 0 && opts.ProjectsLaTeX != "" {
		parsed, err := latex.ParseProjects(opts.ProjectsLaTeX)
		if err != nil {
			fmt.Printf("Warning: LaTeX project parsing failed: %v\n", err)
		} else {
			projects = parsed
		}
	}

	// Deterministic core: rank projects and find keyword gaps.
	ranked := a.engine.RankProjects(projects, opts.JobDescription, rankTopK)
	if opts.Verbose {
		fmt.Printf("[VERBOSE] Ranked %d of %d projects\n", len(ranked), len(projects))
	}
	recommendations := a.recommendations(ranked)

	jobKeywords := a.engine.JobKeywords(opts.JobDescription)
	covered := scoring.CoveredKeywords(jobKeywords, coverageText(opts.ResumeText, projects))
	missing := a.engine.MissingKeywords(opts.JobDescription, covered)

	// LLM collaborators run concurrently; each degrades independently.
	var (
		mu             sync.Mutex
		resumeAnalysis *types.ResumeAnalysis
		categorized    []types.MissingKeyword
		improved       []types.ImprovedProject
	)

	if a.client != nil {
		gapKeywords := make([]string, len(missing))
		for i, gap := range missing {
			gapKeywords[i] = gap.Keyword
		}

		g, gCtx := errgroup.WithContext(ctx)

		if len(opts.ResumeText) > minResumeChars {
			g.Go(func() error {
				analysis, err := llm.AnalyzeResume(gCtx, a.client, opts.ResumeText, opts.JobDescription)
				if err != nil {
					if errors.Is(err, llm.ErrUnavailable) {
						fmt.Printf("Warning: resume analysis unavailable: %v\n", err)
						return nil
					}
					return err
				}
				mu.Lock()
				resumeAnalysis = analysis
				mu.Unlock()
				return nil
			})
		}

		if len(missing) > 0 {
			g.Go(func() error {
				refined, err := llm.CategorizeKeywords(gCtx, a.client, missing, opts.JobDescription)
				if err != nil {
					if errors.Is(err, llm.ErrUnavailable) {
						fmt.Printf("Warning: keyword categorization unavailable: %v\n", err)
						return nil
					}
					return err
				}
				mu.Lock()
				categorized = refined
				mu.Unlock()
				return nil
			})
		}

		if topProjects := a.topProjects(projects, ranked); len(topProjects) > 0 && len(gapKeywords) > 0 {
			g.Go(func() error {
				rewritten, err := llm.ImprovePhrasing(gCtx, a.client, topProjects, gapKeywords, opts.JobDescription)
				if err != nil {
					if errors.Is(err, llm.ErrUnavailable) {
						fmt.Printf("Warning: phrasing improvement unavailable: %v\n", err)
						return nil
					}
					return err
				}
				mu.Lock()
				improved = rewritten
				mu.Unlock()
				return nil
			})
		}

		if err := g.Wait(); err != nil {
			return nil, err
		}
		if categorized != nil {
			missing = categorized
		}
	}

	var resumeScore *int
	if resumeAnalysis != nil {
		score := resumeAnalysis.OverallScore
		resumeScore = &score
	}
	overall := a.engine.CombineScores(ranked, resumeScore)

	metadata := map[string]any{
		"job_description_length": len(opts.JobDescription),
		"projects_parsed":        len(projects),
		"analysis_timestamp":     start.Unix(),
	}
	if related := a.relatedProjects(ctx, opts, projects); len(related) > 0 {
		metadata["related_projects"] = related
	}

	return &types.AnalysisResult{
		OverallScore:           overall,
		ResumeAnalysis:         resumeAnalysis,
		ProjectRecommendations: recommendations,
		MissingKeywords:        missing,
		ImprovedProjects:       improved,
		ProcessingTime:         time.Since(start).Seconds(),
		Metadata:               metadata,
	}, nil
}

// recommendations converts ranked projects above the relevance threshold
// into user-facing recommendations.
func (a *Analyzer) recommendations(ranked []types.ScoredProject) []types.ProjectRecommendation {
	threshold := a.engine.Weights().RecommendationThreshold
	recs := make([]types.ProjectRecommendation, 0, len(ranked))
	for _, project := range ranked {
		if project.OverallScore <= threshold {
			continue
		}
		cited := project.MatchedKeywords
		if len(cited) > whyBetterKeywords {
			cited = cited[:whyBetterKeywords]
		}
		recs = append(recs, types.ProjectRecommendation{
			ProjectName:    project.ProjectName,
			RelevanceScore: project.OverallScore,
			WhyBetter: fmt.Sprintf("High relevance (%.1f%%) with matching technologies: %s",
				project.OverallScore, strings.Join(cited, ", ")),
			KeySkills: project.MatchedKeywords,
			TechStack: project.TechStack,
		})
	}
	return recs
}

// topProjects returns the highest-ranked projects in rank order, resolved
// back to their full parsed form for the phrasing collaborator.
func (a *Analyzer) topProjects(projects []types.Project, ranked []types.ScoredProject) []types.Project {
	limit := a.engine.Weights().TopProjects
	byName := make(map[string]*types.Project, len(projects))
	for i := range projects {
		byName[projects[i].Name] = &projects[i]
	}

	top := make([]types.Project, 0, limit)
	for _, scored := range ranked {
		if len(top) >= limit {
			break
		}
		if project, ok := byName[scored.ProjectName]; ok {
			top = append(top, *project)
		}
	}
	return top
}

// relatedProjects indexes project text and queries it with the job
// description, surfacing project names the ranker may have scored low but
// full-text retrieval still considers relevant.
func (a *Analyzer) relatedProjects(ctx context.Context, opts Options, projects []types.Project) []string {
	if a.searcher == nil || opts.Namespace == "" || len(projects) == 0 {
		return nil
	}

	var chunks []search.Chunk
	for i := range projects {
		project := &projects[i]
		text := fmt.Sprintf("%s. Technologies: %s. %s",
			project.Name, strings.Join(project.TechStack, ", "), project.FullDescription())
		for _, content := range search.ChunkText(text, search.DefaultChunkSize, search.DefaultChunkOverlap) {
			chunks = append(chunks, search.Chunk{
				Content:  content,
				Metadata: map[string]string{"project_name": project.Name},
			})
		}
	}

	if err := a.searcher.Clear(ctx, opts.Namespace); err != nil {
		fmt.Printf("Warning: failed to clear retrieval namespace: %v\n", err)
		return nil
	}
	if err := a.searcher.Store(ctx, opts.Namespace, chunks); err != nil {
		fmt.Printf("Warning: failed to index project chunks: %v\n", err)
		return nil
	}

	matches, err := a.searcher.Query(ctx, opts.Namespace, opts.JobDescription, rankTopK)
	if err != nil {
		fmt.Printf("Warning: retrieval query failed: %v\n", err)
		return nil
	}

	seen := make(map[string]struct{})
	var names []string
	for _, match := range matches {
		name := match.Metadata["project_name"]
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names
}

// coverageText combines the resume and every project's searchable text into
// the haystack for keyword coverage.
func coverageText(resumeText string, projects []types.Project) string {
	parts := make([]string, 0, len(projects)+1)
	if resumeText != "" {
		parts = append(parts, resumeText)
	}
	for i := range projects {
		parts = append(parts, projects[i].SearchText())
	}
	return strings.Join(parts, "\n")
}
