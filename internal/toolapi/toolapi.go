// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package toolapi exposes the outreach pipeline as MCP tools. Operational
// failures never cross the tool boundary as Go errors: every handler
// returns explanatory text, and a recovery wrapper turns panics into
// "Error ..." results.
package toolapi

import (
	"context"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/pdiddy/outreach-engine/internal/aggregate"
	"github.com/pdiddy/outreach-engine/internal/align"
	"github.com/pdiddy/outreach-engine/internal/candidate"
	"github.com/pdiddy/outreach-engine/internal/compose"
	"github.com/pdiddy/outreach-engine/pkg/types"
)

// Researcher abstracts the research aggregator.
type Researcher interface {
	Aggregate(ctx context.Context, name, institution, department string, maxPapers int) *types.ProfessorProfile
}

// PositionReporter abstracts the position extractor's full operation.
type PositionReporter interface {
	Report(ctx context.Context, url string) string
}

// Deps holds the collaborators behind the tool handlers.
type Deps struct {
	Researcher Researcher
	Positions  PositionReporter
	CV         candidate.Source
	Log        *zap.Logger
}

// NewServer builds the MCP server with all outreach tools registered.
func NewServer(deps Deps) *server.MCPServer {
	if deps.Log == nil {
		deps.Log = zap.NewNop()
	}

	s := server.NewMCPServer(
		"outreach-engine",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithInstructions("outreach-engine — professor research aggregation, alignment scoring, and outreach email assembly."),
		server.WithRecovery(),
	)

	s.AddTool(
		mcp.NewTool("research_professor",
			mcp.WithDescription("Aggregate a professor's research profile from scholar, institutional, and general web sources."),
			mcp.WithString("professor_name", mcp.Description("Full name of the professor"), mcp.Required()),
			mcp.WithString("institution", mcp.Description("Institution name")),
			mcp.WithString("department", mcp.Description("Department name")),
			mcp.WithNumber("max_papers", mcp.Description("Maximum number of papers to enrich (default 10)")),
		),
		researchProfessor(deps),
	)

	s.AddTool(
		mcp.NewTool("extract_position_requirements",
			mcp.WithDescription("Extract PhD position requirements from a job-posting URL."),
			mcp.WithString("position_url", mcp.Description("URL of the job posting"), mcp.Required()),
		),
		extractPositionRequirements(deps),
	)

	s.AddTool(
		mcp.NewTool("analyze_alignment",
			mcp.WithDescription("Score the alignment between a professor's research profile and a candidate's background."),
			mcp.WithString("professor_research", mcp.Description("Rendered research report text"), mcp.Required()),
			mcp.WithString("user_background", mcp.Description("Candidate background text"), mcp.Required()),
			mcp.WithString("position_requirements", mcp.Description("Rendered position requirements text")),
		),
		analyzeAlignment(deps),
	)

	s.AddTool(
		mcp.NewTool("generate_email",
			mcp.WithDescription("Assemble a personalized outreach email from the research, background, and alignment texts."),
			mcp.WithString("professor_name", mcp.Description("Full name of the professor"), mcp.Required()),
			mcp.WithString("professor_research", mcp.Description("Rendered research report text"), mcp.Required()),
			mcp.WithString("user_background", mcp.Description("Candidate background text"), mcp.Required()),
			mcp.WithString("position_requirements", mcp.Description("Rendered position requirements text")),
			mcp.WithString("additional_context", mcp.Description("Extra context to mention in the closing")),
			mcp.WithString("alignment_analysis", mcp.Description("Rendered alignment analysis text")),
		),
		generateEmail(deps),
	)

	s.AddTool(
		mcp.NewTool("search_candidate_profile",
			mcp.WithDescription("Search the loaded candidate CV for relevant passages."),
			mcp.WithString("query", mcp.Description("Search query"), mcp.Required()),
			mcp.WithNumber("limit", mcp.Description("Maximum number of results (default 5)")),
		),
		searchCandidateProfile(deps),
	)

	return s
}

// guard is the single error boundary for tool bodies: a panic becomes an
// "Error ..." text result instead of crossing the transport.
func guard(log *zap.Logger, name string, fn func() string) (text string) {
	if log == nil {
		log = zap.NewNop()
	}
	defer func() {
		if r := recover(); r != nil {
			log.Error("tool panicked", zap.String("tool", name), zap.Any("cause", r))
			text = fmt.Sprintf("Error in %s: %v", name, r)
		}
	}()
	return fn()
}

func researchProfessor(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name, err := req.RequireString("professor_name")
		if err != nil {
			return mcpError("professor_name is required"), nil
		}
		institution := req.GetString("institution", "")
		department := req.GetString("department", "")
		maxPapers := req.GetInt("max_papers", 0)

		text := guard(deps.Log, "research_professor", func() string {
			profile := deps.Researcher.Aggregate(ctx, name, institution, department, maxPapers)
			return aggregate.Render(profile)
		})
		return mcpText(text), nil
	}
}

func extractPositionRequirements(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		url, err := req.RequireString("position_url")
		if err != nil {
			return mcpError("position_url is required"), nil
		}
		text := guard(deps.Log, "extract_position_requirements", func() string {
			return deps.Positions.Report(ctx, url)
		})
		return mcpText(text), nil
	}
}

func analyzeAlignment(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		professorResearch, err := req.RequireString("professor_research")
		if err != nil {
			return mcpError("professor_research is required"), nil
		}
		userBackground, err := req.RequireString("user_background")
		if err != nil {
			return mcpError("user_background is required"), nil
		}
		positionRequirements := req.GetString("position_requirements", "")

		text := guard(deps.Log, "analyze_alignment", func() string {
			return align.Render(align.Score(professorResearch, userBackground, positionRequirements))
		})
		return mcpText(text), nil
	}
}

func generateEmail(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		professorName, err := req.RequireString("professor_name")
		if err != nil {
			return mcpError("professor_name is required"), nil
		}
		professorResearch, err := req.RequireString("professor_research")
		if err != nil {
			return mcpError("professor_research is required"), nil
		}
		userBackground, err := req.RequireString("user_background")
		if err != nil {
			return mcpError("user_background is required"), nil
		}

		text := guard(deps.Log, "generate_email", func() string {
			return compose.Compose(compose.Request{
				ProfessorName:     professorName,
				ProfessorReport:   professorResearch,
				CandidateText:     userBackground,
				PositionText:      req.GetString("position_requirements", ""),
				AdditionalContext: req.GetString("additional_context", ""),
				AlignmentText:     req.GetString("alignment_analysis", ""),
			})
		})
		return mcpText(text), nil
	}
}

func searchCandidateProfile(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query, err := req.RequireString("query")
		if err != nil {
			return mcpError("query is required"), nil
		}
		limit := req.GetInt("limit", 0)

		text := guard(deps.Log, "search_candidate_profile", func() string {
			chunks, err := deps.CV.Search(ctx, query, limit)
			if errors.Is(err, candidate.ErrNotLoaded) {
				return "CV has not been loaded yet. Please upload the CV first."
			}
			if err != nil {
				return fmt.Sprintf("Failed to search CV: %v", err)
			}
			return candidate.RenderResults(chunks)
		})
		return mcpText(text), nil
	}
}

func mcpText(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{Type: "text", Text: text},
		},
	}
}

func mcpError(msg string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{Type: "text", Text: msg},
		},
		IsError: true,
	}
}
