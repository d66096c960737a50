// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package toolapi

import (
	"context"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/outreach-engine/internal/candidate"
	"github.com/pdiddy/outreach-engine/pkg/types"
)

type stubResearcher struct {
	profile *types.ProfessorProfile
	panics  bool
}

func (s *stubResearcher) Aggregate(_ context.Context, name, institution, department string, _ int) *types.ProfessorProfile {
	if s.panics {
		panic("search backend exploded")
	}
	if s.profile != nil {
		return s.profile
	}
	return &types.ProfessorProfile{Name: name, Institution: institution, Department: department}
}

type stubPositions struct{ text string }

func (s *stubPositions) Report(context.Context, string) string { return s.text }

type stubCV struct {
	chunks []candidate.Chunk
	err    error
}

func (s *stubCV) Search(context.Context, string, int) ([]candidate.Chunk, error) {
	return s.chunks, s.err
}

func callReq(args map[string]any) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.Len(t, res.Content, 1)
	tc, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok)
	return tc.Text
}

func TestResearchProfessorRendersReport(t *testing.T) {
	handler := researchProfessor(Deps{Researcher: &stubResearcher{}})

	res, err := handler(context.Background(), callReq(map[string]any{
		"professor_name": "Jane Doe",
		"institution":    "MIT",
	}))
	require.NoError(t, err)

	text := resultText(t, res)
	assert.False(t, res.IsError)
	assert.Contains(t, text, "=== COMPREHENSIVE RESEARCH PROFILE ===")
	assert.Contains(t, text, "Professor: Jane Doe")
	assert.Contains(t, text, "Institution: MIT")
}

func TestResearchProfessorMissingName(t *testing.T) {
	handler := researchProfessor(Deps{Researcher: &stubResearcher{}})

	res, err := handler(context.Background(), callReq(map[string]any{}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
}

func TestPanicBecomesErrorText(t *testing.T) {
	handler := researchProfessor(Deps{Researcher: &stubResearcher{panics: true}})

	res, err := handler(context.Background(), callReq(map[string]any{
		"professor_name": "Jane Doe",
	}))
	require.NoError(t, err, "panics must not cross the tool boundary")

	text := resultText(t, res)
	assert.Contains(t, text, "Error in research_professor")
	assert.Contains(t, text, "search backend exploded")
}

func TestExtractPositionRequirements(t *testing.T) {
	handler := extractPositionRequirements(Deps{
		Positions: &stubPositions{text: "=== PhD POSITION REQUIREMENTS ===\n"},
	})

	res, err := handler(context.Background(), callReq(map[string]any{
		"position_url": "https://jobs.example.edu/phd-1",
	}))
	require.NoError(t, err)
	assert.Contains(t, resultText(t, res), "=== PhD POSITION REQUIREMENTS ===")
}

func TestAnalyzeAlignment(t *testing.T) {
	handler := analyzeAlignment(Deps{})

	res, err := handler(context.Background(), callReq(map[string]any{
		"professor_research": "Research Interests\nmachine learning\n\n",
		"user_background":    "Skills\nPython, machine learning\n\n",
	}))
	require.NoError(t, err)

	text := resultText(t, res)
	assert.Contains(t, text, "=== RESEARCH ALIGNMENT ANALYSIS ===")
	assert.Contains(t, text, "Research Interests Alignment:")
	assert.NotContains(t, text, "Position Requirements Alignment")
}

func TestGenerateEmail(t *testing.T) {
	handler := generateEmail(Deps{})

	res, err := handler(context.Background(), callReq(map[string]any{
		"professor_name":     "Jane Doe",
		"professor_research": "Professor: Jane Doe\nInstitution: MIT\n",
		"user_background":    "JOHN SMITH\nSkills\nPython\n\n",
		"additional_context": "I will attend NeurIPS this December.",
	}))
	require.NoError(t, err)

	text := resultText(t, res)
	assert.Contains(t, text, "Dear Professor Doe,")
	assert.Contains(t, text, "I will attend NeurIPS this December.")
	assert.Contains(t, text, "Best regards,")
}

func TestSearchCandidateProfile(t *testing.T) {
	handler := searchCandidateProfile(Deps{
		CV: &stubCV{chunks: []candidate.Chunk{{Seq: 0, Content: "Python and Go"}}},
	})

	res, err := handler(context.Background(), callReq(map[string]any{"query": "python"}))
	require.NoError(t, err)
	assert.Equal(t, "Result 1:\nPython and Go\n", resultText(t, res))
}

func TestSearchCandidateProfileNotLoaded(t *testing.T) {
	handler := searchCandidateProfile(Deps{CV: &stubCV{err: candidate.ErrNotLoaded}})

	res, err := handler(context.Background(), callReq(map[string]any{"query": "python"}))
	require.NoError(t, err)
	assert.Equal(t, "CV has not been loaded yet. Please upload the CV first.", resultText(t, res))
}

func TestNewServerRegistersTools(t *testing.T) {
	s := NewServer(Deps{
		Researcher: &stubResearcher{},
		Positions:  &stubPositions{},
		CV:         &stubCV{},
	})
	assert.NotNil(t, s)
}
