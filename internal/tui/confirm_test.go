package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robby/glassign/internal/domain"
	"github.com/robby/glassign/internal/reconcile"
)

func testPair() domain.MatchedPair {
	return domain.MatchedPair{
		SourceProjectID: 1,
		Source: domain.Issue{
			ID: 10, IID: 5, Title: "Bug",
			References: domain.References{Short: "proj#5"},
		},
		DestProjectID: 2,
		Dest: domain.Issue{
			ID: 20, IID: 8, Title: "Bug (mirrored)",
			References: domain.References{Short: "proj#5"},
			WebURL:     "https://gitlab.new.example.com/group/proj/-/issues/8",
		},
	}
}

func keyMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func decide(t *testing.T, msg tea.Msg) reconcile.Decision {
	t.Helper()
	model, cmd := newConfirmModel(testPair()).Update(msg)
	require.NotNil(t, cmd, "decision keys should quit the prompt")
	m, ok := model.(confirmModel)
	require.True(t, ok)
	return m.decision
}

func TestConfirmModel_DecisionKeys(t *testing.T) {
	assert.Equal(t, reconcile.DecisionYes, decide(t, keyMsg('y')))
	assert.Equal(t, reconcile.DecisionYes, decide(t, tea.KeyMsg{Type: tea.KeyEnter}))
	assert.Equal(t, reconcile.DecisionNo, decide(t, keyMsg('n')))
	assert.Equal(t, reconcile.DecisionAll, decide(t, keyMsg('a')))
	assert.Equal(t, reconcile.DecisionQuit, decide(t, keyMsg('q')))
	assert.Equal(t, reconcile.DecisionQuit, decide(t, tea.KeyMsg{Type: tea.KeyCtrlC}))
	assert.Equal(t, reconcile.DecisionQuit, decide(t, tea.KeyMsg{Type: tea.KeyEsc}))
}

func TestConfirmModel_UnboundKeyKeepsPrompting(t *testing.T) {
	model, cmd := newConfirmModel(testPair()).Update(keyMsg('x'))

	assert.Nil(t, cmd)
	m, ok := model.(confirmModel)
	require.True(t, ok)
	assert.Equal(t, reconcile.DecisionNo, m.decision)
}

func TestConfirmModel_WindowSize(t *testing.T) {
	model, _ := newConfirmModel(testPair()).Update(tea.WindowSizeMsg{Width: 40, Height: 10})

	m, ok := model.(confirmModel)
	require.True(t, ok)
	assert.Equal(t, 40, m.width)
}

func TestConfirmModel_ViewShowsBothSides(t *testing.T) {
	view := newConfirmModel(testPair()).View()

	assert.Contains(t, view, "proj#5")
	assert.Contains(t, view, "Bug")
	assert.Contains(t, view, "Bug (mirrored)")
	assert.Contains(t, view, "Update assignee?")
}
