package main

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	zone "github.com/lrstanley/bubblezone"
	"github.com/rivo/uniseg"

	"github.com/joeycumines/structedit"
	"github.com/joeycumines/structedit/internal/commentstore"
)

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	labelStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Width(12)
	valueStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	selectedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	hoveredStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("240"))
	commentStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	authorStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("45"))
	badgeStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	statusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	panelStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238")).Padding(0, 1)
	panelHeadStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252"))
)

// commentSavedMsg carries the outcome of a CreateComment effect back into
// the bubbletea loop, where it is fed to the structedit reducer.
type commentSavedMsg struct {
	inner structedit.CommentCreatedMsg[pagePath]
}

type editorModel struct {
	def    structedit.Definition[pagePath, page]
	state  structedit.State[pagePath]
	data   page
	store  *commentstore.Store
	author structedit.Author
	logger *slog.Logger
	zones  *zone.Manager

	fields   []field
	selected int

	// editing: the field input owns keystrokes and every change is applied
	// to the data through the reducer. commenting: the draft input owns
	// keystrokes and every change updates the unsaved draft.
	editing    bool
	commenting bool
	fieldInput textarea.Model
	draftInput textarea.Model
	// lastApplied is the last text reported to the reducer for the field
	// being edited; redundant updates are skipped so an unchanged value
	// never disturbs cursor state.
	lastApplied string

	width  int
	height int
	status string
}

func newEditorModel(store *commentstore.Store, state structedit.State[pagePath], author structedit.Author, logger *slog.Logger) editorModel {
	fieldInput := textarea.New()
	fieldInput.ShowLineNumbers = false
	fieldInput.Prompt = ""
	fieldInput.SetHeight(1)
	fieldInput.SetWidth(32)

	draftInput := textarea.New()
	draftInput.ShowLineNumbers = false
	draftInput.Prompt = ""
	draftInput.Placeholder = "Write a comment..."
	draftInput.SetHeight(3)
	draftInput.SetWidth(38)

	data := initialPage()
	return editorModel{
		def:        pageDefinition(),
		state:      state,
		data:       data,
		store:      store,
		author:     author,
		logger:     logger,
		zones:      zone.New(),
		fields:     documentFields(data),
		fieldInput: fieldInput,
		draftInput: draftInput,
		status:     "enter: edit field · c: comments · ctrl+d: delete plan · q: quit",
	}
}

func (m editorModel) Init() tea.Cmd {
	return nil
}

// dispatch routes one structedit message through the reducer and turns the
// returned effect, if any, into a tea.Cmd.
func (m *editorModel) dispatch(msg structedit.Msg[pagePath]) tea.Cmd {
	data, state, eff := structedit.Update(m.def, msg, m.state, m.data)
	m.data = data
	m.state = state
	m.fields = documentFields(m.data)
	if m.selected >= len(m.fields) {
		m.selected = len(m.fields) - 1
	}
	return m.runEffect(eff)
}

// runEffect executes a CreateComment effect asynchronously: persist the
// comment, then resolve the reducer with the outcome.
func (m *editorModel) runEffect(eff structedit.Effect[pagePath]) tea.Cmd {
	create, ok := eff.(structedit.CreateComment[pagePath])
	if !ok {
		return nil
	}
	store, author, logger := m.store, m.author, m.logger
	key := pageKey(create.Path)
	return func() tea.Msg {
		c := structedit.Comment{
			ID:        uuid.NewString(),
			Content:   create.Content,
			Author:    author,
			CreatedAt: time.Now(),
		}
		if err := store.Append(key, c); err != nil {
			logger.Error("failed to persist comment", "key", key, "error", err)
			return commentSavedMsg{inner: structedit.CommentCreatedMsg[pagePath]{Path: create.Path, Err: err}}
		}
		logger.Info("comment persisted", "key", key, "id", c.ID)
		return commentSavedMsg{inner: structedit.CommentCreatedMsg[pagePath]{Path: create.Path, Comment: c}}
	}
}

func (m editorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case commentSavedMsg:
		return m, m.dispatch(msg.inner)

	case tea.MouseMsg:
		return m.updateMouse(msg)

	case tea.KeyMsg:
		return m.updateKey(msg)
	}
	return m, nil
}

func (m editorModel) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionMotion:
		for _, f := range m.fields {
			info := m.zones.Get(fieldZoneID(m.state.Key(f.path)))
			if info != nil && !info.IsZero() && info.InBounds(msg) {
				return m, m.dispatch(structedit.HoverThreadMsg[pagePath]{Path: f.path, Hover: true})
			}
		}
		return m, m.dispatch(structedit.HoverThreadMsg[pagePath]{Hover: false})

	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		for i, f := range m.fields {
			info := m.zones.Get(fieldZoneID(m.state.Key(f.path)))
			if info != nil && !info.IsZero() && info.InBounds(msg) {
				m.selected = i
				m.stopEditing()
				return m, m.dispatch(structedit.FocusThreadMsg[pagePath]{Path: f.path})
			}
		}
	}
	return m, nil
}

func (m editorModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.editing {
		return m.updateFieldInput(msg)
	}
	if m.commenting {
		return m.updateDraftInput(msg)
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "up", "shift+tab":
		if m.selected > 0 {
			m.selected--
		}
		return m, nil

	case "down", "tab":
		if m.selected < len(m.fields)-1 {
			m.selected++
		}
		return m, nil

	case "enter":
		f := m.fields[m.selected]
		value, ok := m.def.GetString(f.path, m.data)
		if !ok {
			// Not a text field under the definition; nothing to edit.
			return m, nil
		}
		m.editing = true
		m.lastApplied = value
		m.fieldInput.SetValue(value)
		m.fieldInput.CursorEnd()
		return m, m.fieldInput.Focus()

	case "c":
		f := m.fields[m.selected]
		m.commenting = true
		m.draftInput.SetValue(m.state.Draft(f.path))
		m.draftInput.CursorEnd()
		return m, tea.Batch(
			m.dispatch(structedit.FocusThreadMsg[pagePath]{Path: f.path}),
			m.draftInput.Focus(),
		)

	case "ctrl+d":
		f := m.fields[m.selected]
		if f.planIndex < 0 {
			return m, nil
		}
		return m, m.dispatch(structedit.ActionMsg[pagePath]{
			Action: structedit.Delete(plansPath(structedit.ListItem[planPath](f.planIndex))),
		})
	}
	return m, nil
}

// updateFieldInput forwards keystrokes to the field textarea and reports the
// full new content to the reducer whenever it actually changed.
func (m editorModel) updateFieldInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter":
		m.stopEditing()
		return m, nil
	case "ctrl+c":
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.fieldInput, cmd = m.fieldInput.Update(msg)

	if value := m.fieldInput.Value(); value != m.lastApplied {
		m.lastApplied = value
		f := m.fields[m.selected]
		return m, tea.Batch(cmd, m.dispatch(structedit.ActionMsg[pagePath]{
			Action: structedit.Edit(f.path, value),
		}))
	}
	return m, cmd
}

func (m editorModel) updateDraftInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := m.fields[m.selected]

	switch msg.String() {
	case "esc":
		m.commenting = false
		m.draftInput.Blur()
		return m, nil
	case "ctrl+c":
		return m, tea.Quit
	case "ctrl+s":
		return m, m.dispatch(structedit.SubmitDraftMsg[pagePath]{Path: f.path})
	}

	var cmd tea.Cmd
	m.draftInput, cmd = m.draftInput.Update(msg)

	if draft := m.draftInput.Value(); draft != m.state.Draft(f.path) {
		return m, tea.Batch(cmd, m.dispatch(structedit.DraftChangedMsg[pagePath]{
			Path:  f.path,
			Draft: draft,
		}))
	}
	return m, cmd
}

func (m *editorModel) stopEditing() {
	m.editing = false
	m.fieldInput.Blur()
	m.commenting = false
	m.draftInput.Blur()
}

func fieldZoneID(key string) string {
	return "field:" + key
}

func (m editorModel) View() string {
	doc := m.viewDocument()
	comments := m.viewComments()

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		panelStyle.Render(doc),
		panelStyle.Render(comments),
	)

	var footer string
	if m.editing {
		footer = statusStyle.Render("editing · esc/enter: done")
	} else if m.commenting {
		footer = statusStyle.Render("commenting · ctrl+s: submit · esc: close")
	} else {
		footer = statusStyle.Render(m.status)
	}

	view := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("structedit demo"),
		body,
		footer,
	)
	// Scan registers the marked zones for mouse hit-testing and strips the
	// invisible markers; it must wrap the final composed frame.
	return m.zones.Scan(view)
}

func (m editorModel) viewDocument() string {
	var rows []string
	rows = append(rows, panelHeadStyle.Render("Document"), "")

	for i, f := range m.fields {
		value, _ := m.def.GetString(f.path, m.data)
		if m.editing && i == m.selected {
			value = m.fieldInput.View()
		}

		line := labelStyle.Render(f.label) + " " + valueStyle.Render(value)
		switch {
		case i == m.selected:
			line = labelStyle.Render(f.label) + " " + selectedStyle.Render(value)
		case m.state.Hovered(f.path):
			line = labelStyle.Render(f.label) + " " + hoveredStyle.Render(value)
		}

		if n := len(m.state.Comments(f.path)); n > 0 {
			line += badgeStyle.Render(fmt.Sprintf(" [%d]", n))
		}

		rows = append(rows, m.zones.Mark(fieldZoneID(m.state.Key(f.path)), line))
	}

	return strings.Join(rows, "\n")
}

func (m editorModel) viewComments() string {
	f := m.fields[m.selected]

	var rows []string
	rows = append(rows, panelHeadStyle.Render("Comments · "+m.state.Key(f.path)), "")

	thread := m.state.Comments(f.path)
	if len(thread) == 0 {
		rows = append(rows, statusStyle.Render("no comments yet"))
	}
	for _, c := range thread {
		rows = append(rows,
			authorStyle.Render(c.Author.Name)+statusStyle.Render(" · "+c.CreatedAt.Format("Jan 2 15:04")),
			commentStyle.Render(preview(c.Content, 60)),
			"",
		)
	}

	if m.commenting {
		rows = append(rows, m.draftInput.View())
	} else if draft := m.state.Draft(f.path); draft != "" {
		rows = append(rows, statusStyle.Render("draft: ")+commentStyle.Render(preview(draft, 40)))
	}

	if m.state.Saving(f.path) {
		rows = append(rows, badgeStyle.Render("saving..."))
	}
	if errMsg := m.state.SaveError(f.path); errMsg != "" {
		rows = append(rows, errorStyle.Render("save failed: "+errMsg))
	}

	return strings.Join(rows, "\n")
}

// preview truncates s to at most max grapheme clusters, appending an
// ellipsis when truncated. Counting clusters rather than bytes or runes
// keeps multi-codepoint text (emoji, combining marks) intact.
func preview(s string, max int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if uniseg.GraphemeClusterCount(s) <= max {
		return s
	}
	var b strings.Builder
	g := uniseg.NewGraphemes(s)
	for i := 0; i < max && g.Next(); i++ {
		b.WriteString(g.Str())
	}
	b.WriteString("…")
	return b.String()
}
