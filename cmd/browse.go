package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/kamal-hamza/fsviz/internal/core/domain"
	"github.com/kamal-hamza/fsviz/pkg/ui"
)

var browseCmd = &cobra.Command{
	Use:     "browse [directory]",
	Aliases: []string{"table"},
	Short:   "Browse file metadata in a table (alias: table)",
	Long: `Open a full-screen table with one row per file.

Keyboard Shortcuts:
  ↑/k ↓/j     Move
  /           Search by name or path
  s           Cycle sort order (path, size, modified, type)
  y           Copy the selected path
  ?           Toggle help
  q           Quit`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBrowse,
}

func runBrowse(cmd *cobra.Command, args []string) error {
	result, err := scanRoot(cmd.Context(), args)
	if err != nil {
		return err
	}
	if result.Count() == 0 {
		fmt.Println(ui.FormatWarning("No files found"))
		return nil
	}

	m := newBrowseModel(result)

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running table view: %w", err)
	}
	return nil
}

type browseSort int

const (
	sortPath browseSort = iota
	sortSize
	sortModified
	sortType
)

func (s browseSort) String() string {
	switch s {
	case sortSize:
		return "size"
	case sortModified:
		return "modified"
	case sortType:
		return "type"
	default:
		return "path"
	}
}

type browseKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Search key.Binding
	Sort   key.Binding
	Copy   key.Binding
	Help   key.Binding
	Escape key.Binding
	Quit   key.Binding
}

func (k browseKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.Sort, k.Copy, k.Help, k.Quit}
}

func (k browseKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Search, k.Sort, k.Copy},
		{k.Help, k.Escape, k.Quit},
	}
}

var browseKeys = browseKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "move up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "move down"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	Sort: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "sort"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy path"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Escape: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "clear search"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

type browseModel struct {
	root      string
	records   []domain.FileRecord
	visible   []domain.FileRecord
	table     table.Model
	search    textinput.Model
	searching bool
	sortBy    browseSort
	help      help.Model
	keys      browseKeyMap
	width     int
	height    int
	message   string
}

func newBrowseModel(result *domain.ScanResult) browseModel {
	columns := []table.Column{
		{Title: "Filename", Width: 28},
		{Title: "Type", Width: 8},
		{Title: "Size", Width: 10},
		{Title: "Modified", Width: 16},
		{Title: "Accessed", Width: 16},
		{Title: "Created", Width: 16},
		{Title: "Owner", Width: 10},
		{Title: "Path", Width: 40},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ui.ColorMuted).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(ui.ColorDefault).
		Background(ui.ColorPrimary).
		Bold(true)
	t.SetStyles(s)

	ti := textinput.New()
	ti.Placeholder = "Search files..."
	ti.CharLimit = 100
	ti.Width = 50

	m := browseModel{
		root:    result.Root,
		records: result.Records,
		table:   t,
		search:  ti,
		help:    help.New(),
		keys:    browseKeys,
	}
	m.refresh()
	return m
}

// refresh re-applies the search and the sort order to the table rows
func (m *browseModel) refresh() {
	query := strings.ToLower(strings.TrimSpace(m.search.Value()))

	m.visible = make([]domain.FileRecord, 0, len(m.records))
	for _, r := range m.records {
		if query == "" ||
			strings.Contains(strings.ToLower(r.Name), query) ||
			strings.Contains(strings.ToLower(r.Path), query) {
			m.visible = append(m.visible, r)
		}
	}

	sort.SliceStable(m.visible, func(i, j int) bool {
		a, b := m.visible[i], m.visible[j]
		switch m.sortBy {
		case sortSize:
			return a.SizeBytes > b.SizeBytes
		case sortModified:
			return a.ModifiedAt.After(b.ModifiedAt)
		case sortType:
			return a.Extension < b.Extension
		default:
			return a.Path < b.Path
		}
	})

	rows := make([]table.Row, len(m.visible))
	for i, r := range m.visible {
		rows[i] = table.Row{
			safeTruncate(r.Name, 28),
			displayExt(r.Extension),
			ui.FormatBytes(r.SizeBytes),
			r.ModifiedAt.Local().Format("2006-01-02 15:04"),
			r.AccessedAt.Local().Format("2006-01-02 15:04"),
			r.CreatedAt.Local().Format("2006-01-02 15:04"),
			safeTruncate(r.Owner, 10),
			relativePath(m.root, r.Path),
		}
	}
	m.table.SetRows(rows)
	if m.table.Cursor() >= len(rows) {
		m.table.SetCursor(0)
	}
}

func (m browseModel) selected() (domain.FileRecord, bool) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.visible) {
		return domain.FileRecord{}, false
	}
	return m.visible[idx], true
}

func (m browseModel) Init() tea.Cmd { return nil }

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

		h := msg.Height - 8
		if h < 3 {
			h = 3
		}
		m.table.SetHeight(h)
		m.table.SetWidth(msg.Width)
		return m, nil

	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Search):
			m.searching = true
			m.message = ""
			return m, m.search.Focus()

		case key.Matches(msg, m.keys.Escape):
			m.search.SetValue("")
			m.refresh()
			return m, nil

		case key.Matches(msg, m.keys.Sort):
			m.sortBy = (m.sortBy + 1) % 4
			m.refresh()
			return m, nil

		case key.Matches(msg, m.keys.Copy):
			if rec, ok := m.selected(); ok {
				if err := clipboard.WriteAll(rec.Path); err != nil {
					m.message = "Could not copy: " + err.Error()
				} else {
					m.message = "Copied " + rec.Path
				}
			}
			return m, nil

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m browseModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg.Type {
	case tea.KeyEsc:
		m.searching = false
		m.search.Blur()
		m.search.SetValue("")
		m.refresh()
		return m, nil

	case tea.KeyEnter:
		m.searching = false
		m.search.Blur()
		return m, nil
	}

	m.search, cmd = m.search.Update(msg)
	m.refresh()
	return m, cmd
}

func (m browseModel) View() string {
	var b strings.Builder

	b.WriteString(ui.StyleTitle.Render("Metadata Table") + "  " + ui.FormatMuted(m.root) + "\n\n")

	if m.searching || m.search.Value() != "" {
		b.WriteString(m.search.View() + "\n")
	}

	b.WriteString(m.table.View() + "\n")

	status := fmt.Sprintf("%d of %d files • sort: %s", len(m.visible), len(m.records), m.sortBy)
	b.WriteString(ui.FormatMuted(status) + "\n")
	if m.message != "" {
		b.WriteString(ui.StyleInfo.Render(m.message) + "\n")
	}

	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func safeTruncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 1 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-1]) + "…"
}
