package tui

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/baliza/genesis/internal/domain"
)

type screen int

const (
	screenHome screen = iota
	screenMembers
	screenMember
)

func (s screen) String() string {
	switch s {
	case screenHome:
		return "families"
	case screenMembers:
		return "members"
	case screenMember:
		return "member"
	default:
		return "unknown"
	}
}

type familyItem struct {
	ref domain.FamilyRef
}

func (f familyItem) Title() string       { return f.ref.Name }
func (f familyItem) Description() string { return f.ref.Path }
func (f familyItem) FilterValue() string { return f.ref.Name }

type memberItem struct {
	h domain.Human
}

func (m memberItem) Title() string { return m.h.Name() }
func (m memberItem) Description() string {
	if domain.IsSeed(m.h) {
		return fmt.Sprintf("%s • seed", m.h.Sex())
	}
	return fmt.Sprintf("%s • gen %d • %s & %s", m.h.Sex(), domain.Generation(m.h), parentName(m.h.Mother()), parentName(m.h.Father()))
}
func (m memberItem) FilterValue() string { return m.h.Name() }

type model struct {
	theme Theme
	deps  Deps

	scr     screen
	menu    list.Model
	members list.Model

	cwd            string
	workspaceFound bool
	workspaceRoot  string
	workspaceErr   error

	loading    bool
	familyPath string
	tree       *domain.Tree
	selected domain.Human
	toast    string
}

// Run starts the family browser and blocks until the user quits.
func Run(deps Deps) error {
	m := wrapSafe(newModel(deps), deps.Logger)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	menu := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	menu.Title = "Families"
	menu.SetShowStatusBar(false)
	menu.SetFilteringEnabled(true)
	menu.SetShowHelp(false)

	members := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	members.Title = "Members"
	members.SetShowStatusBar(false)
	members.SetFilteringEnabled(true)
	members.SetShowHelp(false)

	return model{
		theme:   DefaultTheme(),
		deps:    deps,
		scr:     screenHome,
		menu:    menu,
		members: members,
		loading: true,
	}
}

func (m model) Init() tea.Cmd { return cmdRefreshWorkspace(m.deps) }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w, h := msg.Width, msg.Height
		m.menu.SetSize(w-4, h-10)
		m.members.SetSize(w-4, h-10)
		return m, nil

	case workspaceRefreshedMsg:
		m.cwd = msg.cwd
		m.workspaceFound = msg.found
		m.workspaceRoot = msg.root
		m.workspaceErr = msg.err
		if !msg.found {
			m.loading = false
			if msg.err != nil && !domain.IsKind(msg.err, domain.KindNotFound) {
				m.logger().Warn("workspace.lookup.failed", "cwd", msg.cwd, "err", msg.err)
			}
			return m, nil
		}
		return m, cmdLoadFamilies(msg.root)

	case familiesLoadedMsg:
		if msg.root != m.workspaceRoot {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			return m, nil
		}
		items := make([]list.Item, 0, len(msg.refs))
		for _, r := range msg.refs {
			items = append(items, familyItem{ref: r})
		}
		return m, m.menu.SetItems(items)

	case familyBuiltMsg:
		m.loading = false
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			return m, nil
		}
		m.toast = ""
		m.familyPath = msg.path
		m.tree = msg.tree
		m.members.Title = msg.tree.Name()
		items := make([]list.Item, 0, msg.tree.Len())
		for _, h := range msg.tree.Members() {
			items = append(items, memberItem{h: h})
		}
		m.scr = screenMembers
		return m, m.members.SetItems(items)

	case tea.KeyMsg:
		if m.filtering() {
			break
		}

		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.scr == screenHome {
				return m, tea.Quit
			}
			m = m.home()
			return m, nil

		case "r":
			if m.scr == screenHome && m.workspaceFound {
				m.loading = true
				m.toast = ""
				return m, cmdLoadFamilies(m.workspaceRoot)
			}

		case "enter":
			switch m.scr {
			case screenHome:
				it, ok := m.menu.SelectedItem().(familyItem)
				if !ok || m.loading {
					return m, nil
				}
				m.loading = true
				return m, cmdBuildFamily(it.ref.Path, m.deps.Logger)

			case screenMembers:
				it, ok := m.members.SelectedItem().(memberItem)
				if !ok {
					return m, nil
				}
				m.selected = it.h
				m.scr = screenMember
				return m, nil
			}

		case "esc", "b":
			switch m.scr {
			case screenMember:
				m.scr = screenMembers
				m.selected = nil
				return m, nil
			case screenMembers:
				m = m.home()
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	switch m.scr {
	case screenHome:
		m.menu, cmd = m.menu.Update(msg)
	case screenMembers:
		m.members, cmd = m.members.Update(msg)
	}
	return m, cmd
}

func (m model) home() model {
	m.scr = screenHome
	m.familyPath = ""
	m.tree = nil
	m.selected = nil
	return m
}

func (m model) logger() *slog.Logger {
	if m.deps.Logger == nil {
		return slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return m.deps.Logger
}

func (m model) filtering() bool {
	switch m.scr {
	case screenHome:
		return m.menu.FilterState() == list.Filtering
	case screenMembers:
		return m.members.FilterState() == list.Filtering
	}
	return false
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("Genesis") + "\n" +
		m.theme.Subtitle.Render("Family trees rooted at Adam and Eve") + "\n"

	var workspaceBanner string
	switch {
	case m.workspaceFound:
		workspaceBanner = m.theme.Help.Render(fmt.Sprintf("Workspace: %s", m.workspaceRoot))
	case m.loading:
		workspaceBanner = m.theme.Help.Render("Looking for a workspace…")
	default:
		workspaceBanner = m.theme.Card.Render(noWorkspaceText(m.cwd, m.workspaceErr))
	}

	status := ""
	if m.toast != "" {
		status = "\n" + m.theme.Toast.Render(m.toast)
	}

	switch m.scr {
	case screenHome:
		help := m.theme.Help.Render("↑/↓ navigate • enter open • / search • r reload • q quit")
		body := header + "\n" + workspaceBanner
		if m.workspaceFound {
			body += "\n\n" + m.theme.Card.Render(m.menu.View())
		}
		return wrap.Render(body + status + "\n" + help)

	case screenMembers:
		help := m.theme.Help.Render("↑/↓ navigate • enter details • / search • esc/b back • q home")
		source := m.theme.Help.Render("Family file: " + m.familyPath)
		return wrap.Render(header + "\n" + workspaceBanner + "\n" + source + "\n\n" + m.theme.Card.Render(m.members.View()) + status + "\n" + help)

	case screenMember:
		if m.selected == nil {
			return wrap.Render(header + "\n" + "no member selected")
		}
		title := m.theme.Title.Render(m.selected.Name())
		if domain.IsSeed(m.selected) {
			title += " " + m.theme.Seed.Render("seed")
		}
		card := m.theme.Card.Render(
			fmt.Sprintf("%s\n\n%s\n%s",
				title,
				renderMemberCard(m.selected, m.tree),
				m.theme.Help.Render("esc/b back • q home"),
			),
		)
		return wrap.Render(header + "\n" + workspaceBanner + "\n\n" + card)

	default:
		return wrap.Render(header + "\n" + "unknown state")
	}
}

func noWorkspaceText(cwd string, err error) string {
	text := "⚠ No workspace found"
	if cwd != "" {
		text += " from " + cwd
	}
	text += ".\n\nCreate one with `genesis init`."

	if err != nil && !domain.IsKind(err, domain.KindNotFound) {
		text += "\n\n" + userMessage(err) + ": " + err.Error()
	}
	return text
}
