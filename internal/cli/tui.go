package cli

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/matzehuels/tempo/pkg/component"
	"github.com/matzehuels/tempo/pkg/event"
	"github.com/matzehuels/tempo/pkg/integrations/products"
	"github.com/matzehuels/tempo/pkg/presenter"
	"github.com/matzehuels/tempo/pkg/surface"
)

var (
	detailTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorWhite)
	detailPriceStyle = lipgloss.NewStyle().Bold(true).Foreground(colorRed)
	detailBoxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorDim).Padding(1, 2)
)

// settleDelay is how long an animated focus scroll takes before it lands.
const settleDelay = 150 * time.Millisecond

// chromeRows are the terminal rows used by the title and help lines.
const chromeRows = 2

// =============================================================================
// Messages
// =============================================================================

// applyMsg carries a presenter batch onto the program's event loop.
type applyMsg func()

type feedMsg struct{ list *products.List }

type feedErrMsg struct{ err error }

type settleMsg struct{}

// =============================================================================
// Sort Orders
// =============================================================================

type sortOrder int

const (
	sortFeed sortOrder = iota
	sortPrice
	sortTitle
	numSortOrders
)

func (o sortOrder) String() string {
	return [...]string{"feed order", "price", "title"}[o]
}

// sorted returns a copy of l in order o.
func (o sortOrder) sorted(l *products.List) *products.List {
	out := &products.List{Products: slices.Clone(l.Products)}
	switch o {
	case sortPrice:
		slices.SortStableFunc(out.Products, func(a, b products.Product) int {
			return cmp.Compare(a.RegularPrice.AmountInCents, b.RegularPrice.AmountInCents)
		})
	case sortTitle:
		slices.SortStableFunc(out.Products, func(a, b products.Product) int {
			return cmp.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title))
		})
	}
	return out
}

// matching returns the products of l whose title fuzzy-matches query.
func matching(l *products.List, query string) *products.List {
	if query == "" {
		return l
	}
	out := &products.List{}
	for _, p := range l.Products {
		if fuzzy.MatchFold(query, p.Title) {
			out.Products = append(out.Products, p)
		}
	}
	return out
}

// =============================================================================
// BrowseModel - Product feed browser
// =============================================================================

// BrowseModel is the bubbletea model of the browse command.
//
// The program's event loop is the presenter's main queue: batches are sent
// to the program as applyMsg and run in Update, so the surface is only ever
// touched from Update.
type BrowseModel struct {
	surface   *surface.Surface
	presenter *presenter.SectionPresenter
	fetch     func(refresh bool) (*products.List, error)
	copy      func(string) error

	list      *products.List
	order     sortOrder
	query     string
	filtering bool
	detail    *products.Item
	status    string
	err       error
	loading   bool
	quitting  bool
	width     int
	height    int
}

// NewBrowseModel creates the browser. fetch loads the feed; send delivers
// messages to the running program (tea.Program.Send).
func NewBrowseModel(fetch func(refresh bool) (*products.List, error), send func(tea.Msg), logger *log.Logger) *BrowseModel {
	m := &BrowseModel{fetch: fetch, copy: clipboard.WriteAll, loading: true}

	reg := component.Defaults()
	products.Register(reg, products.Component{OnSelect: func(p products.Item) {
		m.detail = &p
	}})
	m.surface = surface.New(reg, surface.WithLogger(logger))
	m.surface.Bus().Subscribe(event.UpdatesComplete, func(event.Event) {
		m.status = m.statusLine(m.surface.Snapshot().Len())
	})

	queue := presenter.QueueFunc(func(fn func()) { send(applyMsg(fn)) })
	m.presenter = presenter.New(m.surface, presenter.WithMainQueue(queue), presenter.WithLogger(logger))
	return m
}

// Close stops the presenter and tears down the surface.
func (m *BrowseModel) Close() {
	m.presenter.Close()
	m.surface.Close()
}

func (m *BrowseModel) load(refresh bool) tea.Cmd {
	m.loading = true
	return func() tea.Msg {
		list, err := m.fetch(refresh)
		if err != nil {
			return feedErrMsg{err}
		}
		return feedMsg{list}
	}
}

func (m *BrowseModel) present() {
	if m.list == nil {
		return
	}
	list := m.order.sorted(matching(m.list, m.query))
	m.presenter.Present(products.ViewState(list))
	m.status = m.statusLine(len(list.Products))
}

func (m *BrowseModel) statusLine(n int) string {
	line := fmt.Sprintf("%d products · %s", n, m.order)
	if m.query != "" {
		line += fmt.Sprintf(" · %q", m.query)
	}
	return line
}

func (m *BrowseModel) Init() tea.Cmd {
	return m.load(false)
}

func (m *BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case applyMsg:
		msg()
		if _, ok := m.surface.Focusing(); ok {
			return m, tea.Tick(settleDelay, func(time.Time) tea.Msg { return settleMsg{} })
		}
	case settleMsg:
		m.surface.Settle()
	case feedMsg:
		m.loading, m.err = false, nil
		m.list = msg.list
		m.present()
		if _, ok := m.surface.Cursor(); !ok {
			m.surface.MoveCursor(0)
		}
	case feedErrMsg:
		m.loading, m.err = false, msg.err
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.surface.Resize(msg.Width, max(msg.Height-chromeRows, 1))
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}
	return m, nil
}

func (m *BrowseModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.detail != nil {
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return tea.Quit
		case "esc", "backspace", "enter":
			m.detail = nil
		case "y":
			if err := m.copy(m.detail.ImageURL); err != nil {
				m.status = "copy failed: " + err.Error()
			} else {
				m.status = "copied image URL"
			}
		}
		return nil
	}
	if m.filtering {
		return m.handleFilterKey(msg)
	}

	page := max(m.height-chromeRows, 1)
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		m.quitting = true
		return tea.Quit
	case "up", "k":
		m.surface.MoveCursor(-1)
	case "down", "j":
		m.surface.MoveCursor(1)
	case "pgup":
		m.surface.Scroll(-page)
	case "pgdown", " ":
		m.surface.Scroll(page)
	case "enter":
		m.surface.Select()
	case "s":
		m.order = (m.order + 1) % numSortOrders
		m.present()
	case "/":
		m.filtering = true
	case "r":
		if !m.loading {
			return m.load(true)
		}
	}
	return nil
}

// handleFilterKey edits the title filter; every edit presents a new state.
func (m *BrowseModel) handleFilterKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyCtrlC:
		m.quitting = true
		return tea.Quit
	case tea.KeyEnter:
		m.filtering = false
		return nil
	case tea.KeyEsc:
		m.filtering = false
		m.query = ""
	case tea.KeyBackspace:
		if m.query == "" {
			return nil
		}
		r := []rune(m.query)
		m.query = string(r[:len(r)-1])
	case tea.KeySpace:
		m.query += " "
	case tea.KeyRunes:
		m.query += string(msg.Runes)
	default:
		return nil
	}
	m.present()
	return nil
}

func (m *BrowseModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(StyleTitle.Render("Deals"))
	if m.status != "" {
		b.WriteString("  " + StyleDim.Render(m.status))
	}
	b.WriteString("\n")

	switch {
	case m.err != nil:
		b.WriteString(styleIconError.Render(iconError) + " " + m.err.Error())
	case m.detail != nil:
		b.WriteString(m.detailView())
	case m.list == nil:
		b.WriteString(StyleDim.Render("Loading deals..."))
	default:
		b.WriteString(m.surface.View())
	}

	b.WriteString("\n")
	switch {
	case m.detail != nil:
		b.WriteString(StyleDim.Render("esc back  y copy image URL  q quit"))
	case m.filtering:
		b.WriteString(StyleValue.Render("/"+m.query) + StyleDim.Render("  ⏎ done  esc clear"))
	default:
		b.WriteString(StyleDim.Render("↑/↓ navigate  ⏎ open  / filter  s sort  r refresh  q quit"))
	}
	return b.String()
}

func (m *BrowseModel) detailView() string {
	p := m.detail
	width := max(m.width-detailBoxStyle.GetHorizontalFrameSize(), 20)
	body := lipgloss.JoinVertical(lipgloss.Left,
		detailTitleStyle.Width(width).Render(p.Title),
		detailPriceStyle.Render(p.Price),
		"",
		lipgloss.NewStyle().Width(width).Render(p.Description),
		"",
		StyleDim.Width(width).Render(p.ImageURL),
	)
	return detailBoxStyle.Render(body)
}
