// Package tui provides the interactive Bubble Tea dashboard for wishplan.
package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"wishplan/internal/cli"
	"wishplan/internal/config"
	"wishplan/internal/model"
	"wishplan/internal/planner"
	"wishplan/internal/store"
	"wishplan/internal/tui/components"
	"wishplan/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

const (
	tabOverview = iota
	tabWishlist
	tabPlan
	tabHistory
)

const (
	minTerminalWidth = 70
	maxContentWidth  = 120
	historyEntries   = 10
)

// addValues holds the add-item form inputs. Shared by pointer so form
// bindings survive Bubble Tea's model copying.
type addValues struct {
	name     string
	target   string
	months   string
	priority int
}

// App is the root Bubble Tea model.
type App struct {
	store *store.Store
	cfg   config.Config

	state   *model.AppState
	loadErr error

	width  int
	height int

	activeTab int
	status    string

	// Add-item form, opened with 'n'.
	addForm *huh.Form
	addVals *addValues

	// Pending apply confirmation on the Plan tab.
	confirmApply bool
}

// NewApp loads the planner state and builds the dashboard model. The
// state file is one small document, so loading is synchronous.
func NewApp(s *store.Store, cfg config.Config) App {
	a := App{store: s, cfg: cfg}
	a.state, a.loadErr = s.Load()
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		if a.addForm != nil {
			return a.updateAddForm(msg)
		}
		return a.handleKey(msg)
	}

	// Forward everything else to an active form (cursor blinks, etc.)
	if a.addForm != nil {
		return a.updateAddForm(msg)
	}

	return a, nil
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.confirmApply {
		switch msg.String() {
		case "y", "enter":
			a.commitAllocation()
		case "n", "esc":
			a.status = "취소됨"
		default:
			return a, nil
		}
		a.confirmApply = false
		return a, nil
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return a, tea.Quit

	case "tab":
		a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		a.status = ""
	case "shift+tab":
		a.activeTab = (a.activeTab + len(components.Tabs) - 1) % len(components.Tabs)
		a.status = ""

	case "1", "2", "3", "4":
		a.activeTab = int(msg.String()[0] - '1')
		a.status = ""

	case "n":
		form, vals := newAddForm(a.cfg.Planner)
		a.addForm = form
		a.addVals = vals
		return a, form.Init()

	case "a":
		if a.activeTab == tabPlan && a.loadErr == nil {
			rows, _ := planner.Allocate(planner.CalculateUsable(a.state.Profile), a.state.Wishlist)
			if len(rows) == 0 {
				a.status = "적용 가능한 할당이 없습니다."
			} else {
				a.confirmApply = true
			}
		}

	case "r":
		a.state, a.loadErr = a.store.Load()
		if a.loadErr == nil {
			a.status = "다시 불러옴"
		}

	default:
		if idx := components.TabIdxByKey(keyRune(msg)); idx >= 0 {
			a.activeTab = idx
			a.status = ""
		}
	}

	return a, nil
}

func keyRune(msg tea.KeyMsg) rune {
	if len(msg.Runes) == 1 {
		return msg.Runes[0]
	}
	return 0
}

func (a App) updateAddForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.addForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.addForm = f
	}

	if a.addForm.State == huh.StateCompleted {
		a.commitNewItem()
		a.addForm = nil
		a.addVals = nil
		return a, nil
	}

	if a.addForm.State == huh.StateAborted {
		a.status = "취소됨"
		a.addForm = nil
		a.addVals = nil
		return a, nil
	}

	return a, cmd
}

// newAddForm builds the add-item form prefilled with config defaults.
func newAddForm(def config.PlannerConfig) (*huh.Form, *addValues) {
	vals := &addValues{
		target:   cli.FormatAmount(def.DefaultTarget),
		months:   fmt.Sprintf("%d", def.DefaultMonths),
		priority: def.DefaultPriority,
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("물건 이름").
				Value(&vals.name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("이름을 입력하세요")
					}
					return nil
				}),
			huh.NewInput().
				Title("목표 금액 (원)").
				Value(&vals.target).
				Validate(cli.ValidateAmount),
			huh.NewInput().
				Title("목표 기간 (개월)").
				Value(&vals.months).
				Validate(func(s string) error {
					v, err := cli.ParseAmount(s)
					if err != nil || v < 1 {
						return errors.New("1 이상의 정수를 입력하세요")
					}
					return nil
				}),
			huh.NewSelect[int]().
				Title("우선순위 (1:높음)").
				Options(
					huh.NewOption("1 (가장 높음)", 1),
					huh.NewOption("2", 2),
					huh.NewOption("3", 3),
					huh.NewOption("4", 4),
					huh.NewOption("5 (가장 낮음)", 5),
				).
				Value(&vals.priority),
		),
	)

	return form, vals
}

func (a *App) commitNewItem() {
	if a.loadErr != nil || a.addVals == nil {
		return
	}

	target, _ := cli.ParseAmount(a.addVals.target)
	months, _ := cli.ParseAmount(a.addVals.months)
	it := planner.AddItem(a.state, strings.TrimSpace(a.addVals.name), target, months, a.addVals.priority, time.Now())

	if err := a.store.Save(a.state); err != nil {
		a.status = fmt.Sprintf("저장 실패: %v", err)
		return
	}
	a.status = fmt.Sprintf("'%s' 추가됨", it.Name)
	a.activeTab = tabWishlist
}

func (a *App) commitAllocation() {
	rows, _ := planner.Allocate(planner.CalculateUsable(a.state.Profile), a.state.Wishlist)
	planner.ApplyAllocation(a.state, rows, time.Now())

	if err := a.store.Save(a.state); err != nil {
		a.status = fmt.Sprintf("저장 실패: %v", err)
		return
	}

	// Mirror to the archive; the JSON log stays authoritative.
	if arch, err := store.OpenArchive(store.ArchivePath(a.store.Path())); err == nil {
		_ = arch.Append(a.state.Transactions[len(a.state.Transactions)-1])
		_ = arch.Close()
	}

	a.status = "이번 달 할당이 반영되었습니다."
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return fmt.Sprintf("\n  Terminal too narrow (%d cols)\n\n  wishplan needs at least %d columns.\n", a.width, minTerminalWidth)
	}

	if a.loadErr != nil {
		t := theme.Active
		errStyle := lipgloss.NewStyle().Foreground(t.Red)
		return "\n" + errStyle.Render(fmt.Sprintf("  상태 파일을 읽을 수 없습니다: %v", a.loadErr)) + "\n\n  q to quit\n"
	}

	if a.addForm != nil {
		return a.addForm.View()
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(a.renderHeader())
	b.WriteString("\n")
	b.WriteString(components.RenderTabBar(a.activeTab))
	b.WriteString("\n\n")

	cw := a.contentWidth()
	switch a.activeTab {
	case tabOverview:
		b.WriteString(a.renderOverviewTab(cw))
	case tabWishlist:
		b.WriteString(a.renderWishlistTab(cw))
	case tabPlan:
		b.WriteString(a.renderPlanTab(cw))
	case tabHistory:
		b.WriteString(a.renderHistoryTab(cw))
	}

	b.WriteString("\n")
	b.WriteString(a.renderFooter())
	return b.String()
}

func (a App) renderHeader() string {
	t := theme.Active
	title := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	sub := lipgloss.NewStyle().Foreground(t.TextDim)
	return " " + title.Render("wishplan") + "  " + sub.Render("사고싶은 물건 저축 플래너")
}

func (a App) renderFooter() string {
	t := theme.Active
	dim := lipgloss.NewStyle().Foreground(t.TextDim)
	accent := lipgloss.NewStyle().Foreground(t.Accent)

	if a.confirmApply {
		return " " + accent.Render("이번 달 할당을 반영할까요?") + dim.Render("  y 반영 · n 취소")
	}

	line := " " + dim.Render("tab/1-4 탭 이동 · n 물건 추가 · a 할당 적용 · r 새로고침 · q 종료")
	if a.status != "" {
		line += "\n " + accent.Render(a.status)
	}
	return line
}
