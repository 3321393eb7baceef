package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Styling
var (
	docStyle = lipgloss.NewStyle().Margin(1, 2)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#30d158")).
			Padding(0, 1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#ff453a")).
			Padding(0, 1)
)

// Model defines the application state
type Model struct {
	mainMenu      list.Model
	inventoryView table.Model
	reportView    table.Model
	buildView     table.Model
	summary       *SalesSummary
	insightText   string
	buildInput    textinput.Model
	buildResult   *BuildResult
	spinner       spinner.Model
	client        *ApiClient
	loading       bool
	currentView   string
	error         string
}

// item represents a list item
type item struct {
	title, desc string
}

// FilterValue implements list.Item interface
func (i item) FilterValue() string { return i.title }

// Title implements list.Item interface
func (i item) Title() string { return i.title }

// Description implements list.Item interface
func (i item) Description() string { return i.desc }

// Initialize the model
func initialModel() Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	items := []list.Item{
		item{title: "Inventory", desc: "View stocked ingredients"},
		item{title: "Sales Report", desc: "Revenue and cost breakdown"},
		item{title: "Insights", desc: "Narrative commentary on recent figures"},
		item{title: "Recipe Build", desc: "Allocate an ingredient budget for a dish"},
		item{title: "Exit", desc: "Exit the application"},
	}

	mainMenu := list.New(items, list.NewDefaultDelegate(), 0, 0)
	mainMenu.Title = "Larder Back Office"

	inventoryView := table.New(
		table.WithColumns([]table.Column{
			{Title: "Name", Width: 20},
			{Title: "Category", Width: 12},
			{Title: "On Hand", Width: 10},
			{Title: "Unit", Width: 6},
			{Title: "Min", Width: 8},
		}),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	reportView := table.New(
		table.WithColumns([]table.Column{
			{Title: "Item", Width: 22},
			{Title: "Sold", Width: 8},
			{Title: "Revenue", Width: 12},
		}),
		table.WithFocused(true),
		table.WithHeight(10),
	)

	buildView := table.New(
		table.WithColumns([]table.Column{
			{Title: "Ingredient", Width: 20},
			{Title: "Quantity", Width: 12},
			{Title: "Cost", Width: 10},
		}),
		table.WithHeight(8),
	)

	ti := textinput.New()
	ti.Placeholder = "price ingredient:weight ingredient=lockedQty ..."
	ti.CharLimit = 156
	ti.Width = 60

	return Model{
		mainMenu:      mainMenu,
		inventoryView: inventoryView,
		reportView:    reportView,
		buildView:     buildView,
		buildInput:    ti,
		spinner:       s,
		client:        NewApiClient(),
		currentView:   "main",
	}
}

// Messages produced by API commands

type inventoryMsg []InventoryItem

type reportMsg struct {
	summary *SalesSummary
}

type insightsMsg string

type buildMsg struct {
	result *BuildResult
}

type errMsg struct {
	err error
}

func fetchInventory(client *ApiClient) tea.Cmd {
	return func() tea.Msg {
		items, err := client.GetInventory()
		if err != nil {
			return errMsg{err}
		}
		return inventoryMsg(items)
	}
}

func fetchReport(client *ApiClient) tea.Cmd {
	return func() tea.Msg {
		summary, err := client.GetSalesSummary(30)
		if err != nil {
			return errMsg{err}
		}
		return reportMsg{summary}
	}
}

func fetchInsights(client *ApiClient) tea.Cmd {
	return func() tea.Msg {
		text, err := client.GetInsights(30)
		if err != nil {
			return errMsg{err}
		}
		return insightsMsg(text)
	}
}

func submitBuild(client *ApiClient, req BuildRequest) tea.Cmd {
	return func() tea.Msg {
		result, err := client.BuildRecipe(req)
		if err != nil {
			return errMsg{err}
		}
		return buildMsg{result}
	}
}

// parseBuildLine turns "12.50 Chicken:0.5 Cheese:0.3 Bread=2" into a
// build request: ':' sets a weight, '=' locks a quantity, a bare name
// shares evenly.
func parseBuildLine(line string) (BuildRequest, error) {
	fields := strings.Fields(strings.TrimSpace(line))
	if len(fields) < 2 {
		return BuildRequest{}, fmt.Errorf("need a price and at least one ingredient")
	}

	price, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return BuildRequest{}, fmt.Errorf("bad price %q", fields[0])
	}

	req := BuildRequest{SalesPrice: price}
	for _, field := range fields[1:] {
		switch {
		case strings.Contains(field, "="):
			parts := strings.SplitN(field, "=", 2)
			qty, err := strconv.ParseFloat(parts[1], 64)
			if err != nil {
				return BuildRequest{}, fmt.Errorf("bad locked quantity in %q", field)
			}
			req.Ingredients = append(req.Ingredients, BuildIngredient{Name: parts[0], LockedQty: &qty})
		case strings.Contains(field, ":"):
			parts := strings.SplitN(field, ":", 2)
			weight, err := strconv.ParseFloat(parts[1], 64)
			if err != nil {
				return BuildRequest{}, fmt.Errorf("bad weight in %q", field)
			}
			req.Ingredients = append(req.Ingredients, BuildIngredient{Name: parts[0], Weight: &weight})
		default:
			req.Ingredients = append(req.Ingredients, BuildIngredient{Name: field})
		}
	}
	return req, nil
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, tea.EnterAltScreen)
}

// Update handles UI updates
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "q":
			if m.currentView == "main" {
				return m, tea.Quit
			}
		case "enter":
			switch m.currentView {
			case "main":
				selected, ok := m.mainMenu.SelectedItem().(item)
				if !ok {
					break
				}
				switch selected.title {
				case "Exit":
					return m, tea.Quit
				case "Inventory":
					m.currentView = "inventory"
					m.loading = true
					m.error = ""
					return m, fetchInventory(m.client)
				case "Sales Report":
					m.currentView = "report"
					m.loading = true
					m.error = ""
					return m, fetchReport(m.client)
				case "Insights":
					m.currentView = "insights"
					m.loading = true
					m.error = ""
					return m, fetchInsights(m.client)
				case "Recipe Build":
					m.currentView = "build"
					m.buildResult = nil
					m.error = ""
					m.buildInput.Focus()
					return m, textinput.Blink
				}
			case "build":
				req, err := parseBuildLine(m.buildInput.Value())
				if err != nil {
					m.error = err.Error()
					break
				}
				m.loading = true
				m.error = ""
				return m, submitBuild(m.client, req)
			}
		case "esc":
			if m.currentView != "main" {
				m.currentView = "main"
				m.error = ""
			}
		}

	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.mainMenu.SetSize(msg.Width-h, msg.Height-v)

	case inventoryMsg:
		m.loading = false
		rows := make([]table.Row, 0, len(msg))
		for _, it := range msg {
			rows = append(rows, table.Row{
				it.Name,
				it.Category,
				fmt.Sprintf("%.1f", it.Quantity),
				it.Unit,
				fmt.Sprintf("%.1f", it.MinLevel),
			})
		}
		m.inventoryView.SetRows(rows)

	case reportMsg:
		m.loading = false
		m.summary = msg.summary
		rows := make([]table.Row, 0, len(msg.summary.ItemSales))
		for _, sale := range msg.summary.ItemSales {
			rows = append(rows, table.Row{
				sale.ItemName,
				fmt.Sprintf("%.0f", sale.QuantitySold),
				fmt.Sprintf("$%.2f", sale.Revenue),
			})
		}
		m.reportView.SetRows(rows)

	case insightsMsg:
		m.loading = false
		m.insightText = string(msg)

	case buildMsg:
		m.loading = false
		m.buildResult = msg.result
		rows := make([]table.Row, 0, len(msg.result.Ingredients))
		for _, line := range msg.result.Ingredients {
			rows = append(rows, table.Row{
				line.Name,
				fmt.Sprintf("%.3f", line.Quantity),
				fmt.Sprintf("$%.2f", line.Cost),
			})
		}
		m.buildView.SetRows(rows)

	case errMsg:
		m.loading = false
		m.error = msg.err.Error()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	switch m.currentView {
	case "main":
		m.mainMenu, cmd = m.mainMenu.Update(msg)
	case "inventory":
		m.inventoryView, cmd = m.inventoryView.Update(msg)
	case "report":
		m.reportView, cmd = m.reportView.Update(msg)
	case "build":
		m.buildInput, cmd = m.buildInput.Update(msg)
	}
	return m, cmd
}

// View renders the current view
func (m Model) View() string {
	if m.loading {
		return docStyle.Render(fmt.Sprintf("%s Loading...", m.spinner.View()))
	}

	var b strings.Builder
	switch m.currentView {
	case "main":
		return docStyle.Render(m.mainMenu.View())

	case "inventory":
		b.WriteString(titleStyle.Render("Inventory") + "\n\n")
		b.WriteString(m.inventoryView.View())
		b.WriteString("\n\nesc: back")

	case "report":
		b.WriteString(titleStyle.Render("Sales Report (30 days)") + "\n\n")
		if m.summary != nil {
			b.WriteString(fmt.Sprintf("Revenue: $%.2f   Food: %.1f%%   Labor: %.1f%%   Prime: %.1f%%\n\n",
				m.summary.Revenue, m.summary.FoodCostPct, m.summary.LaborCostPct, m.summary.PrimeCostPct))
		}
		b.WriteString(m.reportView.View())
		b.WriteString("\n\nesc: back")

	case "insights":
		b.WriteString(titleStyle.Render("Insights") + "\n\n")
		b.WriteString(m.insightText)
		b.WriteString("\n\nesc: back")

	case "build":
		b.WriteString(titleStyle.Render("Recipe Build") + "\n\n")
		b.WriteString("Example: 12.50 Chicken:0.5 Cheese:0.3 Bread=2\n\n")
		b.WriteString(m.buildInput.View())
		if m.buildResult != nil {
			b.WriteString("\n\n")
			b.WriteString(m.buildView.View())
			status := successStyle.Render(fmt.Sprintf("Total $%.2f (%.1f%% of price)",
				m.buildResult.TotalCost, m.buildResult.CostPercentage))
			if m.buildResult.OverBudget {
				status = errorStyle.Render(fmt.Sprintf("OVER BUDGET: $%.2f (%.1f%% of price)",
					m.buildResult.TotalCost, m.buildResult.CostPercentage))
			}
			b.WriteString("\n" + status)
		}
		b.WriteString("\n\nenter: build  esc: back")
	}

	if m.error != "" {
		b.WriteString("\n\n" + errorStyle.Render("Error: "+m.error))
	}
	return docStyle.Render(b.String())
}

func main() {
	p := tea.NewProgram(initialModel(), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}
