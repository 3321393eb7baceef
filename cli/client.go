package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// ApiClient handles API requests to the Larder back-office API
type ApiClient struct {
	httpClient *http.Client
	BaseURL    string
	UseMock    bool
}

// NewApiClient creates a new API client
func NewApiClient() *ApiClient {
	baseURL := os.Getenv("LARDER_API_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	client := &ApiClient{
		httpClient: &http.Client{
			Timeout: time.Second * 10,
		},
		BaseURL: baseURL,
		UseMock: false, // Default to trying the real server first
	}

	// Verify connectivity - if server is not available, use mock data
	if !client.ping() {
		fmt.Printf("Warning: API server at %s is not available. Using mock data.\n", baseURL)
		client.UseMock = true
	}

	return client
}

// ping checks if the API server is available
func (c *ApiClient) ping() bool {
	resp, err := c.httpClient.Get(c.BaseURL + "/health")
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

// InventoryItem mirrors the server's inventory shape
type InventoryItem struct {
	ID       uint    `json:"ID"`
	Name     string  `json:"Name"`
	Category string  `json:"Category"`
	Unit     string  `json:"Unit"`
	Quantity float64 `json:"Quantity"`
	MinLevel float64 `json:"MinLevel"`
}

// ItemSale is one line of the sales report
type ItemSale struct {
	ItemName     string  `json:"item_name"`
	QuantitySold float64 `json:"quantity_sold"`
	Revenue      float64 `json:"revenue"`
}

// SalesSummary mirrors the server's reporting shape
type SalesSummary struct {
	Revenue      float64    `json:"revenue"`
	ItemSales    []ItemSale `json:"item_sales"`
	FoodCost     float64    `json:"food_cost"`
	LaborCost    float64    `json:"labor_cost"`
	Expenses     float64    `json:"expenses"`
	LoanPayments float64    `json:"loan_payments"`
	FoodCostPct  float64    `json:"food_cost_pct"`
	LaborCostPct float64    `json:"labor_cost_pct"`
	PrimeCostPct float64    `json:"prime_cost_pct"`
}

// BuildIngredient is one ingredient of a recipe build request
type BuildIngredient struct {
	Name      string   `json:"name"`
	Weight    *float64 `json:"weight,omitempty"`
	LockedQty *float64 `json:"lockedQty,omitempty"`
}

// BuildRequest is a recipe budget build request
type BuildRequest struct {
	SalesPrice        float64           `json:"salesPrice"`
	TargetFoodCostPct float64           `json:"targetFoodCostPct"`
	Ingredients       []BuildIngredient `json:"ingredients"`
	Strategy          string            `json:"strategy,omitempty"`
}

// BuildLine is one allocated ingredient of a build result
type BuildLine struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Cost     float64 `json:"cost"`
}

// BuildResult is the allocation returned by the server
type BuildResult struct {
	Ingredients    []BuildLine `json:"ingredients"`
	TotalCost      float64     `json:"totalCost"`
	CostPercentage float64     `json:"costPercentage"`
	OverBudget     bool        `json:"overBudget"`
}

// GetInventory fetches the current inventory
func (c *ApiClient) GetInventory() ([]InventoryItem, error) {
	if c.UseMock {
		return mockInventory(), nil
	}

	var items []InventoryItem
	if err := c.getJSON("/api/v1/inventory", &items); err != nil {
		return nil, err
	}
	return items, nil
}

// GetSalesSummary fetches the sales report for the last n days
func (c *ApiClient) GetSalesSummary(days int) (*SalesSummary, error) {
	if c.UseMock {
		return mockSummary(), nil
	}

	var summary SalesSummary
	path := fmt.Sprintf("/api/v1/reports/sales?days=%d", days)
	if err := c.getJSON(path, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// GetInsights fetches insight text for the last n days
func (c *ApiClient) GetInsights(days int) (string, error) {
	if c.UseMock {
		return "Mock insight: prime cost is healthy this week.", nil
	}

	var payload struct {
		Insights string `json:"insights"`
	}
	path := fmt.Sprintf("/api/v1/insights?days=%d", days)
	if err := c.getJSON(path, &payload); err != nil {
		return "", err
	}
	return payload.Insights, nil
}

// BuildRecipe asks the server to allocate an ingredient budget
func (c *ApiClient) BuildRecipe(req BuildRequest) (*BuildResult, error) {
	if c.UseMock {
		return mockBuild(req), nil
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(c.BaseURL+"/api/v1/recipes/build", "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("build failed with status %d: %s", resp.StatusCode, string(data))
	}

	var result BuildResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *ApiClient) getJSON(path string, out interface{}) error {
	resp, err := c.httpClient.Get(c.BaseURL + path)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(data))
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// Mock data used when the API server is unreachable

func mockInventory() []InventoryItem {
	return []InventoryItem{
		{ID: 1, Name: "Chicken", Category: "protein", Unit: "kg", Quantity: 12, MinLevel: 5},
		{ID: 2, Name: "Cheese", Category: "dairy", Unit: "kg", Quantity: 4, MinLevel: 2},
		{ID: 3, Name: "Lettuce", Category: "produce", Unit: "kg", Quantity: 3, MinLevel: 1},
		{ID: 4, Name: "Flour", Category: "dry_goods", Unit: "kg", Quantity: 25, MinLevel: 10},
	}
}

func mockSummary() *SalesSummary {
	return &SalesSummary{
		Revenue:      12480,
		FoodCost:     3744,
		LaborCost:    4368,
		Expenses:     1500,
		LoanPayments: 800,
		FoodCostPct:  30,
		LaborCostPct: 35,
		PrimeCostPct: 65,
		ItemSales: []ItemSale{
			{ItemName: "Burger", QuantitySold: 420, Revenue: 5040},
			{ItemName: "Club Sandwich", QuantitySold: 260, Revenue: 3250},
			{ItemName: "Fries", QuantitySold: 380, Revenue: 1520},
		},
	}
}

func mockBuild(req BuildRequest) *BuildResult {
	pct := req.TargetFoodCostPct
	if pct == 0 {
		pct = 30
	}
	budget := req.SalesPrice * pct / 100

	result := &BuildResult{}
	if len(req.Ingredients) == 0 {
		return result
	}

	share := budget / float64(len(req.Ingredients))
	for _, ing := range req.Ingredients {
		result.Ingredients = append(result.Ingredients, BuildLine{Name: ing.Name, Quantity: share, Cost: share})
		result.TotalCost += share
	}
	if req.SalesPrice > 0 {
		result.CostPercentage = result.TotalCost / req.SalesPrice * 100
	}
	return result
}
