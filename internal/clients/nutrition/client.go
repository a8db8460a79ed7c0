package nutrition

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/ferndale/nutritrack-backend/internal/logger"
	"github.com/ferndale/nutritrack-backend/internal/utils"
)

// FoodItem is one nutrition record as returned by the provider.
type FoodItem struct {
	Name                string  `json:"name"`
	Calories            float64 `json:"calories"`
	ServingSizeG        float64 `json:"serving_size_g"`
	FatTotalG           float64 `json:"fat_total_g"`
	FatSaturatedG       float64 `json:"fat_saturated_g"`
	ProteinG            float64 `json:"protein_g"`
	SodiumMg            int     `json:"sodium_mg"`
	PotassiumMg         int     `json:"potassium_mg"`
	CholesterolMg       int     `json:"cholesterol_mg"`
	CarbohydratesTotalG float64 `json:"carbohydrates_total_g"`
	FiberG              float64 `json:"fiber_g"`
	SugarG              float64 `json:"sugar_g"`
}

// Client resolves a free-text meal name into nutrition records. An empty
// slice with a nil error means the provider knows no ingredients for the
// name; that is distinct from a transport failure.
type Client interface {
	Lookup(ctx context.Context, mealName string) ([]FoodItem, error)
}

type client struct {
	log        *logger.Logger
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(log *logger.Logger) Client {
	clientLog := log.With("client", "NutritionClient")
	baseURL := utils.GetEnv("NUTRITION_API_BASE_URL", "https://api.api-ninjas.com/v1/nutrition", log)
	apiKey := utils.GetEnv("NUTRITION_API_KEY", "", log)
	timeoutSeconds := utils.GetEnvAsInt("NUTRITION_API_TIMEOUT", 10, log)
	return &client{
		log:     clientLog,
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: time.Duration(timeoutSeconds) * time.Second,
		},
	}
}

func (c *client) Lookup(ctx context.Context, mealName string) ([]FoodItem, error) {
	reqURL := fmt.Sprintf("%s?query=%s", c.baseURL, url.QueryEscape(mealName))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build nutrition request: %w", err)
	}
	req.Header.Set("X-Api-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("nutrition lookup: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read nutrition response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Error("Nutrition provider returned non-2xx", "status", resp.StatusCode, "body", string(body))
		return nil, fmt.Errorf("nutrition lookup: unexpected status %d", resp.StatusCode)
	}

	var items []FoodItem
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, fmt.Errorf("decode nutrition response: %w", err)
	}
	return items, nil
}
