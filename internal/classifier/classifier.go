package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/shenikar/crime_radar/internal/config"
	"github.com/shenikar/crime_radar/internal/models"
	"github.com/shenikar/crime_radar/internal/service"
)

// HTTPClassifier - клиент внешнего сервиса классификации тяжести.
// Любой сбой (сеть, таймаут, неизвестная категория) дает uncategorized:
// вызывающая сторона не должна блокировать создание отчета из-за
// классификатора.
type HTTPClassifier struct {
	url        string
	httpClient *http.Client
}

func NewHTTPClassifier(cfg *config.Config) service.Classifier {
	return &HTTPClassifier{
		url: cfg.ClassifierURL,
		httpClient: &http.Client{
			Timeout: cfg.ClassifierTimeout,
		},
	}
}

type classifyRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type classifyResponse struct {
	Category string `json:"category"`
}

// Classify запрашивает у внешнего сервиса категорию для отчета
func (c *HTTPClassifier) Classify(ctx context.Context, title, description string) (models.Category, error) {
	if c.url == "" {
		return models.CategoryUncategorized, fmt.Errorf("classifier URL is not configured")
	}

	payload, err := json.Marshal(classifyRequest{Title: title, Description: description})
	if err != nil {
		return models.CategoryUncategorized, fmt.Errorf("failed to marshal classify request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewBuffer(payload))
	if err != nil {
		return models.CategoryUncategorized, fmt.Errorf("failed to create classify request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return models.CategoryUncategorized, fmt.Errorf("failed to call classifier: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return models.CategoryUncategorized, fmt.Errorf("classifier returned status %d", resp.StatusCode)
	}

	var out classifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return models.CategoryUncategorized, fmt.Errorf("failed to decode classifier response: %w", err)
	}

	return models.ParseCategory(out.Category), nil
}
