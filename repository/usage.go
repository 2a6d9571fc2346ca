package repository

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/pkg/errors"

	"denku.com/billing/models"
)

// UsageRepository reads the continuously recomputed InvoicePreview from the
// internal usage aggregation API. This service never writes usage data.
type UsageRepository interface {
	GetInvoicePreview(workspaceId int, month string) (*models.InvoicePreview, error)
}

type UsageService struct {
	client *http.Client
}

func NewUsageRepository() UsageRepository {
	return &UsageService{client: &http.Client{Timeout: 30 * time.Second}}
}

func (us *UsageService) GetInvoicePreview(workspaceId int, month string) (*models.InvoicePreview, error) {
	apiUrl := fmt.Sprintf("%s/billing/invoicePreview?workspace_id=%d&month=%s", os.Getenv("API_URL"), workspaceId, month)
	req, err := http.NewRequest("GET", apiUrl, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Denku-Api-Token", os.Getenv("DENKU_KEY"))
	req.Header.Set("Content-Type", "application/json")

	resp, err := us.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "could not fetch invoice preview")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("invoice preview API returned status: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var preview models.InvoicePreview
	if err := json.Unmarshal(body, &preview); err != nil {
		return nil, errors.Wrap(err, "could not decode invoice preview")
	}
	return &preview, nil
}
