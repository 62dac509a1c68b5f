package holidays

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/m04kA/SMC-StudioSchedule/internal/domain"
)

// Client клиент внешнего календаря праздников
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента календаря
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetHolidays получает праздники за диапазон дат
func (c *Client) GetHolidays(ctx context.Context, rng domain.DateRange) ([]domain.Holiday, error) {
	q := url.Values{}
	q.Set("from", rng.From.Format(domain.DateFormat))
	q.Set("to", rng.To.Format(domain.DateFormat))
	endpoint := fmt.Sprintf("%s/holidays?%s", c.baseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var dtos []HolidayDTO
	if err := json.NewDecoder(resp.Body).Decode(&dtos); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	result := make([]domain.Holiday, 0, len(dtos))
	for _, dto := range dtos {
		h, ok := fromDTO(dto)
		if !ok {
			c.log.Warn("GetHolidays: skipping malformed holiday date=%q scope=%q", dto.Date, dto.Scope)
			continue
		}
		if rng.Contains(h.Date) {
			result = append(result, h)
		}
	}
	return result, nil
}

func fromDTO(dto HolidayDTO) (domain.Holiday, bool) {
	date, err := domain.ParseDate(dto.Date)
	if err != nil {
		return domain.Holiday{}, false
	}
	scope := domain.HolidayScope(dto.Scope)
	switch scope {
	case domain.HolidayNational, domain.HolidayMunicipal, domain.HolidayCustom:
	default:
		return domain.Holiday{}, false
	}
	return domain.Holiday{Date: date, Scope: scope, Name: dto.Name}, true
}

func toDTO(h domain.Holiday) HolidayDTO {
	return HolidayDTO{
		Date:  h.Date.Format(domain.DateFormat),
		Scope: string(h.Scope),
		Name:  h.Name,
	}
}
