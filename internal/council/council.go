package council

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/iurnickita/binday/internal/council/config"
	"github.com/iurnickita/binday/internal/model"
)

const (
	DefaultAPIAddr = "https://servicelayer3c.azure-api.net/wastecalendar/"

	addressSearchPath    = "address/search/"
	collectionSearchPath = "collection/search/"
)

// Client обращается к сервису календаря вывоза отходов.
type Client interface {
	AddressSearch(ctx context.Context, postcode string) ([]model.Address, error)
	CollectionSearch(ctx context.Context, id model.AddressID, numberOfCollections int) (*model.Schedule, error)
}

type client struct {
	resty   *resty.Client
	limiter *rate.Limiter
	zaplog  *zap.Logger
}

func NewClient(cfg config.Config, zaplog *zap.Logger) Client {
	addr := cfg.APIAddr
	if addr == "" {
		addr = DefaultAPIAddr
	}
	rc := resty.New().SetBaseURL(addr)
	if cfg.Timeout > 0 {
		rc.SetTimeout(cfg.Timeout)
	}

	// без ограничения, если интервал не задан
	limit := rate.Inf
	if cfg.RateLimit > 0 {
		limit = rate.Every(cfg.RateLimit)
	}

	return &client{
		resty:   rc,
		limiter: rate.NewLimiter(limit, 1),
		zaplog:  zaplog,
	}
}

func (c *client) AddressSearch(ctx context.Context, postcode string) ([]model.Address, error) {
	body, err := c.get(ctx, addressSearchPath, map[string]string{"postcode": postcode})
	if err != nil {
		return nil, err
	}

	var addresses []model.Address
	if err = json.Unmarshal(body, &addresses); err != nil {
		return nil, fmt.Errorf("address search response: %w", err)
	}
	return addresses, nil
}

func (c *client) CollectionSearch(ctx context.Context, id model.AddressID, numberOfCollections int) (*model.Schedule, error) {
	path := collectionSearchPath + string(id) + "/"
	body, err := c.get(ctx, path, map[string]string{"numberOfCollections": strconv.Itoa(numberOfCollections)})
	if err != nil {
		return nil, err
	}

	var schedule model.Schedule
	if err = json.Unmarshal(body, &schedule); err != nil {
		c.zaplog.Debug("collection search returned unparseable body",
			zap.String("id", string(id)),
			zap.String("body", string(body)),
		)
		return nil, fmt.Errorf("collection search response: %w", err)
	}
	return &schedule, nil
}

func (c *client) get(ctx context.Context, path string, query map[string]string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	start := time.Now()
	resp, err := c.resty.R().
		SetContext(ctx).
		SetQueryParams(query).
		Get(path)
	if err != nil {
		return nil, err
	}

	c.zaplog.Debug("council request",
		zap.String("url", resp.Request.URL),
		zap.Int("code", resp.StatusCode()),
		zap.Duration("duration", time.Since(start)),
	)

	switch resp.StatusCode() {
	case http.StatusOK:
		return resp.Body(), nil
	default:
		return nil, fmt.Errorf("council request %s status: %d", path, resp.StatusCode())
	}
}
