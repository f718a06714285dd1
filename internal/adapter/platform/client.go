package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"mesa-campaigns/internal/core/domain"
	"mesa-campaigns/internal/core/port"
)

// Client is the HTTP implementation of port.AdPlatformClient. It speaks the
// platform's JSON envelope and converts every failure into a *domain.Error.
type Client struct {
	baseURL      string
	advertiserID string
	accessToken  string
	http         *http.Client
	pacer        *rate.Limiter
	logger       *slog.Logger
}

var _ port.AdPlatformClient = (*Client)(nil)

// Options configures a Client.
type Options struct {
	BaseURL      string
	AdvertiserID string
	AccessToken  string
	Timeout      time.Duration
	// RequestsPerSecond paces all outbound calls of the process. Zero
	// disables pacing.
	RequestsPerSecond float64
	HTTPClient        *http.Client
}

// NewClient returns a client for the platform at opts.BaseURL. When
// opts.HTTPClient is nil a client with opts.Timeout is created. A positive
// opts.RequestsPerSecond installs a token bucket shared by every call made
// through the returned client; its burst equals the rate rounded down, and
// at least one. A nil logger discards output.
func NewClient(opts Options, logger *slog.Logger) *Client {
	hc := opts.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: opts.Timeout}
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	c := &Client{
		baseURL:      strings.TrimRight(opts.BaseURL, "/"),
		advertiserID: opts.AdvertiserID,
		accessToken:  opts.AccessToken,
		http:         hc,
		logger:       logger,
	}
	if opts.RequestsPerSecond > 0 {
		burst := int(opts.RequestsPerSecond)
		if burst < 1 {
			burst = 1
		}
		c.pacer = rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), burst)
	}
	return c
}

type envelope struct {
	Code      int             `json:"code"`
	Subcode   int             `json:"subcode"`
	Message   string          `json:"message"`
	RequestID string          `json:"request_id"`
	Data      json.RawMessage `json:"data"`
}

func (c *Client) account(ctx context.Context) domain.PlatformAccount {
	acct, ok := port.AccountFrom(ctx)
	if !ok || acct.AdvertiserID == "" {
		acct.AdvertiserID = c.advertiserID
	}
	if acct.AccessToken == "" {
		acct.AccessToken = c.accessToken
	}
	return acct
}

// do sends one request and decodes the envelope's data into out.
func (c *Client) do(ctx context.Context, op, method, path string, query url.Values, body any, out any) error {
	if c.pacer != nil {
		if err := c.pacer.Wait(ctx); err != nil {
			return pacingError(ctx, op, err)
		}
	}
	acct := c.account(ctx)

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return &domain.Error{Kind: domain.KindInternal, Op: op, Message: "encode request", Err: err}
		}
		reader = bytes.NewReader(buf)
	}
	if query == nil {
		query = url.Values{}
	}
	query.Set("advertiser_id", acct.AdvertiserID)

	u := c.baseURL + path + "?" + query.Encode()
	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return &domain.Error{Kind: domain.KindInternal, Op: op, Message: "build request", Err: err}
	}
	req.Header.Set("Access-Token", acct.AccessToken)
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return transportError(op, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return transportError(op, err)
	}
	c.logger.Debug("platform call",
		slog.String("op", op),
		slog.Int("status", resp.StatusCode),
		slog.Duration("took", time.Since(started)))

	var env envelope
	if err = json.Unmarshal(raw, &env); err != nil {
		if resp.StatusCode >= 300 {
			return classify(op, resp.StatusCode, 0, 0, strings.TrimSpace(string(raw)))
		}
		return &domain.Error{Kind: domain.KindUpstreamUnavailable, Op: op, Message: "malformed response", Err: err}
	}
	if resp.StatusCode >= 300 || env.Code != 0 {
		return classify(op, resp.StatusCode, env.Code, env.Subcode, env.Message)
	}
	if out == nil || len(env.Data) == 0 {
		return nil
	}
	if err = json.Unmarshal(env.Data, out); err != nil {
		return &domain.Error{Kind: domain.KindUpstreamUnavailable, Op: op, Message: "malformed response data", Err: err}
	}
	return nil
}

func (c *Client) create(ctx context.Context, op, path, idField string, payload any) (string, error) {
	body, err := withAdvertiser(c.account(ctx).AdvertiserID, payload)
	if err != nil {
		return "", &domain.Error{Kind: domain.KindInternal, Op: op, Message: "encode request", Err: err}
	}
	var data map[string]json.RawMessage
	if err = c.do(ctx, op, http.MethodPost, path, nil, body, &data); err != nil {
		return "", err
	}
	id := decodeID(data[idField])
	if id == "" {
		return "", &domain.Error{Kind: domain.KindUpstreamUnavailable, Op: op, Message: fmt.Sprintf("response has no %s", idField)}
	}
	return id, nil
}

// withAdvertiser flattens payload into a JSON object carrying advertiser_id.
func withAdvertiser(advertiserID string, payload any) (map[string]any, error) {
	buf, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	body := map[string]any{}
	if err = json.Unmarshal(buf, &body); err != nil {
		return nil, err
	}
	body["advertiser_id"] = advertiserID
	return body, nil
}

// decodeID accepts ids encoded as strings or numbers.
func decodeID(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return ""
}

// CreateCampaign creates a campaign and returns its id.
func (c *Client) CreateCampaign(ctx context.Context, p port.CampaignPayload) (string, error) {
	return c.create(ctx, "platform.CreateCampaign", "/campaign/create/", "campaign_id", p)
}

// CreateAdGroup creates an ad group and returns its id.
func (c *Client) CreateAdGroup(ctx context.Context, p port.AdGroupPayload) (string, error) {
	return c.create(ctx, "platform.CreateAdGroup", "/adgroup/create/", "adgroup_id", p)
}

// CreateAd creates an ad and returns its id.
func (c *Client) CreateAd(ctx context.Context, p port.AdPayload) (string, error) {
	return c.create(ctx, "platform.CreateAd", "/ad/create/", "ad_id", p)
}

// CreateLeadForm creates a lead-capture form and returns its page id.
func (c *Client) CreateLeadForm(ctx context.Context, p port.LeadFormPayload) (string, error) {
	return c.create(ctx, "platform.CreateLeadForm", "/page/create/", "page_id", p)
}

type resourceInfo struct {
	CampaignID      json.RawMessage `json:"campaign_id"`
	AdGroupID       json.RawMessage `json:"adgroup_id"`
	AdID            json.RawMessage `json:"ad_id"`
	OperationStatus string          `json:"operation_status"`
	SecondaryStatus string          `json:"secondary_status"`
}

type listData struct {
	List []resourceInfo `json:"list"`
}

var endpoints = map[domain.ResourceType]struct {
	get, status, idsField string
}{
	domain.ResourceCampaign: {"/campaign/get/", "/campaign/status/update/", "campaign_ids"},
	domain.ResourceAdGroup:  {"/adgroup/get/", "/adgroup/status/update/", "adgroup_ids"},
	domain.ResourceAd:       {"/ad/get/", "/ad/status/update/", "ad_ids"},
}

func (c *Client) get(ctx context.Context, t domain.ResourceType, id string) (domain.ResourceState, error) {
	op := "platform.Get/" + string(t)
	ep := endpoints[t]
	filter, _ := json.Marshal(map[string][]string{ep.idsField: {id}})
	q := url.Values{}
	q.Set("filtering", string(filter))

	var data listData
	if err := c.do(ctx, op, http.MethodGet, ep.get, q, nil, &data); err != nil {
		return domain.ResourceState{}, err
	}
	if len(data.List) == 0 {
		return domain.ResourceState{}, &domain.Error{Kind: domain.KindNotFound, Op: op, Message: fmt.Sprintf("%s %s does not exist", t, id)}
	}
	info := data.List[0]
	return domain.ResourceState{
		ID:              id,
		Status:          fromOperationStatus(info.OperationStatus),
		SecondaryStatus: secondary(info.SecondaryStatus),
	}, nil
}

// GetCampaign reads a campaign's status.
func (c *Client) GetCampaign(ctx context.Context, id string) (domain.ResourceState, error) {
	return c.get(ctx, domain.ResourceCampaign, id)
}

// GetAdGroup reads an ad group's status.
func (c *Client) GetAdGroup(ctx context.Context, id string) (domain.ResourceState, error) {
	return c.get(ctx, domain.ResourceAdGroup, id)
}

// GetAd reads an ad's status.
func (c *Client) GetAd(ctx context.Context, id string) (domain.ResourceState, error) {
	return c.get(ctx, domain.ResourceAd, id)
}

// UpdateStatus sets the operation status of a campaign, ad group or ad.
func (c *Client) UpdateStatus(ctx context.Context, ref domain.ResourceRef, status domain.ResourceStatus) error {
	const op = "platform.UpdateStatus"
	ep, ok := endpoints[ref.Type]
	if !ok {
		return domain.Validation(op, "unsupported resource type %q", ref.Type)
	}
	body := map[string]any{
		"advertiser_id":    c.account(ctx).AdvertiserID,
		ep.idsField:        []string{ref.ID},
		"operation_status": toOperationStatus(status),
	}
	return c.do(ctx, op, http.MethodPost, ep.status, nil, body, nil)
}

type pixelData struct {
	Pixels []struct {
		PixelID string `json:"pixel_id"`
		Events  []struct {
			Name       string `json:"name"`
			EventType  string `json:"event_type"`
			Status     string `json:"activity_status"`
			Statistics struct {
				Count int64 `json:"count"`
			} `json:"statistic"`
		} `json:"events"`
	} `json:"pixels"`
}

// ListPixelEvents returns the events observed on a pixel.
func (c *Client) ListPixelEvents(ctx context.Context, pixelID string) ([]domain.PixelEvent, error) {
	const op = "platform.ListPixelEvents"
	q := url.Values{}
	q.Set("pixel_id", pixelID)

	var data pixelData
	if err := c.do(ctx, op, http.MethodGet, "/pixel/list/", q, nil, &data); err != nil {
		return nil, err
	}
	var events []domain.PixelEvent
	for _, px := range data.Pixels {
		if px.PixelID != pixelID {
			continue
		}
		for _, e := range px.Events {
			name := e.EventType
			if name == "" {
				name = e.Name
			}
			events = append(events, domain.PixelEvent{
				Name:   name,
				Volume: e.Statistics.Count,
				Active: strings.EqualFold(e.Status, "ACTIVE"),
			})
		}
	}
	return events, nil
}

func toOperationStatus(s domain.ResourceStatus) string {
	switch s {
	case domain.StatusEnabled:
		return "ENABLE"
	case domain.StatusDisabled:
		return "DISABLE"
	default:
		return "DELETE"
	}
}

func fromOperationStatus(s string) domain.ResourceStatus {
	switch strings.ToUpper(s) {
	case "ENABLE", "ENABLED":
		return domain.StatusEnabled
	case "DELETE", "DELETED":
		return domain.StatusDeleted
	default:
		return domain.StatusDisabled
	}
}

// secondary folds the platform's verbose secondary statuses onto the
// override markers the domain knows about.
func secondary(s string) string {
	u := strings.ToUpper(s)
	for _, marker := range []string{
		domain.SecondaryCampaignDisabled,
		domain.SecondaryAdGroupDisabled,
		domain.SecondaryAccountDisabled,
		domain.SecondaryBudgetExceeded,
		domain.SecondaryParentDisabled,
	} {
		if strings.HasSuffix(u, marker) {
			return marker
		}
	}
	return s
}
