package recommender

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/quickcare/backend-api-go/hospitals"
	log "github.com/quickcare/backend-api-go/pkg/logger"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

const (
	recommendPath = "/api/recommend"
	healthPath    = "/health"
)

// Client talks to the remote recommendation backend.
type Client struct {
	baseURL string
	http    *fasthttp.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &fasthttp.Client{Name: "quickcare-go"},
	}
}

// Recommend posts the search request as a JSON body.
func (c *Client) Recommend(ctx context.Context, request hospitals.SearchRequest) (*hospitals.SearchResult, error) {
	payload, err := jsoniter.Marshal(request)
	if err != nil {
		return nil, err
	}

	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	req.SetBody(payload)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	req.SetRequestURI(c.baseURL + recommendPath)

	var result hospitals.SearchResult
	if err := c.do(ctx, req, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// RecommendByQuery sends the same search as query arguments.
func (c *Client) RecommendByQuery(ctx context.Context, request hospitals.SearchRequest) (*hospitals.SearchResult, error) {
	args := url.Values{}
	args.Set("latitude", strconv.FormatFloat(request.Latitude, 'f', -1, 64))
	args.Set("longitude", strconv.FormatFloat(request.Longitude, 'f', -1, 64))
	args.Set("disease", request.Disease)
	args.Set("top_n", strconv.Itoa(request.TopN))

	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.SetRequestURI(c.baseURL + recommendPath + "?" + args.Encode())

	var result hospitals.SearchResult
	if err := c.do(ctx, req, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (c *Client) Health(ctx context.Context) (map[string]interface{}, error) {
	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.SetRequestURI(c.baseURL + healthPath)

	var response map[string]interface{}
	if err := c.do(ctx, req, &response); err != nil {
		return nil, err
	}

	return response, nil
}

// do sends req, bounded by the context deadline when one is set, and
// decodes a 2xx body into out.
func (c *Client) do(ctx context.Context, req *fasthttp.Request, out interface{}) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	req.Header.Set("Accept", "application/json")
	res := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(res)

	var err error
	if deadline, ok := ctx.Deadline(); ok {
		err = c.http.DoDeadline(req, res, deadline)
	} else {
		err = c.http.Do(req, res)
	}
	if err != nil {
		return err
	}

	status := res.StatusCode()
	if status < fasthttp.StatusOK || status >= fasthttp.StatusMultipleChoices {
		log.Logger().Warn("recommendation backend returned error status",
			zap.ByteString("uri", req.RequestURI()),
			zap.Int("statusCode", status))
		return fmt.Errorf("unexpected status code: %d", status)
	}

	if err := jsoniter.Unmarshal(res.Body(), out); err != nil {
		return fmt.Errorf("could not decode response: %w", err)
	}

	return nil
}
