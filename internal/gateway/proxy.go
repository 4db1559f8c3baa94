package gateway

import (
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Proxy forwards an already-validated request to the main service and
// streams the response back verbatim.
type Proxy struct {
	baseURL string
	client  *http.Client
	log     zerolog.Logger
}

func NewProxy(baseURL string, log zerolog.Logger) *Proxy {
	return &Proxy{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 30 * time.Second},
		log:     log,
	}
}

// Forward replays the incoming request against the main service. The
// request body must still be readable; handlers that consumed it for
// validation restore it first.
func (p *Proxy) Forward(c *gin.Context) {
	target := p.baseURL + c.Request.URL.Path
	if q := c.Request.URL.RawQuery; q != "" {
		target += "?" + q
	}

	req, err := http.NewRequestWithContext(c.Request.Context(), c.Request.Method, target, c.Request.Body)
	if err != nil {
		p.fail(c, err)
		return
	}
	req.Header = c.Request.Header.Clone()

	resp, err := p.client.Do(req)
	if err != nil {
		p.fail(c, err)
		return
	}
	defer resp.Body.Close()

	for key, values := range resp.Header {
		for _, v := range values {
			c.Writer.Header().Add(key, v)
		}
	}
	c.Status(resp.StatusCode)
	if _, err := io.Copy(c.Writer, resp.Body); err != nil {
		p.log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("copy upstream response")
	}
}

func (p *Proxy) fail(c *gin.Context, err error) {
	p.log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("upstream unavailable")
	c.JSON(http.StatusBadGateway, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "UPSTREAM_UNAVAILABLE",
			"message": "ShareIt service is unavailable",
		},
	})
}
