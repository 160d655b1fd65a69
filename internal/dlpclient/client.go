// Package dlpclient calls the DLP service to inspect or de-identify text.
//
// Both clients follow the same lifecycle: Configure once with the info types
// to look for, then Run any number of times. Each Run opens its own channel,
// issues exactly one unary call and closes the channel before returning.
// Clients are not safe for concurrent Configure and Run.
package dlpclient

import (
	"context"
	"fmt"
	"log/slog"
	"unicode/utf8"

	"github.com/google/uuid"
	"google.golang.org/grpc/metadata"

	"github.com/gonkalabs/opendlp-go/internal/dlppb"
	"github.com/gonkalabs/opendlp-go/internal/scan"
)

// client is the request path shared by Inspector and Deidentifier: the
// configuration guard, the per-call channel and error translation. Req and
// Resp are the wire messages for method; Out is what Run hands back.
type client[Req, Resp, Out any] struct {
	target string
	method string
	dial   DialFunc

	cfg         *scan.Configuration
	fingerprint string

	request  func(cfg *scan.Configuration, item *dlppb.ContentItem) *Req
	response func(*Resp) Out
}

func newClient[Req, Resp, Out any](
	target, method string,
	request func(*scan.Configuration, *dlppb.ContentItem) *Req,
	response func(*Resp) Out,
	opts []Option,
) *client[Req, Resp, Out] {
	o := buildOptions(opts)
	return &client[Req, Resp, Out]{
		target:   target,
		method:   method,
		dial:     o.dial,
		request:  request,
		response: response,
	}
}

// configure builds a configuration from categories and stores it. On error
// the previous configuration is kept.
func (c *client[Req, Resp, Out]) configure(categories []string) (*scan.Configuration, error) {
	cfg, err := scan.Build(categories)
	if err != nil {
		return nil, err
	}
	c.cfg = cfg
	c.fingerprint = cfg.Fingerprint()
	slog.Debug("dlpclient: configured",
		"method", c.method,
		"info_types", cfg.InfoTypes(),
		"fingerprint", c.fingerprint,
	)
	return cfg, nil
}

func (c *client[Req, Resp, Out]) run(ctx context.Context, content string) (Out, error) {
	var zero Out
	if c.cfg == nil {
		return zero, ErrNotConfigured
	}
	// Offsets in findings index the bytes the service received; the codec
	// would rewrite invalid sequences and shift them.
	if !utf8.ValidString(content) {
		return zero, fmt.Errorf("%w: bad byte at offset %d", ErrInvalidContent, firstInvalid(content))
	}
	req := c.request(c.cfg, &dlppb.ContentItem{Value: content})

	resp, err := c.call(ctx, req)
	if err != nil {
		return zero, err
	}
	return c.response(resp), nil
}

// call dials, invokes method once and closes the channel on every path.
func (c *client[Req, Resp, Out]) call(ctx context.Context, req *Req) (*Resp, error) {
	conn, err := c.dial(ctx, c.target)
	if err != nil {
		slog.Warn("dlpclient: channel unavailable", "target", c.target, "err", err)
		return nil, newRemoteCallError(c.method, c.target, err)
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil {
			slog.Warn("dlpclient: close channel", "target", c.target, "err", cerr)
		}
	}()

	requestID := uuid.NewString()
	ctx = metadata.AppendToOutgoingContext(ctx,
		dlppb.RequestIDHeader, requestID,
		dlppb.ConfigHeader, c.fingerprint,
	)
	slog.Info("dlpclient: request",
		"method", c.method,
		"target", c.target,
		"request_id", requestID,
		"config", c.fingerprint,
	)

	resp := new(Resp)
	if err := conn.Invoke(ctx, c.method, req, resp); err != nil {
		slog.Warn("dlpclient: call failed", "method", c.method, "request_id", requestID, "config", c.fingerprint, "err", err)
		return nil, newRemoteCallError(c.method, c.target, err)
	}
	return resp, nil
}

// firstInvalid returns the offset of the first byte that does not start a
// valid UTF-8 sequence, or -1.
func firstInvalid(content string) int {
	for i, r := range content {
		if r == utf8.RuneError {
			if _, size := utf8.DecodeRuneInString(content[i:]); size == 1 {
				return i
			}
		}
	}
	return -1
}
