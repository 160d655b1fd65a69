package dlpclient

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/gonkalabs/opendlp-go/internal/dlppb"
)

// Conn is a channel to the DLP service. Run opens one per call and closes it
// before returning.
type Conn interface {
	dlppb.Invoker
	Close() error
}

// DialFunc opens a Conn to target.
type DialFunc func(ctx context.Context, target string) (Conn, error)

// InsecureDialer returns a DialFunc that opens a plaintext gRPC channel
// speaking dlppb.Codec. Extra options are applied after the defaults.
func InsecureDialer(opts ...grpc.DialOption) DialFunc {
	return func(ctx context.Context, target string) (Conn, error) {
		dialOpts := []grpc.DialOption{
			grpc.WithTransportCredentials(insecure.NewCredentials()),
			grpc.WithDefaultCallOptions(grpc.ForceCodec(dlppb.Codec{})),
		}
		dialOpts = append(dialOpts, opts...)

		cc, err := grpc.DialContext(ctx, target, dialOpts...)
		if err != nil {
			return nil, fmt.Errorf("dial %s: %w", target, err)
		}
		return cc, nil
	}
}

// Option configures an Inspector or Deidentifier.
type Option func(*options)

type options struct {
	dial     DialFunc
	dialOpts []grpc.DialOption
}

// WithDialer replaces the channel factory. It takes precedence over
// WithDialOptions.
func WithDialer(d DialFunc) Option {
	return func(o *options) { o.dial = d }
}

// WithDialOptions adds gRPC dial options to the default InsecureDialer.
func WithDialOptions(opts ...grpc.DialOption) Option {
	return func(o *options) { o.dialOpts = append(o.dialOpts, opts...) }
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.dial == nil {
		o.dial = InsecureDialer(o.dialOpts...)
	}
	return o
}
