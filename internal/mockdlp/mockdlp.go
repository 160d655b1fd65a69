// Package mockdlp serves a scripted DLP service over an in-memory gRPC
// listener, for tests of code that calls the service.
package mockdlp

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"sync"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/test/bufconn"

	"github.com/gonkalabs/opendlp-go/internal/dlppb"
)

const bufSize = 1 << 20

// Call records one request received by the Server.
type Call struct {
	Method     string
	RequestID  string // value of dlppb.RequestIDHeader, if sent
	Config     string // value of dlppb.ConfigHeader, if sent
	Inspect    *dlppb.InspectContentRequest
	Deidentify *dlppb.DeidentifyContentRequest
}

// Server implements dlppb.DlpServiceServer with pluggable behaviour.
// With nil funcs it reports no findings and echoes the item back unchanged.
type Server struct {
	InspectFunc    func(context.Context, *dlppb.InspectContentRequest) (*dlppb.InspectContentResponse, error)
	DeidentifyFunc func(context.Context, *dlppb.DeidentifyContentRequest) (*dlppb.DeidentifyContentResponse, error)

	mu    sync.Mutex
	calls []Call
}

var _ dlppb.DlpServiceServer = (*Server)(nil)

func (s *Server) InspectContent(ctx context.Context, req *dlppb.InspectContentRequest) (*dlppb.InspectContentResponse, error) {
	s.record(ctx, Call{Method: dlppb.InspectContentMethod, Inspect: req})
	if s.InspectFunc != nil {
		return s.InspectFunc(ctx, req)
	}
	return &dlppb.InspectContentResponse{}, nil
}

func (s *Server) DeidentifyContent(ctx context.Context, req *dlppb.DeidentifyContentRequest) (*dlppb.DeidentifyContentResponse, error) {
	s.record(ctx, Call{Method: dlppb.DeidentifyContentMethod, Deidentify: req})
	if s.DeidentifyFunc != nil {
		return s.DeidentifyFunc(ctx, req)
	}
	return &dlppb.DeidentifyContentResponse{Item: req.GetItem()}, nil
}

// Calls returns the requests received so far, oldest first.
func (s *Server) Calls() []Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Call, len(s.calls))
	copy(out, s.calls)
	return out
}

func (s *Server) record(ctx context.Context, c Call) {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if ids := md.Get(dlppb.RequestIDHeader); len(ids) > 0 {
			c.RequestID = ids[0]
		}
		if fps := md.Get(dlppb.ConfigHeader); len(fps) > 0 {
			c.Config = fps[0]
		}
	}
	s.mu.Lock()
	s.calls = append(s.calls, c)
	s.mu.Unlock()
}

// Listener is a running in-memory gRPC server.
type Listener struct {
	lis *bufconn.Listener
	srv *grpc.Server
}

// Start serves srv on a fresh bufconn listener. Call Stop when done.
func Start(srv *Server) *Listener {
	lis := bufconn.Listen(bufSize)
	gs := grpc.NewServer(grpc.ForceServerCodec(dlppb.Codec{}))
	dlppb.RegisterDlpServiceServer(gs, srv)

	go func() {
		if err := gs.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			slog.Warn("mockdlp: serve", "err", err)
		}
	}()
	return &Listener{lis: lis, srv: gs}
}

// DialOption routes a client's connections to this listener regardless of
// the target address.
func (l *Listener) DialOption() grpc.DialOption {
	return grpc.WithContextDialer(func(context.Context, string) (net.Conn, error) {
		return l.lis.Dial()
	})
}

// Stop shuts the server down and closes the listener.
func (l *Listener) Stop() {
	l.srv.Stop()
	_ = l.lis.Close()
}
