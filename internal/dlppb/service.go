package dlppb

import (
	"context"

	"google.golang.org/grpc"
)

const (
	ServiceName = "dlpcontainer.DlpService"

	InspectContentMethod    = "/" + ServiceName + "/InspectContent"
	DeidentifyContentMethod = "/" + ServiceName + "/DeidentifyContent"

	// RequestIDHeader is the metadata key clients use to tag each call.
	RequestIDHeader = "x-request-id"

	// ConfigHeader carries the fingerprint of the scan configuration sent
	// with the call, so calls made with the same info types can be grouped.
	ConfigHeader = "x-dlp-config"
)

// Invoker is the unary-call half of a client channel. *grpc.ClientConn
// satisfies it.
type Invoker interface {
	Invoke(ctx context.Context, method string, args, reply interface{}, opts ...grpc.CallOption) error
}

// DlpServiceServer is the server API for the DlpService service.
type DlpServiceServer interface {
	InspectContent(context.Context, *InspectContentRequest) (*InspectContentResponse, error)
	DeidentifyContent(context.Context, *DeidentifyContentRequest) (*DeidentifyContentResponse, error)
}

// RegisterDlpServiceServer registers srv on s. The server must be created
// with grpc.ForceServerCodec(Codec{}).
func RegisterDlpServiceServer(s grpc.ServiceRegistrar, srv DlpServiceServer) {
	s.RegisterService(&dlpServiceDesc, srv)
}

func inspectContentHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(InspectContentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DlpServiceServer).InspectContent(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: InspectContentMethod,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DlpServiceServer).InspectContent(ctx, req.(*InspectContentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func deidentifyContentHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeidentifyContentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DlpServiceServer).DeidentifyContent(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DeidentifyContentMethod,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DlpServiceServer).DeidentifyContent(ctx, req.(*DeidentifyContentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var dlpServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*DlpServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "InspectContent", Handler: inspectContentHandler},
		{MethodName: "DeidentifyContent", Handler: deidentifyContentHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "dlpcontainer.proto",
}
