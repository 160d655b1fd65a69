package dlppb

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// CodecName is sent as the gRPC content-subtype ("application/grpc+json").
const CodecName = "json"

// Codec marshals dlppb messages as JSON. Clients force it with
// grpc.ForceCodec and servers with grpc.ForceServerCodec.
type Codec struct{}

// Marshal encodes v as JSON. Invalid UTF-8 in strings is replaced with
// U+FFFD, so callers must validate text whose byte offsets matter.
func (Codec) Marshal(v interface{}) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("dlppb: marshal %T: %w", v, err)
	}
	return b, nil
}

// Unmarshal decodes JSON data into v.
func (Codec) Unmarshal(data []byte, v interface{}) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("dlppb: unmarshal %T: %w", v, err)
	}
	return nil
}

// Name returns CodecName.
func (Codec) Name() string { return CodecName }
