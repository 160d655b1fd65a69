package dlpclient

import (
	"context"

	"github.com/gonkalabs/opendlp-go/internal/dlppb"
	"github.com/gonkalabs/opendlp-go/internal/scan"
)

// Result is one finding in caller-facing form. End is exclusive.
type Result struct {
	InfoType string `json:"info_type"`
	Start    int64  `json:"start_idx"`
	End      int64  `json:"end_idx"`
	Context  string `json:"context"`
}

// Inspector reports where configured info types occur in text without
// changing it.
type Inspector struct {
	c *client[dlppb.InspectContentRequest, dlppb.InspectContentResponse, []Result]
}

// NewInspector creates an Inspector for the service at target
// (e.g. "localhost:50051"). Configure must be called before Run.
func NewInspector(target string, opts ...Option) *Inspector {
	return &Inspector{
		c: newClient(target, dlppb.InspectContentMethod, inspectRequest, toResults, opts),
	}
}

// Configure sets the info types to look for, replacing any earlier set.
func (i *Inspector) Configure(categories []string) error {
	_, err := i.c.configure(categories)
	return err
}

// Run inspects content and returns the findings in the order the service
// reported them. No findings yields an empty slice.
func (i *Inspector) Run(ctx context.Context, content string) ([]Result, error) {
	return i.c.run(ctx, content)
}

func inspectRequest(cfg *scan.Configuration, item *dlppb.ContentItem) *dlppb.InspectContentRequest {
	return &dlppb.InspectContentRequest{
		Item:          item,
		InspectConfig: cfg.Proto(),
	}
}

// toResults flattens findings verbatim. Offsets are not checked.
func toResults(resp *dlppb.InspectContentResponse) []Result {
	findings := resp.GetFindings()
	results := make([]Result, 0, len(findings))
	for _, f := range findings {
		results = append(results, Result{
			InfoType: f.GetInfoType().GetName(),
			Start:    f.GetByteOffset(),
			End:      f.GetByteOffset() + f.GetByteLength(),
			Context:  f.GetQuote(),
		})
	}
	return results
}
