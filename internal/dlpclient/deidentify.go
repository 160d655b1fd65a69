package dlpclient

import (
	"context"

	"github.com/gonkalabs/opendlp-go/internal/dlppb"
	"github.com/gonkalabs/opendlp-go/internal/scan"
)

// Deidentifier asks the service to replace every finding with a token naming
// its info type, e.g. "Hello my name is [PERSON_NAME]".
type Deidentifier struct {
	c      *client[dlppb.DeidentifyContentRequest, dlppb.DeidentifyContentResponse, string]
	policy *scan.Policy
}

// NewDeidentifier creates a Deidentifier for the service at target.
// Configure must be called before Run.
func NewDeidentifier(target string, opts ...Option) *Deidentifier {
	d := &Deidentifier{}
	d.c = newClient(target, dlppb.DeidentifyContentMethod, d.request, deidentifiedValue, opts)
	return d
}

// Configure sets the info types to replace and derives the matching policy.
func (d *Deidentifier) Configure(categories []string) error {
	cfg, err := d.c.configure(categories)
	if err != nil {
		return err
	}
	d.policy = scan.DerivePolicy(cfg)
	return nil
}

// Policy returns the policy sent with each call, or nil before Configure.
func (d *Deidentifier) Policy() *scan.Policy {
	return d.policy
}

// Run returns the service's rewritten content unmodified.
func (d *Deidentifier) Run(ctx context.Context, content string) (string, error) {
	return d.c.run(ctx, content)
}

func (d *Deidentifier) request(cfg *scan.Configuration, item *dlppb.ContentItem) *dlppb.DeidentifyContentRequest {
	return &dlppb.DeidentifyContentRequest{
		Item:             item,
		DeidentifyConfig: d.policy.Proto(),
		InspectConfig:    cfg.Proto(),
	}
}

func deidentifiedValue(resp *dlppb.DeidentifyContentResponse) string {
	return resp.GetItem().GetValue()
}
