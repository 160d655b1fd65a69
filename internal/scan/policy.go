package scan

import "github.com/gonkalabs/opendlp-go/internal/dlppb"

// Action is what the service does to a finding during de-identification.
type Action string

// ActionReplaceWithInfoType replaces a finding with a token naming its info
// type, e.g. "[PERSON_NAME]". It is the only action supported.
const ActionReplaceWithInfoType Action = "replace_with_info_type"

// Rule applies one Action to findings of the listed info types.
type Rule struct {
	InfoTypes []string
	Action    Action
}

// Policy is the de-identification rule set derived from a Configuration.
type Policy struct {
	rules []Rule
}

// DerivePolicy returns the policy that replaces every configured info type
// with its name. Each info type appears in exactly one rule, once.
func DerivePolicy(cfg *Configuration) *Policy {
	return &Policy{rules: []Rule{{
		InfoTypes: cfg.InfoTypes(),
		Action:    ActionReplaceWithInfoType,
	}}}
}

// Rules returns a copy of the policy's rules.
func (p *Policy) Rules() []Rule {
	out := make([]Rule, 0, len(p.rules))
	for _, r := range p.rules {
		names := make([]string, len(r.InfoTypes))
		copy(names, r.InfoTypes)
		out = append(out, Rule{InfoTypes: names, Action: r.Action})
	}
	return out
}

// Proto returns a fresh wire form of the policy.
func (p *Policy) Proto() *dlppb.DeidentifyConfig {
	transformations := make([]*dlppb.InfoTypeTransformation, 0, len(p.rules))
	for _, r := range p.rules {
		transformations = append(transformations, &dlppb.InfoTypeTransformation{
			InfoTypes:               protoInfoTypes(r.InfoTypes),
			PrimitiveTransformation: r.Action.proto(),
		})
	}
	return &dlppb.DeidentifyConfig{
		InfoTypeTransformations: &dlppb.InfoTypeTransformations{Transformations: transformations},
	}
}

func (a Action) proto() *dlppb.PrimitiveTransformation {
	switch a {
	case ActionReplaceWithInfoType:
		return &dlppb.PrimitiveTransformation{ReplaceWithInfoTypeConfig: &dlppb.ReplaceWithInfoTypeConfig{}}
	default:
		return &dlppb.PrimitiveTransformation{}
	}
}
