// Package dlppb holds the wire schema of the dlpcontainer DLP service and the
// gRPC descriptors needed to call or serve it.
//
// The shapes mirror the service's protobuf messages field for field. JSON
// names use the protobuf snake_case spelling.
//
// Messages travel as JSON (see Codec), not protobuf binary. A server built
// from protoc-generated dlpcontainer stubs will reject these calls; the
// service must accept the "json" content-subtype.
package dlppb

// ContentItem is the unit of content submitted for scanning.
type ContentItem struct {
	Value string `json:"value"`
}

func (x *ContentItem) GetValue() string {
	if x == nil {
		return ""
	}
	return x.Value
}

// InfoType names a category of sensitive data, e.g. "EMAIL_ADDRESS".
type InfoType struct {
	Name string `json:"name"`
}

func (x *InfoType) GetName() string {
	if x == nil {
		return ""
	}
	return x.Name
}

// InspectConfig lists the info types a call should search for.
type InspectConfig struct {
	InfoTypes []*InfoType `json:"info_types"`
}

func (x *InspectConfig) GetInfoTypes() []*InfoType {
	if x == nil {
		return nil
	}
	return x.InfoTypes
}

// ReplaceWithInfoTypeConfig replaces each finding with "[INFO_TYPE_NAME]".
// It carries no parameters.
type ReplaceWithInfoTypeConfig struct{}

// PrimitiveTransformation is a oneof; exactly one field is set.
type PrimitiveTransformation struct {
	ReplaceWithInfoTypeConfig *ReplaceWithInfoTypeConfig `json:"replace_with_info_type_config,omitempty"`
}

func (x *PrimitiveTransformation) GetReplaceWithInfoTypeConfig() *ReplaceWithInfoTypeConfig {
	if x == nil {
		return nil
	}
	return x.ReplaceWithInfoTypeConfig
}

// InfoTypeTransformation applies one primitive transformation to findings of
// the listed info types.
type InfoTypeTransformation struct {
	InfoTypes               []*InfoType              `json:"info_types"`
	PrimitiveTransformation *PrimitiveTransformation `json:"primitive_transformation"`
}

func (x *InfoTypeTransformation) GetInfoTypes() []*InfoType {
	if x == nil {
		return nil
	}
	return x.InfoTypes
}

func (x *InfoTypeTransformation) GetPrimitiveTransformation() *PrimitiveTransformation {
	if x == nil {
		return nil
	}
	return x.PrimitiveTransformation
}

// InfoTypeTransformations is the ordered rule set of a DeidentifyConfig.
type InfoTypeTransformations struct {
	Transformations []*InfoTypeTransformation `json:"transformations"`
}

func (x *InfoTypeTransformations) GetTransformations() []*InfoTypeTransformation {
	if x == nil {
		return nil
	}
	return x.Transformations
}

// DeidentifyConfig tells the service how to rewrite findings.
type DeidentifyConfig struct {
	InfoTypeTransformations *InfoTypeTransformations `json:"info_type_transformations"`
}

func (x *DeidentifyConfig) GetInfoTypeTransformations() *InfoTypeTransformations {
	if x == nil {
		return nil
	}
	return x.InfoTypeTransformations
}

// InspectContentRequest asks the service to report findings in Item.
type InspectContentRequest struct {
	Item          *ContentItem   `json:"item"`
	InspectConfig *InspectConfig `json:"inspect_config"`
}

func (x *InspectContentRequest) GetItem() *ContentItem {
	if x == nil {
		return nil
	}
	return x.Item
}

func (x *InspectContentRequest) GetInspectConfig() *InspectConfig {
	if x == nil {
		return nil
	}
	return x.InspectConfig
}

// Finding is one detection. ByteOffset and ByteLength index the UTF-8 bytes
// of the submitted item.
type Finding struct {
	InfoType   *InfoType `json:"info_type"`
	ByteOffset int64     `json:"byte_offset"`
	ByteLength int64     `json:"byte_length"`
	Quote      string    `json:"quote"`
}

func (x *Finding) GetInfoType() *InfoType {
	if x == nil {
		return nil
	}
	return x.InfoType
}

func (x *Finding) GetByteOffset() int64 {
	if x == nil {
		return 0
	}
	return x.ByteOffset
}

func (x *Finding) GetByteLength() int64 {
	if x == nil {
		return 0
	}
	return x.ByteLength
}

func (x *Finding) GetQuote() string {
	if x == nil {
		return ""
	}
	return x.Quote
}

// InspectContentResponse lists findings in the order the service found them.
type InspectContentResponse struct {
	Findings []*Finding `json:"findings"`
}

func (x *InspectContentResponse) GetFindings() []*Finding {
	if x == nil {
		return nil
	}
	return x.Findings
}

// DeidentifyContentRequest asks the service to rewrite findings in Item
// according to DeidentifyConfig.
type DeidentifyContentRequest struct {
	Item             *ContentItem      `json:"item"`
	DeidentifyConfig *DeidentifyConfig `json:"deidentify_config"`
	InspectConfig    *InspectConfig    `json:"inspect_config"`
}

func (x *DeidentifyContentRequest) GetItem() *ContentItem {
	if x == nil {
		return nil
	}
	return x.Item
}

func (x *DeidentifyContentRequest) GetDeidentifyConfig() *DeidentifyConfig {
	if x == nil {
		return nil
	}
	return x.DeidentifyConfig
}

func (x *DeidentifyContentRequest) GetInspectConfig() *InspectConfig {
	if x == nil {
		return nil
	}
	return x.InspectConfig
}

// DeidentifyContentResponse carries the rewritten item.
type DeidentifyContentResponse struct {
	Item *ContentItem `json:"item"`
}

func (x *DeidentifyContentResponse) GetItem() *ContentItem {
	if x == nil {
		return nil
	}
	return x.Item
}
