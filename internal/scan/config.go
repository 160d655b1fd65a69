// Package scan compiles info-type names into the scan configuration and
// de-identification policy sent with every DLP call.
package scan

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	json "github.com/goccy/go-json"
	"golang.org/x/crypto/blake2b"

	"github.com/gonkalabs/opendlp-go/internal/dlppb"
)

// ErrConfiguration is returned by Build when the info-type list is unusable.
var ErrConfiguration = errors.New("scan: invalid configuration")

// Configuration is an ordered, de-duplicated set of info types.
// It is immutable once built; use Build to create one.
type Configuration struct {
	infoTypes []string
}

// Build compiles categories into a Configuration. Names are trimmed and
// order is preserved; a repeated name keeps its first position.
func Build(categories []string) (*Configuration, error) {
	if len(categories) == 0 {
		return nil, fmt.Errorf("%w: no info types given", ErrConfiguration)
	}
	seen := make(map[string]bool, len(categories))
	names := make([]string, 0, len(categories))
	for i, c := range categories {
		name := strings.TrimSpace(c)
		if name == "" {
			return nil, fmt.Errorf("%w: info type %d is empty", ErrConfiguration, i+1)
		}
		if seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	return &Configuration{infoTypes: names}, nil
}

// InfoTypes returns a copy of the configured names in order.
func (c *Configuration) InfoTypes() []string {
	out := make([]string, len(c.infoTypes))
	copy(out, c.infoTypes)
	return out
}

// Len returns the number of info types.
func (c *Configuration) Len() int {
	return len(c.infoTypes)
}

// Proto returns a fresh wire form of the configuration.
func (c *Configuration) Proto() *dlppb.InspectConfig {
	return &dlppb.InspectConfig{InfoTypes: protoInfoTypes(c.infoTypes)}
}

// Fingerprint is the hex BLAKE2b-256 digest of the serialized wire form.
// Equal configurations always have equal fingerprints.
func (c *Configuration) Fingerprint() string {
	// InspectConfig holds only strings; Marshal cannot fail.
	b, _ := json.Marshal(c.Proto())
	sum := blake2b.Sum256(b)
	return hex.EncodeToString(sum[:])
}

func protoInfoTypes(names []string) []*dlppb.InfoType {
	out := make([]*dlppb.InfoType, 0, len(names))
	for _, n := range names {
		out = append(out, &dlppb.InfoType{Name: n})
	}
	return out
}
