package scan

import (
	"errors"
	"reflect"
	"testing"

	json "github.com/goccy/go-json"
)

func TestBuildRejectsUnusableLists(t *testing.T) {
	cases := []struct {
		name       string
		categories []string
	}{
		{name: "nil", categories: nil},
		{name: "empty", categories: []string{}},
		{name: "blank entry", categories: []string{"EMAIL_ADDRESS", "  "}},
		{name: "only blank", categories: []string{""}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := Build(tc.categories)
			if !errors.Is(err, ErrConfiguration) {
				t.Fatalf("expected ErrConfiguration, got %v", err)
			}
			if cfg != nil {
				t.Fatalf("expected nil configuration, got %+v", cfg)
			}
		})
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	a, err := Build([]string{"EMAIL_ADDRESS", "PERSON_NAME"})
	if err != nil {
		t.Fatalf("build a: %v", err)
	}
	b, err := Build([]string{"EMAIL_ADDRESS", "PERSON_NAME"})
	if err != nil {
		t.Fatalf("build b: %v", err)
	}

	if a.Fingerprint() != b.Fingerprint() {
		t.Fatalf("fingerprints differ: %s vs %s", a.Fingerprint(), b.Fingerprint())
	}
	ja, _ := json.Marshal(a.Proto())
	jb, _ := json.Marshal(b.Proto())
	if string(ja) != string(jb) {
		t.Fatalf("serialized configs differ:\n%s\n%s", ja, jb)
	}
	want := `{"info_types":[{"name":"EMAIL_ADDRESS"},{"name":"PERSON_NAME"}]}`
	if string(ja) != want {
		t.Fatalf("unexpected wire form %s", ja)
	}

	reordered, _ := Build([]string{"PERSON_NAME", "EMAIL_ADDRESS"})
	if reordered.Fingerprint() == a.Fingerprint() {
		t.Fatalf("expected order to change the fingerprint")
	}
}

func TestBuildPreservesOrderAndDropsRepeats(t *testing.T) {
	cfg, err := Build([]string{" PERSON_NAME", "EMAIL_ADDRESS", "PERSON_NAME", "PHONE_NUMBER "})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	want := []string{"PERSON_NAME", "EMAIL_ADDRESS", "PHONE_NUMBER"}
	if got := cfg.InfoTypes(); !reflect.DeepEqual(got, want) {
		t.Fatalf("info types = %v, want %v", got, want)
	}
	if cfg.Len() != 3 {
		t.Fatalf("len = %d", cfg.Len())
	}

	// Callers cannot mutate the stored list.
	got := cfg.InfoTypes()
	got[0] = "CHANGED"
	if cfg.InfoTypes()[0] != "PERSON_NAME" {
		t.Fatalf("configuration was mutated through InfoTypes")
	}
}

func TestDerivePolicyCoversEachInfoTypeOnce(t *testing.T) {
	inputs := [][]string{
		{"EMAIL_ADDRESS"},
		{"EMAIL_ADDRESS", "PERSON_NAME"},
		{"PERSON_NAME", "PERSON_NAME", "CREDIT_CARD_NUMBER", "EMAIL_ADDRESS"},
	}

	for _, in := range inputs {
		cfg, err := Build(in)
		if err != nil {
			t.Fatalf("build %v: %v", in, err)
		}
		policy := DerivePolicy(cfg)

		counts := map[string]int{}
		for _, r := range policy.Rules() {
			if r.Action != ActionReplaceWithInfoType {
				t.Fatalf("unexpected action %q", r.Action)
			}
			for _, name := range r.InfoTypes {
				counts[name]++
			}
		}
		for _, name := range cfg.InfoTypes() {
			if counts[name] != 1 {
				t.Fatalf("%v: info type %s covered %d times", in, name, counts[name])
			}
		}
		if len(counts) != cfg.Len() {
			t.Fatalf("%v: policy covers %d info types, config has %d", in, len(counts), cfg.Len())
		}
	}
}

func TestPolicyProto(t *testing.T) {
	cfg, _ := Build([]string{"EMAIL_ADDRESS", "PERSON_NAME"})
	b, err := json.Marshal(DerivePolicy(cfg).Proto())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"info_type_transformations":{"transformations":[{"info_types":[{"name":"EMAIL_ADDRESS"},{"name":"PERSON_NAME"}],"primitive_transformation":{"replace_with_info_type_config":{}}}]}}`
	if string(b) != want {
		t.Fatalf("policy wire form\n got %s\nwant %s", b, want)
	}
}
