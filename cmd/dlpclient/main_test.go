package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"google.golang.org/grpc/codes"

	"github.com/gonkalabs/opendlp-go/internal/config"
	"github.com/gonkalabs/opendlp-go/internal/dlpclient"
	"github.com/gonkalabs/opendlp-go/internal/dlppb"
	"github.com/gonkalabs/opendlp-go/internal/mockdlp"
)

func testCfg(deidentify bool) *config.Cfg {
	return &config.Cfg{
		Addr:        "bufnet",
		InfoTypes:   []string{"EMAIL_ADDRESS", "PERSON_NAME"},
		Input:       "Hello I am Luli, She is my sister, Tracy!!!",
		Deidentify:  deidentify,
		CallTimeout: 5 * time.Second,
	}
}

func TestRunPrintsInspectResults(t *testing.T) {
	srv := &mockdlp.Server{
		InspectFunc: func(context.Context, *dlppb.InspectContentRequest) (*dlppb.InspectContentResponse, error) {
			return &dlppb.InspectContentResponse{Findings: []*dlppb.Finding{
				{InfoType: &dlppb.InfoType{Name: "PERSON_NAME"}, ByteOffset: 11, ByteLength: 4, Quote: "Luli"},
				{InfoType: &dlppb.InfoType{Name: "PERSON_NAME"}, ByteOffset: 36, ByteLength: 5, Quote: "Tracy"},
			}}, nil
		},
		DeidentifyFunc: func(context.Context, *dlppb.DeidentifyContentRequest) (*dlppb.DeidentifyContentResponse, error) {
			return &dlppb.DeidentifyContentResponse{Item: &dlppb.ContentItem{
				Value: "Hello I am [PERSON_NAME], She is my sister, [PERSON_NAME]!!!",
			}}, nil
		},
	}
	l := mockdlp.Start(srv)
	defer l.Stop()

	var out bytes.Buffer
	if err := run(context.Background(), testCfg(true), &out, dlpclient.WithDialOptions(l.DialOption())); err != nil {
		t.Fatalf("run: %v", err)
	}

	printed := out.String()
	end := strings.Index(printed, "\n]\n")
	if end < 0 {
		t.Fatalf("no JSON array in output:\n%s", printed)
	}
	var results []map[string]interface{}
	if err := json.Unmarshal([]byte(printed[:end+2]), &results); err != nil {
		t.Fatalf("decode output: %v\n%s", err, printed)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	first := results[0]
	if first["info_type"] != "PERSON_NAME" || first["start_idx"] != float64(11) ||
		first["end_idx"] != float64(15) || first["context"] != "Luli" {
		t.Fatalf("unexpected first result %v", first)
	}
	if !strings.HasSuffix(printed, "Hello I am [PERSON_NAME], She is my sister, [PERSON_NAME]!!!\n") {
		t.Fatalf("expected de-identified text at the end:\n%s", printed)
	}
	if n := len(srv.Calls()); n != 2 {
		t.Fatalf("expected 2 service calls, got %d", n)
	}
}

func TestRunSkipsDeidentifyByDefault(t *testing.T) {
	srv := &mockdlp.Server{}
	l := mockdlp.Start(srv)
	defer l.Stop()

	var out bytes.Buffer
	if err := run(context.Background(), testCfg(false), &out, dlpclient.WithDialOptions(l.DialOption())); err != nil {
		t.Fatalf("run: %v", err)
	}
	if got := strings.TrimSpace(out.String()); got != "[]" {
		t.Fatalf("output = %q, want []", got)
	}
	if n := len(srv.Calls()); n != 1 {
		t.Fatalf("expected 1 service call, got %d", n)
	}
}

func TestRunPropagatesRemoteErrors(t *testing.T) {
	boom := errors.New("boom")
	var out bytes.Buffer
	err := run(context.Background(), testCfg(false), &out, dlpclient.WithDialer(func(context.Context, string) (dlpclient.Conn, error) {
		return nil, boom
	}))
	var rce *dlpclient.RemoteCallError
	if !errors.As(err, &rce) || !errors.Is(err, boom) {
		t.Fatalf("expected wrapped RemoteCallError, got %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("expected no output, got %q", out.String())
	}
}

func TestRunAppliesCallTimeout(t *testing.T) {
	srv := &mockdlp.Server{
		InspectFunc: func(ctx context.Context, _ *dlppb.InspectContentRequest) (*dlppb.InspectContentResponse, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		},
	}
	l := mockdlp.Start(srv)
	defer l.Stop()

	cfg := testCfg(false)
	cfg.CallTimeout = 50 * time.Millisecond

	var out bytes.Buffer
	start := time.Now()
	err := run(context.Background(), cfg, &out, dlpclient.WithDialOptions(l.DialOption()))
	if elapsed := time.Since(start); elapsed > 5*time.Second {
		t.Fatalf("call outlived its timeout: %s", elapsed)
	}
	var rce *dlpclient.RemoteCallError
	if !errors.As(err, &rce) {
		t.Fatalf("expected RemoteCallError, got %v", err)
	}
	if rce.Code != codes.DeadlineExceeded {
		t.Fatalf("code = %v, want DeadlineExceeded", rce.Code)
	}
	if out.Len() != 0 {
		t.Fatalf("expected no output, got %q", out.String())
	}
}
