package http

import (
	"testing"

	"github.com/valyala/fasthttp"
)

func requestCtx(uri string) *fasthttp.RequestCtx {
	var ctx fasthttp.RequestCtx
	var req fasthttp.Request
	req.SetRequestURI(uri)
	ctx.Init(&req, nil, nil)
	return &ctx
}

func TestParseFilterKeepsFreeTextType(t *testing.T) {
	filter, err := parseFilter(requestCtx("/payments/?type=card"))
	if err != nil {
		t.Fatalf("parseFilter() error = %v", err)
	}

	if filter.Type == nil || *filter.Type != "card" {
		t.Errorf("type filter = %v, want the raw query value passed through", filter.Type)
	}
}

func TestParseFilterOrdering(t *testing.T) {
	tests := []struct {
		name          string
		uri           string
		wantAscending bool
	}{
		{"defaults to newest first", "/payments/", false},
		{"explicit newest first", "/payments/?ordering=-date_paid", false},
		{"oldest first opt-in", "/payments/?ordering=date_paid", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter, err := parseFilter(requestCtx(tt.uri))
			if err != nil {
				t.Fatalf("parseFilter() error = %v", err)
			}
			if filter.Ascending != tt.wantAscending {
				t.Errorf("ascending = %v, want %v", filter.Ascending, tt.wantAscending)
			}
		})
	}
}

func TestParseFilterRejectsUnknownOrdering(t *testing.T) {
	if _, err := parseFilter(requestCtx("/payments/?ordering=amount")); err == nil {
		t.Error("expected validation error for unsupported ordering field")
	}
}
