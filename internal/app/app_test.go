package app

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/riskibarqy/fpl-cli/internal/config"
	"github.com/riskibarqy/fpl-cli/internal/interfaces/cli"
	"github.com/riskibarqy/fpl-cli/internal/platform/logging"
)

func TestNewCLI_RejectsUnknownCatalog(t *testing.T) {
	t.Parallel()

	_, err := NewCLI(config.Config{FPLStatCatalog: "v9"}, logging.NewNop(), &bytes.Buffer{}, &bytes.Buffer{})
	if err == nil {
		t.Fatalf("expected error for unknown catalog")
	}
}

func TestNewCLI_TeamCommandEndToEnd(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/bootstrap-static/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"events":[],"elements":[],"teams":[{"id":1,"name":"Arsenal","short_name":"ARS","strength":4}]}`))
	}))
	defer srv.Close()

	var stdout, stderr bytes.Buffer
	handler, err := NewCLI(config.Config{
		FPLBaseURL:     srv.URL + "/api",
		FPLStatCatalog: "v2",
	}, logging.NewNop(), &stdout, &stderr)
	if err != nil {
		t.Fatalf("new cli: %v", err)
	}

	if code := handler.Run(context.Background(), []string{"team"}); code != cli.ExitOK {
		t.Fatalf("unexpected exit code %d, stderr=%s", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "1    Arsenal              ARS      4") {
		t.Fatalf("unexpected output:\n%s", stdout.String())
	}
}
