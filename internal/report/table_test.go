package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bcgov/gh-org-report/internal/models"
)

func TestRenderSummary(t *testing.T) {
	var buf bytes.Buffer
	RenderSummary(&buf, models.ReportSummary{
		Organization: "example-org",
		TotalRepos:   5,
	})
	out := buf.String()
	for _, want := range []string{"example-org", "Repositories", "5"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestRenderPlan(t *testing.T) {
	var buf bytes.Buffer
	RenderPlan(&buf, models.ReconcilePlan{
		UsersToInvite: []string{"amy"},
		UsersToRemove: []string{"bob"},
	})
	out := buf.String()
	for _, want := range []string{"invite", "amy", "remove", "bob"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}
