package cli

import (
	"strings"
	"testing"

	"github.com/lite-lake/simply-dns/internal/domain/valueobject"
)

func planChanges() []*valueobject.Change {
	return []*valueobject.Change{
		valueobject.NewChange(valueobject.ChangeTypeCreate, "example.com", "A:www", nil,
			map[string]string{"data": "1.2.3.4"}, []string{"create A www -> 1.2.3.4"}),
		valueobject.NewChange(valueobject.ChangeTypeUpdate, "example.com", "MX:@",
			map[string]string{"ttl": "300"}, map[string]string{"ttl": "3600"},
			[]string{"update ttl 300 -> 3600"}),
		valueobject.NewChange(valueobject.ChangeTypeDelete, "example.org", "TXT:_acme", nil, nil,
			[]string{"delete TXT _acme"}),
	}
}

func TestDisplayChanges(t *testing.T) {
	var buf strings.Builder
	displayChanges(&buf, planChanges(), true)

	want := `+ example.com: A:www
    - create A www -> 1.2.3.4
~ example.com: MX:@
    - update ttl 300 -> 3600
- example.org: TXT:_acme
    - delete TXT _acme
`
	if got := buf.String(); got != want {
		t.Errorf("unexpected output:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestDisplayChanges_WithoutActions(t *testing.T) {
	var buf strings.Builder
	displayChanges(&buf, planChanges(), false)

	got := buf.String()
	if strings.Contains(got, "    - ") {
		t.Errorf("actions should be suppressed, got:\n%s", got)
	}
	for _, line := range []string{"+ example.com: A:www", "~ example.com: MX:@", "- example.org: TXT:_acme"} {
		if !strings.Contains(got, line) {
			t.Errorf("missing line %q in:\n%s", line, got)
		}
	}
}
