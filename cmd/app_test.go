package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("cannot write %s: %v", name, err)
	}
	return path
}

func TestDecodeCashFlows_ByExtension(t *testing.T) {
	t.Run("jsonl", func(t *testing.T) {
		path := writeFile(t, "flows.jsonl", `{"date":"2024-01-01","amount":-100}`+"\n")
		flows, err := DecodeCashFlows(path, "")
		if err != nil {
			t.Fatalf("DecodeCashFlows() error = %v", err)
		}
		if len(flows) != 1 {
			t.Errorf("len(flows) = %d, want 1", len(flows))
		}
	})

	t.Run("csv", func(t *testing.T) {
		path := writeFile(t, "flows.csv", "date,amount\n2024-01-01,-100\n2024-12-31,110\n")
		flows, err := DecodeCashFlows(path, "EUR")
		if err != nil {
			t.Fatalf("DecodeCashFlows() error = %v", err)
		}
		if len(flows) != 2 {
			t.Errorf("len(flows) = %d, want 2", len(flows))
		}
		if got := flows[0].Amount.Currency(); got != "EUR" {
			t.Errorf("currency = %q, want EUR", got)
		}
	})

	t.Run("tsv", func(t *testing.T) {
		path := writeFile(t, "flows.tsv", "2024-01-01\t-100\n2024-12-31\t110\n")
		flows, err := DecodeCashFlows(path, "")
		if err != nil {
			t.Fatalf("DecodeCashFlows() error = %v", err)
		}
		if len(flows) != 2 {
			t.Errorf("len(flows) = %d, want 2", len(flows))
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := DecodeCashFlows(filepath.Join(t.TempDir(), "nope.jsonl"), ""); err == nil {
			t.Error("DecodeCashFlows() on a missing file expected an error")
		}
	})
}

func TestDecodePeriods(t *testing.T) {
	path := writeFile(t, "periods.jsonl",
		`{"label":"2024","start":"2024-01-01","end":"2024-12-31","startValue":100000,"endValue":115000}`+"\n")
	periods, err := DecodePeriods(path)
	if err != nil {
		t.Fatalf("DecodePeriods() error = %v", err)
	}
	if len(periods) != 1 {
		t.Fatalf("len(periods) = %d, want 1", len(periods))
	}
	if periods[0].StartValue == nil || periods[0].EndValue == nil {
		t.Error("period values not decoded")
	}
}
