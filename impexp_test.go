package xirr

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestImportCashFlows(t *testing.T) {
	input := `
{"date":"2024-01-01","amount":-100000,"currency":"EUR","label":"initial"}
{"date":"2024-6-15","amount":"5000","currency":"EUR"}

{"date":"2024-12-31","amount":115000,"currency":"EUR","label":"final"}
`
	flows, err := ImportCashFlows(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ImportCashFlows() error = %v", err)
	}
	if len(flows) != 3 {
		t.Fatalf("len(flows) = %d, want 3", len(flows))
	}
	if got, want := flows[0].Amount, EUR(-100000); !got.Equal(want) {
		t.Errorf("flows[0].Amount = %v, want %v", got, want)
	}
	if got, want := flows[1].Date, on("2024-06-15"); got != want {
		t.Errorf("flows[1].Date = %v, want %v", got, want)
	}
	if got, want := flows[2].Label, "final"; got != want {
		t.Errorf("flows[2].Label = %q, want %q", got, want)
	}
}

func TestImportCashFlows_BadLine(t *testing.T) {
	input := `{"date":"2024-01-01","amount":-100000}
{"date":"not a date","amount":1}
`
	if _, err := ImportCashFlows(strings.NewReader(input)); err == nil {
		t.Error("ImportCashFlows() with a bad date expected an error")
	}
	if _, err := ImportCashFlows(strings.NewReader(`{"date":"2024-01-01","amount":"x"}`)); err == nil {
		t.Error("ImportCashFlows() with a bad amount expected an error")
	}
}

func TestImportCashFlows_MixedCurrency(t *testing.T) {
	input := `{"date":"2024-01-01","amount":-100,"currency":"EUR"}
{"date":"2024-02-01","amount":100,"currency":"USD"}
`
	if _, err := ImportCashFlows(strings.NewReader(input)); !errors.Is(err, ErrMixedCurrency) {
		t.Errorf("ImportCashFlows() error = %v, want ErrMixedCurrency", err)
	}
}

func TestCashFlows_RoundTrip(t *testing.T) {
	flows := CashFlowSequence{
		{Date: on("2024-01-01"), Amount: EUR(-100000), Label: "initial"},
		{Date: on("2024-06-15"), Amount: EUR(5000.50)},
		{Date: on("2024-12-31"), Amount: EUR(115000), Label: "final"},
	}
	var buf bytes.Buffer
	if err := ExportCashFlows(&buf, flows); err != nil {
		t.Fatalf("ExportCashFlows() error = %v", err)
	}
	back, err := ImportCashFlows(&buf)
	if err != nil {
		t.Fatalf("ImportCashFlows() error = %v", err)
	}
	if len(back) != len(flows) {
		t.Fatalf("len(back) = %d, want %d", len(back), len(flows))
	}
	for i := range flows {
		if back[i].Date != flows[i].Date || !back[i].Amount.Equal(flows[i].Amount) || back[i].Label != flows[i].Label {
			t.Errorf("flow %d round trip = %+v, want %+v", i, back[i], flows[i])
		}
	}
}

func TestPeriods_RoundTrip(t *testing.T) {
	periods := []Period{
		mp("2023", "2023-01-01", "2023-12-31", 100000, 112000),
		{Label: "open", Start: on("2025-01-01"), End: on("2025-12-31")},
	}
	var buf bytes.Buffer
	if err := ExportPeriods(&buf, periods); err != nil {
		t.Fatalf("ExportPeriods() error = %v", err)
	}
	back, err := ImportPeriods(&buf)
	if err != nil {
		t.Fatalf("ImportPeriods() error = %v", err)
	}
	if len(back) != 2 {
		t.Fatalf("len(back) = %d, want 2", len(back))
	}
	if got, want := back[0].Label, "2023"; got != want {
		t.Errorf("back[0].Label = %q, want %q", got, want)
	}
	if back[0].StartValue == nil || !back[0].StartValue.Equal(NO(100000)) {
		t.Errorf("back[0].StartValue = %v, want 100000", back[0].StartValue)
	}
	if back[1].StartValue != nil || back[1].EndValue != nil {
		t.Errorf("back[1] values = %v/%v, want absent", back[1].StartValue, back[1].EndValue)
	}
}

func TestImportDelimited(t *testing.T) {
	t.Run("csv with header", func(t *testing.T) {
		input := "date,amount,label\n2024-01-01,-100000,initial\n2024-12-31,115000,final\n"
		flows, err := ImportDelimited(strings.NewReader(input), ',', "EUR")
		if err != nil {
			t.Fatalf("ImportDelimited() error = %v", err)
		}
		if len(flows) != 2 {
			t.Fatalf("len(flows) = %d, want 2", len(flows))
		}
		if got, want := flows[0].Amount, EUR(-100000); !got.Equal(want) {
			t.Errorf("flows[0].Amount = %v, want %v", got, want)
		}
		if got, want := flows[1].Label, "final"; got != want {
			t.Errorf("flows[1].Label = %q, want %q", got, want)
		}
	})

	t.Run("tab delimited without header", func(t *testing.T) {
		input := "2024-01-01\t-100000\n2024-12-31\t115000\n"
		flows, err := ImportDelimited(strings.NewReader(input), '\t', "")
		if err != nil {
			t.Fatalf("ImportDelimited() error = %v", err)
		}
		if len(flows) != 2 {
			t.Fatalf("len(flows) = %d, want 2", len(flows))
		}
	})

	t.Run("bad date past the header", func(t *testing.T) {
		input := "2024-01-01,-100000\nnope,115000\n"
		if _, err := ImportDelimited(strings.NewReader(input), ',', ""); err == nil {
			t.Error("ImportDelimited() with a bad date expected an error")
		}
	})

	t.Run("too few fields", func(t *testing.T) {
		if _, err := ImportDelimited(strings.NewReader("2024-01-01\n"), ',', ""); err == nil {
			t.Error("ImportDelimited() with one field expected an error")
		}
	})
}

func TestImportVendorCashFlows(t *testing.T) {
	payload := []byte(`{
		"meta": {"account": "ACC-1"},
		"activity": {
			"dates": ["2024-01-01", "2024-06-15", "2024-12-31"],
			"amounts": [-100000, 5000, 115000],
			"notes": ["initial", "dividend", "final"]
		}
	}`)
	q := VendorQuery{
		Dates:   "$.activity.dates",
		Amounts: "$.activity.amounts",
		Labels:  "$.activity.notes",
	}
	flows, err := ImportVendorCashFlows(payload, q, "USD")
	if err != nil {
		t.Fatalf("ImportVendorCashFlows() error = %v", err)
	}
	if len(flows) != 3 {
		t.Fatalf("len(flows) = %d, want 3", len(flows))
	}
	if got, want := flows[0].Amount, USD(-100000); !got.Equal(want) {
		t.Errorf("flows[0].Amount = %v, want %v", got, want)
	}
	if got, want := flows[1].Label, "dividend"; got != want {
		t.Errorf("flows[1].Label = %q, want %q", got, want)
	}

	t.Run("length mismatch", func(t *testing.T) {
		bad := []byte(`{"activity":{"dates":["2024-01-01"],"amounts":[1,2]}}`)
		q := VendorQuery{Dates: "$.activity.dates", Amounts: "$.activity.amounts"}
		if _, err := ImportVendorCashFlows(bad, q, ""); err == nil {
			t.Error("ImportVendorCashFlows() with mismatched arrays expected an error")
		}
	})
}
