package assets

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/spec-kit/helpdesk-service/internal/domain"
)

func TestImportCommaDelimited(t *testing.T) {
	input := strings.Join([]string{
		"Hostname,Serial Number,Model,Location,Customer",
		"atm-01,SN100,ProCash 280,Centro,Loja A",
		"atm-02,SN101,ProCash 280,Zona Sul,Loja B",
	}, "\n")

	got, err := Import(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}

	want := []domain.Asset{
		{Hostname: "atm-01", SerialNumber: "SN100", Model: "ProCash 280", LocationName: "Centro", CustomerName: "Loja A"},
		{Hostname: "atm-02", SerialNumber: "SN101", Model: "ProCash 280", LocationName: "Zona Sul", CustomerName: "Loja B"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Import() mismatch (-want +got):\n%s", diff)
	}
}

func TestImportSemicolonWithAliases(t *testing.T) {
	input := strings.Join([]string{
		"Terminal;Serie;Modelo;Agencia;Cliente",
		"atm-09;SN900;CINEO C4060;Leblon;Loja C",
		";;;;",
	}, "\n")

	got, err := Import(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}

	want := []domain.Asset{
		{Hostname: "atm-09", SerialNumber: "SN900", Model: "CINEO C4060", LocationName: "Leblon", CustomerName: "Loja C"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Import() mismatch (-want +got):\n%s", diff)
	}
}

func TestImportUnknownHeader(t *testing.T) {
	input := "foo,bar\n1,2\n"
	if _, err := Import(strings.NewReader(input)); err != ErrNoHeader {
		t.Fatalf("Import() error = %v, want ErrNoHeader", err)
	}
}

func TestImportShortRows(t *testing.T) {
	input := "Hostname,Serial\natm-01\n"
	got, err := Import(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}
	if len(got) != 1 || got[0].Hostname != "atm-01" || got[0].SerialNumber != "" {
		t.Fatalf("Import() = %+v, want padded short row", got)
	}
}
