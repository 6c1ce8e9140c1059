package roster

import "testing"

func TestDisplayJobRole(t *testing.T) {
	cases := []struct {
		in    string
		label string
		order int
	}{
		{"caja", "caja", 1},
		{"Caja", "caja", 1},
		{"camarero", "camarero/a", 2},
		{"camarero/a", "camarero/a", 2},
		{"runner_bacha", "runner/bacha", 3},
		{"runner/bacha", "runner/bacha", 3},
		{"encargado", "encargado", 98},
		{"", "", 99},
	}

	for _, tc := range cases {
		got := DisplayJobRole(tc.in)
		if got.Label != tc.label || got.Order != tc.order {
			t.Errorf("DisplayJobRole(%q) = %+v, want {%q %d}", tc.in, got, tc.label, tc.order)
		}
	}
}

func TestDisplayJobRoleOrdering(t *testing.T) {
	caja := DisplayJobRole("caja")
	camarero := DisplayJobRole("camarero")
	runner := DisplayJobRole("runner_bacha")
	other := DisplayJobRole("encargado")
	empty := DisplayJobRole("")

	if !(caja.Order < camarero.Order && camarero.Order < runner.Order && runner.Order < other.Order && other.Order < empty.Order) {
		t.Errorf("puesto precedence broken: %d %d %d %d %d",
			caja.Order, camarero.Order, runner.Order, other.Order, empty.Order)
	}
}

func TestNormalizeJobRole(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"caja", "caja"},
		{" CAJA ", "caja"},
		{"camarero", "camarero"},
		{"Camarero/a", "camarero"},
		{"runner/bacha", "runner_bacha"},
		{"runner_bacha", "runner_bacha"},
		{"", "camarero"},
		{"lo-que-sea", "camarero"},
	}

	for _, tc := range cases {
		if got := NormalizeJobRole(tc.in); got != tc.want {
			t.Errorf("NormalizeJobRole(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
