package essence

import (
	"errors"
	"strings"
	"testing"
)

func cloneTable() []entry {
	table := make([]entry, len(registry))
	copy(table, registry[:])
	return table
}

func TestCheckTableDetectsCorruption(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func([]entry) []entry
		count   Kind
		message string
	}{
		{
			name: "swapped rows",
			mutate: func(table []entry) []entry {
				table[DV50], table[DV100_1080i] = table[DV100_1080i], table[DV50]
				return table
			},
			count:   kindCount,
			message: "row 9 holds kind 10",
		},
		{
			name:    "missing row",
			mutate:  func(table []entry) []entry { return table[:len(table)-1] },
			count:   kindCount,
			message: "62 rows for 63 declared kinds",
		},
		{
			name: "duplicate label",
			mutate: func(table []entry) []entry {
				table[VBIData].label = table[ANCData].label
				return table
			},
			count:   kindCount,
			message: `label "ANC data" already used by row 61`,
		},
		{
			name: "label differing only in case",
			mutate: func(table []entry) []entry {
				table[VBIData].label = "anc DATA"
				return table
			},
			count:   kindCount,
			message: `label "anc DATA" already used by row 61 ("ANC data")`,
		},
		{
			name: "name differing only in case",
			mutate: func(table []entry) []entry {
				table[D10_50].name = "D10_40"
				return table
			},
			count:   kindCount,
			message: `name "D10_40" already used by row 5 ("d10_40")`,
		},
		{
			name: "duplicate name",
			mutate: func(table []entry) []entry {
				table[D10_40].name = "d10_30"
				return table
			},
			count:   kindCount,
			message: `name "d10_30" already used by row 4`,
		},
		{
			name: "empty label",
			mutate: func(table []entry) []entry {
				table[UncSD].label = "  "
				return table
			},
			count:   kindCount,
			message: "empty label",
		},
		{
			name: "concrete kind grouped as unknown",
			mutate: func(table []entry) []entry {
				table[WavePCM].generic = Unknown
				return table
			},
			count:   kindCount,
			message: `concrete kind "wave_pcm" maps to generic 0`,
		},
		{
			name: "concrete kind grouped under concrete kind",
			mutate: func(table []entry) []entry {
				table[DV50].generic = D10_30
				return table
			},
			count:   kindCount,
			message: `concrete kind "dv50" maps to generic 4`,
		},
		{
			name: "generic kind not reflexive",
			mutate: func(table []entry) []entry {
				table[Sound].generic = Picture
				return table
			},
			count:   kindCount,
			message: "generic kind 2 maps to 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkTable(tt.mutate(cloneTable()), tt.count)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.message) {
				t.Fatalf("expected %q in error, got %v", tt.message, err)
			}
		})
	}
}

func TestCheckTableReportsEveryViolation(t *testing.T) {
	table := cloneTable()
	table[Picture].label = ""
	table[Data].name = ""
	err := checkTable(table, kindCount)
	if err == nil {
		t.Fatal("expected error")
	}
	for _, want := range []string{"row 1: empty label", "row 3: empty name"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("expected %q in %v", want, err)
		}
	}
}

func TestLookupRejectsMisalignedRow(t *testing.T) {
	table := cloneTable()
	table[WavePCM] = table[D10AES3PCM]

	defer func() {
		recovered := recover()
		err, ok := recovered.(error)
		if !ok {
			t.Fatalf("expected error panic, got %#v", recovered)
		}
		var violation *ContractViolation
		if !errors.As(err, &violation) {
			t.Fatalf("expected *ContractViolation, got %v", err)
		}
		if violation.Kind != WavePCM {
			t.Fatalf("violation kind = %d, want %d", int(violation.Kind), int(WavePCM))
		}
		if !strings.Contains(violation.Reason, "holds kind 60") {
			t.Fatalf("unexpected reason %q", violation.Reason)
		}
	}()
	_ = lookup(table, WavePCM)
}

func TestLookupAcceptsAlignedRows(t *testing.T) {
	for i := range registry {
		k := Kind(i)
		if got := lookup(registry[:], k); got.kind != k {
			t.Fatalf("lookup(%d) returned row for %d", i, int(got.kind))
		}
	}
}

func TestRunGroupsIsolatesFailures(t *testing.T) {
	table := cloneTable()
	table[D10_50].label = table[D10_40].label

	results := runGroups(table, kindCount)
	if len(results) != 4 {
		t.Fatalf("expected 4 groups, got %d", len(results))
	}
	for _, result := range results {
		failed := result.Err != nil
		if want := result.Group == "labels"; failed != want {
			t.Fatalf("group %s: failed=%v, want %v (%v)", result.Group, failed, want, result.Err)
		}
	}
}

func TestCheckGroupsPassForCompiledTable(t *testing.T) {
	for _, result := range CheckGroups() {
		if result.Err != nil {
			t.Fatalf("group %s: %v", result.Group, result.Err)
		}
	}
}
