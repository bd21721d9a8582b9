package bgpsim

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTempFile(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
	return path
}

func TestLoadCAIDARelationships(t *testing.T) {
	dir := t.TempDir()
	path := writeTempFile(t, dir, "rel.txt", strings.Join([]string{
		"1|2|-1",
		"2|3|0",
		"",           // blank line skipped
		"bogus|line", // too few fields, skipped
		"4|x|-1",     // non-numeric field, skipped
	}, "\n"))

	g := NewASGraph()
	if err := LoadCAIDARelationships(g, path); err != nil {
		t.Fatalf("LoadCAIDARelationships: %v", err)
	}

	n1, n2, n3 := g.GetOrCreate(1), g.GetOrCreate(2), g.GetOrCreate(3)
	if _, ok := n1.Customers[2]; !ok {
		t.Errorf("AS1 should have AS2 as a customer")
	}
	if _, ok := n2.Providers[1]; !ok {
		t.Errorf("AS2 should have AS1 as a provider")
	}
	if _, ok := n2.Peers[3]; !ok {
		t.Errorf("AS2 should have AS3 as a peer")
	}
	if _, ok := n3.Peers[2]; !ok {
		t.Errorf("AS3 should have AS2 as a peer")
	}
	if _, ok := g.Nodes()[4]; ok {
		t.Errorf("the malformed AS4 line must not have created a node")
	}
}

func TestLoadCAIDARelationshipsUnionAcrossFiles(t *testing.T) {
	dir := t.TempDir()
	fileA := writeTempFile(t, dir, "a.txt", "1|2|-1\n")
	fileB := writeTempFile(t, dir, "b.txt", "2|3|-1\n")

	gAB := NewASGraph()
	if err := LoadCAIDARelationships(gAB, fileA); err != nil {
		t.Fatal(err)
	}
	if err := LoadCAIDARelationships(gAB, fileB); err != nil {
		t.Fatal(err)
	}

	gBA := NewASGraph()
	if err := LoadCAIDARelationships(gBA, fileB); err != nil {
		t.Fatal(err)
	}
	if err := LoadCAIDARelationships(gBA, fileA); err != nil {
		t.Fatal(err)
	}

	for _, g := range []*ASGraph{gAB, gBA} {
		if _, ok := g.Nodes()[1].Customers[2]; !ok {
			t.Errorf("AS1 must have AS2 as a customer regardless of load order")
		}
		if _, ok := g.Nodes()[2].Customers[3]; !ok {
			t.Errorf("AS2 must have AS3 as a customer regardless of load order")
		}
	}
}

func TestLoadCAIDARelationshipsMissingFile(t *testing.T) {
	g := NewASGraph()
	if err := LoadCAIDARelationships(g, filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Errorf("expected an error opening a nonexistent relationships file")
	}
}

func TestLoadROVASNs(t *testing.T) {
	dir := t.TempDir()
	path := writeTempFile(t, dir, "rov.txt", "2\n\nnotanumber\n5\n")

	g := NewASGraph()
	n2 := g.GetOrCreate(2)
	if err := LoadROVASNs(g, path); err != nil {
		t.Fatalf("LoadROVASNs: %v", err)
	}

	if _, ok := n2.Policy.(*ROVPolicy); !ok {
		t.Errorf("AS2's policy should have been replaced with ROVPolicy")
	}
	n5 := g.Nodes()[5]
	if n5 == nil {
		t.Fatalf("AS5 should have been created on demand")
	}
	if _, ok := n5.Policy.(*ROVPolicy); !ok {
		t.Errorf("AS5's policy should be ROVPolicy")
	}
}

func TestSeedAnnouncements(t *testing.T) {
	dir := t.TempDir()
	path := writeTempFile(t, dir, "seed.csv", strings.Join([]string{
		"seed_asn,prefix,rov_invalid",
		"7,10.0.0.0/24,False",
		"8,10.1.0.0/24,True",
		"", // blank row skipped
	}, "\n"))

	g := NewASGraph()
	if err := SeedAnnouncements(g, path); err != nil {
		t.Fatalf("SeedAnnouncements: %v", err)
	}

	rows7 := g.Nodes()[7].Policy.DumpRibToCsvRows(nil)
	if len(rows7) != 1 || rows7[0].AsPath != "(7,)" {
		t.Errorf("AS7 RIB = %+v, want a single (7,) row", rows7)
	}

	rows8 := g.Nodes()[8].Policy.DumpRibToCsvRows(nil)
	if len(rows8) != 1 || rows8[0].AsPath != "(8,)" {
		t.Errorf("AS8 RIB = %+v, want a single (8,) row (rov_invalid only matters to ROV policies downstream)", rows8)
	}
}

func TestWriteRIBsCSV(t *testing.T) {
	g := NewASGraph()
	n2, n1 := g.GetOrCreate(2), g.GetOrCreate(1)
	n1.addCustomer(n2)
	n2.addProvider(n1)
	g.ComputeRanks()

	ann := Announcement{Prefix: "10.0.0.0/24", AsPath: []int{2}, NextHopAsn: 2, Rel: Origin}
	n2.Policy.Receive("10.0.0.0/24", ann, Origin)
	for _, n := range g.Nodes() {
		n.Policy.ProcessReceived()
	}
	Converge(g)

	out := filepath.Join(t.TempDir(), "ribs.csv")
	if err := WriteRIBsCSV(g, out); err != nil {
		t.Fatalf("WriteRIBsCSV: %v", err)
	}

	contents, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(contents), "\n"), "\n")
	if lines[0] != "asn,prefix,as_path" {
		t.Fatalf("header = %q, want %q", lines[0], "asn,prefix,as_path")
	}
	want := []string{
		`1,10.0.0.0/24,"(1, 2)"`,
		`2,10.0.0.0/24,"(2,)"`,
	}
	if len(lines) != 1+len(want) {
		t.Fatalf("got %d lines, want %d: %v", len(lines), 1+len(want), lines)
	}
	for i, w := range want {
		if lines[i+1] != w {
			t.Errorf("line %d = %q, want %q", i+1, lines[i+1], w)
		}
	}
}
