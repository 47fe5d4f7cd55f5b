package table

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestCSVRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out", "investors.csv")

	in := New([]string{"First Name", "Email"})
	in.Append(Row{"First Name": "Ann", "Email": "a@x.com"})
	in.Append(Row{"First Name": "Bob, Jr", "Email": ""})

	if err := WriteCSV(in, path); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}

	out, err := ReadCSV(path)
	if err != nil {
		t.Fatalf("ReadCSV() error = %v", err)
	}

	if !reflect.DeepEqual(out.Columns, in.Columns) {
		t.Errorf("columns = %v, want %v", out.Columns, in.Columns)
	}
	if !reflect.DeepEqual(out.Rows, in.Rows) {
		t.Errorf("rows = %v, want %v", out.Rows, in.Rows)
	}
}

func TestReadCSVPadsShortRecords(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "short.csv")
	content := "A,B,C\n1,2\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	out, err := ReadCSV(path)
	if err != nil {
		t.Fatalf("ReadCSV() error = %v", err)
	}
	if got := out.Rows[0].Get("C"); got != "" {
		t.Errorf("C = %q, want blank padding", got)
	}
}

func TestEnsureColumns(t *testing.T) {
	tab := New([]string{"A"})
	tab.EnsureColumns([]string{"A", "B"})

	if !reflect.DeepEqual(tab.Columns, []string{"A", "B"}) {
		t.Errorf("columns = %v, want [A B]", tab.Columns)
	}
}

func TestSelect(t *testing.T) {
	tab := New([]string{"A", "B"})
	tab.Append(Row{"A": "1", "B": "2"})

	out := tab.Select([]string{"B", "C"})
	if !reflect.DeepEqual(out.Columns, []string{"B", "C"}) {
		t.Errorf("columns = %v", out.Columns)
	}
	if out.Rows[0].Get("B") != "2" || out.Rows[0].Get("C") != "" {
		t.Errorf("row = %v", out.Rows[0])
	}
}

func TestValidateRejectsStrayColumns(t *testing.T) {
	tab := New([]string{"A"})
	tab.Append(Row{"A": "1", "Z": "stray"})

	if err := tab.Validate(); err == nil {
		t.Error("Validate() = nil, want error for undeclared column")
	}
}
