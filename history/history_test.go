package history

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

// fixedClock returns a clock that always reads the same instant.
func fixedClock(ms int64) func() time.Time {
	return func() time.Time { return time.UnixMilli(ms) }
}

func TestPushOrder(t *testing.T) {
	s := Open(filepath.Join(t.TempDir(), "history.json"))
	s.now = fixedClock(1000)
	for _, line := range []string{"1+1 = 2", "2*3 = 6", "5! = 120"} {
		if _, err := s.Push(line); err != nil {
			t.Fatal(err)
		}
	}
	want := []Entry{
		{Time: 1002, Line: "5! = 120"},
		{Time: 1001, Line: "2*3 = 6"},
		{Time: 1000, Line: "1+1 = 2"},
	}
	if diff := cmp.Diff(want, s.List()); diff != "" {
		t.Errorf("wrong entries (-want +got):\n%s", diff)
	}
}

func TestPushCap(t *testing.T) {
	for _, path := range []string{"", filepath.Join(t.TempDir(), "h.json")} {
		s := Open(path)
		for i := 0; i < Max+25; i++ {
			s.now = fixedClock(int64(i) * 10)
			if _, err := s.Push(strconv.Itoa(i)); err != nil {
				t.Fatal(err)
			}
		}
		hist := s.List()
		if len(hist) != Max {
			t.Fatalf("%q: want %d entries, got %d", path, Max, len(hist))
		}
		if hist[0].Line != strconv.Itoa(Max+24) {
			t.Errorf("%q: newest entry is %q", path, hist[0].Line)
		}
		if hist[Max-1].Line != "25" {
			t.Errorf("%q: oldest entry is %q", path, hist[Max-1].Line)
		}
	}
}

func TestPersist(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "history.json")
	s := Open(path)
	e, err := s.Push("sqrt(16) = 4")
	if err != nil {
		t.Fatal(err)
	}
	r := Open(path).List()
	if diff := cmp.Diff([]Entry{e}, r); diff != "" {
		t.Errorf("reopened store differs (-want +got):\n%s", diff)
	}
}

func TestCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	if err := os.WriteFile(path, []byte(`[{"t":1,"line":`), 0o644); err != nil {
		t.Fatal(err)
	}
	s := Open(path)
	if hist := s.List(); len(hist) != 0 {
		t.Errorf("corrupt log gave %v", hist)
	}
	if _, err := s.Push("1 = 1"); err != nil {
		t.Fatal(err)
	}
	if hist := s.List(); len(hist) != 1 {
		t.Errorf("push over corrupt log gave %v", hist)
	}
}

func TestDelete(t *testing.T) {
	s := Open("")
	s.now = fixedClock(5)
	a, _ := s.Push("a")
	b, _ := s.Push("b")
	c, _ := s.Push("c")
	ok, err := s.Delete(b.Time)
	if err != nil || !ok {
		t.Fatalf("delete existing: %t %v", ok, err)
	}
	if diff := cmp.Diff([]Entry{c, a}, s.List()); diff != "" {
		t.Errorf("wrong entries after delete (-want +got):\n%s", diff)
	}
	ok, err = s.Delete(b.Time)
	if err != nil || ok {
		t.Errorf("delete missing: %t %v", ok, err)
	}
	if _, ok := s.Get(b.Time); ok {
		t.Errorf("deleted entry still found")
	}
	if e, ok := s.Get(a.Time); !ok || e != a {
		t.Errorf("Get(%d) = %v, %t", a.Time, e, ok)
	}
}

func TestClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	s := Open(path)
	s.Push("1")
	if err := s.Clear(); err != nil {
		t.Fatal(err)
	}
	if hist := s.List(); len(hist) != 0 {
		t.Errorf("cleared log has %v", hist)
	}
	if err := s.Clear(); err != nil {
		t.Errorf("clearing twice: %v", err)
	}
}

func TestInput(t *testing.T) {
	cases := []struct {
		line string
		want string
	}{
		{"2+3 = 5", "2+3"},
		{" sin(30) =0.5", "sin(30)"},
		{"no result", "no result"},
		{"a = b = c", "a"},
		{"= 5", ""},
	}
	for _, c := range cases {
		if got := (Entry{Line: c.line}).Input(); got != c.want {
			t.Errorf("Input of %q: want %q, got %q", c.line, c.want, got)
		}
	}
}
