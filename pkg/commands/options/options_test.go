package options

import (
	"errors"
	"testing"
	"time"
)

func TestParseDishID(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{in: "2", want: 2},
		{in: "#3", want: 3},
		{in: " 0 ", want: 0},
		{in: "-1", wantErr: true},
		{in: "pizza", wantErr: true},
	}
	for _, tc := range tests {
		got, err := ParseDishID(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("%q: expected error", tc.in)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Errorf("%q: got %d, %v; want %d", tc.in, got, err, tc.want)
		}
	}
}

func TestDishArgs(t *testing.T) {
	i := &InteractiveOptions{}
	check := DishArgs(i)
	if err := check(nil, nil); err == nil {
		t.Fatal("expected an error without id")
	}
	if err := check(nil, []string{"1", "2"}); err == nil {
		t.Fatal("expected an error with two ids")
	}
	i.Interactive = true
	if err := check(nil, nil); err != nil {
		t.Fatalf("interactive needs no id: %v", err)
	}
}

func TestReserveGetAt(t *testing.T) {
	now := time.Date(2024, time.December, 5, 10, 0, 0, 0, time.UTC)
	tests := []struct {
		in   string
		want time.Time
	}{
		{in: "2025-1-3 19:30", want: time.Date(2025, time.January, 3, 19, 30, 0, 0, time.UTC)},
		{in: "12/24 20:00", want: time.Date(2024, time.December, 24, 20, 0, 0, 0, time.UTC)},
		{in: "1/3 19:00", want: time.Date(2025, time.January, 3, 19, 0, 0, 0, time.UTC)},
		{in: "2025-01-03T19:30:00Z", want: time.Date(2025, time.January, 3, 19, 30, 0, 0, time.UTC)},
	}
	for _, tc := range tests {
		o := ReserveOptions{AtString: tc.in}
		got, err := o.GetAt(now)
		if err != nil {
			t.Errorf("%q: %v", tc.in, err)
			continue
		}
		if !got.Equal(tc.want) {
			t.Errorf("%q: got %s, want %s", tc.in, got, tc.want)
		}
	}

	o := ReserveOptions{}
	if got, err := o.GetAt(now); got != nil || err != nil {
		t.Fatalf("unset --at should be nil, got %v %v", got, err)
	}
	o = ReserveOptions{InString: "1d 2h"}
	if got, err := o.GetAt(now); err != nil || !got.Equal(now.Add(26*time.Hour)) {
		t.Fatalf("--in: got %v %v", got, err)
	}
	o.AtString = "12/24 20:00"
	if _, err := o.GetAt(now); err == nil {
		t.Fatal("expected an error for --at with --in")
	}
	o = ReserveOptions{AtString: "tomorrow"}
	if _, err := o.GetAt(now); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestHandleError(t *testing.T) {
	o := &OutputOptions{}
	err := errors.New("boom")
	if got := o.HandleError(err); got != err {
		t.Fatalf("plain output should pass the error through, got %v", got)
	}
	o.JSON = true
	if got := o.HandleError(err); got != nil {
		t.Fatalf("json output should swallow the error, got %v", got)
	}
	if got := o.HandleError(nil); got != nil {
		t.Fatalf("nil stays nil, got %v", got)
	}
}

func TestMCPListenAddr(t *testing.T) {
	o := MCPOptions{Host: " ", Port: 0}
	if got, err := o.ListenAddr(); err != nil || got != "127.0.0.1:0" {
		t.Fatalf("got %q, %v", got, err)
	}
	o = MCPOptions{Host: "::1", Port: 9000}
	if got, _ := o.ListenAddr(); got != "[::1]:9000" {
		t.Fatalf("got %q", got)
	}
	o.Port = 70000
	if _, err := o.ListenAddr(); err == nil {
		t.Fatal("expected an error for an out of range port")
	}
}
