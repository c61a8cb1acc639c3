package main

import (
	"testing"

	"golang.org/x/xerrors"
)

func mustRecord(t *testing.T, service, question, response, date string, wait int) Record {
	t.Helper()
	rec, err := NewRecord(service, question, response, date, wait)
	if err != nil {
		t.Fatalf("NewRecord: %v", err)
	}
	return rec
}

func TestNewRecord(t *testing.T) {
	t.Parallel()

	rec := mustRecord(t, "A", "Billing", "Resolved", "01.01.2020", 10)
	if rec.Service != "A" || rec.QuestionType != "Billing" || rec.Response != "Resolved" || rec.WaitTime != 10 {
		t.Fatalf("unexpected record %#v", rec)
	}
	if got := rec.Date.Format(DateLayout); got != "01.01.2020" {
		t.Fatalf("date=%s", got)
	}

	_, err := NewRecord("A", "Billing", "Resolved", "31.02.2020", 10)
	var de *MalformedDateError
	if !xerrors.As(err, &de) {
		t.Fatalf("bad date err=%v", err)
	}

	_, err = NewRecord("A", "Billing", "Resolved", "01.01.2020", -1)
	var ie *MalformedIntegerError
	if !xerrors.As(err, &ie) {
		t.Fatalf("negative wait err=%v", err)
	}
}

func TestStoreOrder(t *testing.T) {
	t.Parallel()

	s := NewStore()
	if s.Len() != 0 || len(s.All()) != 0 {
		t.Fatalf("new store not empty")
	}
	s.Append(mustRecord(t, "A", "q", "r", "01.01.2020", 1))
	s.Append(mustRecord(t, "B", "q", "r", "01.01.2020", 2))
	s.Append(mustRecord(t, "A", "q", "r", "01.01.2020", 3))

	all := s.All()
	if len(all) != 3 || s.Len() != 3 {
		t.Fatalf("len=%d", len(all))
	}
	for i, want := range []int{1, 2, 3} {
		if all[i].WaitTime != want {
			t.Errorf("all[%d].WaitTime=%d want %d", i, all[i].WaitTime, want)
		}
	}

	a := s.ByService("A")
	if len(a) != 2 || a[0].WaitTime != 1 || a[1].WaitTime != 3 {
		t.Fatalf("ByService(A)=%#v", a)
	}
	if got := s.ByService("missing"); len(got) != 0 {
		t.Fatalf("ByService(missing)=%#v", got)
	}
}

func TestStoreViewIsStable(t *testing.T) {
	t.Parallel()

	s := NewStore()
	for i := 0; i < 4; i++ {
		s.Append(mustRecord(t, "A", "q", "r", "01.01.2020", i))
	}
	view := s.All()
	s.Append(mustRecord(t, "A", "q", "r", "01.01.2020", 100))

	if len(view) != 4 {
		t.Fatalf("view grew to %d", len(view))
	}
	// appending to the view must not clobber the store
	view = append(view, mustRecord(t, "B", "q", "r", "01.01.2020", 200))
	if got := s.All()[4]; got.WaitTime != 100 {
		t.Fatalf("store record overwritten: %#v", got)
	}
	_ = view
}

func TestZeroStore(t *testing.T) {
	t.Parallel()

	var s Store
	s.Append(mustRecord(t, "A", "q", "r", "01.01.2020", 1))
	if len(s.ByService("A")) != 1 {
		t.Fatalf("zero store lost index")
	}
}
