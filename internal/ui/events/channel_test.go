package events

import (
	"reflect"
	"testing"
)

func TestReadersSeeEachEventOnce(t *testing.T) {
	ch := NewChannel[int]()
	a := ch.Register()
	b := ch.Register()

	ch.Write(1)
	ch.Write(2)

	if got := ch.Read(a); !reflect.DeepEqual(got, []int{1, 2}) {
		t.Errorf("a first read = %v", got)
	}
	if got := ch.Read(a); got != nil {
		t.Errorf("a second read = %v, want nil", got)
	}

	ch.Write(3)
	if got := ch.Read(b); !reflect.DeepEqual(got, []int{1, 2, 3}) {
		t.Errorf("b read = %v", got)
	}
	if got := ch.Read(a); !reflect.DeepEqual(got, []int{3}) {
		t.Errorf("a third read = %v", got)
	}
}

func TestLateReaderStartsAtEnd(t *testing.T) {
	ch := NewChannel[string]()
	ch.Write("old")
	r := ch.Register()
	if got := ch.Read(r); got != nil {
		t.Errorf("late reader saw %v", got)
	}
	ch.Write("new")
	if got := ch.Read(r); !reflect.DeepEqual(got, []string{"new"}) {
		t.Errorf("read = %v", got)
	}
}

func TestCompactKeepsUnreadEvents(t *testing.T) {
	ch := NewChannel[int]()
	fast := ch.Register()
	slow := ch.Register()

	for i := 0; i < 4; i++ {
		ch.Write(i)
	}
	ch.Read(fast)
	ch.Compact()
	if ch.Len() != 4 {
		t.Fatalf("Len = %d, want 4 while slow reader lags", ch.Len())
	}

	if got := ch.Read(slow); !reflect.DeepEqual(got, []int{0, 1, 2, 3}) {
		t.Errorf("slow read = %v", got)
	}
	ch.Compact()
	if ch.Len() != 0 {
		t.Errorf("Len after compact = %d", ch.Len())
	}

	ch.Write(9)
	if ch.Pending(fast) != 1 || ch.Pending(slow) != 1 {
		t.Errorf("pending = %d, %d", ch.Pending(fast), ch.Pending(slow))
	}
	if got := ch.Read(fast); !reflect.DeepEqual(got, []int{9}) {
		t.Errorf("fast read after compact = %v", got)
	}
}
