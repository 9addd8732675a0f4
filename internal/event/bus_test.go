package event

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

func quietBus() *Bus {
	return NewBus(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
}

func TestBus_Subscribe(t *testing.T) {
	bus := quietBus()

	called := false
	id := bus.Subscribe(TypeTeamRegistered, func(e Event) {
		called = true
	})

	if id == "" {
		t.Error("Subscribe should return a non-empty ID")
	}
	if bus.SubscriptionCount() != 1 {
		t.Errorf("SubscriptionCount() = %d, want 1", bus.SubscriptionCount())
	}
	if called {
		t.Error("handler called before any publish")
	}
}

func TestBus_Publish(t *testing.T) {
	bus := quietBus()

	var received Event
	bus.Subscribe(TypeTeamRegistered, func(e Event) {
		received = e
	})

	bus.Publish(NewTeamRegisteredEvent("2026A", "Leones FC", "Youth", 12))

	got, ok := received.(TeamRegisteredEvent)
	if !ok {
		t.Fatalf("received %T, want TeamRegisteredEvent", received)
	}
	if got.Team != "Leones FC" || got.Season != "2026A" || got.Players != 12 {
		t.Errorf("event = %+v", got)
	}
	if got.Timestamp().IsZero() {
		t.Error("Timestamp() is zero")
	}
}

func TestBus_On(t *testing.T) {
	bus := quietBus()

	var rejected []string
	On(bus, TypeTeamRejected, func(e RegistrationRejectedEvent) {
		rejected = append(rejected, e.Team)
	})

	bus.Publish(NewRegistrationRejectedEvent("2026A", "Tigres", errors.New("taken")))
	// same type string, different Go type: skipped
	bus.Publish(newBaseEvent(TypeTeamRejected))
	bus.Publish(NewTeamRegisteredEvent("2026A", "Leones", "Youth", 7))

	if len(rejected) != 1 || rejected[0] != "Tigres" {
		t.Errorf("rejected = %v, want [Tigres]", rejected)
	}
}

func TestBus_DispatchOrder(t *testing.T) {
	bus := quietBus()

	var calls []string
	bus.SubscribeAll(func(e Event) { calls = append(calls, "wildcard") })
	bus.Subscribe(TypeTemplatesReloaded, func(e Event) { calls = append(calls, "first") })
	bus.Subscribe(TypeTemplatesReloaded, func(e Event) { calls = append(calls, "second") })
	bus.Subscribe("other", func(e Event) { calls = append(calls, "other") })

	bus.Publish(NewTemplatesReloadedEvent("league.yaml", 2, 3, nil))

	want := "first,second,wildcard"
	if got := strings.Join(calls, ","); got != want {
		t.Errorf("dispatch order = %s, want %s", got, want)
	}
}

func TestBus_Unsubscribe(t *testing.T) {
	bus := quietBus()

	calls := map[string]int{}
	id1 := bus.Subscribe(TypeTeamRegistered, func(e Event) { calls["one"]++ })
	bus.Subscribe(TypeTeamRegistered, func(e Event) { calls["two"]++ })

	if !bus.Unsubscribe(id1) {
		t.Fatal("Unsubscribe should return true for an existing subscription")
	}
	if bus.Unsubscribe(id1) {
		t.Error("second Unsubscribe should return false")
	}
	if bus.Unsubscribe("sub-404") {
		t.Error("Unsubscribe of unknown ID should return false")
	}

	bus.Publish(NewTeamRegisteredEvent("s", "t", "d", 1))

	if calls["one"] != 0 || calls["two"] != 1 {
		t.Errorf("calls = %v, want one=0 two=1", calls)
	}
}

func TestBus_UnsubscribeDuringPublish(t *testing.T) {
	bus := quietBus()

	var id string
	calls := 0
	id = bus.Subscribe(TypeTeamRegistered, func(e Event) {
		calls++
		bus.Unsubscribe(id)
	})
	bus.Subscribe(TypeTeamRegistered, func(e Event) { calls++ })

	bus.Publish(NewTeamRegisteredEvent("s", "t", "d", 1))
	bus.Publish(NewTeamRegisteredEvent("s", "t", "d", 1))

	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
}

func TestBus_Clear(t *testing.T) {
	bus := quietBus()

	bus.Subscribe(TypeTeamRegistered, func(e Event) {})
	bus.Subscribe(TypeTeamRejected, func(e Event) {})
	bus.SubscribeAll(func(e Event) {})

	bus.Clear()

	if bus.SubscriptionCount() != 0 {
		t.Errorf("SubscriptionCount() after Clear = %d, want 0", bus.SubscriptionCount())
	}
}

func TestBus_HandlerPanicRecovery(t *testing.T) {
	var logs bytes.Buffer
	bus := NewBus(slog.New(slog.NewJSONHandler(&logs, nil)))

	calls := 0
	bus.Subscribe(TypeTeamRejected, func(e Event) {
		calls++
		panic("handler panic")
	})
	bus.Subscribe(TypeTeamRejected, func(e Event) {
		calls++
	})

	bus.Publish(NewRegistrationRejectedEvent("s", "t", nil))

	if calls != 2 {
		t.Errorf("calls = %d, want 2 despite panic", calls)
	}
	if !strings.Contains(logs.String(), "event handler panicked") {
		t.Errorf("panic not logged: %s", logs.String())
	}
}

func TestBus_ConcurrentPublish(t *testing.T) {
	bus := quietBus()

	var mu sync.Mutex
	calls := 0
	bus.Subscribe(TypeTeamRegistered, func(e Event) {
		mu.Lock()
		calls++
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for range 100 {
		wg.Go(func() {
			bus.Publish(NewTeamRegisteredEvent("s", "t", "d", 1))
		})
	}
	wg.Wait()

	if calls != 100 {
		t.Errorf("calls = %d, want 100", calls)
	}
}

func TestBus_ConcurrentSubscribeUnsubscribe(t *testing.T) {
	bus := quietBus()

	var wg sync.WaitGroup
	for range 50 {
		wg.Go(func() {
			id := bus.Subscribe(TypeTeamRegistered, func(e Event) {})
			bus.Publish(NewTeamRegisteredEvent("s", "t", "d", 1))
			bus.Unsubscribe(id)
		})
	}
	wg.Wait()

	if bus.SubscriptionCount() != 0 {
		t.Errorf("SubscriptionCount() = %d, want 0", bus.SubscriptionCount())
	}
}

func TestBus_UniqueIDs(t *testing.T) {
	bus := quietBus()

	ids := make(map[string]bool)
	for range 1000 {
		id := bus.Subscribe(TypeTeamRegistered, func(e Event) {})
		if ids[id] {
			t.Fatalf("duplicate subscription ID: %s", id)
		}
		ids[id] = true
	}
}

func TestNewBus_NilLogger(t *testing.T) {
	bus := NewBus(nil)
	if bus.log == nil {
		t.Error("NewBus(nil) should fall back to slog.Default()")
	}
}
