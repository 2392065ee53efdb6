package eventbus

import (
	"context"
	"testing"
	"time"
)

func TestBusPublishSubscribe(t *testing.T) {
	bus := New()
	ch := bus.Subscribe()
	bus.Publish("outcome")
	if v := <-ch; v != "outcome" {
		t.Fatalf("expected outcome got %v", v)
	}
	bus.Unsubscribe(ch)
}

func TestBusClose(t *testing.T) {
	bus := New()
	ch := bus.Subscribe()
	bus.Close()
	if _, ok := <-ch; ok {
		t.Fatal("channel should be closed")
	}
	// Publishing after close must not panic.
	bus.Publish("late")
	bus.Close()
}

func TestDrain(t *testing.T) {
	bus := New()
	got := make(chan Event, 1)
	done := make(chan struct{})
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		Drain(ctx, bus, func(e Event) {
			select {
			case got <- e:
			default:
			}
		})
		close(done)
	}()
	// Subscription happens inside Drain; retry until it is registered.
	deadline := time.After(time.Second)
	for {
		bus.Publish("attempt finished")
		select {
		case e := <-got:
			if e != "attempt finished" {
				t.Fatalf("unexpected event %v", e)
			}
			cancel()
			<-done
			return
		case <-deadline:
			t.Fatal("event never delivered")
		default:
			time.Sleep(time.Millisecond)
		}
	}
}

func TestDrainStopsOnClose(t *testing.T) {
	bus := New()
	done := make(chan struct{})
	go func() {
		Drain(context.Background(), bus, func(Event) {})
		close(done)
	}()
	time.Sleep(10 * time.Millisecond)
	bus.Close()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("drain did not stop when the bus closed")
	}
}

func TestBusNonBlocking(t *testing.T) {
	bus := New()
	ch := bus.Subscribe()
	for i := 0; i < 100; i++ {
		bus.Publish(i)
	}
	// The subscriber buffer overflows silently; the publisher never blocks.
	if len(ch) == 0 {
		t.Fatal("expected buffered events")
	}
}
