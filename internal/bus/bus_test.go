package bus

import (
	"testing"
	"time"
)

func TestPublishSubscribe(t *testing.T) {
	b := New()
	ch, unsub := b.Subscribe("capture.", 4)
	defer unsub()

	b.Publish(Event{Kind: "capture.batch", Timestamp: time.Now(), Payload: 42})

	select {
	case evt := <-ch:
		if evt.Kind != "capture.batch" {
			t.Errorf("Kind = %q", evt.Kind)
		}
		if evt.Payload != 42 {
			t.Errorf("Payload = %v", evt.Payload)
		}
	case <-time.After(time.Second):
		t.Fatal("event never delivered")
	}
}

func TestNamespaceFiltering(t *testing.T) {
	b := New()
	capture, unsub1 := b.Subscribe("capture.", 4)
	defer unsub1()
	archive, unsub2 := b.Subscribe("archive.", 4)
	defer unsub2()
	all, unsub3 := b.Subscribe("", 4)
	defer unsub3()

	b.Publish(Event{Kind: "archive.status_changed"})

	select {
	case evt := <-archive:
		if evt.Kind != "archive.status_changed" {
			t.Errorf("Kind = %q", evt.Kind)
		}
	case <-time.After(time.Second):
		t.Fatal("archive subscriber missed its event")
	}
	select {
	case <-all:
	case <-time.After(time.Second):
		t.Fatal("catch-all subscriber missed the event")
	}
	select {
	case evt := <-capture:
		t.Errorf("capture subscriber got %q", evt.Kind)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	b := New()
	ch, unsub := b.Subscribe("capture.", 4)
	unsub()

	b.Publish(Event{Kind: "capture.batch"})

	select {
	case evt := <-ch:
		t.Errorf("unsubscribed channel got %q", evt.Kind)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestFullSubscriberDropsNotBlocks(t *testing.T) {
	b := New()
	ch, unsub := b.Subscribe("capture.", 1)
	defer unsub()

	done := make(chan struct{})
	go func() {
		for i := 0; i < 10; i++ {
			b.Publish(Event{Kind: "capture.batch", Payload: i})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Publish blocked on a full subscriber")
	}

	// Exactly the buffered event survives; the rest were dropped.
	evt := <-ch
	if evt.Payload != 0 {
		t.Errorf("buffered event = %v, want 0", evt.Payload)
	}
	select {
	case evt := <-ch:
		t.Errorf("extra event delivered: %v", evt.Payload)
	case <-time.After(50 * time.Millisecond):
	}
}
