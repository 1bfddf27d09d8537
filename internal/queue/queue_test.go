package queue

import (
	"fmt"
	"sync"
	"testing"

	"github.com/devpopsdotin/logdeck/internal/target"
)

func line(pod, text string) LogLine {
	return LogLine{Source: target.Target{Namespace: "default", Pod: pod, Container: "app"}, Text: text}
}

func TestBuffer_DropOldestOnOverflow(t *testing.T) {
	buf := NewBuffer(3)

	for _, text := range []string{"L1", "L2", "L3", "L4", "L5"} {
		buf.Enqueue(line("api", text))
	}

	got := buf.DrainBatch(0)
	want := []string{"L3", "L4", "L5"}
	if len(got) != len(want) {
		t.Fatalf("Expected %d lines, got %d", len(want), len(got))
	}
	for i, w := range want {
		if got[i].Text != w {
			t.Errorf("Expected line %d to be %q, got %q", i, w, got[i].Text)
		}
	}
	if buf.Dropped() != 2 {
		t.Errorf("Expected 2 dropped, got %d", buf.Dropped())
	}
}

func TestBuffer_DrainBatchOrder(t *testing.T) {
	buf := NewBuffer(10)
	for i := 0; i < 6; i++ {
		buf.Enqueue(line("api", fmt.Sprintf("line-%d", i)))
	}

	first := buf.DrainBatch(4)
	if len(first) != 4 {
		t.Fatalf("Expected 4 lines, got %d", len(first))
	}
	for i, l := range first {
		if want := fmt.Sprintf("line-%d", i); l.Text != want {
			t.Errorf("Expected %q at index %d, got %q", want, i, l.Text)
		}
	}

	rest := buf.DrainBatch(0)
	if len(rest) != 2 {
		t.Fatalf("Expected 2 remaining lines, got %d", len(rest))
	}
	if rest[0].Text != "line-4" || rest[1].Text != "line-5" {
		t.Errorf("Expected [line-4 line-5], got [%s %s]", rest[0].Text, rest[1].Text)
	}
	if buf.Len() != 0 {
		t.Errorf("Expected empty buffer, got %d entries", buf.Len())
	}
}

func TestBuffer_PerSourceOrderAcrossOverflow(t *testing.T) {
	buf := NewBuffer(4)
	buf.Enqueue(line("api", "a1"))
	buf.Enqueue(line("web", "w1"))
	buf.Enqueue(line("api", "a2"))
	buf.Enqueue(line("web", "w2"))
	buf.Enqueue(line("api", "a3")) // evicts a1

	var apiLines, webLines []string
	for _, l := range buf.DrainBatch(0) {
		switch l.Source.Pod {
		case "api":
			apiLines = append(apiLines, l.Text)
		case "web":
			webLines = append(webLines, l.Text)
		}
	}

	if len(apiLines) != 2 || apiLines[0] != "a2" || apiLines[1] != "a3" {
		t.Errorf("Expected api lines [a2 a3], got %v", apiLines)
	}
	if len(webLines) != 2 || webLines[0] != "w1" || webLines[1] != "w2" {
		t.Errorf("Expected web lines [w1 w2], got %v", webLines)
	}
}

func TestBuffer_NeverObservedOverCapacity(t *testing.T) {
	buf := NewBuffer(5)
	for i := 0; i < 100; i++ {
		buf.Enqueue(line("api", fmt.Sprintf("line-%d", i)))
		if n := buf.Len(); n > buf.Cap() {
			t.Fatalf("Buffer over capacity: len=%d cap=%d", n, buf.Cap())
		}
	}
	if buf.Len() != 5 {
		t.Errorf("Expected 5 entries, got %d", buf.Len())
	}
	if buf.Dropped() != 95 {
		t.Errorf("Expected 95 dropped, got %d", buf.Dropped())
	}
}

func TestBuffer_ConcurrentProducers(t *testing.T) {
	const producers = 8
	const perProducer = 500

	buf := NewBuffer(100)
	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			pod := fmt.Sprintf("pod-%d", p)
			for i := 0; i < perProducer; i++ {
				buf.Enqueue(line(pod, fmt.Sprintf("line-%d", i)))
			}
		}(p)
	}
	wg.Wait()

	if buf.Len() != 100 {
		t.Errorf("Expected full buffer of 100, got %d", buf.Len())
	}
	total := producers * perProducer
	if got := int(buf.Dropped()) + buf.Len(); got != total {
		t.Errorf("Expected dropped+len = %d, got %d", total, got)
	}
}

func TestBuffer_DrainEmpty(t *testing.T) {
	buf := NewBuffer(3)
	if got := buf.DrainBatch(0); got != nil {
		t.Errorf("Expected nil from empty buffer, got %v", got)
	}
}

func TestNewBuffer_MinimumCapacity(t *testing.T) {
	buf := NewBuffer(0)
	if buf.Cap() != 1 {
		t.Errorf("Expected capacity 1, got %d", buf.Cap())
	}
	buf.Enqueue(line("api", "only"))
	buf.Enqueue(line("api", "newer"))
	got := buf.DrainBatch(0)
	if len(got) != 1 || got[0].Text != "newer" {
		t.Errorf("Expected [newer], got %v", got)
	}
}
