package spanner

import "testing"

func TestRandomKeyGenerator_Range(t *testing.T) {
	g := NewRandomKeyGenerator()
	for i := 0; i < 1000; i++ {
		key := g.Generate()
		if key >= 1<<63 {
			t.Fatalf("key %d exceeds the non-negative INT64 range", key)
		}
	}
}

func TestRandomKeyGenerator_NoCollisions(t *testing.T) {
	g := NewRandomKeyGenerator()
	seen := make(map[uint64]bool, 100000)
	for i := 0; i < 100000; i++ {
		key := g.Generate()
		if seen[key] {
			t.Fatalf("duplicate key %d after %d draws", key, i)
		}
		seen[key] = true
	}
}

func TestRandomKeyGenerator_Concurrent(t *testing.T) {
	g := NewRandomKeyGenerator()
	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 1000; j++ {
				if key := g.Generate(); key >= 1<<63 {
					t.Errorf("key %d exceeds the non-negative INT64 range", key)
					return
				}
			}
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}
}

func TestUUIDKeyGenerator_Range(t *testing.T) {
	g := NewUUIDKeyGenerator()
	for i := 0; i < 1000; i++ {
		key := g.Generate()
		if key >= 1<<63 {
			t.Fatalf("key %d exceeds the non-negative INT64 range", key)
		}
	}
}
