package cache

import "testing"

func TestGetMissesOnEmptyCache(t *testing.T) {
	c := NewLRUCache(2)
	if _, ok := c.Get("n1:80"); ok {
		t.Fatalf("expected a miss on empty cache")
	}
}

func TestPutThenGet(t *testing.T) {
	c := NewLRUCache(2)
	c.Put("n1:80", "rendered")

	got, ok := c.Get("n1:80")
	if !ok || got != "rendered" {
		t.Fatalf("expected hit with %q, got %q ok=%v", "rendered", got, ok)
	}
}

func TestPutOverwritesExistingKey(t *testing.T) {
	c := NewLRUCache(2)
	c.Put("n1:80", "old")
	c.Put("n1:80", "new")

	if got, _ := c.Get("n1:80"); got != "new" {
		t.Errorf("expected overwrite, got %q", got)
	}
	if c.Len() != 1 {
		t.Errorf("overwrite should not grow the cache, len %d", c.Len())
	}
}

func TestEvictsLeastRecentlyUsed(t *testing.T) {
	c := NewLRUCache(2)
	c.Put("a", "1")
	c.Put("b", "2")

	// Touch a so b becomes the eviction candidate.
	c.Get("a")
	c.Put("c", "3")

	if _, ok := c.Get("b"); ok {
		t.Errorf("b should have been evicted")
	}
	if _, ok := c.Get("a"); !ok {
		t.Errorf("recently used a should survive")
	}
	if _, ok := c.Get("c"); !ok {
		t.Errorf("newest entry c should be present")
	}
}
