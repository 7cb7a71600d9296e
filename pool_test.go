package md2latex

import (
	"errors"
	"runtime"
	"sync"
	"testing"
)

func TestNewConverterPool(t *testing.T) {
	t.Run("size respected", func(t *testing.T) {
		p := NewConverterPool(3)
		defer p.Close()
		if p.Size() != 3 {
			t.Errorf("Size() = %d, want 3", p.Size())
		}
	})

	t.Run("size clamped to one", func(t *testing.T) {
		p := NewConverterPool(0)
		defer p.Close()
		if p.Size() != 1 {
			t.Errorf("Size() = %d, want 1", p.Size())
		}
	})
}

func TestPoolAcquireRelease(t *testing.T) {
	p := NewConverterPool(2)
	defer p.Close()

	c1, err := p.Acquire()
	if err != nil {
		t.Fatalf("Acquire() error: %v", err)
	}
	c2, err := p.Acquire()
	if err != nil {
		t.Fatalf("Acquire() error: %v", err)
	}
	if c1 == c2 {
		t.Error("two acquisitions returned the same converter")
	}

	p.Release(c1)
	c3, err := p.Acquire()
	if err != nil {
		t.Fatalf("Acquire() error: %v", err)
	}
	if c3 != c1 {
		t.Error("released converter should be reused")
	}
	p.Release(c2)
	p.Release(c3)
}

func TestPoolLazyCreation(t *testing.T) {
	p := NewConverterPool(4)
	defer p.Close()

	if got := len(p.converters); got != 0 {
		t.Errorf("pool created %d converters eagerly, want 0", got)
	}

	c, err := p.Acquire()
	if err != nil {
		t.Fatalf("Acquire() error: %v", err)
	}
	if got := len(p.converters); got != 1 {
		t.Errorf("pool holds %d converters, want 1", got)
	}
	p.Release(c)
}

func TestPoolAcquireBadOptions(t *testing.T) {
	p := NewConverterPool(1, WithEngine("not-an-engine"))
	defer p.Close()

	if _, err := p.Acquire(); !errors.Is(err, ErrUnknownEngine) {
		t.Fatalf("Acquire() error = %v, want ErrUnknownEngine", err)
	}

	// Failed creation must free the slot for a retry.
	if _, err := p.Acquire(); !errors.Is(err, ErrUnknownEngine) {
		t.Fatalf("second Acquire() error = %v, want ErrUnknownEngine", err)
	}
}

func TestPoolConcurrentUse(t *testing.T) {
	p := NewConverterPool(2)
	defer p.Close()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c, err := p.Acquire()
			if err != nil {
				t.Error(err)
				return
			}
			p.Release(c)
		}()
	}
	wg.Wait()
}

func TestPoolCloseIdempotent(t *testing.T) {
	p := NewConverterPool(1)
	c, err := p.Acquire()
	if err != nil {
		t.Fatalf("Acquire() error: %v", err)
	}
	p.Release(c)

	if err := p.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}
	if err := p.Close(); err != nil {
		t.Fatalf("second Close() error: %v", err)
	}
}

func TestResolvePoolSize(t *testing.T) {
	t.Run("explicit workers win", func(t *testing.T) {
		if got := ResolvePoolSize(5); got != 5 {
			t.Errorf("ResolvePoolSize(5) = %d, want 5", got)
		}
	})

	t.Run("auto stays in bounds", func(t *testing.T) {
		got := ResolvePoolSize(0)
		if got < MinPoolSize || got > MaxPoolSize {
			t.Errorf("ResolvePoolSize(0) = %d, want between %d and %d", got, MinPoolSize, MaxPoolSize)
		}
		want := runtime.GOMAXPROCS(0) / cpuDivisor
		if want >= MinPoolSize && want <= MaxPoolSize && got != want {
			t.Errorf("ResolvePoolSize(0) = %d, want %d", got, want)
		}
	})
}
