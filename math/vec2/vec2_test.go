// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package vec2

import (
	"math"
	"testing"
)

// go test -run Arithmetic
func TestArithmetic(t *testing.T) {
	a := New(1, 2)
	b := New(3, -1)

	t.Run("add", func(t *testing.T) {
		if got := a.Add(b); !got.Eq(New(4, 1)) {
			t.Errorf("expected (4,1), got %+v", got)
		}
	})
	t.Run("sub", func(t *testing.T) {
		if got := a.Sub(b); !got.Eq(New(-2, 3)) {
			t.Errorf("expected (-2,3), got %+v", got)
		}
	})
	t.Run("scale", func(t *testing.T) {
		if got := a.Scale(2); !got.Eq(New(2, 4)) {
			t.Errorf("expected (2,4), got %+v", got)
		}
	})
	t.Run("dot", func(t *testing.T) {
		if got := a.Dot(b); got != 1 {
			t.Errorf("expected 1, got %v", got)
		}
	})
	t.Run("norm", func(t *testing.T) {
		v := New(3, 4)
		if got := v.Norm(); got != 5 {
			t.Errorf("expected 5, got %v", got)
		}
	})
}

func TestIsFinite(t *testing.T) {
	if !New(1, 2).IsFinite() {
		t.Errorf("expected finite")
	}
	if New(math.NaN(), 0).IsFinite() {
		t.Errorf("expected non-finite for NaN")
	}
	if New(math.Inf(1), 0).IsFinite() {
		t.Errorf("expected non-finite for +Inf")
	}
}

func TestNormalizeOrFallback(t *testing.T) {
	fallback := New(1, 0)
	if got := Zero.NormalizeOrFallback(fallback); !got.Eq(fallback) {
		t.Errorf("expected fallback %+v, got %+v", fallback, got)
	}
	v := New(0, 5)
	if got := v.NormalizeOrFallback(fallback); !got.Eq(New(0, 1)) {
		t.Errorf("expected (0,1), got %+v", got)
	}
}
