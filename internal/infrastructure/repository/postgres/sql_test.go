package postgres

import (
	"database/sql"
	"errors"
	"testing"
	"time"
)

func TestIsNotFound(t *testing.T) {
	t.Run("matches sql.ErrNoRows", func(t *testing.T) {
		if !isNotFound(sql.ErrNoRows) {
			t.Fatalf("expected true for sql.ErrNoRows")
		}
	})

	t.Run("ignores unrelated error", func(t *testing.T) {
		if isNotFound(errors.New("pq: connection refused")) {
			t.Fatalf("expected false for unrelated error")
		}
	})
}

func TestJSONMapRoundTrip(t *testing.T) {
	t.Run("nil map marshals to an empty object", func(t *testing.T) {
		raw, err := marshalJSONMap(nil)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		if string(raw) != "{}" {
			t.Fatalf("unexpected payload: %s", raw)
		}
	})

	t.Run("empty column unmarshals to an empty map", func(t *testing.T) {
		out, err := unmarshalJSONMap(nil)
		if err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if out == nil || len(out) != 0 {
			t.Fatalf("unexpected map: %v", out)
		}
	})

	t.Run("values survive the round trip", func(t *testing.T) {
		raw, err := marshalJSONMap(map[string]any{"odds": true})
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		out, err := unmarshalJSONMap(raw)
		if err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if out["odds"] != true {
			t.Fatalf("unexpected map: %v", out)
		}
	})
}

func TestTimeOrNil(t *testing.T) {
	if timeOrNil(time.Time{}) != nil {
		t.Fatalf("expected nil for the zero time")
	}
	now := time.Now()
	if got := timeOrNil(now); got != now {
		t.Fatalf("expected the value passed through, got %v", got)
	}
}

func TestDerefTime(t *testing.T) {
	if !derefTime(nil).IsZero() {
		t.Fatalf("expected the zero time for nil")
	}
	now := time.Now()
	if got := derefTime(&now); !got.Equal(now) {
		t.Fatalf("expected %v, got %v", now, got)
	}
}
