package fintrack

import (
	"encoding/json"
	"testing"
)

func TestJsonObjectWriter(t *testing.T) {
	t.Run("empty object", func(t *testing.T) {
		var w jsonObjectWriter
		got, err := w.MarshalJSON()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := "{}"; string(got) != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("ordered fields", func(t *testing.T) {
		var w jsonObjectWriter
		w.Append("z", 1).Append("a", "hello").Append(`"quoted"`, true)
		got, err := w.MarshalJSON()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := `{"z":1,"a":"hello","\"quoted\"":true}`
		if string(got) != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("embed object", func(t *testing.T) {
		var w jsonObjectWriter
		w.Append("a", 1).Embed(json.RawMessage(`{"c":3,"d":4}`)).Embed([]byte(` {} `)).Append("b", 2)
		got, err := w.MarshalJSON()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := `{"a":1,"c":3,"d":4,"b":2}`
		if string(got) != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("embed not an object", func(t *testing.T) {
		var w jsonObjectWriter
		w.Embed([]byte(`[1,2]`)).Append("a", 1)
		if _, err := w.MarshalJSON(); err == nil {
			t.Errorf("embedding an array should fail")
		}
	})

	t.Run("optional fields", func(t *testing.T) {
		var w jsonObjectWriter
		w.Append("a", 0) // a zero value is still added.
		w.Optional("b", "")
		w.Optional("c", 0)
		w.Optional("d", "hello")
		got, err := w.MarshalJSON()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := `{"a":0,"d":"hello"}`
		if string(got) != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("embed from", func(t *testing.T) {
		var w jsonObjectWriter
		embedded := struct {
			C int    `json:"c"`
			D string `json:"d"`
		}{
			C: 3,
			D: "hello",
		}
		w.Append("a", 1)
		w.EmbedFrom(embedded)
		w.Append("b", 2)
		got, err := w.MarshalJSON()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := `{"a":1,"c":3,"d":"hello","b":2}`
		if string(got) != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("unsupported value", func(t *testing.T) {
		var w jsonObjectWriter
		w.Append("ch", make(chan int))
		if _, err := w.MarshalJSON(); err == nil {
			t.Errorf("marshaling a channel should fail")
		}
	})
}
