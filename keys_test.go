package pureguard

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type dbConfig struct {
	Host string `json:"host"`
	Port int    `json:"port"`
}

type serviceConfig struct {
	Name     string            `json:"name"`
	DB       dbConfig          `json:"db"`
	Replica  *dbConfig         `json:"replica"`
	Labels   map[string]string `json:"labels"`
	Tags     []string          `json:"tags"`
	Password string            `json:"-"`
}

func TestKeysOfValuesOf(t *testing.T) {
	m := map[string]string{"B": "b", "A": "a", "C": "c"}

	if diff := cmp.Diff([]string{"A", "B", "C"}, KeysOf(m)); diff != "" {
		t.Errorf("KeysOf mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"a", "b", "c"}, ValuesOf(m)); diff != "" {
		t.Errorf("ValuesOf mismatch (-want +got):\n%s", diff)
	}

	assert.Empty(t, KeysOf(map[int]bool{}))
	assert.Equal(t, []int{1, 2}, KeysOf(map[int]bool{2: true, 1: false}))
}

func TestDeepKeys(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  []string
	}{
		{
			name: "nested maps",
			value: map[string]any{
				"a": map[string]any{"b": 1, "c": map[string]any{"d": true}},
				"e": 2,
			},
			want: []string{"a", "a.b", "a.c", "a.c.d", "e"},
		},
		{
			name: "struct with tags",
			value: serviceConfig{
				Labels: map[string]string{"team": "core"},
			},
			want: []string{"db", "db.host", "db.port", "labels", "labels.team", "name", "replica", "tags"},
		},
		{
			name: "struct pointer with replica",
			value: &serviceConfig{
				Replica: &dbConfig{},
			},
			want: []string{"db", "db.host", "db.port", "labels", "name", "replica", "replica.host", "replica.port", "tags"},
		},
		{
			name:  "slices are leaves",
			value: map[string]any{"list": []any{map[string]any{"x": 1}}},
			want:  []string{"list"},
		},
		{
			name:  "embedded struct flattened",
			value: account{},
			want:  []string{"Address", "Version", "id", "name"},
		},
		{
			name:  "scalar",
			value: 42,
			want:  nil,
		},
		{
			name:  "nil",
			value: nil,
			want:  nil,
		},
		{
			name:  "non string keys",
			value: map[int]any{1: map[string]any{"a": 1}},
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, DeepKeys(tt.value)); diff != "" {
				t.Errorf("DeepKeys mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLookup(t *testing.T) {
	cfg := serviceConfig{
		Name:   "api",
		DB:     dbConfig{Host: "localhost", Port: 5432},
		Labels: map[string]string{"team": "core"},
	}
	doc := map[string]any{
		"db":    map[string]any{"port": 5432, "empty": nil},
		"items": []any{1, 2},
	}

	got, ok := Lookup(cfg, "db.port")
	require.True(t, ok)
	assert.Equal(t, 5432, got)

	got, ok = Lookup(&cfg, "labels.team")
	require.True(t, ok)
	assert.Equal(t, "core", got)

	got, ok = Lookup(cfg, "DB.Host")
	require.True(t, ok)
	assert.Equal(t, "localhost", got)

	got, ok = Lookup(doc, "db.empty")
	require.True(t, ok)
	assert.Nil(t, got)

	got, ok = Lookup(doc, "")
	require.True(t, ok)
	assert.Equal(t, doc, got)

	for _, path := range []string{"db.missing", "replica.host", "items.0", "name.first", "Password", "db..port"} {
		_, ok := Lookup(doc, path)
		assert.False(t, ok, path)
		_, ok = Lookup(cfg, path)
		assert.False(t, ok, path)
	}
}

func TestLookup_EveryDeepKeyResolves(t *testing.T) {
	doc := map[string]any{
		"a": map[string]any{"b": map[string]any{"c": "leaf"}},
		"d": []int{1},
	}
	for _, key := range DeepKeys(doc) {
		_, ok := Lookup(doc, key)
		assert.True(t, ok, key)
	}
}

type listNode struct {
	Name string
	Next *listNode
}

func TestDeepKeys_Cycles(t *testing.T) {
	a := &listNode{Name: "a"}
	b := &listNode{Name: "b", Next: a}
	a.Next = b

	want := []string{"Name", "Next", "Next.Name", "Next.Next"}
	if diff := cmp.Diff(want, DeepKeys(a)); diff != "" {
		t.Errorf("DeepKeys linked cycle mismatch (-want +got):\n%s", diff)
	}

	self := map[string]any{"n": 1}
	self["self"] = self
	if diff := cmp.Diff([]string{"n", "self"}, DeepKeys(self)); diff != "" {
		t.Errorf("DeepKeys map cycle mismatch (-want +got):\n%s", diff)
	}

	var loop any
	loop = &loop
	assert.Empty(t, DeepKeys(loop))
}

func TestDeepKeys_SharedValueExpandedOnEachPath(t *testing.T) {
	shared := map[string]any{"x": 1}
	doc := map[string]any{"left": shared, "right": shared}

	want := []string{"left", "left.x", "right", "right.x"}
	if diff := cmp.Diff(want, DeepKeys(doc)); diff != "" {
		t.Errorf("DeepKeys mismatch (-want +got):\n%s", diff)
	}
}

func TestLookup_SelfReferencingPointer(t *testing.T) {
	var loop any
	loop = &loop

	_, ok := Lookup(loop, "a")
	assert.False(t, ok)
}
