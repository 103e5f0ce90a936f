package log

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoopLogger(t *testing.T) {
	var l Logger = NoopLogger{}
	l.Log(Event{Timestamp: time.Now()})

	assert.Equal(t, NoopLogger{}, OrNoop(nil))
	r := NewRecorder()
	assert.Same(t, r, OrNoop(r))
}

func TestEncodeDecodeJoinEvent(t *testing.T) {
	event := Event{
		Timestamp: time.Date(2026, 1, 2, 3, 4, 5, 6, time.UTC),
		AttemptID: "attempt-1",
		Component: ComponentManager,
		Category:  CategoryJoin,
		Join: &JoinEvent{
			Network: "home",
			Slot:    2,
			Outcome: JoinTimedOut,
			Elapsed: 1500 * time.Millisecond,
			Timeout: time.Second,
		},
	}

	data, err := EncodeEvent(event)
	require.NoError(t, err)

	decoded, err := DecodeEvent(data)
	require.NoError(t, err)

	assert.True(t, decoded.Timestamp.Equal(event.Timestamp))
	assert.Equal(t, "attempt-1", decoded.AttemptID)
	assert.Equal(t, ComponentManager, decoded.Component)
	assert.Equal(t, CategoryJoin, decoded.Category)
	require.NotNil(t, decoded.Join)
	assert.Equal(t, *event.Join, *decoded.Join)
	assert.Nil(t, decoded.StateChange)
}

func TestDecodeEventInvalid(t *testing.T) {
	_, err := DecodeEvent([]byte{0xff, 0x00})
	assert.Error(t, err)

	// {2: "a", 2: "b"}
	_, err = DecodeEvent([]byte{0xa2, 0x02, 0x61, 'a', 0x02, 0x61, 'b'})
	assert.Error(t, err, "duplicate key")

	data, err := EncodeEvent(NewEvent(ComponentStore, CategoryStore))
	require.NoError(t, err)
	_, err = DecodeEvent(append(data, 0x00))
	assert.Error(t, err, "trailing bytes")
}

func TestEnumStrings(t *testing.T) {
	assert.Equal(t, "PORTAL", ComponentPortal.String())
	assert.Equal(t, "UNKNOWN", Component(99).String())
	assert.Equal(t, "REQUEST", CategoryRequest.String())
	assert.Equal(t, "TIMED_OUT", JoinTimedOut.String())
	assert.Equal(t, "RESET", StoreOpReset.String())

	c, ok := ParseCategory("SCAN")
	assert.True(t, ok)
	assert.Equal(t, CategoryScan, c)

	_, ok = ParseCategory("nope")
	assert.False(t, ok)

	comp, ok := ParseComponent("STORE")
	assert.True(t, ok)
	assert.Equal(t, ComponentStore, comp)
}

func createTestLogFile(t *testing.T, events []Event) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "logs", "test.clog")

	logger, err := NewFileLogger(path)
	require.NoError(t, err)

	for _, e := range events {
		logger.Log(e)
	}
	require.Equal(t, len(events), logger.Written())
	require.NoError(t, logger.Close())

	return path
}

func TestFileLoggerAndReader(t *testing.T) {
	now := time.Now()
	events := []Event{
		{Timestamp: now, AttemptID: "a", Component: ComponentStore, Category: CategoryStore, Store: &StoreEvent{Op: StoreOpReset, RawCount: 255}},
		{Timestamp: now.Add(time.Second), AttemptID: "b", Component: ComponentManager, Category: CategoryJoin, Join: &JoinEvent{Network: "home", Outcome: JoinStarted}},
		{Timestamp: now.Add(2 * time.Second), AttemptID: "b", Component: ComponentManager, Category: CategoryJoin, Join: &JoinEvent{Network: "home", Outcome: JoinSucceeded}},
		{Timestamp: now.Add(3 * time.Second), Component: ComponentPortal, Category: CategoryRequest, Request: &RequestEvent{Method: "GET", Path: "/", Status: 200}},
	}
	path := createTestLogFile(t, events)

	t.Run("ReadAll", func(t *testing.T) {
		reader, err := NewReader(path)
		require.NoError(t, err)
		defer reader.Close()

		got, err := reader.ReadAll()
		require.NoError(t, err)
		require.Len(t, got, 4)
		assert.Equal(t, "a", got[0].AttemptID)
		assert.Equal(t, 255, got[0].Store.RawCount)
		assert.Equal(t, "/", got[3].Request.Path)
	})

	t.Run("FilterByAttempt", func(t *testing.T) {
		reader, err := NewFilteredReader(path, Filter{AttemptID: "b"})
		require.NoError(t, err)
		defer reader.Close()

		got, err := reader.ReadAll()
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, JoinSucceeded, got[1].Join.Outcome)
	})

	t.Run("FilterByCategoryAndComponent", func(t *testing.T) {
		cat := CategoryRequest
		comp := ComponentPortal
		reader, err := NewFilteredReader(path, Filter{Category: &cat, Component: &comp})
		require.NoError(t, err)
		defer reader.Close()

		got, err := reader.ReadAll()
		require.NoError(t, err)
		require.Len(t, got, 1)
	})

	t.Run("FilterByTime", func(t *testing.T) {
		start := now.Add(time.Second)
		end := now.Add(3 * time.Second)
		reader, err := NewFilteredReader(path, Filter{TimeStart: &start, TimeEnd: &end})
		require.NoError(t, err)
		defer reader.Close()

		got, err := reader.ReadAll()
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("NextAfterEnd", func(t *testing.T) {
		reader, err := NewReader(path)
		require.NoError(t, err)
		defer reader.Close()

		for i := 0; i < 4; i++ {
			_, err := reader.Next()
			require.NoError(t, err)
		}
		_, err = reader.Next()
		assert.Equal(t, io.EOF, err)
	})
}

func TestFileLoggerAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "append.clog")

	for i := 0; i < 2; i++ {
		l, err := NewFileLogger(path)
		require.NoError(t, err)
		l.Log(NewEvent(ComponentManager, CategoryState))
		require.NoError(t, l.Sync())
		require.NoError(t, l.Close())
	}

	reader, err := NewReader(path)
	require.NoError(t, err)
	defer reader.Close()

	got, err := reader.ReadAll()
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestFileLoggerClosed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "closed.clog")
	l, err := NewFileLogger(path)
	require.NoError(t, err)

	require.NoError(t, l.Close())
	require.NoError(t, l.Close())
	l.Log(NewEvent(ComponentPortal, CategoryRequest))
	assert.Equal(t, 0, l.Written())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Zero(t, info.Size())
}

func TestFileLoggerConcurrent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "concurrent.clog")
	l, err := NewFileLogger(path)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				l.Log(NewEvent(ComponentRadio, CategoryScan))
			}
		}()
	}
	wg.Wait()
	require.NoError(t, l.Close())

	reader, err := NewReader(path)
	require.NoError(t, err)
	defer reader.Close()

	got, err := reader.ReadAll()
	require.NoError(t, err)
	assert.Len(t, got, 100)
}

func TestStreamReader(t *testing.T) {
	var buf bytes.Buffer
	enc := NewEncoder(&buf)
	require.NoError(t, enc.Encode(NewEvent(ComponentStore, CategoryStore)))
	require.NoError(t, enc.Encode(NewEvent(ComponentPortal, CategoryRequest)))

	r := NewStreamReader(&buf, Filter{})
	got, err := r.ReadAll()
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.NoError(t, r.Close())
}

func TestMultiLogger(t *testing.T) {
	r1 := NewRecorder()
	r2 := NewRecorder()
	m := NewMultiLogger(r1, nil, r2)

	assert.Equal(t, 2, m.Len())
	m.Log(NewEvent(ComponentManager, CategoryState))

	assert.Len(t, r1.Events(), 1)
	assert.Len(t, r2.Events(), 1)
}

func TestRecorderFilter(t *testing.T) {
	r := NewRecorder()
	r.Log(NewEvent(ComponentManager, CategoryState))
	r.Log(NewEvent(ComponentManager, CategoryJoin))
	r.Log(NewEvent(ComponentPortal, CategoryRequest))

	cat := CategoryJoin
	assert.Len(t, r.Filter(Filter{Category: &cat}), 1)
	assert.Len(t, r.Filter(Filter{}), 3)
}

func TestSlogAdapterLogsJoinEvent(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	adapter := NewSlogAdapter(slog.New(handler))

	adapter.Log(Event{
		Timestamp: time.Now(),
		AttemptID: "attempt-9",
		Component: ComponentManager,
		Category:  CategoryJoin,
		Join: &JoinEvent{
			Network: "office",
			Slot:    1,
			Outcome: JoinSucceeded,
			Elapsed: time.Second,
		},
	})

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "MANAGER", entry["component"])
	assert.Equal(t, "JOIN", entry["category"])
	assert.Equal(t, "attempt-9", entry["attempt_id"])
	assert.Equal(t, "office", entry["network"])
	assert.Equal(t, "SUCCEEDED", entry["outcome"])
	assert.Equal(t, "DEBUG", entry["level"])
}

func TestSlogAdapterWithLevel(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo})
	adapter := NewSlogAdapter(slog.New(handler))

	adapter.Log(NewEvent(ComponentManager, CategoryState))
	assert.Zero(t, buf.Len(), "debug events should be filtered at info level")

	adapter.WithLevel(slog.LevelInfo).Log(Event{
		Component:   ComponentManager,
		Category:    CategoryState,
		StateChange: &StateChangeEvent{OldState: "DISCONNECTED", NewState: "CONNECTED"},
	})

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "CONNECTED", entry["new_state"])
}

func TestSlogAdapterLogsStoreReset(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	adapter := NewSlogAdapter(slog.New(handler))

	adapter.Log(Event{
		Component: ComponentStore,
		Category:  CategoryStore,
		Store:     &StoreEvent{Op: StoreOpReset, RawCount: 200},
	})

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "RESET", entry["op"])
	assert.Equal(t, float64(200), entry["raw_count"])
}

func TestNewAttemptID(t *testing.T) {
	a := NewAttemptID()
	b := NewAttemptID()
	assert.Len(t, a, 36)
	assert.NotEqual(t, a, b)
}
