package timex

import (
	"testing"
	"time"
)

func TestTime_UnixMethods(t *testing.T) {
	// Create a fixed time
	// 创建一个固定时间
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	tt := Time(now)

	if tt.Unix() != now.Unix() {
		t.Errorf("Unix() = %v, want %v", tt.Unix(), now.Unix())
	}
	if tt.UnixMilli() != now.UnixMilli() {
		t.Errorf("UnixMilli() = %v, want %v", tt.UnixMilli(), now.UnixMilli())
	}
	if tt.UnixMicro() != now.UnixMicro() {
		t.Errorf("UnixMicro() = %v, want %v", tt.UnixMicro(), now.UnixMicro())
	}
	if tt.UnixNano() != now.UnixNano() {
		t.Errorf("UnixNano() = %v, want %v", tt.UnixNano(), now.UnixNano())
	}

	// Verify it's not returning time.Now() by waiting a bit
	// 通过等待一会确认它不是返回 time.Now()
	time.Sleep(10 * time.Millisecond)
	if tt.Unix() != now.Unix() {
		t.Errorf("Unix() changed after sleep, it should be static. got %v, want %v", tt.Unix(), now.Unix())
	}
}

func TestTime_JSONRoundTrip(t *testing.T) {
	tt := Time(time.Date(2024, 6, 15, 8, 30, 0, 0, time.Local))

	data, err := tt.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON error: %v", err)
	}
	if string(data) != `"2024-06-15 08:30:00"` {
		t.Errorf("MarshalJSON = %s", data)
	}

	var parsed Time
	if err := parsed.UnmarshalJSON(data); err != nil {
		t.Fatalf("UnmarshalJSON error: %v", err)
	}
	if parsed.Unix() != tt.Unix() {
		t.Errorf("round trip mismatch: got %v, want %v", parsed.Unix(), tt.Unix())
	}
}

func TestTime_ZeroValue(t *testing.T) {
	var zero Time

	data, err := zero.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON error: %v", err)
	}
	if string(data) != `""` {
		t.Errorf("zero MarshalJSON = %s, want \"\"", data)
	}

	v, err := zero.Value()
	if err != nil {
		t.Fatalf("Value error: %v", err)
	}
	if v != nil {
		t.Errorf("zero Value = %v, want nil", v)
	}
}

func TestTime_Scan(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.Local)

	var tt Time
	if err := tt.Scan(now); err != nil {
		t.Fatalf("Scan(time.Time) error: %v", err)
	}
	if tt.Unix() != now.Unix() {
		t.Errorf("Scan(time.Time) = %v, want %v", tt.Unix(), now.Unix())
	}

	var ts Time
	if err := ts.Scan("2024-01-01 12:00:00"); err != nil {
		t.Fatalf("Scan(string) error: %v", err)
	}
	if ts.Unix() != now.Unix() {
		t.Errorf("Scan(string) = %v, want %v", ts.Unix(), now.Unix())
	}
}
