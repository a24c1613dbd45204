// Package timex provides a time.Time wrapper with stable database and JSON encoding
// Package timex 提供带有稳定数据库和 JSON 编码的 time.Time 包装类型
package timex

import (
	"database/sql/driver"
	"fmt"
	"time"
)

const layout = "2006-01-02 15:04:05"

// Time wraps time.Time, stored as DATETIME and serialized as "2006-01-02 15:04:05"
// Time 包装 time.Time，数据库中存储为 DATETIME，序列化为 "2006-01-02 15:04:05"
type Time time.Time

// Now returns the current time as Time
// Now 返回当前时间
func Now() Time {
	return Time(time.Now())
}

func (t Time) Time() time.Time {
	return time.Time(t)
}

func (t Time) IsZero() bool {
	return time.Time(t).IsZero()
}

func (t Time) Unix() int64 {
	return time.Time(t).Unix()
}

func (t Time) UnixMilli() int64 {
	return time.Time(t).UnixMilli()
}

func (t Time) UnixMicro() int64 {
	return time.Time(t).UnixMicro()
}

func (t Time) UnixNano() int64 {
	return time.Time(t).UnixNano()
}

func (t Time) String() string {
	return time.Time(t).Format(layout)
}

// MarshalJSON serializes as a quoted "2006-01-02 15:04:05" string, zero value as ""
// MarshalJSON 序列化为 "2006-01-02 15:04:05" 格式字符串，零值序列化为 ""
func (t Time) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(`"` + t.String() + `"`), nil
}

// UnmarshalJSON parses a quoted "2006-01-02 15:04:05" string, "" as zero value
// UnmarshalJSON 解析 "2006-01-02 15:04:05" 格式字符串，"" 解析为零值
func (t *Time) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == `""` || s == "null" {
		*t = Time(time.Time{})
		return nil
	}
	parsed, err := time.ParseInLocation(`"`+layout+`"`, s, time.Local)
	if err != nil {
		return err
	}
	*t = Time(parsed)
	return nil
}

// Value implements driver.Valuer
func (t Time) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	return time.Time(t), nil
}

// Scan implements sql.Scanner
func (t *Time) Scan(v interface{}) error {
	switch value := v.(type) {
	case nil:
		*t = Time(time.Time{})
	case time.Time:
		*t = Time(value)
	case string:
		parsed, err := time.ParseInLocation(layout, value, time.Local)
		if err != nil {
			return err
		}
		*t = Time(parsed)
	case []byte:
		parsed, err := time.ParseInLocation(layout, string(value), time.Local)
		if err != nil {
			return err
		}
		*t = Time(parsed)
	default:
		return fmt.Errorf("cannot scan %T into timex.Time", v)
	}
	return nil
}
