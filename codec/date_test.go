package codec

import (
	"errors"
	"testing"
	"time"
)

func TestParseDate_Valid(t *testing.T) {
	got, err := ParseDate("2013-01-23T13:42:42")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !got.Equal(time.Date(2013, 1, 23, 13, 42, 42, 0, time.UTC)) {
		t.Fatalf("unexpected time: %v", got)
	}

	for _, s := range []string{
		"2013-01-23",
		"2013-01-23T13:42:42.1234",
		"2013-01-23T13:42:42.123456789",
		"2024-02-29T00:00:00",
	} {
		if _, err := ParseDate(s); err != nil {
			t.Fatalf("expected %q to parse, got %v", s, err)
		}
	}
}

func TestParseDate_Fraction(t *testing.T) {
	got, err := ParseDate("2013-01-23T13:42:42.25")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got.Nanosecond() != 250000000 {
		t.Fatalf("unexpected nanoseconds: %d", got.Nanosecond())
	}
}

func TestParseDate_Rollover(t *testing.T) {
	for _, s := range []string{
		"2013-01-23T60:42:40",
		"2013-13-01T00:00:00",
		"2013-02-30",
		"2023-02-29T00:00:00",
		"2013-01-23T24:00:00",
		"2013-01-23T13:60:00",
		"2013-01-23T13:42:61",
		"2013-00-10",
	} {
		_, err := ParseDate(s)
		if !errors.Is(err, ErrRollover) {
			t.Fatalf("expected rollover for %q, got %v", s, err)
		}
	}
}

func TestParseDate_Syntax(t *testing.T) {
	for _, s := range []string{"", "23.01.2013", "2013-1-23", "2013-01-23T1:00", "2013-01-23 13:42:42", "now"} {
		_, err := ParseDate(s)
		if !errors.Is(err, ErrSyntax) {
			t.Fatalf("expected syntax error for %q, got %v", s, err)
		}
	}
}

func TestParseDate_OnlyLocalDateTime(t *testing.T) {
	for _, s := range []string{
		"2013-01-23T13:42",
		"2013-01-23T13:42:42Z",
		"2013-01-23T13:42:42+02:00",
		"2013-01-23T13:42:42.123+0200",
		"2013-01-23T",
		"2013-01-23T13:42:42.",
	} {
		_, err := ParseDate(s)
		if !errors.Is(err, ErrSyntax) {
			t.Fatalf("expected syntax error for %q, got %v", s, err)
		}
	}
}

func TestFormatDate(t *testing.T) {
	ts := time.Date(2025, 3, 4, 5, 6, 7, 8, time.UTC)
	if got := FormatDate(ts); got != "2025-03-04T05:06:07" {
		t.Fatalf("unexpected format %q", got)
	}
	if _, err := ParseDate(FormatDate(ts)); err != nil {
		t.Fatalf("formatted date must parse: %v", err)
	}
}
