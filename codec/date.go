package codec

import (
	"context"
	"time"

	inlinekv "github.com/reoring/inlinekv"
)

// DateText returns a Codec that converts between strict yyyy-MM-dd strings and
// inlinekv.Date. Fields are taken as written, matching Coerce.
func DateText() inlinekv.Codec[string, inlinekv.Date] { return dateTextCodec{} }

type dateTextCodec struct{}

func (dateTextCodec) Decode(ctx context.Context, a string) (inlinekv.Date, error) {
	d, ok := inlinekv.ParseDate(a)
	if !ok {
		return inlinekv.Date{}, inlinekv.Issues{{Path: "/", Code: inlinekv.CodeInvalidFormat, Message: "expected yyyy-MM-dd", Hint: a, Offset: -1}}
	}
	return d, nil
}

func (dateTextCodec) Encode(ctx context.Context, b inlinekv.Date) (string, error) {
	if b.Year < 0 || b.Year > 9999 || b.Month < 0 || b.Month > 99 || b.Day < 0 || b.Day > 99 {
		return "", inlinekv.Issues{{Path: "/", Code: inlinekv.CodeInvalidFormat, Message: "date fields do not fit yyyy-MM-dd", Offset: -1}}
	}
	return b.String(), nil
}

// DateTime returns a Codec that converts between inlinekv.Date and time.Time
// at midnight UTC. Decode rejects dates that do not exist in the calendar;
// Encode takes the calendar day of t in its own location, without converting
// zones.
func DateTime() inlinekv.Codec[inlinekv.Date, time.Time] { return dateTimeCodec{} }

type dateTimeCodec struct{}

func (dateTimeCodec) Decode(ctx context.Context, a inlinekv.Date) (time.Time, error) {
	if !a.Valid() {
		return time.Time{}, inlinekv.Issues{{Path: "/", Code: inlinekv.CodeInvalidFormat, Message: "not a calendar date", Hint: a.String(), Offset: -1}}
	}
	return a.Time(), nil
}

func (dateTimeCodec) Encode(ctx context.Context, b time.Time) (inlinekv.Date, error) {
	y, m, d := b.Date()
	return inlinekv.Date{Year: y, Month: m, Day: d}, nil
}
