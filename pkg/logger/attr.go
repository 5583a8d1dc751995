package logger

import (
	"errors"
	"log/slog"
	"time"

	"github.com/clforge/clforge/pkg/verify"
)

// Error records err under "error". A nil err yields an empty Attr, which
// slog drops.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// ErrorKind records the verify.Kind of err under "error_kind" when err
// carries one.
func ErrorKind(err error) slog.Attr {
	var verr *verify.Error
	if !errors.As(err, &verr) {
		return slog.Attr{}
	}
	return slog.String("error_kind", verr.Kind.String())
}

// RequestID records id under "request_id". An empty id yields an empty Attr.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}

func Event(name string) slog.Attr {
	return slog.String("event", name)
}

func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// PPU groups the raw and canonical forms of a parsed plate under "ppu".
func PPU(p verify.PPU) slog.Attr {
	return slog.Group("ppu",
		slog.String("raw", p.Raw()),
		slog.String("format", p.Format().String()),
		slog.String("normalized", p.Normalized()),
		slog.String("verifier", p.Verifier().String()),
	)
}

// RUT records r as "correlative-verifier" under "rut".
func RUT(r verify.RUT) slog.Attr {
	return slog.String("rut", r.String())
}

// Count records a number of items under "count".
func Count(n int) slog.Attr {
	return slog.Int("count", n)
}
