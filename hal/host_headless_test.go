//go:build !tinygo

package hal

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"
)

func TestRunHeadlessStopsAfterFrames(t *testing.T) {
	var out bytes.Buffer
	frames := 0
	err := RunHeadless(context.Background(), func(h HAL) func() error {
		h.Logger().WriteLineString("calc: ready")
		return func() error { frames++; return nil }
	}, HeadlessConfig{Hz: 1000, Frames: 3, Log: &out})
	if err != nil {
		t.Fatalf("RunHeadless: %v", err)
	}
	if frames != 3 {
		t.Fatalf("frames=%d", frames)
	}
	if out.String() != "calc: ready\n" {
		t.Fatalf("log %q", out.String())
	}
}

func TestRunHeadlessStepError(t *testing.T) {
	boom := errors.New("boom")
	err := RunHeadless(context.Background(), func(HAL) func() error {
		return func() error { return boom }
	}, HeadlessConfig{Hz: 1000, Log: &bytes.Buffer{}})
	if !errors.Is(err, boom) {
		t.Fatalf("err=%v", err)
	}
}

func TestRunHeadlessCanceled(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := RunHeadless(ctx, func(HAL) func() error { return nil }, HeadlessConfig{Hz: 100, Log: &bytes.Buffer{}})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("err=%v", err)
	}
}
