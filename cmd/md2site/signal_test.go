package main

import (
	"context"
	"testing"
)

func TestNotifyContext(t *testing.T) {
	t.Parallel()

	ctx, stop := notifyContext(context.Background())
	if ctx.Err() != nil {
		t.Fatalf("fresh context already done: %v", ctx.Err())
	}

	stop()
	<-ctx.Done()
	if ctx.Err() == nil {
		t.Error("context should be canceled after stop")
	}
}

func TestNotifyContext_ParentCancel(t *testing.T) {
	t.Parallel()

	parent, cancel := context.WithCancel(context.Background())
	ctx, stop := notifyContext(parent)
	defer stop()

	cancel()
	<-ctx.Done()
}
