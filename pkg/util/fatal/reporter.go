package fatal

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

//go:generate go run go.uber.org/mock/mockgen -destination=../mocks/$GOPACKAGE/$GOPACKAGE.go github.com/Azure/azmon-diag/pkg/util/$GOPACKAGE Reporter

import (
	"context"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/Azure/azmon-diag/pkg/util/recover"
	"github.com/Azure/azmon-diag/pkg/util/uuid"
)

// Reporter delivers crash reports. Report may return before the report is
// delivered; Close flushes whatever is still queued.
type Reporter interface {
	Report(context.Context, error)
	Close() error
}

type crashReport struct {
	id  string
	err error
}

type asyncReporter struct {
	log  *logrus.Entry
	uuid uuid.Generator

	mu     sync.RWMutex
	closed bool

	ch   chan *crashReport
	done chan struct{}
}

// NewAsyncReporter returns a Reporter that queues reports and writes them to
// log from a background goroutine, tagged with a crash_id.
func NewAsyncReporter(log *logrus.Entry, uuid uuid.Generator) Reporter {
	r := &asyncReporter{
		log:  log,
		uuid: uuid,

		ch:   make(chan *crashReport, 16),
		done: make(chan struct{}),
	}

	go r.run()

	return r
}

func (r *asyncReporter) Report(ctx context.Context, err error) {
	cr := &crashReport{
		id:  r.uuid.Generate(),
		err: err,
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.closed {
		r.log.Warnf("reporter closed, dropping crash report %s: %v", cr.id, err)
		return
	}

	select {
	case r.ch <- cr:
	case <-ctx.Done():
		r.log.Warnf("dropping crash report %s: %v", cr.id, ctx.Err())
	}
}

func (r *asyncReporter) run() {
	defer close(r.done)
	defer recover.Panic(r.log)

	for cr := range r.ch {
		r.log.WithFields(logrus.Fields{
			"crash_id":   cr.id,
			"error_type": fmt.Sprintf("%T", cr.err),
		}).Error(cr.err)
	}
}

func (r *asyncReporter) Close() error {
	r.mu.Lock()
	if !r.closed {
		r.closed = true
		close(r.ch)
	}
	r.mu.Unlock()

	<-r.done
	return nil
}
