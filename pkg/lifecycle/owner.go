// Package lifecycle ties cancellable work to the lifetime of a component.
//
// An Owner is created when a component mounts and disposed when it is torn
// down. Work that must not outlive the component derives its context from
// Owner.Context: disposing the owner cancels every such context and runs
// the registered cleanups.
package lifecycle

import (
	"context"
	"sync"
	"sync/atomic"
)

var lastID atomic.Uint64

// Owner is the scope of one mounted component. Owners nest like the
// components they belong to; disposing an owner disposes its children.
type Owner struct {
	id     uint64
	parent *Owner
	ctx    context.Context
	cancel context.CancelFunc

	mu       sync.Mutex
	disposed bool
	children []*Owner
	cleanups []func()
}

// NewOwner creates an owner under parent, or a root owner if parent is nil.
// A child of a disposed parent starts out disposed.
func NewOwner(parent *Owner) *Owner {
	base := context.Background()
	if parent != nil {
		base = parent.ctx
	}
	o := &Owner{id: lastID.Add(1), parent: parent}
	o.ctx, o.cancel = context.WithCancel(base)

	if parent != nil && !parent.adopt(o) {
		o.Dispose()
	}
	return o
}

func (o *Owner) ID() uint64 { return o.id }

// Parent returns nil for a root owner.
func (o *Owner) Parent() *Owner { return o.parent }

// Context is cancelled when the owner is disposed.
func (o *Owner) Context() context.Context { return o.ctx }

func (o *Owner) IsDisposed() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.disposed
}

func (o *Owner) adopt(child *Owner) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.disposed {
		return false
	}
	o.children = append(o.children, child)
	return true
}

func (o *Owner) forget(child *Owner) {
	o.mu.Lock()
	defer o.mu.Unlock()
	for i, c := range o.children {
		if c == child {
			o.children = append(o.children[:i], o.children[i+1:]...)
			return
		}
	}
}

// OnCleanup registers fn to run on Dispose. On a disposed owner fn runs
// immediately.
func (o *Owner) OnCleanup(fn func()) {
	o.mu.Lock()
	if o.disposed {
		o.mu.Unlock()
		fn()
		return
	}
	o.cleanups = append(o.cleanups, fn)
	o.mu.Unlock()
}

// Dispose cancels the context, then disposes children and runs cleanups,
// each newest first. Only the first call has any effect.
func (o *Owner) Dispose() {
	o.mu.Lock()
	if o.disposed {
		o.mu.Unlock()
		return
	}
	o.disposed = true
	children, cleanups := o.children, o.cleanups
	o.children, o.cleanups = nil, nil
	o.mu.Unlock()

	o.cancel()
	if o.parent != nil {
		o.parent.forget(o)
	}
	for i := len(children) - 1; i >= 0; i-- {
		children[i].Dispose()
	}
	for i := len(cleanups) - 1; i >= 0; i-- {
		cleanups[i]()
	}
}
